package main

import (
	"fmt"
	"strings"
	"time"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 200
	minHeight     = 150
)

// Decoded image cache bounds
const (
	defaultCacheSize = 8
	maxCacheSize     = 64
)

// Sort method constants
const (
	SortName    = 0 // Case-insensitive name order, extension stripped
	SortNatural = 1 // Natural sort order (e.g., file1, file2, file10)
	SortSimple  = 2 // Simple string sort (lexicographical)
)

// LayoutMode selects where the navigation buttons live in windowed mode.
type LayoutMode string

const (
	LayoutToolbar LayoutMode = "toolbar" // Buttons in a bar above the image
	LayoutOverlay LayoutMode = "overlay" // Buttons drawn over the image
)

// Timing defaults
const (
	defaultRescanInterval  = 100 * time.Millisecond
	defaultRescaleInterval = 100 * time.Millisecond
	defaultCursorHideDelay = 2 * time.Second
	minInterval            = 10 * time.Millisecond
	maxInterval            = time.Hour
)

// ConfigLoadResult contains the result of validating configuration
type ConfigLoadResult struct {
	Config   Config
	Warnings []string
	Status   string // "OK", "Warning"
}

type Config struct {
	Layout            LayoutMode
	ContinuousRescale bool
	RescanInterval    time.Duration
	RescaleInterval   time.Duration
	CursorHideDelay   time.Duration
	SortMethod        int
	Watch             bool
	WindowWidth       int
	WindowHeight      int
	Maximized         bool
	Fullscreen        bool
	CacheSize         int
	LogLevel          string
	Keybindings       map[string][]string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Layout:            LayoutToolbar,
		ContinuousRescale: false,
		RescanInterval:    defaultRescanInterval,
		RescaleInterval:   defaultRescaleInterval,
		CursorHideDelay:   defaultCursorHideDelay,
		SortMethod:        SortName,
		Watch:             false,
		WindowWidth:       defaultWidth,
		WindowHeight:      defaultHeight,
		Maximized:         true,
		Fullscreen:        false,
		CacheSize:         defaultCacheSize,
		LogLevel:          "info",
		Keybindings:       GetDefaultKeybindings(),
	}
}

func clampInterval(d, fallback time.Duration) time.Duration {
	if d < minInterval {
		return fallback
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}

// validateConfig fixes out-of-range values and records what it changed.
// bindings are raw --bind values ("action=Key") layered over the defaults.
func validateConfig(config Config, bindings []string) ConfigLoadResult {
	result := ConfigLoadResult{
		Warnings: []string{},
		Status:   "OK",
	}
	warn := func(format string, args ...any) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(format, args...))
		result.Status = "Warning"
	}

	switch config.Layout {
	case LayoutToolbar, LayoutOverlay:
	default:
		warn("unknown layout %q, using %q", config.Layout, LayoutToolbar)
		config.Layout = LayoutToolbar
	}

	if d := clampInterval(config.RescanInterval, defaultRescanInterval); d != config.RescanInterval {
		warn("rescan interval %s out of range, using %s", config.RescanInterval, d)
		config.RescanInterval = d
	}
	if d := clampInterval(config.RescaleInterval, defaultRescaleInterval); d != config.RescaleInterval {
		warn("rescale interval %s out of range, using %s", config.RescaleInterval, d)
		config.RescaleInterval = d
	}
	if config.CursorHideDelay <= 0 {
		warn("cursor hide delay must be positive, using %s", defaultCursorHideDelay)
		config.CursorHideDelay = defaultCursorHideDelay
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		warn("window width %d below %d, using %d", config.WindowWidth, minWidth, defaultWidth)
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		warn("window height %d below %d, using %d", config.WindowHeight, minHeight, defaultHeight)
		config.WindowHeight = defaultHeight
	}

	// Validate sort method
	if config.SortMethod < SortName || config.SortMethod > SortSimple {
		warn("unknown sort method, using %q", GetSortStrategy(SortName).Name())
		config.SortMethod = SortName
	}

	// Validate cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		warn("cache size %d below 1, using %d", config.CacheSize, defaultCacheSize)
		config.CacheSize = defaultCacheSize
	} else if config.CacheSize > maxCacheSize {
		warn("cache size %d above %d, using %d", config.CacheSize, maxCacheSize, maxCacheSize)
		config.CacheSize = maxCacheSize
	}

	if config.Keybindings == nil {
		config.Keybindings = GetDefaultKeybindings()
	}
	if len(bindings) > 0 {
		merged, err := mergeBindings(config.Keybindings, bindings)
		if err == nil {
			err = validateKeybindings(merged)
		}
		if err != nil {
			warn("keybinding errors, using defaults: %v", err)
			config.Keybindings = GetDefaultKeybindings()
		} else {
			config.Keybindings = merged
		}
	}

	result.Config = config
	return result
}

// mergeBindings applies "action=Key" overrides. The first override for an
// action replaces its defaults, later ones for the same action add to it.
func mergeBindings(base map[string][]string, bindings []string) (map[string][]string, error) {
	known := GetActionDescriptions()
	merged := make(map[string][]string, len(base))
	for action, keys := range base {
		merged[action] = append([]string(nil), keys...)
	}

	replaced := make(map[string]bool)
	for _, b := range bindings {
		action, key, ok := strings.Cut(b, "=")
		action, key = strings.TrimSpace(action), strings.TrimSpace(key)
		if !ok || action == "" || key == "" {
			return nil, fmt.Errorf("malformed binding %q, want action=Key", b)
		}
		if _, exists := known[action]; !exists {
			return nil, fmt.Errorf("unknown action %q", action)
		}
		if !replaced[action] {
			merged[action] = nil
			replaced[action] = true
		}
		merged[action] = append(merged[action], key)
	}
	return merged, nil
}

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	// Check for valid key formats and detect conflicts
	keyToAction := make(map[string]string)
	validKeys := getKeyMapping()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			// Validate key format
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			// Check for conflicts
			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString[V any](keyStr string, validKeys map[string]V) error {
	parts := strings.Split(keyStr, "+")
	if len(parts) == 0 || keyStr == "" {
		return fmt.Errorf("empty key string")
	}

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if _, ok := validKeys[keyName]; !ok {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	// Check modifiers
	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}
