package main

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	WheelSensitivity float64
	DoubleClickTime  time.Duration
	EnableMouse      bool
	WheelInverted    bool
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		WheelSensitivity: 1.0,
		DoubleClickTime:  300 * time.Millisecond,
		EnableMouse:      true,
		WheelInverted:    false,
	}
}

// DoubleClickTracker tracks double-click state
type DoubleClickTracker struct {
	lastClickTime   time.Time
	lastClickButton ebiten.MouseButton
	clickCount      int
}

// registerClick records a press of button at now and reports whether it
// completes a double click.
func (t *DoubleClickTracker) registerClick(button ebiten.MouseButton, now time.Time, window time.Duration) bool {
	if t.clickCount > 0 && t.lastClickButton == button && now.Sub(t.lastClickTime) <= window {
		t.clickCount = 0
		t.lastClickTime = now
		return true
	}

	t.clickCount = 1
	t.lastClickButton = button
	t.lastClickTime = now
	return false
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button        ebiten.MouseButton
	IsWheel       bool
	WheelDeltaY   float64
	IsDoubleClick bool
	Shift         bool
	Ctrl          bool
	Alt           bool
}

// MousebindingManager handles mouse binding processing
type MousebindingManager struct {
	mousebindings      map[string][]string
	mouseMapping       map[string]ebiten.MouseButton
	settings           MouseSettings
	doubleClickTracker DoubleClickTracker
}

// NewMousebindingManager creates a new MousebindingManager
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	return &MousebindingManager{
		mousebindings: mousebindings,
		mouseMapping:  getMouseMapping(),
		settings:      settings,
	}
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
	}
}

// parseMouseString parses a mouse string like "Shift+LeftClick" or "WheelUp" into a MouseCombination
func (mm *MousebindingManager) parseMouseString(mouseStr string) (*MouseCombination, bool) {
	parts := strings.Split(mouseStr, "+")
	combination := &MouseCombination{}
	actionName := parts[len(parts)-1]

	switch {
	case actionName == "WheelUp":
		combination.IsWheel = true
		combination.WheelDeltaY = 1.0
	case actionName == "WheelDown":
		combination.IsWheel = true
		combination.WheelDeltaY = -1.0
	case strings.HasPrefix(actionName, "Double"):
		button, exists := mm.mouseMapping[strings.TrimPrefix(actionName, "Double")]
		if !exists {
			return nil, false
		}
		combination.IsDoubleClick = true
		combination.Button = button
	default:
		button, exists := mm.mouseMapping[actionName]
		if !exists {
			return nil, false
		}
		combination.Button = button
	}

	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		default:
			return nil, false
		}
	}

	return combination, true
}

// isMouseActionTriggered checks if a mouse combination is triggered this frame
func (mm *MousebindingManager) isMouseActionTriggered(combination *MouseCombination, now time.Time) bool {
	if !mm.settings.EnableMouse {
		return false
	}
	if !modifiersMatch(combination.Shift, combination.Ctrl, combination.Alt) {
		return false
	}

	if combination.IsWheel {
		_, wheelY := ebiten.Wheel()
		if mm.settings.WheelInverted {
			wheelY = -wheelY
		}
		wheelY *= mm.settings.WheelSensitivity
		return (combination.WheelDeltaY > 0 && wheelY > 0) || (combination.WheelDeltaY < 0 && wheelY < 0)
	}

	if combination.IsDoubleClick {
		if !inpututil.IsMouseButtonJustPressed(combination.Button) {
			return false
		}
		return mm.doubleClickTracker.registerClick(combination.Button, now, mm.settings.DoubleClickTime)
	}

	return inpututil.IsMouseButtonJustPressed(combination.Button)
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string, now time.Time) bool {
	for _, mouseStr := range mm.mousebindings[action] {
		combination, valid := mm.parseMouseString(mouseStr)
		if valid && mm.isMouseActionTriggered(combination, now) {
			return true
		}
	}
	return false
}

// GetMousebindings returns the current mouse bindings map
func (mm *MousebindingManager) GetMousebindings() map[string][]string {
	return mm.mousebindings
}
