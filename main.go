package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliOptions holds flag values that need translating into Config.
type cliOptions struct {
	layout   string
	sort     string
	bindings []string
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the slideview command. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	cfg := DefaultConfig()
	opts := cliOptions{
		layout: string(cfg.Layout),
		sort:   GetSortStrategy(cfg.SortMethod).Name(),
	}

	cmd := &cobra.Command{
		Use:   "slideview [flags] IMAGE",
		Short: "Show the images of a directory as a slideshow",
		Long: `slideview opens IMAGE and lets you step through the other images in the same
directory with the arrow keys. New or removed files are picked up while it runs.

Keys: Left/Right navigate, F toggles fullscreen, Escape leaves fullscreen or quits.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(resolveOptions(cfg, opts), opts.bindings, args[0], logOut)
		},
	}

	bindFlags(cmd.Flags(), &cfg, &opts)
	return cmd
}

func bindFlags(flags *pflag.FlagSet, cfg *Config, opts *cliOptions) {
	flags.StringVar(&opts.layout, "layout", opts.layout, "button placement: toolbar or overlay")
	flags.BoolVar(&cfg.ContinuousRescale, "continuous-rescale", cfg.ContinuousRescale, "re-render the current image on every rescale tick")
	flags.DurationVar(&cfg.RescanInterval, "rescan-interval", cfg.RescanInterval, "how often the directory is rescanned")
	flags.DurationVar(&cfg.RescaleInterval, "rescale-interval", cfg.RescaleInterval, "how often the image is re-rendered with --continuous-rescale")
	flags.DurationVar(&cfg.CursorHideDelay, "cursor-hide-delay", cfg.CursorHideDelay, "idle time before the mouse cursor is hidden")
	flags.StringVar(&opts.sort, "sort", opts.sort, "image order: name, natural or simple")
	flags.BoolVar(&cfg.Watch, "watch", cfg.Watch, "also rescan as soon as the file system reports a change")
	flags.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "initial window width")
	flags.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "initial window height")
	flags.BoolVar(&cfg.Maximized, "maximized", cfg.Maximized, "start with a maximized window")
	flags.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start in fullscreen")
	flags.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "number of decoded images kept in memory")
	flags.StringArrayVar(&opts.bindings, "bind", nil, "rebind a key, e.g. --bind next=Space (repeatable)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
}

// resolveOptions folds string flags into cfg. Unknown values are left out of
// range for validateConfig to report.
func resolveOptions(cfg Config, opts cliOptions) Config {
	cfg.Layout = LayoutMode(opts.layout)
	if id, ok := sortMethodByName(opts.sort); ok {
		cfg.SortMethod = id
	} else {
		cfg.SortMethod = -1
	}
	return cfg
}

func run(cfg Config, bindings []string, startPath string, logOut io.Writer) error {
	if _, err := os.Stat(startPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("the path '%s' does not exist", startPath)
		}
		return fmt.Errorf("checking %s: %w", startPath, err)
	}

	log, err := newLogger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	result := validateConfig(cfg, bindings)
	for _, w := range result.Warnings {
		log.Warn().Str("component", "config").Msg(w)
	}
	cfg = result.Config

	scanner := NewDirScanner(cfg.SortMethod)
	paths, idx, err := collectImagesFromSameDirectory(startPath, scanner)
	if err != nil {
		return err
	}
	dir := filepath.Dir(paths[idx])

	loader, err := NewFileImageLoader(cfg.CacheSize, log)
	if err != nil {
		return err
	}

	var changes <-chan struct{}
	if cfg.Watch {
		watcher, err := NewDirWatcher(dir, scanner.Matches, log)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
		changes = watcher.Changes()
	}

	log.Info().
		Str("directory", dir).
		Int("images", len(paths)).
		Str("layout", string(cfg.Layout)).
		Bool("continuous_rescale", cfg.ContinuousRescale).
		Msg("starting slideshow")

	viewer := NewViewer(ViewerOptions{
		Config:  cfg,
		Dir:     dir,
		Paths:   paths,
		Index:   idx,
		Scanner: scanner,
		Loader:  loader,
		Window:  ebitenWindow{},
		Changes: changes,
		Log:     log,
	})

	setupWindow(cfg, filepath.Base(paths[idx]))
	if err := ebiten.RunGame(viewer); err != nil {
		return fmt.Errorf("viewer stopped: %w", err)
	}
	log.Debug().Msg("viewer closed")
	return nil
}

func setupWindow(cfg Config, title string) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Maximized {
		ebiten.MaximizeWindow()
	}
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
}
