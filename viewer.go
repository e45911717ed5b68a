package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// fullscreenSettle bounds how long a render waits for the window to resize
// after a fullscreen toggle.
const fullscreenSettle = 500 * time.Millisecond

// Frame is the result of the last render: the scaled buffer on screen and
// what it was made from.
type Frame struct {
	Path   string
	Width  int // original width
	Height int // original height
	Scale  float64
	Region image.Rectangle
	Scaled image.Image
	Label  string

	source image.Image
}

// ViewerState is the mutable display state besides the image list.
type ViewerState struct {
	Fullscreen   bool
	CursorHidden bool
	LastScale    float64
}

// ViewerOptions carries the collaborators of a Viewer.
type ViewerOptions struct {
	Config  Config
	Dir     string
	Paths   []string
	Index   int
	Scanner Scanner
	Loader  ImageLoader
	Window  Window
	Changes <-chan struct{} // optional rescan requests from a DirWatcher
	Log     zerolog.Logger
	Now     func() time.Time
}

// Viewer owns everything the slideshow needs and implements ebiten.Game.
// All of its state is touched from the game loop only.
type Viewer struct {
	cfg     Config
	dir     string
	scanner Scanner
	loader  ImageLoader
	window  Window
	changes <-chan struct{}
	log     zerolog.Logger
	now     func() time.Time

	playlist *Playlist
	state    ViewerState
	frame    *Frame
	title    string

	rescanTimer  *intervalTimer
	rescaleTimer *intervalTimer
	cursor       *cursorHider

	input    *InputHandler
	renderer *Renderer

	screenW, screenH int
	buttons          []Button
	needsRender      bool
	awaitResize      time.Time // render deferred until a resize or this deadline
	quit             bool
}

// NewViewer creates a viewer positioned at opts.Index. It does not touch
// the window until the first frame.
func NewViewer(opts ViewerOptions) *Viewer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	v := &Viewer{
		cfg:          opts.Config,
		dir:          opts.Dir,
		scanner:      opts.Scanner,
		loader:       opts.Loader,
		window:       opts.Window,
		changes:      opts.Changes,
		log:          opts.Log.With().Str("component", "viewer").Logger(),
		now:          now,
		playlist:     NewPlaylist(opts.Paths, opts.Index),
		state:        ViewerState{Fullscreen: opts.Config.Fullscreen, LastScale: 1},
		rescanTimer:  newIntervalTimer(opts.Config.RescanInterval, start),
		rescaleTimer: newIntervalTimer(opts.Config.RescaleInterval, start),
		cursor:       newCursorHider(opts.Config.CursorHideDelay),
		needsRender:  true,
	}
	v.renderer = NewRenderer(v, v.log)
	v.input = NewInputHandler(v, v,
		NewKeybindingManager(opts.Config.Keybindings),
		NewMousebindingManager(GetDefaultMousebindings(), GetDefaultMouseSettings()))
	return v
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	now := v.now()
	v.input.HandleInput(now)
	return v.advance(now)
}

// advance runs everything that is due at now: rescans, continuous
// rescale, cursor hiding and a pending render.
func (v *Viewer) advance(now time.Time) error {
	rescan := v.rescanTimer.Due(now)
	select {
	case <-v.changes:
		rescan = true
	default:
	}
	if rescan {
		v.rescan()
	}

	if v.quit {
		return ebiten.Termination
	}

	if v.cfg.ContinuousRescale && v.rescaleTimer.Due(now) {
		v.needsRender = true
	}

	if v.cursor.Due(now) {
		v.state.CursorHidden = true
		v.window.SetCursorVisible(false)
	}

	if v.needsRender && !v.resizePending(now) {
		if err := v.render(); err != nil {
			return err
		}
	}
	return nil
}

// rescan rereads the directory and swaps in the new list when it changed.
// An empty list ends the viewer.
func (v *Viewer) rescan() {
	paths, err := v.scanner.Scan(v.dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			v.log.Warn().Err(err).Msg("rescan failed, keeping current list")
			return
		}
		paths = nil
	}

	if !v.playlist.Replace(paths) {
		return
	}

	if v.playlist.Len() == 0 {
		v.log.Info().Str("directory", v.dir).Msg("no images left, closing")
		v.quit = true
		return
	}

	v.log.Debug().Int("count", v.playlist.Len()).Int("index", v.playlist.Index()).Msg("image list changed")
	v.needsRender = true
}

// render loads the current image and fits it to the content region.
func (v *Viewer) render() error {
	v.needsRender = false

	path, ok := v.playlist.Current()
	if !ok {
		return nil
	}

	src, err := v.loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	region := contentRegion(v.screenW, v.screenH, v.cfg.Layout, v.state.Fullscreen)
	scale := FitScale(iw, ih, region.Dx(), region.Dy(), v.state.Fullscreen)
	w, h := ScaledSize(iw, ih, scale)

	// Same file, same decoded image, same target size: keep the buffer.
	if f := v.frame; f != nil && f.Path == path && f.source == src &&
		f.Scaled.Bounds().Dx() == w && f.Scaled.Bounds().Dy() == h {
		if f.Region != region || f.Scale != scale {
			next := *f
			next.Region = region
			next.Scale = scale
			v.frame = &next
			v.state.LastScale = scale
		}
		return nil
	}

	v.frame = &Frame{
		Path:   path,
		Width:  iw,
		Height: ih,
		Scale:  scale,
		Region: region,
		Scaled: resizeToFit(src, w, h),
		Label:  ResolutionLabel(iw, ih),
		source: src,
	}
	v.state.LastScale = scale

	if title := filepath.Base(path); title != v.title {
		v.title = title
		v.window.SetTitle(title)
	}

	v.log.Debug().
		Str("path", path).
		Float64("scale", scale).
		Int("width", w).
		Int("height", h).
		Msg("rendered")
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen)
}

// Layout implements ebiten.Game. A size change schedules a render.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (v *Viewer) resize(w, h int) {
	if w == v.screenW && h == v.screenH {
		return
	}
	v.screenW, v.screenH = w, h
	v.awaitResize = time.Time{}
	v.buttons = layoutButtons(w, h, v.cfg.Layout)
	v.needsRender = true
}

func (v *Viewer) resizePending(now time.Time) bool {
	return !v.awaitResize.IsZero() && now.Before(v.awaitResize)
}

// InputActions

func (v *Viewer) NavigateNext() {
	if v.playlist.Next() {
		v.needsRender = true
	}
}

func (v *Viewer) NavigatePrevious() {
	if v.playlist.Previous() {
		v.needsRender = true
	}
}

// ToggleFullscreen switches modes. The render waits for the window to
// report its new size, or for fullscreenSettle if it never does.
func (v *Viewer) ToggleFullscreen() {
	v.state.Fullscreen = !v.state.Fullscreen
	v.window.SetFullscreen(v.state.Fullscreen)
	v.needsRender = true
	v.awaitResize = v.now().Add(fullscreenSettle)
	v.log.Debug().Bool("fullscreen", v.state.Fullscreen).Msg("toggled fullscreen")
}

// Escape leaves fullscreen, or quits when already windowed.
func (v *Viewer) Escape() {
	if v.state.Fullscreen {
		v.ToggleFullscreen()
		return
	}
	v.Exit()
}

func (v *Viewer) Exit() {
	v.quit = true
}

func (v *Viewer) PointerMoved(now time.Time) {
	if v.cursor.Moved(now) {
		v.state.CursorHidden = false
		v.window.SetCursorVisible(true)
	}
}

// RenderState and InputState

func (v *Viewer) IsFullscreen() bool {
	return v.state.Fullscreen
}

// ControlsVisible reports whether the buttons and the label are shown.
func (v *Viewer) ControlsVisible() bool {
	return !v.state.Fullscreen
}

func (v *Viewer) GetLayoutMode() LayoutMode {
	return v.cfg.Layout
}

func (v *Viewer) GetFrame() *Frame {
	return v.frame
}

func (v *Viewer) GetButtons() []Button {
	return v.buttons
}
