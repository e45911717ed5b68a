package main

import (
	"image"
	"time"
)

// RenderState provides read-only access to viewer state for the renderer
type RenderState interface {
	IsFullscreen() bool
	ControlsVisible() bool
	GetLayoutMode() LayoutMode
	GetFrame() *Frame
	GetButtons() []Button
}

// InputActions provides action methods for the input handler
type InputActions interface {
	NavigateNext()
	NavigatePrevious()
	ToggleFullscreen()
	Escape()
	Exit()

	// PointerMoved is called once per frame in which the cursor moved.
	PointerMoved(now time.Time)
}

// InputState provides read-only access to input-related state
type InputState interface {
	ControlsVisible() bool
	GetButtons() []Button
}

// Window is the slice of the windowing toolkit the viewer drives.
type Window interface {
	SetTitle(title string)
	SetFullscreen(fullscreen bool)
	SetCursorVisible(visible bool)
}

// Scanner lists the images of one directory.
type Scanner interface {
	Scan(dir string) ([]string, error)
}

// ImageLoader decodes the image stored at path.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}
