package main

import "image"

// Layout metrics in screen pixels
const (
	toolbarHeight   = 36
	labelHeight     = 24
	buttonHeight    = 26
	buttonPadding   = 5
	buttonCharWidth = 9
	overlayMargin   = 12
)

// Button is an on-screen control bound to an action.
type Button struct {
	Label  string
	Action string
	Rect   image.Rectangle
}

var buttonDefinitions = []struct {
	label  string
	action string
}{
	{"<---", "previous"},
	{"--->", "next"},
	{"FullScreen", "fullscreen"},
}

func buttonWidth(label string) int {
	return len(label)*buttonCharWidth + 4*buttonPadding
}

// layoutButtons places the buttons for a screenW x screenH window. The
// toolbar layout lines them up at the top left; the overlay layout centres
// them along the bottom edge, above the resolution label.
func layoutButtons(screenW, screenH int, mode LayoutMode) []Button {
	total := 0
	for _, def := range buttonDefinitions {
		total += buttonWidth(def.label)
	}
	total += buttonPadding * (len(buttonDefinitions) - 1)

	x := buttonPadding
	y := (toolbarHeight - buttonHeight) / 2
	if mode == LayoutOverlay {
		x = max((screenW-total)/2, buttonPadding)
		y = screenH - labelHeight - overlayMargin - buttonHeight
	}

	buttons := make([]Button, 0, len(buttonDefinitions))
	for _, def := range buttonDefinitions {
		w := buttonWidth(def.label)
		buttons = append(buttons, Button{
			Label:  def.label,
			Action: def.action,
			Rect:   image.Rect(x, y, x+w, y+buttonHeight),
		})
		x += w + buttonPadding
	}
	return buttons
}

// hitTest returns the action of the button under (x, y).
func hitTest(buttons []Button, x, y int) (string, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Action, true
		}
	}
	return "", false
}

// contentRegion is the area available to the image. Fullscreen and the
// overlay layout use the whole screen; the toolbar layout loses the
// toolbar at the top and the label strip at the bottom, once each.
func contentRegion(screenW, screenH int, mode LayoutMode, fullscreen bool) image.Rectangle {
	screenW, screenH = max(screenW, 0), max(screenH, 0)
	if fullscreen || mode == LayoutOverlay {
		return image.Rect(0, 0, screenW, screenH)
	}

	top := min(toolbarHeight, screenH)
	bottom := max(screenH-labelHeight, top)
	return image.Rect(0, top, screenW, bottom)
}

// labelOrigin is the top-left corner of the resolution label text.
func labelOrigin(screenH int) image.Point {
	return image.Pt(buttonPadding, screenH-labelHeight+(labelHeight-16)/2)
}
