package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRegion(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		mode       LayoutMode
		fullscreen bool
		want       image.Rectangle
	}{
		{"Toolbar windowed", 800, 600, LayoutToolbar, false, image.Rect(0, toolbarHeight, 800, 600-labelHeight)},
		{"Overlay windowed", 800, 600, LayoutOverlay, false, image.Rect(0, 0, 800, 600)},
		{"Toolbar fullscreen", 1920, 1080, LayoutToolbar, true, image.Rect(0, 0, 1920, 1080)},
		{"Tiny window", 100, 40, LayoutToolbar, false, image.Rect(0, toolbarHeight, 100, toolbarHeight)},
		{"Zero window", 0, 0, LayoutToolbar, false, image.Rect(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentRegion(tt.w, tt.h, tt.mode, tt.fullscreen))
		})
	}
}

func TestContentRegionSubtractsToolbarOnce(t *testing.T) {
	r := contentRegion(800, 600, LayoutToolbar, false)
	assert.Equal(t, 600-toolbarHeight-labelHeight, r.Dy())
}

func TestLayoutButtonsToolbar(t *testing.T) {
	buttons := layoutButtons(800, 600, LayoutToolbar)
	require.Len(t, buttons, 3)

	assert.Equal(t, []string{"<---", "--->", "FullScreen"},
		[]string{buttons[0].Label, buttons[1].Label, buttons[2].Label})
	assert.Equal(t, buttonPadding, buttons[0].Rect.Min.X)
	for i, b := range buttons {
		assert.GreaterOrEqual(t, b.Rect.Min.Y, 0)
		assert.LessOrEqual(t, b.Rect.Max.Y, toolbarHeight)
		if i > 0 {
			assert.Equal(t, buttons[i-1].Rect.Max.X+buttonPadding, b.Rect.Min.X)
		}
	}
}

func TestLayoutButtonsOverlay(t *testing.T) {
	buttons := layoutButtons(800, 600, LayoutOverlay)
	require.Len(t, buttons, 3)

	left := buttons[0].Rect.Min.X
	right := 800 - buttons[2].Rect.Max.X
	assert.InDelta(t, left, right, 1, "buttons are centred")
	assert.Equal(t, 600-labelHeight-overlayMargin, buttons[0].Rect.Max.Y)
}

func TestHitTest(t *testing.T) {
	buttons := layoutButtons(800, 600, LayoutToolbar)

	action, ok := hitTest(buttons, buttons[1].Rect.Min.X+1, buttons[1].Rect.Min.Y+1)
	assert.True(t, ok)
	assert.Equal(t, "next", action)

	action, ok = hitTest(buttons, buttons[2].Rect.Max.X-1, buttons[2].Rect.Max.Y-1)
	assert.True(t, ok)
	assert.Equal(t, "fullscreen", action)

	_, ok = hitTest(buttons, 400, 300)
	assert.False(t, ok)
	_, ok = hitTest(buttons, buttons[0].Rect.Max.X, buttons[0].Rect.Min.Y)
	assert.False(t, ok, "the gap between buttons is not a hit")
}
