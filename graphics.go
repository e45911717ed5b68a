package main

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Common colors used in rendering
var (
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorGray       = color.RGBA{90, 90, 90, 255}
	bgColorLight    = color.RGBA{0, 0, 0, 128} // Light semi-transparent
	bgColorButton   = color.RGBA{20, 20, 20, 255}
	bgColorOverlayB = color.RGBA{20, 20, 20, 200}
)

// newFontSource parses the bundled Go Regular font.
func newFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// DrawRectOutline draws a one pixel border
func DrawRectOutline(screen *ebiten.Image, x, y, w, h float64, lineColor color.RGBA) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, lineColor, false)
}
