package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
)

const fontSize = 14.0

// Renderer handles all drawing operations
type Renderer struct {
	renderState RenderState
	font        *text.GoTextFace

	// GPU copy of the frame's scaled buffer
	texture       *ebiten.Image
	textureSource image.Image
}

// NewRenderer creates a new Renderer
func NewRenderer(renderState RenderState, log zerolog.Logger) *Renderer {
	r := &Renderer{renderState: renderState}

	s, err := newFontSource()
	if err != nil {
		// Buttons and label are drawn without text.
		log.Error().Err(err).Msg("loading font")
		return r
	}
	r.font = &text.GoTextFace{Source: s, Size: fontSize}
	return r
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)

	frame := r.renderState.GetFrame()
	if frame == nil {
		return
	}

	r.drawFrame(screen, frame)

	if r.renderState.ControlsVisible() {
		r.drawButtons(screen)
		r.drawResolutionLabel(screen, frame.Label)
	}
}

// textureFor uploads the scaled buffer once and releases the previous one.
func (r *Renderer) textureFor(frame *Frame) *ebiten.Image {
	if r.texture != nil && r.textureSource == frame.Scaled {
		return r.texture
	}
	if r.texture != nil {
		r.texture.Deallocate()
	}
	r.texture = ebiten.NewImageFromImage(frame.Scaled)
	r.textureSource = frame.Scaled
	return r.texture
}

// drawFrame centres the scaled image in its content region.
func (r *Renderer) drawFrame(screen *ebiten.Image, frame *Frame) {
	img := r.textureFor(frame)
	sw, sh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	region := frame.Region

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(region.Min.X)+float64(region.Dx())/2-sw/2,
		float64(region.Min.Y)+float64(region.Dy())/2-sh/2,
	)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawButtons(screen *ebiten.Image) {
	bg := bgColorButton
	if r.renderState.GetLayoutMode() == LayoutOverlay {
		bg = bgColorOverlayB
	}

	for _, b := range r.renderState.GetButtons() {
		x, y := float64(b.Rect.Min.X), float64(b.Rect.Min.Y)
		w, h := float64(b.Rect.Dx()), float64(b.Rect.Dy())
		DrawFilledRect(screen, x, y, w, h, bg)
		DrawRectOutline(screen, x, y, w, h, colorGray)

		if r.font == nil {
			continue
		}
		tw, th := text.Measure(b.Label, r.font, 0)
		DrawText(screen, b.Label, r.font, x+(w-tw)/2, y+(h-th)/2, colorWhite)
	}
}

func (r *Renderer) drawResolutionLabel(screen *ebiten.Image, label string) {
	if r.font == nil || label == "" {
		return
	}

	origin := labelOrigin(screen.Bounds().Dy())
	if r.renderState.GetLayoutMode() == LayoutOverlay {
		// The label sits on top of the image here.
		tw, th := text.Measure(label, r.font, 0)
		DrawFilledRect(screen, float64(origin.X)-3, float64(origin.Y)-3, tw+6, th+6, bgColorLight)
	}
	DrawText(screen, label, r.font, float64(origin.X), float64(origin.Y), colorWhite)
}
