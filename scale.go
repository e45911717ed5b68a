package main

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// FitScale returns the factor that fits an iw x ih image into an rw x rh
// region while keeping its aspect ratio. Without allowUpscale the factor
// never exceeds 1. A zero-size image is left at its natural size.
func FitScale(iw, ih, rw, rh int, allowUpscale bool) float64 {
	if iw <= 0 || ih <= 0 {
		return 1
	}
	rw, rh = max(rw, 0), max(rh, 0)

	scale := math.Min(float64(rw)/float64(iw), float64(rh)/float64(ih))
	if !allowUpscale && scale > 1 {
		scale = 1
	}
	return scale
}

// ScaledSize applies scale to iw x ih, keeping at least one pixel per axis.
func ScaledSize(iw, ih int, scale float64) (int, int) {
	w := int(float64(iw) * scale)
	h := int(float64(ih) * scale)
	return max(w, 1), max(h, 1)
}

// ResolutionLabel describes the original, unscaled image size.
func ResolutionLabel(iw, ih int) string {
	return fmt.Sprintf("Resolution: %dx%d", iw, ih)
}

// resizeToFit returns src resized to w x h with a Lanczos filter, or src
// itself when it already has that size.
func resizeToFit(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	return imaging.Resize(src, w, h, imaging.Lanczos)
}
