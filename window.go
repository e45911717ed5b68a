package main

import "github.com/hajimehoshi/ebiten/v2"

// ebitenWindow is the Window backed by the running ebiten game.
type ebitenWindow struct{}

func (ebitenWindow) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (ebitenWindow) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

func (ebitenWindow) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}
