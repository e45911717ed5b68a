package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler turns keyboard, mouse and button input into viewer actions
type InputHandler struct {
	inputActions        InputActions
	inputState          InputState
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
	executor            *ActionExecutor

	lastX, lastY int
	tracked      bool
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState, keybindingManager *KeybindingManager, mousebindingManager *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		inputState:          inputState,
		keybindingManager:   keybindingManager,
		mousebindingManager: mousebindingManager,
		executor:            NewActionExecutor(),
	}
}

// HandleInput processes all input for the current frame
// Returns true if any action was executed
func (h *InputHandler) HandleInput(now time.Time) bool {
	h.handlePointerMotion(now)

	clickConsumed, inputProcessed := h.handleButtons()

	for _, action := range actionOrder() {
		if h.keybindingManager.CheckAction(action) {
			inputProcessed = h.executor.ExecuteAction(action, h.inputActions) || inputProcessed
			continue
		}
		if !clickConsumed && h.mousebindingManager.CheckAction(action, now) {
			inputProcessed = h.executor.ExecuteAction(action, h.inputActions) || inputProcessed
		}
	}

	return inputProcessed
}

func (h *InputHandler) handlePointerMotion(now time.Time) {
	x, y := ebiten.CursorPosition()
	if h.tracked && x == h.lastX && y == h.lastY {
		return
	}
	moved := h.tracked
	h.lastX, h.lastY, h.tracked = x, y, true
	if moved {
		h.inputActions.PointerMoved(now)
	}
}

// handleButtons executes the on-screen button under a fresh left click.
// The first result tells whether the click landed on a button.
func (h *InputHandler) handleButtons() (bool, bool) {
	if !h.inputState.ControlsVisible() || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false, false
	}

	action, ok := hitTest(h.inputState.GetButtons(), h.lastX, h.lastY)
	if !ok {
		return false, false
	}
	return true, h.executor.ExecuteAction(action, h.inputActions)
}
