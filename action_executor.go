package main

// ActionExecutor provides centralized action execution logic shared by
// keyboard bindings, mouse bindings and on-screen buttons.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface.
// It reports false for unknown actions.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "previous":
		inputActions.NavigatePrevious()
	case "next":
		inputActions.NavigateNext()
	case "escape":
		inputActions.Escape()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "exit":
		inputActions.Exit()
	default:
		return false
	}

	return true
}
