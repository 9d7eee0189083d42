package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R
	ActionRedraw         // Ctrl+L
	ActionQuit           // Q asks, Ctrl+C quits
	ActionConfirm        // Y in the quit prompt
	ActionCancel         // anything else in the quit prompt
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionRedraw:
		return "Redraw"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// IsMove reports whether a is one of the four directional actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
