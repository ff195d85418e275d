package core

// Action is a semantic player command, abstracted from physical key presses.
// The platform maps keys to actions; games never see raw key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow - shift piece left
	ActionRight          // Right arrow - shift piece right
	ActionRotate         // Up arrow - rotate piece clockwise
	ActionDrop           // Down arrow - quick-drop piece
	ActionQuit           // Any other key - end the session
	ActionRestart        // R after game over - start a new session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action is one of the four piece controls.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionRotate, ActionDrop:
		return true
	}
	return false
}
