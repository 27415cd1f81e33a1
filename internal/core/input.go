package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // A, Left arrow - shift piece left
	ActionRight                // D, Right arrow - shift piece right
	ActionRotate               // W, Up arrow - rotate clockwise
	ActionSoftDropStart        // S, Down arrow pressed
	ActionSoftDropEnd          // S, Down arrow released
	ActionConfirm              // Enter, Space - start a game from the menu
	ActionPause                // P, Escape - pause/unpause game
	ActionQuit                 // Q, Ctrl+C - exit
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
	case ActionSoftDropStart:
		return "SoftDropStart"
	case ActionSoftDropEnd:
		return "SoftDropEnd"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions received since the previous frame, in arrival order.
// Order matters: a press followed by a release is not the same as the reverse.
type InputFrame struct {
	Actions []Action
}

// Add appends an action. ActionNone is ignored.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}
