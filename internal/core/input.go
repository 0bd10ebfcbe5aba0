package core

// Action represents a semantic game command, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, h
	ActionMoveRight        // Right arrow, l
	ActionSoftDrop         // Down arrow, j
	ActionRotate           // Up arrow, k, x
	ActionHardDrop         // Space
	ActionPause            // P, Escape - toggle pause
	ActionStart            // Enter, R - start or restart after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Actions keep their arrival order so that, for example, a rotate followed
// by a hard drop is applied in that order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
