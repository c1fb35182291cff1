package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // H, Left arrow - previous pile
	ActionRight          // L, Right arrow - next pile
	ActionUp             // K, Up arrow - deeper card in a column, or the top row
	ActionDown           // J, Down arrow - shallower card, or back to the tableau
	ActionSelect         // Space, Enter - pick up or drop at the cursor
	ActionCancel         // Escape - return the hand to where it came from
	ActionHome           // Tab - send the hand to its home pile
	ActionGather         // G - gather the dragon under the cursor
	ActionAuto           // A - sweep cards home
	ActionUndo           // U, Z - step back
	ActionRedo           // Y - step forward
	ActionRestart        // R - back to the initial deal
	ActionNewGame        // N - deal a fresh game
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionHome:
		return "Home"
	case ActionGather:
		return "Gather"
	case ActionAuto:
		return "Auto"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionRestart:
		return "Restart"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered by one key press.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an input frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}
