package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space - start a game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Direction maps a movement action to its direction.
// Returns DirNone for non-movement actions.
func (a Action) Direction() Direction {
	switch a {
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// InputFrame represents the input collected during one simulation tick.
// It remembers which actions fired and the order they fired in, so two quick
// turns between ticks both reach the game.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.order = append(f.order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Directions returns the movement directions pressed this frame, oldest first.
// Repeated presses are kept; filtering is the game's job.
func (f InputFrame) Directions() []Direction {
	var dirs []Direction
	for _, a := range f.order {
		if d := a.Direction(); d != DirNone {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Empty reports whether no action fired this frame.
func (f InputFrame) Empty() bool {
	return len(f.order) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}
