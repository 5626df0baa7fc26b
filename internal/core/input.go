package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The simulation consumes these; it never sees raw input devices.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - step/push up
	ActionDown           // S, Down arrow - step/push down
	ActionLeft           // A, Left arrow - step/push left
	ActionRight          // D, Right arrow - step/push right
	ActionUndo           // U - revert the last committed move
	ActionRestart        // R - reload the current level from scratch
	ActionPause          // Space - pause/unpause the simulation
	ActionEdit           // E - request the level editor (handled by the platform)
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionEdit:
		return "Edit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Directional reports whether the action is one of the four movement intents,
// and if so which direction it maps to.
func (a Action) Directional() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// InputFrame represents the intent state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the first directional intent present in this frame.
// Checked in a fixed order so simultaneous presses resolve deterministically.
func (f InputFrame) Direction() (Direction, bool) {
	for _, a := range [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if f.Has(a) {
			d, _ := a.Directional()
			return d, true
		}
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
