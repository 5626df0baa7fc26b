package sim

// UndoStack is a LIFO of full level-state snapshots. A snapshot of the
// pre-move state is pushed at every commit, so popping restores the board to
// exactly how it was before the last move. Snapshots are whole states, not
// diffs; restoration replaces the live state by value.
//
// Snapshots reference entity handles from the level's arena. The stack is
// discarded together with the arena on every level transition, so a stored
// handle can never outlive the objects it points at.
type UndoStack struct {
	snapshots []*LevelState
}

// NewUndoStack creates an empty undo stack.
func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push stores a snapshot. The caller passes a clone; the stack takes
// ownership of it.
func (u *UndoStack) Push(snapshot *LevelState) {
	u.snapshots = append(u.snapshots, snapshot)
}

// Pop removes and returns the most recent snapshot. Popping an empty stack
// returns false: undoing past the first recorded move is a silent no-op.
func (u *UndoStack) Pop() (*LevelState, bool) {
	if len(u.snapshots) == 0 {
		return nil, false
	}
	top := u.snapshots[len(u.snapshots)-1]
	u.snapshots = u.snapshots[:len(u.snapshots)-1]
	return top, true
}

// Len returns the number of stored snapshots.
func (u *UndoStack) Len() int {
	return len(u.snapshots)
}
