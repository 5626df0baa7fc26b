package sim

import (
	"sort"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Snapshot captures the complete discrete game state for determinism testing
// and debugging. Positions are sorted so two snapshots of equal states
// compare equal regardless of map iteration order.
type Snapshot struct {
	Tick      uint64
	Level     int
	Player    core.Position
	Blocks    []core.Position
	Walls     []core.Position
	Goals     []core.Position
	Covered   int // goal tiles currently holding an obstacle
	Moving    bool
	UndoDepth int
	Paused    bool
	Completed bool
}

// Snapshot returns the current discrete state. Presentation interpolation is
// deliberately excluded: it is derived, never authoritative.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Level:     s.state.Level,
		Player:    s.state.Player,
		Covered:   s.state.CoveredGoals(),
		Moving:    s.mover.Moving(),
		UndoDepth: s.undo.Len(),
		Paused:    s.paused,
		Completed: s.completed,
	}

	for p, obs := range s.state.Obstacles {
		switch obs.Kind {
		case Block:
			snap.Blocks = append(snap.Blocks, p)
		case Wall:
			snap.Walls = append(snap.Walls, p)
		}
	}
	for p := range s.state.Goals {
		snap.Goals = append(snap.Goals, p)
	}

	sortPositions(snap.Blocks)
	sortPositions(snap.Walls)
	sortPositions(snap.Goals)
	return snap
}

func sortPositions(ps []core.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}

// EqualPositions reports whether two sorted position slices are identical.
func EqualPositions(a, b []core.Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
