package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// DefaultMoveDuration is how long one grid step takes, in seconds.
const DefaultMoveDuration = 0.25

// Mover is the move transition state machine: Idle until Start attaches
// pending moves, Moving while the shared timer runs, back to Idle the tick
// the timer completes. It is advanced by explicit Tick deltas, so tests can
// drive it with synthetic time instead of a real clock.
type Mover struct {
	duration float64
	elapsed  float64
	moving   bool
	moves    []PendingMove
}

// NewMover creates an idle mover with the given move duration in seconds.
// Non-positive durations fall back to the default.
func NewMover(duration float64) *Mover {
	if duration <= 0 {
		duration = DefaultMoveDuration
	}
	return &Mover{duration: duration}
}

// Moving reports whether a move is in flight.
func (m *Mover) Moving() bool {
	return m.moving
}

// Start attaches pending moves and begins the shared timer. Starting while
// already moving is a programming fault: the resolver must only run when the
// player is idle.
func (m *Mover) Start(moves []PendingMove) {
	if m.moving {
		panic("sim: move started while another move is in flight")
	}
	if len(moves) == 0 {
		return
	}
	m.moves = moves
	m.elapsed = 0
	m.moving = true
}

// Tick advances the timer by dt seconds. On the tick the timer completes it
// returns the finished moves and true, exactly once, and resets to Idle.
// A started move always runs to completion; there is no cancellation.
func (m *Mover) Tick(dt float64) ([]PendingMove, bool) {
	if !m.moving {
		return nil, false
	}

	m.elapsed += dt
	if m.elapsed < m.duration {
		return nil, false
	}

	moves := m.moves
	m.moves = nil
	m.elapsed = 0
	m.moving = false
	return moves, true
}

// Progress returns the timer's completion fraction in [0, 1].
func (m *Mover) Progress() float64 {
	if !m.moving {
		return 0
	}
	return core.ClampF(m.elapsed/m.duration, 0, 1)
}

// Offsets returns the eased render-space position of every entity mid-move,
// interpolated between its from and to tiles. This is presentation only and
// is never written back into the level state.
func (m *Mover) Offsets() map[EntityID]core.Vec2 {
	if !m.moving {
		return nil
	}
	t := m.Progress()
	out := make(map[EntityID]core.Vec2, len(m.moves))
	for _, mv := range m.moves {
		out[mv.Entity] = core.EaseOut(mv.From, mv.To, t)
	}
	return out
}

// String describes the mover state, for debugging.
func (m *Mover) String() string {
	if !m.moving {
		return "mover(idle)"
	}
	return fmt.Sprintf("mover(moving %d entities, %.0f%%)", len(m.moves), m.Progress()*100)
}
