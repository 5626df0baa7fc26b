package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// LayoutSource supplies level layouts by integer id. The levels package
// provides the builtin registry and YAML packs behind this interface.
type LayoutSource interface {
	Layout(id int) (Layout, bool)
}

// Stats tracks per-level play statistics, reset on every level load.
type Stats struct {
	Moves   int     // committed moves
	Pushes  int     // committed moves that displaced a block
	Undos   int     // undo requests that actually popped a snapshot
	Seconds float64 // unpaused play time
}

// StepResult reports the signals a single simulation tick raised. It is the
// core's sole outbound contract besides the entity position surface.
type StepResult struct {
	Level         int   // current level id after the step
	LevelAdvanced bool  // a solved level was replaced by the next one
	SolvedLevel   int   // the level that was just solved, when LevelAdvanced or Completed
	SolvedStats   Stats // play statistics of the solved level
	Completed     bool  // every registered level has been solved
	EditRequested bool  // the platform should open its editing surface
}

// Simulation owns the authoritative level state and advances it once per
// discrete tick. All mutation happens inside Step on a single goroutine;
// the platform drives it from the UI tick loop and reads positions back
// between ticks. Stages run in a fixed order (intent resolution, move
// timer/commit, win check, level transition), each observing the settled
// output of the previous one.
type Simulation struct {
	layouts      LayoutSource
	moveDuration float64

	state  *LevelState
	arena  *Arena
	undo   *UndoStack
	mover  *Mover
	floors map[core.Position]bool
	width  int
	height int

	paused    bool
	completed bool
	tick      uint64
	stats     Stats
}

// New creates a simulation reading layouts from the given source.
// Call LoadLevel before the first Step.
func New(layouts LayoutSource) *Simulation {
	return &Simulation{
		layouts:      layouts,
		moveDuration: DefaultMoveDuration,
		mover:        NewMover(DefaultMoveDuration),
		undo:         NewUndoStack(),
	}
}

// SetMoveDuration overrides how long one grid step takes, in seconds.
// Takes effect on the next level load.
func (s *Simulation) SetMoveDuration(d float64) {
	if d > 0 {
		s.moveDuration = d
	}
}

// LoadLevel discards the current level, including its arena, undo history,
// and any in-flight move, then loads the layout registered under id. An
// unknown id is a configuration error.
func (s *Simulation) LoadLevel(id int) error {
	layout, ok := s.layouts.Layout(id)
	if !ok {
		return fmt.Errorf("sim: no layout registered for level %d", id)
	}

	lvl, err := Load(id, layout)
	if err != nil {
		return err
	}

	s.state = lvl.State
	s.arena = lvl.Arena
	s.floors = lvl.Floors
	s.width = lvl.Width
	s.height = lvl.Height
	s.undo = NewUndoStack()
	s.mover = NewMover(s.moveDuration)
	s.stats = Stats{}
	s.completed = false
	return nil
}

// Restart reloads the current level from scratch.
func (s *Simulation) Restart() error {
	return s.LoadLevel(s.state.Level)
}

// Step advances the simulation by one tick of dt seconds.
func (s *Simulation) Step(in core.InputFrame, dt float64) StepResult {
	res := StepResult{Level: s.state.Level}
	s.tick++

	if in.Has(core.ActionEdit) {
		res.EditRequested = true
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused || s.completed {
		return res
	}

	if in.Has(core.ActionRestart) {
		// The layout loaded before, so reloading it cannot fail.
		if err := s.Restart(); err != nil {
			panic(err)
		}
		return res
	}

	s.stats.Seconds += dt

	// Intent resolution. Only an idle player accepts intents; an undo
	// request in the same tick as a directional one wins, and the
	// direction is dropped.
	if !s.mover.Moving() {
		if in.Has(core.ActionUndo) {
			s.undoMove()
		} else if dir, ok := in.Direction(); ok {
			if moves, legal := Resolve(s.state, dir); legal {
				s.mover.Start(moves)
			}
		}
	}

	// Move timer. Commit fires exactly once, on the tick the timer
	// completes.
	if moves, done := s.mover.Tick(dt); done {
		s.commit(moves)

		// Win check runs against the committed state.
		if s.state.AllGoalsCovered() {
			s.advance(&res)
		}
	}

	res.Level = s.state.Level
	return res
}

// commit applies finished pending moves to the level state atomically.
// The pre-move snapshot goes onto the undo stack first, so popping it
// restores the board to exactly how it stood before this move.
func (s *Simulation) commit(moves []PendingMove) {
	s.undo.Push(s.state.Clone())

	for _, mv := range moves {
		if mv.Entity == s.state.PlayerEntity {
			s.state.Player = mv.To
		}
		s.state.moveObstacle(mv.From, mv.To)
	}

	s.stats.Moves++
	if len(moves) > 1 {
		s.stats.Pushes++
	}
}

// undoMove pops the latest snapshot and replaces the live state wholesale.
// Empty history is a silent no-op. Undo pushes nothing itself, so pressing
// undo repeatedly walks further back, never forward.
func (s *Simulation) undoMove() {
	prev, ok := s.undo.Pop()
	if !ok {
		return
	}
	s.state = prev
	s.stats.Undos++
}

// advance reacts to a solved level: load the next registered layout, or mark
// the campaign completed when none is left.
func (s *Simulation) advance(res *StepResult) {
	res.SolvedLevel = s.state.Level
	res.SolvedStats = s.stats

	next := s.state.Level + 1
	if _, ok := s.layouts.Layout(next); !ok {
		s.completed = true
		res.Completed = true
		return
	}

	// The layout was just looked up, so loading cannot fail.
	if err := s.LoadLevel(next); err != nil {
		panic(err)
	}
	res.LevelAdvanced = true
}

// State exposes the authoritative level state for rendering and tests.
// Callers must treat it as read-only.
func (s *Simulation) State() *LevelState {
	return s.state
}

// Floors returns the reachable floor set computed at level load.
func (s *Simulation) Floors() map[core.Position]bool {
	return s.floors
}

// Arena returns the current level's entity arena.
func (s *Simulation) Arena() *Arena {
	return s.arena
}

// Bounds returns the width and height of the loaded layout.
func (s *Simulation) Bounds() (w, h int) {
	return s.width, s.height
}

// Moving reports whether a move is currently in flight.
func (s *Simulation) Moving() bool {
	return s.mover.Moving()
}

// Paused reports whether the simulation is paused.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Completed reports whether every registered level has been solved.
func (s *Simulation) Completed() bool {
	return s.completed
}

// Stats returns the current level's play statistics.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// UndoDepth returns the number of undoable moves.
func (s *Simulation) UndoDepth() int {
	return s.undo.Len()
}

// EntityPositions is the visual sync surface: the render-space position of
// every live movable-or-player entity, using the eased interpolation for
// entities mid-move and the discrete tile otherwise. Walls never move, so
// they are included at their discrete tiles.
func (s *Simulation) EntityPositions() map[EntityID]core.Vec2 {
	out := make(map[EntityID]core.Vec2, len(s.state.Obstacles)+1)
	for p, obs := range s.state.Obstacles {
		out[obs.Entity] = p.Vec2()
	}
	out[s.state.PlayerEntity] = s.state.Player.Vec2()

	for id, v := range s.mover.Offsets() {
		out[id] = v
	}
	return out
}
