package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

const testDT = 1.0 / 60

// layoutStub is a minimal in-memory LayoutSource for tests.
type layoutStub map[int]Layout

func (s layoutStub) Layout(id int) (Layout, bool) {
	l, ok := s[id]
	return l, ok
}

func levelTwoLayout() Layout {
	return Layout{
		{8, 8, 8, 0, 8, 8, 8, 8},
		{8, 4, 8, 8, 8, 2, 1, 8},
		{8, 2, 0, 0, 0, 0, 2, 8},
		{8, 0, 0, 0, 2, 0, 0, 8},
		{8, 8, 8, 8, 8, 8, 8, 8},
	}
}

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestSim(t *testing.T, layouts layoutStub) *Simulation {
	t.Helper()
	s := New(layouts)
	if err := s.LoadLevel(1); err != nil {
		t.Fatalf("LoadLevel(1) failed: %v", err)
	}
	return s
}

func mergeResult(dst *StepResult, r StepResult) {
	dst.Level = r.Level
	if r.LevelAdvanced {
		dst.LevelAdvanced = true
		dst.SolvedLevel = r.SolvedLevel
		dst.SolvedStats = r.SolvedStats
	}
	if r.Completed {
		dst.Completed = true
		dst.SolvedLevel = r.SolvedLevel
		dst.SolvedStats = r.SolvedStats
	}
	if r.EditRequested {
		dst.EditRequested = true
	}
}

// playMove issues one intent and then runs empty ticks until the simulation
// is idle again, merging any signals raised along the way.
func playMove(t *testing.T, s *Simulation, a core.Action) StepResult {
	t.Helper()

	merged := s.Step(frameOf(a), testDT)
	for i := 0; i < 100 && s.Moving(); i++ {
		mergeResult(&merged, s.Step(frameOf(), testDT))
	}
	if s.Moving() {
		t.Fatal("Move did not complete within 100 ticks")
	}
	return merged
}

func TestLoadLevelUnknownID(t *testing.T) {
	s := New(layoutStub{1: testLayout()})
	if err := s.LoadLevel(99); err == nil {
		t.Error("Loading an unregistered level id should fail")
	}
}

// The concrete first-level scenario: two left pushes put the block on the
// goal and advance to level two; a third left into the wall is rejected.
func TestLevelOneScenario(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout(), 2: levelTwoLayout()})

	if s.State().Player != core.Pos(4, 1) {
		t.Fatalf("Player starts at %v, expected (4,1)", s.State().Player)
	}

	res := playMove(t, s, core.ActionLeft)
	if res.LevelAdvanced || res.Completed {
		t.Fatal("First push must not win the level")
	}
	if s.State().Player != core.Pos(3, 1) {
		t.Errorf("Player at %v after first push, expected (3,1)", s.State().Player)
	}
	if obs, ok := s.State().ObstacleAt(core.Pos(2, 1)); !ok || obs.Kind != Block {
		t.Error("Block should sit at (2,1) after the first push")
	}

	res = playMove(t, s, core.ActionLeft)
	if !res.LevelAdvanced {
		t.Fatal("Second push covers the goal and must advance the level")
	}
	if res.SolvedLevel != 1 || res.Level != 2 {
		t.Errorf("Advance signal: solved %d, now %d; expected 1 -> 2", res.SolvedLevel, res.Level)
	}
	if res.SolvedStats.Moves != 2 || res.SolvedStats.Pushes != 2 {
		t.Errorf("Solved stats = %+v, expected 2 moves, 2 pushes", res.SolvedStats)
	}
	if s.State().Level != 2 {
		t.Errorf("Simulation on level %d, expected 2", s.State().Level)
	}
}

func TestWinSignalFiresExactlyOnce(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout(), 2: levelTwoLayout()})

	advances := 0
	for _, a := range []core.Action{core.ActionLeft, core.ActionLeft} {
		if res := playMove(t, s, a); res.LevelAdvanced {
			advances++
		}
	}
	// A few idle ticks after the advance must not re-raise the signal.
	for i := 0; i < 30; i++ {
		if res := s.Step(frameOf(), testDT); res.LevelAdvanced {
			advances++
		}
	}

	if advances != 1 {
		t.Errorf("Level-advance raised %d times, expected exactly once", advances)
	}
}

func TestThirdPushIntoWallRejected(t *testing.T) {
	// Same geometry as the first level, goal moved aside so pushing the
	// block all the way left does not win.
	layout := Layout{
		{8, 8, 8, 8, 8, 8},
		{8, 0, 0, 2, 1, 8},
		{8, 8, 8, 4, 0, 8},
		{0, 0, 8, 8, 8, 8},
	}
	s := newTestSim(t, layoutStub{1: layout})

	playMove(t, s, core.ActionLeft)
	playMove(t, s, core.ActionLeft) // block now at (1,1), wall at (0,1) beyond

	before := s.State().Clone()
	s.Step(frameOf(core.ActionLeft), testDT)
	if s.Moving() {
		t.Fatal("Push against the wall must not start a move")
	}
	if !s.State().Equal(before) {
		t.Error("Rejected push must leave state untouched")
	}
	if s.Stats().Moves != 2 {
		t.Errorf("Moves = %d, rejected attempts must not count", s.Stats().Moves)
	}
}

func TestSingleMoveAtomicity(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})

	before := s.State().Clone()
	playMove(t, s, core.ActionLeft) // push: player (4,1)->(3,1), block (3,1)->(2,1)
	after := s.State()

	if after.Player != core.Pos(3, 1) {
		t.Errorf("Player = %v, expected (3,1)", after.Player)
	}

	// Exactly the pushed block's entry moved; everything else is identical.
	for p, obs := range before.Obstacles {
		if p == core.Pos(3, 1) {
			moved, ok := after.ObstacleAt(core.Pos(2, 1))
			if !ok || moved != obs {
				t.Error("Pushed block should occupy (2,1) with the same identity")
			}
			continue
		}
		got, ok := after.ObstacleAt(p)
		if !ok || got != obs {
			t.Errorf("Obstacle at %v changed: %+v -> %+v (ok=%v)", p, obs, got, ok)
		}
	}
	if len(after.Obstacles) != len(before.Obstacles) {
		t.Error("Obstacle count changed across a move")
	}
	if !reflect.DeepEqual(before.Goals, after.Goals) {
		t.Error("Goals changed across a move")
	}
}

func TestUndoIsExactInverse(t *testing.T) {
	s := newTestSim(t, layoutStub{1: levelTwoLayout()})
	original := s.State().Clone()

	// A mix of pushes, plain steps, and rejections.
	script := []core.Action{
		core.ActionLeft, core.ActionDown, core.ActionLeft,
		core.ActionLeft, core.ActionUp, core.ActionRight,
	}
	for _, a := range script {
		playMove(t, s, a)
	}

	n := s.UndoDepth()
	if n == 0 {
		t.Fatal("Script should have committed at least one move")
	}

	for i := 0; i < n; i++ {
		s.Step(frameOf(core.ActionUndo), testDT)
	}
	if !s.State().Equal(original) {
		t.Error("N undos after N moves must restore the original state exactly")
	}

	// Undoing past the stack's start is a silent no-op.
	s.Step(frameOf(core.ActionUndo), testDT)
	if !s.State().Equal(original) {
		t.Error("Undo on empty history must not change state")
	}
}

func TestUndoPreservesEntityIdentity(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})

	blockBefore, _ := s.State().ObstacleAt(core.Pos(3, 1))
	playMove(t, s, core.ActionLeft)
	s.Step(frameOf(core.ActionUndo), testDT)

	blockAfter, ok := s.State().ObstacleAt(core.Pos(3, 1))
	if !ok {
		t.Fatal("Undo should put the block back at (3,1)")
	}
	if blockAfter.Entity != blockBefore.Entity {
		t.Error("Undo must restore the same entity handle, not a new object")
	}
	if !s.Arena().Valid(blockAfter.Entity) {
		t.Error("Restored handle must still resolve in the arena")
	}
}

func TestUndoWinsOverDirectionSameTick(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})
	original := s.State().Clone()

	playMove(t, s, core.ActionDown)

	// Undo and a direction in the same tick: undo wins, direction dropped.
	s.Step(frameOf(core.ActionUndo, core.ActionLeft), testDT)
	if s.Moving() {
		t.Error("Directional intent must be ignored when undo arrives with it")
	}
	if !s.State().Equal(original) {
		t.Error("Undo should have restored the pre-move state")
	}
}

func TestUndoDroppedMidMove(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})

	s.Step(frameOf(core.ActionLeft), testDT)
	if !s.Moving() {
		t.Fatal("Move should be in flight")
	}

	// Undo while moving is dropped, never deferred into the commit.
	for s.Moving() {
		s.Step(frameOf(core.ActionUndo), testDT)
	}

	if s.State().Player != core.Pos(3, 1) {
		t.Error("The in-flight move must run to completion despite undo requests")
	}
	if s.UndoDepth() != 1 {
		t.Errorf("UndoDepth = %d, expected only the commit's snapshot", s.UndoDepth())
	}
	if s.Stats().Undos != 0 {
		t.Error("Dropped undo requests must not count as undos")
	}
}

func TestDirectionalInputIgnoredMidMove(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})

	s.Step(frameOf(core.ActionDown), testDT)
	for s.Moving() {
		s.Step(frameOf(core.ActionDown), testDT)
	}

	// Only the first intent committed.
	if s.Stats().Moves != 1 {
		t.Errorf("Moves = %d, expected 1 - intents mid-move are ignored", s.Stats().Moves)
	}
	if s.State().Player != core.Pos(4, 2) {
		t.Errorf("Player = %v, expected (4,2)", s.State().Player)
	}
}

func TestPauseHaltsSimulation(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})

	s.Step(frameOf(core.ActionPause), testDT)
	if !s.Paused() {
		t.Fatal("Pause action should pause the simulation")
	}

	before := s.State().Clone()
	for i := 0; i < 30; i++ {
		s.Step(frameOf(core.ActionLeft), testDT)
	}
	if s.Moving() || !s.State().Equal(before) {
		t.Error("Paused simulation must ignore movement intents")
	}

	s.Step(frameOf(core.ActionPause), testDT)
	if s.Paused() {
		t.Error("Second pause action should unpause")
	}
	playMove(t, s, core.ActionLeft)
	if s.State().Player == before.Player {
		t.Error("Simulation should accept moves again after unpausing")
	}
}

func TestRestartReloadsLevel(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})
	fresh := s.State().Clone()

	playMove(t, s, core.ActionLeft)
	playMove(t, s, core.ActionDown)

	s.Step(frameOf(core.ActionRestart), testDT)

	st := s.State()
	if st.Player != fresh.Player {
		t.Error("Restart should reset the player position")
	}
	if len(st.Obstacles) != len(fresh.Obstacles) {
		t.Error("Restart should reset obstacles")
	}
	if s.UndoDepth() != 0 {
		t.Error("Restart should clear the undo history")
	}
	if s.Stats().Moves != 0 {
		t.Error("Restart should reset statistics")
	}
}

func TestCampaignCompletion(t *testing.T) {
	// One tiny level, one push to win, nothing registered after it.
	layout := Layout{
		{8, 8, 8, 8, 8},
		{8, 4, 2, 1, 8},
		{8, 8, 8, 8, 8},
	}
	s := newTestSim(t, layoutStub{1: layout})

	res := playMove(t, s, core.ActionLeft)
	if !res.Completed {
		t.Fatal("Solving the last level should complete the campaign")
	}
	if res.SolvedLevel != 1 {
		t.Errorf("SolvedLevel = %d, expected 1", res.SolvedLevel)
	}
	if !s.Completed() {
		t.Error("Simulation should report completed")
	}

	// Completed simulation ignores further intents.
	before := s.State().Clone()
	s.Step(frameOf(core.ActionRight), testDT)
	if s.Moving() || !s.State().Equal(before) {
		t.Error("Completed simulation must ignore movement")
	}
}

func TestEditSignalPassthrough(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})
	before := s.State().Clone()

	res := s.Step(frameOf(core.ActionEdit), testDT)
	if !res.EditRequested {
		t.Error("Edit action should raise the edit-requested signal")
	}
	if !s.State().Equal(before) {
		t.Error("Edit signal must not touch simulation state")
	}
}

func TestEntityPositionsInterpolateMidMove(t *testing.T) {
	s := newTestSim(t, layoutStub{1: testLayout()})

	// Idle: discrete positions.
	positions := s.EntityPositions()
	player := positions[s.State().PlayerEntity]
	if player != (core.Vec2{X: 4, Y: 1}) {
		t.Errorf("Idle player position = %+v, expected (4,1)", player)
	}

	blockEntity := func() EntityID {
		obs, _ := s.State().ObstacleAt(core.Pos(3, 1))
		return obs.Entity
	}()

	// Push left and sample mid-flight.
	s.Step(frameOf(core.ActionLeft), testDT)
	for i := 0; i < 5; i++ {
		s.Step(frameOf(), testDT)
	}
	if !s.Moving() {
		t.Fatal("Move should still be in flight")
	}

	positions = s.EntityPositions()
	player = positions[s.State().PlayerEntity]
	if player.X <= 3 || player.X >= 4 {
		t.Errorf("Mid-move player X = %v, expected strictly between 3 and 4", player.X)
	}
	block := positions[blockEntity]
	if block.X <= 2 || block.X >= 3 {
		t.Errorf("Mid-move block X = %v, expected strictly between 2 and 3", block.X)
	}

	// The discrete state is untouched while the move is in flight.
	if s.State().Player != core.Pos(4, 1) {
		t.Error("Interpolation must never write back into the level state")
	}
}

func TestDeterminism(t *testing.T) {
	// Two simulations fed the same intent script tick-for-tick stay
	// identical.
	script := map[uint64]core.Action{
		5:   core.ActionLeft,
		40:  core.ActionDown,
		80:  core.ActionUndo,
		90:  core.ActionLeft,
		140: core.ActionPause,
		160: core.ActionPause,
		170: core.ActionRight,
	}

	run := func() Snapshot {
		s := New(layoutStub{1: levelTwoLayout()})
		if err := s.LoadLevel(1); err != nil {
			t.Fatalf("LoadLevel failed: %v", err)
		}
		for tick := uint64(0); tick < 300; tick++ {
			f := frameOf()
			if a, ok := script[tick]; ok {
				f.Set(a)
			}
			s.Step(f, testDT)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestSnapshotSorted(t *testing.T) {
	s := newTestSim(t, layoutStub{1: levelTwoLayout()})
	snap := s.Snapshot()

	for i := 1; i < len(snap.Walls); i++ {
		a, b := snap.Walls[i-1], snap.Walls[i]
		if a.Y > b.Y || (a.Y == b.Y && a.X >= b.X) {
			t.Fatalf("Walls not sorted at %d: %v before %v", i, a, b)
		}
	}
	if len(snap.Blocks) != 4 {
		t.Errorf("Expected 4 blocks in the second layout, got %d", len(snap.Blocks))
	}
}
