package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func testMoves() []PendingMove {
	return []PendingMove{
		{Entity: 0, From: core.Pos(4, 1), To: core.Pos(3, 1)},
		{Entity: 1, From: core.Pos(3, 1), To: core.Pos(2, 1)},
	}
}

func TestMoverIdleTick(t *testing.T) {
	m := NewMover(0.25)

	moves, done := m.Tick(1.0)
	if done || moves != nil {
		t.Error("Idle mover must not report completion")
	}
	if m.Moving() {
		t.Error("Mover should stay idle without a started move")
	}
}

func TestMoverCommitsExactlyOnce(t *testing.T) {
	m := NewMover(0.25)
	m.Start(testMoves())

	if !m.Moving() {
		t.Fatal("Mover should be moving after Start")
	}

	// Drive with synthetic 0.1s ticks: completion lands on the third.
	completions := 0
	for i := 0; i < 10; i++ {
		if _, done := m.Tick(0.1); done {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("Expected exactly 1 completion, got %d", completions)
	}
	if m.Moving() {
		t.Error("Mover should be idle after completion")
	}
}

func TestMoverCompletionReturnsMoves(t *testing.T) {
	m := NewMover(0.2)
	want := testMoves()
	m.Start(want)

	moves, done := m.Tick(0.3)
	if !done {
		t.Fatal("Single oversized tick should complete the move")
	}
	if len(moves) != len(want) {
		t.Fatalf("Expected %d moves back, got %d", len(want), len(moves))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("Move %d = %+v, expected %+v", i, moves[i], want[i])
		}
	}
}

func TestMoverVariedDeltas(t *testing.T) {
	// Uneven tick deltas: completion still fires exactly once, on the tick
	// that crosses the duration.
	m := NewMover(0.25)
	m.Start(testMoves())

	deltas := []float64{0.05, 0.12, 0.01, 0.02, 0.2, 0.5}
	completedAt := -1
	for i, dt := range deltas {
		if _, done := m.Tick(dt); done {
			if completedAt != -1 {
				t.Fatalf("Second completion at tick %d", i)
			}
			completedAt = i
		}
	}

	if completedAt != 4 { // cumulative 0.05+0.12+0.01+0.02+0.2 = 0.40 >= 0.25
		t.Errorf("Completion at tick %d, expected 4", completedAt)
	}
}

func TestMoverProgressAndOffsets(t *testing.T) {
	m := NewMover(0.2)
	m.Start([]PendingMove{{Entity: 7, From: core.Pos(0, 0), To: core.Pos(2, 0)}})

	m.Tick(0.1) // halfway
	if got := m.Progress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Progress = %v, expected 0.5", got)
	}

	offsets := m.Offsets()
	v, ok := offsets[7]
	if !ok {
		t.Fatal("Offsets missing the moving entity")
	}
	// Ease-out at t=0.5 over distance 2: -(2-0)*0.5*(0.5-2) = 1.5
	if math.Abs(v.X-1.5) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("Offset = (%v,%v), expected (1.5,0)", v.X, v.Y)
	}
}

func TestMoverOffsetsEmptyWhenIdle(t *testing.T) {
	m := NewMover(0.2)
	if m.Offsets() != nil {
		t.Error("Idle mover should report no offsets")
	}
	if m.Progress() != 0 {
		t.Error("Idle mover progress should be 0")
	}
}

func TestMoverDoubleStartPanics(t *testing.T) {
	m := NewMover(0.25)
	m.Start(testMoves())

	defer func() {
		if recover() == nil {
			t.Error("Starting a move mid-flight should panic")
		}
	}()
	m.Start(testMoves())
}

func TestMoverDefaultDuration(t *testing.T) {
	m := NewMover(0)
	if m.duration != DefaultMoveDuration {
		t.Errorf("Non-positive duration should fall back to default, got %v", m.duration)
	}
}
