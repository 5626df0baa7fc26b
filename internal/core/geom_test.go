package core

import (
	"math"
	"testing"
)

func TestPositionMove(t *testing.T) {
	tests := []struct {
		name     string
		start    Position
		dir      Direction
		expected Position
	}{
		{
			name:     "up decreases y",
			start:    Pos(3, 3),
			dir:      DirUp,
			expected: Pos(3, 2),
		},
		{
			name:     "down increases y",
			start:    Pos(3, 3),
			dir:      DirDown,
			expected: Pos(3, 4),
		},
		{
			name:     "left decreases x",
			start:    Pos(3, 3),
			dir:      DirLeft,
			expected: Pos(2, 3),
		},
		{
			name:     "right increases x",
			start:    Pos(3, 3),
			dir:      DirRight,
			expected: Pos(4, 3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.start.Move(tc.dir)
			if result != tc.expected {
				t.Errorf("Move(%v) = %v, expected %v", tc.dir, result, tc.expected)
			}
		})
	}
}

func TestPositionMapKey(t *testing.T) {
	// Positions are value types; equal coordinates must hash to the same key.
	m := map[Position]string{}
	m[Pos(2, 5)] = "a"
	m[Pos(2, 5)] = "b"

	if len(m) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(m))
	}
	if m[Position{X: 2, Y: 5}] != "b" {
		t.Errorf("Expected overwritten value 'b', got %q", m[Pos(2, 5)])
	}
}

func TestQuadEaseOutEndpoints(t *testing.T) {
	// The interpolation must hit both endpoints exactly.
	if got := QuadEaseOut(0, 10, 0); got != 0 {
		t.Errorf("QuadEaseOut(0,10,0) = %v, expected 0", got)
	}
	if got := QuadEaseOut(0, 10, 1); got != 10 {
		t.Errorf("QuadEaseOut(0,10,1) = %v, expected 10", got)
	}
	if got := QuadEaseOut(4, -2, 1); got != -2 {
		t.Errorf("QuadEaseOut(4,-2,1) = %v, expected -2", got)
	}
}

func TestQuadEaseOutDecelerates(t *testing.T) {
	// Ease-out covers more than half the distance in the first half of the move.
	mid := QuadEaseOut(0, 1, 0.5)
	if mid <= 0.5 {
		t.Errorf("Expected ease-out midpoint > 0.5, got %v", mid)
	}

	// Monotonic over [0, 1]
	prev := QuadEaseOut(0, 1, 0)
	for i := 1; i <= 10; i++ {
		cur := QuadEaseOut(0, 1, float64(i)/10)
		if cur < prev {
			t.Errorf("Ease-out not monotonic at t=%v: %v < %v", float64(i)/10, cur, prev)
		}
		prev = cur
	}
}

func TestEaseOutClampsProgress(t *testing.T) {
	from := Pos(0, 0)
	to := Pos(2, 0)

	over := EaseOut(from, to, 1.5)
	if math.Abs(over.X-2) > 1e-9 || math.Abs(over.Y) > 1e-9 {
		t.Errorf("Expected clamped endpoint (2,0), got (%v,%v)", over.X, over.Y)
	}

	under := EaseOut(from, to, -0.5)
	if math.Abs(under.X) > 1e-9 {
		t.Errorf("Expected clamped start (0,0), got (%v,%v)", under.X, under.Y)
	}
}

func TestInputFrameDirection(t *testing.T) {
	frame := NewInputFrame()
	if _, ok := frame.Direction(); ok {
		t.Error("Empty frame should have no direction")
	}

	frame.Set(ActionLeft)
	dir, ok := frame.Direction()
	if !ok || dir != DirLeft {
		t.Errorf("Expected DirLeft, got %v (ok=%v)", dir, ok)
	}

	// Up beats left under simultaneous presses (fixed resolution order).
	frame.Set(ActionUp)
	dir, ok = frame.Direction()
	if !ok || dir != DirUp {
		t.Errorf("Expected DirUp with both set, got %v (ok=%v)", dir, ok)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
