// Package core provides fundamental types and utilities for the sokoban
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Position is one cell of the integer grid the game is played on.
// Y grows downward, matching level layout row order.
type Position struct {
	X, Y int
}

// Pos creates a position from x and y coordinates.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position translated by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Move returns the neighboring position one step in the given direction.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Vec2 is a point in continuous render space, used only for presentation
// interpolation. Discrete game state never stores fractional coordinates.
type Vec2 struct {
	X, Y float64
}

// Vec2 converts a grid position to render space.
func (p Position) Vec2() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Direction is one of the four axis-aligned movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// QuadEaseOut interpolates from a to b with quadratic deceleration:
// fast at the start of the move, settling softly into the target cell.
// t is progress in [0, 1].
func QuadEaseOut(a, b, t float64) float64 {
	return -(b-a)*t*(t-2) + a
}

// EaseOut interpolates between two grid positions in render space.
func EaseOut(from, to Position, t float64) Vec2 {
	t = ClampF(t, 0, 1)
	return Vec2{
		X: QuadEaseOut(float64(from.X), float64(to.X), t),
		Y: QuadEaseOut(float64(from.Y), float64(to.Y), t),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
