package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// ObstacleKind distinguishes the two things that can occupy a tile.
// The set is closed: dispatch is always a switch over these two values.
type ObstacleKind uint8

const (
	// Block is pushable by the player, one at a time.
	Block ObstacleKind = iota
	// Wall is immovable and impassable.
	Wall
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case Block:
		return "block"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Obstacle ties an obstacle kind to the entity that visually represents it.
type Obstacle struct {
	Entity EntityID
	Kind   ObstacleKind
}

// LevelState is the single source of truth for a level in progress.
// It is created fresh by the loader on every level transition, mutated only
// at move commit, and replaced wholesale by undo.
type LevelState struct {
	// Level is the integer id used to select the next layout on advance.
	Level int

	// Obstacles maps each occupied tile to its obstacle. At most one
	// obstacle per tile; the player's tile is never a key here.
	Obstacles map[core.Position]Obstacle

	// Goals maps each goal tile to the entity drawing its marker. A goal
	// may be covered by a block, so goal keys can coincide with obstacle
	// keys.
	Goals map[core.Position]EntityID

	// Player is the player's current tile.
	Player core.Position

	// PlayerEntity is the handle of the player's visual object.
	PlayerEntity EntityID
}

// NewLevelState creates an empty state for the given level id.
func NewLevelState(level int) *LevelState {
	return &LevelState{
		Level:        level,
		Obstacles:    make(map[core.Position]Obstacle),
		Goals:        make(map[core.Position]EntityID),
		PlayerEntity: NoEntity,
	}
}

// Clone returns a deep copy. Undo snapshots are clones, so later mutation of
// the live state never leaks into stored history.
func (s *LevelState) Clone() *LevelState {
	c := &LevelState{
		Level:        s.Level,
		Obstacles:    make(map[core.Position]Obstacle, len(s.Obstacles)),
		Goals:        make(map[core.Position]EntityID, len(s.Goals)),
		Player:       s.Player,
		PlayerEntity: s.PlayerEntity,
	}
	for p, o := range s.Obstacles {
		c.Obstacles[p] = o
	}
	for p, e := range s.Goals {
		c.Goals[p] = e
	}
	return c
}

// Equal reports field-for-field equality with another state.
func (s *LevelState) Equal(o *LevelState) bool {
	if s.Level != o.Level || s.Player != o.Player || s.PlayerEntity != o.PlayerEntity {
		return false
	}
	if len(s.Obstacles) != len(o.Obstacles) || len(s.Goals) != len(o.Goals) {
		return false
	}
	for p, obs := range s.Obstacles {
		if other, ok := o.Obstacles[p]; !ok || other != obs {
			return false
		}
	}
	for p, e := range s.Goals {
		if other, ok := o.Goals[p]; !ok || other != e {
			return false
		}
	}
	return true
}

// ObstacleAt looks up the obstacle occupying a tile.
func (s *LevelState) ObstacleAt(p core.Position) (Obstacle, bool) {
	o, ok := s.Obstacles[p]
	return o, ok
}

// placeObstacle inserts an obstacle at a tile during level load.
// Two obstacles on one tile is a programming fault.
func (s *LevelState) placeObstacle(p core.Position, o Obstacle) {
	if _, occupied := s.Obstacles[p]; occupied {
		panic(fmt.Sprintf("sim: duplicate obstacle at %v", p))
	}
	s.Obstacles[p] = o
}

// moveObstacle remaps the obstacle entry at from to to. A missing entry at
// from is a no-op (the player has no obstacle record); a collision at to is
// a programming fault.
func (s *LevelState) moveObstacle(from, to core.Position) {
	o, ok := s.Obstacles[from]
	if !ok {
		return
	}
	delete(s.Obstacles, from)
	if _, occupied := s.Obstacles[to]; occupied {
		panic(fmt.Sprintf("sim: obstacle collision at %v", to))
	}
	s.Obstacles[to] = o
}

// AllGoalsCovered reports whether every goal tile holds some obstacle.
// In valid levels only blocks ever end up on goals; walls are static and
// never placed on goal tiles.
func (s *LevelState) AllGoalsCovered() bool {
	for p := range s.Goals {
		if _, covered := s.Obstacles[p]; !covered {
			return false
		}
	}
	return true
}

// CoveredGoals counts goal tiles currently holding an obstacle.
func (s *LevelState) CoveredGoals() int {
	n := 0
	for p := range s.Goals {
		if _, covered := s.Obstacles[p]; covered {
			n++
		}
	}
	return n
}
