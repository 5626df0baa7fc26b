package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Layout is a rectangular matrix of tile codes, row-major with y growing
// downward.
type Layout = [][]int

// Tile codes understood by the loader. Any other value reads as empty floor.
const (
	CodeFloor  = 0
	CodePlayer = 1
	CodeBlock  = 2
	CodeGoal   = 4
	CodeWall   = 8
)

// Loader errors. Levels are static, trusted configuration, so these are
// fatal at the program boundary.
var (
	ErrEmptyLayout = errors.New("sim: empty level layout")
	ErrNoPlayer    = errors.New("sim: level has no player tile")
)

// LoadedLevel bundles everything a freshly loaded level consists of: the
// authoritative state, the entity arena backing its handles, and the
// reachable floor set used for floor visuals.
type LoadedLevel struct {
	State  *LevelState
	Arena  *Arena
	Floors map[core.Position]bool
	Width  int
	Height int
}

// Load parses a layout matrix into a fresh level. Every non-empty code
// spawns an entity into a new arena and records its placement; exactly one
// player tile is required. After placement the connectivity scan computes
// which tiles receive floor visuals.
func Load(id int, layout Layout) (*LoadedLevel, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}

	st := NewLevelState(id)
	arena := NewArena()

	width := 0
	for y, row := range layout {
		if len(row) > width {
			width = len(row)
		}
		for x, code := range row {
			pos := core.Pos(x, y)
			switch code {
			case CodePlayer:
				if st.PlayerEntity != NoEntity {
					return nil, fmt.Errorf("sim: level %d has multiple player tiles", id)
				}
				st.Player = pos
				st.PlayerEntity = arena.Spawn(EntityPlayer)
			case CodeBlock:
				st.placeObstacle(pos, Obstacle{Entity: arena.Spawn(EntityBlock), Kind: Block})
			case CodeGoal:
				st.Goals[pos] = arena.Spawn(EntityGoal)
			case CodeWall:
				st.placeObstacle(pos, Obstacle{Entity: arena.Spawn(EntityWall), Kind: Wall})
			default:
				// CodeFloor and unknown codes are empty floor.
			}
		}
	}

	if st.PlayerEntity == NoEntity {
		return nil, fmt.Errorf("level %d: %w", id, ErrNoPlayer)
	}

	return &LoadedLevel{
		State:  st,
		Arena:  arena,
		Floors: FloorPositions(st.Player, st.Obstacles),
		Width:  width,
		Height: len(layout),
	}, nil
}
