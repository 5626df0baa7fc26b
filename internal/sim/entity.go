// Package sim implements the sokoban puzzle engine: the grid data model,
// move legality and push resolution, the timed move state machine, the undo
// stack, win detection and level transition. It contains pure logic with no
// terminal dependencies; the platform layer drives it once per tick and reads
// back entity positions for display.
package sim

import "fmt"

// EntityID is a stable handle for a visual game object. Handles are indexes
// into the level's Arena and are never freed or reused while the level is
// live, so any undo snapshot taken during the level resolves to the same set
// of objects. NoEntity marks the absence of a handle.
type EntityID int

// NoEntity is the zero-object handle.
const NoEntity EntityID = -1

// EntityKind classifies what a spawned entity represents on screen.
type EntityKind uint8

const (
	EntityPlayer EntityKind = iota
	EntityBlock
	EntityWall
	EntityGoal
	EntityFloor
)

// String returns a human-readable name for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	case EntityBlock:
		return "block"
	case EntityWall:
		return "wall"
	case EntityGoal:
		return "goal"
	case EntityFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Arena owns the entity identities for one level. It is append-only: a level
// spawns all of its entities at load time and the whole arena is discarded
// together with the level state and undo stack on a level transition. That
// lifetime rule is what keeps handles inside undo snapshots valid.
type Arena struct {
	kinds []EntityKind
}

// NewArena creates an empty entity arena.
func NewArena() *Arena {
	return &Arena{}
}

// Spawn allocates a new entity of the given kind and returns its handle.
func (a *Arena) Spawn(k EntityKind) EntityID {
	a.kinds = append(a.kinds, k)
	return EntityID(len(a.kinds) - 1)
}

// Valid reports whether the handle resolves to a live entity.
func (a *Arena) Valid(id EntityID) bool {
	return id >= 0 && int(id) < len(a.kinds)
}

// Kind returns the kind of the entity behind the handle.
// An unknown handle is a programming fault and panics.
func (a *Arena) Kind(id EntityID) EntityKind {
	if !a.Valid(id) {
		panic(fmt.Sprintf("sim: unknown entity handle %d", id))
	}
	return a.kinds[id]
}

// Len returns the number of spawned entities.
func (a *Arena) Len() int {
	return len(a.kinds)
}
