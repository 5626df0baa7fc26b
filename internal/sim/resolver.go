package sim

import "github.com/vovakirdan/tui-sokoban/internal/core"

// PendingMove is the in-flight displacement of one entity. A plain step
// carries a single pending move for the player; a push carries two, player
// first, sharing the mover's timer so both commit in lockstep.
type PendingMove struct {
	Entity EntityID
	From   core.Position
	To     core.Position
}

// Resolve validates a directional intent against the current state and, when
// legal, returns the pending moves it produces. Rejection (stepping into a
// wall, or pushing a block whose far side is occupied) is a normal outcome,
// not an error: no moves are created and the state is untouched. Only a
// single block moves per push; chained pushes are never legal.
func Resolve(st *LevelState, dir core.Direction) ([]PendingMove, bool) {
	dest := st.Player.Move(dir)
	moves := []PendingMove{{Entity: st.PlayerEntity, From: st.Player, To: dest}}

	if obs, ok := st.ObstacleAt(dest); ok {
		switch obs.Kind {
		case Wall:
			return nil, false
		case Block:
			beyond := dest.Move(dir)
			if _, occupied := st.ObstacleAt(beyond); occupied {
				return nil, false
			}
			moves = append(moves, PendingMove{Entity: obs.Entity, From: dest, To: beyond})
		}
	}

	return moves, true
}
