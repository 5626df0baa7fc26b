package sim

import "github.com/vovakirdan/tui-sokoban/internal/core"

// FloorPositions computes the set of tiles reachable from start over the
// 4-connected neighbor graph. Walls stop the traversal; blocks do not, since
// a block may later be pushed away. The result decides which tiles receive
// floor visuals only; movement legality is governed solely by the obstacles
// map and never consults this set.
//
// The output is a set, so it is identical regardless of visitation order.
func FloorPositions(start core.Position, obstacles map[core.Position]Obstacle) map[core.Position]bool {
	visited := make(map[core.Position]bool)
	toVisit := []core.Position{start}

	for len(toVisit) > 0 {
		current := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, d := range [...]core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
			neighbor := current.Move(d)
			if obs, ok := obstacles[neighbor]; ok && obs.Kind == Wall {
				continue
			}
			toVisit = append(toVisit, neighbor)
		}
	}

	return visited
}
