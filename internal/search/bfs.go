package search

import "github.com/vovakirdan/freckers/internal/core"

// ShortestTurns returns the exact minimum number of turns needed to reach
// the goal row, found by breadth-first search over agent positions.
// The second result is false when the board has no agent or no solution.
func ShortestTurns(b *core.Board) (int, bool) {
	start, ok := b.Agent()
	if !ok {
		return 0, false
	}
	if start.AtGoal() {
		return 0, true
	}

	depth := map[core.Coord]int{start: 0}
	queue := []core.Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dest := range Moves(b, current) {
			if _, seen := depth[dest.To]; seen {
				continue
			}
			depth[dest.To] = depth[current] + 1
			if dest.To.AtGoal() {
				return depth[dest.To], true
			}
			queue = append(queue, dest.To)
		}
	}

	return 0, false
}
