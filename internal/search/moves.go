package search

import "github.com/vovakirdan/freckers/internal/core"

// Destination is a position reachable in one turn together with the
// directions taken to get there.
type Destination struct {
	To   core.Coord
	Dirs []core.Dir
}

// Move converts the destination into a move starting at from.
func (d Destination) Move(from core.Coord) core.Move {
	return core.Move{From: from, Dirs: d.Dirs}
}

// Moves returns every destination reachable from `from` in a single turn.
//
// Single steps go onto an adjacent pad. Jumps go over an adjacent obstacle
// onto the pad behind it and may be chained; every landing of a chain is a
// destination of its own. A landing already visited in the current chain is
// never revisited, so chains terminate.
func Moves(b *core.Board, from core.Coord) []Destination {
	var out []Destination

	for _, d := range core.AgentDirs {
		next, ok := from.Step(d)
		if !ok || !b.Is(next, core.CellPad) {
			continue
		}
		out = append(out, Destination{To: next, Dirs: []core.Dir{d}})
	}

	visited := map[core.Coord]bool{from: true}
	return appendJumps(out, b, from, nil, visited)
}

// appendJumps explores jump chains depth-first from pos.
// dirs and visited belong to the caller and are copied before extension,
// so sibling branches never see each other's state.
func appendJumps(out []Destination, b *core.Board, pos core.Coord, dirs []core.Dir, visited map[core.Coord]bool) []Destination {
	for _, d := range core.AgentDirs {
		over, ok := pos.Step(d)
		if !ok || !b.Is(over, core.CellObstacle) {
			continue
		}
		land, ok := over.Step(d)
		if !ok || !b.Is(land, core.CellPad) || visited[land] {
			continue
		}

		chain := make([]core.Dir, len(dirs), len(dirs)+1)
		copy(chain, dirs)
		chain = append(chain, d)
		out = append(out, Destination{To: land, Dirs: chain})

		seen := make(map[core.Coord]bool, len(visited)+1)
		for c := range visited {
			seen[c] = true
		}
		seen[land] = true

		out = appendJumps(out, b, land, chain, seen)
	}
	return out
}
