package core

import (
	"fmt"
	"strings"
)

// Move is one turn of the agent: either a single step or a chain of jumps,
// taken from From in the listed directions.
type Move struct {
	From Coord
	Dirs []Dir
}

// String formats the move as "MOVE (r,c) Down,Left".
func (m Move) String() string {
	names := make([]string, len(m.Dirs))
	for i, d := range m.Dirs {
		names[i] = d.String()
	}
	return "MOVE " + m.From.String() + " " + strings.Join(names, ",")
}

// Jump reports whether the move jumps over an obstacle on the given board.
// A move is a jump when the first square it passes is an obstacle.
func (m Move) Jump(b *Board) bool {
	if len(m.Dirs) == 0 {
		return false
	}
	next, ok := m.From.Step(m.Dirs[0])
	return ok && b.Is(next, CellObstacle)
}

// Destination replays the move on the board and returns where it ends.
// Returns false if any step of the move is not legal on this board.
func (m Move) Destination(b *Board) (Coord, bool) {
	if len(m.Dirs) == 0 {
		return m.From, false
	}

	if !m.Jump(b) {
		if len(m.Dirs) != 1 || !m.Dirs[0].Legal() {
			return m.From, false
		}
		next, ok := m.From.Step(m.Dirs[0])
		if !ok || !b.Is(next, CellPad) {
			return m.From, false
		}
		return next, true
	}

	pos := m.From
	for _, d := range m.Dirs {
		if !d.Legal() {
			return m.From, false
		}
		over, ok := pos.Step(d)
		if !ok || !b.Is(over, CellObstacle) {
			return m.From, false
		}
		land, ok := over.Step(d)
		if !ok || !b.Is(land, CellPad) {
			return m.From, false
		}
		pos = land
	}
	return pos, true
}

// Replay applies the moves in order starting from start and returns every
// position visited, beginning with start itself.
// Stops at the first illegal move and reports false.
func Replay(b *Board, start Coord, moves []Move) ([]Coord, bool) {
	path := []Coord{start}
	pos := start
	for _, m := range moves {
		if m.From != pos {
			return path, false
		}
		next, ok := m.Destination(b)
		if !ok {
			return path, false
		}
		path = append(path, next)
		pos = next
	}
	return path, true
}

// ParseMove parses the "MOVE (r,c) Down,Left" form produced by String.
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 || fields[0] != "MOVE" {
		return Move{}, fmt.Errorf("core: malformed move %q", s)
	}

	var from Coord
	if _, err := fmt.Sscanf(fields[1], "(%d,%d)", &from.R, &from.C); err != nil {
		return Move{}, fmt.Errorf("core: malformed position in %q: %w", s, err)
	}

	names := strings.Split(fields[2], ",")
	dirs := make([]Dir, 0, len(names))
	for _, name := range names {
		d, ok := ParseDir(name)
		if !ok {
			return Move{}, fmt.Errorf("core: unknown direction %q in %q", name, s)
		}
		dirs = append(dirs, d)
	}
	return Move{From: from, Dirs: dirs}, nil
}
