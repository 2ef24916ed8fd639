package core

import "sort"

// Board is an immutable mapping from positions to cell contents.
// Positions absent from the mapping are empty.
type Board struct {
	cells map[Coord]CellState
	agent Coord
	found bool
}

// NewBoard creates a board from the given cells.
// The map is copied; out-of-bounds and empty entries are dropped.
func NewBoard(cells map[Coord]CellState) *Board {
	b := &Board{cells: make(map[Coord]CellState, len(cells))}
	for c, s := range cells {
		if !c.InBounds() || s == CellEmpty {
			continue
		}
		b.cells[c] = s
		if s == CellAgent && !b.found {
			b.agent = c
			b.found = true
		}
	}
	return b
}

// At returns the state of the given position and whether it is occupied.
func (b *Board) At(c Coord) (CellState, bool) {
	s, ok := b.cells[c]
	return s, ok
}

// Is reports whether the position holds the given state.
func (b *Board) Is(c Coord, s CellState) bool {
	got, ok := b.cells[c]
	return ok && got == s
}

// Agent returns the agent's starting position.
// The second result is false when the board has no agent.
func (b *Board) Agent() (Coord, bool) {
	return b.agent, b.found
}

// Len returns the number of occupied positions.
func (b *Board) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the board contents.
func (b *Board) Cells() map[Coord]CellState {
	out := make(map[Coord]CellState, len(b.cells))
	for c, s := range b.cells {
		out[c] = s
	}
	return out
}

// Coords returns all occupied positions in row-major order.
func (b *Board) Coords() []Coord {
	coords := make([]Coord, 0, len(b.cells))
	for c := range b.cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].R != coords[j].R {
			return coords[i].R < coords[j].R
		}
		return coords[i].C < coords[j].C
	})
	return coords
}

// Count returns the number of positions holding the given state.
func (b *Board) Count(s CellState) int {
	n := 0
	for _, got := range b.cells {
		if got == s {
			n++
		}
	}
	return n
}

// WithAgentAt returns a copy of the board with the agent moved to pos.
// The agent's old square becomes empty. Used for rendering replays only.
func (b *Board) WithAgentAt(pos Coord) *Board {
	cells := b.Cells()
	if b.found {
		delete(cells, b.agent)
	}
	cells[pos] = CellAgent
	return NewBoard(cells)
}
