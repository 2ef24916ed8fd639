package search

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/freckers/internal/core"
)

// grid builds a board from BoardN row strings in board-file notation.
// Missing trailing rows are empty.
func grid(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	cells := make(map[core.Coord]core.CellState)
	for r, line := range rows {
		for c, ch := range line {
			s, ok := core.ParseCellChar(ch)
			if !ok {
				t.Fatalf("bad cell %q at row %d col %d", ch, r, c)
			}
			if s != core.CellEmpty {
				cells[core.C(r, c)] = s
			}
		}
	}
	return core.NewBoard(cells)
}

// randomBoard places an agent in the top half and fills the rest with pads
// and obstacles.
func randomBoard(rng *rand.Rand) *core.Board {
	cells := make(map[core.Coord]core.CellState)
	agent := core.C(rng.Intn(core.BoardN/2), rng.Intn(core.BoardN))
	for r := 0; r < core.BoardN; r++ {
		for c := 0; c < core.BoardN; c++ {
			pos := core.C(r, c)
			if pos == agent {
				cells[pos] = core.CellAgent
				continue
			}
			switch x := rng.Intn(100); {
			case x < 40:
				cells[pos] = core.CellPad
			case x < 65:
				cells[pos] = core.CellObstacle
			}
		}
	}
	return core.NewBoard(cells)
}
