package search

import (
	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/registry"
)

// Heuristic names registered by this package.
const (
	HeuristicAdaptive = "adaptive"
	HeuristicRows     = "rows"
	HeuristicZero     = "zero"
)

func init() {
	registry.Register(HeuristicAdaptive,
		"remaining rows divided by the best one-turn advance (default)",
		func(b *core.Board) registry.Heuristic { return NewAdaptive(b) })
	registry.Register(HeuristicRows,
		"flat rows remaining to the goal row",
		func(b *core.Board) registry.Heuristic { return Rows{} })
	registry.Register(HeuristicZero,
		"no estimate; uniform-cost search",
		func(b *core.Board) registry.Heuristic { return Zero{} })
}

// Adaptive estimates turns left by looking one turn ahead.
//
// It finds the furthest row reachable in one turn and assumes every further
// turn advances at least that far. This tracks the local jump-chain reach
// rather than a fixed step size. It is not admissible on every layout: a
// position just past a short step can open a long chain.
type Adaptive struct {
	board *core.Board
	cache map[core.Coord]int
}

// NewAdaptive creates an adaptive heuristic for the board.
// Estimates are cached per position; the board must not change while in use.
func NewAdaptive(b *core.Board) *Adaptive {
	return &Adaptive{board: b, cache: make(map[core.Coord]int)}
}

// Name implements registry.Heuristic.
func (h *Adaptive) Name() string { return HeuristicAdaptive }

// Estimate implements registry.Heuristic.
func (h *Adaptive) Estimate(pos core.Coord) int {
	if v, ok := h.cache[pos]; ok {
		return v
	}
	v := h.estimate(pos)
	h.cache[pos] = v
	return v
}

func (h *Adaptive) estimate(pos core.Coord) int {
	if pos.AtGoal() {
		return 0
	}

	best := pos.R
	for _, d := range Moves(h.board, pos) {
		if d.To.R > best {
			best = d.To.R
		}
	}

	advance := max(best-pos.R, 1)
	remaining := core.GoalRow - pos.R
	return (remaining + advance - 1) / advance
}

// Rows estimates turns left as the number of rows left.
type Rows struct{}

// Name implements registry.Heuristic.
func (Rows) Name() string { return HeuristicRows }

// Estimate implements registry.Heuristic.
func (Rows) Estimate(pos core.Coord) int {
	return max(core.GoalRow-pos.R, 0)
}

// Zero never estimates anything, turning A* into uniform-cost search.
type Zero struct{}

// Name implements registry.Heuristic.
func (Zero) Name() string { return HeuristicZero }

// Estimate implements registry.Heuristic.
func (Zero) Estimate(core.Coord) int { return 0 }
