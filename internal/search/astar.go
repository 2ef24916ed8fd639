package search

import (
	"container/heap"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/registry"
)

// Result contains the outcome of a search.
type Result struct {
	Moves     []core.Move // start-to-goal order; empty when already at the goal
	Found     bool        // false means the board has no solution
	Expanded  int         // positions moved into the closed set
	Generated int         // frontier pushes, including the start
	Heuristic string
}

// Turns returns the number of turns in the solution, or -1 if none was found.
func (r Result) Turns() int {
	if !r.Found {
		return -1
	}
	return len(r.Moves)
}

// Options defines parameters for the search.
type Options struct {
	Heuristic   string
	Logger      *log.Logger
	Diagnostics func(b *core.Board)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic selects a registered heuristic by name.
// Unknown names fall back to the adaptive heuristic.
func WithHeuristic(name string) Option {
	return func(o *Options) { o.Heuristic = name }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithDiagnostics installs a hook that receives the board once before the
// search starts, typically to print it.
func WithDiagnostics(fn func(b *core.Board)) Option {
	return func(o *Options) { o.Diagnostics = fn }
}

// predecessor records how a position was first reached most cheaply.
type predecessor struct {
	from core.Coord
	move core.Move
}

// Solve runs A* from the agent's position to the goal row.
//
// Each turn costs 1 regardless of how many jumps it chains. A board without
// an agent, or one whose frontier runs dry, yields Found == false.
func Solve(b *core.Board, options ...Option) Result {
	opts := Options{Heuristic: HeuristicAdaptive}
	for _, o := range options {
		o(&opts)
	}

	if opts.Diagnostics != nil {
		opts.Diagnostics(b)
	}

	h := resolveHeuristic(b, opts)
	result := Result{Heuristic: h.Name()}

	start, ok := b.Agent()
	if !ok {
		debug(opts.Logger, "board has no agent")
		return result
	}

	open := frontier{}
	var seq uint64
	heap.Push(&open, frontierItem{pos: start, f: h.Estimate(start), seq: seq})
	seq++
	result.Generated++

	gScore := map[core.Coord]int{start: 0}
	cameFrom := make(map[core.Coord]predecessor)
	closed := make(map[core.Coord]bool)

	for open.Len() > 0 {
		item := heap.Pop(&open).(frontierItem)
		current := item.pos

		if closed[current] {
			continue
		}

		if current.AtGoal() {
			result.Found = true
			result.Moves = reconstruct(cameFrom, current)
			debug(opts.Logger, "solution found",
				"turns", len(result.Moves),
				"expanded", result.Expanded,
				"generated", result.Generated,
			)
			if opts.Logger != nil && opts.Logger.GetLevel() <= log.DebugLevel {
				path, _ := core.Replay(b, start, result.Moves)
				opts.Logger.Debug("solution path\n" + core.RenderPath(b, path))
			}
			return result
		}

		closed[current] = true
		result.Expanded++

		tentative := gScore[current] + 1
		for _, dest := range Moves(b, current) {
			if g, seen := gScore[dest.To]; seen && tentative >= g {
				continue
			}
			gScore[dest.To] = tentative
			heap.Push(&open, frontierItem{
				pos: dest.To,
				f:   tentative + h.Estimate(dest.To),
				seq: seq,
			})
			seq++
			result.Generated++
			cameFrom[dest.To] = predecessor{from: current, move: dest.Move(current)}
		}
	}

	debug(opts.Logger, "frontier exhausted",
		"expanded", result.Expanded,
		"generated", result.Generated,
	)
	return result
}

// reconstruct walks the predecessor chain back from goal and returns the
// moves in start-to-goal order.
func reconstruct(cameFrom map[core.Coord]predecessor, goal core.Coord) []core.Move {
	moves := []core.Move{}
	pos := goal
	for {
		p, ok := cameFrom[pos]
		if !ok {
			break
		}
		moves = append(moves, p.move)
		pos = p.from
	}

	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

func resolveHeuristic(b *core.Board, opts Options) registry.Heuristic {
	h, err := registry.Create(opts.Heuristic, b)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("falling back to adaptive heuristic", "error", err)
		}
		return NewAdaptive(b)
	}
	return h
}

func debug(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}
}
