package search

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/freckers/internal/core"
)

// checkSolution verifies that the moves are legal, chain from the agent,
// and finish on the goal row.
func checkSolution(t *testing.T, b *core.Board, res Result) {
	t.Helper()
	start, ok := b.Agent()
	require.True(t, ok)

	path, ok := core.Replay(b, start, res.Moves)
	require.True(t, ok, "solution does not replay: %v", res.Moves)
	assert.True(t, path[len(path)-1].AtGoal(), "solution ends at %v", path[len(path)-1])
}

func TestSolveNoAgent(t *testing.T) {
	b := grid(t,
		"...*....",
		"...*....",
	)
	res := Solve(b)
	assert.False(t, res.Found)
	assert.Nil(t, res.Moves)
	assert.Equal(t, -1, res.Turns())
}

func TestSolveAgentOnGoalRow(t *testing.T) {
	b := grid(t, "", "", "", "", "", "", "", "..R.....")
	res := Solve(b)
	require.True(t, res.Found)
	assert.Empty(t, res.Moves)
	assert.NotNil(t, res.Moves)
	assert.Equal(t, 0, res.Turns())
}

func TestSolveStraightColumn(t *testing.T) {
	b := grid(t,
		"...R....",
		"...*....",
		"...*....",
		"...*....",
		"...*....",
		"...*....",
		"...*....",
		"...*....",
	)

	res := Solve(b)
	require.True(t, res.Found)
	require.Len(t, res.Moves, 7)
	for i, m := range res.Moves {
		assert.Equal(t, core.C(i, 3), m.From)
		assert.Equal(t, []core.Dir{core.DirDown}, m.Dirs)
	}
	checkSolution(t, b, res)
}

func TestSolveNoReachablePad(t *testing.T) {
	b := grid(t,
		"...R....",
		"........",
		"*******.",
		"........",
		"........",
		"........",
		"........",
		"********",
	)
	res := Solve(b)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Expanded)
}

func TestSolveSingleJump(t *testing.T) {
	b := grid(t,
		"",
		"",
		"",
		"",
		"",
		"...R....",
		"...B....",
		"...*....",
	)

	res := Solve(b)
	require.True(t, res.Found)
	require.Len(t, res.Moves, 1)
	assert.Equal(t, core.Move{From: core.C(5, 3), Dirs: []core.Dir{core.DirDown}}, res.Moves[0])
	assert.True(t, res.Moves[0].Jump(b))
	assert.True(t, b.Is(core.C(6, 3), core.CellObstacle), "obstacle must stay in place")
}

func TestSolveChainCountsAsOneTurn(t *testing.T) {
	b := grid(t,
		"...R....",
		"...B....",
		"...*....",
		"...B....",
		"...*....",
		"...B....",
		"...*....",
		"...B*...",
	)
	// Down x3 lands on (6,3); the last row is reached by one more step.
	res := Solve(b)
	require.True(t, res.Found)
	assert.Len(t, res.Moves, 2)
	assert.Equal(t, []core.Dir{core.DirDown, core.DirDown, core.DirDown}, res.Moves[0].Dirs)
	checkSolution(t, b, res)
}

func TestSolveUnknownHeuristicFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	b := grid(t, "", "", "", "", "", "", "..R.....", "..*.....")
	res := Solve(b, WithHeuristic("nope"), WithLogger(logger))
	assert.True(t, res.Found)
	assert.Equal(t, HeuristicAdaptive, res.Heuristic)
	assert.Contains(t, buf.String(), "falling back")
}

func TestSolveDiagnosticsCalledOnce(t *testing.T) {
	calls := 0
	b := grid(t, "..R.....", "..*.....")
	Solve(b, WithDiagnostics(func(got *core.Board) {
		calls++
		assert.Same(t, b, got)
	}))
	assert.Equal(t, 1, calls)
}

func TestSolveAgainstBreadthFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		b := randomBoard(rng)
		want, solvable := ShortestTurns(b)

		exact := Solve(b, WithHeuristic(HeuristicZero))
		require.Equal(t, solvable, exact.Found, "board %d:\n%s", i, core.RenderASCII(b))
		if solvable {
			require.Equal(t, want, exact.Turns(), "board %d:\n%s", i, core.RenderASCII(b))
			checkSolution(t, b, exact)
		}

		for _, name := range []string{HeuristicAdaptive, HeuristicRows} {
			res := Solve(b, WithHeuristic(name))
			require.Equal(t, solvable, res.Found, "%s on board %d", name, i)
			assert.LessOrEqual(t, res.Expanded, core.BoardN*core.BoardN)
			if solvable {
				assert.GreaterOrEqual(t, res.Turns(), want, "%s on board %d", name, i)
				checkSolution(t, b, res)
			}
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		b := randomBoard(rng)
		first := Solve(b)
		second := Solve(b)
		assert.Equal(t, first.Found, second.Found)
		assert.Equal(t, first.Turns(), second.Turns())
	}
}
