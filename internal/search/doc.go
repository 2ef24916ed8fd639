// Package search solves single player Freckers boards.
//
// It exposes three entry points:
//
//   - Moves: every destination the agent can reach in one turn.
//   - Solve: A* over agent positions, returning a sequence of turns.
//   - ShortestTurns: exact breadth-first turn count, used to check Solve.
//
// The board is never mutated; all reasoning is about hypothetical agent
// positions on a fixed layout.
package search
