// Package core provides the board model for single player Freckers.
// It contains no search logic and no UI dependencies; everything here is a
// plain value type or a read-only view over the board contents.
package core

import (
	"fmt"
	"strings"
)

// BoardN is the side length of the square board.
const BoardN = 8

// GoalRow is the row the agent has to reach.
const GoalRow = BoardN - 1

// Dir represents one of the eight unit directions on the board.
type Dir uint8

const (
	DirUp Dir = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

// AgentDirs lists the directions the agent may move in.
// The agent can never move upward.
var AgentDirs = []Dir{DirDown, DirDownLeft, DirDownRight, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirUpRight:
		return "UpRight"
	case DirRight:
		return "Right"
	case DirDownRight:
		return "DownRight"
	case DirDown:
		return "Down"
	case DirDownLeft:
		return "DownLeft"
	case DirLeft:
		return "Left"
	case DirUpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) offset for moving one step in this direction.
// Rows grow downward.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirUpRight:
		return -1, 1
	case DirRight:
		return 0, 1
	case DirDownRight:
		return 1, 1
	case DirDown:
		return 1, 0
	case DirDownLeft:
		return 1, -1
	case DirLeft:
		return 0, -1
	case DirUpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// Legal reports whether the agent is allowed to move in this direction.
func (d Dir) Legal() bool {
	for _, a := range AgentDirs {
		if a == d {
			return true
		}
	}
	return false
}

// ParseDir parses a direction name case-insensitively.
// Both "DownLeft" and "down-left" spellings are accepted.
func ParseDir(s string) (Dir, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for d := DirUp; d <= DirUpLeft; d++ {
		if strings.ToLower(d.String()) == norm {
			return d, true
		}
	}
	return 0, false
}

// CellState is the content of an occupied board position.
// The zero value means the position is absent from the board.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellAgent
	CellObstacle
	CellPad
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellAgent:
		return "agent"
	case CellObstacle:
		return "obstacle"
	case CellPad:
		return "pad"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Char returns the single-character form used in board files and renders.
func (s CellState) Char() rune {
	switch s {
	case CellAgent:
		return 'R'
	case CellObstacle:
		return 'B'
	case CellPad:
		return '*'
	default:
		return '.'
	}
}

// ParseCellChar converts a board-file character to a cell state.
// Lowercase letters are accepted as well.
func ParseCellChar(r rune) (CellState, bool) {
	switch r {
	case 'R', 'r':
		return CellAgent, true
	case 'B', 'b':
		return CellObstacle, true
	case '*', 'L', 'l':
		return CellPad, true
	case '.':
		return CellEmpty, true
	default:
		return CellEmpty, false
	}
}

// ParseCellState parses a long-form cell state name ("agent", "red", "pad", ...).
func ParseCellState(s string) (CellState, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "agent", "red", "r":
		return CellAgent, true
	case "obstacle", "blue", "b":
		return CellObstacle, true
	case "pad", "lily_pad", "lilypad", "*":
		return CellPad, true
	case "empty", ".":
		return CellEmpty, true
	default:
		return CellEmpty, false
	}
}
