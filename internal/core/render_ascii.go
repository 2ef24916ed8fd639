package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates a plain-text representation of the board.
// This is used for debugging, testing (golden outputs), and log output.
//
// Format:
//   - Column header 0..N-1, one row per line prefixed by its index
//   - Cells: agent='R', obstacle='B', pad='*', empty='.'
func RenderASCII(b *Board) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for c := 0; c < BoardN; c++ {
		sb.WriteString(fmt.Sprintf(" %d", c))
	}
	sb.WriteString("\n")

	for r := 0; r < BoardN; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for c := 0; c < BoardN; c++ {
			s, _ := b.At(C(r, c))
			sb.WriteRune(' ')
			sb.WriteRune(s.Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCompact renders the board as BoardN rows of BoardN characters,
// the same layout board files use.
func RenderCompact(b *Board) string {
	var sb strings.Builder
	for r := 0; r < BoardN; r++ {
		for c := 0; c < BoardN; c++ {
			s, _ := b.At(C(r, c))
			sb.WriteRune(s.Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPath renders the board with the visited positions of a replay
// numbered in order (1-9, then a-z). The start keeps its agent marker.
func RenderPath(b *Board, path []Coord) string {
	marks := make(map[Coord]rune, len(path))
	for i, c := range path {
		if i == 0 {
			continue
		}
		marks[c] = stepRune(i)
	}

	var sb strings.Builder
	for r := 0; r < BoardN; r++ {
		for c := 0; c < BoardN; c++ {
			pos := C(r, c)
			if m, ok := marks[pos]; ok {
				sb.WriteRune(m)
				continue
			}
			s, _ := b.At(pos)
			sb.WriteRune(s.Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func stepRune(i int) rune {
	if i < 10 {
		return rune('0' + i)
	}
	if i-10 < 26 {
		return rune('a' + i - 10)
	}
	return '#'
}
