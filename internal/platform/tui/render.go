// Package tui provides terminal UI components: colored board rendering,
// a step-through solution viewer, a board picker, and SSH serving via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/freckers/internal/core"
)

// cellStyles maps cell states to lipgloss styles.
var cellStyles = map[core.CellState]lipgloss.Style{
	core.CellEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.CellAgent:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
	core.CellObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
	core.CellPad:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

var (
	trailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	goalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// BoardView describes what to draw on top of a board.
type BoardView struct {
	Board *core.Board
	Agent *core.Coord         // overrides the board's agent position when set
	Trail map[core.Coord]bool // squares visited earlier in a replay
	Color bool                // false renders plain text
}

// RenderBoard renders the board with column and row labels.
// Each cell is two characters wide so the board stays roughly square.
func RenderBoard(v BoardView) string {
	b := v.Board
	if v.Agent != nil {
		b = b.WithAgentAt(*v.Agent)
	}

	var sb strings.Builder
	sb.WriteString(v.style(labelStyle, "  "))
	for c := 0; c < core.BoardN; c++ {
		sb.WriteString(v.style(labelStyle, fmt.Sprintf(" %d", c)))
	}
	sb.WriteRune('\n')

	for r := 0; r < core.BoardN; r++ {
		label := fmt.Sprintf("%d ", r)
		if r == core.GoalRow {
			sb.WriteString(v.style(goalStyle, label))
		} else {
			sb.WriteString(v.style(labelStyle, label))
		}

		for c := 0; c < core.BoardN; c++ {
			pos := core.C(r, c)
			state, _ := b.At(pos)
			cell := " " + string(state.Char())

			switch {
			case state == core.CellAgent:
				sb.WriteString(v.style(cellStyles[core.CellAgent], cell))
			case v.Trail[pos]:
				sb.WriteString(v.style(trailStyle, " o"))
			default:
				sb.WriteString(v.style(cellStyles[state], cell))
			}
		}
		if r < core.BoardN-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// RenderDiagnostic renders a board the way the solver prints it before
// searching.
func RenderDiagnostic(b *core.Board, color bool) string {
	if !color {
		return strings.TrimSuffix(core.RenderASCII(b), "\n")
	}
	return RenderBoard(BoardView{Board: b, Color: color})
}

func (v BoardView) style(s lipgloss.Style, text string) string {
	if !v.Color {
		return text
	}
	return s.Render(text)
}
