// Package formats provides board file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/freckers/internal/core"
)

// YAMLBoard represents the YAML structure for a board file.
type YAMLBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows,omitempty"`
	Cells    []YAMLCell        `yaml:"cells,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCell represents a single explicitly listed cell.
type YAMLCell struct {
	R int    `yaml:"r"`
	C int    `yaml:"c"`
	S string `yaml:"s"` // agent, obstacle, pad (or red, blue, lily_pad)
}

// Board represents a parsed board ready for use.
type Board struct {
	ID       string
	Name     string
	Cells    map[core.Coord]core.CellState
	Metadata map[string]string
}

// ParseError describes a problem at a specific place in a board file.
type ParseError struct {
	Where string
	Msg   string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Where, e.Msg)
}

// ParseYAML parses a YAML board file.
// Rows are applied first, then explicit cells override them.
func ParseYAML(data []byte) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	cells, err := ParseRows(yb.Rows)
	if err != nil {
		return Board{}, err
	}

	for i, yc := range yb.Cells {
		where := fmt.Sprintf("cells[%d]", i)
		pos := core.C(yc.R, yc.C)
		if !pos.InBounds() {
			return Board{}, ParseError{Where: where, Msg: fmt.Sprintf("position %v is off the board", pos)}
		}
		state, ok := core.ParseCellState(yc.S)
		if !ok {
			return Board{}, ParseError{Where: where, Msg: fmt.Sprintf("unknown cell state %q", yc.S)}
		}
		if state == core.CellEmpty {
			delete(cells, pos)
			continue
		}
		cells[pos] = state
	}

	if n := countAgents(cells); n > 1 {
		return Board{}, ParseError{Where: "board", Msg: fmt.Sprintf("%d agents, expected at most one", n)}
	}

	return Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Cells:    cells,
		Metadata: yb.Metadata,
	}, nil
}

// ParseRows converts row strings into cells.
// Each row must be exactly BoardN characters; fewer than BoardN rows leave
// the remaining rows empty.
func ParseRows(rows []string) (map[core.Coord]core.CellState, error) {
	if len(rows) > core.BoardN {
		return nil, ParseError{Where: "rows", Msg: fmt.Sprintf("%d rows, expected at most %d", len(rows), core.BoardN)}
	}

	cells := make(map[core.Coord]core.CellState)
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != core.BoardN {
			return nil, ParseError{
				Where: fmt.Sprintf("rows[%d]", r),
				Msg:   fmt.Sprintf("%d columns, expected %d", len(runes), core.BoardN),
			}
		}
		for c, ch := range runes {
			state, ok := core.ParseCellChar(ch)
			if !ok {
				return nil, ParseError{
					Where: fmt.Sprintf("rows[%d]", r),
					Msg:   fmt.Sprintf("unknown cell %q at column %d", ch, c),
				}
			}
			if state != core.CellEmpty {
				cells[core.C(r, c)] = state
			}
		}
	}
	return cells, nil
}

// MarshalYAML renders a board back to the row-string YAML format.
func MarshalYAML(b Board) ([]byte, error) {
	rows := strings.Split(strings.TrimSuffix(core.RenderCompact(b.ToBoard()), "\n"), "\n")

	return yaml.Marshal(YAMLBoard{
		ID:       b.ID,
		Name:     b.Name,
		Rows:     rows,
		Metadata: b.Metadata,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ToBoard creates an immutable core board from the parsed data.
func (b *Board) ToBoard() *core.Board {
	return core.NewBoard(b.Cells)
}

func countAgents(cells map[core.Coord]core.CellState) int {
	n := 0
	for _, s := range cells {
		if s == core.CellAgent {
			n++
		}
	}
	return n
}
