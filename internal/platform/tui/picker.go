package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/freckers/internal/boards"
	"github.com/vovakirdan/freckers/internal/storage"
)

// PickerModel is the Bubble Tea model for choosing a board to solve.
type PickerModel struct {
	boards   []boards.Board
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	quitting bool
	selected *boards.Board
}

// NewPickerModel creates a picker over the given boards.
// When store is non-nil the best known turn count is shown per board.
func NewPickerModel(list []boards.Board, store *storage.Store, width, height int) PickerModel {
	m := PickerModel{
		boards: list,
		keys:   DefaultPickerKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable(store)
	return m
}

// createTable creates the board table with one row per board.
func (m *PickerModel) createTable(store *storage.Store) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 24},
		{Title: "Best", Width: 6},
	}

	var stats map[string]*storage.BoardStats
	if store != nil {
		stats, _ = store.GetAllBoardStats() //nolint:errcheck // best column stays "-"
	}

	rows := make([]table.Row, 0, len(m.boards))
	for _, b := range m.boards {
		best := "-"
		if st, ok := stats[b.ID]; ok && st.BestTurns >= 0 {
			best = fmt.Sprintf("%d", st.BestTurns)
		}
		rows = append(rows, table.Row{b.ID, b.Name, best})
	}

	height := m.height - 6
	if height < 3 {
		height = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if msg.Height > 9 {
			m.table.SetHeight(msg.Height - 6)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.boards) {
				selected := m.boards[i]
				m.selected = &selected
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("F R E C K E R S"))
	sb.WriteString("\n\n")

	if len(m.boards) == 0 {
		sb.WriteString(statusStyle.Render("No boards available."))
	} else {
		sb.WriteString(m.table.View())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// Selected returns the selected board, or nil if none selected.
func (m PickerModel) Selected() *boards.Board {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}
