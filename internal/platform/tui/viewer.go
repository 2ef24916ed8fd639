package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/search"
)

// ViewerModel is the Bubble Tea model that replays a solution turn by turn.
type ViewerModel struct {
	title  string
	board  *core.Board
	result search.Result
	path   []core.Coord // path[i] is the agent position after i turns
	step   int
	keys   ViewerKeyMap
	help   help.Model
	color  bool
	width  int

	quitting   bool
	goBack     bool
	quitOnBack bool
}

// NewViewerModel creates a viewer for a finished search on board b.
func NewViewerModel(title string, b *core.Board, res search.Result, color bool) ViewerModel {
	var path []core.Coord
	if start, ok := b.Agent(); ok {
		path, _ = core.Replay(b, start, res.Moves)
	}

	return ViewerModel{
		title:  title,
		board:  b,
		result: res,
		path:   path,
		keys:   DefaultViewerKeyMap(),
		help:   help.New(),
		color:  color,
	}
}

// Init initializes the viewer.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goBack = true
			if m.quitOnBack {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if m.step < m.lastStep() {
				m.step++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.step > 0 {
				m.step--
			}
		case key.Matches(msg, m.keys.First):
			m.step = 0
		case key.Matches(msg, m.keys.Last):
			m.step = m.lastStep()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View renders the current turn.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	view := BoardView{Board: m.board, Color: m.color}
	if len(m.path) > 0 {
		agent := m.path[m.step]
		view.Agent = &agent
		view.Trail = make(map[core.Coord]bool, m.step)
		for _, c := range m.path[:m.step] {
			view.Trail[c] = true
		}
	}
	sb.WriteString(RenderBoard(view))
	sb.WriteString("\n\n")

	sb.WriteString(m.status())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

func (m ViewerModel) status() string {
	if _, ok := m.board.Agent(); !ok {
		return errorStyle.Render("board has no agent")
	}
	if !m.result.Found {
		return errorStyle.Render("no solution") +
			statusStyle.Render(fmt.Sprintf("  (%d positions expanded)", m.result.Expanded))
	}

	line := fmt.Sprintf("turn %d/%d  heuristic %s  expanded %d",
		m.step, m.lastStep(), m.result.Heuristic, m.result.Expanded)
	if m.step > 0 {
		line += "\nlast: " + m.result.Moves[m.step-1].String()
	}
	return statusStyle.Render(line)
}

func (m ViewerModel) lastStep() int {
	return max(len(m.path)-1, 0)
}

// Step returns the number of turns currently shown.
func (m ViewerModel) Step() int {
	return m.step
}

// Position returns the agent position currently shown.
func (m ViewerModel) Position() (core.Coord, bool) {
	if len(m.path) == 0 {
		return core.Coord{}, false
	}
	return m.path[m.step], true
}

// IsQuitting returns true if user requested to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// BackRequested returns true if user requested to go back.
func (m ViewerModel) BackRequested() bool {
	return m.goBack
}

// RunViewer starts a Bubble Tea program showing the solution.
func RunViewer(title string, b *core.Board, res search.Result, color bool) error {
	model := NewViewerModel(title, b, res, color)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
