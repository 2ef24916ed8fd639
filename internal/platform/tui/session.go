package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/freckers/internal/boards"
	"github.com/vovakirdan/freckers/internal/search"
	"github.com/vovakirdan/freckers/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Boards    []boards.Board
	Store     *storage.Store // optional
	Heuristic string
	Logger    *log.Logger // optional
	Width     int
	Height    int
	Color     bool
}

// SessionModel manages the full session flow: picker -> viewer -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	picker   PickerModel
	viewer   *ViewerModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	return SessionModel{
		opts:   opts,
		picker: NewPickerModel(opts.Boards, opts.Store, opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	if m.viewer != nil {
		return m.updateViewer(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a board.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.picker.Selected(); selected != nil {
		viewer := m.solve(*selected)
		m.viewer = &viewer
		return m, m.viewer.Init()
	}

	return m, cmd
}

// updateViewer handles updates while replaying a solution.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newViewer, cmd := m.viewer.Update(msg)
	if viewer, ok := newViewer.(ViewerModel); ok {
		m.viewer = &viewer
	}

	if m.viewer.BackRequested() {
		m.viewer = nil
		// Rebuild so the best-turns column reflects the new run
		m.picker = NewPickerModel(m.opts.Boards, m.opts.Store, m.opts.Width, m.opts.Height)
		return m, m.picker.Init()
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// solve runs the search for b and records the run when a store is configured.
func (m SessionModel) solve(b boards.Board) ViewerModel {
	board := b.ToBoard()

	opts := []search.Option{search.WithHeuristic(m.opts.Heuristic)}
	if m.opts.Logger != nil {
		opts = append(opts, search.WithLogger(m.opts.Logger))
	}

	start := time.Now()
	res := search.Solve(board, opts...)
	elapsed := time.Since(start)

	if m.opts.Logger != nil {
		m.opts.Logger.Info("solved board",
			"board", b.ID,
			"found", res.Found,
			"turns", res.Turns(),
			"expanded", res.Expanded,
		)
	}

	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort save
		m.opts.Store.SaveRun(storage.RunFromResult(b.ID, res, elapsed))
	}

	title := b.ID
	if b.Name != "" {
		title = b.ID + " · " + b.Name
	}

	viewer := NewViewerModel(title, board, res, m.opts.Color)
	viewer.width = m.opts.Width
	viewer.help.Width = m.opts.Width
	return viewer
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.viewer != nil {
		return m.viewer.View()
	}

	return m.picker.View()
}

// InViewer reports whether a solution is currently shown.
func (m SessionModel) InViewer() bool {
	return m.viewer != nil
}
