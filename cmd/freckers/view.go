package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/freckers/internal/boards"
	"github.com/vovakirdan/freckers/internal/platform/tui"
	"github.com/vovakirdan/freckers/internal/search"
	"github.com/vovakirdan/freckers/internal/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view [board]",
	Short: "Replay a solution turn by turn",
	Long: `Solve a board and step through the solution in the terminal.
Without a board argument, a picker lists every board in the boards directory.

Controls:
  →/l/Space  - Next turn
  ←/h        - Previous turn
  g / G      - Start / goal
  Esc/B      - Back to picker
  Q/Ctrl+C   - Quit

Examples:
  freckers view
  freckers view b01
  freckers view ./my-board.yaml`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeBoardIDs,
	Run:               runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagHeuristic, "heuristic", "", "Heuristic name (overrides config)")
}

func runView(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagHeuristic != "" {
		cfg.Search.Heuristic = flagHeuristic
	}
	color := cfg.Diagnostics.ANSI.UseColor(term.IsTerminal(int(os.Stdout.Fd())))
	loader := boards.NewLoader(cfg.Boards.Dir)

	if len(args) == 1 {
		b, err := loader.Resolve(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		board := b.ToBoard()
		res := search.Solve(board, search.WithHeuristic(cfg.Search.Heuristic))

		title := b.ID
		if b.Name != "" {
			title = b.ID + " · " + b.Name
		}
		if err := tui.RunViewer(title, board, res, color); err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
			os.Exit(1)
		}
		return
	}

	list, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boards: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if cfg.Storage.Enabled {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			newLogger(cfg, "freckers").Warn("could not open run history", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	model := tui.NewSessionModel(tui.SessionOptions{
		Boards:    list,
		Store:     store,
		Heuristic: cfg.Search.Heuristic,
		Width:     width,
		Height:    height,
		Color:     color,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}
}
