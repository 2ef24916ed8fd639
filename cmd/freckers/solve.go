package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/freckers/internal/boards"
	"github.com/vovakirdan/freckers/internal/config"
	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/platform/tui"
	"github.com/vovakirdan/freckers/internal/registry"
	"github.com/vovakirdan/freckers/internal/search"
	"github.com/vovakirdan/freckers/internal/storage"
)

var (
	flagHeuristic string
	flagVerify    bool
	flagANSI      string
	flagNoSave    bool
	flagQuiet     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Solve a board and print the moves",
	Long: `Run A* on a board and print one line per turn:

  MOVE (r,c) Down,Left

where (r,c) is the square the turn starts from and the directions are the
single step or the chain of jumps. Prints "no solution" when the bottom row
cannot be reached.

The board is a path to a YAML file or the ID of a board in the boards
directory. Before searching, the board is drawn on stderr unless --quiet.

Heuristics:
  adaptive - rows remaining divided by the best one-turn progress (default)
  rows     - rows remaining
  zero     - no estimate; always finds the fewest turns

Examples:
  freckers solve boards/b01.yaml
  freckers solve b02 --heuristic zero
  freckers solve b02 --verify --ansi never`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeBoardIDs,
	Run:               runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagHeuristic, "heuristic", "", "Heuristic name (overrides config)")
	solveCmd.Flags().BoolVar(&flagVerify, "verify", false, "Compare the result with breadth-first search")
	solveCmd.Flags().StringVar(&flagANSI, "ansi", "", "Colored board output: auto, always, never")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in history")
	solveCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Do not draw the board before solving")
}

func runSolve(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagHeuristic != "" {
		cfg.Search.Heuristic = flagHeuristic
	}
	if flagVerify {
		cfg.Search.Verify = true
	}
	if flagANSI != "" {
		cfg.Diagnostics.ANSI = config.ANSIMode(flagANSI)
	}
	if flagQuiet {
		cfg.Diagnostics.Render = false
	}
	if flagNoSave {
		cfg.Storage.Enabled = false
	}

	logger := newLogger(cfg, "freckers")

	if !registry.Exists(cfg.Search.Heuristic) {
		fmt.Fprintf(os.Stderr, "Error: unknown heuristic %q\n", cfg.Search.Heuristic)
		fmt.Fprintln(os.Stderr, "Available heuristics:")
		for _, h := range registry.List() {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", h.Name, h.Description)
		}
		os.Exit(1)
	}

	b, err := boards.NewLoader(cfg.Boards.Dir).Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	board := b.ToBoard()

	opts := []search.Option{
		search.WithHeuristic(cfg.Search.Heuristic),
		search.WithLogger(logger),
	}
	if cfg.Diagnostics.Render {
		color := cfg.Diagnostics.ANSI.UseColor(term.IsTerminal(int(os.Stderr.Fd())))
		opts = append(opts, search.WithDiagnostics(func(b *core.Board) {
			fmt.Fprintln(os.Stderr, tui.RenderDiagnostic(b, color))
			fmt.Fprintln(os.Stderr)
		}))
	}

	start := time.Now()
	res := search.Solve(board, opts...)
	elapsed := time.Since(start)

	if _, ok := board.Agent(); !ok {
		logger.Warn("board has no agent", "board", b.ID)
	}

	if res.Found {
		for _, m := range res.Moves {
			fmt.Println(m.String())
		}
	} else {
		fmt.Println("no solution")
	}

	logger.Info("search finished",
		"board", b.ID,
		"heuristic", res.Heuristic,
		"turns", res.Turns(),
		"expanded", res.Expanded,
		"elapsed", elapsed.Round(time.Microsecond),
	)

	if cfg.Search.Verify {
		verify(logger, board, res)
	}

	if cfg.Storage.Enabled {
		saveRun(cfg, logger, storage.RunFromResult(b.ID, res, elapsed))
	}
}

// verify compares an A* result with the exact breadth-first turn count.
func verify(logger *log.Logger, board *core.Board, res search.Result) {
	best, ok := search.ShortestTurns(board)
	switch {
	case ok != res.Found:
		logger.Warn("solvability differs from breadth-first search", "astar", res.Found, "bfs", ok)
	case !ok:
		logger.Info("verified: no solution")
	case res.Turns() == best:
		logger.Info("verified: optimal", "turns", best)
	default:
		logger.Warn("solution is longer than optimal", "turns", res.Turns(), "optimal", best)
	}
}

func saveRun(cfg config.Config, logger *log.Logger, run storage.Run) {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return
	}
	defer store.Close()

	_, runID, err := store.SaveRun(run)
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("run saved", "run_id", runID)
}
