package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/freckers/internal/boards"
	"github.com/vovakirdan/freckers/internal/config"
	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/platform/tui"
	"github.com/vovakirdan/freckers/internal/search"
	"github.com/vovakirdan/freckers/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryRun   string
	flagHistoryView  bool
)

var historyCmd = &cobra.Command{
	Use:   "history <board-id>",
	Short: "Show recorded runs for a board",
	Long: `Display the most recent runs recorded for a board and the best
turn count found so far.

Examples:
  freckers history b01
  freckers history b01 --limit 20
  freckers history b01 --run 6f1c...   # print the moves of one run
  freckers history b01 --run 6f1c... --view
  freckers history b01 --clear`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeBoardIDs,
	Run:               runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all runs for the board")
	historyCmd.Flags().StringVar(&flagHistoryRun, "run", "", "Print the moves of the run with this ID")
	historyCmd.Flags().BoolVar(&flagHistoryView, "view", false, "Replay the --run in the viewer")
}

func runHistory(_ *cobra.Command, args []string) {
	boardID := args[0]
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(boardID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared run history for %s.\n", boardID)
		return
	}

	if flagHistoryRun != "" {
		run := findRun(store, flagHistoryRun)
		if flagHistoryView {
			viewRun(cfg, boardID, run)
			return
		}
		printRun(run)
		return
	}

	runs, err := store.RecentRuns(boardID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run history - %s\n", boardID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'freckers solve %s' to record the first one.\n", boardID)
		return
	}

	fmt.Printf("  %-8s  %-9s  %-5s  %-8s  %-8s  %s\n", "Run", "Heuristic", "Turns", "Expanded", "Time", "Date")
	fmt.Printf("  %-8s  %-9s  %-5s  %-8s  %-8s  %s\n", "---", "---------", "-----", "--------", "----", "----")

	for _, r := range runs {
		turns := "-"
		if r.Found {
			turns = fmt.Sprintf("%d", r.Turns)
		}
		fmt.Printf("  %-8s  %-9s  %-5s  %-8d  %-8s  %s\n",
			shortID(r.RunID),
			r.Heuristic,
			turns,
			r.Expanded,
			r.Duration.String(),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.GetBoardStats(boardID); err == nil {
		fmt.Printf("Runs: %d  solved: %d  avg expanded: %.1f\n", stats.Runs, stats.Solved, stats.AvgExpanded)
	}
	best, err := store.BestRun(boardID)
	if err == nil && best != nil {
		fmt.Printf("Best: %d turns (%s, run %s)\n", best.Turns, best.Heuristic, shortID(best.RunID))
	} else if err == nil {
		fmt.Println("Best: never solved")
	}
}

func findRun(store *storage.Store, runID string) *storage.Run {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", runID)
		os.Exit(1)
	}
	return run
}

func printRun(run *storage.Run) {
	fmt.Printf("Run %s - %s (%s)\n", run.RunID, run.BoardID, run.Heuristic)
	fmt.Println()
	if !run.Found {
		fmt.Println("no solution")
		return
	}
	fmt.Println(strings.TrimSpace(run.Moves))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// viewRun replays a recorded run on the current version of its board.
func viewRun(cfg config.Config, boardID string, run *storage.Run) {
	b, err := boards.NewLoader(cfg.Boards.Dir).Resolve(boardID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := search.Result{
		Found:     run.Found,
		Expanded:  run.Expanded,
		Heuristic: run.Heuristic,
	}
	for _, line := range strings.Split(strings.TrimSpace(run.Moves), "\n") {
		if line == "" {
			continue
		}
		m, parseErr := core.ParseMove(line)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		res.Moves = append(res.Moves, m)
	}

	color := cfg.Diagnostics.ANSI.UseColor(term.IsTerminal(int(os.Stdout.Fd())))
	title := fmt.Sprintf("%s · run %s", b.ID, shortID(run.RunID))
	if err := tui.RunViewer(title, b.ToBoard(), res, color); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
