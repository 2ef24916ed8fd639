package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/freckers/internal/boards"
	"github.com/vovakirdan/freckers/internal/boards/formats"
	"github.com/vovakirdan/freckers/internal/config"
	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/storage"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List available boards",
	Long: `Shows every board file found in the boards directory, with the number
of obstacles and lily pads and the best recorded turn count.`,
	Run: runBoards,
}

var flagBoardsPrint string

func init() {
	boardsCmd.Flags().StringVar(&flagBoardsPrint, "print", "", "Print one board (file or ID) in normalized YAML")
}

// completeBoardIDs offers board IDs from the configured directory for shell completion.
func completeBoardIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids, err := boards.NewLoader(loadConfig().Boards.Dir).ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return ids, cobra.ShellCompDirectiveDefault
}

func runBoards(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg, "freckers")

	if flagBoardsPrint != "" {
		printBoard(cfg, flagBoardsPrint)
		return
	}

	list, err := boards.NewLoader(cfg.Boards.Dir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boards: %v\n", err)
		os.Exit(1)
	}

	if len(list) == 0 {
		fmt.Printf("No boards found in %s.\n", cfg.Boards.Dir)
		return
	}

	var stats map[string]*storage.BoardStats
	if cfg.Storage.Enabled {
		store, openErr := storage.Open(cfg.Storage.DBPath)
		if openErr != nil {
			logger.Warn("could not open run history", "error", openErr)
		} else {
			stats, err = store.GetAllBoardStats()
			if err != nil {
				logger.Warn("could not read run history", "error", err)
			}
			store.Close()
		}
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range list {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %-4s  %s\n", maxIDLen, "ID", "Blue", "Pads", "Best", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %-4s  %s\n", maxIDLen, "--", "----", "----", "----", "----")

	for _, b := range list {
		board := b.ToBoard()
		best := "-"
		if st, ok := stats[b.ID]; ok && st.BestTurns >= 0 {
			best = fmt.Sprintf("%d", st.BestTurns)
		}
		fmt.Printf("  %-*s  %-5d  %-5d  %-4s  %s\n",
			maxIDLen, b.ID,
			board.Count(core.CellObstacle),
			board.Count(core.CellPad),
			best,
			b.Name,
		)
	}

	fmt.Println()
	fmt.Println("Run 'freckers solve <id>' to solve a board.")
}

func printBoard(cfg config.Config, ref string) {
	b, err := boards.NewLoader(cfg.Boards.Dir).Resolve(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := formats.MarshalYAML(formats.Board{
		ID:       b.ID,
		Name:     b.Name,
		Cells:    b.Cells,
		Metadata: b.Metadata,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding board: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
