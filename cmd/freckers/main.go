// freckers solves single-player Freckers boards: one red frog racing to the
// far row over lily pads, jumping blue frogs on the way.
//
// Usage:
//
//	freckers solve <board>     - Solve a board file or board ID
//	freckers boards            - List boards in the boards directory
//	freckers view [board]      - Replay a solution interactively
//	freckers history <board>   - Show recorded runs for a board
//	freckers serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.freckers/config.yaml)
//	--db <path>         - Run history database
//	--boards <dir>      - Boards directory
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/freckers/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagBoardsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "freckers",
	Short: "Freckers - shortest paths for a lone red frog",
	Long: `Freckers finds the fewest turns that take the red frog from its start
square to the bottom row of an 8x8 board. Each turn is a single step onto a
lily pad or a chain of jumps over blue frogs.

Available commands:
  solve    - Solve a board and print the moves
  boards   - List available boards
  view     - Replay a solution turn by turn
  history  - Show recorded runs
  serve    - Start SSH server for remote viewing

Examples:
  freckers solve boards/b01.yaml
  freckers solve b01 --heuristic zero --verify
  freckers view b02
  freckers history b01
  freckers serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBoardsDir, "boards", "", "Boards directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file, applies environment overrides and then
// the global flags, which win over both.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyEnv(&cfg)

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagBoardsDir != "" {
		cfg.Boards.Dir = flagBoardsDir
	}
	if flagLogLevel != "" {
		cfg.Diagnostics.LogLevel = flagLogLevel
	}
	return cfg
}

// newLogger creates the stderr logger for a command.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(cfg.Diagnostics.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Diagnostics.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
