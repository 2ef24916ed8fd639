package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/freckers/internal/config"
	"github.com/vovakirdan/freckers/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the freckers SSH server",
	Long: `Start an SSH server that lets users connect, pick a board and step
through its solution.

Each SSH connection gets its own session with a board picker.
Runs are recorded in the server's history database when storage is enabled.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.freckers/host_key

Examples:
  freckers serve                           # Listen on :23235 with auto-generated key
  freckers serve --ssh :2222               # Listen on port 2222
  freckers serve --host-key ./my_host_key  # Use specific host key
  freckers serve --boards ./boards         # Serve a specific directory

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	hostKey, err := config.ExpandHome(cfg.Server.HostKeyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: hostKey,
		IdleTimeout: cfg.Server.IdleTimeout,
		BoardsDir:   cfg.Boards.Dir,
		Heuristic:   cfg.Search.Heuristic,
		Logger:      newLogger(cfg, "freckers-ssh"),
	}
	if cfg.Storage.Enabled {
		srvCfg.DBPath = cfg.Storage.DBPath
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting freckers SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
