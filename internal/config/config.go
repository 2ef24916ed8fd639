// Package config provides YAML-based configuration loading for the solver,
// the CLI and the SSH viewer.
package config

import "time"

// Config contains all configuration for freckers.
type Config struct {
	Boards      BoardsConfig      `yaml:"boards"`
	Search      SearchConfig      `yaml:"search"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Storage     StorageConfig     `yaml:"storage"`
	Server      ServerConfig      `yaml:"server"`
}

// BoardsConfig defines where board files are looked up.
type BoardsConfig struct {
	Dir string `yaml:"dir"`
}

// SearchConfig defines solver parameters.
type SearchConfig struct {
	Heuristic string `yaml:"heuristic"` // registered heuristic name
	Verify    bool   `yaml:"verify"`    // compare A* against breadth-first search
}

// DiagnosticsConfig defines logging and board rendering.
type DiagnosticsConfig struct {
	Render   bool     `yaml:"render"`    // print the board before solving
	ANSI     ANSIMode `yaml:"ansi"`      // auto, always, never
	LogLevel string   `yaml:"log_level"` // debug, info, warn, error
}

// StorageConfig defines run history persistence.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// ServerConfig defines the SSH viewer server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ANSIMode selects whether colored board output is used.
type ANSIMode string

const (
	ANSIAuto   ANSIMode = "auto"
	ANSIAlways ANSIMode = "always"
	ANSINever  ANSIMode = "never"
)

// UseColor resolves the mode against whether output is a terminal.
func (m ANSIMode) UseColor(isTerminal bool) bool {
	switch m {
	case ANSIAlways:
		return true
	case ANSINever:
		return false
	default:
		return isTerminal
	}
}
