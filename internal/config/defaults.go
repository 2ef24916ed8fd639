package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/freckers.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// Used when the embedded YAML cannot be parsed and as the base for all loads.
func Default() Config {
	return Config{
		Boards: BoardsConfig{
			Dir: "boards",
		},
		Search: SearchConfig{
			Heuristic: "adaptive",
			Verify:    false,
		},
		Diagnostics: DiagnosticsConfig{
			Render:   true,
			ANSI:     ANSIAuto,
			LogLevel: "info",
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.freckers/runs.db",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
