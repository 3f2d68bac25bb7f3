package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			FourChance: 0.10,
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.term2048/results.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
