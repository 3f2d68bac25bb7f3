// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds engine parameters.
type GameConfig struct {
	FourChance float64 `yaml:"four_chance"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// StorageConfig controls the results history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.term2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Game.FourChance < 0 || c.Game.FourChance > 1 {
		return fmt.Errorf("config: game.four_chance must be within [0, 1], got %v", c.Game.FourChance)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Storage.Enabled && c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is required when storage is enabled")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
