// Package config loads settings for the conflict CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Game setup
	Game GameConfig `yaml:"game"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// GameConfig holds world generation and setup settings
type GameConfig struct {
	// Seed for map noise, combat and espionage rolls. 0 picks one from the clock.
	Seed int64 `yaml:"seed"`

	// Map radius in hexes
	Radius int `yaml:"radius"`

	// Amplitude of the biome jitter noise
	Jitter float64 `yaml:"jitter"`

	// Index of the human player's nation (0-9)
	PlayerIndex int `yaml:"player_index"`

	// Calendar year of turn 1
	StartYear int `yaml:"start_year"`
}

// LogConfig holds logger settings
type LogConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Human-readable console output instead of JSON
	Development bool `yaml:"development"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Seed:        0,
			Radius:      8,
			Jitter:      0.2,
			PlayerIndex: 0,
			StartYear:   2027,
		},
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from CONFLICT_SEED and CONFLICT_LOG_LEVEL.
// It returns the names of the variables that were applied.
func (c *Config) ApplyEnv(getenv func(string) string) ([]string, error) {
	var applied []string
	if v := getenv("CONFLICT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return applied, fmt.Errorf("CONFLICT_SEED: %w", err)
		}
		c.Game.Seed = seed
		applied = append(applied, "CONFLICT_SEED")
	}
	if v := getenv("CONFLICT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
		applied = append(applied, "CONFLICT_LOG_LEVEL")
	}
	return applied, c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Game.Radius < 1 {
		return fmt.Errorf("game.radius must be at least 1, got %d", c.Game.Radius)
	}
	if c.Game.Jitter < 0 {
		return fmt.Errorf("game.jitter must not be negative, got %v", c.Game.Jitter)
	}
	if c.Game.PlayerIndex < 0 || c.Game.PlayerIndex > 9 {
		return fmt.Errorf("game.player_index must be 0-9, got %d", c.Game.PlayerIndex)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// SaveConfig writes configuration to a YAML file
func SaveConfig(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
