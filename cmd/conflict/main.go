// Package main is the entry point for the headless Global Conflict CLI
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"global-conflict/internal/catalog"
	"global-conflict/internal/config"
	"global-conflict/internal/game"
	"global-conflict/pkg/maps"
)

var (
	configPath  string
	seedFlag    int64
	playerIndex int
)

var rootCmd = &cobra.Command{
	Use:          "conflict",
	Short:        "Global Conflict turn engine",
	Long:         `Generate hex worlds, replay command scripts and advance turns of a Global Conflict game without a UI.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "conflict.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "World seed (overrides config and CONFLICT_SEED)")
	rootCmd.PersistentFlags().IntVar(&playerIndex, "player", 0, "Index of the human player's nation (0-9)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadSettings resolves configuration from file, environment and flags, in
// that order of precedence, and builds the logger it describes.
func loadSettings(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, nil, err
	}

	applied, err := cfg.ApplyEnv(os.Getenv)
	if err != nil {
		return cfg, nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = seedFlag
	}
	if cmd.Flags().Changed("player") {
		cfg.Game.PlayerIndex = playerIndex
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := setupLogger(cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	for _, name := range applied {
		logger.Info("Using setting from environment", zap.String("var", name))
	}

	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
		logger.Info("No seed configured, picked one", zap.Int64("seed", cfg.Game.Seed))
	}
	return cfg, logger, nil
}

func setupLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// newWorld generates the initial state described by cfg.
func newWorld(cfg config.Config) (*game.GameState, error) {
	return maps.GenerateInitialStateWith(catalog.Default(), game.Settings{
		PlayerIndex: cfg.Game.PlayerIndex,
		StartYear:   cfg.Game.StartYear,
	}, maps.GeneratorOptions{
		Radius: cfg.Game.Radius,
		Seed:   cfg.Game.Seed,
		Jitter: cfg.Game.Jitter,
	})
}
