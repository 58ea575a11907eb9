package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"global-conflict/internal/entropy"
	"global-conflict/internal/game"
	"global-conflict/internal/protocol"
)

var (
	turns      int
	scriptPath string
	dumpJSON   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a world, replay a command script and advance turns",
	Long: `Run generates a world from the configured seed, applies every command in
an optional JSON-lines script (one protocol message per line), then advances
the given number of turns and prints a report for the player.`,
	RunE: runGame,
}

func init() {
	runCmd.Flags().IntVar(&turns, "turns", 1, "Turns to advance after the script")
	runCmd.Flags().StringVar(&scriptPath, "script", "", "JSON-lines command script to apply first")
	runCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print the final state as JSON instead of a report")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync() // nolint:errcheck // stderr sync fails on some terminals
	}()

	state, err := newWorld(cfg)
	if err != nil {
		return err
	}

	engine := game.NewEngine(
		game.WithRand(entropy.NewSeeded(cfg.Game.Seed)),
		game.WithLogger(logger),
	)

	if scriptPath != "" {
		state, err = replay(engine, state, scriptPath, cmd.ErrOrStderr(), logger)
		if err != nil {
			return err
		}
	}

	for i := 0; i < turns; i++ {
		state, err = engine.Apply(state, game.AdvanceTurn{})
		if err != nil {
			return fmt.Errorf("advance turn %d: %w", state.Turn, err)
		}
	}
	logger.Info("Run finished",
		zap.Int("turn", state.Turn),
		zap.Int("year", state.Year),
		zap.Int("month", state.Month))

	out := cmd.OutOrStdout()
	if dumpJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}
	printReport(out, engine.Catalog, state)
	return nil
}

// replay applies each message of a JSON-lines script in order. Blank lines
// and lines starting with # are skipped. Commands the engine rejects with an
// error are answered with an error message on errOut and do not stop the run.
func replay(e *game.Engine, state *game.GameState, path string, errOut io.Writer, logger *zap.Logger) (*game.GameState, error) {
	f, err := os.Open(path)
	if err != nil {
		return state, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	applied, failed := 0, 0
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var msg protocol.Message
		if err := json.Unmarshal([]byte(text), &msg); err != nil {
			return state, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		cmd, err := protocol.DecodeCommand(&msg)
		if err != nil {
			return state, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		next, err := e.Apply(state, cmd)
		if err != nil {
			failed++
			reply, encErr := protocol.NewErrorMessage(msg.ID, err)
			if encErr != nil {
				return state, encErr
			}
			if err := json.NewEncoder(errOut).Encode(reply); err != nil {
				return state, err
			}
			continue
		}
		state = next
		applied++
	}
	if err := scanner.Err(); err != nil {
		return state, fmt.Errorf("read script: %w", err)
	}

	logger.Info("Script replayed",
		zap.String("path", path),
		zap.Int("applied", applied),
		zap.Int("failed", failed))
	return state, nil
}
