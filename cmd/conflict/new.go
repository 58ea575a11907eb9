package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"global-conflict/pkg/maps"
)

var hideMap bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a world and print a summary",
	RunE:  newGame,
}

func init() {
	newCmd.Flags().BoolVar(&hideMap, "no-map", false, "Skip the ASCII map")
}

func newGame(cmd *cobra.Command, args []string) error {
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
	logger.Info("World generated",
		zap.Int64("seed", cfg.Game.Seed),
		zap.Int("tiles", len(state.Map)),
		zap.Int("nations", len(state.Nations)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed %d, radius %d, %s tiles\n", cfg.Game.Seed, cfg.Game.Radius, humanize.Comma(int64(len(state.Map))))
	fmt.Fprintf(out, "Playing as %s\n\n", state.PlayerNation().Name)

	for _, id := range state.NationIDs() {
		n := state.Nations[id]
		fmt.Fprintf(out, "%-4s %s %-16s %3d tiles  pop %s\n",
			n.ID, n.Flag, n.Name, len(state.OwnedTiles(n.ID)), humanize.Comma(int64(n.Resources.Population)))
	}

	if !hideMap {
		fmt.Fprintln(out)
		fmt.Fprint(out, maps.Debug(state.Map, cfg.Game.Radius))
	}
	return nil
}
