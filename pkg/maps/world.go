package maps

import (
	"fmt"

	"global-conflict/internal/catalog"
	"global-conflict/internal/entropy"
	"global-conflict/internal/game"
)

// GenerateInitialState builds a fresh map and places the default nations on
// it. The same options always produce the same world.
func GenerateInitialState(playerIndex int, opts GeneratorOptions) (*game.GameState, error) {
	return GenerateInitialStateWith(catalog.Default(), game.Settings{PlayerIndex: playerIndex}, opts)
}

// GenerateInitialStateWith is GenerateInitialState with explicit catalog and
// settings.
func GenerateInitialStateWith(cat *catalog.Catalog, settings game.Settings, opts GeneratorOptions) (*game.GameState, error) {
	gen := NewGenerator(opts, cat)
	m, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}

	state, err := game.InitializeGame(cat, m.Tiles, settings, entropy.NewSeeded(gen.Options().Seed))
	if err != nil {
		return nil, fmt.Errorf("initialize game: %w", err)
	}
	return state, nil
}
