package maps

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"global-conflict/internal/catalog"
	"global-conflict/internal/game"
)

// jitterFrequency keeps noise samples off the simplex lattice points.
const jitterFrequency = 0.37

// Generator handles procedural map generation.
type Generator struct {
	options GeneratorOptions
	catalog *catalog.Catalog
	noise   opensimplex.Noise
}

// NewGenerator creates a new map generator. A nil catalog uses the embedded
// definitions.
func NewGenerator(opts GeneratorOptions, cat *catalog.Catalog) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	opts = opts.withDefaults()
	return &Generator{
		options: opts,
		catalog: cat,
		noise:   opensimplex.NewNormalized(opts.Seed),
	}
}

// Options returns the effective options after defaults.
func (g *Generator) Options() GeneratorOptions {
	return g.options
}

// Noise returns the biome field at (q, r): a smooth wave plus seeded jitter
// in [0, Jitter].
func (g *Generator) Noise(q, r int) float64 {
	base := math.Sin(float64(q)*0.5) * math.Cos(float64(r)*0.5)
	jitter := g.options.Jitter * g.noise.Eval2(float64(q)*jitterFrequency, float64(r)*jitterFrequency)
	return base + jitter
}

// BiomeAt returns the biome the generator assigns to (q, r).
func (g *Generator) BiomeAt(q, r int) catalog.BiomeID {
	if inCentre(q, r) {
		return catalog.BiomePlains
	}
	return biomeForNoise(g.Noise(q, r))
}

// Generate creates the map. Every tile is unowned.
func (g *Generator) Generate() (*Map, error) {
	m := &Map{
		Radius: g.options.Radius,
		Seed:   g.options.Seed,
		Tiles:  make(map[string]*game.Tile),
	}

	for _, h := range game.HexesInRadius(g.options.Radius) {
		biomeID := g.BiomeAt(h.Q, h.R)
		biome, ok := g.catalog.Biome(biomeID)
		if !ok {
			return nil, fmt.Errorf("biome %q missing from catalog: %w", biomeID, game.ErrUnknownDefinition)
		}

		bonus := game.Resources{Money: 5}
		switch biomeID {
		case catalog.BiomePlains:
			bonus.Food = 10
		case catalog.BiomeDesert:
			bonus.Oil = 20
		case catalog.BiomeCity:
			bonus.Money = 50
		}

		id := h.ID()
		m.Tiles[id] = &game.Tile{
			ID:            id,
			Coords:        h,
			Biome:         biomeID,
			Name:          "Province " + id,
			ResourceBonus: bonus,
			DefenseBonus:  biome.Defense,
			MovementCost:  biome.MoveCost,
		}
	}

	return m, nil
}
