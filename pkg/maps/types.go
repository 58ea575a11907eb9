// Package maps handles hex world generation.
package maps

import "global-conflict/internal/game"

// Defaults for GeneratorOptions.
const (
	DefaultRadius = 8
	DefaultJitter = 0.2
)

// GeneratorOptions contains settings for map generation.
type GeneratorOptions struct {
	Radius int     // Hexes from the origin to the map edge
	Seed   int64   // Fixes the jitter noise and all setup randomness
	Jitter float64 // Amplitude of the noise added to the base field, 0 uses DefaultJitter
}

// withDefaults fills zero fields.
func (o GeneratorOptions) withDefaults() GeneratorOptions {
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Jitter == 0 {
		o.Jitter = DefaultJitter
	}
	return o
}

// Map is a generated world map indexed by tile id.
type Map struct {
	Radius int
	Seed   int64
	Tiles  map[string]*game.Tile
}

// Tile returns the tile at (q, r), or nil if it is off the map.
func (m *Map) Tile(q, r int) *game.Tile {
	return m.Tiles[game.TileID(q, r)]
}

// TileCount returns the number of tiles.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}
