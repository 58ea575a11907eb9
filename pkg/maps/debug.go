package maps

import (
	"fmt"
	"sort"
	"strings"

	"global-conflict/internal/catalog"
	"global-conflict/internal/game"
)

var biomeGlyph = map[catalog.BiomeID]byte{
	catalog.BiomePlains:   '.',
	catalog.BiomeForest:   'f',
	catalog.BiomeDesert:   'd',
	catalog.BiomeMountain: 'M',
	catalog.BiomeSnow:     's',
	catalog.BiomeOcean:    '~',
	catalog.BiomeCity:     'C',
}

// Debug returns a string visualization of tiles: one text row per r,
// offset so the hexagon reads correctly. Owned tiles show the owner's nation
// index instead of the biome glyph, capitals stay 'C'.
func Debug(tiles map[string]*game.Tile, radius int) string {
	var sb strings.Builder

	counts := make(map[catalog.BiomeID]int)
	for _, t := range tiles {
		counts[t.Biome]++
	}

	sb.WriteString(fmt.Sprintf("Map: radius %d, %d tiles\n", radius, len(tiles)))
	for r := -radius; r <= radius; r++ {
		sb.WriteString(strings.Repeat(" ", abs(r)))
		for q := -radius; q <= radius; q++ {
			t := tiles[game.TileID(q, r)]
			if t == nil {
				continue
			}
			sb.WriteByte(glyph(t))
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}

	biomes := make([]string, 0, len(counts))
	for b := range counts {
		biomes = append(biomes, string(b))
	}
	sort.Strings(biomes)
	sb.WriteString("\nBiomes:\n")
	for _, b := range biomes {
		sb.WriteString(fmt.Sprintf("  %-9s %d\n", b, counts[catalog.BiomeID(b)]))
	}

	return sb.String()
}

func glyph(t *game.Tile) byte {
	if t.Biome != catalog.BiomeCity && strings.HasPrefix(t.OwnerID, "c_") && len(t.OwnerID) == 3 {
		return t.OwnerID[2]
	}
	if g, ok := biomeGlyph[t.Biome]; ok {
		return g
	}
	return '?'
}
