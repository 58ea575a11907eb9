package maps

import "global-conflict/internal/catalog"

// Biome band edges on the combined noise field.
const (
	mountainAbove = 0.6
	forestAbove   = 0.3
	desertBelow   = -0.6
	oceanBelow    = -0.3
)

// biomeForNoise maps a noise sample onto a biome band.
func biomeForNoise(n float64) catalog.BiomeID {
	switch {
	case n > mountainAbove:
		return catalog.BiomeMountain
	case n > forestAbove:
		return catalog.BiomeForest
	case n < desertBelow:
		return catalog.BiomeDesert
	case n < oceanBelow:
		return catalog.BiomeOcean
	default:
		return catalog.BiomePlains
	}
}

// inCentre reports whether (q, r) lies in the plains-only zone at the origin.
func inCentre(q, r int) bool {
	return abs(q) < 2 && abs(r) < 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
