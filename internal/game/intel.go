package game

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"global-conflict/internal/catalog"
)

// Intel thresholds for Observe.
const (
	IntelExact    = 90
	IntelRange    = 50
	IntelBucketed = 20
)

// Observe renders a foreign nation's figure as seen through an intelligence
// level: exact at 90 and above, a ±20% range from 50, a coarse bucket from
// 20, and nothing below that.
func Observe(intel int, value float64) string {
	switch {
	case intel >= IntelExact:
		return humanize.Comma(int64(math.Floor(value)))
	case intel >= IntelRange:
		lo := int64(math.Floor(value * 0.8))
		hi := int64(math.Ceil(value * 1.2))
		return fmt.Sprintf("%s - %s", humanize.Comma(lo), humanize.Comma(hi))
	case intel >= IntelBucketed:
		switch {
		case value == 0:
			return "None"
		case value < 100:
			return "Low"
		case value < 1000:
			return "Medium"
		default:
			return "High"
		}
	default:
		return "???"
	}
}

// MilitaryEstimate is the rough power figure shown in intelligence dossiers:
// reserve soldiers plus five per reserve tank.
func MilitaryEstimate(n *Nation) int {
	return n.Units[catalog.UnitSoldier] + 5*n.Units[catalog.UnitTank]
}
