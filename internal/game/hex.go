package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexCoord is an axial/cube hex coordinate. S is stored so serialized tiles
// carry all three components; it must always equal -Q-R.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// NewHex returns the coordinate (q, r) with S derived.
func NewHex(q, r int) HexCoord {
	return HexCoord{Q: q, R: r, S: -q - r}
}

// IsValid reports whether the cube invariant q+r+s == 0 holds.
func (h HexCoord) IsValid() bool {
	return h.Q+h.R+h.S == 0
}

// ID returns the tile id "q,r" for this coordinate.
func (h HexCoord) ID() string {
	return TileID(h.Q, h.R)
}

// Add returns the component-wise sum of two coordinates.
func (h HexCoord) Add(o HexCoord) HexCoord {
	return NewHex(h.Q+o.Q, h.R+o.R)
}

// hexDirections are the six ring-1 offsets, clockwise from east.
var hexDirections = [6]HexCoord{
	NewHex(1, 0), NewHex(1, -1), NewHex(0, -1),
	NewHex(-1, 0), NewHex(-1, 1), NewHex(0, 1),
}

// Neighbors returns the six coordinates at distance 1.
func (h HexCoord) Neighbors() []HexCoord {
	out := make([]HexCoord, 0, len(hexDirections))
	for _, d := range hexDirections {
		out = append(out, h.Add(d))
	}
	return out
}

// Distance returns the hex grid distance between two coordinates.
func Distance(a, b HexCoord) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// HexesInRadius returns every coordinate within radius of the origin, ordered
// by q then r.
func HexesInRadius(radius int) []HexCoord {
	var out []HexCoord
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			out = append(out, NewHex(q, r))
		}
	}
	return out
}

// AxialToPixel converts a pointy-top hex coordinate to the pixel position of
// its center for a hex of the given size.
func AxialToPixel(size float64, h HexCoord) (x, y float64) {
	x = size * (math.Sqrt(3)*float64(h.Q) + math.Sqrt(3)/2*float64(h.R))
	y = size * (1.5 * float64(h.R))
	return x, y
}

// TileID formats the id of the tile at (q, r).
func TileID(q, r int) string {
	return strconv.Itoa(q) + "," + strconv.Itoa(r)
}

// ParseTileID parses a "q,r" tile id.
func ParseTileID(id string) (HexCoord, error) {
	qs, rs, ok := strings.Cut(id, ",")
	if !ok {
		return HexCoord{}, fmt.Errorf("tile id %q: missing comma", id)
	}
	q, err := strconv.Atoi(qs)
	if err != nil {
		return HexCoord{}, fmt.Errorf("tile id %q: %w", id, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return HexCoord{}, fmt.Errorf("tile id %q: %w", id, err)
	}
	return NewHex(q, r), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
