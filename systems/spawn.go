package systems

import (
	"image/color"
	"math/rand"

	"github.com/pthm-cable/flowfield/palette"
)

// Placement is a particle's seed position and colour.
type Placement struct {
	X, Y  float64
	Color color.RGBA
}

// SpawnParams controls particle placement.
type SpawnParams struct {
	Width, Height int        // Domain size; positions are drawn in [0,W]x[0,H]
	Base          color.RGBA // Colour before jitter
	Spread        int        // Per-channel jitter range
	Alpha         uint8
}

// Spawn draws one placement from rng: x, then y, then the r, g, b jitter.
func Spawn(rng *rand.Rand, p SpawnParams) Placement {
	x := palette.RandomInt(rng, 0, p.Width)
	y := palette.RandomInt(rng, 0, p.Height)
	return Placement{
		X:     float64(x),
		Y:     float64(y),
		Color: palette.Jitter(rng, p.Base, p.Spread, p.Alpha),
	}
}

// SpawnAll draws n placements from a fresh source seeded with seed.
// The same seed and params always give the same placements.
func SpawnAll(seed int64, n int, p SpawnParams) []Placement {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Placement, n)
	for i := range out {
		out[i] = Spawn(rng, p)
	}
	return out
}
