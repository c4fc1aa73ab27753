package palette

import (
	"image/color"
	"math/rand"
)

// RandomInt returns a uniform integer in the closed range [min, max].
func RandomInt(rng *rand.Rand, min, max int) int {
	return rng.Intn(max+1-min) + min
}

// Jitter offsets each of base's r, g and b channels by an independent
// uniform amount in [-spread, spread], clamped to [0, 255]. Channels are
// drawn in r, g, b order. The result carries alpha.
func Jitter(rng *rand.Rand, base color.RGBA, spread int, alpha uint8) color.RGBA {
	if spread < 0 {
		spread = -spread
	}
	return color.RGBA{
		R: uint8(clamp8(int(base.R) + RandomInt(rng, -spread, spread))),
		G: uint8(clamp8(int(base.G) + RandomInt(rng, -spread, spread))),
		B: uint8(clamp8(int(base.B) + RandomInt(rng, -spread, spread))),
		A: alpha,
	}
}
