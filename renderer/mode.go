// Package renderer draws the noise field and particle streaks onto a
// Surface. Numeric work runs on a worker pool; draw calls are issued in a
// fixed order from the calling goroutine.
package renderer

import (
	"fmt"
	"image/color"
)

// Mode selects a visualization strategy.
type Mode int

const (
	ModeIntensity Mode = iota // Per-pixel intensity map plus gradient arrows
	ModeStreaks               // Independently coloured particle traces
	ModeDrift                 // Live particles advancing one step per frame
	numModes
)

var modeNames = [...]string{
	ModeIntensity: "intensity",
	ModeStreaks:   "streaks",
	ModeDrift:     "drift",
}

// String returns the config name of the mode.
func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % numModes
}

// ParseMode parses a config mode name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

// Params is one frame's render configuration. It is a snapshot: the frame
// never observes later changes.
type Params struct {
	Mode           Mode
	Particles      int        // Streak count
	Lifespan       int        // Max steps per streak
	Speed          float64    // Step length
	Opacity        uint8      // Streak alpha
	ColorRange     int        // Per-channel jitter range
	Background     color.RGBA // Clear colour for streak modes
	ParticleColor  color.RGBA // Base streak colour
	IntegerSteps   bool       // Truncate steps to whole pixels
	Workers        int        // 0 = GOMAXPROCS
	ArrowLength    float64    // Gradient arrow length in intensity mode
	DriftParticles int        // Live particle count in drift mode
	Seed           int64      // Particle placement seed
}
