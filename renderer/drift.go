package renderer

import (
	"image/color"

	"github.com/pthm-cable/flowfield/systems"
)

// Drift draws live particles onto an accumulating surface, one step per
// Step call. The surface is cleared to the background when the drift is
// created or reset.
type Drift struct {
	surface Surface
	system  *systems.DriftSystem
}

// NewDrift clears s and seeds p.DriftParticles particles over field.
func NewDrift(s Surface, field systems.FieldSampler, p Params) *Drift {
	w, h := s.Size()
	s.Clear(p.Background)
	return &Drift{
		surface: s,
		system: systems.NewDriftSystem(field, p.IntegerSteps, systems.DriftParams{
			Spawn: systems.SpawnParams{
				Width:  w,
				Height: h,
				Base:   p.ParticleColor,
				Spread: p.ColorRange,
				Alpha:  p.Opacity,
			},
			Count:    p.DriftParticles,
			Lifespan: p.Lifespan,
			Speed:    p.Speed,
		}, p.Seed),
	}
}

// Step advances every particle once and draws the new segments.
func (d *Drift) Step() {
	d.system.Update(func(seg systems.Segment, c color.RGBA) {
		drawSegment(d.surface, seg.From, seg.To, c)
	})
}

// Alive returns the live particle count.
func (d *Drift) Alive() int {
	return d.system.Alive()
}

// Steps returns the total segments drawn.
func (d *Drift) Steps() int {
	return d.system.Steps()
}
