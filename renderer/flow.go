package renderer

import (
	"context"

	"github.com/pthm-cable/flowfield/systems"
)

// streakBatch is the number of particles traced per fan-out.
const streakBatch = 4096

// DrawStreaks clears the surface to the background and draws one streak for
// each of p.Particles particles.
//
// Placements come from a single source seeded with p.Seed, so the image is
// a pure function of the field and p. Traces are computed on the worker
// pool, but segments are issued from this goroutine in particle order.
// The context is checked between particles; on cancellation the partial
// image is left on the surface and ctx.Err() is returned.
func DrawStreaks(ctx context.Context, s Surface, field systems.FieldSampler, w, h int, p Params) (int, error) {
	s.Clear(p.Background)

	placements := systems.SpawnAll(p.Seed, p.Particles, systems.SpawnParams{
		Width:  w,
		Height: h,
		Base:   p.ParticleColor,
		Spread: p.ColorRange,
		Alpha:  p.Opacity,
	})
	tracer := systems.NewTracer(field, p.IntegerSteps)

	traces := make([][]systems.Segment, min(streakBatch, len(placements)))
	segments := 0

	for batchStart := 0; batchStart < len(placements); batchStart += streakBatch {
		batch := placements[batchStart:min(batchStart+streakBatch, len(placements))]

		parallelFor(len(batch), p.Workers, func(start, end int) {
			for i := start; i < end; i++ {
				pl := batch[i]
				traces[i] = tracer.TraceInto(traces[i], pl.X, pl.Y, p.Lifespan, p.Speed)
			}
		})

		for i, pl := range batch {
			if err := ctx.Err(); err != nil {
				return segments, err
			}
			for _, seg := range traces[i] {
				drawSegment(s, seg.From, seg.To, pl.Color)
			}
			segments += len(traces[i])
		}
	}
	return segments, nil
}
