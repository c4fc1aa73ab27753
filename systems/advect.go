package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// FieldSampler is the read side of a noise field.
// *noise.Grid implements it.
type FieldSampler interface {
	ValueAt(x, y float64) float64
	Contains(x, y float64) bool
}

// Segment is one step of a particle trace.
type Segment struct {
	From, To r2.Vec
}

// Heading maps a field value to a direction angle in radians.
func Heading(v float64) float64 {
	return (v + 0.5) * 2 * math.Pi
}

// Tracer advects particles through a field.
//
// With integer steps enabled each velocity component is truncated toward
// zero, so a particle seeded on a pixel stays on the pixel lattice.
type Tracer struct {
	field        FieldSampler
	integerSteps bool
}

// NewTracer creates a tracer over field.
func NewTracer(field FieldSampler, integerSteps bool) *Tracer {
	return &Tracer{field: field, integerSteps: integerSteps}
}

// Velocity returns the step taken from p at the given speed.
func (t *Tracer) Velocity(p r2.Vec, speed float64) r2.Vec {
	theta := Heading(t.field.ValueAt(p.X, p.Y))
	v := r2.Vec{X: math.Cos(theta) * speed, Y: math.Sin(theta) * speed}
	if t.integerSteps {
		v.X = math.Trunc(v.X)
		v.Y = math.Trunc(v.Y)
	}
	return v
}

// Trace walks a particle from (x, y) for at most lifespan steps.
func (t *Tracer) Trace(x, y float64, lifespan int, speed float64) []Segment {
	return t.TraceInto(nil, x, y, lifespan, speed)
}

// TraceInto is Trace appending into dst[:0].
//
// The domain check runs on the current position before each step: a walk
// stops as soon as it stands outside the domain, so the segment that
// crosses the boundary is still emitted and a walk seeded outside emits
// nothing.
func (t *Tracer) TraceInto(dst []Segment, x, y float64, lifespan int, speed float64) []Segment {
	dst = dst[:0]
	p := r2.Vec{X: x, Y: y}
	for remaining := lifespan; remaining > 0; remaining-- {
		if !t.field.Contains(p.X, p.Y) {
			break
		}
		next := r2.Add(p, t.Velocity(p, speed))
		dst = append(dst, Segment{From: p, To: next})
		p = next
	}
	return dst
}
