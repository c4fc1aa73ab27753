package systems

import (
	"image/color"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flowfield/components"
)

// DrawFunc receives one particle step and its colour.
type DrawFunc func(seg Segment, c color.RGBA)

// DriftParams configures a drift run.
type DriftParams struct {
	Spawn    SpawnParams
	Count    int     // Target number of live particles
	Lifespan int     // Steps before a particle respawns
	Speed    float64 // Step length
}

// DriftSystem animates particles one step per Update.
// Particles that exhaust their lifespan or leave the domain are replaced
// by fresh ones, so the count stays at the target.
type DriftSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Life, components.Tint]
	filter *ecs.Filter3[components.Position, components.Life, components.Tint]
	tracer *Tracer
	field  FieldSampler
	rng    *rand.Rand
	params DriftParams
	alive  int
	steps  int
}

// NewDriftSystem creates a drift system filled to params.Count particles.
func NewDriftSystem(field FieldSampler, integerSteps bool, params DriftParams, seed int64) *DriftSystem {
	world := ecs.NewWorld()
	s := &DriftSystem{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Life, components.Tint](world),
		filter: ecs.NewFilter3[components.Position, components.Life, components.Tint](world),
		tracer: NewTracer(field, integerSteps),
		field:  field,
		rng:    rand.New(rand.NewSource(seed)),
		params: params,
	}
	s.refill()
	return s
}

// Alive returns the number of live particles.
func (s *DriftSystem) Alive() int {
	return s.alive
}

// Steps returns the number of segments drawn so far.
func (s *DriftSystem) Steps() int {
	return s.steps
}

// Update advances every particle one step, calling draw for each segment.
func (s *DriftSystem) Update(draw DrawFunc) {
	var expired []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		pos, life, tint := query.Get()

		if life.Remaining <= 0 || !s.field.Contains(pos.X, pos.Y) {
			expired = append(expired, query.Entity())
			continue
		}

		from := r2.Vec{X: pos.X, Y: pos.Y}
		to := r2.Add(from, s.tracer.Velocity(from, s.params.Speed))
		if draw != nil {
			draw(Segment{From: from, To: to}, tint.Color)
		}
		s.steps++

		pos.X, pos.Y = to.X, to.Y
		life.Remaining--
	}

	// Entities can only be removed once the query has finished.
	for _, e := range expired {
		s.world.RemoveEntity(e)
		s.alive--
	}
	s.refill()
}

func (s *DriftSystem) refill() {
	for s.alive < s.params.Count {
		p := Spawn(s.rng, s.params.Spawn)
		pos := components.Position{X: p.X, Y: p.Y}
		life := components.Life{Remaining: int32(s.params.Lifespan), Max: int32(s.params.Lifespan)}
		tint := components.Tint{Color: p.Color}
		s.mapper.NewEntity(&pos, &life, &tint)
		s.alive++
	}
}
