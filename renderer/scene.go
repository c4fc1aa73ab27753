package renderer

import (
	"context"
	"time"

	"github.com/pthm-cable/flowfield/noise"
)

// Result describes what one Scene.Update did.
type Result struct {
	Rebuilt  bool // The gradient grid was regenerated
	Redrawn  bool // The surface changed
	Segments int  // Streak segments drawn by this update
	Duration time.Duration
}

// Scene owns a field and the surface it is rendered into, and redraws only
// when the field or render parameters change. Drift mode is the exception:
// it advances on every redraw.
type Scene struct {
	field   *noise.Field
	surface *ImageSurface

	params Params
	drawn  bool
	stale  bool               // Grid rebuilt since the last draw
	failed *noise.FieldConfig // Last config that failed to build
	err    error              // Build error for failed
	drift  *Drift
	values []float64
}

// NewScene creates a scene with a w x h surface and no grid.
func NewScene(w, h int) *Scene {
	return &Scene{
		field:   &noise.Field{},
		surface: NewImageSurface(w, h),
	}
}

// Surface returns the surface drawn into.
func (s *Scene) Surface() *ImageSurface {
	return s.surface
}

// Field returns the scene's field.
func (s *Scene) Field() *noise.Field {
	return s.field
}

// Values returns the field samples from the last intensity draw.
func (s *Scene) Values() []float64 {
	return s.values
}

// Err returns the build error of the config currently refused, or nil
// once a config builds or matches the current grid.
func (s *Scene) Err() error {
	return s.err
}

// Update runs Rebuild then Redraw.
func (s *Scene) Update(ctx context.Context, cfg noise.FieldConfig, p Params) (Result, error) {
	rebuilt, err := s.Rebuild(cfg)
	if err != nil {
		return Result{}, err
	}
	res, err := s.Redraw(ctx, p)
	res.Rebuilt = rebuilt
	return res, err
}

// Rebuild regenerates the grid if cfg differs from the current one.
//
// A config that fails to build is reported once. Until a buildable config
// arrives, the previous grid and image stay in place and Redraw is a no-op.
func (s *Scene) Rebuild(cfg noise.FieldConfig) (bool, error) {
	if !s.field.NeedsRebuild(cfg) {
		s.failed, s.err = nil, nil
		return false, nil
	}
	if s.failed != nil && *s.failed == cfg {
		return false, nil
	}
	if err := s.field.Rebuild(cfg); err != nil {
		s.failed, s.err = &cfg, err
		return false, err
	}
	s.failed, s.err = nil, nil
	s.stale = true
	return true, nil
}

// Redraw renders p if the grid or p changed since the last draw. Drift
// mode advances on every call. A cancelled context leaves the scene
// dirty, so the next call draws again.
func (s *Scene) Redraw(ctx context.Context, p Params) (Result, error) {
	var res Result
	g := s.field.Grid()
	if g == nil || s.failed != nil {
		return res, nil
	}

	start := time.Now()
	dirty := s.stale || !s.drawn || p != s.params

	switch p.Mode {
	case ModeDrift:
		if dirty || s.drift == nil {
			s.drift = NewDrift(s.surface, g, p)
		}
		before := s.drift.Steps()
		s.drift.Step()
		res.Segments = s.drift.Steps() - before

	case ModeIntensity:
		if !dirty {
			return res, nil
		}
		values, err := DrawIntensity(ctx, s.surface, g, p)
		if err != nil {
			s.drawn = false
			return res, err
		}
		s.values = values

	default:
		if !dirty {
			return res, nil
		}
		w, h := s.surface.Size()
		n, err := DrawStreaks(ctx, s.surface, g, w, h, p)
		res.Segments = n
		if err != nil {
			s.drawn = false
			return res, err
		}
	}

	if p.Mode != ModeDrift {
		s.drift = nil
	}
	s.params = p
	s.drawn = true
	s.stale = false
	res.Redrawn = true
	res.Duration = time.Since(start)
	return res, nil
}
