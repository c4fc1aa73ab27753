package renderer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pthm-cable/flowfield/noise"
)

func sceneConfig(res int) noise.FieldConfig {
	return noise.FieldConfig{Width: 120, Height: 120, Resolution: res, Seed: 10}
}

func TestSceneRedrawsOnlyWhenDirty(t *testing.T) {
	ctx := context.Background()
	s := NewScene(120, 120)
	p := streakParams(10)
	p.Particles = 200

	res, err := s.Update(ctx, sceneConfig(8), p)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	if !res.Rebuilt || !res.Redrawn || res.Segments == 0 {
		t.Errorf("first update = %+v, want rebuilt and redrawn", res)
	}

	res, err = s.Update(ctx, sceneConfig(8), p)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if res.Rebuilt || res.Redrawn {
		t.Errorf("unchanged update = %+v, want no work", res)
	}

	p.Opacity = 200
	res, _ = s.Update(ctx, sceneConfig(8), p)
	if res.Rebuilt || !res.Redrawn {
		t.Errorf("param change = %+v, want redraw without rebuild", res)
	}

	res, _ = s.Update(ctx, sceneConfig(4), p)
	if !res.Rebuilt || !res.Redrawn {
		t.Errorf("resolution change = %+v, want rebuild and redraw", res)
	}
}

func TestSceneKeepsFrameOnConfigError(t *testing.T) {
	ctx := context.Background()
	s := NewScene(120, 120)
	p := streakParams(10)
	p.Particles = 200

	if _, err := s.Update(ctx, sceneConfig(8), p); err != nil {
		t.Fatalf("first update: %v", err)
	}
	grid := s.Field().Grid()
	before := bytes.Clone(s.Surface().Image().Pix)

	bad := sceneConfig(500)
	_, err := s.Update(ctx, bad, p)
	var cfgErr *noise.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *noise.ConfigError", err)
	}
	if s.Field().Grid() != grid {
		t.Error("grid replaced after failed rebuild")
	}
	if !bytes.Equal(before, s.Surface().Image().Pix) {
		t.Error("frame changed after failed rebuild")
	}

	res, err := s.Update(ctx, bad, p)
	if err != nil || res.Redrawn {
		t.Errorf("repeated bad config = %+v, %v; want silent no-op", res, err)
	}

	res, err = s.Update(ctx, sceneConfig(2), p)
	if err != nil || !res.Rebuilt {
		t.Errorf("recovery = %+v, %v; want rebuild", res, err)
	}
}

func TestSceneErrClearsOnReturnToCurrentConfig(t *testing.T) {
	ctx := context.Background()
	s := NewScene(120, 120)
	p := streakParams(10)
	p.Particles = 200

	if _, err := s.Update(ctx, sceneConfig(8), p); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if s.Err() != nil {
		t.Fatalf("err after good build = %v", s.Err())
	}

	bad := sceneConfig(500)
	s.Update(ctx, bad, p)
	if !errors.Is(s.Err(), noise.ErrZeroSpacing) {
		t.Fatalf("err after bad config = %v, want ErrZeroSpacing", s.Err())
	}
	s.Update(ctx, bad, p)
	if s.Err() == nil {
		t.Error("repeated bad config cleared the error")
	}

	res, err := s.Update(ctx, sceneConfig(8), p)
	if err != nil || res.Rebuilt {
		t.Fatalf("back to current config = %+v, %v; want no rebuild", res, err)
	}
	if s.Err() != nil {
		t.Errorf("err after returning to current config = %v, want nil", s.Err())
	}
}

func TestSceneCancelledStaysDirty(t *testing.T) {
	s := NewScene(120, 120)
	p := streakParams(10)
	p.Particles = 200

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Update(ctx, sceneConfig(8), p); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	res, err := s.Update(context.Background(), sceneConfig(8), p)
	if err != nil || !res.Redrawn {
		t.Errorf("after cancel = %+v, %v; want redraw", res, err)
	}
}

func TestSceneIntensityValues(t *testing.T) {
	s := NewScene(120, 120)
	p := streakParams(10)
	p.Mode = ModeIntensity

	if _, err := s.Update(context.Background(), sceneConfig(8), p); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, want := len(s.Values()), 121*121; got != want {
		t.Errorf("values = %d, want %d", got, want)
	}
}

func TestSceneDriftAdvancesEveryUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewScene(120, 120)
	p := streakParams(10)
	p.Mode = ModeDrift
	p.DriftParticles = 30

	for i := 0; i < 3; i++ {
		res, err := s.Update(ctx, sceneConfig(8), p)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if !res.Redrawn || res.Segments == 0 {
			t.Errorf("update %d = %+v, want drawn segments", i, res)
		}
	}
}
