package systems

import (
	"image/color"
	"testing"
)

func TestDriftSystemKeepsCount(t *testing.T) {
	field := constField{v: 0, w: 200, h: 200}
	params := DriftParams{
		Spawn:    SpawnParams{Width: 200, Height: 200, Base: color.RGBA{100, 100, 100, 255}, Spread: 10, Alpha: 80},
		Count:    50,
		Lifespan: 1,
		Speed:    1,
	}
	s := NewDriftSystem(field, true, params, 7)

	if s.Alive() != 50 {
		t.Fatalf("alive = %d, want 50", s.Alive())
	}

	drawn := 0
	s.Update(func(seg Segment, c color.RGBA) {
		drawn++
		if c.A != 80 {
			t.Errorf("segment alpha %d, want 80", c.A)
		}
	})
	if drawn != 50 {
		t.Errorf("first update drew %d segments, want 50", drawn)
	}

	// Every particle is now out of life: they respawn without drawing.
	drawn = 0
	s.Update(func(Segment, color.RGBA) { drawn++ })
	if drawn != 0 {
		t.Errorf("expiry update drew %d segments, want 0", drawn)
	}
	if s.Alive() != 50 {
		t.Errorf("alive after respawn = %d, want 50", s.Alive())
	}

	s.Update(nil)
	if s.Steps() != 100 {
		t.Errorf("steps = %d, want 100", s.Steps())
	}
}
