package palette

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestHsvaToRgbaGray(t *testing.T) {
	for h := 0; h <= 255; h += 17 {
		for _, v := range []int{0, 1, 128, 255} {
			got := HsvaToRgba(h, 0, v, 77)
			want := color.RGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 77}
			if got != want {
				t.Errorf("HsvaToRgba(%d, 0, %d, 77) = %v, want %v", h, v, got, want)
			}
		}
	}
}

func TestHsvaToRgbaSectors(t *testing.T) {
	tests := []struct {
		name       string
		h, s, v, a int
		want       color.RGBA
	}{
		{"sector 0 start", 0, 255, 255, 255, color.RGBA{255, 0, 0, 255}},
		{"sector 0 middle", 21, 255, 255, 255, color.RGBA{255, 126, 0, 255}},
		{"sector 1 start", 43, 255, 255, 255, color.RGBA{254, 255, 0, 255}},
		{"sector 2 start", 86, 255, 255, 255, color.RGBA{0, 255, 0, 255}},
		{"sector 2 partial", 100, 128, 200, 255, color.RGBA{99, 200, 132, 255}},
		{"sector 3 start", 129, 255, 255, 255, color.RGBA{0, 254, 255, 255}},
		{"sector 4 start", 172, 255, 255, 255, color.RGBA{0, 0, 255, 255}},
		{"sector 5 start", 215, 255, 255, 255, color.RGBA{255, 0, 254, 255}},
		{"sector 5 end", 255, 255, 255, 255, color.RGBA{255, 0, 15, 255}},
		{"alpha passthrough", 0, 255, 255, 20, color.RGBA{255, 0, 0, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HsvaToRgba(tt.h, tt.s, tt.v, tt.a)
			if got != tt.want {
				t.Errorf("HsvaToRgba(%d, %d, %d, %d) = %v, want %v", tt.h, tt.s, tt.v, tt.a, got, tt.want)
			}
		})
	}
}

func TestHsvaToRgbaClampsInputs(t *testing.T) {
	if got, want := HsvaToRgba(300, 255, 255, 255), HsvaToRgba(255, 255, 255, 255); got != want {
		t.Errorf("h=300 gave %v, want clamp to h=255 %v", got, want)
	}
	if got := HsvaToRgba(10, -5, 400, 999); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("clamped gray = %v", got)
	}
}

func TestPickerHSV(t *testing.T) {
	tests := []struct {
		px, py        int
		hue, sat, val int
	}{
		{0, 0, 0, 255, 0},
		{0, 1, 0, 254, 2},
		{90, 50, 90, 191, 100},
		{179, 99, 179, 5, 198},
	}

	for _, tt := range tests {
		hue, sat, val := PickerHSV(tt.px, tt.py, 180, 100)
		if hue != tt.hue || sat != tt.sat || val != tt.val {
			t.Errorf("PickerHSV(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.px, tt.py, hue, sat, val, tt.hue, tt.sat, tt.val)
		}
	}
}

func TestPickerColor(t *testing.T) {
	tests := []struct {
		px, py int
		want   color.RGBA
	}{
		{0, 0, color.RGBA{0, 0, 0, 255}},
		{45, 10, color.RGBA{19, 20, 0, 255}},
		{90, 50, color.RGBA{25, 100, 32, 255}},
		{179, 99, color.RGBA{194, 193, 198, 255}},
	}

	for _, tt := range tests {
		if got := PickerColor(tt.px, tt.py, 180, 100); got != tt.want {
			t.Errorf("PickerColor(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}

func TestJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := color.RGBA{R: 7, G: 130, B: 250, A: 255}

	for i := 0; i < 1000; i++ {
		c := Jitter(rng, base, 40, 100)
		if c.A != 100 {
			t.Fatalf("alpha = %d, want 100", c.A)
		}
		if int(c.G) < 90 || int(c.G) > 170 {
			t.Fatalf("green %d outside base±40", c.G)
		}
		if int(c.R) > 47 {
			t.Fatalf("red %d above base+40", c.R)
		}
		if int(c.B) < 210 {
			t.Fatalf("blue %d below base-40", c.B)
		}
	}

	// Zero spread leaves the base untouched.
	if c := Jitter(rng, base, 0, 9); c != (color.RGBA{7, 130, 250, 9}) {
		t.Errorf("zero spread = %v", c)
	}
}

func TestJitterDeterministic(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	a := rand.New(rand.NewSource(10))
	b := rand.New(rand.NewSource(10))
	for i := 0; i < 50; i++ {
		if ca, cb := Jitter(a, base, 64, 255), Jitter(b, base, 64, 255); ca != cb {
			t.Fatalf("draw %d: %v vs %v", i, ca, cb)
		}
	}
}

func TestRandomIntInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := RandomInt(rng, -2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("RandomInt(-2, 2) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("saw %d distinct values, want 5", len(seen))
	}
}
