package renderer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestImageSurfaceBlend(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name string
		dst  color.RGBA
		src  color.RGBA
		want color.RGBA
	}{
		{"opaque replaces", white, color.RGBA{R: 255, A: 255}, color.RGBA{R: 255, A: 255}},
		{"transparent keeps", white, color.RGBA{R: 10, G: 20, B: 30}, white},
		{"half black over white", white, color.RGBA{A: 128}, color.RGBA{R: 127, G: 127, B: 127, A: 255}},
		{"over empty", color.RGBA{}, color.RGBA{R: 200, A: 100}, color.RGBA{R: 78, A: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurface(2, 2)
			s.Clear(tt.dst)
			s.SetPixel(1, 1, tt.src)
			if got := s.Image().RGBAAt(1, 1); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
			if got := s.Image().RGBAAt(0, 0); got != tt.dst {
				t.Errorf("untouched pixel = %v, want %v", got, tt.dst)
			}
		})
	}
}

func TestImageSurfaceIgnoresOutOfRange(t *testing.T) {
	s := NewImageSurface(3, 3)
	red := color.RGBA{R: 255, A: 255}
	s.SetPixel(-1, 0, red)
	s.SetPixel(3, 0, red)
	s.SetPixel(0, 3, red)

	for _, c := range s.Pixels(nil) {
		if c != (color.RGBA{}) {
			t.Fatalf("expected empty surface, got pixel %v", c)
		}
	}
}

func TestDrawLineInclusive(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantCount      int
	}{
		{"point", 2, 2, 2, 2, 1},
		{"horizontal", 0, 1, 4, 1, 5},
		{"vertical reversed", 3, 4, 3, 0, 5},
		{"diagonal", 0, 0, 4, 4, 5},
		{"shallow", 0, 0, 4, 2, 5},
		{"clipped", -2, 0, 2, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurface(5, 5)
			s.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, red)

			count := 0
			for _, c := range s.Pixels(nil) {
				if c == red {
					count++
				}
			}
			if count != tt.wantCount {
				t.Errorf("lit pixels = %d, want %d", count, tt.wantCount)
			}
			img := s.Image()
			if inside(tt.x1, tt.y1, 5, 5) && img.RGBAAt(tt.x1, tt.y1) != red {
				t.Errorf("end point (%d,%d) not drawn", tt.x1, tt.y1)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	s := NewImageSurface(4, 3)
	s.Clear(color.RGBA{R: 14, G: 12, B: 89, A: 255})

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func inside(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}
