package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Surface receives draw primitives. Implementations need not be safe for
// concurrent use.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	SetPixel(x, y int, c color.RGBA)
	DrawLine(x0, y0, x1, y1 int, c color.RGBA)
}

// ImageSurface draws into an in-memory RGBA image with source-over alpha
// blending. Pixels outside the image are ignored.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a w x h surface cleared to transparent black.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear overwrites every pixel with c.
func (s *ImageSurface) Clear(c color.RGBA) {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// SetPixel blends c over the pixel at (x, y).
func (s *ImageSurface) SetPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	i := s.img.PixOffset(x, y)
	pix := s.img.Pix[i : i+4 : i+4]

	a := int(c.A)
	inv := 255 - a
	pix[0] = uint8((int(c.R)*a + int(pix[0])*inv + 127) / 255)
	pix[1] = uint8((int(c.G)*a + int(pix[1])*inv + 127) / 255)
	pix[2] = uint8((int(c.B)*a + int(pix[2])*inv + 127) / 255)
	pix[3] = uint8(a + (int(pix[3])*inv+127)/255)
}

// DrawLine blends a one pixel wide line including both endpoints.
func (s *ImageSurface) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		s.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Pixels copies the image into dst as colours, growing dst if needed.
func (s *ImageSurface) Pixels(dst []color.RGBA) []color.RGBA {
	pix := s.img.Pix
	n := len(pix) / 4
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	for i := range dst {
		j := i * 4
		dst[i] = color.RGBA{R: pix[j], G: pix[j+1], B: pix[j+2], A: pix[j+3]}
	}
	return dst
}

// WritePNG encodes the surface as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
