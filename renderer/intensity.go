package renderer

import (
	"context"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flowfield/noise"
	"github.com/pthm-cable/flowfield/palette"
)

var (
	intensityBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	arrowColor          = color.RGBA{R: 255, A: 255}
)

// DrawIntensity renders the field as black ink of varying alpha over white,
// then overlays one arrow per gradient node.
//
// Every integer point of the closed domain [0,W]x[0,H] is sampled. The
// returned buffer holds the raw field values, row-major with stride W+1.
// Values are not clamped there; only the pixel alpha is.
func DrawIntensity(ctx context.Context, s Surface, g *noise.Grid, p Params) ([]float64, error) {
	cfg := g.Config()
	stride := cfg.Width + 1
	rows := cfg.Height + 1
	values := make([]float64, stride*rows)

	parallelFor(rows, p.Workers, func(start, end int) {
		for y := start; y < end; y++ {
			if ctx.Err() != nil {
				return
			}
			row := values[y*stride : (y+1)*stride]
			for x := range row {
				row[x] = g.ValueAt(float64(x), float64(y))
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.Clear(intensityBackground)
	for x := 0; x < stride; x++ {
		for y := 0; y < rows; y++ {
			s.SetPixel(x, y, IntensityColor(values[y*stride+x]))
		}
	}

	length := p.ArrowLength
	if length <= 0 {
		length = 20
	}
	for _, n := range g.Nodes() {
		DrawArrow(s, n, length, arrowColor)
	}
	return values, nil
}

// IntensityColor maps a field value to the pixel drawn for it.
func IntensityColor(v float64) color.RGBA {
	return color.RGBA{A: uint8(palette.Clamp(int((v+0.5)*255), 0, 255))}
}

// DrawArrow draws a gradient arrow: a shaft of the given length along the
// node direction and two head strokes back to half length, offset a
// quarter length to either side.
func DrawArrow(s Surface, n noise.GradientNode, length float64, c color.RGBA) {
	base := r2.Vec{X: float64(n.X), Y: float64(n.Y)}
	perp := r2.Vec{X: -n.Dir.Y, Y: n.Dir.X}
	tip := r2.Add(base, r2.Scale(length, n.Dir))
	mid := r2.Add(base, r2.Scale(length/2, n.Dir))

	drawSegment(s, base, tip, c)
	drawSegment(s, tip, r2.Add(mid, r2.Scale(length/4, perp)), c)
	drawSegment(s, tip, r2.Sub(mid, r2.Scale(length/4, perp)), c)
}

func drawSegment(s Surface, from, to r2.Vec, c color.RGBA) {
	s.DrawLine(int(from.X), int(from.Y), int(to.X), int(to.Y), c)
}
