package renderer

import "image/color"

type pixelCall struct {
	X, Y int
	C    color.RGBA
}

type lineCall struct {
	X0, Y0, X1, Y1 int
	C              color.RGBA
}

// recorder is a Surface that records draw calls.
type recorder struct {
	w, h   int
	clears []color.RGBA
	pixels []pixelCall
	lines  []lineCall
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h}
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear(c color.RGBA) {
	r.clears = append(r.clears, c)
}

func (r *recorder) SetPixel(x, y int, c color.RGBA) {
	r.pixels = append(r.pixels, pixelCall{X: x, Y: y, C: c})
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	r.lines = append(r.lines, lineCall{X0: x0, Y0: y0, X1: x1, Y1: y1, C: c})
}
