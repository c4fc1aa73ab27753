package noise

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r2"
)

// Fade is the quintic ease curve 6t⁵ - 15t⁴ + 10t³.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Interp blends a and b by the faded weight w.
// Interp(a, b, 0) == b and Interp(a, b, 1) == a.
func Interp(a, b, w float64) float64 {
	return (a-b)*Fade(w) + b
}

// ValueAt evaluates the field at (x, y).
//
// Points outside the domain return 0. Inside, the result is the faded
// bilinear blend of the four corner dot products. It is not normalized:
// values usually fall within [-1, 1] but are not bounded by it, so display
// code must clamp.
func (g *Grid) ValueAt(x, y float64) float64 {
	if !g.Contains(x, y) {
		return 0
	}
	col, dx := g.cellX(x)
	row, dy := g.cellY(y)
	return g.valueInCell(col, row, dx, dy)
}

// cellX locates the cell column containing x and the offset within it.
// The far domain edge belongs to the last cell with offset 1.
func (g *Grid) cellX(x float64) (int, float64) {
	fx := x / g.spacingX
	col := int(math.Floor(fx))
	if col > g.cfg.Resolution-1 {
		col = g.cfg.Resolution - 1
	}
	return col, fx - float64(col)
}

func (g *Grid) cellY(y float64) (int, float64) {
	fy := y / g.spacingY
	row := int(math.Floor(fy))
	if row > g.cfg.Resolution-1 {
		row = g.cfg.Resolution - 1
	}
	return row, fy - float64(row)
}

// valueInCell evaluates the field from cell (col, row) at local offset
// (dx, dy), measured in cell units from the cell's top-left node.
func (g *Grid) valueInCell(col, row int, dx, dy float64) float64 {
	n := g.rowLength
	base := row*n + col

	d0 := r2.Dot(r2.Vec{X: dx, Y: dy}, g.nodes[base].Dir)
	d1 := r2.Dot(r2.Vec{X: dx - 1, Y: dy}, g.nodes[base+1].Dir)
	d2 := r2.Dot(r2.Vec{X: dx, Y: dy - 1}, g.nodes[base+n].Dir)
	d3 := r2.Dot(r2.Vec{X: dx - 1, Y: dy - 1}, g.nodes[base+n+1].Dir)

	i0 := Interp(d1, d0, dx)
	i1 := Interp(d3, d2, dx)
	return Interp(i1, i0, dy)
}

// Field holds the current grid and swaps it atomically on rebuild.
// A single goroutine may call Rebuild while others call ValueAt.
type Field struct {
	grid atomic.Pointer[Grid]
}

// NewField builds a field with an initial grid.
func NewField(cfg FieldConfig) (*Field, error) {
	f := &Field{}
	if err := f.Rebuild(cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Rebuild builds a fresh grid from cfg and swaps it in.
// On error the previous grid stays in place.
func (f *Field) Rebuild(cfg FieldConfig) error {
	g, err := NewGrid(cfg)
	if err != nil {
		return err
	}
	f.grid.Store(g)
	return nil
}

// NeedsRebuild reports whether cfg differs from the current grid's config.
func (f *Field) NeedsRebuild(cfg FieldConfig) bool {
	g := f.grid.Load()
	return g == nil || g.cfg != cfg
}

// Grid returns the current grid snapshot, or nil before the first build.
func (f *Field) Grid() *Grid {
	return f.grid.Load()
}

// ValueAt evaluates the current grid at (x, y).
func (f *Field) ValueAt(x, y float64) float64 {
	g := f.grid.Load()
	if g == nil {
		return 0
	}
	return g.ValueAt(x, y)
}
