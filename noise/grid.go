// Package noise implements the gradient-lattice scalar field that drives the
// flow visualization.
//
// Each lattice node carries its own random unit gradient. There is no
// permutation table: the field is a function of the stored gradients only.
package noise

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// FieldConfig describes the domain and lattice of a gradient grid.
type FieldConfig struct {
	Width      int   // Domain width in pixels
	Height     int   // Domain height in pixels
	Resolution int   // Cells per axis (lattice has Resolution+1 nodes per axis)
	Seed       int64 // RNG seed for the gradient draw
}

// Validate reports the first configuration error, if any.
func (c FieldConfig) Validate() error {
	var err error
	switch {
	case c.Resolution < 1:
		err = ErrInvalidResolution
	case c.Width <= 0 || c.Height <= 0:
		err = ErrInvalidDomain
	case c.Width/c.Resolution < 1 || c.Height/c.Resolution < 1:
		err = ErrZeroSpacing
	}
	if err != nil {
		return &ConfigError{Config: c, Wrapped: err}
	}
	return nil
}

// GradientNode is a lattice intersection with its unit gradient.
type GradientNode struct {
	X, Y int    // Domain position of the node
	Dir  r2.Vec // Unit gradient
}

// Grid holds the gradient lattice for one FieldConfig.
// A Grid is immutable once built and safe for concurrent reads.
type Grid struct {
	cfg       FieldConfig
	rowLength int
	spacingX  float64
	spacingY  float64
	nodes     []GradientNode
}

// NewGrid builds a gradient grid from cfg.
//
// Gradients are drawn from a math/rand source seeded with cfg.Seed, one
// angle in [0, 2π) per node, visiting columns in the outer loop and rows in
// the inner loop. The same seed and resolution always give the same grid.
func NewGrid(cfg FieldConfig) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Resolution + 1
	g := &Grid{
		cfg:       cfg,
		rowLength: n,
		spacingX:  float64(cfg.Width) / float64(cfg.Resolution),
		spacingY:  float64(cfg.Height) / float64(cfg.Resolution),
		nodes:     make([]GradientNode, n*n),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			angle := rng.Float64() * 2 * math.Pi
			g.nodes[row*n+col] = GradientNode{
				X:   int(math.Round(float64(col) * g.spacingX)),
				Y:   int(math.Round(float64(row) * g.spacingY)),
				Dir: r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)},
			}
		}
	}

	return g, nil
}

// Config returns the configuration the grid was built from.
func (g *Grid) Config() FieldConfig {
	return g.cfg
}

// RowLength returns the number of nodes per lattice row.
func (g *Grid) RowLength() int {
	return g.rowLength
}

// Spacing returns the distance between adjacent nodes along each axis.
func (g *Grid) Spacing() (float64, float64) {
	return g.spacingX, g.spacingY
}

// Node returns the node at lattice column col and row row.
func (g *Grid) Node(col, row int) GradientNode {
	return g.nodes[row*g.rowLength+col]
}

// Nodes returns the lattice in row-major order. Callers must not modify it.
func (g *Grid) Nodes() []GradientNode {
	return g.nodes
}

// Contains reports whether (x, y) lies in the closed domain [0,W]x[0,H].
func (g *Grid) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(g.cfg.Width) && y >= 0 && y <= float64(g.cfg.Height)
}
