// Package components defines ECS components for drifting particles.
package components

import "image/color"

// Position is a particle's domain position.
type Position struct {
	X, Y float64
}

// Life tracks the steps a particle has left.
type Life struct {
	Remaining int32
	Max       int32
}

// Tint is the colour a particle draws its streak with.
type Tint struct {
	Color color.RGBA
}
