// Package ui draws the viewer sidebar: sliders, colour pickers and the
// seed button. Widgets edit a *config.Config in place; the frame loop
// snapshots it afterwards.
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	SwatchBorder  rl.Color

	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
	SliderHeight   int32
	ValueWidth     int32 // Space reserved right of a slider for its value
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 255},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Color{R: 249, G: 226, B: 175, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		SwatchBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		Padding:        10,
		LineHeight:     16,
		FontSize:       12,
		HeaderFontSize: 14,
		SliderHeight:   22,
		ValueWidth:     44,
	}
}

// rlColor converts a stdlib colour for raylib calls.
func rlColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
