package ui

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/config"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 4
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawSlider draws a labelled integer slider over s and stores the new
// value. bounds covers the bar only; the label sits above it. Returns
// whether the value changed.
func (r *Renderer) DrawSlider(bounds rl.Rectangle, label string, s *config.SliderRange) bool {
	r.DrawLabel(int32(bounds.X), int32(bounds.Y)-r.Theme.LineHeight, label)

	v := gui.SliderBar(bounds, "", "", float32(s.Value), float32(s.Min), float32(s.Max))
	rl.DrawText(fmt.Sprintf("%d", s.Value),
		int32(bounds.X+bounds.Width)+6, int32(bounds.Y)+5, r.Theme.FontSize, r.Theme.ValueColor)

	old := s.Value
	s.Set(int(v))
	return s.Value != old
}

// DrawSwatch fills bounds with c and outlines it.
func (r *Renderer) DrawSwatch(bounds rl.Rectangle, c color.RGBA) {
	x, y := int32(bounds.X), int32(bounds.Y)
	w, h := int32(bounds.Width), int32(bounds.Height)
	rl.DrawRectangle(x, y, w, h, rlColor(c))
	rl.DrawRectangleLines(x, y, w, h, r.Theme.SwatchBorder)
}

// DrawButton draws a raygui button and reports a click.
func (r *Renderer) DrawButton(bounds rl.Rectangle, text string) bool {
	return gui.Button(bounds, text)
}
