package ui

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/palette"
)

// Layout offsets within the sidebar, in pixels.
const (
	pickerWidth  = 180
	pickerHeight = 100
	swatchHeight = 30
	sliderWidth  = 140
)

// Action reports what the sidebar changed this frame.
type Action struct {
	Changed bool // Any generation parameter changed
	NewSeed bool // The seed button was pressed
}

// Sidebar is the parameter panel to the right of the field.
type Sidebar struct {
	x, width, height int32
	r                *Renderer
	rng              *rand.Rand

	background *Picker
	particles  *Picker
}

// NewSidebar creates a sidebar whose left edge is at x. rng draws new
// seeds. Requires an open window.
func NewSidebar(x, width, height int32, rng *rand.Rand) *Sidebar {
	fx := float32(x)
	return &Sidebar{
		x:          x,
		width:      width,
		height:     height,
		r:          NewRenderer(),
		rng:        rng,
		background: NewPicker(rl.Rectangle{X: fx + 10, Y: 117, Width: pickerWidth, Height: pickerHeight}),
		particles:  NewPicker(rl.Rectangle{X: fx + 10, Y: 576, Width: pickerWidth, Height: pickerHeight}),
	}
}

// Unload releases the picker textures.
func (s *Sidebar) Unload() {
	s.background.Unload()
	s.particles.Unload()
}

// Draw renders the sidebar and applies edits to cfg.
func (s *Sidebar) Draw(cfg *config.Config) Action {
	var act Action
	r := s.r
	x := float32(s.x)

	r.DrawPanel(s.x, 0, s.width, s.height)
	r.DrawSectionHeader(s.x+r.Theme.Padding, 12, "FIELD")

	slider := func(y float32, label string, v *config.SliderRange) {
		bounds := rl.Rectangle{X: x + 15, Y: y, Width: sliderWidth, Height: float32(r.Theme.SliderHeight)}
		if r.DrawSlider(bounds, label, v) {
			act.Changed = true
		}
	}

	slider(71, "Resolution", &cfg.Sliders.Resolution)

	r.DrawLabel(s.x+10, 101, "Background")
	s.background.Draw()
	r.DrawSwatch(rl.Rectangle{X: x + 10, Y: 227, Width: pickerWidth, Height: swatchHeight}, cfg.Colors.Background.RGBA())

	r.DrawSectionHeader(s.x+r.Theme.Padding, 290, "PARTICLES")
	slider(343, "Count", &cfg.Sliders.Particles)
	slider(388, "Lifespan", &cfg.Sliders.Lifespan)
	slider(433, "Speed", &cfg.Sliders.Speed)
	slider(478, "Opacity", &cfg.Sliders.Opacity)
	slider(524, "Colour range", &cfg.Sliders.ColorRange)

	s.particles.Draw()
	r.DrawSwatch(rl.Rectangle{X: x + 10, Y: 686, Width: pickerWidth, Height: swatchHeight}, cfg.Colors.Particles.RGBA())

	seedButton := rl.Rectangle{X: x + 10, Y: 740, Width: pickerWidth, Height: 50}
	if r.DrawButton(seedButton, fmt.Sprintf("New Seed (%d)", cfg.Field.Seed)) {
		cfg.Field.Seed = int64(palette.RandomInt(s.rng, 0, 255))
		act.Changed = true
		act.NewSeed = true
	}

	mouse := rl.GetMousePosition()
	mx, my := int32(mouse.X), int32(mouse.Y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if pickColor(s.background, mx, my, &cfg.Colors.Background) ||
			pickColor(s.particles, mx, my, &cfg.Colors.Particles) {
			act.Changed = true
		}
	}
	s.updateCursor(mx, my)

	return act
}

func pickColor(p *Picker, mx, my int32, dst *config.RGB) bool {
	px, py, ok := p.Pick(mx, my)
	if !ok {
		return false
	}
	*dst = config.FromRGBA(palette.PickerColor(px, py, int(p.Bounds.Width), int(p.Bounds.Height)))
	return true
}

func (s *Sidebar) updateCursor(mx, my int32) {
	switch {
	case isInside(mx, my, s.background.Bounds), isInside(mx, my, s.particles.Bounds):
		rl.SetMouseCursor(rl.MouseCursorCrosshair)
	case mx > s.x:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}
