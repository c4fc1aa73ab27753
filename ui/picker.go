package ui

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/palette"
)

// Picker is an HSV colour field: hue runs left to right, value top to
// bottom, saturation falls off with depth.
type Picker struct {
	Bounds  rl.Rectangle
	texture rl.Texture2D
}

// NewPicker renders the picker gradient into a texture. Requires an open
// window.
func NewPicker(bounds rl.Rectangle) *Picker {
	w, h := int(bounds.Width), int(bounds.Height)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, palette.PickerColor(x, y, w, h))
		}
	}

	rlImg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rlImg)
	return &Picker{Bounds: bounds, texture: rl.LoadTextureFromImage(rlImg)}
}

// Draw blits the gradient.
func (p *Picker) Draw() {
	rl.DrawTexture(p.texture, int32(p.Bounds.X), int32(p.Bounds.Y), rl.White)
}

// Pick returns the picker-local coordinates of (mx, my) when the point
// lies strictly inside the picker.
func (p *Picker) Pick(mx, my int32) (px, py int, ok bool) {
	if !isInside(mx, my, p.Bounds) {
		return 0, 0, false
	}
	return int(mx - int32(p.Bounds.X)), int(my - int32(p.Bounds.Y)), true
}

// Unload releases the texture.
func (p *Picker) Unload() {
	rl.UnloadTexture(p.texture)
}

// isInside reports whether (x, y) lies strictly inside r. Points on the
// border do not count.
func isInside(x, y int32, r rl.Rectangle) bool {
	rx, ry := int32(r.X), int32(r.Y)
	return x > rx && x < rx+int32(r.Width) && y > ry && y < ry+int32(r.Height)
}
