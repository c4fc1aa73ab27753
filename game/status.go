package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawStatus overlays the mode and, after a failed rebuild, the error.
func (g *Game) drawStatus() {
	text := fmt.Sprintf("%s  seed %d  [space] mode  [p] png",
		g.cfg.Derived.Mode, g.cfg.Field.Seed)
	rl.DrawRectangle(0, g.height-22, g.width, 22, rl.Color{R: 0, G: 0, B: 0, A: 160})
	rl.DrawText(text, 6, g.height-17, 12, rl.RayWhite)

	err := g.scene.Err()
	if err == nil {
		err = g.lastErr
	}
	if err != nil {
		rl.DrawText(err.Error(), 6, 6, 12, rl.Red)
	}
}
