package game

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Space cycles intensity -> streaks -> drift
	if rl.IsKeyPressed(rl.KeySpace) {
		g.cfg.SetMode(g.cfg.Derived.Mode.Next())
		slog.Info("render mode", "mode", g.cfg.Derived.Mode.String())
	}

	if rl.IsKeyPressed(rl.KeyP) {
		if err := g.saveScreenshot(); err != nil {
			slog.Error("screenshot failed", "error", err)
		}
	}

	if rl.IsKeyPressed(rl.KeyL) {
		g.logPerfStats()
	}
}

// saveScreenshot writes the current field image as PNG to the output
// directory, or the working directory when output is disabled.
func (g *Game) saveScreenshot() error {
	dir := g.output.Dir()
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("flowfield_%d_%s_%04d.png",
		g.cfg.Field.Seed, g.cfg.Derived.Mode, g.frame))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot: %w", err)
	}
	defer f.Close()

	if err := g.scene.Surface().WritePNG(f); err != nil {
		return err
	}
	slog.Info("screenshot saved", "path", path)
	return nil
}
