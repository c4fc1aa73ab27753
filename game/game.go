// Package game runs the interactive viewer: a raylib window showing the
// rendered field next to the parameter sidebar.
package game

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/noise"
	"github.com/pthm-cable/flowfield/renderer"
	"github.com/pthm-cable/flowfield/telemetry"
	"github.com/pthm-cable/flowfield/ui"
)

// perfLogInterval is how often perf stats are logged, in frames.
const perfLogInterval = 600

// Options configures a viewer.
type Options struct {
	Config    *config.Config
	OutputDir string // CSV and screenshot output (empty = disabled)
	LogPerf   bool   // Periodically log frame timings
}

// Game holds the viewer state. All methods must be called from the
// goroutine that owns the window.
type Game struct {
	cfg     *config.Config
	scene   *renderer.Scene
	sidebar *ui.Sidebar
	perf    *telemetry.PerfCollector
	output  *telemetry.OutputManager
	logPerf bool

	texture rl.Texture2D
	pixels  []color.RGBA

	width, height int32
	frame         int64
	lastErr       error // Last redraw failure
}

// NewGame creates a viewer. The window must already be open.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	w, h := cfg.Field.Width, cfg.Field.Height

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	img := rl.GenImageColor(w, h, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	g := &Game{
		cfg:     cfg,
		scene:   renderer.NewScene(w, h),
		sidebar: ui.NewSidebar(int32(w), int32(cfg.Screen.SidebarWidth), int32(h), rand.New(rand.NewSource(time.Now().UnixNano()))),
		perf:    telemetry.NewPerfCollector(60),
		output:  output,
		logPerf: opts.LogPerf,
		texture: texture,
		width:   int32(w),
		height:  int32(h),
	}
	return g, nil
}

// Update advances one frame: input, rebuild and redraw as needed.
func (g *Game) Update() {
	g.perf.StartFrame()
	g.handleInput()

	fieldCfg := g.cfg.FieldSnapshot()
	params := g.cfg.RenderSnapshot()

	g.perf.StartPhase(telemetry.PhaseRebuild)
	rebuilt, err := g.scene.Rebuild(fieldCfg)
	if err != nil {
		g.reportError(err, fieldCfg)
	} else if rebuilt {
		slog.Info("grid rebuilt",
			"seed", fieldCfg.Seed,
			"resolution", fieldCfg.Resolution,
		)
	}

	g.perf.StartPhase(telemetry.PhaseRedraw)
	res, err := g.scene.Redraw(context.Background(), params)
	if err != nil {
		g.reportError(err, fieldCfg)
	}

	if res.Redrawn {
		g.lastErr = nil
		g.perf.StartPhase(telemetry.PhaseUpload)
		g.pixels = g.scene.Surface().Pixels(g.pixels)
		rl.UpdateTexture(g.texture, g.pixels)

		if params.Mode != renderer.ModeDrift {
			g.recordFrame(params, fieldCfg, res)
		}
	}
}

// Draw renders the field texture and the sidebar. Sidebar edits land in
// the config and take effect on the next Update.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(g.texture, 0, 0, rl.White)

	g.perf.StartPhase(telemetry.PhaseUI)
	if act := g.sidebar.Draw(g.cfg); act.NewSeed {
		slog.Info("new seed", "seed", g.cfg.Field.Seed)
	}
	g.drawStatus()

	rl.EndDrawing()
	g.perf.EndFrame()
	g.frame++

	if g.frame%perfLogInterval == 0 {
		stats := g.perf.Stats()
		if g.logPerf {
			slog.Info("perf", "stats", stats)
		}
		if err := g.output.WritePerf(stats, g.frame); err != nil {
			slog.Warn("perf output failed", "error", err)
		}
	}
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	rl.UnloadTexture(g.texture)
	g.sidebar.Unload()
	if err := g.output.Close(); err != nil {
		slog.Warn("closing output", "error", err)
	}
}

func (g *Game) reportError(err error, cfg noise.FieldConfig) {
	var cfgErr *noise.ConfigError
	if errors.As(err, &cfgErr) {
		slog.Error("grid rebuild failed, keeping previous frame",
			"error", err,
			"width", cfg.Width,
			"height", cfg.Height,
			"resolution", cfg.Resolution,
		)
		return
	}
	g.lastErr = err
	slog.Error("redraw failed", "error", err)
}

func (g *Game) recordFrame(p renderer.Params, cfg noise.FieldConfig, res renderer.Result) {
	slog.Debug("redraw",
		"mode", p.Mode.String(),
		"segments", res.Segments,
		"duration_ms", res.Duration.Milliseconds(),
	)
	err := g.output.WriteFrame(telemetry.FrameRecord{
		Frame:      g.frame,
		Mode:       p.Mode.String(),
		Seed:       cfg.Seed,
		Resolution: cfg.Resolution,
		Particles:  p.Particles,
		Segments:   res.Segments,
		RedrawUS:   res.Duration.Microseconds(),
	})
	if err != nil {
		slog.Warn("frame output failed", "error", err)
	}
}
