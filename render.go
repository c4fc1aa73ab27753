package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/renderer"
)

var (
	renderOut     string
	renderMode    string
	renderSteps   int
	renderTimeout time.Duration
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render the field headlessly to a PNG",
		RunE:  runRender,
	}
	cmd.Flags().StringVar(&renderOut, "out", "flowfield.png", "output PNG path")
	cmd.Flags().StringVar(&renderMode, "mode", "", "intensity, streaks or drift (default from config)")
	cmd.Flags().IntVar(&renderSteps, "steps", 200, "steps to advance in drift mode")
	cmd.Flags().DurationVar(&renderTimeout, "timeout", 0, "abort rendering after this long (0 = no limit)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Cfg()
	if renderMode != "" {
		m, err := renderer.ParseMode(renderMode)
		if err != nil {
			return err
		}
		cfg.SetMode(m)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, renderTimeout)
		defer cancel()
	}

	fieldCfg := cfg.FieldSnapshot()
	params := cfg.RenderSnapshot()
	scene := renderer.NewScene(fieldCfg.Width, fieldCfg.Height)

	start := time.Now()
	res, err := scene.Update(ctx, fieldCfg, params)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	segments := res.Segments
	if params.Mode == renderer.ModeDrift {
		for i := 1; i < renderSteps; i++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			step, err := scene.Redraw(ctx, params)
			if err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			segments += step.Segments
		}
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()
	if err := scene.Surface().WritePNG(f); err != nil {
		return err
	}

	slog.Info("rendered",
		"out", renderOut,
		"mode", params.Mode.String(),
		"seed", fieldCfg.Seed,
		"resolution", fieldCfg.Resolution,
		"segments", segments,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
