package main

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/game"
)

var (
	viewOutputDir string
	viewLogPerf   bool
)

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&viewOutputDir, "output-dir", "", "directory for CSV logs, config snapshot and screenshots")
	cmd.Flags().BoolVar(&viewLogPerf, "log-perf", false, "log frame timings periodically")
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "open the interactive viewer (default)",
		RunE:  runView,
	}
	addViewFlags(cmd)
	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := config.Cfg()

	outputDir := viewOutputDir
	if outputDir == "" {
		outputDir = cfg.Telemetry.OutputDir
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Derived.WindowWidth), int32(cfg.Derived.WindowHeight), "Perlin Noise Field")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	game.SetLogWriter(os.Stderr)
	g, err := game.NewGame(game.Options{
		Config:    cfg,
		OutputDir: outputDir,
		LogPerf:   viewLogPerf,
	})
	if err != nil {
		return err
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}
