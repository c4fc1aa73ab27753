package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/flowfield/config"
)

var (
	configPath string
	seedFlag   int64
	resolution int
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "flowfield",
		Short:         "gradient noise flow field viewer and renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(logLevel); err != nil {
				return err
			}
			return loadConfig(cmd)
		},
		RunE: runView,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (empty = use defaults)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "field seed (default from config)")
	rootCmd.PersistentFlags().IntVar(&resolution, "resolution", 0, "cells per axis (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	addViewFlags(rootCmd)

	rootCmd.AddCommand(
		newViewCmd(),
		newRenderCmd(),
		newSampleCmd(),
		newProfileCmd(),
		newStatsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs a JSON slog handler on stdout.
func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig initializes the global config and applies flag overrides.
func loadConfig(cmd *cobra.Command) error {
	if err := config.Init(configPath); err != nil {
		return err
	}
	cfg := config.Cfg()

	if cmd.Flags().Changed("seed") {
		cfg.Field.Seed = seedFlag
	}
	if cmd.Flags().Changed("resolution") {
		// Out-of-range values are reported when the grid is built.
		cfg.Sliders.Resolution.Value = resolution
	}

	slog.Debug("config loaded",
		"path", configPath,
		"seed", cfg.Field.Seed,
		"resolution", cfg.Sliders.Resolution.Value,
		"mode", cfg.Derived.Mode.String(),
	)
	return nil
}
