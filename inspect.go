package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/flowfield/config"
	"github.com/pthm-cable/flowfield/noise"
	"github.com/pthm-cable/flowfield/systems"
	"github.com/pthm-cable/flowfield/telemetry"
)

var (
	profileRow    int
	profileHeight int
	profileWidth  int
	statsOutput   string
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [x] [y]",
		Short: "print the field value and heading at a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing y: %w", err)
			}

			g, err := buildGrid()
			if err != nil {
				return err
			}
			v := g.ValueAt(x, y)
			sx, sy := g.Spacing()
			last := g.Config().Resolution - 1

			fmt.Println(titleStyle.Render("Field sample"))
			printRow("point", fmt.Sprintf("(%g, %g)", x, y))
			printRow("inside", fmt.Sprintf("%t", g.Contains(x, y)))
			printRow("cell", fmt.Sprintf("(%d, %d)", min(int(x/sx), last), min(int(y/sy), last)))
			printRow("value", fmt.Sprintf("%.6f", v))
			printRow("heading", fmt.Sprintf("%.4f rad", systems.Heading(v)))
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the field along one row",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGrid()
			if err != nil {
				return err
			}
			cfg := g.Config()
			if profileRow < 0 || profileRow > cfg.Height {
				return fmt.Errorf("row %d outside [0, %d]", profileRow, cfg.Height)
			}

			values := make([]float64, cfg.Width+1)
			for x := range values {
				values[x] = g.ValueAt(float64(x), float64(profileRow))
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("Row %d", profileRow)))
			fmt.Println(asciigraph.Plot(values,
				asciigraph.Height(profileHeight),
				asciigraph.Width(profileWidth),
				asciigraph.Caption(fmt.Sprintf("seed %d, resolution %d", cfg.Seed, cfg.Resolution)),
			))
			return nil
		},
	}
	cmd.Flags().IntVar(&profileRow, "row", 400, "row to sample")
	cmd.Flags().IntVar(&profileHeight, "height", 12, "plot height in lines")
	cmd.Flags().IntVar(&profileWidth, "width", 100, "plot width in columns")
	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "summarise field values over the whole domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGrid()
			if err != nil {
				return err
			}

			s := telemetry.ComputeFieldStats(g.Config(), telemetry.SampleField(g))
			slog.Info("field stats", "stats", s)

			fmt.Println(titleStyle.Render("Field statistics"))
			printRow("seed", fmt.Sprintf("%d", s.Seed))
			printRow("resolution", fmt.Sprintf("%d", s.Resolution))
			printRow("samples", fmt.Sprintf("%d", s.Samples))
			printRow("mean", fmt.Sprintf("%.4f", s.Mean))
			printRow("std", fmt.Sprintf("%.4f", s.Std))
			printRow("min / max", fmt.Sprintf("%.4f / %.4f", s.Min, s.Max))
			printRow("p10 / p50 / p90", fmt.Sprintf("%.4f / %.4f / %.4f", s.P10, s.P50, s.P90))
			printRow("clipped", fmt.Sprintf("%.2f%% low, %.2f%% high", s.ClippedLow*100, s.ClippedHigh*100))

			dir := statsOutput
			if dir == "" {
				dir = config.Cfg().Telemetry.OutputDir
			}
			om, err := telemetry.NewOutputManager(dir)
			if err != nil {
				return err
			}
			defer om.Close()
			if err := om.WriteConfig(config.Cfg()); err != nil {
				return err
			}
			if err := om.WriteFieldStats(s); err != nil {
				return err
			}
			if om != nil {
				fmt.Println(mutedStyle.Render("wrote " + om.Dir()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&statsOutput, "output-dir", "", "directory for field_stats.csv (empty = no output)")
	return cmd
}

func buildGrid() (*noise.Grid, error) {
	return noise.NewGrid(config.Cfg().FieldSnapshot())
}
