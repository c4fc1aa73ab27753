package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/flowfield/noise"
)

// FieldStats summarises the field values sampled over the domain.
type FieldStats struct {
	Seed       int64 `csv:"seed"`
	Width      int   `csv:"width"`
	Height     int   `csv:"height"`
	Resolution int   `csv:"resolution"`
	Samples    int   `csv:"samples"`

	Mean float64 `csv:"mean"`
	Std  float64 `csv:"std"`
	Min  float64 `csv:"min"`
	Max  float64 `csv:"max"`
	P10  float64 `csv:"p10"`
	P50  float64 `csv:"p50"`
	P90  float64 `csv:"p90"`

	// Fraction of samples whose display intensity saturates.
	ClippedLow  float64 `csv:"clipped_low"`
	ClippedHigh float64 `csv:"clipped_high"`
}

// ComputeFieldStats summarises values sampled from a field built with cfg.
// values is not modified.
func ComputeFieldStats(cfg noise.FieldConfig, values []float64) FieldStats {
	s := FieldStats{
		Seed:       cfg.Seed,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Resolution: cfg.Resolution,
		Samples:    len(values),
	}
	if len(values) == 0 {
		return s
	}

	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	var low, high int
	for _, v := range values {
		switch {
		case v <= -0.5:
			low++
		case v >= 0.5:
			high++
		}
	}
	n := float64(len(values))
	s.ClippedLow = float64(low) / n
	s.ClippedHigh = float64(high) / n
	return s
}

// SampleField evaluates g at every integer point of its closed domain,
// row-major with stride Width+1.
func SampleField(g *noise.Grid) []float64 {
	cfg := g.Config()
	values := make([]float64, 0, (cfg.Width+1)*(cfg.Height+1))
	for y := 0; y <= cfg.Height; y++ {
		for x := 0; x <= cfg.Width; x++ {
			values = append(values, g.ValueAt(float64(x), float64(y)))
		}
	}
	return values
}

// LogValue implements slog.LogValuer.
func (s FieldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", s.Seed),
		slog.Int("resolution", s.Resolution),
		slog.Int("samples", s.Samples),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
	)
}

// FrameRecord describes one redraw in the viewer.
type FrameRecord struct {
	Frame      int64  `csv:"frame"`
	Mode       string `csv:"mode"`
	Seed       int64  `csv:"seed"`
	Resolution int    `csv:"resolution"`
	Particles  int    `csv:"particles"`
	Segments   int    `csv:"segments"`
	RedrawUS   int64  `csv:"redraw_us"`
}
