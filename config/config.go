// Package config provides configuration loading and access for the viewer
// and the command line tools.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/flowfield/noise"
	"github.com/pthm-cable/flowfield/renderer"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Sliders   SlidersConfig   `yaml:"sliders"`
	Colors    ColorsConfig    `yaml:"colors"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings. The window is the field plus a
// sidebar on the right.
type ScreenConfig struct {
	SidebarWidth int `yaml:"sidebar_width"`
	TargetFPS    int `yaml:"target_fps"`
}

// FieldConfig holds the noise domain.
type FieldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// SliderRange is a tunable integer with its bounds.
type SliderRange struct {
	Min   int `yaml:"min"`
	Value int `yaml:"value"`
	Max   int `yaml:"max"`
}

// Set stores v clamped to the range.
func (s *SliderRange) Set(v int) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// SlidersConfig holds the live-tunable generation parameters.
type SlidersConfig struct {
	Resolution SliderRange `yaml:"resolution"`
	Particles  SliderRange `yaml:"particles"`
	Lifespan   SliderRange `yaml:"lifespan"`
	Speed      SliderRange `yaml:"speed"`
	Opacity    SliderRange `yaml:"opacity"`
	ColorRange SliderRange `yaml:"color_range"`
}

// RGB is an opaque colour in config files.
type RGB struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// RGBA returns the colour with full alpha.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

// FromRGBA returns the config form of c, dropping alpha.
func FromRGBA(c color.RGBA) RGB {
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}
}

// ColorsConfig holds the picker colours.
type ColorsConfig struct {
	Background RGB `yaml:"background"`
	Particles  RGB `yaml:"particles"`
}

// RenderConfig holds rendering options.
type RenderConfig struct {
	Mode           string `yaml:"mode"`
	IntegerSteps   bool   `yaml:"integer_steps"`
	Workers        int    `yaml:"workers"`
	ArrowLength    int    `yaml:"arrow_length"`
	DriftParticles int    `yaml:"drift_particles"`
}

// TelemetryConfig holds stats output parameters.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Mode         renderer.Mode // Parsed Render.Mode
	WindowWidth  int           // Field.Width + Screen.SidebarWidth
	WindowHeight int           // Field.Height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if _, err := renderer.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Render.Workers)
	}

	sliders := []struct {
		name string
		r    SliderRange
	}{
		{"resolution", c.Sliders.Resolution},
		{"particles", c.Sliders.Particles},
		{"lifespan", c.Sliders.Lifespan},
		{"speed", c.Sliders.Speed},
		{"opacity", c.Sliders.Opacity},
		{"color_range", c.Sliders.ColorRange},
	}
	for _, s := range sliders {
		if s.r.Min > s.r.Max || s.r.Value < s.r.Min || s.r.Value > s.r.Max {
			return fmt.Errorf("%w: slider %s [%d, %d] value %d",
				ErrInvalidConfig, s.name, s.r.Min, s.r.Max, s.r.Value)
		}
	}
	if c.Sliders.Resolution.Min < 1 {
		return fmt.Errorf("%w: resolution minimum %d", ErrInvalidConfig, c.Sliders.Resolution.Min)
	}
	if c.Sliders.Opacity.Max > 255 {
		return fmt.Errorf("%w: opacity maximum %d", ErrInvalidConfig, c.Sliders.Opacity.Max)
	}

	for name, rgb := range map[string]RGB{"background": c.Colors.Background, "particles": c.Colors.Particles} {
		for _, ch := range []int{rgb.R, rgb.G, rgb.B} {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("%w: colour %s channel %d", ErrInvalidConfig, name, ch)
			}
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Mode, _ = renderer.ParseMode(c.Render.Mode)
	c.Derived.WindowWidth = c.Field.Width + c.Screen.SidebarWidth
	c.Derived.WindowHeight = c.Field.Height
}

// SetMode switches the render mode, keeping Render.Mode in sync.
func (c *Config) SetMode(m renderer.Mode) {
	c.Derived.Mode = m
	c.Render.Mode = m.String()
}

// FieldSnapshot returns the grid configuration for the current values.
func (c *Config) FieldSnapshot() noise.FieldConfig {
	return noise.FieldConfig{
		Width:      c.Field.Width,
		Height:     c.Field.Height,
		Resolution: c.Sliders.Resolution.Value,
		Seed:       c.Field.Seed,
	}
}

// RenderSnapshot returns the render parameters for the current values.
func (c *Config) RenderSnapshot() renderer.Params {
	return renderer.Params{
		Mode:           c.Derived.Mode,
		Particles:      c.Sliders.Particles.Value,
		Lifespan:       c.Sliders.Lifespan.Value,
		Speed:          float64(c.Sliders.Speed.Value),
		Opacity:        uint8(c.Sliders.Opacity.Value),
		ColorRange:     c.Sliders.ColorRange.Value,
		Background:     c.Colors.Background.RGBA(),
		ParticleColor:  c.Colors.Particles.RGBA(),
		IntegerSteps:   c.Render.IntegerSteps,
		Workers:        c.Render.Workers,
		ArrowLength:    float64(c.Render.ArrowLength),
		DriftParticles: c.Render.DriftParticles,
		Seed:           c.Field.Seed,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
