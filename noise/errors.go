package noise

import (
	"errors"
	"fmt"
)

// Configuration errors returned when building a gradient grid.
var (
	// ErrInvalidResolution indicates a grid resolution below 1.
	ErrInvalidResolution = errors.New("noise: resolution must be at least 1")

	// ErrInvalidDomain indicates a non-positive domain width or height.
	ErrInvalidDomain = errors.New("noise: domain size must be positive")

	// ErrZeroSpacing indicates the resolution is finer than one domain unit,
	// so the grid spacing truncates to zero.
	ErrZeroSpacing = errors.New("noise: grid spacing evaluates to zero")
)

// ConfigError wraps a configuration error with the offending values.
type ConfigError struct {
	Config  FieldConfig
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (resolution=%d, domain=%dx%d)",
		e.Wrapped, e.Config.Resolution, e.Config.Width, e.Config.Height)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
