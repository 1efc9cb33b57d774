// Package config assembles the settings of the uvspec command.
//
// Settings are layered, lowest precedence first:
//  1. defaults ([New])
//  2. a YAML file, named by the -config flag or UVSPEC_CONFIG
//  3. environment variables with the UVSPEC_ prefix (UVSPEC_SIGMA, ...)
//  4. command-line flags that were set explicitly
package config

import (
	"fmt"

	"github.com/cwbudde/algo-uvspec/lineshape"
	"github.com/cwbudde/algo-uvspec/specfile"
)

// Config holds fit parameters and output options.
type Config struct {
	// Grid is the energy grid spacing in eV.
	Grid float64 `koanf:"grid"`
	// Range pads the grid beyond the extreme sticks, in eV.
	Range float64 `koanf:"range"`
	// Sigma is the Gaussian broadening width in eV.
	Sigma float64 `koanf:"sigma"`
	// Shift offsets the energy axis in eV.
	Shift float64 `koanf:"shift"`

	// Output selects the column groups: curve, sticks or both.
	Output string `koanf:"output"`
	// NoMeta drops the metadata block from the output file.
	NoMeta bool `koanf:"nometa"`
	// OutFile overrides the output file name.
	OutFile string `koanf:"outfile"`
	// Join merges every log file instead of using only the first.
	Join bool `koanf:"join"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		Grid:     0.01,
		Range:    1.0,
		Sigma:    0.1,
		Shift:    0.0,
		Output:   specfile.ModeBoth.String(),
		LogLevel: "info",
	}
}

// Params returns the fit parameters.
func (c *Config) Params() lineshape.Params {
	return lineshape.Params{
		GridSpacing: c.Grid,
		Range:       c.Range,
		Sigma:       c.Sigma,
		Shift:       c.Shift,
	}
}

// Mode returns the parsed output mode.
func (c *Config) Mode() (specfile.Mode, error) {
	return specfile.ParseMode(c.Output)
}

// Validate checks the fit parameters and the output mode.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
