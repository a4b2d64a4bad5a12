// Package config loads antmst run configuration from defaults, an optional
// YAML/JSON file, ANTMST_* environment variables and explicit overrides, in
// increasing order of priority, and validates the result.
package config

import (
	"github.com/katalvlaran/antmst/aco"
	"github.com/katalvlaran/antmst/mst"
)

// Config is the complete run configuration.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	MST     MSTConfig     `mapstructure:"mst"`
	ACO     ACOConfig     `mapstructure:"aco"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// GraphConfig locates the graph description.
type GraphConfig struct {
	// Path is a YAML or JSON description file.
	Path string `mapstructure:"path"`
}

// MSTConfig tunes the randomized MST builder.
type MSTConfig struct {
	Seed int64 `mapstructure:"seed"`
	// MaxIterations 0 keeps the builder default.
	MaxIterations int `mapstructure:"max_iterations" validate:"gte=0"`
}

// ACOConfig holds the ant parameters.
type ACOConfig struct {
	Alpha         float64 `mapstructure:"alpha" validate:"gte=0"`
	Beta          float64 `mapstructure:"beta" validate:"gte=0"`
	Rho           float64 `mapstructure:"rho" validate:"gt=0,lte=1"`
	MaxIterations int     `mapstructure:"max_iterations" validate:"min=1"`
	Seed          int64   `mapstructure:"seed"`
	// Runs repeats the whole ACO run, each with a derived seed.
	Runs int `mapstructure:"runs" validate:"min=1,max=10000"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// File, when set, receives the metrics in text exposition format after the runs.
	File      string `mapstructure:"file"`
	Namespace string `mapstructure:"namespace" validate:"required"`
}

// DefaultConfig returns the defaults: α=1, β=2, ρ=0.1, σ=5, one run, info
// logs in text format.
func DefaultConfig() *Config {
	return &Config{
		ACO: ACOConfig{
			Alpha:         aco.DefaultAlpha,
			Beta:          aco.DefaultBeta,
			Rho:           aco.DefaultRho,
			MaxIterations: aco.DefaultMaxIterations,
			Runs:          1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "antmst",
		},
	}
}

// ACOOptions converts the ACO section into engine options. Logger and
// Observer are left for the caller.
func (c *Config) ACOOptions() aco.Options {
	return aco.Options{
		Alpha:         c.ACO.Alpha,
		Beta:          c.ACO.Beta,
		Rho:           c.ACO.Rho,
		MaxIterations: c.ACO.MaxIterations,
		Seed:          c.ACO.Seed,
	}
}

// MSTOptions converts the MST section into builder options.
func (c *Config) MSTOptions() []mst.Option {
	opts := []mst.Option{mst.WithSeed(c.MST.Seed)}
	if c.MST.MaxIterations > 0 {
		opts = append(opts, mst.WithMaxIterations(c.MST.MaxIterations))
	}

	return opts
}
