// SPDX-License-Identifier: MIT

// Package config loads the command-line configuration from TOML and maps it
// onto fit options.
//
// Example file:
//
//	tolerance      = 1e-6
//	max_iterations = 0          # 0 = unbounded
//	method         = "khachiyan" # or "cholesky"
//	rank_tolerance = 1e-8       # 0 = strict max(N,3)·ε
//	merge_distance = 1e-8
//	workers        = 4
//	verbosity      = 2
//	database       = "results.db"
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/polyhedra/ellipsoid"
	"github.com/katalvlaran/polyhedra/geometry"
	"github.com/katalvlaran/polyhedra/mvee"
	"github.com/katalvlaran/polyhedra/report"
)

// ErrInvalid is returned by Validate and Load for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the complete CLI configuration.
type Config struct {
	Tolerance     float64 `toml:"tolerance"`
	MaxIterations int     `toml:"max_iterations"`
	Method        string  `toml:"method"`
	RankTolerance float64 `toml:"rank_tolerance"`
	MergeDistance float64 `toml:"merge_distance"`
	Workers       int     `toml:"workers"`
	Verbosity     int     `toml:"verbosity"`
	Database      string  `toml:"database"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Tolerance:     mvee.DefaultTolerance,
		MaxIterations: mvee.DefaultMaxIterations,
		Method:        mvee.DefaultMethod.String(),
		RankTolerance: geometry.DefaultRankTolerance,
		MergeDistance: geometry.DefaultMergeDistance,
		Workers:       runtime.NumCPU(),
		Verbosity:     report.MinVerbosity,
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against the ranges the fit options accept.
func (c Config) Validate() error {
	switch {
	case !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0):
		return fmt.Errorf("%w: tolerance %g must be finite and > 0", ErrInvalid, c.Tolerance)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations %d must be >= 0", ErrInvalid, c.MaxIterations)
	case !(c.RankTolerance >= 0 && c.RankTolerance < 1):
		return fmt.Errorf("%w: rank_tolerance %g must be in [0,1)", ErrInvalid, c.RankTolerance)
	case !(c.MergeDistance >= 0) || math.IsInf(c.MergeDistance, 0):
		return fmt.Errorf("%w: merge_distance %g must be finite and >= 0", ErrInvalid, c.MergeDistance)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d must be >= 1", ErrInvalid, c.Workers)
	case c.Verbosity < report.MinVerbosity || c.Verbosity > report.MaxVerbosity:
		return fmt.Errorf("%w: verbosity %d must be in [%d,%d]", ErrInvalid, c.Verbosity, report.MinVerbosity, report.MaxVerbosity)
	}
	if _, ok := mvee.ParseMethod(c.Method); !ok {
		return fmt.Errorf("%w: unknown method %q", ErrInvalid, c.Method)
	}

	return nil
}

// FitOptions maps c onto ellipsoid options. c must be valid.
func (c Config) FitOptions() []ellipsoid.Option {
	method, _ := mvee.ParseMethod(c.Method)

	return []ellipsoid.Option{
		ellipsoid.WithTolerance(c.Tolerance),
		ellipsoid.WithMaxIterations(c.MaxIterations),
		ellipsoid.WithMethod(method),
		ellipsoid.WithRankTolerance(c.RankTolerance),
		ellipsoid.WithMergeDistance(c.MergeDistance),
	}
}
