// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"math"

	"github.com/katalvlaran/polyhedra/geometry"
	"github.com/katalvlaran/polyhedra/mvee"
)

// DefaultTolerance is the requested convergence bound when none is given.
const DefaultTolerance = mvee.DefaultTolerance

const (
	panicToleranceInvalid     = "ellipsoid: WithTolerance: tolerance must be finite and > 0"
	panicMaxIterationsInvalid = "ellipsoid: WithMaxIterations: cap must be >= 0"
	panicMethodInvalid        = "ellipsoid: WithMethod: unknown method"
	panicRankToleranceInvalid = "ellipsoid: WithRankTolerance: rcond must be finite, in [0,1)"
	panicMergeInvalid         = "ellipsoid: WithMergeDistance: distance must be finite, non-negative"
)

// Option configures a single Ellipsoid.
type Option func(*Options)

// Options is the resolved per-ellipsoid fit configuration.
type Options struct {
	tolerance     float64
	maxIterations int
	method        mvee.Method
	rankTolerance float64
	mergeDistance float64
}

func (o Options) Tolerance() float64 { return o.tolerance }
func (o Options) MaxIterations() int { return o.maxIterations }
func (o Options) Method() mvee.Method { return o.method }
func (o Options) RankTolerance() float64 { return o.rankTolerance }
func (o Options) MergeDistance() float64 { return o.mergeDistance }

// WithTolerance sets the requested convergence bound.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the solver; 0 removes the cap.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithMethod selects the solver strategy.
func WithMethod(m mvee.Method) Option {
	if m != mvee.Khachiyan && m != mvee.CholeskyUpdate {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithRankTolerance sets the relative singular value cut-off used to detect
// degenerate clouds (see geometry.WithRankTolerance).
func WithRankTolerance(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 || rcond >= 1 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTolerance = rcond }
}

// WithMergeDistance sets the distance below which points are merged before
// the rank test.
func WithMergeDistance(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		panic(panicMergeInvalid)
	}

	return func(o *Options) { o.mergeDistance = d }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:     DefaultTolerance,
		maxIterations: mvee.DefaultMaxIterations,
		method:        mvee.DefaultMethod,
		rankTolerance: geometry.DefaultRankTolerance,
		mergeDistance: geometry.DefaultMergeDistance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

func (o Options) reduceOptions() []geometry.Option {
	return []geometry.Option{
		geometry.WithRankTolerance(o.rankTolerance),
		geometry.WithMergeDistance(o.mergeDistance),
	}
}

func (o Options) solverOptions() []mvee.Option {
	return []mvee.Option{
		mvee.WithTolerance(o.tolerance),
		mvee.WithMaxIterations(o.maxIterations),
		mvee.WithMethod(o.method),
	}
}
