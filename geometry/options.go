// SPDX-License-Identifier: MIT

package geometry

import "math"

// Defaults (single source of truth).
const (
	// DefaultRankTolerance is the relative singular value cut-off of the rank
	// test; extents below 1e-8·s_max count as rounding noise.
	DefaultRankTolerance = 1e-8

	// DefaultMergeDistance merges points closer than this (same units as the
	// coordinates). Symmetry-generated images commonly coincide to ~1e-12.
	DefaultMergeDistance = 1e-8
)

const (
	panicRankToleranceInvalid = "geometry: WithRankTolerance: rcond must be finite, in [0,1)"
	panicMergeDistanceInvalid = "geometry: WithMergeDistance: distance must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved numeric policy of Reduce.
type Options struct {
	rankTolerance float64
	mergeDistance float64
}

// RankTolerance reports the configured relative rank cut-off.
func (o Options) RankTolerance() float64 { return o.rankTolerance }

// MergeDistance reports the configured merge distance.
func (o Options) MergeDistance() float64 { return o.mergeDistance }

// WithRankTolerance sets the relative singular value cut-off: a singular value
// s counts towards the rank when s > rcond·s_max. Zero selects the strict
// max(N,3)·ε cut-off, which treats any noise as real extent.
func WithRankTolerance(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 || rcond >= 1 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTolerance = rcond }
}

// WithMergeDistance sets the distance below which points are considered
// coincident. Zero merges exact duplicates only.
func WithMergeDistance(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		panic(panicMergeDistanceInvalid)
	}

	return func(o *Options) { o.mergeDistance = d }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		rankTolerance: DefaultRankTolerance,
		mergeDistance: DefaultMergeDistance,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}

// effectiveRcond resolves rcond == 0 to the strict cut-off for n points.
func effectiveRcond(rcond float64, n int) float64 {
	if rcond > 0 {
		return rcond
	}
	m := n
	if m < 3 {
		m = 3
	}

	return float64(m) * epsMachine
}

// epsMachine is the float64 unit round-off used by the default rank cut-off.
const epsMachine = 2.220446049250313e-16
