// SPDX-License-Identifier: MIT

package mvee

import "math"

// Defaults (single source of truth).
const (
	// DefaultTolerance is the convergence bound on ‖u′−u‖₂.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations of zero means no iteration cap.
	DefaultMaxIterations = 0

	// DefaultMethod is the plain Khachiyan iteration.
	DefaultMethod = Khachiyan
)

// refactorInterval bounds the number of consecutive rank-one updates of the
// Cholesky factor before it is rebuilt from the current weights.
const refactorInterval = 50

const (
	panicToleranceInvalid     = "mvee: WithTolerance: tolerance must be finite and > 0"
	panicMaxIterationsInvalid = "mvee: WithMaxIterations: cap must be >= 0"
	panicMethodInvalid        = "mvee: WithMethod: unknown method"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	tolerance     float64
	maxIterations int
	method        Method
}

// Tolerance reports the configured convergence bound.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations reports the configured cap (0 = unbounded).
func (o Options) MaxIterations() int { return o.maxIterations }

// Method reports the configured strategy.
func (o Options) Method() Method { return o.method }

// WithTolerance sets the convergence bound on the weight update norm.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the number of weight updates; 0 removes the cap.
// The cap is a hard ceiling regardless of tolerance.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithMethod selects the iteration strategy.
func WithMethod(m Method) Option {
	if m != Khachiyan && m != CholeskyUpdate {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		method:        DefaultMethod,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// exhausted reports whether the cap forbids another update after iter updates.
func (o Options) exhausted(iter int) bool {
	return o.maxIterations > 0 && iter >= o.maxIterations
}
