// SPDX-License-Identifier: MIT

package mvee

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for a nil or empty point matrix.
	ErrBadShape = errors.New("mvee: invalid point matrix shape")

	// ErrNaNInf is returned when a coordinate is NaN or ±Inf.
	ErrNaNInf = errors.New("mvee: NaN or Inf coordinate")

	// ErrTooFewPoints is returned when N < d+1; such a set cannot span d dimensions.
	ErrTooFewPoints = errors.New("mvee: fewer than d+1 points")

	// ErrSingular is returned when the weighted scatter matrix V cannot be
	// inverted or factorised (the points do not span their dimension).
	ErrSingular = errors.New("mvee: singular scatter matrix")

	// ErrNonFiniteLeverage is returned when the iteration produced NaN/Inf
	// leverages, which only happens on numerically singular input.
	ErrNonFiniteLeverage = fmt.Errorf("%w: non-finite leverage", ErrSingular)
)

const (
	opSolve     = "Solve"
	opKhachiyan = "Khachiyan"
	opCholesky  = "CholeskyUpdate"
)

// mveeErrorf tags err with op. err must be non-nil.
func mveeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
