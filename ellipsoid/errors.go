// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyhedra/mvee"
)

var (
	// ErrNotFitted is returned by descriptors requested before a successful Fit.
	ErrNotFitted = errors.New("ellipsoid: not fitted")

	// ErrSingularGeometry is returned when the solver or the assembler meets a
	// singular scatter matrix. It matches mvee.ErrSingular as well.
	ErrSingularGeometry = fmt.Errorf("ellipsoid: singular geometry: %w", mvee.ErrSingular)

	// ErrNotConverged is returned by RequireConverged when the iteration cap
	// stopped the solver before the requested tolerance was reached.
	ErrNotConverged = errors.New("ellipsoid: iteration cap reached before tolerance")
)

const (
	opFit      = "Fit"
	opSolve    = "Solve"
	opAssemble = "Assemble"
	opRequire  = "RequireConverged"
)

// ellipsoidErrorf tags err with op. err must be non-nil.
func ellipsoidErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// classifySolverError folds solver failures caused by the point geometry into
// ErrSingularGeometry and passes everything else through.
func classifySolverError(err error) error {
	if errors.Is(err, mvee.ErrSingular) || errors.Is(err, mvee.ErrTooFewPoints) {
		return fmt.Errorf("%w (%v)", ErrSingularGeometry, err)
	}

	return err
}
