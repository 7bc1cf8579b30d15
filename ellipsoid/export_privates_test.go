// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyhedra/geometry"
)

// Test bridge: compiled only with the package tests.

// ExportedNewFitted builds a fitted Ellipsoid with the given radii, identity
// axes and a zero centre, bypassing the solver.
func ExportedNewFitted(radii [3]float64, kind geometry.Kind, tol float64) *Ellipsoid {
	return &Ellipsoid{
		opts:      gatherOptions(WithTolerance(tol)),
		fitted:    true,
		kind:      kind,
		radii:     radii,
		centre:    r3.Vector{},
		rotation:  mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}),
		tolerance: tol,
		converged: true,
	}
}
