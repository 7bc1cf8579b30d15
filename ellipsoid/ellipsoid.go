// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyhedra/geometry"
	"github.com/katalvlaran/polyhedra/mvee"
)

// Ellipsoid is a fitted (or yet to be fitted) minimum-volume enclosing
// ellipsoid. The zero value is unusable; construct with New or Fit.
//
// After a successful Fit the value is read-only: descriptors are pure reads.
// Calling Fit again recomputes every field from the current points.
type Ellipsoid struct {
	opts   Options
	points geometry.PointCloud

	fitted     bool
	kind       geometry.Kind
	radii      [3]float64
	centre     r3.Vector
	rotation   *mat.Dense // 3×3, columns are the principal axes
	tolerance  float64
	converged  bool
	iterations int
}

// New returns an unfitted Ellipsoid holding a copy of points.
func New(points geometry.PointCloud, opts ...Option) *Ellipsoid {
	o := gatherOptions(opts...)

	return &Ellipsoid{opts: o, points: points.Clone(), tolerance: o.tolerance}
}

// Fit is shorthand for New followed by (*Ellipsoid).Fit.
func Fit(points geometry.PointCloud, opts ...Option) (*Ellipsoid, error) {
	e := New(points, opts...)
	if err := e.Fit(); err != nil {
		return nil, err
	}

	return e, nil
}

// SetPoints replaces the retained cloud and discards any previous fit.
func (e *Ellipsoid) SetPoints(points geometry.PointCloud) {
	e.points = points.Clone()
	e.reset()
}

// Fit computes the ellipsoid of the retained points.
//
// Implementation:
//   - Stage 1: geometry.Reduce classifies the cloud (Point/Line/Plane/Volume).
//   - Stage 2: Point and Line are closed-form; Plane and Volume run the MVEE
//     solver in 2-D or 3-D.
//   - Stage 3: the assembler builds centre, radii and axes, re-embeds them
//     into 3-D and applies the axis sign convention.
//
// Errors:
//   - geometry.ErrInput family for empty or non-finite clouds.
//   - ErrSingularGeometry when the solver or assembler meets a singular matrix.
//
// A capped, unconverged solve is not an error: Converged reports false and
// Tolerance reports the residual reached. On error the Ellipsoid is left
// unfitted.
func (e *Ellipsoid) Fit() error {
	e.reset()

	red, err := geometry.Reduce(e.points, e.opts.reduceOptions()...)
	if err != nil {
		return ellipsoidErrorf(opFit, err)
	}

	var (
		f   frame
		res *mvee.Result
	)
	switch red.Kind {
	case geometry.Point:
		f = pointFrame(red)
	case geometry.Line:
		f = lineFrame(red)
	default:
		res, err = mvee.Solve(red.Coords, e.opts.solverOptions()...)
		if err != nil {
			return ellipsoidErrorf(opSolve, classifySolverError(err))
		}
		f, err = assemble(red, res.Weights)
		if err != nil {
			return ellipsoidErrorf(opAssemble, err)
		}
	}

	e.kind = red.Kind
	e.radii = f.radii
	e.centre = f.centre
	e.rotation = f.rotationMatrix()
	e.tolerance = e.opts.tolerance
	e.converged = true
	if res != nil {
		e.iterations = res.Iterations
		if !res.Converged {
			e.converged = false
			e.tolerance = res.Residual
		}
	}
	e.fitted = true

	return nil
}

// RequireConverged returns nil for a converged fit, ErrNotConverged when the
// iteration cap stopped the solver and ErrNotFitted before any fit.
func (e *Ellipsoid) RequireConverged() error {
	if !e.fitted {
		return ellipsoidErrorf(opRequire, ErrNotFitted)
	}
	if !e.converged {
		return ellipsoidErrorf(opRequire, fmt.Errorf("%w: residual %g after %d iterations",
			ErrNotConverged, e.tolerance, e.iterations))
	}

	return nil
}

func (e *Ellipsoid) reset() {
	e.fitted = false
	e.kind = geometry.Point
	e.radii = [3]float64{}
	e.centre = r3.Vector{}
	e.rotation = nil
	e.tolerance = e.opts.tolerance
	e.converged = false
	e.iterations = 0
}

// Fitted reports whether the last Fit succeeded.
func (e *Ellipsoid) Fitted() bool { return e.fitted }

// Radii returns the semi-axis lengths, r1 ≥ r2 ≥ r3 ≥ 0.
func (e *Ellipsoid) Radii() [3]float64 { return e.radii }

// Centre returns the ellipsoid centre in the input frame.
func (e *Ellipsoid) Centre() r3.Vector { return e.centre }

// Rotation returns a copy of the 3×3 orthonormal matrix whose k-th column is
// the axis of Radii()[k]. It is nil before a fit.
func (e *Ellipsoid) Rotation() *mat.Dense {
	if e.rotation == nil {
		return nil
	}

	return mat.DenseCopyOf(e.rotation)
}

// Axis returns the unit direction of the k-th principal axis (k in 0..2).
func (e *Ellipsoid) Axis(k int) r3.Vector {
	if e.rotation == nil {
		return r3.Vector{}
	}

	return r3.Vector{X: e.rotation.At(0, k), Y: e.rotation.At(1, k), Z: e.rotation.At(2, k)}
}

// Dims returns the effective dimensionality of the fitted shape (0..3).
func (e *Ellipsoid) Dims() int { return e.kind.Dims() }

// Kind returns the reduction class of the fitted cloud.
func (e *Ellipsoid) Kind() geometry.Kind { return e.kind }

// Tolerance returns the requested tolerance for converged fits and the
// residual actually reached when the iteration cap was hit.
func (e *Ellipsoid) Tolerance() float64 { return e.tolerance }

// Converged reports whether the solver met the requested tolerance.
// Closed-form fits (dims 0 and 1) always converge.
func (e *Ellipsoid) Converged() bool { return e.converged }

// Iterations returns the number of solver updates of the last fit.
func (e *Ellipsoid) Iterations() int { return e.iterations }

// Points returns a copy of the retained input cloud.
func (e *Ellipsoid) Points() geometry.PointCloud { return e.points.Clone() }

// NumPoints returns the size of the retained input cloud.
func (e *Ellipsoid) NumPoints() int { return len(e.points) }

// Options returns the resolved configuration.
func (e *Ellipsoid) Options() Options { return e.opts }
