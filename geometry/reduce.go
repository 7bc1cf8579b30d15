// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Rank returns the numerical rank of pc relative to its first point, counting
// singular values above rcond·s_max. rcond == 0 selects the strict
// max(N,3)·ε cut-off; pass DefaultRankTolerance to tolerate rounding noise.
// A single point has rank 0.
func Rank(pc PointCloud, rcond float64) (int, error) {
	if err := Validate(pc); err != nil {
		return 0, geometryErrorf(opRank, err)
	}
	if len(pc) == 1 {
		return 0, nil
	}
	svd, err := factorizeRelative(pc)
	if err != nil {
		return 0, geometryErrorf(opRank, err)
	}

	return svd.Rank(effectiveRcond(rcond, len(pc))), nil
}

// Reduce classifies pc and prepares the minimal-dimension sub-problem.
//
// Implementation:
//   - Stage 1: Validate, then merge coincident points.
//   - Stage 2: SVD of the N×3 matrix of positions relative to the first point;
//     the right singular vectors give the line direction (largest singular
//     value) or the plane basis and normal (smallest singular value).
//   - Stage 3: Project onto the retained directions.
//
// Errors:
//   - ErrEmptyPointCloud, ErrNaNInf (ErrInput family).
//   - ErrDecomposition if the SVD fails to converge.
//
// Determinism:
//   - Identical inputs give identical reductions; the signs of the returned
//     directions are whatever the SVD yields and are normalised downstream.
func Reduce(pc PointCloud, opts ...Option) (*Reduction, error) {
	o := gatherOptions(opts...)
	if err := Validate(pc); err != nil {
		return nil, geometryErrorf(opReduce, err)
	}

	pts := Deduplicate(pc, o.mergeDistance)
	origin := pts[0]
	n := len(pts)
	if n == 1 {
		return &Reduction{Kind: Point, Points: pts, Origin: origin}, nil
	}

	svd, err := factorizeRelative(pts)
	if err != nil {
		return nil, geometryErrorf(opReduce, err)
	}
	rank := svd.Rank(effectiveRcond(o.rankTolerance, n))

	var v mat.Dense
	svd.VTo(&v) // 3×3, columns ordered by descending singular value
	axis := func(k int) r3.Vector {
		return r3.Vector{X: v.At(0, k), Y: v.At(1, k), Z: v.At(2, k)}
	}

	switch {
	case rank == 0:
		// Distinct but numerically indistinguishable positions.
		return &Reduction{Kind: Point, Points: pts, Origin: origin}, nil

	case rank == 1:
		dir := axis(0)
		coords := mat.NewDense(n, 1, nil)
		for i, p := range pts {
			coords.Set(i, 0, p.Sub(origin).Dot(dir))
		}

		return &Reduction{
			Kind:       Line,
			Points:     pts,
			Origin:     origin,
			Direction:  dir,
			Orthogonal: [2]r3.Vector{axis(1), axis(2)},
			Coords:     coords,
		}, nil

	case rank == 2:
		e1, e2 := axis(0), axis(1)
		coords := mat.NewDense(n, 2, nil)
		var rel r3.Vector
		for i, p := range pts {
			rel = p.Sub(origin)
			coords.Set(i, 0, rel.Dot(e1))
			coords.Set(i, 1, rel.Dot(e2))
		}

		return &Reduction{
			Kind:   Plane,
			Points: pts,
			Origin: origin,
			Basis:  [2]r3.Vector{e1, e2},
			Normal: axis(2),
			Coords: coords,
		}, nil

	default:
		return &Reduction{
			Kind:   Volume,
			Points: pts,
			Origin: origin,
			Coords: pts.Dense(),
		}, nil
	}
}

// factorizeRelative computes the full SVD of the positions relative to the
// first point. SVDFull keeps V square even when N < 3.
func factorizeRelative(pc PointCloud) (*mat.SVD, error) {
	rel := pc.Relative(pc[0]).Dense()
	var svd mat.SVD
	if ok := svd.Factorize(rel, mat.SVDFull); !ok {
		return nil, ErrDecomposition
	}

	return &svd, nil
}
