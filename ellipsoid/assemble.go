// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyhedra/geometry"
)

// frame is an assembled ellipsoid in the 3-D input frame: axes[k] is the unit
// direction of radii[k].
type frame struct {
	radii  [3]float64
	centre r3.Vector
	axes   [3]r3.Vector
}

// rotationMatrix returns the axes as the columns of a 3×3 matrix.
func (f frame) rotationMatrix() *mat.Dense {
	rot := mat.NewDense(3, 3, nil)
	for k, a := range f.axes {
		rot.Set(0, k, a.X)
		rot.Set(1, k, a.Y)
		rot.Set(2, k, a.Z)
	}

	return rot
}

// canonical flips each axis so that its largest-magnitude component is
// positive; the lowest coordinate index wins ties.
func (f frame) canonical() frame {
	for k, a := range f.axes {
		c := [3]float64{a.X, a.Y, a.Z}
		best := 0
		for i := 1; i < 3; i++ {
			if math.Abs(c[i]) > math.Abs(c[best]) {
				best = i
			}
		}
		if c[best] < 0 {
			f.axes[k] = a.Mul(-1)
		}
	}

	return f
}

// pointFrame: zero radii at the single point, identity axes.
func pointFrame(red *geometry.Reduction) frame {
	return frame{
		centre: red.Origin,
		axes:   [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}},
	}
}

// lineFrame: half the span of the projections along the direction, centred at
// the midpoint of the segment.
func lineFrame(red *geometry.Reduction) frame {
	proj := mat.Col(nil, 0, red.Coords)
	lo, hi := floats.Min(proj), floats.Max(proj)

	return frame{
		radii:  [3]float64{(hi - lo) / 2},
		centre: red.Lift([]float64{(lo + hi) / 2}),
		axes:   [3]r3.Vector{red.Direction, red.Orthogonal[0], red.Orthogonal[1]},
	}.canonical()
}

// assemble builds the frame of a Plane or Volume reduction from solver weights.
//
// Implementation:
//   - c = Σ uᵢxᵢ over the reduced coordinates X (N×d).
//   - A = [Xᵗ·diag(u)·X − c·cᵗ]⁻¹ / d.
//   - A = U·S·Vᵗ; radii = 1/√S, reversed so that they descend, with the
//     columns of V permuted alongside.
//   - Reduced axes are lifted through the plane basis and completed by the
//     normal; radii are padded with zeros.
//
// Errors: ErrSingularGeometry when the weighted scatter cannot be inverted or
// decomposed.
func assemble(red *geometry.Reduction, u []float64) (frame, error) {
	x := red.Coords
	n, d := x.Dims()

	centre := make([]float64, d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			centre[k] += u[i] * x.At(i, k)
		}
	}

	scatter := mat.NewDense(d, d, nil)
	var s float64
	for a := 0; a < d; a++ {
		for b := 0; b < d; b++ {
			s = 0
			for i := 0; i < n; i++ {
				s += u[i] * x.At(i, a) * x.At(i, b)
			}
			scatter.Set(a, b, s-centre[a]*centre[b])
		}
	}

	var shape mat.Dense
	if err := shape.Inverse(scatter); err != nil {
		return frame{}, ErrSingularGeometry
	}
	shape.Scale(1/float64(d), &shape)

	var svd mat.SVD
	if ok := svd.Factorize(&shape, mat.SVDFull); !ok {
		return frame{}, ErrSingularGeometry
	}
	values := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	var f frame
	local := make([]float64, d)
	for k := 0; k < d; k++ {
		src := d - 1 - k // S descends, radii must descend
		if values[src] <= 0 {
			return frame{}, ErrSingularGeometry
		}
		f.radii[k] = 1 / math.Sqrt(values[src])
		mat.Col(local, src, &v)
		f.axes[k] = red.LiftDirection(local).Normalize()
	}
	if red.Kind == geometry.Plane {
		f.axes[2] = red.Normal
	}
	f.centre = red.Lift(centre)
	if red.Kind == geometry.Volume {
		// Volume coordinates are absolute, Lift would add the origin twice.
		f.centre = r3.Vector{X: centre[0], Y: centre[1], Z: centre[2]}
	}

	return f.canonical(), nil
}
