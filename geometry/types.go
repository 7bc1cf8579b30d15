// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// PointCloud is an ordered set of Cartesian positions. The first point is the
// reference for every rank and degeneracy test. Functions in this package
// never mutate a PointCloud they receive.
type PointCloud []r3.Vector

// Kind tags the effective dimensionality of a reduced cloud.
type Kind int

const (
	// Point: a single distinct position.
	Point Kind = iota
	// Line: all positions on one line.
	Line
	// Plane: all positions in one plane.
	Plane
	// Volume: positions span all three directions.
	Volume
)

// Dims returns the embedding dimension of k (0 for Point … 3 for Volume).
func (k Kind) Dims() int { return int(k) }

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Line:
		return "line"
	case Plane:
		return "plane"
	case Volume:
		return "volume"
	default:
		return "unknown"
	}
}

// Reduction is the tagged result of Reduce. Only the fields documented for
// its Kind are meaningful.
type Reduction struct {
	// Kind selects the fit path.
	Kind Kind

	// Points is the cloud after merging coincident points.
	Points PointCloud

	// Origin is the first point; sub-dimensional coordinates are relative to it.
	Origin r3.Vector

	// Direction is the unit line direction (Line).
	Direction r3.Vector

	// Orthogonal completes Direction to an orthonormal frame (Line).
	Orthogonal [2]r3.Vector

	// Basis is an orthonormal in-plane basis (Plane).
	Basis [2]r3.Vector

	// Normal is the unit plane normal (Plane).
	Normal r3.Vector

	// Coords holds one row per point: N×1 for Line, N×2 for Plane (both
	// relative to Origin) and the absolute N×3 positions for Volume.
	// It is nil for Point.
	Coords *mat.Dense
}

// Lift maps local coordinates of the reduced frame back to a 3-D position.
// local must hold Kind.Dims() components.
func (r *Reduction) Lift(local []float64) r3.Vector {
	return r.Origin.Add(r.LiftDirection(local))
}

// LiftDirection maps a local direction (no origin offset) back to 3-D.
// For Volume the local vector is already expressed in the 3-D frame.
func (r *Reduction) LiftDirection(local []float64) r3.Vector {
	switch r.Kind {
	case Line:
		return r.Direction.Mul(local[0])
	case Plane:
		return r.Basis[0].Mul(local[0]).Add(r.Basis[1].Mul(local[1]))
	case Volume:
		return r3.Vector{X: local[0], Y: local[1], Z: local[2]}
	default:
		return r3.Vector{}
	}
}

// Complement returns the unit directions of the 3-D frame that the reduced
// frame discards, in a fixed order: two vectors for Line, the normal for
// Plane, none for Volume and the coordinate axes for Point.
func (r *Reduction) Complement() []r3.Vector {
	switch r.Kind {
	case Point:
		return []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	case Line:
		return []r3.Vector{r.Orthogonal[0], r.Orthogonal[1]}
	case Plane:
		return []r3.Vector{r.Normal}
	default:
		return nil
	}
}
