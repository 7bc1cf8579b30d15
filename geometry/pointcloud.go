// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// FromSlices builds a PointCloud from raw coordinate rows.
// Every row must hold exactly three finite values.
func FromSlices(rows [][]float64) (PointCloud, error) {
	if len(rows) == 0 {
		return nil, geometryErrorf(opFromSlice, ErrEmptyPointCloud)
	}
	pc := make(PointCloud, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, geometryErrorf(opFromSlice, ErrBadShape)
		}
		pc[i] = r3.Vector{X: row[0], Y: row[1], Z: row[2]}
	}
	if err := Validate(pc); err != nil {
		return nil, geometryErrorf(opFromSlice, err)
	}

	return pc, nil
}

// Validate reports ErrEmptyPointCloud or ErrNaNInf.
func Validate(pc PointCloud) error {
	if len(pc) == 0 {
		return ErrEmptyPointCloud
	}
	for _, p := range pc {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return ErrNaNInf
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Clone returns an independent copy of pc.
func (pc PointCloud) Clone() PointCloud {
	if pc == nil {
		return nil
	}
	out := make(PointCloud, len(pc))
	copy(out, pc)

	return out
}

// Relative returns pc translated so that origin maps to zero.
func (pc PointCloud) Relative(origin r3.Vector) PointCloud {
	out := make(PointCloud, len(pc))
	for i, p := range pc {
		out[i] = p.Sub(origin)
	}

	return out
}

// Dense returns pc as an N×3 matrix, one point per row.
func (pc PointCloud) Dense() *mat.Dense {
	data := make([]float64, 0, 3*len(pc))
	for _, p := range pc {
		data = append(data, p.X, p.Y, p.Z)
	}

	return mat.NewDense(len(pc), 3, data)
}

// Deduplicate drops every point lying within dist of an earlier kept point.
// The first occurrence wins and the relative order of kept points is
// preserved; with dist == 0 only exact duplicates are dropped.
//
// Complexity: O(N²) distance checks; coordination clouds are small.
func Deduplicate(pc PointCloud, dist float64) PointCloud {
	out := make(PointCloud, 0, len(pc))
	for _, p := range pc {
		dup := false
		for _, q := range out {
			if p.Distance(q) <= dist {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}

	return out
}
