// SPDX-License-Identifier: MIT

package mvee

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve computes MVEE weights for the rows of points (N×d, one point per row).
//
// Implementation:
//   - Stage 1: Validate shape (N ≥ d+1 ≥ 2) and finiteness.
//   - Stage 2: Lift every point to homogeneous form, Q = [Xᵗ; 1ᵗ] ((d+1)×N).
//   - Stage 3: Run the configured method from uniform weights uᵢ = 1/N.
//
// Inputs:
//   - points: full-rank point set in its own embedding dimension d.
//   - opts: WithTolerance, WithMaxIterations, WithMethod.
//
// Returns:
//   - *Result with the final weights, the last residual and iteration count.
//     Hitting the cap is not an error: Converged=false and Residual reports
//     the precision actually achieved.
//
// Errors:
//   - ErrBadShape, ErrNaNInf, ErrTooFewPoints (input).
//   - ErrSingular when V cannot be inverted/factorised during the iteration.
//
// Determinism:
//   - Fixed loop orders and lowest-index argmax; identical inputs give
//     bit-identical weights for a given method.
func Solve(points mat.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validatePoints(points); err != nil {
		return nil, mveeErrorf(opSolve, err)
	}

	q := lift(points)
	switch o.method {
	case CholeskyUpdate:
		res, err := solveCholesky(q, o)
		if err != nil {
			return nil, mveeErrorf(opCholesky, err)
		}

		return res, nil
	default:
		res, err := solveKhachiyan(q, o)
		if err != nil {
			return nil, mveeErrorf(opKhachiyan, err)
		}

		return res, nil
	}
}

func validatePoints(points mat.Matrix) error {
	if points == nil {
		return ErrBadShape
	}
	n, d := points.Dims()
	if n == 0 || d == 0 {
		return ErrBadShape
	}
	if n < d+1 {
		return ErrTooFewPoints
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v = points.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// lift returns Q = [Xᵗ; 1ᵗ], the homogeneous (d+1)×N working matrix.
func lift(points mat.Matrix) *mat.Dense {
	n, d := points.Dims()
	q := mat.NewDense(d+1, n, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			q.Set(k, i, points.At(i, k))
		}
		q.Set(d, i, 1)
	}

	return q
}

// uniformWeights returns uᵢ = 1/n.
func uniformWeights(n int) []float64 {
	u := make([]float64, n)
	for i := range u {
		u[i] = 1 / float64(n)
	}

	return u
}

// scaleColumns writes dst = src·diag(w).
func scaleColumns(dst, src *mat.Dense, w []float64) {
	r, c := src.Dims()
	for k := 0; k < r; k++ {
		for i := 0; i < c; i++ {
			dst.Set(k, i, src.At(k, i)*w[i])
		}
	}
}

// leverage writes mᵢ = qᵢᵗ·yᵢ where yᵢ is column i of y = V⁻¹Q, i.e. the
// diagonal of QᵗV⁻¹Q without forming the N×N product.
func leverage(m []float64, q, y *mat.Dense) error {
	r, c := q.Dims()
	var sum float64
	for i := 0; i < c; i++ {
		sum = 0
		for k := 0; k < r; k++ {
			sum += q.At(k, i) * y.At(k, i)
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return ErrNonFiniteLeverage
		}
		m[i] = sum
	}

	return nil
}

// step applies one Khachiyan update from u into next given leverages m and
// returns the chosen index, the step size and ‖next−u‖₂.
//
//	j = argmax mᵢ (lowest index on ties), s = (m_j−d−1)/((d+1)(m_j−1)),
//	next = (1−s)·u, next_j += s.
func step(next, u, m []float64, d float64) (j int, s, residual float64) {
	j = floats.MaxIdx(m)
	mj := m[j]
	s = (mj - d - 1) / ((d + 1) * (mj - 1))
	copy(next, u)
	floats.Scale(1-s, next)
	next[j] += s
	residual = floats.Distance(next, u, 2)

	return j, s, residual
}
