// SPDX-License-Identifier: MIT

package mvee

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// solveCholesky runs the same iteration as solveKhachiyan but never inverts V.
//
// Implementation:
//   - C.1: Factorise V₀ = (Q·diag(√u))(Q·diag(√u))ᵗ = LLᵗ once.
//   - C.2: Y = V⁻¹Q through two triangular solves; leverages as in Khachiyan.
//   - C.3: After a step of size s, V′ = (1−s)·V + s·q_j·q_jᵗ, so the factor is
//     scaled by (1−s) and receives a rank-one update with q_j.
//   - C.4: Every refactorInterval updates (or if an update fails) the factor is
//     rebuilt from the current weights to bound accumulated rounding.
//
// Complexity: O(d²N) per iteration plus an O(d³) refactorisation every
// refactorInterval iterations.
func solveCholesky(q *mat.Dense, o Options) (*Result, error) {
	rows, n := q.Dims()
	d := float64(rows - 1)

	var (
		u        = uniformWeights(n)
		next     = make([]float64, n)
		m        = make([]float64, n)
		y        = mat.NewDense(rows, n, nil)
		qj       = mat.NewVecDense(rows, nil)
		chol     mat.Cholesky
		iter     int
		since    int
		residual float64
	)

	if !factorize(&chol, q, u) {
		return nil, ErrSingular
	}

	for !o.exhausted(iter) {
		if err := chol.SolveTo(y, q); err != nil {
			return nil, ErrSingular
		}
		if err := leverage(m, q, y); err != nil {
			return nil, err
		}

		j, s, res := step(next, u, m, d)
		residual = res
		u, next = next, u
		iter++

		if residual <= o.tolerance {
			return &Result{Weights: u, Residual: residual, Iterations: iter, Converged: true, Method: CholeskyUpdate}, nil
		}

		since++
		if since >= refactorInterval {
			if !factorize(&chol, q, u) {
				return nil, ErrSingular
			}
			since = 0
			continue
		}

		// s ∈ [0, 1/(d+1)), so both the scale and the update keep V positive definite.
		chol.Scale(1-s, &chol)
		mat.Col(qj.RawVector().Data, j, q)
		if ok := chol.SymRankOne(&chol, s, qj); !ok {
			if !factorize(&chol, q, u) {
				return nil, ErrSingular
			}
			since = 0
		}
	}

	return &Result{Weights: u, Residual: residual, Iterations: iter, Converged: false, Method: CholeskyUpdate}, nil
}

// factorize rebuilds chol from V = Q·diag(u)·Qᵗ.
func factorize(chol *mat.Cholesky, q *mat.Dense, u []float64) bool {
	rows, n := q.Dims()
	sqrtU := make([]float64, n)
	for i, w := range u {
		if w > 0 {
			sqrtU[i] = math.Sqrt(w)
		}
	}
	qs := mat.NewDense(rows, n, nil)
	scaleColumns(qs, q, sqrtU)

	v := mat.NewSymDense(rows, nil)
	v.SymOuterK(1, qs)

	return chol.Factorize(v)
}
