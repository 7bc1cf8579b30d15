// SPDX-License-Identifier: MIT

package mvee

import "gonum.org/v1/gonum/mat"

// solveKhachiyan runs the plain fixed-point iteration on the lifted matrix q.
//
// Implementation:
//   - K.1: V = (Q·diag(u))·Qᵗ.
//   - K.2: Y = V⁻¹Q; mᵢ = Σ_k Q_ki·Y_ki.
//   - K.3: step() to the next weights; stop on tolerance or cap.
//
// All buffers are allocated once; each iteration is a pure function of (u, Q).
//
// Complexity: O(d³ + d²N) per iteration.
func solveKhachiyan(q *mat.Dense, o Options) (*Result, error) {
	rows, n := q.Dims()
	d := float64(rows - 1)

	var (
		u        = uniformWeights(n)
		next     = make([]float64, n)
		m        = make([]float64, n)
		qu       = mat.NewDense(rows, n, nil) // Q·diag(u)
		v        = mat.NewDense(rows, rows, nil)
		inv      = mat.NewDense(rows, rows, nil)
		y        = mat.NewDense(rows, n, nil) // V⁻¹Q
		iter     int
		residual float64
	)

	for !o.exhausted(iter) {
		scaleColumns(qu, q, u)
		v.Mul(qu, q.T())
		// Any Condition error means V is numerically singular.
		if err := inv.Inverse(v); err != nil {
			return nil, ErrSingular
		}
		y.Mul(inv, q)
		if err := leverage(m, q, y); err != nil {
			return nil, err
		}

		_, _, residual = step(next, u, m, d)
		u, next = next, u
		iter++

		if residual <= o.tolerance {
			return &Result{Weights: u, Residual: residual, Iterations: iter, Converged: true, Method: Khachiyan}, nil
		}
	}

	return &Result{Weights: u, Residual: residual, Iterations: iter, Converged: false, Method: Khachiyan}, nil
}
