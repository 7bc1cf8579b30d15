// SPDX-License-Identifier: MIT

// Package mvee computes minimum-volume enclosing ellipsoid (MVEE) weights for
// a full-rank point set in any dimension d.
//
// 🚀 What is the MVEE?
//
//	The smallest-volume ellipsoid {x : (x−c)ᵗA(x−c) ≤ 1} containing every
//	point. Khachiyan's algorithm finds it through per-point weights u
//	(u ≥ 0, Σu = 1): the centre is Σuᵢxᵢ and the shape follows from the
//	weighted scatter of the points. This package returns the weights; the
//	ellipsoid package assembles the geometry from them.
//
// ✨ Methods:
//   - Khachiyan         forms V = Q·diag(u)·Qᵗ and inverts it every iteration.
//   - CholeskyUpdate    keeps a Cholesky factor of V and refreshes it with a
//     scale + rank-one update per iteration, refactorising periodically.
//
// Both honour the same contract: stop when ‖u′−u‖₂ ≤ tolerance, or after
// MaxIterations updates (Converged=false, Residual holds what was achieved).
// Ties in the leverage argmax go to the lowest index.
//
// ⚙️ Usage:
//
//	res, err := mvee.Solve(points, mvee.WithTolerance(1e-8), mvee.WithMaxIterations(5000))
//	if errors.Is(err, mvee.ErrSingular) {
//	  // points do not span their dimension
//	}
//
// Points strictly inside the optimal ellipsoid lose weight only gradually, so
// for such clouds the iteration count grows roughly like 1/tolerance.
//
// Complexity: O(iterations · (d³ + d²N)) time, O(dN) memory.
package mvee
