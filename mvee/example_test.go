// SPDX-License-Identifier: MIT

package mvee_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polyhedra/mvee"
)

// ExampleSolve fits the six vertices of a regular octahedron. The uniform
// starting weights are already optimal, so one update converges.
func ExampleSolve() {
	points := mat.NewDense(6, 3, []float64{
		1, 0, 0, -1, 0, 0,
		0, 1, 0, 0, -1, 0,
		0, 0, 1, 0, 0, -1,
	})

	res, err := mvee.Solve(points, mvee.WithTolerance(1e-6))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v iterations=%d\n", res.Converged, res.Iterations)
	fmt.Printf("weights=%.4f\n", res.Weights)
	// Output:
	// converged=true iterations=1
	// weights=[0.1667 0.1667 0.1667 0.1667 0.1667 0.1667]
}
