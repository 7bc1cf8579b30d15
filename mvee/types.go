// SPDX-License-Identifier: MIT

package mvee

// Method selects the linear-algebra strategy of the fixed-point iteration.
type Method int

const (
	// Khachiyan recomputes V⁻¹ from scratch every iteration.
	Khachiyan Method = iota

	// CholeskyUpdate maintains a Cholesky factor of V through rank-one updates.
	CholeskyUpdate
)

func (m Method) String() string {
	switch m {
	case Khachiyan:
		return "khachiyan"
	case CholeskyUpdate:
		return "cholesky"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name (as produced by String) back to a Method.
func ParseMethod(name string) (Method, bool) {
	switch name {
	case "khachiyan", "":
		return Khachiyan, true
	case "cholesky":
		return CholeskyUpdate, true
	default:
		return Khachiyan, false
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Weights holds one non-negative weight per point; they sum to 1.
	Weights []float64

	// Residual is ‖u′−u‖₂ of the last applied update. It is ≤ the requested
	// tolerance when Converged is true.
	Residual float64

	// Iterations counts applied weight updates.
	Iterations int

	// Converged is false when the iteration cap stopped the solver first.
	Converged bool

	// Method echoes the strategy used.
	Method Method
}
