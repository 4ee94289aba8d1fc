// SPDX-License-Identifier: MIT

package fixedpoint

import "math"

// Defaults mirror the classic textbook setup for g(x) = cos(x).
const (
	// DefaultTolerance is the absolute-error threshold that ends the iteration.
	DefaultTolerance = 1e-5

	// DefaultMaxIter caps the number of iterations (and records).
	DefaultMaxIter = 100
)

// Func is a real-valued scalar map g in x = g(x).
type Func func(x float64) float64

// Cos is the default map g(x) = cos(x).
func Cos(x float64) float64 { return math.Cos(x) }

// CosDerivative is g'(x) = −sin(x) for g = Cos.
func CosDerivative(x float64) float64 { return -math.Sin(x) }

// Options configures Iterate.
//
// Fields:
//   - Tolerance — stop once |x_new − x_old| < Tolerance. Must be finite and > 0.
//   - MaxIter   — hard cap on iterations; the history never exceeds it. Must be ≥ 1.
//   - G         — the map to iterate. Must be non-nil.
//
// Example:
//
//	opts := fixedpoint.DefaultOptions()
//	opts.Tolerance = 1e-10
//	res, err := fixedpoint.Iterate(0.5, opts)
type Options struct {
	Tolerance float64
	MaxIter   int
	G         Func
}

// DefaultOptions returns Options for g = cos with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		G:         Cos,
	}
}

// Record is one completed iteration: its 1-based index, the new iterate
// and |x_new − x_old|.
type Record struct {
	Index    int
	X        float64
	AbsError float64
}

// Result is the full history of one run.
//
// Errors holds Records[i].AbsError in the same order; it exists for
// plotting. A Result is never modified after Iterate returns it.
type Result struct {
	Records []Record
	Errors  []float64
}

// Len returns the number of completed iterations.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Records)
}

// Last returns the final record, or the zero Record for an empty result.
func (r *Result) Last() Record {
	if r.Len() == 0 {
		return Record{}
	}

	return r.Records[len(r.Records)-1]
}

// Iterates returns the iterate values x₁..x_n in order.
func (r *Result) Iterates() []float64 {
	xs := make([]float64, r.Len())
	for i := range xs {
		xs[i] = r.Records[i].X
	}

	return xs
}

// Converged reports whether the final absolute error is below tol.
func (r *Result) Converged(tol float64) bool {
	if r.Len() == 0 {
		return false
	}

	return r.Last().AbsError < tol
}

// State tells which terminal state a run with (tol, maxIter) reached.
func (r *Result) State(tol float64, maxIter int) State {
	switch {
	case r.Converged(tol):
		return Converged
	case r.Len() >= maxIter:
		return Exhausted
	default:
		return Iterating
	}
}

// State of the iteration.
//
//   - Iterating — not terminal; only reported for a result that neither
//     converged nor used the whole budget (never produced by Iterate).
//   - Converged — the last absolute error is below the tolerance.
//   - Exhausted — MaxIter iterations ran without meeting the tolerance.
type State int

const (
	Iterating State = iota
	Converged
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
