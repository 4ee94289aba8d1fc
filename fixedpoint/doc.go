// SPDX-License-Identifier: MIT

// Package fixedpoint locates fixed points of one-dimensional maps by
// plain fixed-point iteration.
//
// 🚀 What is fixed-point iteration?
//
//	An equation f(x) = 0 is rewritten as x = g(x). Starting from x₀ the
//	scheme x_{n+1} = g(x_n) is repeated until two consecutive iterates are
//	closer than a tolerance. With g(x) = cos(x) the sequence converges to
//	the Dottie number x* ≈ 0.739085 from any real starting value.
//
// ✨ Key features:
//   - exact stopping rule: stop as soon as |x_{n+1} − x_n| < tol
//   - silent iteration cap: at most MaxIter records, no error on exhaustion
//   - full history: every iterate with its absolute error, plus the error
//     sequence alone for plotting
//   - injectable g (Func); cosine is the default
//   - pure and deterministic: identical inputs give bit-identical results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fixpoint/fixedpoint"
//
//	res, err := fixedpoint.Run(0.5, 1e-5, 100)
//	if err != nil {
//	  // ErrInvalidTolerance, ErrInvalidMaxIter, ErrNonFiniteStart
//	}
//	last := res.Last()
//	fmt.Printf("x* ≈ %.6f after %d iterations\n", last.X, last.Index)
//
//	// any other map
//	opts := fixedpoint.DefaultOptions()
//	opts.G = func(x float64) float64 { return math.Sqrt(x + 2) }
//	res, err = fixedpoint.Iterate(1, opts)
//
// Convergence:
//
//	The scheme converges near x* when |g'(x*)| < 1. This is not checked
//	up front; ContractionFactor reports |g'(x)| for diagnostics. When the
//	condition fails the loop simply runs to MaxIter.
//
// Complexity:
//
//   - Time:   O(MaxIter) evaluations of g
//   - Memory: O(MaxIter) for the history
package fixedpoint
