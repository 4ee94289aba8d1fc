// SPDX-License-Identifier: MIT

package fixedpoint

import (
	"errors"
	"fmt"
	"math"
)

// Fixed-point iteration
//
// Algorithm:
//  1. xOld = x0.
//  2. For i = 1..MaxIter:
//     xNew = G(xOld)
//     e    = |xNew − xOld|
//     append (i, xNew, e)
//     if e < Tolerance → stop (CONVERGED, record kept)
//     xOld = xNew
//  3. Loop exhausted → stop (EXHAUSTED, exactly MaxIter records, no error).
//
// Errors (returned before any iteration):
//   - ErrInvalidTolerance — Tolerance ≤ 0, NaN or +Inf.
//   - ErrInvalidMaxIter   — MaxIter ≤ 0.
//   - ErrNilFunc          — G is nil.
//   - ErrNonFiniteStart   — x0 is NaN or ±Inf.
var (
	// ErrInvalidTolerance indicates a tolerance that is not a finite positive number.
	ErrInvalidTolerance = errors.New("fixedpoint: tolerance must be finite and > 0")

	// ErrInvalidMaxIter indicates an iteration cap below one.
	ErrInvalidMaxIter = errors.New("fixedpoint: max iterations must be >= 1")

	// ErrNilFunc indicates Options.G was not set.
	ErrNilFunc = errors.New("fixedpoint: iteration function is nil")

	// ErrNonFiniteStart indicates a NaN or infinite starting value.
	ErrNonFiniteStart = errors.New("fixedpoint: starting value must be finite")
)

// Run iterates g(x) = cos(x) from x0 with the given tolerance and cap.
//
// Example:
//
//	res, err := Run(0.5, 1e-5, 100)
func Run(x0, tol float64, maxIter int) (*Result, error) {
	opts := DefaultOptions()
	opts.Tolerance = tol
	opts.MaxIter = maxIter

	return Iterate(x0, opts)
}

// Iterate runs fixed-point iteration of opts.G from x0.
// Non-convergence is not an error; inspect Result.State or Result.Converged.
func Iterate(x0 float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Iterate: %w", err)
	}
	if err := ValidateStart(x0); err != nil {
		return nil, fmt.Errorf("Iterate: %w", err)
	}

	res := &Result{
		Records: make([]Record, 0, initialCap(opts.MaxIter)),
		Errors:  make([]float64, 0, initialCap(opts.MaxIter)),
	}

	xOld := x0
	for i := 1; i <= opts.MaxIter; i++ {
		xNew := opts.G(xOld)
		e := AbsError(xNew, xOld)

		res.Records = append(res.Records, Record{Index: i, X: xNew, AbsError: e})
		res.Errors = append(res.Errors, e)

		if e < opts.Tolerance {
			break
		}
		xOld = xNew
	}

	return res, nil
}

// AbsError returns |xNew − xOld|.
func AbsError(xNew, xOld float64) float64 {
	return math.Abs(xNew - xOld)
}

// ContractionFactor returns |gPrime(x)|. Values below 1 near the fixed
// point mean the iteration contracts there.
func ContractionFactor(gPrime Func, x float64) float64 {
	return math.Abs(gPrime(x))
}

// Validate reports the first setting Iterate would reject:
// ErrInvalidTolerance, ErrInvalidMaxIter or ErrNilFunc.
func (o Options) Validate() error {
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 1) {
		return fmt.Errorf("tolerance=%v: %w", o.Tolerance, ErrInvalidTolerance)
	}
	if o.MaxIter <= 0 {
		return fmt.Errorf("maxIter=%d: %w", o.MaxIter, ErrInvalidMaxIter)
	}
	if o.G == nil {
		return ErrNilFunc
	}

	return nil
}

// ValidateStart returns ErrNonFiniteStart for a NaN or infinite x0.
func ValidateStart(x0 float64) error {
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return fmt.Errorf("x0=%v: %w", x0, ErrNonFiniteStart)
	}

	return nil
}

// initialCap bounds the up-front allocation; huge caps grow on demand.
func initialCap(maxIter int) int {
	const limit = 128
	if maxIter < limit {
		return maxIter
	}

	return limit
}
