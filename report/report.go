// SPDX-License-Identifier: MIT

// Package report prints a fixed-point run as a console convergence table
// followed by a one-line summary.
//
// Table layout:
//
//	Iteration | x_n      | Absolute error
//	-------------------------------------
//	        1 | 0.877583 | 3.775826e-01
//	        2 | 0.639012 | 2.385701e-01
//
// The summary is styled with lipgloss when the destination is a terminal
// and plain text otherwise.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/fixpoint/fixedpoint"
)

const (
	// Header is the first table line.
	Header = "Iteration | x_n      | Absolute error"

	// rowFormat: index right-aligned in 9 columns, 6 decimals, scientific error.
	rowFormat = "%9d | %.6f | %.6e\n"
)

// Separator is the second table line.
var Separator = strings.Repeat("-", 37)

// ErrNilResult indicates that nothing was passed to print.
var ErrNilResult = errors.New("report: nil result")

// Table writes the header, separator and one line per record to w.
func Table(w io.Writer, res *fixedpoint.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", Header, Separator); err != nil {
		return fmt.Errorf("Table: header: %w", err)
	}
	for _, r := range res.Records {
		if _, err := fmt.Fprintf(w, rowFormat, r.Index, r.X, r.AbsError); err != nil {
			return fmt.Errorf("Table: row %d: %w", r.Index, err)
		}
	}

	return nil
}

// Summary writes a single line describing the terminal state of a run
// that used tolerance tol and cap maxIter.
func Summary(w io.Writer, res *fixedpoint.Result, tol float64, maxIter int) error {
	if res == nil {
		return ErrNilResult
	}

	renderer := lipgloss.NewRenderer(w)
	last := res.Last()

	var (
		line  string
		style lipgloss.Style
	)
	switch res.State(tol, maxIter) {
	case fixedpoint.Converged:
		line = fmt.Sprintf("converged after %d iterations: x* ≈ %.6f (error %.6e < %g)",
			last.Index, last.X, last.AbsError, tol)
		style = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	default:
		line = fmt.Sprintf("no convergence after %d iterations: last x = %.6f (error %.6e >= %g)",
			res.Len(), last.X, last.AbsError, tol)
		style = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626"))
	}

	if _, err := fmt.Fprintln(w, style.Render(line)); err != nil {
		return fmt.Errorf("Summary: %w", err)
	}

	return nil
}
