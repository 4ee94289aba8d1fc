// SPDX-License-Identifier: MIT

// Command fixpoint runs fixed-point iteration of x = cos(x), prints the
// convergence table and writes the iteration diagram and error-decay
// figures as PNG files.
//
//	fixpoint                          # x0=0.5, tol=1e-5, max-iter=100
//	fixpoint --x0 2 --tol 1e-10       # tighter tolerance
//	fixpoint --max-iter 3 --no-plots  # show the iteration cap
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(os.Stdout, newLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a JSON production logger, or a console logger at
// debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
