// Package fixpoint is a small numerical toolkit for solving x = g(x) by
// fixed-point iteration, with a console report and gonum-based figures.
//
// 🚀 What is fixpoint?
//
//	A pure-Go, dependency-light companion for the classic textbook exercise
//	x_{n+1} = cos(x_n), which converges to the Dottie number x* ≈ 0.739085:
//		• Core: fixed-point iterator with exact tolerance / cap semantics
//		• Report: convergence table (index | x_n | |x_n − x_{n−1}|)
//		• Charts: iteration diagram and log-scale error decay (PNG/SVG/PDF)
//		• CLI: cobra command with dotenv/environment configuration
//
// ✨ Why choose fixpoint?
//
//   - Deterministic – no global state, bit-identical re-runs
//   - Honest stopping rule – the silent iteration cap is kept, and the
//     terminal state is derived, never guessed
//   - Reusable – g is an injectable function; cosine is only the default
//
// Packages:
//
//	fixedpoint/   — Iterate, Run, Result, Record, State
//	report/       — Table and Summary writers
//	chart/        — IterationDiagram, ErrorDecay, Save, Write
//	config/       — defaults, .env and FIXPOINT_* environment
//	cmd/fixpoint/ — command-line entry point
//	examples/     — runnable walkthrough
//
//	go install github.com/katalvlaran/fixpoint/cmd/fixpoint@latest
package fixpoint
