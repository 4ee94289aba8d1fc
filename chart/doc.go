// SPDX-License-Identifier: MIT

// Package chart renders fixed-point runs with gonum/plot.
//
// Two figures are produced:
//
//   - IterationDiagram — g(x) sampled on a fixed display range together with
//     the identity line y = x and the iteration path (x_n, g(x_n)) drawn as
//     connected, marked points. Fixed points sit where g meets y = x.
//   - ErrorDecay — absolute error per iteration on a logarithmic y-axis.
//
// Both return *plot.Plot, so callers can Save them or stream them with Write.
//
//	p, err := chart.IterationDiagram(res, chart.DefaultDiagramOptions())
//	if err != nil { ... }
//	err = chart.Save(p, "fixed_point.png")
package chart
