// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/fixpoint/fixedpoint"
)

// Figure geometry and sampling defaults.
const (
	DefaultWidth   = 8 * vg.Inch
	DefaultHeight  = 5 * vg.Inch
	DefaultXMin    = -1.0
	DefaultXMax    = 1.0
	DefaultSamples = 100
)

var (
	// ErrNilResult indicates a nil run result.
	ErrNilResult = errors.New("chart: nil result")

	// ErrEmptyResult indicates a run with no records.
	ErrEmptyResult = errors.New("chart: result has no records")

	// ErrBadRange indicates XMin >= XMax, non-finite bounds or fewer than two samples.
	ErrBadRange = errors.New("chart: invalid sampling range")

	// ErrNoPositiveErrors indicates every absolute error is zero, so nothing
	// can be placed on a log axis.
	ErrNoPositiveErrors = errors.New("chart: no positive errors for log scale")
)

var (
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

// DiagramOptions configures IterationDiagram.
//
//   - G, Label   — the map drawn as the curve and its legend entry.
//   - XMin, XMax — display range sampled for the curve and identity line.
//   - Samples    — number of evenly spaced samples (endpoints included).
type DiagramOptions struct {
	G       fixedpoint.Func
	Label   string
	XMin    float64
	XMax    float64
	Samples int
}

// DefaultDiagramOptions draws g(x) = cos(x) over [-1, 1] with 100 samples.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{
		G:       fixedpoint.Cos,
		Label:   "g(x) = cos(x)",
		XMin:    DefaultXMin,
		XMax:    DefaultXMax,
		Samples: DefaultSamples,
	}
}

// Curve samples opts.G at opts.Samples evenly spaced points of
// [XMin, XMax], endpoints included.
func Curve(opts DiagramOptions) (plotter.XYs, error) {
	if opts.G == nil {
		return nil, fmt.Errorf("Curve: %w", fixedpoint.ErrNilFunc)
	}
	if opts.Samples < 2 || !(opts.XMin < opts.XMax) ||
		math.IsInf(opts.XMin, 0) || math.IsInf(opts.XMax, 0) {
		return nil, fmt.Errorf("Curve: [%v, %v] with %d samples: %w",
			opts.XMin, opts.XMax, opts.Samples, ErrBadRange)
	}

	xs := floats.Span(make([]float64, opts.Samples), opts.XMin, opts.XMax)
	curve := make(plotter.XYs, len(xs))
	for i, x := range xs {
		curve[i] = plotter.XY{X: x, Y: opts.G(x)}
	}

	return curve, nil
}

// IterationDiagram plots g on the display range, the line y = x and the
// iteration path (x_n, g(x_n)).
func IterationDiagram(res *fixedpoint.Result, opts DiagramOptions) (*plot.Plot, error) {
	if err := checkResult(res); err != nil {
		return nil, fmt.Errorf("IterationDiagram: %w", err)
	}
	curve, err := Curve(opts)
	if err != nil {
		return nil, fmt.Errorf("IterationDiagram: %w", err)
	}
	identity := make(plotter.XYs, len(curve))
	for i, pt := range curve {
		identity[i] = plotter.XY{X: pt.X, Y: pt.X}
	}

	iterates := res.Iterates()
	path := make(plotter.XYs, len(iterates))
	for i, x := range iterates {
		path[i] = plotter.XY{X: x, Y: opts.G(x)}
	}

	p := plot.New()
	p.Title.Text = "Fixed-Point Method"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "g(x)"
	p.Add(plotter.NewGrid())

	gLine, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("IterationDiagram: curve: %w", err)
	}
	gLine.LineStyle.Color = blue
	gLine.LineStyle.Width = vg.Points(1.5)

	idLine, err := plotter.NewLine(identity)
	if err != nil {
		return nil, fmt.Errorf("IterationDiagram: identity: %w", err)
	}
	idLine.LineStyle.Color = red
	idLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	pathLine, pathPoints, err := plotter.NewLinePoints(path)
	if err != nil {
		return nil, fmt.Errorf("IterationDiagram: path: %w", err)
	}
	pathLine.LineStyle.Color = black
	pathLine.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	pathPoints.GlyphStyle.Color = black
	pathPoints.GlyphStyle.Shape = draw.CircleGlyph{}
	pathPoints.GlyphStyle.Radius = vg.Points(3)

	p.Add(gLine, idLine, pathLine, pathPoints)
	p.Legend.Add(opts.Label, gLine)
	p.Legend.Add("y = x", idLine)
	p.Legend.Add("Iterations", pathLine, pathPoints)
	p.Legend.Top = true

	return p, nil
}

// ErrorDecay plots absolute error against iteration index on a log y-axis.
// Zero errors (an exact float64 fixed point) have no log coordinate and
// are left out of the figure.
func ErrorDecay(res *fixedpoint.Result) (*plot.Plot, error) {
	if err := checkResult(res); err != nil {
		return nil, fmt.Errorf("ErrorDecay: %w", err)
	}

	pts := make(plotter.XYs, 0, len(res.Errors))
	for i, e := range res.Errors {
		if e > 0 {
			pts = append(pts, plotter.XY{X: float64(i + 1), Y: e})
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("ErrorDecay: %w", ErrNoPositiveErrors)
	}

	p := plot.New()
	p.Title.Text = "Absolute Error Evolution"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Absolute error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("ErrorDecay: %w", err)
	}
	line.LineStyle.Color = blue
	points.GlyphStyle.Color = blue
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, points)
	p.Legend.Add("Absolute error", line, points)
	p.Legend.Top = true

	return p, nil
}

// Write encodes p in the given format ("png", "svg", "pdf", ...) to w at
// the default 8×5 inch size.
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("Write: %s: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Write: %s: %w", format, err)
	}

	return nil
}

// Save writes p to path at the default size; the extension picks the format.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("Save: %s: %w", filepath.Base(path), err)
	}

	return nil
}

func checkResult(res *fixedpoint.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if res.Len() == 0 {
		return ErrEmptyResult
	}

	return nil
}
