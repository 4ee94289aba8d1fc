// SPDX-License-Identifier: MIT

package chart_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixpoint/chart"
	"github.com/katalvlaran/fixpoint/fixedpoint"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func mustRun(t *testing.T, x0, tol float64, maxIter int) *fixedpoint.Result {
	t.Helper()
	res, err := fixedpoint.Run(x0, tol, maxIter)
	require.NoError(t, err)

	return res
}

// TestCurve_DefaultGrid checks endpoints, even spacing and g values of
// the sampled curve.
func TestCurve_DefaultGrid(t *testing.T) {
	curve, err := chart.Curve(chart.DefaultDiagramOptions())
	require.NoError(t, err)
	require.Len(t, curve, 100)

	assert.Equal(t, -1.0, curve[0].X)
	assert.Equal(t, 1.0, curve[99].X)
	for i := 1; i < len(curve); i++ {
		assert.InDelta(t, 2.0/99, curve[i].X-curve[i-1].X, 1e-12, "step %d", i)
	}
	for _, pt := range curve {
		assert.Equal(t, math.Cos(pt.X), pt.Y)
	}
}

// TestCurve_MinimalGrid samples only the two endpoints.
func TestCurve_MinimalGrid(t *testing.T) {
	opts := chart.DefaultDiagramOptions()
	opts.G = func(x float64) float64 { return 2 * x }
	opts.XMin, opts.XMax, opts.Samples = 3, 5, 2

	curve, err := chart.Curve(opts)
	require.NoError(t, err)
	require.Len(t, curve, 2)
	assert.Equal(t, 3.0, curve[0].X)
	assert.Equal(t, 6.0, curve[0].Y)
	assert.Equal(t, 5.0, curve[1].X)
	assert.Equal(t, 10.0, curve[1].Y)
}

// TestCurve_Invalid rejects degenerate grids and a nil map.
func TestCurve_Invalid(t *testing.T) {
	for name, mod := range map[string]func(*chart.DiagramOptions){
		"one sample":   func(o *chart.DiagramOptions) { o.Samples = 1 },
		"zero samples": func(o *chart.DiagramOptions) { o.Samples = 0 },
		"reversed":     func(o *chart.DiagramOptions) { o.XMin, o.XMax = 1, -1 },
		"NaN bound":    func(o *chart.DiagramOptions) { o.XMin = math.NaN() },
		"Inf bound":    func(o *chart.DiagramOptions) { o.XMax = math.Inf(1) },
	} {
		opts := chart.DefaultDiagramOptions()
		mod(&opts)
		_, err := chart.Curve(opts)
		assert.ErrorIs(t, err, chart.ErrBadRange, name)
	}

	opts := chart.DefaultDiagramOptions()
	opts.G = nil
	_, err := chart.Curve(opts)
	assert.ErrorIs(t, err, fixedpoint.ErrNilFunc)
}

// TestIterationDiagram_PNG renders the diagram to an in-memory PNG.
func TestIterationDiagram_PNG(t *testing.T) {
	res := mustRun(t, 0.5, 1e-5, 100)

	p, err := chart.IterationDiagram(res, chart.DefaultDiagramOptions())
	require.NoError(t, err)
	assert.Equal(t, "Fixed-Point Method", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, chart.Write(&buf, p, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output must be a PNG")
}

// TestIterationDiagram_Invalid rejects bad inputs.
func TestIterationDiagram_Invalid(t *testing.T) {
	res := mustRun(t, 0.5, 1e-5, 5)

	_, err := chart.IterationDiagram(nil, chart.DefaultDiagramOptions())
	assert.ErrorIs(t, err, chart.ErrNilResult)

	_, err = chart.IterationDiagram(&fixedpoint.Result{}, chart.DefaultDiagramOptions())
	assert.ErrorIs(t, err, chart.ErrEmptyResult)

	opts := chart.DefaultDiagramOptions()
	opts.G = nil
	_, err = chart.IterationDiagram(res, opts)
	assert.ErrorIs(t, err, fixedpoint.ErrNilFunc)

	opts = chart.DefaultDiagramOptions()
	opts.XMin, opts.XMax = 1, -1
	_, err = chart.IterationDiagram(res, opts)
	assert.ErrorIs(t, err, chart.ErrBadRange)

	opts = chart.DefaultDiagramOptions()
	opts.Samples = 1
	_, err = chart.IterationDiagram(res, opts)
	assert.ErrorIs(t, err, chart.ErrBadRange)
}

// TestErrorDecay_LogScale renders the error curve.
func TestErrorDecay_LogScale(t *testing.T) {
	res := mustRun(t, 0.5, 1e-5, 100)

	p, err := chart.ErrorDecay(res)
	require.NoError(t, err)
	assert.Equal(t, "Absolute Error Evolution", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, chart.Write(&buf, p, "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

// TestErrorDecay_ZeroErrors skips zeros and fails when nothing is left.
func TestErrorDecay_ZeroErrors(t *testing.T) {
	mixed := &fixedpoint.Result{
		Records: []fixedpoint.Record{{Index: 1, X: 1, AbsError: 0.5}, {Index: 2, X: 1, AbsError: 0}},
		Errors:  []float64{0.5, 0},
	}
	_, err := chart.ErrorDecay(mixed)
	assert.NoError(t, err)

	zeros := &fixedpoint.Result{
		Records: []fixedpoint.Record{{Index: 1, X: 0, AbsError: 0}},
		Errors:  []float64{0},
	}
	_, err = chart.ErrorDecay(zeros)
	assert.ErrorIs(t, err, chart.ErrNoPositiveErrors)

	_, err = chart.ErrorDecay(nil)
	assert.ErrorIs(t, err, chart.ErrNilResult)
}

// TestSave writes both figures to disk.
func TestSave(t *testing.T) {
	res := mustRun(t, 0.5, 1e-5, 100)
	dir := t.TempDir()

	diagram, err := chart.IterationDiagram(res, chart.DefaultDiagramOptions())
	require.NoError(t, err)
	decay, err := chart.ErrorDecay(res)
	require.NoError(t, err)

	diagramPath := filepath.Join(dir, "fixed_point.png")
	decayPath := filepath.Join(dir, "abs_error.png")
	require.NoError(t, chart.Save(diagram, diagramPath))
	require.NoError(t, chart.Save(decay, decayPath))

	for _, path := range []string{diagramPath, decayPath} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic), path)
	}
}

// TestWrite_UnknownFormat surfaces encoder errors.
func TestWrite_UnknownFormat(t *testing.T) {
	res := mustRun(t, 0.5, 1e-5, 10)
	p, err := chart.ErrorDecay(res)
	require.NoError(t, err)

	assert.Error(t, chart.Write(&bytes.Buffer{}, p, "bogus"))
	assert.Error(t, chart.Save(p, filepath.Join(t.TempDir(), "out.bogus")))
}
