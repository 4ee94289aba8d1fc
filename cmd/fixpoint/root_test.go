// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/fixpoint/fixedpoint"
)

// execute runs the root command with args, capturing stdout and log entries.
func execute(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	factory := func(bool) (*zap.Logger, error) { return zap.New(core), nil }

	var out bytes.Buffer
	cmd := newRootCmd(&out, factory)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()

	return out.String(), logs, err
}

// TestRoot_DefaultRun prints the table, writes both figures and logs convergence.
func TestRoot_DefaultRun(t *testing.T) {
	dir := t.TempDir()
	out, logs, err := execute(t, "--out", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2+28+1, "header, separator, 28 rows, summary")
	assert.Equal(t, "Iteration | x_n      | Absolute error", lines[0])
	assert.Equal(t, "        1 | 0.877583 | 3.775826e-01", lines[2])
	assert.Contains(t, lines[len(lines)-1], "converged after 28 iterations")

	for _, name := range []string{diagramFile, decayFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	converged := logs.FilterMessage("converged").All()
	require.Len(t, converged, 1)
	assert.NotEmpty(t, converged[0].ContextMap()["run_id"])
	assert.Len(t, logs.FilterMessage("figure written").All(), 2)
}

// TestRoot_Cap shows exhaustion as a warning, not a failure.
func TestRoot_Cap(t *testing.T) {
	out, logs, err := execute(t, "--max-iter", "3", "--no-plots")
	require.NoError(t, err)
	assert.Contains(t, out, "no convergence after 3 iterations")
	assert.Len(t, logs.FilterMessage("iteration cap reached without convergence").All(), 1)
	assert.Empty(t, logs.FilterMessage("figure written").All())
}

// TestRoot_InvalidFlags fails fast on bad configuration.
func TestRoot_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "--tol", "0", "--no-plots")
	assert.ErrorIs(t, err, fixedpoint.ErrInvalidTolerance)

	_, _, err = execute(t, "--max-iter=-1", "--no-plots")
	assert.ErrorIs(t, err, fixedpoint.ErrInvalidMaxIter)

	_, _, err = execute(t, "extra-arg")
	assert.Error(t, err)
}

// TestRoot_EnvFile reads settings from a dotenv file, with flags on top.
func TestRoot_EnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "run.env")
	require.NoError(t, os.WriteFile(envPath, []byte("FIXPOINT_MAX_ITER=5\nFIXPOINT_NO_PLOTS=true\n"), 0o600))

	var out bytes.Buffer
	core, _ := observer.New(zap.InfoLevel)
	cmd := newRootCmd(&out, func(bool) (*zap.Logger, error) { return zap.New(core), nil })
	cmd.SetArgs([]string{"--env-file", envPath, "--x0", "0.739085"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "converged after 1 iterations")
}
