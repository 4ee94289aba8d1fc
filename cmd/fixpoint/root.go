// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fixpoint/chart"
	"github.com/katalvlaran/fixpoint/config"
	"github.com/katalvlaran/fixpoint/fixedpoint"
	"github.com/katalvlaran/fixpoint/report"
)

// Figure file names inside the output directory.
const (
	diagramFile = "fixed_point.png"
	decayFile   = "abs_error.png"
)

type loggerFactory func(verbose bool) (*zap.Logger, error)

type rootFlags struct {
	envFile string
	verbose bool
	cfg     config.Config
}

func newRootCmd(out io.Writer, newLog loggerFactory) *cobra.Command {
	flags := rootFlags{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "fixpoint",
		Short: "Fixed-point iteration of x = cos(x) with convergence table and plots.",
		Long: `fixpoint iterates x_{n+1} = cos(x_n) from a starting value until two ` +
			`consecutive iterates differ by less than the tolerance or the iteration ` +
			`cap is reached. It prints one table row per iteration and renders the ` +
			`fixed-point diagram and the absolute-error decay as PNG files.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := newLog(flags.verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = base.Sync() }()

			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			log := base.Sugar().With("run_id", xid.New().String())

			return run(out, log, cfg)
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&flags.cfg.X0, "x0", flags.cfg.X0, "starting value")
	fs.Float64Var(&flags.cfg.Tolerance, "tol", flags.cfg.Tolerance, "stop once |x_{n+1} - x_n| < tol")
	fs.IntVar(&flags.cfg.MaxIter, "max-iter", flags.cfg.MaxIter, "maximum number of iterations")
	fs.StringVar(&flags.cfg.OutDir, "out", flags.cfg.OutDir, "directory for the PNG figures")
	fs.BoolVar(&flags.cfg.NoPlots, "no-plots", flags.cfg.NoPlots, "skip rendering figures")
	fs.StringVar(&flags.envFile, "env-file", ".env", "optional dotenv file with FIXPOINT_* settings")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "human-readable debug logging")

	return cmd
}

// resolveConfig layers explicitly set flags over the env-file/environment config.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return cfg, err
	}

	fs := cmd.Flags()
	if fs.Changed("x0") {
		cfg.X0 = flags.cfg.X0
	}
	if fs.Changed("tol") {
		cfg.Tolerance = flags.cfg.Tolerance
	}
	if fs.Changed("max-iter") {
		cfg.MaxIter = flags.cfg.MaxIter
	}
	if fs.Changed("out") {
		cfg.OutDir = flags.cfg.OutDir
	}
	if fs.Changed("no-plots") {
		cfg.NoPlots = flags.cfg.NoPlots
	}

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func run(out io.Writer, log *zap.SugaredLogger, cfg config.Config) error {
	log.Debugw("starting iteration", "x0", cfg.X0, "tol", cfg.Tolerance, "max_iter", cfg.MaxIter)

	res, err := fixedpoint.Iterate(cfg.X0, cfg.Options())
	if err != nil {
		return err
	}

	if err = report.Table(out, res); err != nil {
		return err
	}
	if err = report.Summary(out, res, cfg.Tolerance, cfg.MaxIter); err != nil {
		return err
	}

	last := res.Last()
	k := fixedpoint.ContractionFactor(fixedpoint.CosDerivative, last.X)
	switch res.State(cfg.Tolerance, cfg.MaxIter) {
	case fixedpoint.Converged:
		log.Infow("converged", "iterations", res.Len(), "x", last.X, "abs_error", last.AbsError, "contraction", k)
	default:
		log.Warnw("iteration cap reached without convergence",
			"iterations", res.Len(), "x", last.X, "abs_error", last.AbsError, "contraction", k)
	}

	if cfg.NoPlots {
		return nil
	}

	return writeFigures(log, res, cfg.OutDir)
}

func writeFigures(log *zap.SugaredLogger, res *fixedpoint.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("figures: %w", err)
	}

	diagram, err := chart.IterationDiagram(res, chart.DefaultDiagramOptions())
	if err != nil {
		return err
	}
	path := filepath.Join(dir, diagramFile)
	if err = chart.Save(diagram, path); err != nil {
		return err
	}
	log.Infow("figure written", "path", path)

	decay, err := chart.ErrorDecay(res)
	if errors.Is(err, chart.ErrNoPositiveErrors) {
		log.Warnw("skipping error figure: every absolute error is zero")

		return nil
	}
	if err != nil {
		return err
	}
	path = filepath.Join(dir, decayFile)
	if err = chart.Save(decay, path); err != nil {
		return err
	}
	log.Infow("figure written", "path", path)

	return nil
}
