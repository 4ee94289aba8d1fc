// SPDX-License-Identifier: MIT

// Package config resolves the run parameters of the fixpoint command.
//
// Precedence, lowest first:
//
//	defaults → .env file → process environment → command-line flags
//
// Environment keys:
//
//	FIXPOINT_X0        starting value
//	FIXPOINT_TOL       absolute-error tolerance
//	FIXPOINT_MAX_ITER  iteration cap
//	FIXPOINT_OUT       directory for the PNG figures
//	FIXPOINT_NO_PLOTS  "true" to skip rendering
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/fixpoint/fixedpoint"
)

// Environment keys.
const (
	EnvX0      = "FIXPOINT_X0"
	EnvTol     = "FIXPOINT_TOL"
	EnvMaxIter = "FIXPOINT_MAX_ITER"
	EnvOut     = "FIXPOINT_OUT"
	EnvNoPlots = "FIXPOINT_NO_PLOTS"
)

// Defaults.
const (
	DefaultX0     = 0.5
	DefaultOutDir = "."
)

// ErrInvalidValue indicates an environment value that does not parse.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the parameters for one run.
type Config struct {
	X0        float64
	Tolerance float64
	MaxIter   int
	OutDir    string
	NoPlots   bool
}

// Default returns x0 = 0.5, tol = 1e-5, 100 iterations, plots in ".".
func Default() Config {
	return Config{
		X0:        DefaultX0,
		Tolerance: fixedpoint.DefaultTolerance,
		MaxIter:   fixedpoint.DefaultMaxIter,
		OutDir:    DefaultOutDir,
	}
}

// Load starts from Default, applies envFile (if non-empty and present)
// and then the process environment. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			if err = cfg.apply(fileVars); err != nil {
				return cfg, fmt.Errorf("Load: %s: %w", envFile, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("Load: %s: %w", envFile, err)
		}
	}

	if err := cfg.apply(processEnv()); err != nil {
		return cfg, fmt.Errorf("Load: environment: %w", err)
	}

	return cfg, nil
}

// Validate checks the values the iterator would reject, so the command
// can fail before doing any work.
func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if err := fixedpoint.ValidateStart(c.X0); err != nil {
		return err
	}
	if !c.NoPlots && c.OutDir == "" {
		return fmt.Errorf("out: empty directory: %w", ErrInvalidValue)
	}

	return nil
}

// Options converts c into iterator options for g = cos.
func (c Config) Options() fixedpoint.Options {
	opts := fixedpoint.DefaultOptions()
	opts.Tolerance = c.Tolerance
	opts.MaxIter = c.MaxIter

	return opts
}

func (c *Config) apply(vars map[string]string) error {
	if v, ok := vars[EnvX0]; ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvX0, v, ErrInvalidValue)
		}
		c.X0 = x
	}
	if v, ok := vars[EnvTol]; ok {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTol, v, ErrInvalidValue)
		}
		c.Tolerance = tol
	}
	if v, ok := vars[EnvMaxIter]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxIter, v, ErrInvalidValue)
		}
		c.MaxIter = n
	}
	if v, ok := vars[EnvOut]; ok {
		c.OutDir = v
	}
	if v, ok := vars[EnvNoPlots]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvNoPlots, v, ErrInvalidValue)
		}
		c.NoPlots = b
	}

	return nil
}

func processEnv() map[string]string {
	vars := make(map[string]string)
	for _, key := range []string{EnvX0, EnvTol, EnvMaxIter, EnvOut, EnvNoPlots} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	return vars
}
