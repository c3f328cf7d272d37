// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/scenred/reduction"
	"github.com/katalvlaran/scenred/scenario"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
)

var (
	errNoProbabilities = errors.New("scenred: --weighted requires a probability column in the input")
	errBadFormat       = errors.New("scenred: unknown output format")
)

// config is the parsed command line of one command invocation.
type config struct {
	Input        string
	Weighted     bool
	SumTolerance float64
	Format       string
}

func newConfig(ctx *cli.Context) (*config, error) {
	cfg := &config{
		Input:        ctx.String(InputFlag.Name),
		Weighted:     ctx.Bool(WeightedFlag.Name),
		SumTolerance: ctx.Float64(SumToleranceFlag.Name),
		Format:       formatTable,
	}
	if ctx.IsSet(FormatFlag.Name) {
		cfg.Format = ctx.String(FormatFlag.Name)
	}
	if cfg.Format != formatTable && cfg.Format != formatCSV {
		return nil, fmt.Errorf("%w %q", errBadFormat, cfg.Format)
	}

	return cfg, nil
}

// loadScenarios reads the input set and turns the weighting flags into
// reduction options.
func (cfg *config) loadScenarios(ctx *cli.Context) (set *scenario.Set, opts []reduction.Option, err error) {
	var r io.Reader = ctx.App.Reader
	if cfg.Input != "-" {
		f, openErr := os.Open(cfg.Input)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open scenario file; %w", openErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		r = f
	}

	set, err = scenario.ReadCSV(r)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Weighted {
		if !set.Weighted() {
			return nil, nil, errNoProbabilities
		}
		opts = append(opts, reduction.WithProbabilities(set.Probabilities))
	}
	if cfg.SumTolerance > 0 {
		opts = append(opts, reduction.WithSumTolerance(cfg.SumTolerance))
	}

	return set, opts, nil
}

// writeTable renders t in the configured format.
func (cfg *config) writeTable(w io.Writer, t *reduction.AssignmentTable) error {
	if cfg.Format == formatCSV {
		return scenario.WriteCSV(w, t)
	}

	return scenario.WriteTable(w, t)
}
