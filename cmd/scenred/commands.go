// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/scenred/logger"
	"github.com/katalvlaran/scenred/reduction"
	"github.com/katalvlaran/scenred/scenario"
)

var selectCommand = cli.Command{
	Action: selectAction,
	Name:   "select",
	Usage:  "greedily selects the scenarios to keep",
	Flags: []cli.Flag{
		&InputFlag,
		&CountFlag,
		&WeightedFlag,
		&SumToleranceFlag,
	},
	Description: `
Prints the kept scenario indices in selection order, comma-separated.`,
}

var redistributeCommand = cli.Command{
	Action: redistributeAction,
	Name:   "redistribute",
	Usage:  "moves the probability of dropped scenarios to the nearest kept one",
	Flags: []cli.Flag{
		&InputFlag,
		&ScenariosFlag,
		&WeightedFlag,
		&SumToleranceFlag,
		&FormatFlag,
	},
}

var reduceCommand = cli.Command{
	Action: reduceAction,
	Name:   "reduce",
	Usage:  "selects scenarios and redistributes their probabilities",
	Flags: []cli.Flag{
		&InputFlag,
		&CountFlag,
		&WeightedFlag,
		&SumToleranceFlag,
		&FormatFlag,
	},
}

func selectAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Select")
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	set, opts, err := cfg.loadScenarios(ctx)
	if err != nil {
		return err
	}
	k := ctx.Int(CountFlag.Name)
	log.Infof("selecting %d of %d scenarios", k, set.Len())

	selected, err := reduction.SelectReducedScenarios(set.Costs, k, append(opts, logRounds(log))...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, scenario.FormatIDs(selected))

	return err
}

func redistributeAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Redistribute")
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	reduced, err := scenario.ParseIDs(ctx.String(ScenariosFlag.Name))
	if err != nil {
		return err
	}
	set, opts, err := cfg.loadScenarios(ctx)
	if err != nil {
		return err
	}

	table, err := reduction.RedistributeProbabilities(set.Costs, reduced, opts...)
	if err != nil {
		return err
	}
	log.Infof("kept %v; kantorovich distance %g", table.Reduced(), table.KantorovichDistance())

	return cfg.writeTable(ctx.App.Writer, table)
}

func reduceAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Reduce")
	cfg, err := newConfig(ctx)
	if err != nil {
		return err
	}
	set, opts, err := cfg.loadScenarios(ctx)
	if err != nil {
		return err
	}
	k := ctx.Int(CountFlag.Name)
	log.Infof("reducing %d scenarios to %d", set.Len(), k)

	res, err := reduction.Reduce(set.Costs, k, append(opts, logRounds(log))...)
	if err != nil {
		return err
	}
	log.Infof("kept %v; kantorovich distance %g", res.Selected, res.Table.KantorovichDistance())
	log.Infof("expected cost %g before, %g after", res.Table.InitialMean(), res.Table.ReducedMean())

	return cfg.writeTable(ctx.App.Writer, res.Table)
}

// logRounds reports every selection round at DEBUG.
func logRounds(log *logging.Logger) reduction.Option {
	return reduction.WithOnSelect(func(s reduction.Selection) {
		log.Debugf("round %d: picked scenario %d (score %g), %d candidates left",
			s.Round, s.Scenario, s.Score, s.Remaining)
	})
}
