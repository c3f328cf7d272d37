// SPDX-License-Identifier: MIT

package main

import "github.com/urfave/cli/v2"

var (
	InputFlag = cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "scenario CSV file (cost[,probability] per record), \"-\" reads stdin",
		Required: true,
		EnvVars:  []string{"SCENRED_INPUT"},
	}
	CountFlag = cli.IntFlag{
		Name:     "count",
		Aliases:  []string{"k"},
		Usage:    "number of scenarios to keep",
		Required: true,
	}
	ScenariosFlag = cli.StringFlag{
		Name:     "scenarios",
		Usage:    "comma-separated reduced scenario indices, e.g. 1,3",
		Required: true,
	}
	WeightedFlag = cli.BoolFlag{
		Name:    "weighted",
		Usage:   "use the probability column of the input",
		EnvVars: []string{"SCENRED_WEIGHTED"},
	}
	SumToleranceFlag = cli.Float64Flag{
		Name:    "sum-tolerance",
		Usage:   "reject probabilities whose sum differs from 1 by more than this (0 disables)",
		EnvVars: []string{"SCENRED_SUM_TOLERANCE"},
	}
	FormatFlag = cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format of the assignment table (\"table\", \"csv\")",
		Value:   formatTable,
		EnvVars: []string{"SCENRED_FORMAT"},
	}
)
