// SPDX-License-Identifier: MIT

// Package logger configures the leveled, module-scoped loggers used by the
// scenred command. Library packages do not log; they report through errors
// and hooks, and the command turns those into log records here.
package logger

import (
	"os"
	"sync"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// DefaultLevel is used when a level name cannot be parsed.
const DefaultLevel = logging.INFO

const format = `%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`

// LogLevelFlag selects the verbosity of every command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   DefaultLevel.String(),
	EnvVars: []string{"SCENRED_LOG_LEVEL"},
}

var setupOnce sync.Once

// NewLogger returns the logger of module with its level set to level.
// Level names are case-insensitive; an unknown name falls back to INFO.
func NewLogger(level, module string) *logging.Logger {
	setupOnce.Do(func() {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		logging.SetBackend(logging.NewBackendFormatter(backend, logging.MustStringFormatter(format)))
	})

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = DefaultLevel
	}
	logging.SetLevel(lvl, module)

	return logging.MustGetLogger(module)
}
