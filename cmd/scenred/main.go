// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/scenred/logger"
)

// envFileVar names an explicit dotenv file; without it ".env" is loaded
// when present.
const envFileVar = "SCENRED_ENV_FILE"

func newApp() *cli.App {
	return &cli.App{
		Name:     "scenred",
		HelpName: "scenred",
		Usage:    "Kantorovich-distance scenario reduction",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
		},
		Commands: []*cli.Command{
			&selectCommand,
			&redistributeCommand,
			&reduceCommand,
		},
	}
}

// loadEnv runs before flag parsing so that flag EnvVars see the file.
func loadEnv() error {
	if path := os.Getenv(envFileVar); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("cannot load %s=%s; %w", envFileVar, path, err)
		}
		return nil
	}
	_ = godotenv.Load(".env")

	return nil
}

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
