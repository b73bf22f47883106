package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/api"
	"github.com/travigo/ybs/pkg/dataimporter"
	"github.com/travigo/ybs/pkg/indexer"
	plannercli "github.com/travigo/ybs/pkg/planner/cli"
	statscli "github.com/travigo/ybs/pkg/stats/cli"
	"github.com/travigo/ybs/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	if util.GetEnvironmentVariable("LOG_FORMAT", "") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if util.GetEnvironmentVariable("DEBUG", "") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "ybs",
		Description: "Yangon bus stop resolver and multi transfer journey planner",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			dataimporter.RegisterCLI(),
			indexer.RegisterCLI(),
			plannercli.RegisterCLI(),
			statscli.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
