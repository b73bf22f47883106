package dataimporter

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/dataimporter/manager"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Read and check stop & route catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "datasources-dir",
				Value: manager.DefaultDataSourcesDirectory,
				Usage: "directory holding the data source definitions",
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the registered datasets",
				Action: func(c *cli.Context) error {
					registered, err := manager.GetRegisteredDataSets(c.String("datasources-dir"))
					if err != nil {
						return err
					}

					for _, dataset := range registered {
						fmt.Printf("%s (%s) stops %s [%s], routes %s [%s]\n",
							dataset.Identifier, dataset.Provider.Name,
							dataset.Stops, dataset.StopsFormat,
							dataset.Routes, dataset.RoutesFormat,
						)
					}

					return nil
				},
			},
			{
				Name:  "dataset",
				Usage: "Check a dataset parses and report what would be loaded",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "ID of the dataset",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "repeat-every",
						Usage:    "Repeat this check every X, eg 10m. Serving reloads use web-api run --reload-every",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					repeatEvery := c.String("repeat-every")
					repeat := repeatEvery != ""
					var repeatDuration time.Duration
					if repeat {
						var err error
						repeatDuration, err = time.ParseDuration(repeatEvery)

						if err != nil {
							return err
						}
					}

					dataset, err := manager.GetDataset(c.String("datasources-dir"), c.String("id"))
					if err != nil {
						return err
					}

					for {
						startTime := time.Now()

						result, err := manager.ImportDataset(&dataset)
						if err != nil {
							return err
						}

						log.Info().
							Str("id", dataset.Identifier).
							Int("stops", result.StopStats.Loaded).
							Int("skippedstops", result.StopStats.Skipped).
							Int("routes", result.RouteStats.Routes).
							Int("skippedroutes", result.RouteStats.Skipped).
							Int("hubs", result.RouteStats.TransferHubs).
							Msg("Dataset checked")

						if !repeat {
							break
						}

						executionDuration := time.Since(startTime)
						log.Info().Msgf("Operation took %s", executionDuration.String())

						waitTime := repeatDuration - executionDuration

						if waitTime.Seconds() > 0 {
							time.Sleep(waitTime)
						}
					}

					return nil
				},
			},
		},
	}
}
