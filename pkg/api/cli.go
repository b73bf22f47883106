package api

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/dataaggregator/global"
	"github.com/travigo/ybs/pkg/dataimporter/datasets"
	"github.com/travigo/ybs/pkg/dataimporter/manager"
	"github.com/travigo/ybs/pkg/indexer"
	"github.com/travigo/ybs/pkg/network"
	"github.com/travigo/ybs/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func loadNetwork(c *cli.Context, dataset *datasets.DataSet) (*network.Network, error) {
	if c.Bool("from-snapshot") {
		if err := redis_client.Connect(); err != nil {
			return nil, err
		}

		return indexer.RestoreNetwork(c.Context, indexer.NewSnapshotCache(redis_client.Client), dataset)
	}

	result, err := manager.ImportDataset(dataset)
	if err != nil {
		return nil, err
	}

	liveNetwork := network.New()
	liveNetwork.Swap(dataset.Identifier, result.Resolver, result.Index)

	return liveNetwork, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:     "datasource",
						Usage:    "ID of the dataset to serve",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "datasources-dir",
						Value: manager.DefaultDataSourcesDirectory,
						Usage: "directory holding the data source definitions",
					},
					&cli.BoolFlag{
						Name:  "from-snapshot",
						Usage: "take the route mappings from the Redis snapshot instead of rebuilding them",
					},
					&cli.DurationFlag{
						Name:  "reload-every",
						Usage: "re-import the dataset and swap it in every X, eg 10m",
					},
				},
				Action: func(c *cli.Context) error {
					dataset, err := manager.GetDataset(c.String("datasources-dir"), c.String("datasource"))
					if err != nil {
						return err
					}

					liveNetwork, err := loadNetwork(c, &dataset)
					if err != nil {
						return err
					}

					if reloadEvery := c.Duration("reload-every"); reloadEvery > 0 {
						ctx, cancel := context.WithCancel(c.Context)
						defer cancel()

						log.Info().Str("every", reloadEvery.String()).Msg("Reloading dataset periodically")
						go manager.ReloadEvery(ctx, liveNetwork, dataset, reloadEvery)
					}

					aggregator := global.Setup(liveNetwork)

					log.Info().Str("listen", c.String("listen")).Msg("Starting web api")

					return SetupServer(c.String("listen"), aggregator, dataset.PlannerConfig())
				},
			},
		},
	}
}
