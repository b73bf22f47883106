package indexer

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/dataimporter/manager"
	"github.com/travigo/ybs/pkg/network"
	"github.com/travigo/ybs/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func datasetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "datasource",
			Usage:    "ID of the dataset",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "datasources-dir",
			Value: manager.DefaultDataSourcesDirectory,
			Usage: "directory holding the data source definitions",
		},
	}
}

func loadNetwork(c *cli.Context) (*network.Network, error) {
	dataset, err := manager.GetDataset(c.String("datasources-dir"), c.String("datasource"))
	if err != nil {
		return nil, err
	}

	result, err := manager.ImportDataset(&dataset)
	if err != nil {
		return nil, err
	}

	loadedNetwork := network.New()
	loadedNetwork.Swap(dataset.Identifier, result.Resolver, result.Index)

	return loadedNetwork, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Caches route index snapshots in Redis",
		Subcommands: []*cli.Command{
			{
				Name:  "snapshot",
				Usage: "export or import the route index snapshot",
				Subcommands: []*cli.Command{
					{
						Name:  "export",
						Usage: "build the route index and store its snapshot",
						Flags: datasetFlags(),
						Action: func(c *cli.Context) error {
							if err := redis_client.Connect(); err != nil {
								return err
							}

							loadedNetwork, err := loadNetwork(c)
							if err != nil {
								return err
							}

							snapshotCache := NewSnapshotCache(redis_client.Client)

							return snapshotCache.Store(context.Background(), c.String("datasource"), loadedNetwork.ExportSnapshot())
						},
					},
					{
						Name:  "import",
						Usage: "load the catalogs and restore the route mappings from the stored snapshot",
						Flags: datasetFlags(),
						Action: func(c *cli.Context) error {
							if err := redis_client.Connect(); err != nil {
								return err
							}

							dataset, err := manager.GetDataset(c.String("datasources-dir"), c.String("datasource"))
							if err != nil {
								return err
							}

							loadedNetwork, err := RestoreNetwork(context.Background(), NewSnapshotCache(redis_client.Client), &dataset)
							if err != nil {
								return err
							}

							stats := loadedNetwork.Stats()
							log.Info().
								Str("dataset", stats.Dataset).
								Int("stops", stats.Stops).
								Int("hubs", len(loadedNetwork.TransferHubs())).
								Bool("ready", stats.Ready).
								Msg("Network restored from snapshot")

							return nil
						},
					},
				},
			},
		},
	}
}
