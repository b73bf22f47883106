package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/travigo/ybs/pkg/dataimporter/manager"
	"github.com/travigo/ybs/pkg/network"
	"github.com/travigo/ybs/pkg/stats/calculator"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Reports statistics about a loaded dataset",
		Flags: []cli.Flag{
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
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the statistics as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			dataset, err := manager.GetDataset(c.String("datasources-dir"), c.String("datasource"))
			if err != nil {
				return err
			}

			result, err := manager.ImportDataset(&dataset)
			if err != nil {
				return err
			}

			loadedNetwork := network.New()
			loadedNetwork.Swap(dataset.Identifier, result.Resolver, result.Index)

			stats := calculator.GetNetworkStats(loadedNetwork)

			if c.Bool("json") {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			}

			fmt.Printf("Dataset %s\n", stats.Dataset)
			fmt.Printf("Stops: %d loaded, %d skipped, %d name keys\n", stats.Stops.Total, result.StopStats.Skipped, result.StopStats.Keys)
			fmt.Printf("   %d with Myanmar names, %d without location, %d ambiguous names\n", stats.Stops.WithMyanmarName, stats.Stops.WithoutLocation, stats.Stops.AmbiguousNames)
			for _, township := range stats.Stops.Townships {
				fmt.Printf("   %s: %d\n", township.Key, township.Count)
			}

			fmt.Printf("Routes: %d loaded, %d skipped, %d key collisions\n", stats.Routes.Total, stats.Routes.SkippedRecords, stats.Routes.KeyCollisions)
			fmt.Printf("   longest %s with %d stops, average %.2f stops\n", stats.Routes.LongestRoute, stats.Routes.LongestStops, stats.Routes.AverageStops)
			fmt.Printf("   %d indexed stops, %d transfer hubs\n", stats.Routes.IndexedStops, stats.Routes.TransferHubs)
			for _, hub := range stats.Routes.BusiestHubs {
				stop, _ := loadedNetwork.GetStop(hub.Key)
				name := hub.Key
				if stop != nil {
					name = stop.PrimaryName
				}
				fmt.Printf("   %s: %d routes\n", name, hub.Count)
			}

			return nil
		},
	}
}
