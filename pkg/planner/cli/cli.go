package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/dataimporter/datasets"
	"github.com/travigo/ybs/pkg/dataimporter/manager"
	"github.com/travigo/ybs/pkg/network"
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
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "dump full results",
		},
	}
}

func loadNetwork(c *cli.Context) (*network.Network, datasets.DataSet, error) {
	dataset, err := manager.GetDataset(c.String("datasources-dir"), c.String("datasource"))
	if err != nil {
		return nil, dataset, err
	}

	result, err := manager.ImportDataset(&dataset)
	if err != nil {
		return nil, dataset, err
	}

	loadedNetwork := network.New()
	loadedNetwork.Swap(dataset.Identifier, result.Resolver, result.Index)

	return loadedNetwork, dataset, nil
}

func stopLabel(stop *ctdf.Stop) string {
	if myanmarName := stop.MyanmarName(); myanmarName != "" {
		return fmt.Sprintf("%s (%s) [%s]", stop.PrimaryName, myanmarName, stop.Identifier)
	}

	return fmt.Sprintf("%s [%s]", stop.PrimaryName, stop.Identifier)
}

func printPaths(paths []*ctdf.Path) {
	if len(paths) == 0 {
		fmt.Println("No routes found")
		return
	}

	for i, path := range paths {
		fmt.Printf("%d. score %.3f, %d transfers, %d stops, %.2f km\n", i+1, path.Score, path.TransferCount, path.TotalStops, path.TotalDistanceKm)

		for _, leg := range path.Legs {
			routeName := leg.RouteKey
			if leg.RouteName != "" {
				routeName = fmt.Sprintf("%s %s", leg.RouteKey, leg.RouteName)
			}

			fmt.Printf("   bus %s: %s -> %s, %d stops\n", routeName, leg.BoardStop.PrimaryName, leg.AlightStop.PrimaryName, leg.StopCount)
		}
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Resolve stops and plan journeys from the command line",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "plan a journey between two stop names",
				Flags: append(datasetFlags(),
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin stop name, English or Myanmar",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination stop name, English or Myanmar",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-transfers",
						Value: -1,
						Usage: "override the dataset transfer limit",
					},
					&cli.IntFlag{
						Name:  "max-paths",
						Value: -1,
						Usage: "override the dataset result limit",
					},
				),
				Action: func(c *cli.Context) error {
					loadedNetwork, dataset, err := loadNetwork(c)
					if err != nil {
						return err
					}

					config := dataset.PlannerConfig()
					if c.Int("max-transfers") >= 0 {
						config.MaxTransfers = c.Int("max-transfers")
					}
					if c.Int("max-paths") >= 0 {
						config.MaxPaths = c.Int("max-paths")
					}
					if err := config.Validate(); err != nil {
						return err
					}

					originStop, found := loadedNetwork.ResolveStop(c.String("from"))
					if !found {
						return fmt.Errorf("could not find a stop matching %q", c.String("from"))
					}
					destinationStop, found := loadedNetwork.ResolveStop(c.String("to"))
					if !found {
						return fmt.Errorf("could not find a stop matching %q", c.String("to"))
					}

					fmt.Printf("From %s to %s\n", stopLabel(originStop), stopLabel(destinationStop))

					paths := loadedNetwork.FindPaths(context.Background(), originStop.Identifier, destinationStop.Identifier, config)
					printPaths(paths)

					if c.Bool("debug") {
						pretty.Println(paths)
					}

					return nil
				},
			},
			{
				Name:      "resolve",
				Usage:     "show the stop a name resolves to",
				ArgsUsage: "<name>",
				Flags:     datasetFlags(),
				Action: func(c *cli.Context) error {
					text := strings.Join(c.Args().Slice(), " ")
					if text == "" {
						return errors.New("a stop name is required")
					}

					loadedNetwork, _, err := loadNetwork(c)
					if err != nil {
						return err
					}

					stop, found := loadedNetwork.ResolveStop(text)
					if !found {
						return fmt.Errorf("could not find a stop matching %q", text)
					}

					fmt.Println(stopLabel(stop))
					for _, route := range loadedNetwork.RoutesForStop(stop.Identifier) {
						fmt.Printf("   bus %s %s\n", route.Key, route.Name)
					}

					if c.Bool("debug") {
						pretty.Println(stop)
					}

					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "list the stops best matching a name",
				ArgsUsage: "<name>",
				Flags: append(datasetFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "maximum number of stops",
					},
				),
				Action: func(c *cli.Context) error {
					text := strings.Join(c.Args().Slice(), " ")
					if text == "" {
						return errors.New("a stop name is required")
					}

					loadedNetwork, _, err := loadNetwork(c)
					if err != nil {
						return err
					}

					stops := loadedNetwork.SearchStops(text, c.Int("limit"))
					for _, stop := range stops {
						fmt.Println(stopLabel(stop))
					}

					if c.Bool("debug") {
						pretty.Println(stops)
					}

					return nil
				},
			},
			{
				Name:  "hubs",
				Usage: "list the transfer hubs",
				Flags: datasetFlags(),
				Action: func(c *cli.Context) error {
					loadedNetwork, _, err := loadNetwork(c)
					if err != nil {
						return err
					}

					for _, stop := range loadedNetwork.TransferHubs() {
						fmt.Printf("%s, %d routes\n", stopLabel(stop), len(loadedNetwork.RoutesForStop(stop.Identifier)))
					}

					return nil
				},
			},
		},
	}
}
