package manager

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/dataimporter/datasets"
	"github.com/travigo/ybs/pkg/network"
)

// Reload rebuilds the data set off to the side and swaps it into the live network.
// A failed import leaves the current catalogs in place.
func Reload(liveNetwork *network.Network, dataset *datasets.DataSet) (*ImportResult, error) {
	result, err := ImportDataset(dataset)
	if err != nil {
		return nil, err
	}

	liveNetwork.Swap(dataset.Identifier, result.Resolver, result.Index)

	return result, nil
}

// ReloadEvery keeps reloading the data set into the network until the context ends
func ReloadEvery(ctx context.Context, liveNetwork *network.Network, dataset datasets.DataSet, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			startTime := time.Now()

			if _, err := Reload(liveNetwork, &dataset); err != nil {
				log.Error().Err(err).Str("id", dataset.Identifier).Msg("Failed to reload dataset, keeping current network")
				continue
			}

			log.Info().Str("id", dataset.Identifier).Msgf("Reload took %s", time.Since(startTime).String())
		}
	}
}
