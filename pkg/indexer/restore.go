package indexer

import (
	"context"

	"github.com/travigo/ybs/pkg/dataimporter/datasets"
	"github.com/travigo/ybs/pkg/dataimporter/manager"
	"github.com/travigo/ybs/pkg/network"
)

// RestoreNetwork reads the stop and route catalogs and takes the derived route mappings
// from the cached snapshot, so the index is never rebuilt.
func RestoreNetwork(ctx context.Context, snapshotCache *SnapshotCache, dataset *datasets.DataSet) (*network.Network, error) {
	snapshot, err := snapshotCache.Load(ctx, dataset.Identifier)
	if err != nil {
		return nil, err
	}

	result, err := manager.ImportDatasetFromSnapshot(dataset, snapshot)
	if err != nil {
		return nil, err
	}

	restoredNetwork := network.New()
	restoredNetwork.Swap(dataset.Identifier, result.Resolver, result.Index)

	return restoredNetwork, nil
}
