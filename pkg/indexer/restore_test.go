package indexer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ybs/pkg/dataimporter/manager"
)

func writeDataset(t *testing.T) string {
	t.Helper()

	directory := t.TempDir()
	files := map[string]string{
		"mm-yangon.yaml": "identifier: mm-yangon\nprovider:\n  name: Yangon Bus Service\ndatasets:\n  - identifier: ybs\n    stopsformat: ybs-json\n    stops: stops.json\n    routesformat: ybs-json\n    routes: routes\n",
		"stops.json":     `{"1": {"name_en": "Hledan"}, "2": {"name_en": "Pansodan"}, "3": {"name_en": "Sule"}}`,
		"routes/1.json":  `{"route_number": "1", "stops": ["1", "2", "3"]}`,
		"routes/2.json":  `{"route_number": "20", "stops": ["2", "3"]}`,
	}

	for name, content := range files {
		path := filepath.Join(directory, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return directory
}

func TestRestoreNetworkUsesCachedMappings(t *testing.T) {
	ctx := context.Background()
	snapshotCache := testSnapshotCache(t)

	dataset, err := manager.GetDataset(writeDataset(t), "mm-yangon-ybs")
	require.NoError(t, err)

	built, err := manager.ImportDataset(&dataset)
	require.NoError(t, err)

	snapshot := built.Index.ExportSnapshot()
	// Marker mapping that only exists in the cache
	snapshot.StopRoutes["1"] = []string{"1", "20"}
	require.NoError(t, snapshotCache.Store(ctx, dataset.Identifier, snapshot))

	restored, err := RestoreNetwork(ctx, snapshotCache, &dataset)
	require.NoError(t, err)

	stats := restored.Stats()
	assert.Equal(t, "mm-yangon-ybs", stats.Dataset)
	assert.Equal(t, 3, stats.Stops)
	assert.Equal(t, 2, stats.Routes.Routes)
	assert.True(t, stats.Ready)

	routes := restored.RoutesForStop("1")
	require.Len(t, routes, 2)
	assert.Equal(t, "20", routes[1].Key)
	assert.Equal(t, []string{"2", "3"}, routes[1].Stops)
}

func TestRestoreNetworkWithoutSnapshot(t *testing.T) {
	dataset, err := manager.GetDataset(writeDataset(t), "mm-yangon-ybs")
	require.NoError(t, err)

	_, err = RestoreNetwork(context.Background(), testSnapshotCache(t), &dataset)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}
