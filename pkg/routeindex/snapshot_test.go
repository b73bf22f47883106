package routeindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotRoundTrip(t *testing.T) {
	index := testIndex(t)
	snapshot := index.ExportSnapshot()

	assert.False(t, snapshot.GeneratedAt.IsZero())

	restored := New()
	restored.ImportSnapshot(snapshot)

	assert.True(t, restored.Ready())
	for _, stopID := range []string{"A", "B", "C", "D", "E", "F", "G", "HUB", "Z"} {
		assert.Equal(t, index.RoutesFor(stopID), restored.RoutesFor(stopID), stopID)
	}
	assert.Equal(t, index.TransferHubs(), restored.TransferHubs())
}

func TestImportReplacesExistingState(t *testing.T) {
	index := testIndex(t)

	index.ImportSnapshot(&Snapshot{
		StopRoutes:   map[string][]string{"Q": {"99"}},
		TransferHubs: []string{},
	})

	assert.Empty(t, index.RoutesFor("HUB"))
	assert.Equal(t, []string{"99"}, index.RoutesFor("Q"))
	assert.Empty(t, index.TransferHubs())
}

func TestLoadCatalogThenImportSnapshot(t *testing.T) {
	built := testIndex(t)
	snapshot := built.ExportSnapshot()

	restored := New()
	stats := restored.LoadCatalog(testRoutes())
	assert.Equal(t, 5, stats.Routes)
	assert.Equal(t, 1, stats.Skipped)
	assert.False(t, restored.Ready())
	assert.Empty(t, restored.RoutesFor("HUB"))

	restored.ImportSnapshot(snapshot)

	assert.True(t, restored.Ready())
	assert.Equal(t, built.RoutesFor("HUB"), restored.RoutesFor("HUB"))
	assert.Equal(t, built.TransferHubs(), restored.TransferHubs())

	route, found := restored.RouteData("1")
	assert.True(t, found)
	assert.Equal(t, "Hledan - Sule", route.Name)

	assert.Equal(t, built.Stats(), restored.Stats())
}
