package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/network"
	"github.com/travigo/ybs/pkg/routeindex"
	"github.com/travigo/ybs/pkg/stopresolver"
)

func testNetwork(t *testing.T) *network.Network {
	t.Helper()

	resolver := stopresolver.New()
	resolver.Load([]ctdf.StopRecord{
		{Identifier: "1", NameEN: "Hledan", NameMM: "လှည်းတန်း", Township: "Kamayut", Latitude: 16.8, Longitude: 96.13},
		{Identifier: "2", NameEN: "Pansodan", Township: "Kyauktada", Latitude: 16.78, Longitude: 96.145},
		{Identifier: "3", NameEN: "Sule", Township: "Kyauktada", Latitude: 16.775, Longitude: 96.158},
		{Identifier: "4", NameEN: "Sule Pagoda", Township: "Kyauktada"},
	})

	index := routeindex.New()
	index.Build([]ctdf.RouteRecord{
		{RouteNumber: "10", Stops: []string{"1", "2", "3"}},
		{RouteNumber: "20", Stops: []string{"4", "2"}},
		{RouteNumber: "30", Stops: []string{"2", "4", "1", "3"}},
		{RouteNumber: "40"},
	})

	n := network.New()
	n.Swap("test", resolver, index)

	return n
}

func TestGetStops(t *testing.T) {
	stats := GetStops(testNetwork(t))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.WithMyanmarName)
	assert.Equal(t, 1, stats.WithoutLocation)
	assert.Equal(t, 2, stats.AmbiguousNames)

	require.Len(t, stats.Townships, 2)
	assert.Equal(t, KeyCount{Key: "Kyauktada", Count: 3}, stats.Townships[0])
}

func TestGetRoutes(t *testing.T) {
	stats := GetRoutes(testNetwork(t))

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.SkippedRecords)
	assert.Equal(t, "30", stats.LongestRoute)
	assert.Equal(t, 4, stats.LongestStops)
	assert.Equal(t, 3.0, stats.AverageStops)

	assert.Equal(t, 1, stats.TransferHubs)
	assert.Equal(t, []KeyCount{{Key: "2", Count: 3}}, stats.BusiestHubs)
}

func TestTopCounts(t *testing.T) {
	counts := TopCounts(map[string]int{"b": 2, "a": 2, "c": 5}, 2)

	assert.Equal(t, []KeyCount{{Key: "c", Count: 5}, {Key: "a", Count: 2}}, counts)
}
