package calculator

import (
	"github.com/travigo/ybs/pkg/network"
	"github.com/travigo/ybs/pkg/util"
)

type RoutesStats struct {
	Total int

	TransferHubs int
	BusiestHubs  []KeyCount

	LongestRoute   string
	LongestStops   int
	AverageStops   float64
	IndexedStops   int
	SkippedRecords int
	KeyCollisions  int
}

func GetRoutes(n *network.Network) RoutesStats {
	routes := n.Routes()
	buildStats := n.Stats().Routes

	stats := RoutesStats{
		Total:          len(routes),
		IndexedStops:   buildStats.IndexedStops,
		SkippedRecords: buildStats.Skipped,
		KeyCollisions:  buildStats.Collisions,
	}

	totalStops := 0
	for _, route := range routes {
		totalStops += len(route.Stops)

		if len(route.Stops) > stats.LongestStops {
			stats.LongestRoute = route.Key
			stats.LongestStops = len(route.Stops)
		}
	}
	if len(routes) > 0 {
		stats.AverageStops = util.RoundTo(float64(totalStops)/float64(len(routes)), 2)
	}

	hubCounts := map[string]int{}
	for _, hub := range n.TransferHubs() {
		hubCounts[hub.Identifier] = len(n.RoutesForStop(hub.Identifier))
	}
	stats.TransferHubs = len(hubCounts)
	stats.BusiestHubs = TopCounts(hubCounts, 10)

	return stats
}
