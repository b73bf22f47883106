package calculator

import (
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/network"
)

type StopsStats struct {
	Total int

	WithMyanmarName int
	WithoutLocation int

	// Stops whose English name also matches other stops, these resolve ambiguously
	AmbiguousNames int

	Townships []KeyCount
}

func GetStops(n *network.Network) StopsStats {
	stops := n.Stops()

	stats := StopsStats{
		Total: len(stops),
	}

	for _, stop := range stops {
		if stop.MyanmarName() != "" {
			stats.WithMyanmarName++
		}
		if !stop.Location.Valid() {
			stats.WithoutLocation++
		}
		if len(n.SimilarStops(stop.PrimaryName)) > 1 {
			stats.AmbiguousNames++
		}
	}

	stats.Townships = TopCounts(CountBy(stops, func(stop *ctdf.Stop) string {
		return stop.Township
	}), 10)

	return stats
}
