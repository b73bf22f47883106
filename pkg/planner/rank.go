package planner

import (
	"math"
	"sort"

	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/util"
)

const (
	TransferWeight = 0.5
	StopWeight     = 0.3
	DistanceWeight = 0.2
)

// Rank scores each path against the worst values seen in this candidate set, so scores only
// order paths within one query and cannot be compared between queries.
func Rank(paths []*ctdf.Path, maxPaths int) []*ctdf.Path {
	ranked := make([]*ctdf.Path, len(paths))
	copy(ranked, paths)

	if len(ranked) == 0 {
		return ranked
	}

	maxTransfers := 1.0
	maxStops := 1.0
	maxDistance := 1.0
	for _, path := range ranked {
		maxTransfers = math.Max(maxTransfers, float64(path.TransferCount))
		maxStops = math.Max(maxStops, float64(path.TotalStops))
		maxDistance = math.Max(maxDistance, path.TotalDistanceKm)
	}

	for _, path := range ranked {
		transferScore := 1 - float64(path.TransferCount)/maxTransfers
		stopScore := 1 - float64(path.TotalStops)/maxStops
		distanceScore := 1 - path.TotalDistanceKm/maxDistance

		path.Score = util.RoundTo(TransferWeight*transferScore+StopWeight*stopScore+DistanceWeight*distanceScore, 3)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].TransferCount != ranked[j].TransferCount {
			return ranked[i].TransferCount < ranked[j].TransferCount
		}
		return ranked[i].TotalStops < ranked[j].TotalStops
	})

	if maxPaths > 0 && len(ranked) > maxPaths {
		ranked = ranked[:maxPaths]
	}

	return ranked
}

// FilterByDistance drops paths longer than maxDistanceKm, a zero limit keeps everything
func FilterByDistance(paths []*ctdf.Path, maxDistanceKm float64) []*ctdf.Path {
	if maxDistanceKm <= 0 {
		return paths
	}

	util.InPlaceFilter(&paths, func(path *ctdf.Path) bool {
		return path.TotalDistanceKm <= maxDistanceKm
	})

	return paths
}
