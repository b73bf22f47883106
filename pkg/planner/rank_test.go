package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ybs/pkg/ctdf"
)

func rankPath(name string, transfers int, stops int, distance float64) *ctdf.Path {
	legs := make([]ctdf.Leg, transfers+1)
	legs[0].RouteKey = name

	return &ctdf.Path{
		Legs:            legs,
		TransferCount:   transfers,
		TotalStops:      stops,
		TotalDistanceKm: distance,
	}
}

func TestRankScoresAgainstObservedMaxima(t *testing.T) {
	ranked := Rank([]*ctdf.Path{
		rankPath("c", 2, 20, 20),
		rankPath("b", 1, 5, 5),
		rankPath("a", 0, 10, 10),
	}, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].Legs[0].RouteKey)
	assert.InDelta(t, 0.75, ranked[0].Score, 0.0001)
	assert.Equal(t, "b", ranked[1].Legs[0].RouteKey)
	assert.InDelta(t, 0.625, ranked[1].Score, 0.0001)
	assert.Equal(t, "c", ranked[2].Legs[0].RouteKey)
	assert.InDelta(t, 0.0, ranked[2].Score, 0.0001)
}

func TestRankScoresAreRelativeToThePool(t *testing.T) {
	alone := Rank([]*ctdf.Path{rankPath("a", 0, 10, 10)}, 10)
	withWorse := Rank([]*ctdf.Path{rankPath("a", 0, 10, 10), rankPath("z", 0, 40, 40)}, 10)

	assert.InDelta(t, 0.5, alone[0].Score, 0.0001)
	assert.InDelta(t, 0.875, withWorse[0].Score, 0.0001)
}

func TestRankFloorsMaximaAtOne(t *testing.T) {
	ranked := Rank([]*ctdf.Path{rankPath("a", 0, 0, 0)}, 10)

	assert.InDelta(t, 1.0, ranked[0].Score, 0.0001)
}

func TestRankTieBreaksOnStops(t *testing.T) {
	ranked := Rank([]*ctdf.Path{
		rankPath("v", 0, 6, 3),
		rankPath("u", 0, 4, 6),
		rankPath("w", 0, 10, 10),
	}, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "u", ranked[0].Legs[0].RouteKey)
	assert.Equal(t, "v", ranked[1].Legs[0].RouteKey)
	assert.Equal(t, "w", ranked[2].Legs[0].RouteKey)
}

func TestRankLimit(t *testing.T) {
	ranked := Rank([]*ctdf.Path{
		rankPath("a", 0, 1, 1),
		rankPath("b", 0, 2, 2),
		rankPath("c", 0, 3, 3),
	}, 2)

	assert.Len(t, ranked, 2)
	assert.Empty(t, Rank(nil, 5))
}

func TestFilterByDistance(t *testing.T) {
	paths := []*ctdf.Path{
		rankPath("a", 0, 1, 4.5),
		rankPath("b", 0, 1, 12),
		rankPath("c", 0, 1, 8),
	}

	assert.Len(t, FilterByDistance(paths, 0), 3)

	filtered := FilterByDistance(paths, 10)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Legs[0].RouteKey)
	assert.Equal(t, "c", filtered[1].Legs[0].RouteKey)
}
