package calculator

import (
	"sort"

	"golang.org/x/exp/maps"
)

// CountBy tallies the values by the key function, empty keys are not counted
func CountBy[T any](values []T, key func(T) string) map[string]int {
	countMap := map[string]int{}

	for _, value := range values {
		if k := key(value); k != "" {
			countMap[k]++
		}
	}

	return countMap
}

type KeyCount struct {
	Key   string
	Count int
}

// TopCounts returns the highest counts first, ties ordered by key
func TopCounts(countMap map[string]int, limit int) []KeyCount {
	keys := maps.Keys(countMap)
	sort.Slice(keys, func(i, j int) bool {
		if countMap[keys[i]] != countMap[keys[j]] {
			return countMap[keys[i]] > countMap[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	counts := make([]KeyCount, 0, len(keys))
	for _, key := range keys {
		counts = append(counts, KeyCount{Key: key, Count: countMap[key]})
	}

	return counts
}
