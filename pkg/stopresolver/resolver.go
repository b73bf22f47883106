package stopresolver

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/util"
	"golang.org/x/exp/maps"
)

const (
	ScoreExact            = 100
	ScorePrefix           = 80
	ScoreSubstring        = 50
	ScoreReverseSubstring = 30
)

// A key only matches as a fragment of the query when it is longer than this
const minimumReverseKeyLength = 3

// Reverse substring scores only apply to queries longer than this
const minimumReverseQueryLength = 5

type LoadStats struct {
	Loaded  int
	Skipped int
	Keys    int
}

// Resolver owns the stop catalog and answers identifier and free text lookups.
// It is read-only once Load has returned.
type Resolver struct {
	stops     map[string]*ctdf.Stop
	stopOrder []string

	nameIndex map[string][]string
	nameOrder []string
}

func New() *Resolver {
	return &Resolver{
		stops:     map[string]*ctdf.Stop{},
		nameIndex: map[string][]string{},
	}
}

// Load indexes the records in the order given. Records without an identifier or
// English name are skipped.
func (r *Resolver) Load(records []ctdf.StopRecord) LoadStats {
	stats := LoadStats{}

	for _, record := range records {
		record.Identifier = strings.TrimSpace(record.Identifier)
		if record.Identifier == "" {
			log.Warn().Str("name", record.NameEN).Msg("Skipping stop without identifier")
			stats.Skipped++
			continue
		}
		if strings.TrimSpace(record.NameEN) == "" {
			log.Warn().Str("stop", record.Identifier).Msg("Skipping stop without English name")
			stats.Skipped++
			continue
		}

		stop := record.ToStop()

		if _, exists := r.stops[stop.Identifier]; !exists {
			r.stopOrder = append(r.stopOrder, stop.Identifier)
		} else {
			log.Warn().Str("stop", stop.Identifier).Msg("Duplicate stop identifier, replacing earlier record")
		}
		r.stops[stop.Identifier] = stop

		for _, name := range util.RemoveDuplicateStrings([]string{record.NameEN, record.NameMM, record.Road}, nil) {
			r.indexName(name, stop.Identifier)
		}

		stats.Loaded++
	}

	stats.Keys = len(r.nameOrder)

	log.Info().
		Int("loaded", stats.Loaded).
		Int("skipped", stats.Skipped).
		Int("keys", stats.Keys).
		Msg("Loaded stop catalog")

	return stats
}

// LoadMap loads an unordered catalog in identifier order so that tie breaking stays deterministic
func (r *Resolver) LoadMap(catalog map[string]ctdf.StopRecord) LoadStats {
	identifiers := maps.Keys(catalog)
	sort.Strings(identifiers)

	records := make([]ctdf.StopRecord, 0, len(identifiers))
	for _, identifier := range identifiers {
		record := catalog[identifier]
		if record.Identifier == "" {
			record.Identifier = identifier
		}
		records = append(records, record)
	}

	return r.Load(records)
}

func (r *Resolver) indexName(name string, identifier string) {
	key := Normalise(name)
	if key == "" {
		return
	}

	identifiers, exists := r.nameIndex[key]
	if !exists {
		r.nameOrder = append(r.nameOrder, key)
	}

	if util.ContainsString(identifiers, identifier) {
		return
	}

	r.nameIndex[key] = append(identifiers, identifier)
}

func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}

	return len(r.stops)
}

// Stops returns the catalog in load order
func (r *Resolver) Stops() []*ctdf.Stop {
	if r == nil {
		return nil
	}

	stops := make([]*ctdf.Stop, 0, len(r.stopOrder))
	for _, identifier := range r.stopOrder {
		stops = append(stops, r.stops[identifier])
	}

	return stops
}

func (r *Resolver) GetByID(identifier string) (*ctdf.Stop, bool) {
	if r == nil {
		return nil, false
	}

	stop, exists := r.stops[strings.TrimSpace(identifier)]
	return stop, exists
}

// FindBestID walks the match tiers in order (exact, key prefix, key substring, key inside query)
// and returns the first identifier registered under the first matching key.
func (r *Resolver) FindBestID(query string) (string, bool) {
	if r == nil {
		return "", false
	}

	normalised := Normalise(query)
	if normalised == "" {
		return "", false
	}

	if identifiers, exists := r.nameIndex[normalised]; exists && len(identifiers) > 0 {
		return identifiers[0], true
	}

	tiers := []func(key string) bool{
		func(key string) bool { return strings.HasPrefix(key, normalised) },
		func(key string) bool { return strings.Contains(key, normalised) },
		func(key string) bool {
			return utf8.RuneCountInString(key) > minimumReverseKeyLength && strings.Contains(normalised, key)
		},
	}

	for _, matches := range tiers {
		for _, key := range r.nameOrder {
			if matches(key) {
				return r.nameIndex[key][0], true
			}
		}
	}

	return "", false
}

// Resolve maps free text to a single stop
func (r *Resolver) Resolve(query string) (*ctdf.Stop, bool) {
	identifier, found := r.FindBestID(query)
	if !found {
		return nil, false
	}

	return r.GetByID(identifier)
}

func scoreKey(key string, normalisedQuery string, allowReverse bool) int {
	switch {
	case key == normalisedQuery:
		return ScoreExact
	case strings.HasPrefix(key, normalisedQuery):
		return ScorePrefix
	case strings.Contains(key, normalisedQuery):
		return ScoreSubstring
	case allowReverse && strings.Contains(normalisedQuery, key):
		return ScoreReverseSubstring
	default:
		return 0
	}
}

// Search returns up to limit stops ordered by their best match score
func (r *Resolver) Search(query string, limit int) []*ctdf.Stop {
	if r == nil || limit <= 0 {
		return []*ctdf.Stop{}
	}

	normalised := Normalise(query)
	if normalised == "" {
		return []*ctdf.Stop{}
	}
	allowReverse := utf8.RuneCountInString(normalised) > minimumReverseQueryLength

	type scoredStop struct {
		identifier string
		score      int
		order      int
	}
	best := map[string]*scoredStop{}
	var ranked []*scoredStop

	for _, key := range r.nameOrder {
		score := scoreKey(key, normalised, allowReverse)
		if score == 0 {
			continue
		}

		for _, identifier := range r.nameIndex[key] {
			if existing, seen := best[identifier]; seen {
				if score > existing.score {
					existing.score = score
				}
				continue
			}

			scored := &scoredStop{identifier: identifier, score: score, order: len(ranked)}
			best[identifier] = scored
			ranked = append(ranked, scored)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]*ctdf.Stop, 0, len(ranked))
	for _, scored := range ranked {
		results = append(results, r.stops[scored.identifier])
	}

	return results
}

// FindSimilar lists every stop whose name key equals, contains or is contained by the input.
// Used to spot duplicate or ambiguous catalog entries.
func (r *Resolver) FindSimilar(name string) []*ctdf.Stop {
	if r == nil {
		return []*ctdf.Stop{}
	}

	normalised := Normalise(name)
	if normalised == "" {
		return []*ctdf.Stop{}
	}

	seen := map[string]bool{}
	results := []*ctdf.Stop{}

	for _, key := range r.nameOrder {
		if key != normalised && !strings.Contains(key, normalised) && !strings.Contains(normalised, key) {
			continue
		}

		for _, identifier := range r.nameIndex[key] {
			if seen[identifier] {
				continue
			}
			seen[identifier] = true
			results = append(results, r.stops[identifier])
		}
	}

	return results
}
