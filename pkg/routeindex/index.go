package routeindex

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"golang.org/x/exp/maps"
)

// Stops served by at least this many routes are transfer hubs
const TransferHubThreshold = 3

type BuildStats struct {
	Routes       int
	Skipped      int
	Collisions   int
	IndexedStops int
	TransferHubs int
}

// Index owns the route catalog and the stop -> routes inversion of it.
// It is read-only once Build or ImportSnapshot has returned.
type Index struct {
	routes map[string]*ctdf.Route

	stopRoutes   map[string]map[string]struct{}
	transferHubs map[string]struct{}

	buildStats BuildStats
}

func New() *Index {
	return &Index{
		routes:       map[string]*ctdf.Route{},
		stopRoutes:   map[string]map[string]struct{}{},
		transferHubs: map[string]struct{}{},
	}
}

func (i *Index) Build(records []ctdf.RouteRecord) BuildStats {
	stats := i.LoadCatalog(records)

	// Inverted after all routes are known so a replaced route leaves nothing behind
	stopRoutes := map[string]map[string]struct{}{}
	for routeKey, route := range i.routes {
		for _, stopID := range route.Stops {
			if stopRoutes[stopID] == nil {
				stopRoutes[stopID] = map[string]struct{}{}
			}
			stopRoutes[stopID][routeKey] = struct{}{}
		}
	}

	i.stopRoutes = stopRoutes
	i.transferHubs = findTransferHubs(stopRoutes)

	stats.IndexedStops = len(stopRoutes)
	stats.TransferHubs = len(i.transferHubs)
	i.buildStats = stats

	log.Info().
		Int("routes", stats.Routes).
		Int("skipped", stats.Skipped).
		Int("stops", stats.IndexedStops).
		Int("hubs", stats.TransferHubs).
		Msg("Built route index")

	return stats
}

// LoadCatalog replaces the route catalog without deriving the stop mappings, which are left
// empty until Build or ImportSnapshot provides them.
func (i *Index) LoadCatalog(records []ctdf.RouteRecord) BuildStats {
	stats := BuildStats{}

	routes := map[string]*ctdf.Route{}

	for _, record := range records {
		routeKey := RouteKey(record)

		var stops []string
		for _, stopID := range record.Stops {
			if stopID = strings.TrimSpace(stopID); stopID != "" {
				stops = append(stops, stopID)
			}
		}

		if len(stops) == 0 {
			log.Warn().Str("route", routeKey).Str("file", record.File).Msg("Skipping route without stops")
			stats.Skipped++
			continue
		}

		if _, exists := routes[routeKey]; exists {
			log.Warn().Str("route", routeKey).Msg("Duplicate route key, replacing earlier route")
			stats.Collisions++
		}

		routes[routeKey] = &ctdf.Route{
			Key:    routeKey,
			Name:   record.Name,
			Colour: record.Colour,
			Stops:  stops,
		}
	}

	i.routes = routes
	i.stopRoutes = map[string]map[string]struct{}{}
	i.transferHubs = map[string]struct{}{}

	stats.Routes = len(routes)
	i.buildStats = stats

	return stats
}

func findTransferHubs(stopRoutes map[string]map[string]struct{}) map[string]struct{} {
	transferHubs := map[string]struct{}{}

	for stopID, routeKeys := range stopRoutes {
		if len(routeKeys) >= TransferHubThreshold {
			transferHubs[stopID] = struct{}{}
		}
	}

	return transferHubs
}

// Ready reports whether the index has any stop entries to answer queries with
func (i *Index) Ready() bool {
	return i != nil && len(i.stopRoutes) > 0
}

// RoutesFor lists the route keys serving a stop, sorted
func (i *Index) RoutesFor(stopID string) []string {
	if i == nil {
		return []string{}
	}

	routeKeys := maps.Keys(i.stopRoutes[stopID])
	sort.Strings(routeKeys)

	return routeKeys
}

func (i *Index) ServesStop(routeKey string, stopID string) bool {
	if i == nil {
		return false
	}

	_, serves := i.stopRoutes[stopID][routeKey]
	return serves
}

func (i *Index) RouteData(routeKey string) (*ctdf.Route, bool) {
	if i == nil {
		return nil, false
	}

	route, exists := i.routes[routeKey]
	return route, exists
}

// Routes returns the catalog sorted by key
func (i *Index) Routes() []*ctdf.Route {
	if i == nil {
		return nil
	}

	routeKeys := maps.Keys(i.routes)
	sort.Strings(routeKeys)

	routes := make([]*ctdf.Route, 0, len(routeKeys))
	for _, routeKey := range routeKeys {
		routes = append(routes, i.routes[routeKey])
	}

	return routes
}

func (i *Index) IsTransferHub(stopID string) bool {
	if i == nil {
		return false
	}

	_, isHub := i.transferHubs[stopID]
	return isHub
}

func (i *Index) TransferHubs() []string {
	if i == nil {
		return []string{}
	}

	hubs := maps.Keys(i.transferHubs)
	sort.Strings(hubs)

	return hubs
}

// CommonStops lists the stops shared by two routes in the order they appear on the first
func (i *Index) CommonStops(routeKeyA string, routeKeyB string) []string {
	routeA, foundA := i.RouteData(routeKeyA)
	routeB, foundB := i.RouteData(routeKeyB)
	if !foundA || !foundB {
		return []string{}
	}

	onRouteB := make(map[string]struct{}, len(routeB.Stops))
	for _, stopID := range routeB.Stops {
		onRouteB[stopID] = struct{}{}
	}

	common := []string{}
	seen := map[string]bool{}
	for _, stopID := range routeA.Stops {
		if _, shared := onRouteB[stopID]; shared && !seen[stopID] {
			seen[stopID] = true
			common = append(common, stopID)
		}
	}

	return common
}

func (i *Index) Stats() BuildStats {
	if i == nil {
		return BuildStats{}
	}

	stats := i.buildStats
	stats.Routes = len(i.routes)
	stats.IndexedStops = len(i.stopRoutes)
	stats.TransferHubs = len(i.transferHubs)

	return stats
}
