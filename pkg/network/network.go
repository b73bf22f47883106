package network

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/planner"
	"github.com/travigo/ybs/pkg/routeindex"
	"github.com/travigo/ybs/pkg/stopresolver"
)

// Network is the live stop catalog and route index. Queries share it under a read lock,
// replacing either catalog takes the write lock so no query sees a half built index.
type Network struct {
	mu sync.RWMutex

	resolver *stopresolver.Resolver
	index    *routeindex.Index
	planner  *planner.Planner

	DatasetIdentifier string
	LoadedAt          time.Time
}

func New() *Network {
	n := &Network{}
	n.Swap("", stopresolver.New(), routeindex.New())

	return n
}

func (n *Network) Swap(datasetIdentifier string, resolver *stopresolver.Resolver, index *routeindex.Index) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.resolver = resolver
	n.index = index
	n.planner = planner.New(resolver, index)
	n.DatasetIdentifier = datasetIdentifier
	n.LoadedAt = time.Now()

	log.Info().
		Str("dataset", datasetIdentifier).
		Int("stops", resolver.Len()).
		Bool("ready", index.Ready()).
		Msg("Swapped in network")
}

type Stats struct {
	Dataset  string
	LoadedAt time.Time
	Stops    int
	Ready    bool
	Routes   routeindex.BuildStats
}

func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Stats{
		Dataset:  n.DatasetIdentifier,
		LoadedAt: n.LoadedAt,
		Stops:    n.resolver.Len(),
		Ready:    n.index.Ready(),
		Routes:   n.index.Stats(),
	}
}

func (n *Network) Stops() []*ctdf.Stop {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.resolver.Stops()
}

func (n *Network) Routes() []*ctdf.Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.index.Routes()
}

func (n *Network) GetStop(identifier string) (*ctdf.Stop, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.resolver.GetByID(identifier)
}

func (n *Network) ResolveStop(text string) (*ctdf.Stop, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.resolver.Resolve(text)
}

func (n *Network) SearchStops(text string, limit int) []*ctdf.Stop {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.resolver.Search(text, limit)
}

func (n *Network) SimilarStops(name string) []*ctdf.Stop {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.resolver.FindSimilar(name)
}

func (n *Network) RoutesForStop(stopID string) []*ctdf.Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	routes := []*ctdf.Route{}
	for _, routeKey := range n.index.RoutesFor(stopID) {
		if route, found := n.index.RouteData(routeKey); found {
			routes = append(routes, route)
		} else {
			// Snapshot imports carry keys without the route catalog
			routes = append(routes, &ctdf.Route{Key: routeKey})
		}
	}

	return routes
}

func (n *Network) Route(routeKey string) (*ctdf.Route, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.index.RouteData(routeKey)
}

func (n *Network) TransferHubs() []*ctdf.Stop {
	n.mu.RLock()
	defer n.mu.RUnlock()

	hubs := []*ctdf.Stop{}
	for _, stopID := range n.index.TransferHubs() {
		if stop, found := n.resolver.GetByID(stopID); found {
			hubs = append(hubs, stop)
		}
	}

	return hubs
}

func (n *Network) IsTransferHub(stopID string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.index.IsTransferHub(stopID)
}

func (n *Network) CommonStops(routeKeyA string, routeKeyB string) []*ctdf.Stop {
	n.mu.RLock()
	defer n.mu.RUnlock()

	stops := []*ctdf.Stop{}
	for _, stopID := range n.index.CommonStops(routeKeyA, routeKeyB) {
		if stop, found := n.resolver.GetByID(stopID); found {
			stops = append(stops, stop)
		}
	}

	return stops
}

func (n *Network) FindPaths(ctx context.Context, originID string, destinationID string, config planner.Config) []*ctdf.Path {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.planner.FindPaths(ctx, originID, destinationID, config)
}

func (n *Network) BatchFindPaths(ctx context.Context, requests []planner.Request, config planner.Config) []planner.Result {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.planner.BatchFindPaths(ctx, requests, config)
}

func (n *Network) ExportSnapshot() *routeindex.Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.index.ExportSnapshot()
}

// ImportSnapshot replaces the derived route mappings, exclusive like a swap
func (n *Network) ImportSnapshot(snapshot *routeindex.Snapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.index.ImportSnapshot(snapshot)
	n.LoadedAt = time.Now()
}
