package routeindex

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Snapshot carries the derived mappings only, the route catalog is not part of it
type Snapshot struct {
	GeneratedAt time.Time

	StopRoutes   map[string][]string
	TransferHubs []string
}

func (i *Index) ExportSnapshot() *Snapshot {
	snapshot := &Snapshot{
		GeneratedAt:  time.Now().UTC(),
		StopRoutes:   map[string][]string{},
		TransferHubs: i.TransferHubs(),
	}

	if i == nil {
		return snapshot
	}

	for stopID := range i.stopRoutes {
		snapshot.StopRoutes[stopID] = i.RoutesFor(stopID)
	}

	return snapshot
}

// ImportSnapshot replaces the stop -> routes mapping and transfer hubs wholesale
func (i *Index) ImportSnapshot(snapshot *Snapshot) {
	stopRoutes := map[string]map[string]struct{}{}
	transferHubs := map[string]struct{}{}

	if snapshot != nil {
		for stopID, routeKeys := range snapshot.StopRoutes {
			routeSet := map[string]struct{}{}
			for _, routeKey := range routeKeys {
				routeSet[routeKey] = struct{}{}
			}
			stopRoutes[stopID] = routeSet
		}

		for _, stopID := range snapshot.TransferHubs {
			transferHubs[stopID] = struct{}{}
		}
	}

	i.stopRoutes = stopRoutes
	i.transferHubs = transferHubs

	event := log.Info().Int("stops", len(stopRoutes)).Int("hubs", len(transferHubs))
	if snapshot != nil {
		event = event.Time("generated", snapshot.GeneratedAt)
	}
	event.Msg("Imported route index snapshot")
}
