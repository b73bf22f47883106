package planner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
)

type StopLookup interface {
	GetByID(identifier string) (*ctdf.Stop, bool)
}

type RouteLookup interface {
	Ready() bool
	RoutesFor(stopID string) []string
	RouteData(routeKey string) (*ctdf.Route, bool)
}

type Planner struct {
	stops  StopLookup
	routes RouteLookup

	now func() time.Time
}

func New(stops StopLookup, routes RouteLookup) *Planner {
	return &Planner{
		stops:  stops,
		routes: routes,
		now:    time.Now,
	}
}

type legRef struct {
	routeKey       string
	boardPosition  int
	alightPosition int
}

type searchState struct {
	stopID   string
	routeKey string
	position int

	boardPosition int

	legs      []legRef
	visited   map[string]struct{}
	transfers int
}

type stateKey struct {
	stopID   string
	routeKey string
}

// FindPaths explores the network breadth first from the origin and returns the ranked itineraries
// that reach the destination within the transfer budget. Invalid input, unreachable destinations and
// exhausted budgets all produce an empty or partial list, never an error.
func (p *Planner) FindPaths(ctx context.Context, originID string, destinationID string, config Config) []*ctdf.Path {
	config = config.withDefaults()

	if originID == "" || destinationID == "" || originID == destinationID {
		return []*ctdf.Path{}
	}
	if _, found := p.stops.GetByID(originID); !found {
		return []*ctdf.Path{}
	}
	if _, found := p.stops.GetByID(destinationID); !found {
		return []*ctdf.Path{}
	}
	if !p.routes.Ready() {
		log.Debug().Msg("Route index not ready, skipping path search")
		return []*ctdf.Path{}
	}

	var queue []*searchState
	for _, routeKey := range p.routes.RoutesFor(originID) {
		route, found := p.routes.RouteData(routeKey)
		if !found {
			continue
		}

		position := route.StopIndex(originID)
		if position < 0 {
			continue
		}

		queue = append(queue, &searchState{
			stopID:        originID,
			routeKey:      routeKey,
			position:      position,
			boardPosition: position,
			visited:       map[string]struct{}{originID: {}},
		})
	}
	if len(queue) == 0 {
		return []*ctdf.Path{}
	}

	bestTransfers := map[stateKey]int{}
	seenPaths := map[string]bool{}
	var candidates []*ctdf.Path

	startTime := p.now()
	iterations := 0

	for head := 0; head < len(queue); head++ {
		if iterations >= config.MaxIterations {
			log.Debug().Int("iterations", iterations).Int("candidates", len(candidates)).Msg("Path search iteration cap reached")
			break
		}
		if p.now().Sub(startTime) > config.TimeBudget {
			log.Debug().Int("iterations", iterations).Int("candidates", len(candidates)).Msg("Path search time budget exceeded")
			break
		}
		if ctx.Err() != nil {
			break
		}
		iterations++

		state := queue[head]
		queue[head] = nil

		route, found := p.routes.RouteData(state.routeKey)
		if !found {
			continue
		}

		for next := state.position + 1; next < len(route.Stops); next++ {
			stopID := route.Stops[next]
			currentLeg := legRef{routeKey: state.routeKey, boardPosition: state.boardPosition, alightPosition: next}

			if stopID == destinationID {
				path := p.materialisePath(append(copyLegs(state.legs), currentLeg))
				if signature := path.Signature(); !seenPaths[signature] {
					seenPaths[signature] = true
					candidates = append(candidates, path)
				}
				continue
			}

			key := stateKey{stopID: stopID, routeKey: state.routeKey}
			if best, reached := bestTransfers[key]; reached && best <= state.transfers {
				continue
			}
			bestTransfers[key] = state.transfers

			// Stay on the same vehicle
			if _, visited := state.visited[stopID]; !visited {
				visitedOnChain := make(map[string]struct{}, len(state.visited)+1)
				for visitedStop := range state.visited {
					visitedOnChain[visitedStop] = struct{}{}
				}
				visitedOnChain[stopID] = struct{}{}

				queue = append(queue, &searchState{
					stopID:        stopID,
					routeKey:      state.routeKey,
					position:      next,
					boardPosition: state.boardPosition,
					legs:          state.legs,
					visited:       visitedOnChain,
					transfers:     state.transfers,
				})
			}

			if state.transfers >= config.MaxTransfers {
				continue
			}

			// Change onto every other route serving this stop
			for _, transferRouteKey := range p.routes.RoutesFor(stopID) {
				if transferRouteKey == state.routeKey {
					continue
				}

				transferRoute, found := p.routes.RouteData(transferRouteKey)
				if !found {
					continue
				}
				position := transferRoute.StopIndex(stopID)
				if position < 0 || position == len(transferRoute.Stops)-1 {
					continue
				}

				queue = append(queue, &searchState{
					stopID:        stopID,
					routeKey:      transferRouteKey,
					position:      position,
					boardPosition: position,
					legs:          append(copyLegs(state.legs), currentLeg),
					visited:       map[string]struct{}{stopID: {}},
					transfers:     state.transfers + 1,
				})
			}
		}
	}

	log.Debug().
		Str("origin", originID).
		Str("destination", destinationID).
		Int("iterations", iterations).
		Int("candidates", len(candidates)).
		Str("duration", p.now().Sub(startTime).String()).
		Msg("Path search finished")

	return Rank(candidates, config.MaxPaths)
}

func copyLegs(legs []legRef) []legRef {
	copied := make([]legRef, len(legs), len(legs)+1)
	copy(copied, legs)

	return copied
}
