package planner

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/util"
)

// Straight line distance underestimates the road network
const RoadDetourFactor = 1.2

func (p *Planner) legStop(stopID string) ctdf.LegStop {
	legStop := ctdf.LegStop{Identifier: stopID}

	stop, found := p.stops.GetByID(stopID)
	if !found {
		return legStop
	}

	if err := copier.Copy(&legStop, stop); err != nil {
		log.Error().Err(err).Str("stop", stopID).Msg("Failed to copy stop into leg")
	}

	return legStop
}

func (p *Planner) materialiseLeg(ref legRef) ctdf.Leg {
	route, _ := p.routes.RouteData(ref.routeKey)

	leg := ctdf.Leg{
		RouteKey:    route.Key,
		RouteName:   route.Name,
		RouteColour: route.Colour,
		StopCount:   ref.alightPosition - ref.boardPosition,
	}

	for _, stopID := range route.Stops[ref.boardPosition : ref.alightPosition+1] {
		leg.Stops = append(leg.Stops, p.legStop(stopID))
	}
	leg.BoardStop = leg.Stops[0]
	leg.AlightStop = leg.Stops[len(leg.Stops)-1]

	leg.DistanceKm = util.RoundTo(leg.BoardStop.Location.DistanceTo(leg.AlightStop.Location)*RoadDetourFactor, 2)

	return leg
}

func (p *Planner) materialisePath(refs []legRef) *ctdf.Path {
	path := &ctdf.Path{}

	for _, ref := range refs {
		leg := p.materialiseLeg(ref)

		path.Legs = append(path.Legs, leg)
		path.TotalStops += leg.StopCount
		path.TotalDistanceKm += leg.DistanceKm
	}

	path.TransferCount = len(path.Legs) - 1
	path.TotalDistanceKm = util.RoundTo(path.TotalDistanceKm, 2)

	return path
}
