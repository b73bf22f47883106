package networklookup

import (
	"github.com/travigo/ybs/pkg/dataaggregator/query"
	"github.com/travigo/ybs/pkg/dataaggregator/source"
)

func (s Source) RouteQuery(q query.Route) (interface{}, error) {
	route, found := s.Network.Route(q.Key)
	if !found {
		return nil, source.NotFoundError
	}

	return route, nil
}

func (s Source) ServicesByStopQuery(q query.ServicesByStop) (interface{}, error) {
	if _, found := s.Network.GetStop(q.StopIdentifier); !found {
		return nil, source.NotFoundError
	}

	return s.Network.RoutesForStop(q.StopIdentifier), nil
}
