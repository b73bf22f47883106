package networklookup

import (
	"reflect"

	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/dataaggregator/query"
	"github.com/travigo/ybs/pkg/dataaggregator/source"
	"github.com/travigo/ybs/pkg/network"
)

// Source answers queries from the in memory network
type Source struct {
	Network *network.Network
}

func (s Source) GetName() string {
	return "Network Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Stop{}),
		reflect.TypeOf([]*ctdf.Stop{}),
		reflect.TypeOf(ctdf.Route{}),
		reflect.TypeOf([]*ctdf.Route{}),
		reflect.TypeOf([]*ctdf.Path{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Stop:
		return s.StopQuery(q)
	case query.StopResolve:
		return s.StopResolveQuery(q)
	case query.StopSearch:
		return s.StopSearchQuery(q)
	case query.SimilarStops:
		return s.Network.SimilarStops(q.Name), nil
	case query.TransferHubs:
		return s.Network.TransferHubs(), nil
	case query.Route:
		return s.RouteQuery(q)
	case query.ServicesByStop:
		return s.ServicesByStopQuery(q)
	case query.CommonStops:
		return s.Network.CommonStops(q.RouteA, q.RouteB), nil
	case query.JourneyPlan:
		return s.JourneyPlanQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
