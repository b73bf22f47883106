package networklookup

import (
	"github.com/travigo/ybs/pkg/dataaggregator/query"
	"github.com/travigo/ybs/pkg/dataaggregator/source"
)

const defaultSearchLimit = 10

func (s Source) StopQuery(q query.Stop) (interface{}, error) {
	stop, found := s.Network.GetStop(q.Identifier)
	if !found {
		return nil, source.NotFoundError
	}

	return stop, nil
}

func (s Source) StopResolveQuery(q query.StopResolve) (interface{}, error) {
	stop, found := s.Network.ResolveStop(q.Text)
	if !found {
		return nil, source.NotFoundError
	}

	return stop, nil
}

func (s Source) StopSearchQuery(q query.StopSearch) (interface{}, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	return s.Network.SearchStops(q.Text, limit), nil
}
