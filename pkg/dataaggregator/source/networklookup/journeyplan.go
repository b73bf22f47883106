package networklookup

import (
	"context"

	"github.com/travigo/ybs/pkg/dataaggregator/query"
)

func (s Source) JourneyPlanQuery(q query.JourneyPlan) (interface{}, error) {
	ctx := q.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return s.Network.FindPaths(ctx, q.OriginIdentifier, q.DestinationIdentifier, q.Config), nil
}
