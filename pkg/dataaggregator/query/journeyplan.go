package query

import (
	"context"

	"github.com/travigo/ybs/pkg/planner"
)

type JourneyPlan struct {
	Context context.Context

	OriginIdentifier      string
	DestinationIdentifier string

	Config planner.Config
}
