package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/dataaggregator"
	"github.com/travigo/ybs/pkg/dataaggregator/query"
	"github.com/travigo/ybs/pkg/planner"
)

func PlannerRouter(router fiber.Router, aggregator *dataaggregator.Aggregator, baseConfig planner.Config) {
	router.Get("/search", getPlanBetweenNames(aggregator, baseConfig))
	router.Get("/:origin/:destination", getPlanBetweenStops(aggregator, baseConfig))
}

func getPlanBetweenStops(aggregator *dataaggregator.Aggregator, baseConfig planner.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		config, err := getPlannerConfig(c, baseConfig)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		originStop, err := dataaggregator.Lookup[*ctdf.Stop](aggregator, query.Stop{
			Identifier: c.Params("origin"),
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find origin Stop")
		}
		destinationStop, err := dataaggregator.Lookup[*ctdf.Stop](aggregator, query.Stop{
			Identifier: c.Params("destination"),
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find destination Stop")
		}

		return planResponse(c, aggregator, originStop, destinationStop, config)
	}
}

func getPlanBetweenNames(aggregator *dataaggregator.Aggregator, baseConfig planner.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := c.Query("from")
		to := c.Query("to")
		if from == "" || to == "" {
			return errorResponse(c, fiber.StatusBadRequest, "Parameters from and to must be set")
		}

		config, err := getPlannerConfig(c, baseConfig)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		originStop, err := dataaggregator.Lookup[*ctdf.Stop](aggregator, query.StopResolve{Text: from})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find origin Stop matching the name")
		}
		destinationStop, err := dataaggregator.Lookup[*ctdf.Stop](aggregator, query.StopResolve{Text: to})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find destination Stop matching the name")
		}

		return planResponse(c, aggregator, originStop, destinationStop, config)
	}
}

func planResponse(c *fiber.Ctx, aggregator *dataaggregator.Aggregator, originStop *ctdf.Stop, destinationStop *ctdf.Stop, config planner.Config) error {
	paths, err := dataaggregator.Lookup[[]*ctdf.Path](aggregator, query.JourneyPlan{
		Context:               c.UserContext(),
		OriginIdentifier:      originStop.Identifier,
		DestinationIdentifier: destinationStop.Identifier,
		Config:                config,
	})
	if err != nil {
		return lookupErrorResponse(c, err, "Could not plan journey")
	}

	if c.Query("maxdistance") != "" {
		paths = planner.FilterByDistance(paths, config.MaxDistanceKm)
	}
	if paths == nil {
		paths = []*ctdf.Path{}
	}

	return reducedJSON(c, paths, viewGroups(c)...)
}
