package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/dataaggregator"
	"github.com/travigo/ybs/pkg/dataaggregator/query"
)

func StopsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/search", searchStops(aggregator))
	router.Get("/resolve", resolveStop(aggregator))
	router.Get("/similar", similarStops(aggregator))
	router.Get("/:identifier", getStop(aggregator))
	router.Get("/:identifier/services", getStopServices(aggregator))
}

func searchStops(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := c.Query("q")
		if text == "" {
			return errorResponse(c, fiber.StatusBadRequest, "Parameter q must be set")
		}

		limit, err := getLimitQuery(c)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		stops, err := dataaggregator.Lookup[[]*ctdf.Stop](aggregator, query.StopSearch{
			Text:  text,
			Limit: limit,
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not search Stops")
		}

		return reducedJSON(c, stops, viewGroups(c)...)
	}
}

func resolveStop(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := c.Query("q")
		if text == "" {
			return errorResponse(c, fiber.StatusBadRequest, "Parameter q must be set")
		}

		stop, err := dataaggregator.Lookup[*ctdf.Stop](aggregator, query.StopResolve{
			Text: text,
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find Stop matching the name")
		}

		return reducedJSON(c, stop, viewGroups(c)...)
	}
}

func similarStops(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("q")
		if name == "" {
			return errorResponse(c, fiber.StatusBadRequest, "Parameter q must be set")
		}

		stops, err := dataaggregator.Lookup[[]*ctdf.Stop](aggregator, query.SimilarStops{
			Name: name,
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find similar Stops")
		}

		return reducedJSON(c, stops, viewGroups(c)...)
	}
}

func getStop(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stop, err := dataaggregator.Lookup[*ctdf.Stop](aggregator, query.Stop{
			Identifier: c.Params("identifier"),
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find Stop matching Stop Identifier")
		}

		return reducedJSON(c, stop, viewGroups(c)...)
	}
}

func getStopServices(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		routes, err := dataaggregator.Lookup[[]*ctdf.Route](aggregator, query.ServicesByStop{
			StopIdentifier: c.Params("identifier"),
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find Stop matching Stop Identifier")
		}

		return reducedJSON(c, routes, viewGroups(c)...)
	}
}
