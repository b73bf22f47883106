package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ybs/pkg/ctdf"
	"github.com/travigo/ybs/pkg/dataaggregator"
	"github.com/travigo/ybs/pkg/dataaggregator/query"
)

func ServicesRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/hubs", getTransferHubs(aggregator))
	router.Get("/:key", getService(aggregator))
	router.Get("/:a/common/:b", getCommonStops(aggregator))
}

func getService(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		route, err := dataaggregator.Lookup[*ctdf.Route](aggregator, query.Route{
			Key: c.Params("key"),
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find Service matching Service Key")
		}

		return reducedJSON(c, route, "basic", "detailed")
	}
}

func getCommonStops(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stops, err := dataaggregator.Lookup[[]*ctdf.Stop](aggregator, query.CommonStops{
			RouteA: c.Params("a"),
			RouteB: c.Params("b"),
		})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find common Stops")
		}

		return reducedJSON(c, stops, viewGroups(c)...)
	}
}

func getTransferHubs(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stops, err := dataaggregator.Lookup[[]*ctdf.Stop](aggregator, query.TransferHubs{})
		if err != nil {
			return lookupErrorResponse(c, err, "Could not find transfer hubs")
		}

		return reducedJSON(c, stops, viewGroups(c)...)
	}
}
