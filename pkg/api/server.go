package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ybs/pkg/api/routes"
	"github.com/travigo/ybs/pkg/dataaggregator"
	"github.com/travigo/ybs/pkg/planner"
)

func NewApp(aggregator *dataaggregator.Aggregator, plannerConfig planner.Config) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StopsRouter(group.Group("/stops"), aggregator)

	routes.ServicesRouter(group.Group("/services"), aggregator)

	routes.PlannerRouter(group.Group("/planner"), aggregator, plannerConfig)

	return webApp
}

func SetupServer(listen string, aggregator *dataaggregator.Aggregator, plannerConfig planner.Config) error {
	return NewApp(aggregator, plannerConfig).Listen(listen)
}
