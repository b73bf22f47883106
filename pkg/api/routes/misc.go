package routes

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/ybs/pkg/dataaggregator/source"
	"github.com/travigo/ybs/pkg/planner"
)

const defaultSearchLimit = 10

func errorResponse(c *fiber.Ctx, status int, message string) error {
	c.Status(status)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

func lookupErrorResponse(c *fiber.Ctx, err error, notFoundMessage string) error {
	if errors.Is(err, source.NotFoundError) {
		return errorResponse(c, fiber.StatusNotFound, notFoundMessage)
	}
	return errorResponse(c, fiber.StatusInternalServerError, err.Error())
}

func reducedJSON(c *fiber.Ctx, value interface{}, groups ...string) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)

	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Sherrif could not reduce response")
	}

	return c.JSON(reduced)
}

func viewGroups(c *fiber.Ctx) []string {
	if c.QueryBool("detailed", false) {
		return []string{"basic", "detailed"}
	}

	return []string{"basic"}
}

func getLimitQuery(c *fiber.Ctx) (int, error) {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit < 1 {
		return 0, errors.New("Parameter limit should be a positive integer")
	}

	return limit, nil
}

// getPlannerConfig overlays the planner query parameters on the base config
func getPlannerConfig(c *fiber.Ctx, base planner.Config) (planner.Config, error) {
	config := base

	if transfers := c.Query("transfers"); transfers != "" {
		value, err := strconv.Atoi(transfers)
		if err != nil {
			return config, errors.New("Parameter transfers should be an integer")
		}
		config.MaxTransfers = value
	}

	if count := c.Query("count"); count != "" {
		value, err := strconv.Atoi(count)
		if err != nil {
			return config, errors.New("Parameter count should be an integer")
		}
		config.MaxPaths = value
	}

	if maxDistance := c.Query("maxdistance"); maxDistance != "" {
		value, err := strconv.ParseFloat(maxDistance, 64)
		if err != nil {
			return config, errors.New("Parameter maxdistance should be a number")
		}
		config.MaxDistanceKm = value
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}
