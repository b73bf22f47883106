package routeindex

import (
	"regexp"
	"strings"

	"github.com/travigo/ybs/pkg/ctdf"
)

const UnknownRouteKey = "unknown"

var fileNumberRegex = regexp.MustCompile(`\d+`)

// RouteKey derives the index key for a route: explicit route number, then route id,
// then the first number in the source file name.
func RouteKey(record ctdf.RouteRecord) string {
	if routeNumber := strings.TrimSpace(record.RouteNumber); routeNumber != "" {
		return routeNumber
	}

	if routeID := strings.TrimSpace(record.RouteID); routeID != "" {
		return routeID
	}

	if fileNumber := fileNumberRegex.FindString(record.File); fileNumber != "" {
		return fileNumber
	}

	return UnknownRouteKey
}
