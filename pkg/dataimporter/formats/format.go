package formats

import (
	"io"

	"github.com/travigo/ybs/pkg/ctdf"
)

type StopsFormat interface {
	ParseStops(io.Reader) ([]ctdf.StopRecord, error)
}

type RoutesFormat interface {
	// fileName feeds route key derivation for records without a number or id
	ParseRoutes(reader io.Reader, fileName string) ([]ctdf.RouteRecord, error)
}
