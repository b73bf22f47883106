package routeindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/ybs/pkg/ctdf"
)

func TestRouteKey(t *testing.T) {
	tests := []struct {
		name     string
		record   ctdf.RouteRecord
		expected string
	}{
		{name: "route number first", record: ctdf.RouteRecord{RouteNumber: "36", RouteID: "ybs-36", File: "route_99.json"}, expected: "36"},
		{name: "route id second", record: ctdf.RouteRecord{RouteID: "ybs-36", File: "route_99.json"}, expected: "ybs-36"},
		{name: "file number third", record: ctdf.RouteRecord{File: "data/route_061.json"}, expected: "061"},
		{name: "unknown", record: ctdf.RouteRecord{File: "circular.json"}, expected: UnknownRouteKey},
		{name: "blank number ignored", record: ctdf.RouteRecord{RouteNumber: "  ", RouteID: "7"}, expected: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RouteKey(tt.record))
		})
	}
}
