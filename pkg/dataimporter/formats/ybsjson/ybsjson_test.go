package ybsjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStopsObjectKeepsOrderAndIdentifiers(t *testing.T) {
	catalog := `{
		"0012": {"name_en": "Hledan", "name_mm": "လှည်းတန်း", "lat": "16.8236", "lng": 96.1296, "road_en": "Insein Road"},
		"12": {"name_en": "Hledan Market", "lat": 16.8241, "lng": 96.131},
		"7": {"name_en": 7},
		"30": {"name_en": "Sule", "township_en": "Kyauktada"}
	}`

	records, err := Stops{}.ParseStops(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "0012", records[0].Identifier)
	assert.Equal(t, "လှည်းတန်း", records[0].NameMM)
	assert.InDelta(t, 16.8236, records[0].Latitude, 0.000001)
	assert.InDelta(t, 96.1296, records[0].Longitude, 0.000001)
	assert.Equal(t, "12", records[1].Identifier)
	assert.Equal(t, "30", records[2].Identifier)
	assert.Equal(t, "Kyauktada", records[2].Township)
}

func TestParseStopsArray(t *testing.T) {
	catalog := `[{"id": 12, "name_en": "Hledan Market"}, {"id": "0012", "name_en": "Hledan"}]`

	records, err := Stops{}.ParseStops(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "12", records[0].Identifier)
	assert.Equal(t, "0012", records[1].Identifier)
}

func TestParseStopsRejectsOtherDocuments(t *testing.T) {
	_, err := Stops{}.ParseStops(strings.NewReader(`"stops"`))
	assert.Error(t, err)
}

func TestParseRoutesArray(t *testing.T) {
	routes := `[
		{"route_number": 36, "name": "Hledan - Sule", "color": "#e53935", "stops": [12, "0012", "30"]},
		{"route_id": "ybs-61", "stops": "not a list"},
		{"stops": ["1", "2"]}
	]`

	records, err := Routes{}.ParseRoutes(strings.NewReader(routes), "routes.json")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "36", records[0].RouteNumber)
	assert.Equal(t, "#e53935", records[0].Colour)
	assert.Equal(t, []string{"12", "0012", "30"}, records[0].Stops)
	assert.Equal(t, "routes.json", records[1].File)
}

func TestParseRoutesSingleObject(t *testing.T) {
	records, err := Routes{}.ParseRoutes(strings.NewReader(`{"stops": ["1", "2"]}`), "route_61.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "route_61.json", records[0].File)
	assert.Empty(t, records[0].RouteNumber)
}
