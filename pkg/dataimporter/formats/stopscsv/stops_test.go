package stopscsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStops(t *testing.T) {
	catalog := "id,name_en,name_mm,lat,lng,road_en,township_en\n" +
		"0012,Hledan,လှည်းတန်း,16.8236,96.1296,Insein Road,Kamayut\n" +
		"30,Sule,ဆူးလေ,16.7745,96.1588,Sule Pagoda Road,Kyauktada\n"

	records, err := Stops{}.ParseStops(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "0012", records[0].Identifier)
	assert.Equal(t, "Hledan", records[0].NameEN)
	assert.InDelta(t, 16.8236, records[0].Latitude, 0.000001)
	assert.Equal(t, "Kyauktada", records[1].Township)
}
