package stopresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ybs/pkg/ctdf"
)

func testRecords() []ctdf.StopRecord {
	return []ctdf.StopRecord{
		{Identifier: "0012", NameEN: "Hledan", NameMM: "လှည်းတန်း", Road: "Insein Road", Latitude: 16.8236, Longitude: 96.1296},
		{Identifier: "12", NameEN: "Hledan Market", Road: "Pyay Road", Latitude: 16.8241, Longitude: 96.1310},
		{Identifier: "30", NameEN: "Sule", NameMM: "ဆူးလေ", Road: "Sule Pagoda Road", Latitude: 16.7745, Longitude: 96.1588},
		{Identifier: "31", NameEN: "Sule Pagoda (East)", Latitude: 16.7750, Longitude: 96.1595},
		{Identifier: "40", NameEN: "", Road: "Nameless Road"},
		{Identifier: "50", NameEN: "Kyauktada", Township: "Kyauktada", Latitude: 16.7760, Longitude: 96.1650},
	}
}

func testResolver(t *testing.T) *Resolver {
	t.Helper()

	resolver := New()
	stats := resolver.Load(testRecords())
	require.Equal(t, 5, stats.Loaded)
	require.Equal(t, 1, stats.Skipped)

	return resolver
}

func TestLoadSkipsStopsWithoutEnglishName(t *testing.T) {
	resolver := testResolver(t)

	_, found := resolver.GetByID("40")
	assert.False(t, found)
	assert.Empty(t, resolver.FindSimilar("Nameless Road"))
	assert.Equal(t, 5, resolver.Len())
}

func TestGetByIDComparesOpaqueStrings(t *testing.T) {
	resolver := testResolver(t)

	stop, found := resolver.GetByID("0012")
	require.True(t, found)
	assert.Equal(t, "Hledan", stop.PrimaryName)
	assert.Equal(t, "လှည်းတန်း", stop.MyanmarName())

	stop, found = resolver.GetByID("12")
	require.True(t, found)
	assert.Equal(t, "Hledan Market", stop.PrimaryName)

	_, found = resolver.GetByID("missing")
	assert.False(t, found)
}

func TestEveryStopResolvesByItsNormalisedName(t *testing.T) {
	resolver := testResolver(t)

	for _, stop := range resolver.Stops() {
		identifier, found := resolver.FindBestID(Normalise(stop.PrimaryName))
		require.True(t, found, stop.PrimaryName)

		resolved, _ := resolver.GetByID(identifier)
		assert.Equal(t, Normalise(stop.PrimaryName), Normalise(resolved.PrimaryName))
	}
}

func TestSpacedPunctuationNamesResolve(t *testing.T) {
	resolver := New()
	resolver.Load([]ctdf.StopRecord{
		{Identifier: "70", NameEN: "Thamaing - Junction"},
		{Identifier: "71", NameEN: "Hledan / Pyay Road (North)"},
	})

	for _, name := range []string{"Thamaing - Junction", Normalise("Thamaing - Junction"), "Thamaing Junction", "thamaing junction"} {
		identifier, found := resolver.FindBestID(name)
		require.True(t, found, name)
		assert.Equal(t, "70", identifier, name)
	}

	identifier, found := resolver.FindBestID(Normalise("Hledan / Pyay Road (North)"))
	require.True(t, found)
	assert.Equal(t, "71", identifier)

	results := resolver.Search("thamaing junction", 5)
	require.Len(t, results, 1)
	assert.Equal(t, "70", results[0].Identifier)

	similar := resolver.FindSimilar("Thamaing Junction")
	require.Len(t, similar, 1)
	assert.Equal(t, "70", similar[0].Identifier)
}

func TestLoadTrimsIdentifiers(t *testing.T) {
	resolver := New()
	stats := resolver.Load([]ctdf.StopRecord{
		{Identifier: " 77 ", NameEN: "Insein"},
		{Identifier: "   ", NameEN: "Blank"},
	})
	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, 1, stats.Skipped)

	stop, found := resolver.GetByID("77")
	require.True(t, found)
	assert.Equal(t, "77", stop.Identifier)
	assert.Equal(t, "77", resolver.Stops()[0].Identifier)
}

func TestFindBestIDTiers(t *testing.T) {
	resolver := testResolver(t)

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "exact", query: "HLEDAN", expected: "0012"},
		{name: "exact myanmar", query: "ဆူးလေ", expected: "30"},
		{name: "exact road", query: "pyay road", expected: "12"},
		{name: "prefix earliest inserted", query: "hled", expected: "0012"},
		{name: "prefix", query: "Hledan Mar", expected: "12"},
		{name: "substring", query: "market", expected: "12"},
		{name: "reverse substring", query: "bus stop at kyauktada please", expected: "50"},
		{name: "punctuation ignored", query: "Sule Pagoda East", expected: "31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifier, found := resolver.FindBestID(tt.query)
			require.True(t, found)
			assert.Equal(t, tt.expected, identifier)
		})
	}
}

func TestFindBestIDReverseIgnoresShortKeys(t *testing.T) {
	resolver := New()
	resolver.Load([]ctdf.StopRecord{{Identifier: "1", NameEN: "Bo"}})

	_, found := resolver.FindBestID("bogyoke market")
	assert.False(t, found)
}

func TestFindBestIDNotFound(t *testing.T) {
	resolver := testResolver(t)

	_, found := resolver.FindBestID("mandalay")
	assert.False(t, found)

	_, found = resolver.FindBestID("  ")
	assert.False(t, found)
}

func TestSearchRanksByScore(t *testing.T) {
	resolver := testResolver(t)

	results := resolver.Search("sule", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "30", results[0].Identifier)
	assert.Equal(t, "31", results[1].Identifier)

	results = resolver.Search("hledan", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "0012", results[0].Identifier)
	assert.Equal(t, "12", results[1].Identifier)
}

func TestSearchMatchesRoadNames(t *testing.T) {
	resolver := testResolver(t)

	// "road" only matches through road names
	results := resolver.Search("road", 10)
	identifiers := []string{}
	for _, stop := range results {
		identifiers = append(identifiers, stop.Identifier)
	}

	assert.ElementsMatch(t, []string{"0012", "12", "30"}, identifiers)
}

func TestSearchReverseOnlyForLongQueries(t *testing.T) {
	resolver := testResolver(t)

	assert.Empty(t, resolver.Search("xsule", 10))

	results := resolver.Search("xxsulex", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "30", results[0].Identifier)
}

func TestSearchLimit(t *testing.T) {
	resolver := testResolver(t)

	assert.Len(t, resolver.Search("e", 2), 2)
	assert.Empty(t, resolver.Search("sule", 0))
}

func TestFindSimilar(t *testing.T) {
	resolver := testResolver(t)

	similar := resolver.FindSimilar("Hledan")
	require.Len(t, similar, 2)
	assert.Equal(t, "0012", similar[0].Identifier)
	assert.Equal(t, "12", similar[1].Identifier)

	assert.Empty(t, resolver.FindSimilar(""))
}

func TestLoadMapIsDeterministic(t *testing.T) {
	catalog := map[string]ctdf.StopRecord{}
	for _, record := range testRecords() {
		catalog[record.Identifier] = record
	}

	for i := 0; i < 5; i++ {
		resolver := New()
		resolver.LoadMap(catalog)

		identifier, found := resolver.FindBestID("hled")
		require.True(t, found)
		assert.Equal(t, "0012", identifier)
	}
}

func TestUninitialisedResolver(t *testing.T) {
	var resolver *Resolver

	_, found := resolver.GetByID("1")
	assert.False(t, found)
	_, found = resolver.FindBestID("sule")
	assert.False(t, found)
	assert.Empty(t, resolver.Search("sule", 5))
	assert.Empty(t, resolver.FindSimilar("sule"))
	assert.Equal(t, 0, resolver.Len())
}
