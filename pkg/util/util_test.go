package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierString(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{"0012", "0012"},
		{" 12 ", "12"},
		{json.Number("0012"), "0012"},
		{json.Number("31"), "31"},
		{31, "31"},
		{int64(1000000), "1000000"},
		{float64(1234567), "1234567"},
		{12.5, "12.5"},
		{nil, ""},
		{true, "true"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IdentifierString(test.value))
	}
}

func TestRemoveDuplicateStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveDuplicateStrings([]string{"a", "", "b", "a", "c"}, []string{"b"}))
	assert.Empty(t, RemoveDuplicateStrings([]string{"", ""}, nil))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "b"))
	assert.False(t, ContainsString(nil, "b"))
}

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	InPlaceFilter(&values, func(v int) bool { return v%2 == 1 })

	assert.Equal(t, []int{1, 3, 5}, values)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.23, RoundTo(1.2345, 2))
	assert.Equal(t, 0.775, RoundTo(0.77549, 3))
	assert.Equal(t, 2.0, RoundTo(1.996, 2))
}

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("YBS_TEST_SETTING", "value")

	assert.Equal(t, "value", GetEnvironmentVariable("TEST_SETTING", "fallback"))
	assert.Equal(t, "fallback", GetEnvironmentVariable("TEST_UNSET_SETTING", "fallback"))
	assert.Equal(t, "value", GetEnvironmentVariables()["YBS_TEST_SETTING"])
}
