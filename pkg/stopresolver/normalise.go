package stopresolver

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var punctuationReplacer = strings.NewReplacer(
	"(", "",
	")", "",
	",", "",
	".", "",
	"-", "",
	"/", "",
)

// Normalise is the single canonical form used for every indexed name and every query
func Normalise(text string) string {
	normalised := strings.ToLower(text)
	normalised = punctuationReplacer.Replace(normalised)
	// Collapse after stripping so "a - b" leaves a single space
	normalised = whitespaceRegex.ReplaceAllString(normalised, " ")

	return strings.TrimSpace(normalised)
}
