package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining marks after NFD decomposition, so
// "Guarnição" folds to "Guarnicao".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	nonToken        = regexp.MustCompile(`[^a-z0-9]+`)
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// NormalizeToken canonicalizes a raw header or shift label to a lowercase
// ASCII token: trim, lowercase, fold accents, collapse every run outside
// [a-z0-9] to a single underscore, strip edge underscores.
func NormalizeToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	s = nonToken.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// CollapseSpaces trims a free-text cell value and collapses internal
// whitespace runs to one space. Dish names keep their case and accents.
func CollapseSpaces(s string) string {
	return innerWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}
