package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugCleanup = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns a free-form title into a lowercase hyphenated slug
// suitable for use as a subdomain label.
func GenerateSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	text = strings.ToLower(text)
	text = slugCleanup.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	return text
}
