package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	commentRe     = regexp.MustCompile(`(?s)<!--.*?-->`)
	boundaryTagRe = regexp.MustCompile(`(?i)</?(?:` + blockTags + `|br)\b[^>]*>`)
	anyTagRe      = regexp.MustCompile(`(?s)<[a-zA-Z/!][^>]*>`)
)

// StripAllMarkup reduces fragment to plain text. Block-level tags and <br>
// separate words, inline tags vanish, entities are decoded and whitespace
// runs collapse to single spaces.
func StripAllMarkup(fragment string) string {
	text := commentRe.ReplaceAllString(fragment, " ")
	text = boundaryTagRe.ReplaceAllString(text, " ")
	text = anyTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
