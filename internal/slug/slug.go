// Package slug turns display names into URL-safe tokens for Webflow
// collection items.
package slug

import (
	"strings"

	goslug "github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"
)

func init() {
	// Ampersands are dropped rather than spelled out as "and".
	goslug.CustomSub = map[string]string{"&": ""}
}

// Make lowercases name, transliterates letters outside ASCII, drops
// punctuation and joins the remaining words with single dashes.
//
//	"Speech & Language!" -> "speech-language"
//	"Café Crème" -> "cafe-creme"
func Make(name string) string {
	s := strings.TrimSpace(norm.NFC.String(name))
	if s == "" {
		return ""
	}
	return goslug.Make(s)
}
