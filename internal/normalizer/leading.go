package normalizer

import (
	"regexp"
	"strings"
)

var leadingEmptyParaRe = regexp.MustCompile(`(?is)^<p\b[^>]*>(?:\s|\x{00A0}|&nbsp;|<br\s*/?>)*</p\s*>\s*`)

// RemoveLeadingEmptyParagraph drops empty paragraphs (optionally holding a
// <br>, a no-break space or &nbsp;) from the start of fragment when a
// block-level element follows them. A fragment without a leading empty paragraph is returned
// unchanged.
func RemoveLeadingEmptyParagraph(fragment string) string {
	trimmed := strings.TrimSpace(fragment)
	changed := false

	for {
		loc := leadingEmptyParaRe.FindStringIndex(trimmed)
		if loc == nil {
			break
		}
		rest := trimmed[loc[1]:]
		if !blockOpenStartRe.MatchString(rest) {
			break
		}
		trimmed = rest
		changed = true
	}

	if !changed {
		return fragment
	}
	return trimmed
}
