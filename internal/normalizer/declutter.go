package normalizer

import (
	"regexp"
	"strings"
)

var headingEmphasisRe = regexp.MustCompile(`(?is)<(h[1-6])\b([^>]*)>\s*<(strong|b|em|i)\b[^>]*>(` + inlineRun + `)</(strong|b|em|i)\s*>\s*</(h[1-6])\s*>`)

// StripRedundantEmphasis unwraps headings whose entire content is a single
// strong, b, em or i element. Emphasis covering only part of a heading is
// left alone. Stacked wrappers are removed one layer per pass until none
// remain.
func StripRedundantEmphasis(fragment string) string {
	return fixPoint(fragment, func(s string) string {
		return headingEmphasisRe.ReplaceAllStringFunc(s, unwrapHeadingEmphasis)
	})
}

func unwrapHeadingEmphasis(match string) string {
	submatches := headingEmphasisRe.FindStringSubmatch(match)
	if len(submatches) != 7 {
		return match
	}
	heading, attrs, open, inner, closing, headingClose := submatches[1], submatches[2], submatches[3], submatches[4], submatches[5], submatches[6]

	if !strings.EqualFold(heading, headingClose) || !strings.EqualFold(open, closing) {
		return match
	}
	// A second closing tag of the same kind means the wrapper has siblings.
	if strings.Contains(strings.ToLower(inner), "</"+strings.ToLower(open)) {
		return match
	}

	return "<" + heading + attrs + ">" + inner + "</" + heading + ">"
}
