package normalizer

import "regexp"

var (
	imgTagRe = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	imgSrcRe = regexp.MustCompile(`(?i)\ssrc\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// ExtractLeadingImage finds the first <img> tag in fragment and returns its
// src address together with the fragment minus that one tag. Later images are
// left in place. When the first image has no usable quoted src the address is
// empty and the fragment is returned unchanged.
func ExtractLeadingImage(fragment string) (string, string) {
	loc := imgTagRe.FindStringIndex(fragment)
	if loc == nil {
		return "", fragment
	}

	tag := fragment[loc[0]:loc[1]]
	submatches := imgSrcRe.FindStringSubmatch(tag)
	if submatches == nil {
		return "", fragment
	}

	address := submatches[1]
	if address == "" {
		address = submatches[2]
	}
	if address == "" {
		return "", fragment
	}

	return address, fragment[:loc[0]] + fragment[loc[1]:]
}
