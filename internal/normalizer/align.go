package normalizer

import (
	"regexp"
	"strings"
)

// CenterAlignClass is the class carried by the wrapper div that replaces an
// inline text-align: center declaration.
const CenterAlignClass = "text-align-center"

var (
	alignableOpenRe = regexp.MustCompile(`(?i)<(h[1-6]|p)\b([^>]*)>`)
	styleAttrRe     = regexp.MustCompile(`(?is)(\s+)style\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	alignCloseRes   = map[string]*regexp.Regexp{}
)

func init() {
	for _, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6", "p"} {
		alignCloseRes[tag] = regexp.MustCompile(`(?i)</` + tag + `\s*>`)
	}
}

// NormalizeCenterAlignment finds headings and paragraphs whose style attribute
// declares text-align: center, removes that declaration (and the attribute
// when nothing else is left in it) and wraps the element in
// <div class="text-align-center">. Other attributes and the element content
// are kept verbatim.
func NormalizeCenterAlignment(fragment string) string {
	var b strings.Builder
	pos := 0

	for {
		loc := alignableOpenRe.FindStringSubmatchIndex(fragment[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		tag := fragment[pos+loc[2] : pos+loc[3]]
		attrs := fragment[pos+loc[4] : pos+loc[5]]

		rest, centered := stripCenterDeclaration(attrs)
		if !centered {
			b.WriteString(fragment[pos:end])
			pos = end
			continue
		}

		closeLoc := alignCloseRes[strings.ToLower(tag)].FindStringIndex(fragment[end:])
		if closeLoc == nil {
			b.WriteString(fragment[pos:end])
			pos = end
			continue
		}
		closeEnd := end + closeLoc[1]

		b.WriteString(fragment[pos:start])
		b.WriteString(`<div class="` + CenterAlignClass + `">`)
		b.WriteString("<" + tag + rest + ">")
		b.WriteString(fragment[end:closeEnd])
		b.WriteString("</div>")
		pos = closeEnd
	}

	b.WriteString(fragment[pos:])
	return b.String()
}

// stripCenterDeclaration removes a text-align: center declaration from the
// style attribute in attrs. It reports whether one was found.
func stripCenterDeclaration(attrs string) (string, bool) {
	m := styleAttrRe.FindStringSubmatchIndex(attrs)
	if m == nil {
		return attrs, false
	}

	var style string
	switch {
	case m[4] >= 0:
		style = attrs[m[4]:m[5]]
	case m[6] >= 0:
		style = attrs[m[6]:m[7]]
	}

	centered := false
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(prop), "text-align") &&
			strings.EqualFold(strings.TrimSpace(val), "center") {
			centered = true
			continue
		}
		kept = append(kept, decl)
	}

	if !centered {
		return attrs, false
	}
	if len(kept) == 0 {
		return attrs[:m[0]] + attrs[m[1]:], true
	}

	space := attrs[m[2]:m[3]]
	return attrs[:m[0]] + space + `style="` + strings.Join(kept, "; ") + `"` + attrs[m[1]:], true
}
