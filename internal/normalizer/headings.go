package normalizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// fontSizeOpen matches an opening <font> tag carrying size="+N", quoted or not.
const fontSizeOpen = `<font\b[^>]*?\bsize\s*=\s*["']?\+%d\b["']?[^>]*>`

// fontPromotion maps a legacy relative font size to the heading level it encoded.
type fontPromotion struct {
	size  int
	level int
}

var fontPromotions = []fontPromotion{
	{size: 2, level: 2},
	{size: 1, level: 3},
}

type headingRule struct {
	re    *regexp.Regexp
	level int
}

// noFontClose matches a run of text containing no </font> closing tag.
const noFontClose = `(?:[^<]|<[^/]|</[^fF]|</[fF][^oO])*`

// noParaLine is noParaRun restricted to a single line.
const noParaLine = `(?:[^<\n]|<[^pP/]|</[^pP]|<[pP][a-zA-Z]|</[pP][a-zA-Z])*`

// sizeClassOpen matches a <p> opening tag carrying the named font-size class.
const sizeClassOpen = `<p\b[^>]*\bclass\s*=\s*["'][^"']*\b%s\b[^"']*["'][^>]*>`

var (
	strongFontRules = buildFontRules(`(?is)<strong\b[^>]*>\s*` + fontSizeOpen + `(.*?)</font>\s*</strong>\s*`)
	// The bare form only counts as a heading when it stands alone on its
	// line or fills its paragraph.
	bareFontRules = buildFontRules(`(?ims)(^[ \t]*|<p\b[^>]*>[ \t]*)` + fontSizeOpen + `(` + noFontClose + `)</font>[ \t\r]*(</p\s*>|$\n?)`)

	closedClassRules = buildClassRules(`(?is)` + sizeClassOpen + `(` + noParaRun + `)</p\s*>`)
	// An unclosed class paragraph ends at the next paragraph, the end of its
	// line or the end of the fragment.
	openClassRules = buildClassRules(`(?is)` + sizeClassOpen + `(` + noParaLine + `)(\s*<p\b|\s*$|\n)`)

	otherFontSizeRe  = regexp.MustCompile(`(?is)<font\b[^>]*\bsize\s*=[^>]*>(.*?)</font>`)
	headingInParaRe  = regexp.MustCompile(`(?is)<p\b[^>]*>\s*(<h[1-6]\b[^>]*>` + inlineRun + `</h[1-6]>)\s*</p>`)
	headingRunIntoRe = regexp.MustCompile(`(?i)(</h[1-6]>)([^\s<])`)
	trailingBreaksRe = regexp.MustCompile(`(?i)(?:\s|<br\s*/?>)+$`)
)

func buildClassRules(pattern string) []headingRule {
	return []headingRule{
		{re: regexp.MustCompile(fmt.Sprintf(pattern, "has-x-large-font-size")), level: 2},
		{re: regexp.MustCompile(fmt.Sprintf(pattern, "has-large-font-size")), level: 3},
	}
}

func buildFontRules(pattern string) []headingRule {
	rules := make([]headingRule, 0, len(fontPromotions))
	for _, p := range fontPromotions {
		rules = append(rules, headingRule{
			re:    regexp.MustCompile(fmt.Sprintf(pattern, p.size)),
			level: p.level,
		})
	}
	return rules
}

// PromoteHeadings rewrites legacy font-size and block-class markup into
// semantic headings. Strong-wrapped <font size="+2"> and <font size="+1">
// become h2 and h3, then the bare font forms standing on their own line,
// then paragraphs carrying the x-large and large font-size classes, closed
// or not. Any other sized <font> wrapper is dropped, a paragraph holding
// nothing but a heading is replaced by the heading, and a heading that runs
// straight into text gets a blank line.
func PromoteHeadings(fragment string) string {
	for _, rule := range strongFontRules {
		fragment = rule.re.ReplaceAllStringFunc(fragment, func(match string) string {
			sub := rule.re.FindStringSubmatch(match)
			if len(sub) != 2 {
				return match
			}
			return heading(rule.level, sub[1]) + "\n\n"
		})
	}
	for _, rule := range bareFontRules {
		fragment = rule.re.ReplaceAllStringFunc(fragment, func(match string) string {
			sub := rule.re.FindStringSubmatch(match)
			if len(sub) != 4 {
				return match
			}
			para := strings.TrimSpace(sub[1])
			h := heading(rule.level, sub[2])
			closed := strings.TrimSpace(sub[3]) != ""
			switch {
			case para != "" && closed:
				return h
			case para != "":
				return h + "\n\n" + para
			case closed:
				return sub[3] + h
			default:
				return h + "\n\n"
			}
		})
	}
	for _, rule := range closedClassRules {
		fragment = rule.re.ReplaceAllStringFunc(fragment, func(match string) string {
			sub := rule.re.FindStringSubmatch(match)
			if len(sub) != 2 {
				return match
			}
			return heading(rule.level, sub[1])
		})
	}
	for _, rule := range openClassRules {
		fragment = fixPoint(fragment, func(s string) string {
			return rule.re.ReplaceAllStringFunc(s, func(match string) string {
				sub := rule.re.FindStringSubmatch(match)
				if len(sub) != 3 {
					return match
				}
				tail := sub[2]
				if strings.TrimSpace(tail) != "" {
					tail = strings.TrimLeftFunc(tail, unicode.IsSpace)
				}
				return heading(rule.level, sub[1]) + tail
			})
		})
	}

	fragment = otherFontSizeRe.ReplaceAllString(fragment, "$1")
	fragment = headingInParaRe.ReplaceAllString(fragment, "$1")
	fragment = headingRunIntoRe.ReplaceAllString(fragment, "$1\n\n$2")

	return fragment
}

// heading wraps text in an h<level> element, dropping surrounding whitespace
// and trailing line breaks.
func heading(level int, text string) string {
	text = trailingBreaksRe.ReplaceAllString(strings.TrimSpace(text), "")
	return fmt.Sprintf("<h%d>%s</h%d>", level, text, level)
}
