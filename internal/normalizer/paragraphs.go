package normalizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const blockTags = `p|h[1-6]|ul|ol|li|div|blockquote|table|thead|tbody|tr|td|th|figure|hr|pre`

var (
	blockOpenStartRe  = regexp.MustCompile(`(?i)^<(?:` + blockTags + `)\b`)
	blockCloseStartRe = regexp.MustCompile(`(?i)^</(?:` + blockTags + `)\s*>`)
	blockOpenEndRe    = regexp.MustCompile(`(?i)<(?:` + blockTags + `)\b[^>]*>$`)
	blockCloseEndRe   = regexp.MustCompile(`(?i)(?:</(?:` + blockTags + `)\s*>|<hr\b[^>]*>)$`)

	containerOpenRe  = regexp.MustCompile(`(?i)<(?:div|ul|ol|blockquote|table)\b[^>]*>`)
	containerCloseRe = regexp.MustCompile(`(?i)</(?:div|ul|ol|blockquote|table)\s*>`)
	paraTagRe        = regexp.MustCompile(`(?i)<p\b[^>]*>|</p\s*>`)
	paraCloseStartRe = regexp.MustCompile(`(?i)^</p\s*>`)

	trailingBreakRe   = regexp.MustCompile(`(?i)<br\s*/?>\s*</p\s*>`)
	breakTerminatedRe = regexp.MustCompile(`(?is)(<p\b[^>]*>)(` + noParaRun + `?)<br\s*/?>(\s*)(<p\b|$)`)
	unterminatedRe    = regexp.MustCompile(`(?is)(<p\b[^>]*>)(` + noParaRun + `)(<p\b)`)
	unterminatedEndRe = regexp.MustCompile(`(?is)(<p\b[^>]*>)(` + noParaRun + `)$`)
	duplicateCloseRe  = regexp.MustCompile(`(?i)</p\s*>\s*</p\s*>`)
)

// NormalizeParagraphs runs the paragraph repair sub-passes in their fixed
// order: wrap loose lines, close paragraphs ended by a trailing <br>, close
// paragraphs that run into the next one or the end of the fragment, then
// collapse doubled closing tags.
func NormalizeParagraphs(fragment string) string {
	fragment = EnsureParagraphs(fragment)
	fragment = CloseBreakTerminated(fragment)
	fragment = CloseUnterminated(fragment)
	fragment = DropDuplicateClosers(fragment)
	return fragment
}

// EnsureParagraphs wraps loose text in <p> elements. A fragment that is
// already wrapped, starting with a block-level opening tag, ending with a
// block-level closing tag and holding no loose top-level line, is only
// trimmed. Otherwise it is rebuilt line by line: blank
// lines and sentence ends followed by a capitalised line split paragraphs,
// breaks next to block-level tags are dropped, and the remaining line breaks
// become <br />. The rebuilt fragment contains no raw newlines.
func EnsureParagraphs(fragment string) string {
	trimmed := strings.TrimSpace(fragment)
	if isBlockWrapped(trimmed) {
		return trimmed
	}

	trimmed = strings.ReplaceAll(trimmed, "\r\n", "\n")
	trimmed = strings.ReplaceAll(trimmed, "\r", "\n")

	var pb paragraphBuilder
	prev := ""
	blank := false
	for _, raw := range strings.Split(trimmed, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if prev != "" {
				blank = true
			}
			continue
		}
		if prev == "" {
			pb.place(line, false)
		} else {
			pb.join(prev, line, blank)
		}
		prev = line
		blank = false
	}
	pb.finish()

	return pb.String()
}

// isBlockWrapped reports whether s starts with a block-level opening tag, ends
// with a block-level closing tag and has no loose line outside a paragraph or
// container in between.
func isBlockWrapped(s string) bool {
	if !blockOpenStartRe.MatchString(s) || !blockCloseEndRe.MatchString(s) {
		return false
	}

	var pb paragraphBuilder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isLoose(line) && !pb.open && pb.depth == 0 {
			return false
		}
		pb.track(line)
	}
	return true
}

// paragraphBuilder assembles the rebuilt fragment. open reports whether a
// paragraph is currently open, depth counts enclosing container elements in
// which loose text is left unwrapped.
type paragraphBuilder struct {
	b     strings.Builder
	open  bool
	depth int
}

func (pb *paragraphBuilder) join(prev, line string, blank bool) {
	reopen := false

	switch {
	case blockCloseStartRe.MatchString(line):
		if pb.open && !paraCloseStartRe.MatchString(line) {
			pb.closeParagraph()
		}
	case blockCloseEndRe.MatchString(prev) || blockOpenStartRe.MatchString(line):
		if pb.open && blockOpenStartRe.MatchString(line) {
			pb.closeParagraph()
		}
	case blockOpenEndRe.MatchString(prev):
	case blank && pb.open, pb.open && isSentenceBreak(prev, line):
		pb.closeParagraph()
		reopen = true
	case pb.open || pb.depth > 0:
		pb.b.WriteString("<br />")
	}

	pb.place(line, reopen)
}

// place writes line, opening a paragraph first when the line is loose text
// outside any container or continues a paragraph that was just split.
func (pb *paragraphBuilder) place(line string, reopen bool) {
	if isLoose(line) && !pb.open && (pb.depth == 0 || reopen) {
		pb.b.WriteString("<p>")
		pb.open = true
	}
	pb.b.WriteString(line)
	pb.track(line)
}

func (pb *paragraphBuilder) track(line string) {
	if tags := paraTagRe.FindAllString(line, -1); len(tags) > 0 {
		pb.open = !strings.HasPrefix(tags[len(tags)-1], "</")
	}
	pb.depth += len(containerOpenRe.FindAllStringIndex(line, -1))
	pb.depth -= len(containerCloseRe.FindAllStringIndex(line, -1))
	if pb.depth < 0 {
		pb.depth = 0
	}
}

func (pb *paragraphBuilder) closeParagraph() {
	pb.b.WriteString("</p>")
	pb.open = false
}

func (pb *paragraphBuilder) finish() {
	if pb.open {
		pb.closeParagraph()
	}
}

func (pb *paragraphBuilder) String() string {
	return pb.b.String()
}

func isLoose(line string) bool {
	return !blockOpenStartRe.MatchString(line) && !blockCloseStartRe.MatchString(line)
}

// isSentenceBreak reports whether prev ends a sentence and line starts a new
// one with an upper-case letter.
func isSentenceBreak(prev, line string) bool {
	last := prev[len(prev)-1]
	if last != '.' && last != '!' && last != '?' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}

// CloseBreakTerminated drops a <br> sitting directly before </p> and turns a
// trailing <br> that ends an unclosed paragraph, just before the next <p> or
// the end of the fragment, into </p>.
func CloseBreakTerminated(fragment string) string {
	fragment = fixPoint(fragment, func(s string) string {
		return trailingBreakRe.ReplaceAllString(s, "</p>")
	})
	return fixPoint(fragment, func(s string) string {
		return breakTerminatedRe.ReplaceAllStringFunc(s, func(match string) string {
			submatches := breakTerminatedRe.FindStringSubmatch(match)
			if len(submatches) != 5 {
				return match
			}
			return paragraphOpen(submatches[1]) + submatches[2] + "</p>" + submatches[3] + paragraphOpen(submatches[4])
		})
	})
}

// CloseUnterminated closes every paragraph that runs straight into the next
// <p> opening, then closes a final paragraph left open at the end.
func CloseUnterminated(fragment string) string {
	fragment = fixPoint(fragment, func(s string) string {
		return unterminatedRe.ReplaceAllStringFunc(s, func(match string) string {
			submatches := unterminatedRe.FindStringSubmatch(match)
			if len(submatches) != 4 {
				return match
			}
			return paragraphOpen(submatches[1]) + strings.TrimRightFunc(submatches[2], unicode.IsSpace) + "</p>" + paragraphOpen(submatches[3])
		})
	})

	return unterminatedEndRe.ReplaceAllStringFunc(fragment, func(match string) string {
		submatches := unterminatedEndRe.FindStringSubmatch(match)
		if len(submatches) != 3 {
			return match
		}
		return paragraphOpen(submatches[1]) + strings.TrimRightFunc(submatches[2], unicode.IsSpace) + "</p>"
	})
}

// paragraphOpen lowercases the tag name of a <p> opening tag, or of its
// "<p" prefix, so it pairs with the </p> the repair passes emit.
func paragraphOpen(tag string) string {
	if len(tag) < 2 {
		return tag
	}
	return "<p" + tag[2:]
}

// DropDuplicateClosers collapses runs of </p></p> into a single </p>.
func DropDuplicateClosers(fragment string) string {
	return fixPoint(fragment, func(s string) string {
		return duplicateCloseRe.ReplaceAllString(s, "</p>")
	})
}
