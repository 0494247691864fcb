// Package validator checks converted rows for markup the Webflow rich-text
// importer handles badly: broken paragraph structure, legacy font sizes,
// leading images or empty paragraphs, inline centering and headings wrapped
// in a single emphasis element.
package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/logging"
)

// Kind names a class of issue.
type Kind string

// Issue kinds reported by CheckFragment and CheckRows.
const (
	KindNestedParagraph       Kind = "nested-paragraph"
	KindFontSize              Kind = "font-size"
	KindUnbalancedParagraph   Kind = "unbalanced-paragraph"
	KindLeadingImage          Kind = "leading-image"
	KindLeadingEmptyParagraph Kind = "leading-empty-paragraph"
	KindInlineCenter          Kind = "inline-center"
	KindHeadingEmphasis       Kind = "heading-emphasis"
	KindMarkupInSummary       Kind = "markup-in-summary"
)

var (
	centerStyleRe = regexp.MustCompile(`(?i)text-align\s*:\s*center`)
	markupRe      = regexp.MustCompile(`<[a-zA-Z/!]`)
)

// Issue is a single finding.
type Issue struct {
	Kind   Kind   `yaml:"kind"`
	Detail string `yaml:"detail"`
}

// RowReport lists the issues of one row.
type RowReport struct {
	Name   string  `yaml:"name"`
	Slug   string  `yaml:"slug"`
	Issues []Issue `yaml:"issues"`
}

// Report aggregates the findings over a whole conversion.
type Report struct {
	Rows    int          `yaml:"rows"`
	Counts  map[Kind]int `yaml:"counts,omitempty"`
	Flagged []RowReport  `yaml:"flagged,omitempty"`
}

// OK reports whether no row was flagged.
func (r Report) OK() bool {
	return len(r.Flagged) == 0
}

// WriteYAML writes the report to path.
func (r Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Validator checks converted output.
type Validator struct {
	logger logging.Logger
}

// New creates a Validator. A nil logger discards messages.
func New(logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Validator{logger: logger}
}

// CheckRows checks the body and summary of every row.
func (v *Validator) CheckRows(rows []converter.Row) Report {
	report := Report{Rows: len(rows)}

	for _, row := range rows {
		issues := v.CheckFragment(row.PostBody)
		if markupRe.MatchString(row.PostSummary) {
			issues = append(issues, Issue{Kind: KindMarkupInSummary, Detail: "post summary still contains tags"})
		}
		if len(issues) == 0 {
			continue
		}

		if report.Counts == nil {
			report.Counts = make(map[Kind]int)
		}
		for _, issue := range issues {
			report.Counts[issue.Kind]++
		}
		report.Flagged = append(report.Flagged, RowReport{Name: row.Name, Slug: row.Slug, Issues: issues})
		v.logger.Warn("row flagged", "slug", row.Slug, "issues", len(issues))
	}

	v.logger.Info("check finished", "rows", report.Rows, "flagged", len(report.Flagged))
	return report
}

// CheckFragment inspects one canonical body fragment.
func (v *Validator) CheckFragment(fragment string) []Issue {
	issues := scanTokens(fragment)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		v.logger.Error("failed to parse fragment", "error", err)
		return issues
	}
	return append(issues, inspectElements(doc)...)
}

// scanTokens counts raw paragraph tags and sized font tags. The tree builder
// would silently repair both, so they are checked on the token stream.
func scanTokens(fragment string) []Issue {
	var issues []Issue
	depth := 0
	nested, unbalanced, font := false, false, false

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		tok := z.Token()
		switch {
		case tt == html.StartTagToken && tok.Data == "p":
			depth++
			if depth > 1 && !nested {
				nested = true
				issues = append(issues, Issue{Kind: KindNestedParagraph, Detail: "<p> opened inside an open <p>"})
			}
		case tt == html.EndTagToken && tok.Data == "p":
			depth--
			if depth < 0 {
				unbalanced = true
				depth = 0
			}
		case (tt == html.StartTagToken || tt == html.SelfClosingTagToken) && tok.Data == "font":
			for _, attr := range tok.Attr {
				if attr.Key == "size" && !font {
					font = true
					issues = append(issues, Issue{Kind: KindFontSize, Detail: fmt.Sprintf("<font size=%q> survived", attr.Val)})
				}
			}
		}
	}

	if depth != 0 {
		unbalanced = true
	}
	if unbalanced {
		issues = append(issues, Issue{Kind: KindUnbalancedParagraph, Detail: "<p> and </p> counts differ"})
	}
	return issues
}

func inspectElements(doc *goquery.Document) []Issue {
	var issues []Issue

	first := doc.Find("body").Children().First()
	switch {
	case first.Is("img"), first.Is("p") && isImageOnly(first):
		src, _ := first.Find("img").AddBack().Filter("img").Attr("src")
		issues = append(issues, Issue{Kind: KindLeadingImage, Detail: fmt.Sprintf("body starts with image %q", src)})
	case first.Is("p") && isEmptyParagraph(first):
		issues = append(issues, Issue{Kind: KindLeadingEmptyParagraph, Detail: "body starts with an empty paragraph"})
	}

	doc.Find("h1, h2, h3, h4, h5, h6, p").Each(func(_ int, s *goquery.Selection) {
		style, ok := s.Attr("style")
		if ok && centerStyleRe.MatchString(style) {
			issues = append(issues, Issue{Kind: KindInlineCenter, Detail: fmt.Sprintf("<%s> keeps style %q", goquery.NodeName(s), style)})
		}
	})

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		kids := s.Children()
		if kids.Length() != 1 || !kids.Is("strong, b, em, i") {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" && text == strings.TrimSpace(kids.Text()) {
			issues = append(issues, Issue{Kind: KindHeadingEmphasis, Detail: fmt.Sprintf("<%s> wraps only <%s>", goquery.NodeName(s), goquery.NodeName(kids))})
		}
	})

	return issues
}

func isImageOnly(p *goquery.Selection) bool {
	kids := p.Children()
	return kids.Length() == 1 && kids.Is("img") && strings.TrimSpace(p.Text()) == ""
}

func isEmptyParagraph(p *goquery.Selection) bool {
	return p.Children().Not("br").Length() == 0 && strings.TrimSpace(p.Text()) == ""
}
