// Package search finds keywords in the raw fields of a WordPress export so
// that markup patterns can be located before and after conversion.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
)

const (
	contextLines = 2
	maxContexts  = 3
)

var (
	// ANSI colors for terminal output
	colorHeader = color.New(color.FgHiMagenta, color.Bold)
	colorBold   = color.New(color.Bold)
	colorCyan   = color.New(color.FgCyan)
)

// ParseField converts a command-line value into a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldAll, FieldTitle, FieldContent, FieldExcerpt:
		return f, nil
	case "all":
		return FieldAll, nil
	default:
		return FieldAll, fmt.Errorf("unknown search field %q", s)
	}
}

// Search looks for the query keywords in posts. Results are ordered by match
// count, most first, keeping input order among equal counts.
func Search(posts []converter.Post, opts Options) []Result {
	keywords := strings.Fields(strings.ToLower(opts.Query))
	if len(keywords) == 0 {
		return nil
	}

	var results []Result
	for _, p := range posts {
		for _, field := range fieldsFor(opts.Field) {
			text := fieldText(p, field)
			lower := strings.ToLower(text)

			matches := 0
			for _, kw := range keywords {
				matches += strings.Count(lower, kw)
			}
			if matches == 0 {
				continue
			}

			results = append(results, Result{
				Title:    p.Title,
				Slug:     p.Slug,
				Field:    field,
				Matches:  matches,
				Contexts: getContext(text, keywords),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Matches > results[j].Matches
	})

	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results
}

func fieldsFor(f Field) []Field {
	if f == FieldAll {
		return []Field{FieldTitle, FieldContent, FieldExcerpt}
	}
	return []Field{f}
}

func fieldText(p converter.Post, f Field) string {
	switch f {
	case FieldTitle:
		return p.Title
	case FieldExcerpt:
		return p.Excerpt
	default:
		return p.Content
	}
}

// getContext finds matching lines and extracts surrounding context lines.
// Nearby matches share one snippet; matching lines are marked with "> ".
func getContext(text string, keywords []string) []string {
	lines := strings.Split(text, "\n")

	var matchIndices []int
	for i, line := range lines {
		lineLower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lineLower, kw) {
				matchIndices = append(matchIndices, i)
				break
			}
		}
	}

	if len(matchIndices) == 0 {
		return nil
	}

	var groups [][]int
	currentGroup := []int{matchIndices[0]}
	for i := 1; i < len(matchIndices); i++ {
		if matchIndices[i]-matchIndices[i-1] <= contextLines*2+1 {
			currentGroup = append(currentGroup, matchIndices[i])
		} else {
			groups = append(groups, currentGroup)
			currentGroup = []int{matchIndices[i]}
		}
	}
	groups = append(groups, currentGroup)

	var contexts []string
	for _, group := range groups {
		startIdx := max(0, group[0]-contextLines)
		endIdx := min(len(lines), group[len(group)-1]+contextLines+1)

		matched := make(map[int]bool, len(group))
		for _, idx := range group {
			matched[idx] = true
		}

		var snippetLines []string
		for i := startIdx; i < endIdx; i++ {
			prefix := "  "
			if matched[i] {
				prefix = "> "
			}
			snippetLines = append(snippetLines, prefix+lines[i])
		}
		contexts = append(contexts, strings.Join(snippetLines, "\n"))
	}

	return contexts
}

// FormatResults prints results in a human-readable format.
func FormatResults(w io.Writer, results []Result, query string) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No matches found for '%s'.\n", query)
		return
	}

	colorHeader.Fprintf(w, "\nSearch Results for '%s'\n", query)
	fmt.Fprintf(w, "Found matches in %d fields.\n\n", len(results))

	for i, res := range results {
		colorBold.Fprintf(w, "%d. %s\n", i+1, res.Title)
		fmt.Fprintf(w, "   Slug: %s | Field: %s | Matches: %d\n", res.Slug, res.Field, res.Matches)
		colorCyan.Fprintln(w, strings.Repeat("-", 40))

		shown := min(maxContexts, len(res.Contexts))
		for j := 0; j < shown; j++ {
			fmt.Fprintln(w, res.Contexts[j])
			if j < shown-1 || len(res.Contexts) > maxContexts {
				fmt.Fprintln(w, "   ...")
			}
		}
		fmt.Fprintln(w)
	}
}

// FormatJSON prints results as JSON.
func FormatJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
