// Package converter maps WordPress "Posts export" records onto Webflow
// collection rows. Post bodies and excerpts go through the normalizer
// pipeline; authors and categories are collected into their own catalogs
// with generated slugs.
package converter

import (
	"sort"
	"strings"

	"github.com/f4ah6o/wp2webflow-go/internal/normalizer"
	"github.com/f4ah6o/wp2webflow-go/internal/slug"
)

// listSeparator splits the multi-valued export columns.
const listSeparator = "|"

// categorySeparator joins categories in the Webflow Category column.
const categorySeparator = ";"

// Post is one record of the WordPress export.
type Post struct {
	Title           string
	Slug            string
	AuthorID        string
	AuthorFirstName string
	AuthorLastName  string
	AuthorUsername  string
	Date            string
	Categories      string // pipe-delimited
	ImageURL        string // pipe-delimited
	Content         string
	Excerpt         string
}

// Row is one record of the Webflow blog collection CSV.
type Row struct {
	Name              string
	Slug              string
	Author            string
	DateOfPublication string
	Category          string
	Image             string
	PostBody          string
	PostSummary       string
	Featured          bool
}

// Entry is one record of the authors or categories CSV.
type Entry struct {
	Name string
	Slug string
}

// Options holds the values the export does not carry.
type Options struct {
	DefaultAuthor string
	Featured      bool
}

// Mapper converts posts into rows.
type Mapper struct {
	pipeline *normalizer.Pipeline
	opts     Options
}

// New creates a Mapper. A nil pipeline selects normalizer.New().
func New(pipeline *normalizer.Pipeline, opts Options) *Mapper {
	if pipeline == nil {
		pipeline = normalizer.New()
	}
	return &Mapper{pipeline: pipeline, opts: opts}
}

// Map converts a single post. It reports false for records without a title,
// which have no place in the collection.
func (m *Mapper) Map(p Post) (Row, bool) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return Row{}, false
	}

	image, body := m.pipeline.Body(p.Content)
	if image == "" {
		image = firstOf(p.ImageURL)
	}

	postSlug := strings.TrimSpace(p.Slug)
	if postSlug == "" {
		postSlug = slug.Make(title)
	}

	author := AuthorName(p)
	if author == "" {
		author = m.opts.DefaultAuthor
	}

	return Row{
		Name:              title,
		Slug:              postSlug,
		Author:            author,
		DateOfPublication: strings.TrimSpace(p.Date),
		Category:          strings.Join(splitList(p.Categories), categorySeparator),
		Image:             image,
		PostBody:          body,
		PostSummary:       m.pipeline.Excerpt(p.Excerpt),
		Featured:          m.opts.Featured,
	}, true
}

// MapAll converts posts in input order. It returns the rows together with
// the indexes of the records that were skipped.
func (m *Mapper) MapAll(posts []Post) ([]Row, []int) {
	rows := make([]Row, 0, len(posts))
	var skipped []int
	for i, p := range posts {
		row, ok := m.Map(p)
		if !ok {
			skipped = append(skipped, i)
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

// AuthorName is "First Last" when either part is present, else the username.
func AuthorName(p Post) string {
	first := strings.TrimSpace(p.AuthorFirstName)
	last := strings.TrimSpace(p.AuthorLastName)
	if first != "" || last != "" {
		return strings.TrimSpace(first + " " + last)
	}
	return strings.TrimSpace(p.AuthorUsername)
}

// Authors returns one entry per author, keyed by author ID or, when the ID is
// missing, by display name. Authors without any name are called "Author <id>".
// Entries are sorted by name, ignoring case.
func Authors(posts []Post) []Entry {
	seen := make(map[string]bool)
	var entries []Entry

	for _, p := range posts {
		id := strings.TrimSpace(p.AuthorID)
		name := AuthorName(p)

		key := "id:" + id
		if id == "" {
			if name == "" {
				continue
			}
			key = "name:" + strings.ToLower(name)
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if name == "" {
			name = "Author " + id
		}
		entries = append(entries, Entry{Name: name, Slug: slug.Make(name)})
	}

	sortEntries(entries)
	return entries
}

// Categories returns the distinct category names across posts, sorted by
// name ignoring case.
func Categories(posts []Post) []Entry {
	seen := make(map[string]bool)
	var entries []Entry

	for _, p := range posts {
		for _, name := range splitList(p.Categories) {
			if seen[name] {
				continue
			}
			seen[name] = true
			entries = append(entries, Entry{Name: name, Slug: slug.Make(name)})
		}
	}

	sortEntries(entries)
	return entries
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// splitList splits a pipe-delimited value, dropping blanks and repeats.
func splitList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, listSeparator) {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

func firstOf(s string) string {
	if list := splitList(s); len(list) > 0 {
		return list[0]
	}
	return ""
}
