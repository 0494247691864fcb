// Package csvio reads WordPress "Posts export" CSV files and writes the
// Webflow collection CSVs.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
)

var (
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyInput is returned for an export without a header row.
	ErrEmptyInput = errors.New("empty input")
)

// Export column headers.
const (
	ColTitle           = "Title"
	ColSlug            = "Slug"
	ColAuthorID        = "Author ID"
	ColAuthorFirstName = "Author First Name"
	ColAuthorLastName  = "Author Last Name"
	ColAuthorUsername  = "Author Username"
	ColDate            = "Date"
	ColCategories      = "Categories"
	ColImageURL        = "Image URL"
	ColContent         = "Content"
	ColExcerpt         = "Excerpt"
)

var requiredColumns = []string{ColTitle, ColContent, ColExcerpt}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadPosts reads the export at path, decoding it from charset.
func ReadPosts(path, charset string) ([]converter.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	posts, err := DecodePosts(f, charset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return posts, nil
}

// DecodePosts parses an export from r. An empty charset means UTF-8.
func DecodePosts(r io.Reader, charset string) ([]converter.Post, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	text, err := decode(raw, charset)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	cols := indexHeader(header)
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var posts []converter.Post
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		posts = append(posts, converter.Post{
			Title:           field(ColTitle),
			Slug:            field(ColSlug),
			AuthorID:        field(ColAuthorID),
			AuthorFirstName: field(ColAuthorFirstName),
			AuthorLastName:  field(ColAuthorLastName),
			AuthorUsername:  field(ColAuthorUsername),
			Date:            field(ColDate),
			Categories:      field(ColCategories),
			ImageURL:        field(ColImageURL),
			Content:         field(ColContent),
			Excerpt:         field(ColExcerpt),
		})
	}

	return posts, nil
}

// indexHeader maps trimmed header names to their column. The first
// occurrence of a repeated name wins.
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

// decode converts raw to UTF-8 text and drops a leading byte order mark.
func decode(raw []byte, charset string) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	charset = strings.TrimSpace(charset)
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return string(raw), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unknown charset %q: %w", charset, err)
	}

	decoded, err := decodeWithEncoding(raw, enc)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s input: %w", charset, err)
	}
	return decoded, nil
}

func decodeWithEncoding(body []byte, enc encoding.Encoding) (string, error) {
	reader := transform.NewReader(bytes.NewReader(body), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
