package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
)

// PostHeaders are the columns of the Webflow blog collection CSV.
var PostHeaders = []string{
	"Name",
	"Slug",
	"Author",
	"Date of publication",
	"Category",
	"Main Image",
	"Post body",
	"Post summary",
	"Featured",
}

// EntryHeaders are the columns of the authors and categories CSVs.
var EntryHeaders = []string{"Name", "Slug"}

// WritePosts writes rows to path, creating its directory if needed.
func WritePosts(path string, rows []converter.Row) error {
	return writeFile(path, func(w io.Writer) error { return EncodePosts(w, rows) })
}

// WriteEntries writes an authors or categories catalog to path.
func WriteEntries(path string, entries []converter.Entry) error {
	return writeFile(path, func(w io.Writer) error { return EncodeEntries(w, entries) })
}

// EncodePosts writes the header and rows as CSV.
func EncodePosts(w io.Writer, rows []converter.Row) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, PostHeaders)
	for _, r := range rows {
		records = append(records, []string{
			r.Name,
			r.Slug,
			r.Author,
			r.DateOfPublication,
			r.Category,
			r.Image,
			r.PostBody,
			r.PostSummary,
			strconv.FormatBool(r.Featured),
		})
	}
	return encode(w, records)
}

// EncodeEntries writes the header and entries as CSV.
func EncodeEntries(w io.Writer, entries []converter.Entry) error {
	records := make([][]string, 0, len(entries)+1)
	records = append(records, EntryHeaders)
	for _, e := range entries {
		records = append(records, []string{e.Name, e.Slug})
	}
	return encode(w, records)
}

func encode(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
