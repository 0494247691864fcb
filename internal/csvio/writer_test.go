package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
)

func TestEncodePosts(t *testing.T) {
	rows := []converter.Row{
		{
			Name:              "Hello",
			Slug:              "hello",
			Author:            "Jane Doe",
			DateOfPublication: "2024-01-02",
			Category:          "News;Tips",
			Image:             "https://x/a.jpg",
			PostBody:          "<p>Hi</p>",
			PostSummary:       "Sum, mary",
		},
	}

	var buf bytes.Buffer
	if err := EncodePosts(&buf, rows); err != nil {
		t.Fatalf("EncodePosts() error = %v", err)
	}

	want := "Name,Slug,Author,Date of publication,Category,Main Image,Post body,Post summary,Featured\n" +
		"Hello,hello,Jane Doe,2024-01-02,News;Tips,https://x/a.jpg,<p>Hi</p>,\"Sum, mary\",false\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodePosts() =\n%q\nwant\n%q", got, want)
	}
}

func TestWriteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "authors-webflow.csv")
	entries := []converter.Entry{
		{Name: "Jane Doe", Slug: "jane-doe"},
		{Name: "admin", Slug: "admin"},
	}

	if err := WriteEntries(path, entries); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "Name,Slug\nJane Doe,jane-doe\nadmin,admin\n"
	if string(got) != want {
		t.Errorf("WriteEntries() wrote %q, want %q", got, want)
	}
}

func TestWritePostsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog-webflow.csv")
	rows := []converter.Row{{Name: "A", Slug: "a", PostBody: "<p>line</p>", Featured: true}}

	if err := WritePosts(path, rows); err != nil {
		t.Fatalf("WritePosts() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "Name,Slug,Author,Date of publication,Category,Main Image,Post body,Post summary,Featured\nA,a,,,,,<p>line</p>,,true\n"
	if string(got) != want {
		t.Errorf("WritePosts() wrote %q, want %q", got, want)
	}
}
