package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/slug"
)

var flagHTML bool

var previewCmd = &cobra.Command{
	Use:   "preview <slug-or-title>",
	Short: "Show one converted post as Markdown",
	Long: `Preview converts a single post, found by slug or title, and prints its
fields with the normalized body rendered as Markdown. Use --html to print
the canonical HTML that goes into the Post body column instead.

Examples:
  wp2webflow preview my-first-post --input Posts-Export.csv
  wp2webflow preview "My First Post" --html -v`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&flagHTML, "html", false, "Print the canonical HTML body instead of Markdown")
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	post, ok := findPost(posts, args[0])
	if !ok {
		return fmt.Errorf("no post matches %q", args[0])
	}

	rows := s.convert([]converter.Post{post})
	if len(rows) == 0 {
		return fmt.Errorf("post %q has no title", args[0])
	}
	row := rows[0]

	body := row.PostBody
	if !flagHTML {
		body, err = converter.NewRenderer().Markdown(row.PostBody)
		if err != nil {
			return err
		}
	}

	header := color.New(color.FgHiMagenta, color.Bold)
	header.Fprintf(os.Stdout, "%s\n", row.Name)
	fmt.Fprintf(os.Stdout, "Slug: %s | Author: %s | Date: %s\n", row.Slug, row.Author, row.DateOfPublication)
	fmt.Fprintf(os.Stdout, "Category: %s\n", row.Category)
	fmt.Fprintf(os.Stdout, "Main Image: %s\n", row.Image)
	fmt.Fprintf(os.Stdout, "Summary: %s\n", row.PostSummary)
	color.New(color.FgCyan).Fprintln(os.Stdout, strings.Repeat("-", 40))
	fmt.Fprintln(os.Stdout, body)
	return nil
}

// findPost matches key against the export slug, the generated slug and the
// title, in that order.
func findPost(posts []converter.Post, key string) (converter.Post, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return converter.Post{}, false
	}
	for _, p := range posts {
		if strings.TrimSpace(p.Slug) == key {
			return p, true
		}
	}
	for _, p := range posts {
		if strings.TrimSpace(p.Slug) == "" && slug.Make(p.Title) == key {
			return p, true
		}
	}
	for _, p := range posts {
		if strings.EqualFold(strings.TrimSpace(p.Title), key) {
			return p, true
		}
	}
	return converter.Post{}, false
}
