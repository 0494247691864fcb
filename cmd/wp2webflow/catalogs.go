package main

import (
	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/csvio"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Write the Webflow authors CSV (Name, Slug)",
	Long: `Authors collects one entry per author ID from the export. The name is
"First Last", else the username, else "Author <id>".

Example:
  wp2webflow authors --input Posts-Export.csv`,
	Args: cobra.NoArgs,
	RunE: runAuthors,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Write the Webflow categories CSV (Name, Slug)",
	Long: `Categories collects the distinct pipe-separated category names of the export.

Example:
  wp2webflow categories --input Posts-Export.csv`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	return runCatalog("authors", func(s *session) string { return s.cfg.AuthorsPath() }, converter.Authors)
}

func runCategories(cmd *cobra.Command, args []string) error {
	return runCatalog("categories", func(s *session) string { return s.cfg.CategoriesPath() }, converter.Categories)
}

func runCatalog(kind string, path func(*session) string, collect func([]converter.Post) []converter.Entry) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	_, err = s.writeCatalog(kind, path(s), collect(posts))
	return err
}

func (s *session) writeCatalog(kind, path string, entries []converter.Entry) (string, error) {
	if err := csvio.WriteEntries(path, entries); err != nil {
		return "", err
	}
	s.logger.Info(kind+" written", "path", path, "entries", len(entries))
	return path, nil
}
