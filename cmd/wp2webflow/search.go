package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/search"
)

var (
	flagField      string
	flagMaxResults int
	flagJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the raw export fields for keywords",
	Long: `Search looks through the unconverted title, content and excerpt of every
record for the space-separated keywords (OR logic, case-insensitive) and
prints the matching lines with context.

Examples:
  wp2webflow search "font size" --input Posts-Export.csv
  wp2webflow search "text-align" --field content --max-results 5
  wp2webflow search "has-large-font-size" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&flagField, "field", "all", "Field to search: all, title, content or excerpt")
	searchCmd.Flags().IntVar(&flagMaxResults, "max-results", 10, "Maximum number of results to display")
	searchCmd.Flags().BoolVar(&flagJSON, "json", false, "Output results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	field, err := search.ParseField(flagField)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	query := args[0]
	results := search.Search(posts, search.Options{
		Query:      query,
		Field:      field,
		MaxResults: flagMaxResults,
	})

	if flagJSON {
		return search.FormatJSON(os.Stdout, results)
	}
	search.FormatResults(os.Stdout, results, query)
	return nil
}
