package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/validator"
)

var (
	flagReport string
	flagStrict bool
)

var (
	colorOK    = color.New(color.FgGreen, color.Bold)
	colorWarn  = color.New(color.FgYellow, color.Bold)
	colorTitle = color.New(color.Bold)
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Convert the export in memory and report markup problems",
	Long: `Check runs the same conversion as posts without writing the posts CSV and
inspects every converted body for markup the Webflow importer handles badly:
unbalanced or nested paragraphs, surviving font sizes, a leading image or
empty paragraph, inline centering and headings wrapped in bold or italics.

Examples:
  wp2webflow check --input Posts-Export.csv
  wp2webflow check -i Posts-Export.csv --report check.yaml --strict`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&flagReport, "report", "", "Write the findings as YAML (overrides config)")
	checkCmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit with an error when any row is flagged")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if flagReport != "" {
		s.cfg.Report = flagReport
	}

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	report, err := s.check(s.convert(posts))
	if err != nil {
		return err
	}
	if flagStrict && !report.OK() {
		return fmt.Errorf("%d of %d rows flagged", len(report.Flagged), report.Rows)
	}
	return nil
}

// check validates rows, prints a summary and writes the report when one is configured.
func (s *session) check(rows []converter.Row) (validator.Report, error) {
	report := validator.New(s.logger).CheckRows(rows)
	printCheckSummary(os.Stdout, report)

	if s.cfg.Report != "" {
		path := s.cfg.Path(s.cfg.Report)
		if err := report.WriteYAML(path); err != nil {
			return report, err
		}
		s.logger.Info("report written", "path", path)
	}
	return report, nil
}

func printCheckSummary(w io.Writer, report validator.Report) {
	if report.OK() {
		colorOK.Fprintf(w, "All %d rows passed.\n", report.Rows)
		return
	}

	colorWarn.Fprintf(w, "%d of %d rows flagged.\n", len(report.Flagged), report.Rows)

	kinds := make([]string, 0, len(report.Counts))
	for kind := range report.Counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %-26s %d\n", kind, report.Counts[validator.Kind(kind)])
	}

	for _, row := range report.Flagged {
		colorTitle.Fprintf(w, "\n%s (%s)\n", row.Name, row.Slug)
		for _, issue := range row.Issues {
			fmt.Fprintf(w, "  - %s: %s\n", issue.Kind, issue.Detail)
		}
	}
}
