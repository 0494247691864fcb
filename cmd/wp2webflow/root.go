package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/config"
	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/csvio"
	"github.com/f4ah6o/wp2webflow-go/internal/logging"
	"github.com/f4ah6o/wp2webflow-go/internal/normalizer"
)

// Persistent flag variables.
var (
	flagConfig    string
	flagInput     string
	flagCharset   string
	flagOutputDir string
	flagVerbose   bool
	flagJSONLogs  bool
)

var rootCmd = &cobra.Command{
	Use:   "wp2webflow",
	Short: "Convert a WordPress posts export into Webflow CMS CSVs",
	Long: `wp2webflow reads a WordPress "Posts export" CSV and writes the CSV files
the Webflow CMS importer accepts. Post bodies are repaired on the way:
the leading image becomes the Main Image, legacy font sizes become headings,
paragraphs are closed, inline centering becomes a class and redundant
heading emphasis is removed.

Usage:
  wp2webflow all --input Posts-Export.csv
  wp2webflow posts --config wp2webflow.toml`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagConfig, "config", "c", "", "TOML configuration file")
	flags.StringVarP(&flagInput, "input", "i", "", "WordPress posts export CSV (overrides config)")
	flags.StringVar(&flagCharset, "charset", "", "Input encoding, e.g. utf-8 or windows-1252 (overrides config)")
	flags.StringVarP(&flagOutputDir, "output-dir", "o", "", "Directory for generated files (overrides config)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Log every pipeline stage that changes a post")
	flags.BoolVar(&flagJSONLogs, "json-logs", false, "Write logs as JSON lines")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session bundles the settings and logger shared by one command run.
type session struct {
	cfg    config.Config
	logger logging.Logger
}

// newSession loads the configuration, applies flag overrides and opens the logger.
func newSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagInput != "" {
		cfg.Input = flagInput
	}
	if flagCharset != "" {
		cfg.Charset = flagCharset
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoInput) {
			return nil, fmt.Errorf("%w: pass --input or set input in the config file", err)
		}
		return nil, err
	}

	logger, err := logging.New(logging.Options{JSON: flagJSONLogs, Verbose: flagVerbose})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &session{cfg: cfg, logger: logger}, nil
}

func (s *session) Close() {
	s.logger.Close()
}

// readPosts loads the export named by the configuration.
func (s *session) readPosts() ([]converter.Post, error) {
	posts, err := csvio.ReadPosts(s.cfg.Input, s.cfg.Charset)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export loaded", "path", s.cfg.Input, "records", len(posts))
	return posts, nil
}

// pipeline builds the normalizer, tracing stage changes at debug level.
func (s *session) pipeline() *normalizer.Pipeline {
	return normalizer.New(normalizer.WithTrace(func(stage, before, after string) {
		s.logger.Debug("stage changed fragment", "stage", stage, "before", len(before), "after", len(after))
	}))
}

// convert maps posts to Webflow rows, logging skipped records.
func (s *session) convert(posts []converter.Post) []converter.Row {
	mapper := converter.New(s.pipeline(), converter.Options{
		DefaultAuthor: s.cfg.DefaultAuthor,
		Featured:      s.cfg.Featured,
	})

	rows, skipped := mapper.MapAll(posts)
	for _, i := range skipped {
		s.logger.Warn("skipping record without title", "record", i+1)
	}
	return rows
}
