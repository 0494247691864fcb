package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/packager"
)

var flagBundle string

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Write posts, authors and categories CSVs, then check and optionally bundle them",
	Long: `All runs posts, authors and categories from a single read of the export,
checks the converted bodies and, when a bundle name is configured, zips the
three CSV files together.

Examples:
  wp2webflow all --input Posts-Export.csv --output-dir webflow
  wp2webflow all -c wp2webflow.toml --bundle webflow.zip`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)

	allCmd.Flags().StringVar(&flagBundle, "bundle", "", "Zip the generated CSVs into this file (overrides config)")
	allCmd.Flags().StringVar(&flagPostsFile, "posts-file", "", "Posts CSV name (overrides config)")
	allCmd.Flags().StringVar(&flagDefaultAuthor, "default-author", "", "Author for posts that name none (overrides config)")
	allCmd.Flags().BoolVar(&flagFeatured, "featured", false, "Mark every post as featured")
	allCmd.Flags().StringVar(&flagReport, "report", "", "Write the check findings as YAML (overrides config)")
}

func runAll(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()
	s.applyPostFlags(cmd)
	if flagBundle != "" {
		s.cfg.Bundle = flagBundle
	}
	if flagReport != "" {
		s.cfg.Report = flagReport
	}

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	rows, err := s.writePosts(posts)
	if err != nil {
		return err
	}
	authorsPath, err := s.writeCatalog("authors", s.cfg.AuthorsPath(), converter.Authors(posts))
	if err != nil {
		return err
	}
	categoriesPath, err := s.writeCatalog("categories", s.cfg.CategoriesPath(), converter.Categories(posts))
	if err != nil {
		return err
	}

	if _, err := s.check(rows); err != nil {
		return err
	}

	if s.cfg.Bundle != "" {
		files := []string{s.cfg.PostsPath(), authorsPath, categoriesPath}
		bundle, err := packager.New(s.logger).Package(files, s.cfg.Path(s.cfg.Bundle))
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Printf("Bundle: %s\n", bundle)
	}
	return nil
}
