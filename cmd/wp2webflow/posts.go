package main

import (
	"github.com/spf13/cobra"

	"github.com/f4ah6o/wp2webflow-go/internal/converter"
	"github.com/f4ah6o/wp2webflow-go/internal/csvio"
)

var (
	flagPostsFile     string
	flagDefaultAuthor string
	flagFeatured      bool
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Write the Webflow blog collection CSV",
	Long: `Posts converts every titled record of the export into a row of the Webflow
blog collection. The post body is normalized and its leading image becomes
the Main Image; the excerpt is reduced to plain text.

Examples:
  wp2webflow posts --input Posts-Export.csv
  wp2webflow posts -i Posts-Export.csv --default-author "Little Bee Speech" --featured`,
	Args: cobra.NoArgs,
	RunE: runPosts,
}

func init() {
	rootCmd.AddCommand(postsCmd)

	postsCmd.Flags().StringVar(&flagPostsFile, "posts-file", "", "Posts CSV name (overrides config)")
	postsCmd.Flags().StringVar(&flagDefaultAuthor, "default-author", "", "Author for posts that name none (overrides config)")
	postsCmd.Flags().BoolVar(&flagFeatured, "featured", false, "Mark every post as featured")
}

func runPosts(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()
	s.applyPostFlags(cmd)

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	_, err = s.writePosts(posts)
	return err
}

func (s *session) applyPostFlags(cmd *cobra.Command) {
	if flagPostsFile != "" {
		s.cfg.PostsFile = flagPostsFile
	}
	if flagDefaultAuthor != "" {
		s.cfg.DefaultAuthor = flagDefaultAuthor
	}
	if cmd.Flags().Changed("featured") {
		s.cfg.Featured = flagFeatured
	}
}

func (s *session) writePosts(posts []converter.Post) ([]converter.Row, error) {
	rows := s.convert(posts)
	path := s.cfg.PostsPath()
	if err := csvio.WritePosts(path, rows); err != nil {
		return nil, err
	}
	s.logger.Info("posts written", "path", path, "rows", len(rows), "skipped", len(posts)-len(rows))
	return rows, nil
}
