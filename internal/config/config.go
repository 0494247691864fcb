// Package config loads the conversion settings from a TOML file.
// Command-line flags are applied on top of the loaded values by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrNoInput is returned by Validate when no export file is configured.
var ErrNoInput = errors.New("no input export configured")

// Config holds the settings for one conversion run.
type Config struct {
	// Input is the WordPress "Posts export" CSV.
	Input string `toml:"input"`
	// Charset names the input encoding, e.g. "utf-8" or "windows-1252".
	Charset string `toml:"charset"`

	OutputDir      string `toml:"output_dir"`
	PostsFile      string `toml:"posts_file"`
	AuthorsFile    string `toml:"authors_file"`
	CategoriesFile string `toml:"categories_file"`

	// DefaultAuthor is used for posts whose export row names no author.
	DefaultAuthor string `toml:"default_author"`
	// Featured is written to the Featured column of every post.
	Featured bool `toml:"featured"`

	// Bundle, when set, names a zip archive that collects the generated CSVs.
	Bundle string `toml:"bundle"`
	// Report, when set, names a YAML file that receives the check results.
	Report string `toml:"report"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Charset:        "utf-8",
		OutputDir:      ".",
		PostsFile:      "blog-webflow.csv",
		AuthorsFile:    "authors-webflow.csv",
		CategoriesFile: "categories-webflow.csv",
	}
}

// Load reads path on top of Default. A missing file is an error; pass an
// empty path to get the defaults alone.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}

	return cfg, nil
}

// Validate checks that the settings are usable for a conversion.
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if c.PostsFile == "" || c.AuthorsFile == "" || c.CategoriesFile == "" {
		return errors.New("output file names must not be empty")
	}
	return nil
}

// Path resolves an output name against OutputDir. Absolute names are kept.
func (c Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// PostsPath is the resolved location of the posts CSV.
func (c Config) PostsPath() string { return c.Path(c.PostsFile) }

// AuthorsPath is the resolved location of the authors CSV.
func (c Config) AuthorsPath() string { return c.Path(c.AuthorsFile) }

// CategoriesPath is the resolved location of the categories CSV.
func (c Config) CategoriesPath() string { return c.Path(c.CategoriesFile) }
