// Package main is the entry point for the wp2webflow tool.
// wp2webflow converts a WordPress "Posts export" CSV into the CSV files the
// Webflow CMS importer expects: blog posts with repaired rich-text bodies,
// authors, and categories.
package main

func main() {
	Execute()
}
