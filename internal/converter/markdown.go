package converter

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Renderer turns canonical post bodies into Markdown for terminal previews.
type Renderer struct {
	mdConverter *md.Converter
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{mdConverter: md.NewConverter("", true, nil)}
}

// Markdown converts a canonical fragment to Markdown.
func (r *Renderer) Markdown(fragment string) (string, error) {
	out, err := r.mdConverter.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("failed to convert to markdown: %w", err)
	}
	return postProcessMarkdown(out), nil
}

func postProcessMarkdown(md string) string {
	md = blankRunRe.ReplaceAllString(md, "\n\n")

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
