package normalizer

import (
	"testing"
)

func TestRemoveLeadingEmptyParagraph(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "empty paragraph holding a break",
			fragment: "<p><br /></p><p>Real text</p>",
			want:     "<p>Real text</p>",
		},
		{
			name:     "no leading empty paragraph",
			fragment: "<p>Real text</p>",
			want:     "<p>Real text</p>",
		},
		{
			name:     "lone empty paragraph kept",
			fragment: "<p></p>",
			want:     "<p></p>",
		},
		{
			name:     "several empty paragraphs before a heading",
			fragment: "  <p>&nbsp;</p>\n<p></p><h2>T</h2>",
			want:     "<h2>T</h2>",
		},
		{
			name:     "raw no-break space",
			fragment: "<p>\u00a0</p>\n<p>Body</p>",
			want:     "<p>Body</p>",
		},
		{
			name:     "loose text after empty paragraph",
			fragment: "<p></p>Loose",
			want:     "<p></p>Loose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveLeadingEmptyParagraph(tt.fragment)
			if got != tt.want {
				t.Errorf("RemoveLeadingEmptyParagraph() = %q, want %q", got, tt.want)
			}
			if again := RemoveLeadingEmptyParagraph(got); again != got {
				t.Errorf("RemoveLeadingEmptyParagraph() not idempotent: %q -> %q", got, again)
			}
		})
	}
}
