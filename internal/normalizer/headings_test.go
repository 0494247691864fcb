package normalizer

import (
	"testing"
)

func TestPromoteHeadings(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "strong wrapped plus two",
			fragment: `<strong><font size="+2">Intro</font></strong>`,
			want:     "<h2>Intro</h2>\n\n",
		},
		{
			name:     "strong wrapped plus one followed by text",
			fragment: `<strong><font size="+1">Details</font></strong> More text`,
			want:     "<h3>Details</h3>\n\nMore text",
		},
		{
			name:     "bare plus two",
			fragment: `<font size="+2">Title</font>`,
			want:     "<h2>Title</h2>\n\n",
		},
		{
			name:     "bare plus one with other attributes",
			fragment: `<font face="Arial" size='+1'>Sub</font>`,
			want:     "<h3>Sub</h3>\n\n",
		},
		{
			name:     "x-large class paragraph",
			fragment: `<p class="has-x-large-font-size">Big</p><p>Body</p>`,
			want:     "<h2>Big</h2><p>Body</p>",
		},
		{
			name:     "large class paragraph followed by text",
			fragment: `<p class="has-large-font-size">Small</p>After`,
			want:     "<h3>Small</h3>\n\nAfter",
		},
		{
			name:     "unclosed class paragraph before the next paragraph",
			fragment: "<p class=\"has-large-font-size\">Section title\n<p>Body text</p>",
			want:     "<h3>Section title</h3><p>Body text</p>",
		},
		{
			name:     "unclosed class paragraph with trailing break",
			fragment: "<p class=\"has-x-large-font-size\">Big<br>\n<p>Body</p>",
			want:     "<h2>Big</h2><p>Body</p>",
		},
		{
			name:     "unclosed class paragraph at the end",
			fragment: `<p class="has-large-font-size">Heading`,
			want:     "<h3>Heading</h3>",
		},
		{
			name:     "unclosed class paragraph ends at its line",
			fragment: "<p class=\"has-large-font-size\">Heading\nBody",
			want:     "<h3>Heading</h3>\nBody",
		},
		{
			name:     "consecutive unclosed class paragraphs",
			fragment: `<p class="has-large-font-size">A<p class="has-large-font-size">B`,
			want:     "<h3>A</h3><h3>B</h3>",
		},
		{
			name:     "bare font inside a sentence is unwrapped",
			fragment: `<p>Text <font size="+1">inline big</font> more</p>`,
			want:     "<p>Text inline big more</p>",
		},
		{
			name:     "bare font filling its paragraph",
			fragment: `<p><font size="+1">Sub</font></p>`,
			want:     "<h3>Sub</h3>",
		},
		{
			name:     "bare font opening a paragraph",
			fragment: "<p><font size=\"+2\">Title</font>\nBody</p>",
			want:     "<h2>Title</h2>\n\n<p>Body</p>",
		},
		{
			name:     "heading lifted out of its paragraph",
			fragment: `<p><strong><font size="+2">Intro</font></strong></p>`,
			want:     "<h2>Intro</h2>",
		},
		{
			name:     "other font sizes are unwrapped",
			fragment: `<p><font size="2">small print</font></p>`,
			want:     "<p>small print</p>",
		},
		{
			name:     "existing heading running into text",
			fragment: "<h4>Note</h4>Text",
			want:     "<h4>Note</h4>\n\nText",
		},
		{
			name:     "plain paragraph untouched",
			fragment: "<p>Nothing to see</p>",
			want:     "<p>Nothing to see</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromoteHeadings(tt.fragment)
			if got != tt.want {
				t.Errorf("PromoteHeadings() = %q, want %q", got, tt.want)
			}
			if again := PromoteHeadings(got); again != got {
				t.Errorf("PromoteHeadings() not idempotent: %q -> %q", got, again)
			}
		})
	}
}
