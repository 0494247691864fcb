package normalizer

import (
	"testing"
)

func TestStripAllMarkup(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "inline markup",
			fragment: "<p>Hello <strong>world</strong></p>",
			want:     "Hello world",
		},
		{
			name:     "block boundaries separate words",
			fragment: "<p>One</p><p>Two</p>",
			want:     "One Two",
		},
		{
			name:     "entities and breaks",
			fragment: "Fish &amp; chips<br/>today",
			want:     "Fish & chips today",
		},
		{
			name:     "whitespace only",
			fragment: "  \n\t ",
			want:     "",
		},
		{
			name:     "comments dropped",
			fragment: "<!-- note --><p>A</p>",
			want:     "A",
		},
		{
			name:     "non-breaking spaces collapse",
			fragment: "<p>a&nbsp;&nbsp;b</p>",
			want:     "a b",
		},
		{
			name:     "literal angle brackets kept",
			fragment: "5 < 6 and 7 > 3",
			want:     "5 < 6 and 7 > 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripAllMarkup(tt.fragment); got != tt.want {
				t.Errorf("StripAllMarkup() = %q, want %q", got, tt.want)
			}
		})
	}
}
