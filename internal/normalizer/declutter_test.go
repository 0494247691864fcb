package normalizer

import (
	"testing"
)

func TestStripRedundantEmphasis(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "strong spanning heading",
			fragment: "<h2><strong>Title</strong></h2>",
			want:     "<h2>Title</h2>",
		},
		{
			name:     "em with surrounding whitespace and attributes",
			fragment: `<h3 id="x"> <em>Sub</em> </h3>`,
			want:     `<h3 id="x">Sub</h3>`,
		},
		{
			name:     "partial emphasis kept",
			fragment: "<h2><strong>Bold</strong> rest</h2>",
			want:     "<h2><strong>Bold</strong> rest</h2>",
		},
		{
			name:     "sibling emphasis kept",
			fragment: "<h2><b>A</b> and <b>B</b></h2>",
			want:     "<h2><b>A</b> and <b>B</b></h2>",
		},
		{
			name:     "stacked wrappers",
			fragment: "<h2><strong><em>X</em></strong></h2>",
			want:     "<h2>X</h2>",
		},
		{
			name:     "mismatched tags kept",
			fragment: "<h2><b>X</i></h2>",
			want:     "<h2><b>X</i></h2>",
		},
		{
			name:     "emphasis outside headings kept",
			fragment: "<p><strong>Lead</strong></p><h4><b>Four</b></h4>",
			want:     "<p><strong>Lead</strong></p><h4>Four</h4>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripRedundantEmphasis(tt.fragment); got != tt.want {
				t.Errorf("StripRedundantEmphasis() = %q, want %q", got, tt.want)
			}
		})
	}
}
