package normalizer

import (
	"strings"
	"testing"
)

func TestNormalizeCenterAlignment(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "style holding only centering is removed",
			fragment: `<p style="text-align: center;">Hello</p>`,
			want:     `<div class="text-align-center"><p>Hello</p></div>`,
		},
		{
			name:     "other declarations and attributes kept",
			fragment: `<h2 class="title" style="color: red; text-align:center">Hello</h2>`,
			want:     `<div class="text-align-center"><h2 class="title" style="color: red">Hello</h2></div>`,
		},
		{
			name:     "left alignment untouched",
			fragment: `<p style="text-align: left">Hi</p>`,
			want:     `<p style="text-align: left">Hi</p>`,
		},
		{
			name:     "no style",
			fragment: "<p>Plain</p>",
			want:     "<p>Plain</p>",
		},
		{
			name:     "several centered elements",
			fragment: `<h1 style="text-align:center">A</h1><p style='text-align:center'>B</p>`,
			want:     `<div class="text-align-center"><h1>A</h1></div><div class="text-align-center"><p>B</p></div>`,
		},
		{
			name:     "upper-case markup",
			fragment: `<P STYLE="TEXT-ALIGN: CENTER">X</P>`,
			want:     `<div class="text-align-center"><P>X</P></div>`,
		},
		{
			name:     "unclosed element left alone",
			fragment: `<h3 style="text-align:center">Dangling`,
			want:     `<h3 style="text-align:center">Dangling`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCenterAlignment(tt.fragment)
			if got != tt.want {
				t.Errorf("NormalizeCenterAlignment() = %q, want %q", got, tt.want)
			}
			if again := NormalizeCenterAlignment(got); again != got {
				t.Errorf("NormalizeCenterAlignment() not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeCenterAlignment_PreservesContent(t *testing.T) {
	got := NormalizeCenterAlignment(`<p style="text-align:center">Hello</p>`)
	if strings.Contains(got, "style") {
		t.Errorf("style attribute survived: %q", got)
	}
	if !strings.Contains(got, ">Hello</p>") {
		t.Errorf("inner text changed: %q", got)
	}
}
