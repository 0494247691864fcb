package normalizer

import (
	"testing"
)

func TestEnsureParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "already wrapped",
			fragment: "<p>Already</p>",
			want:     "<p>Already</p>",
		},
		{
			name:     "wrapped fragment is trimmed",
			fragment: "<h2>Intro</h2>\n\n",
			want:     "<h2>Intro</h2>",
		},
		{
			name:     "wrapped with inner newline",
			fragment: "<p>a\nb</p>",
			want:     "<p>a\nb</p>",
		},
		{
			name:     "single loose line",
			fragment: "Hello world",
			want:     "<p>Hello world</p>",
		},
		{
			name:     "blank line splits paragraphs",
			fragment: "First para\n\nSecond para",
			want:     "<p>First para</p><p>Second para</p>",
		},
		{
			name:     "several blank lines",
			fragment: "One\n\n\n\nTwo",
			want:     "<p>One</p><p>Two</p>",
		},
		{
			name:     "sentence end before capital",
			fragment: "It ended.\nThen it began.",
			want:     "<p>It ended.</p><p>Then it began.</p>",
		},
		{
			name:     "wrapped continuation",
			fragment: "a line that\nwraps here",
			want:     "<p>a line that<br />wraps here</p>",
		},
		{
			name:     "period before lower case",
			fragment: "See fig.\nbelow",
			want:     "<p>See fig.<br />below</p>",
		},
		{
			name:     "text after heading",
			fragment: "<h2>Title</h2>\nBody text",
			want:     "<h2>Title</h2><p>Body text</p>",
		},
		{
			name:     "list between loose lines",
			fragment: "Intro\n<ul>\n<li>One</li>\n<li>Two</li>\n</ul>\nOutro",
			want:     "<p>Intro</p><ul><li>One</li><li>Two</li></ul><p>Outro</p>",
		},
		{
			name:     "windows line endings",
			fragment: "One\r\n\r\nTwo",
			want:     "<p>One</p><p>Two</p>",
		},
		{
			name:     "empty",
			fragment: "",
			want:     "",
		},
		{
			name:     "inline-led line",
			fragment: "<strong>Bold</strong> lead\nnext",
			want:     "<p><strong>Bold</strong> lead<br />next</p>",
		},
		{
			name:     "open paragraph then loose text",
			fragment: "<p>Opened\n\nLoose text",
			want:     "<p>Opened</p><p>Loose text</p>",
		},
		{
			name:     "sentence split inside an explicit paragraph",
			fragment: "<p>Para one.\nPara Two starts</p>\ntrailing",
			want:     "<p>Para one.</p><p>Para Two starts</p><p>trailing</p>",
		},
		{
			name:     "loose line between wrapped blocks",
			fragment: "<p>a</p>\nloose\n<p>b</p>",
			want:     "<p>a</p><p>loose</p><p>b</p>",
		},
		{
			name:     "text inside a container stays unwrapped",
			fragment: "<div>\ninside\n</div>\nafter",
			want:     "<div>inside</div><p>after</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureParagraphs(tt.fragment)
			if got != tt.want {
				t.Errorf("EnsureParagraphs() = %q, want %q", got, tt.want)
			}
			if again := EnsureParagraphs(got); again != got {
				t.Errorf("EnsureParagraphs() not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCloseBreakTerminated(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "break before closing tag",
			fragment: "<p>Text<br /></p>",
			want:     "<p>Text</p>",
		},
		{
			name:     "break before next paragraph",
			fragment: "<p>One<br>\n<p>Two</p>",
			want:     "<p>One</p>\n<p>Two</p>",
		},
		{
			name:     "break at end of fragment",
			fragment: "<p>End<br />",
			want:     "<p>End</p>",
		},
		{
			name:     "inner break kept",
			fragment: "<p>Keep<br />inner</p>",
			want:     "<p>Keep<br />inner</p>",
		},
		{
			name:     "upper-case break-terminated paragraph",
			fragment: "<P>One<br>\n<P>Two</P>",
			want:     "<p>One</p>\n<p>Two</P>",
		},
		{
			name:     "chain of break-terminated paragraphs",
			fragment: "<p>a<br><p>b<br><p>c</p>",
			want:     "<p>a</p><p>b</p><p>c</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CloseBreakTerminated(tt.fragment); got != tt.want {
				t.Errorf("CloseBreakTerminated() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloseUnterminated(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "runs into next paragraph",
			fragment: "<p>First line<p>Second</p>",
			want:     "<p>First line</p><p>Second</p>",
		},
		{
			name:     "three unclosed paragraphs",
			fragment: "<p>One<p>Two<p>Three",
			want:     "<p>One</p><p>Two</p><p>Three</p>",
		},
		{
			name:     "content is trimmed before closing",
			fragment: "<p>Hello   \n<p>World</p>",
			want:     "<p>Hello</p><p>World</p>",
		},
		{
			name:     "closed paragraphs untouched",
			fragment: "<p>a</p><p>b</p>",
			want:     "<p>a</p><p>b</p>",
		},
		{
			name:     "attributes preserved",
			fragment: `<p class="x">A<p>B</p>`,
			want:     `<p class="x">A</p><p>B</p>`,
		},
		{
			name:     "upper-case tags are lowered",
			fragment: "<P>upper<P>case",
			want:     "<p>upper</p><p>case</p>",
		},
		{
			name:     "preformatted block is not a paragraph",
			fragment: "<p>a</p><pre>code",
			want:     "<p>a</p><pre>code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CloseUnterminated(tt.fragment); got != tt.want {
				t.Errorf("CloseUnterminated() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDropDuplicateClosers(t *testing.T) {
	got := DropDuplicateClosers("<p>a</p></p>\n</p><p>b</p>")
	want := "<p>a</p><p>b</p>"
	if got != want {
		t.Errorf("DropDuplicateClosers() = %q, want %q", got, want)
	}
}

func TestNormalizeParagraphs(t *testing.T) {
	got := NormalizeParagraphs("<p>First line<p>Second, unclosed<br></p>")
	want := "<p>First line</p><p>Second, unclosed</p>"
	if got != want {
		t.Errorf("NormalizeParagraphs() = %q, want %q", got, want)
	}
}
