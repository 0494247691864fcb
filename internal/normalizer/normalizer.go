// Package normalizer provides the rich-text repair pipeline for exported post fields.
// It lifts a leading image out of the body, promotes legacy font-size markup to
// headings, repairs paragraph structure, converts inline centering to a wrapper
// class and strips redundant heading emphasis. Every stage is a pure string
// rewrite, so stages can be tested and reordered in isolation.
package normalizer

// noParaRun matches a run of text containing no <p> opening and no </p> closing tag.
const noParaRun = `(?:[^<]|<[^pP/]|</[^pP]|<[pP][a-zA-Z]|</[pP][a-zA-Z])*`

// inlineRun matches a run of text containing no heading or paragraph tags.
const inlineRun = `(?:[^<]|<[^hHpP/]|</[^hHpP])*`

// Stage is a single rewrite step over a fragment.
type Stage func(string) string

// NamedStage pairs a Stage with the name reported to trace hooks.
type NamedStage struct {
	Name  string
	Apply Stage
}

// TraceFunc observes a stage that changed a fragment.
type TraceFunc func(stage, before, after string)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTrace registers fn to be called after every stage that changes a fragment.
func WithTrace(fn TraceFunc) Option {
	return func(p *Pipeline) {
		p.trace = fn
	}
}

// Pipeline runs the body and excerpt transforms in their fixed order.
type Pipeline struct {
	stages []NamedStage
	trace  TraceFunc
}

// New creates a Pipeline with the canonical stage order.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		stages: []NamedStage{
			{Name: "promote-headings", Apply: PromoteHeadings},
			{Name: "ensure-paragraphs", Apply: EnsureParagraphs},
			{Name: "close-break-terminated", Apply: CloseBreakTerminated},
			{Name: "close-unterminated", Apply: CloseUnterminated},
			{Name: "drop-duplicate-closers", Apply: DropDuplicateClosers},
			{Name: "center-alignment", Apply: NormalizeCenterAlignment},
			{Name: "strip-heading-emphasis", Apply: StripRedundantEmphasis},
			{Name: "remove-leading-empty-paragraph", Apply: RemoveLeadingEmptyParagraph},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stages returns the structural stages run by Canonicalize, in order.
func (p *Pipeline) Stages() []NamedStage {
	out := make([]NamedStage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Body extracts the leading image from raw and canonicalizes the remainder.
// It returns the image address (empty when there is none) and the body.
func (p *Pipeline) Body(raw string) (string, string) {
	image, rest := ExtractLeadingImage(raw)
	if image != "" {
		p.observe("extract-leading-image", raw, rest)
	}
	return image, p.Canonicalize(rest)
}

// Canonicalize applies the structural stages to fragment, repeating the whole
// sequence until a pass leaves it unchanged. Applying it to its own output
// changes nothing.
func (p *Pipeline) Canonicalize(fragment string) string {
	return fixPoint(fragment, p.pass)
}

// pass applies every structural stage once, in order.
func (p *Pipeline) pass(fragment string) string {
	for _, stage := range p.stages {
		next := stage.Apply(fragment)
		if next != fragment {
			p.observe(stage.Name, fragment, next)
		}
		fragment = next
	}
	return fragment
}

// Excerpt reduces raw to plain text.
func (p *Pipeline) Excerpt(raw string) string {
	return StripAllMarkup(raw)
}

func (p *Pipeline) observe(stage, before, after string) {
	if p.trace != nil {
		p.trace(stage, before, after)
	}
}

var defaultPipeline = New()

// NormalizeBody runs the full body pipeline and returns the extracted image
// address and the canonical fragment.
func NormalizeBody(raw string) (string, string) {
	return defaultPipeline.Body(raw)
}

// NormalizeExcerpt reduces an excerpt field to plain text.
func NormalizeExcerpt(raw string) string {
	return defaultPipeline.Excerpt(raw)
}

// fixPoint applies step until it stops changing s. The iteration count is
// bounded by the input length so adversarial input cannot loop forever.
func fixPoint(s string, step func(string) string) string {
	limit := len(s) + 1
	for i := 0; i < limit; i++ {
		next := step(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}
