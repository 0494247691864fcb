package search

// Field selects which export column a search looks at.
type Field string

// Searchable fields. FieldAll searches title, content and excerpt.
const (
	FieldAll     Field = ""
	FieldTitle   Field = "title"
	FieldContent Field = "content"
	FieldExcerpt Field = "excerpt"
)

// Result is a field of one post that matched the query.
type Result struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Field    Field    `json:"field"`
	Matches  int      `json:"matches"`
	Contexts []string `json:"contexts"`
}

// Options contains configuration for search operations.
type Options struct {
	// Query holds space-separated keywords, matched case-insensitively with OR logic.
	Query      string
	Field      Field
	MaxResults int
}
