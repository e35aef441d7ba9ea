package types

// Section is a titled region of the template delimited by second-level
// markdown headings. Line is the 1-based line number of the heading.
// Titles are not required to be unique; checks that need a canonical
// occurrence use the first one in document order.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Line  int    `json:"line"`
}
