// ABOUTME: Entry is the payload shown by the list: one paragraph, section, heading or record
// ABOUTME: Kinds name the row template that draws the entry

package source

import "strconv"

// Row template kinds.
const (
	KindText     = "text"
	KindMarkdown = "markdown"
	KindHeader   = "header"
)

// Kinds lists every kind a Catalog can draw.
var Kinds = []string{KindText, KindMarkdown, KindHeader}

// Entry is one list item.
type Entry struct {
	Kind   string
	Title  string
	Body   string
	Source string // input path, "-" for stdin, "generated" for synthetic entries
	Line   int    // 1-based line where the entry starts; 0 when unknown
}

// FilterValue is the text the fuzzy filter matches against.
func (e Entry) FilterValue() string {
	switch {
	case e.Title == "":
		return e.Body
	case e.Body == "":
		return e.Title
	default:
		return e.Title + " " + e.Body
	}
}

// Heading is the text a header row shows.
func (e Entry) Heading() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Body
}

// Location formats the entry origin as path:line.
func (e Entry) Location() string {
	if e.Line <= 0 {
		return e.Source
	}
	return e.Source + ":" + strconv.Itoa(e.Line)
}
