// ABOUTME: Catalog binds entry kinds to row templates and measures entries for the list
// ABOUTME: Implements vlist.Describer so every entry's height is computed once, at splice time

package source

import (
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/pkg/tui/component"
	"github.com/mauromedda/pi-vlist/pkg/tui/vlist"
)

// Catalog owns the row templates for Entry payloads.
type Catalog struct {
	templates vlist.Templates[Entry]
	measurers map[string]component.Measurer[Entry]
}

// NewCatalog lays rows out at wrap columns; markdownStyle is a glamour
// style name or component.StyleAuto.
func NewCatalog(wrap int, markdownStyle string) *Catalog {
	text := component.NewTextRow(wrap, func(e Entry) string { return e.Body })
	markdown := component.NewMarkdownRow(wrap, markdownStyle, func(e Entry) string { return e.Body })
	header := component.NewHeaderRow(wrap, Entry.Heading)

	return &Catalog{
		templates: vlist.Templates[Entry]{
			KindText:     text,
			KindMarkdown: markdown,
			KindHeader:   header,
		},
		measurers: map[string]component.Measurer[Entry]{
			KindText:     text,
			KindMarkdown: markdown,
			KindHeader:   header,
		},
	}
}

// Templates returns the kind to renderer registry.
func (c *Catalog) Templates() vlist.Templates[Entry] {
	return c.templates
}

// Describe implements vlist.Describer. Entries of an unknown kind are drawn
// as text.
func (c *Catalog) Describe(e Entry) (int, string) {
	kind := e.Kind
	m, ok := c.measurers[kind]
	if !ok {
		log.Debug("source: %s: unknown kind %q, drawing as text", e.Location(), kind)
		kind = KindText
		m = c.measurers[kind]
	}
	return m.Measure(e), kind
}
