// ABOUTME: Collaborator contracts of the list view: item describer, row renderers, host surface
// ABOUTME: Templates maps a kind to its Renderer and doubles as the row pool's template source

package vlist

import (
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/rowpool"
)

// Describer reports the fixed height and template kind of a payload.
// It must be pure: the list asks once, when the element is spliced in.
type Describer[T any] interface {
	Describe(v T) (size int, kind string)
}

// DescriberFunc adapts a function to Describer.
type DescriberFunc[T any] func(v T) (size int, kind string)

// Describe calls f(v).
func (f DescriberFunc[T]) Describe(v T) (int, string) {
	return f(v)
}

// Renderer draws payloads of one template kind into pooled rows.
//
// NewState builds the per-row render state when the pool constructs a row
// and Teardown releases it when the pool destroys the row. Render binds a
// payload into a row buffer; it is called every time a row is attached,
// including when a pooled row is reused for a different payload.
type Renderer[T any] interface {
	NewState() any
	Render(v T, state any, out *tui.RenderBuffer, size int)
	Teardown(state any)
}

// Templates is the registry of renderers keyed by template kind.
type Templates[T any] map[string]Renderer[T]

// Template implements rowpool.Source.
func (ts Templates[T]) Template(kind string) (rowpool.Template, bool) {
	r, ok := ts[kind]
	if !ok {
		return nil, false
	}
	return r, true
}

// Surface is the scrollable host the list is drawn into.
type Surface interface {
	// ViewportHeight reports how many rows are available for the list.
	ViewportHeight() int
	// SetContentHeight tells the host the total height of all items.
	SetContentHeight(rows int)
	// RequestLayout asks the host to redraw on its next opportunity.
	RequestLayout()
}

// NopSurface is a fixed-height Surface for headless use.
type NopSurface struct {
	Height        int
	ContentHeight int
	Layouts       int
}

func (s *NopSurface) ViewportHeight() int       { return s.Height }
func (s *NopSurface) SetContentHeight(rows int) { s.ContentHeight = rows }
func (s *NopSurface) RequestLayout()            { s.Layouts++ }
