// ABOUTME: Section header row template styled with lipgloss
// ABOUTME: Bold accent title over a bottom rule spanning the wrap width

package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// HeaderRow renders a payload's title as a section heading.
type HeaderRow[T any] struct {
	title func(T) string
	style lipgloss.Style
}

// NewHeaderRow creates a HeaderRow laid out at wrap columns.
func NewHeaderRow[T any](wrap int, title func(T) string) *HeaderRow[T] {
	wrap = max(wrap, 1)
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("8")).
		Width(wrap)
	return &HeaderRow[T]{title: title, style: style}
}

// Measure returns the height of the styled heading, rule included.
func (r *HeaderRow[T]) Measure(v T) int {
	return lipgloss.Height(r.render(v))
}

// NewState implements vlist.Renderer. Header rows keep no state.
func (r *HeaderRow[T]) NewState() any { return nil }

// Render implements vlist.Renderer.
func (r *HeaderRow[T]) Render(v T, _ any, out *tui.RenderBuffer, size int) {
	writeFitted(out, strings.Split(r.render(v), "\n"), size)
}

// Teardown implements vlist.Renderer.
func (r *HeaderRow[T]) Teardown(any) {}

func (r *HeaderRow[T]) render(v T) string {
	// Width wraps at word boundaries; collapse newlines so the title stays one paragraph.
	title := strings.Join(strings.Fields(width.StripANSI(r.title(v))), " ")
	return r.style.Render(title)
}
