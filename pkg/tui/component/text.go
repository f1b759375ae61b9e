// ABOUTME: Plain text row template: word-wraps a payload's text at a fixed width
// ABOUTME: Row state caches the wrapped lines so rebinding the same text skips wrapping

package component

import (
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// TextRow renders the text of a payload wrapped at a fixed width.
type TextRow[T any] struct {
	wrap int
	text func(T) string
}

type textState struct {
	bound string
	lines []string
}

// NewTextRow creates a TextRow. text extracts the payload's content.
func NewTextRow[T any](wrap int, text func(T) string) *TextRow[T] {
	return &TextRow[T]{wrap: max(wrap, 1), text: text}
}

// Measure returns the number of wrapped lines.
func (r *TextRow[T]) Measure(v T) int {
	return len(r.layout(r.text(v)))
}

// NewState implements vlist.Renderer.
func (r *TextRow[T]) NewState() any {
	return &textState{}
}

// Render implements vlist.Renderer.
func (r *TextRow[T]) Render(v T, state any, out *tui.RenderBuffer, size int) {
	s, _ := state.(*textState)
	if s == nil {
		s = &textState{}
	}
	content := r.text(v)
	if s.lines == nil || s.bound != content {
		s.bound = content
		s.lines = r.layout(content)
	}

	color := theme.Current().Palette.Primary
	styled := make([]string, len(s.lines))
	for i, line := range s.lines {
		styled[i] = color.Apply(line)
	}
	writeFitted(out, styled, size)
}

// Teardown implements vlist.Renderer.
func (r *TextRow[T]) Teardown(state any) {
	if s, ok := state.(*textState); ok {
		s.lines = nil
	}
}

func (r *TextRow[T]) layout(content string) []string {
	lines := width.WrapWords(content, r.wrap)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
