// ABOUTME: Single-line status bar with left and right segments
// ABOUTME: Truncates the left segment with an ellipsis so the right one always fits

package component

import (
	"strings"

	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// StatusLine renders one line: Left flush left, Right flush right.
type StatusLine struct {
	Left  string
	Right string
}

// NewStatusLine creates an empty StatusLine.
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// Set replaces both segments.
func (s *StatusLine) Set(left, right string) {
	s.Left = left
	s.Right = right
}

// Render writes the status line into the buffer.
func (s *StatusLine) Render(out *tui.RenderBuffer, w int) {
	pal := theme.Current().Palette
	right := width.TruncateToWidth(s.Right, w)
	rw := width.VisibleWidth(right)

	avail := w - rw
	if rw > 0 {
		avail-- // gap
	}
	left := width.TruncateToWidth(s.Left, max(avail, 0))
	gap := w - width.VisibleWidth(left) - rw

	var b strings.Builder
	b.WriteString(pal.StatusLeft.Apply(left))
	b.WriteString(strings.Repeat(" ", max(gap, 0)))
	b.WriteString(pal.StatusRight.Apply(right))
	out.WriteLine(b.String())
}

// Invalidate is a no-op for StatusLine.
func (s *StatusLine) Invalidate() {}
