// ABOUTME: Shared plumbing for list row templates: the Measurer contract and line fitting
// ABOUTME: A row's height is measured once at insertion and every bind is pinned to it

package component

import "github.com/mauromedda/pi-vlist/pkg/tui"

// Measurer reports how many lines a payload occupies once rendered.
type Measurer[T any] interface {
	Measure(v T) int
}

// writeFitted writes lines into out, cut or blank-padded to exactly size.
func writeFitted(out *tui.RenderBuffer, lines []string, size int) {
	if len(lines) > size {
		lines = lines[:size]
	}
	out.WriteLines(lines)
	for i := len(lines); i < size; i++ {
		out.WriteLine("")
	}
}
