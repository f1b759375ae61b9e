// ABOUTME: Overlays drawn over the list frame, such as the raw viewer's help box
// ABOUTME: Placement clips to the frame and centers narrow overlays horizontally

package tui

import "github.com/mauromedda/pi-vlist/pkg/tui/width"

// OverlayPosition anchors an overlay vertically within the frame.
type OverlayPosition int

const (
	OverlayCenter OverlayPosition = iota
	OverlayTop
	OverlayBottom
)

// Overlay is a component drawn over the frame. A zero Width sizes the box
// to its widest line; a zero Height keeps every line the component writes.
type Overlay struct {
	Component Component
	Position  OverlayPosition
	Width     int
	Height    int
}

// renderWidth is the width the component renders at in a w-column frame.
func (o Overlay) renderWidth(w int) int {
	if o.Width <= 0 || o.Width > w {
		return w
	}
	return o.Width
}

// place clips lines to the overlay height and to a w x h frame, then
// returns the clipped lines with the top row, left column and the number
// of columns the box covers.
func (o Overlay) place(lines []string, w, h int) (clipped []string, row, col, cw int) {
	if o.Height > 0 && len(lines) > o.Height {
		lines = lines[:o.Height]
	}
	if len(lines) > h {
		lines = lines[:max(h, 0)]
	}

	switch o.Position {
	case OverlayTop:
		row = 0
	case OverlayBottom:
		row = h - len(lines)
	default:
		row = (h - len(lines)) / 2
	}
	row = max(row, 0)

	cw = o.Width
	if cw <= 0 {
		for _, line := range lines {
			cw = max(cw, width.VisibleWidth(line))
		}
	}
	cw = min(cw, w)
	col = max((w-cw)/2, 0)
	return lines, row, col, cw
}
