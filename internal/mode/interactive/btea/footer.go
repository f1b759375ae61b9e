// ABOUTME: FooterModel is a Bubble Tea leaf that renders the one-line status bar
// ABOUTME: Shows the title or filter prompt on the left and scroll position plus pool stats on the right

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-vlist/pkg/tui/rowpool"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// FooterModel renders a status bar at the bottom of the terminal.
// Left: title, or the filter prompt while filtering.
// Right: visible rows, total rows, item count and pool usage.
type FooterModel struct {
	title     string
	top       int
	bottom    int
	total     int
	items     int
	stats     rowpool.Stats
	filtering bool
	query     string
	matches   int
	width     int
}

// NewFooterModel creates an empty FooterModel.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages relevant to the footer.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

// WithTitle returns a FooterModel with the title set.
func (m FooterModel) WithTitle(title string) FooterModel {
	m.title = title
	return m
}

// WithPosition returns a FooterModel showing rows [top, bottom) of total.
func (m FooterModel) WithPosition(top, bottom, total int) FooterModel {
	m.top, m.bottom, m.total = top, bottom, total
	return m
}

// WithItems returns a FooterModel with the item count set.
func (m FooterModel) WithItems(n int) FooterModel {
	m.items = n
	return m
}

// WithPoolStats returns a FooterModel with the row pool counters set.
func (m FooterModel) WithPoolStats(s rowpool.Stats) FooterModel {
	m.stats = s
	return m
}

// WithFilter returns a FooterModel showing the filter prompt.
func (m FooterModel) WithFilter(active bool, query string, matches int) FooterModel {
	m.filtering = active
	m.query = query
	m.matches = matches
	return m
}

// View renders the footer line.
func (m FooterModel) View() string {
	s := Styles()

	left := s.StatusLeft.Render(m.title)
	switch {
	case m.filtering:
		left = s.StatusFilter.Render("/" + m.query + "█")
	case m.query != "":
		left = s.StatusLeft.Render(m.title) + s.StatusFilter.Render(fmt.Sprintf("  /%s (%d)", m.query, m.matches))
	}

	pos := "empty"
	if m.total > 0 {
		pos = fmt.Sprintf("%d-%d/%d", m.top+1, m.bottom, m.total)
	}
	right := s.StatusRight.Render(fmt.Sprintf("%s  %d items  pool %d/%d",
		pos, m.items, m.stats.Lent, m.stats.Lent+m.stats.Free))

	if m.width <= 0 {
		return left + "  " + right
	}

	right = width.TruncateToWidth(right, m.width)
	rw := width.VisibleWidth(right)
	left = width.TruncateToWidth(left, max(m.width-rw-1, 0))
	gap := m.width - width.VisibleWidth(left) - rw
	return left + strings.Repeat(" ", max(gap, 0)) + right
}
