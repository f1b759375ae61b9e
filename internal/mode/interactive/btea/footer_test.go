// ABOUTME: Tests for FooterModel Bubble Tea leaf component
// ABOUTME: Verifies the status line segments, filter prompt and width fitting

package btea

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-vlist/pkg/tui/rowpool"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// Compile-time check: FooterModel must satisfy tea.Model.
var _ tea.Model = FooterModel{}

func TestFooterModel_Init(t *testing.T) {
	m := NewFooterModel()
	if cmd := m.Init(); cmd != nil {
		t.Errorf("Init() returned non-nil cmd")
	}
}

func TestFooterModel_WithMethods(t *testing.T) {
	m := NewFooterModel().
		WithTitle("notes.md").
		WithPosition(10, 34, 400).
		WithItems(50).
		WithPoolStats(rowpool.Stats{Lent: 6, Free: 2}).
		WithFilter(true, "pool", 3)

	if m.title != "notes.md" {
		t.Errorf("title = %q; want notes.md", m.title)
	}
	if m.top != 10 || m.bottom != 34 || m.total != 400 {
		t.Errorf("position = %d-%d/%d; want 10-34/400", m.top, m.bottom, m.total)
	}
	if m.items != 50 {
		t.Errorf("items = %d; want 50", m.items)
	}
	if m.stats.Lent != 6 {
		t.Errorf("stats.Lent = %d; want 6", m.stats.Lent)
	}
	if !m.filtering || m.query != "pool" || m.matches != 3 {
		t.Errorf("filter = %v %q %d; want true pool 3", m.filtering, m.query, m.matches)
	}
}

func TestFooterModel_View(t *testing.T) {
	tests := []struct {
		name   string
		footer FooterModel
		want   []string
	}{
		{
			name:   "position and pool",
			footer: NewFooterModel().WithTitle("notes.md").WithPosition(10, 34, 400).WithItems(50).WithPoolStats(rowpool.Stats{Lent: 6, Free: 2}),
			want:   []string{"notes.md", "11-34/400", "50 items", "pool 6/8"},
		},
		{
			name:   "empty list",
			footer: NewFooterModel().WithTitle("t"),
			want:   []string{"empty", "0 items"},
		},
		{
			name:   "filter prompt replaces title",
			footer: NewFooterModel().WithTitle("notes.md").WithFilter(true, "ro", 4),
			want:   []string{"/ro"},
		},
		{
			name:   "applied filter shown after title",
			footer: NewFooterModel().WithTitle("notes.md").WithFilter(false, "ro", 4),
			want:   []string{"notes.md", "/ro (4)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := width.StripANSI(tt.footer.View())
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("View() = %q; want it to contain %q", view, w)
				}
			}
		})
	}
}

func TestFooterModel_FitsWidth(t *testing.T) {
	m := NewFooterModel().WithTitle(strings.Repeat("long-title ", 20)).WithPosition(0, 10, 100).WithItems(100)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = updated.(FooterModel)

	view := m.View()
	if w := width.VisibleWidth(view); w != 60 {
		t.Errorf("VisibleWidth(View()) = %d; want 60", w)
	}
	if !strings.Contains(width.StripANSI(view), "1-10/100") {
		t.Errorf("right segment should survive truncation: %q", width.StripANSI(view))
	}
}
