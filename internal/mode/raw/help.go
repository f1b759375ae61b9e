// ABOUTME: Keybinding help overlay for the raw viewer, boxed with lipgloss
// ABOUTME: Lists every action with the keys bound to it; any key dismisses it

package raw

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/pkg/tui"
)

var helpActions = []struct {
	action config.KeyAction
	label  string
}{
	{config.ActionScrollUp, "line up"},
	{config.ActionScrollDown, "line down"},
	{config.ActionPageUp, "page up"},
	{config.ActionPageDown, "page down"},
	{config.ActionHome, "top"},
	{config.ActionEnd, "bottom"},
	{config.ActionFilter, "filter"},
	{config.ActionCancel, "clear filter"},
	{config.ActionHelp, "help"},
	{config.ActionQuit, "quit"},
}

// helpView renders the keybinding table.
type helpView struct {
	keys  *config.Keybindings
	style lipgloss.Style
}

func newHelpView(keys *config.Keybindings) *helpView {
	return &helpView{
		keys: keys,
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
}

// Render implements tui.Component.
func (h *helpView) Render(out *tui.RenderBuffer, _ int) {
	var b strings.Builder
	for i, a := range helpActions {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-12s %s", a.label, strings.Join(displayKeys(h.keys.GetBindings(a.action)), ", "))
	}
	out.WriteLines(strings.Split(h.style.Render(b.String()), "\n"))
}

// Invalidate implements tui.Component.
func (h *helpView) Invalidate() {}

func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
