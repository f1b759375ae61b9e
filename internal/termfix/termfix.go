// ABOUTME: Pins the lipgloss background from COLORFGBG for every viewer mode
// ABOUTME: Overrides whatever the terminal answered to BubbleTea's startup OSC 11 query

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// BubbleTea's init() calls lipgloss.HasDarkBackground() and sorts
	// ahead of this package, so the terminal has usually been queried
	// already. Terminals that never answer stall that query for
	// termenv.OSCTimeout. The explicit value wins either way, which keeps
	// themes stable between the print, raw and interactive modes.
	lipgloss.SetHasDarkBackground(DarkBackground(os.Getenv("COLORFGBG")))
}

// DarkBackground interprets a COLORFGBG value ("fg;bg" or "fg;default;bg").
// Background colors 7 and 9-15 are light; anything else, including an
// unset or malformed value, counts as dark.
func DarkBackground(colorfgbg string) bool {
	bg := colorfgbg
	for i := len(colorfgbg) - 1; i >= 0; i-- {
		if colorfgbg[i] == ';' {
			bg = colorfgbg[i+1:]
			break
		}
	}
	switch bg {
	case "7", "9", "10", "11", "12", "13", "14", "15":
		return false
	}
	return true
}
