// ABOUTME: Entry point for the Bubble Tea viewer
// ABOUTME: Builds the tea.Program options from settings and blocks until exit

package btea

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Run starts the Bubble Tea viewer. Blocks until the user exits.
func Run(deps AppDeps) error {
	m, err := NewAppModel(deps)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, programOptions(m.deps, term.IsTerminal(int(os.Stdin.Fd())))...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}

// programOptions draws on the alternate screen over stderr so stdout stays
// free for pipes. Keys come from the controlling terminal when stdin carries
// input data.
func programOptions(deps AppDeps, stdinIsTTY bool) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	}
	if deps.Settings != nil && deps.Settings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if !stdinIsTTY {
		opts = append(opts, tea.WithInputTTY())
	}
	return opts
}
