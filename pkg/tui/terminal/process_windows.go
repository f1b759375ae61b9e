// ABOUTME: Windows stubs for ProcessTerminal resize handling and console input.
// ABOUTME: Windows does not use SIGWINCH signals.

//go:build windows

package terminal

import "os"

func openTTY() (*os.File, error) {
	return os.Open("CONIN$")
}

// startResizeListener records a no-op stop function on Windows.
// Windows terminal resize detection requires ReadConsoleInput.
func (t *ProcessTerminal) startResizeListener() {
	t.mu.Lock()
	t.stopFn = func() {}
	t.mu.Unlock()
}
