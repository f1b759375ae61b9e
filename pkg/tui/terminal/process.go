// ABOUTME: ProcessTerminal implements Terminal using the controlling TTY and golang.org/x/term.
// ABOUTME: Reads keys from /dev/tty when stdin carries piped data; output goes to stdout.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by x/term.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	ownsIn   bool
	oldState *term.State
	resizeFn func(width, height int)
	stopFn   func()
}

// NewProcessTerminal returns a ProcessTerminal reading keys from stdin, or
// from the controlling terminal when stdin is not a TTY.
func NewProcessTerminal() (*ProcessTerminal, error) {
	t := &ProcessTerminal{in: os.Stdin, out: os.Stdout}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		tty, err := openTTY()
		if err != nil {
			return nil, fmt.Errorf("opening terminal for input: %w", err)
		}
		t.in = tty
		t.ownsIn = true
	}
	if !term.IsTerminal(int(t.out.Fd())) {
		return nil, fmt.Errorf("stdout is not a terminal")
	}
	return t, nil
}

// EnterRawMode switches the input TTY to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads raw key input.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// Platform-specific signal handling is set up by startResizeListener.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	started := t.stopFn != nil
	t.mu.Unlock()

	if !started {
		t.startResizeListener()
	}
}

// Close stops resize notifications and closes an input TTY opened by
// NewProcessTerminal.
func (t *ProcessTerminal) Close() error {
	t.mu.Lock()
	stop := t.stopFn
	t.stopFn = nil
	t.mu.Unlock()
	if stop != nil {
		stop()
	}
	if t.ownsIn {
		return t.in.Close()
	}
	return nil
}
