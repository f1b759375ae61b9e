// ABOUTME: Unix-specific SIGWINCH handling and controlling-terminal access for ProcessTerminal.
// ABOUTME: Spawns a goroutine that listens for SIGWINCH and invokes the resize callback.

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func openTTY() (*os.File, error) {
	return os.Open("/dev/tty")
}

// startResizeListener sets up a SIGWINCH handler that calls the
// resize callback with the new terminal dimensions.
func (t *ProcessTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	t.mu.Lock()
	t.stopFn = func() {
		signal.Stop(sigCh)
		close(done)
	}
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigCh:
			}

			t.mu.Lock()
			fn := t.resizeFn
			t.mu.Unlock()

			if fn == nil {
				continue
			}

			w, h, err := t.Size()
			if err != nil {
				continue
			}
			fn(w, h)
		}
	}()
}
