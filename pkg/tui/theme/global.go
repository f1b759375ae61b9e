// ABOUTME: Process-wide active theme read by row renderers and the status line on every bind
// ABOUTME: Swapped atomically so a theme change never races a frame being drawn

package theme

import "sync/atomic"

var active atomic.Pointer[Theme]

func init() {
	active.Store(Builtin("default"))
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return active.Load()
}

// Set installs t and returns the theme it replaced. A nil t restores the
// default theme.
func Set(t *Theme) *Theme {
	if t == nil {
		t = Builtin("default")
	}
	return active.Swap(t)
}

// Use resolves name like Resolve and installs the result.
func Use(name string) error {
	t, err := Resolve(name)
	if err != nil {
		return err
	}
	Set(t)
	return nil
}
