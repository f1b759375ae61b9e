// ABOUTME: Tests for the raw viewer against a VirtualTerminal
// ABOUTME: Covers keybinding dispatch, pager fallback, filtering, help overlay, resize and the run loop

package raw

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui/terminal"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

func lineEntries(n int) []source.Entry {
	entries := make([]source.Entry, n)
	for i := range entries {
		entries[i] = source.Entry{Kind: source.KindText, Body: fmt.Sprintf("line %d", i)}
	}
	return entries
}

// newViewer returns a Viewer over n one-row entries in a 60x11 terminal:
// ten list rows plus the status line.
func newViewer(t *testing.T, n int, keys *config.Keybindings) (*Viewer, *terminal.VirtualTerminal) {
	t.Helper()
	vt := terminal.NewVirtualTerminal(60, 11)
	s := config.Defaults()
	s.MarkdownStyle = "notty"
	v, err := New(vt, Deps{Title: "test", Entries: lineEntries(n), Settings: s, Keys: keys})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(v.Close)
	t.Cleanup(vt.CloseInput)
	return v, vt
}

func TestViewer_InitialLayout(t *testing.T) {
	t.Parallel()

	v, _ := newViewer(t, 100, nil)
	if got := v.list.ViewHeight(); got != 10 {
		t.Errorf("ViewHeight() = %d, want 10", got)
	}
	if m := v.list.Materialized(); m.Start != 0 || m.End != 10 {
		t.Errorf("Materialized() = %+v, want [0,10)", m)
	}
}

func TestViewer_FirstFrameDrawsRows(t *testing.T) {
	t.Parallel()

	v, vt := newViewer(t, 100, nil)
	v.ui.RenderOnce()

	out := width.StripANSI(vt.Output())
	for _, want := range []string{"line 0", "line 9", "1-10/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("first frame missing %q", want)
		}
	}
}

func TestViewer_HandleInput(t *testing.T) {
	t.Parallel()

	v, _ := newViewer(t, 100, nil)
	steps := []struct {
		data string
		want int
	}{
		{"j", 1},
		{"jjj", 4},
		{"\x1b[A", 3},
		{"\x1b[6~", 13},
		{" ", 23},
		{"G", 90},
		{"b", 80},
		{"\x1b[H", 0},
		{"x", 0},
	}
	for _, st := range steps {
		if quit := v.HandleInput(st.data); quit {
			t.Fatalf("HandleInput(%q) quit", st.data)
		}
		if got := v.list.ScrollTop(); got != st.want {
			t.Fatalf("after %q ScrollTop() = %d, want %d", st.data, got, st.want)
		}
	}
}

func TestViewer_UnboundKeysFallBackToPager(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Bindings[config.ActionScrollDown] = []string{"n"}
	v, _ := newViewer(t, 100, kb)

	v.HandleInput("n")
	if got := v.list.ScrollTop(); got != 1 {
		t.Fatalf("bound key: ScrollTop() = %d, want 1", got)
	}
	v.HandleInput("j")
	if got := v.list.ScrollTop(); got != 2 {
		t.Errorf("unbound j should use the list's pager keys: ScrollTop() = %d, want 2", got)
	}
}

func TestViewer_Quit(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"q", "\x03", "jq"} {
		v, _ := newViewer(t, 10, nil)
		if !v.HandleInput(data) {
			t.Errorf("HandleInput(%q) = false, want quit", data)
		}
	}
}

func TestViewer_Filter(t *testing.T) {
	t.Parallel()

	v, _ := newViewer(t, 100, nil)
	v.HandleInput("/42")
	if !v.filtering {
		t.Fatal("filtering = false after /")
	}
	if v.list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", v.list.Len())
	}
	if !strings.Contains(v.status.Left, "/42") {
		t.Errorf("status left = %q, want the filter prompt", v.status.Left)
	}

	v.HandleInput("q\x7f\r")
	if v.filtering {
		t.Error("enter should leave filter mode")
	}
	if v.filter.Query() != "42" || v.list.Len() != 1 {
		t.Errorf("query = %q, Len() = %d; want 42, 1", v.filter.Query(), v.list.Len())
	}

	v.HandleInput("\x1b")
	if v.filter.Query() != "" || v.list.Len() != 100 {
		t.Errorf("esc: query = %q, Len() = %d; want empty, 100", v.filter.Query(), v.list.Len())
	}
}

func TestViewer_HelpOverlay(t *testing.T) {
	t.Parallel()

	v, vt := newViewer(t, 100, nil)
	v.HandleInput("?")
	if !v.ui.HasOverlay() {
		t.Fatal("? should open the help overlay")
	}

	v.ui.RenderOnce()
	out := width.StripANSI(vt.Output())
	for _, want := range []string{"page down", "pgdown, space", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("help overlay missing %q", want)
		}
	}

	v.HandleInput("j")
	if v.ui.HasOverlay() {
		t.Error("any key should close the help overlay")
	}
	if got := v.list.ScrollTop(); got != 0 {
		t.Errorf("closing key scrolled the list: ScrollTop() = %d", got)
	}
}

func TestViewer_Resize(t *testing.T) {
	t.Parallel()

	v, vt := newViewer(t, 100, nil)
	v.HandleInput("G")

	vt.SetSize(60, 6)
	v.Resize(60, 6)
	if got := v.list.ViewHeight(); got != 5 {
		t.Errorf("ViewHeight() = %d, want 5", got)
	}
	if got := v.list.ScrollTop(); got != 90 {
		t.Errorf("ScrollTop() = %d, want 90", got)
	}
	if m := v.list.Materialized(); m.Start != 90 || m.End != 95 {
		t.Errorf("Materialized() = %+v, want [90,95)", m)
	}
}

func TestViewer_Render(t *testing.T) {
	t.Parallel()

	v, vt := newViewer(t, 100, nil)
	v.HandleInput("j")
	v.ui.RenderOnce()

	out := width.StripANSI(vt.Output())
	for _, want := range []string{"line 1", "line 10", "2-11/100", "test"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "line 11") {
		t.Error("line 11 is below the viewport and should not be drawn")
	}
}

func TestViewer_Run(t *testing.T) {
	t.Parallel()

	v, vt := newViewer(t, 100, nil)
	errCh := make(chan error, 1)
	go func() { errCh <- v.Run(context.Background()) }()

	vt.Type("j")
	vt.Type("q")

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}

	if vt.EnterCount() != 1 || vt.ExitCount() != 1 {
		t.Errorf("raw mode enter/exit = %d/%d, want 1/1", vt.EnterCount(), vt.ExitCount())
	}
	if vt.IsRawMode() {
		t.Error("terminal left in raw mode")
	}
	out := vt.Output()
	if !strings.HasPrefix(out, terminal.EnterAltScreen) || !strings.HasSuffix(out, terminal.LeaveAltScreen) {
		t.Errorf("output should be framed by the alternate screen sequences")
	}
}

func TestViewer_RunEndsOnEOF(t *testing.T) {
	t.Parallel()

	v, vt := newViewer(t, 10, nil)
	vt.CloseInput()
	if err := v.Run(context.Background()); err != nil {
		t.Errorf("Run after EOF = %v, want nil", err)
	}
}

func TestViewer_RunCanceled(t *testing.T) {
	t.Parallel()

	v, _ := newViewer(t, 10, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := v.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
