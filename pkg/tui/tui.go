// ABOUTME: Full-screen TUI engine with line-diff rendering and overlay compositing
// ABOUTME: Uses buffered channel for render coalescing; CSI 2026 synchronized output

package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// TUI is the main rendering engine. It owns the whole screen: every frame
// is exactly height lines, and only lines that differ from the previous
// frame are rewritten.
type TUI struct {
	container *Container
	writer    Writer
	width     int
	height    int

	mu            sync.Mutex
	previousLines []string
	overlays      []Overlay
	renderCh      chan struct{}
	stopCh        chan struct{}
	loopDone      chan struct{}
	stopOnce      sync.Once
	running       bool
}

// New creates a new TUI engine writing to w with the given dimensions.
func New(w Writer, termWidth, termHeight int) *TUI {
	return &TUI{
		container: NewContainer(),
		writer:    w,
		width:     termWidth,
		height:    termHeight,
		renderCh:  make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Container returns the root container for adding components.
func (t *TUI) Container() *Container {
	return t.container
}

// Size returns the current terminal dimensions.
func (t *TUI) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSize updates the terminal dimensions and triggers a full redraw.
func (t *TUI) SetSize(w, h int) {
	t.mu.Lock()
	t.width = w
	t.height = h
	t.previousLines = nil
	t.mu.Unlock()
	t.container.Invalidate()
	t.RequestRender()
}

// Update runs fn while no render is in progress, then requests a render.
// Components that are not safe for concurrent use are mutated through it.
func (t *TUI) Update(fn func()) {
	t.container.Update(fn)
	t.RequestRender()
}

// PushOverlay adds a modal overlay on top of the content.
func (t *TUI) PushOverlay(o Overlay) {
	t.mu.Lock()
	t.overlays = append(t.overlays, o)
	t.mu.Unlock()
	t.RequestRender()
}

// PopOverlay removes the topmost overlay.
func (t *TUI) PopOverlay() {
	t.mu.Lock()
	if len(t.overlays) > 0 {
		t.overlays = t.overlays[:len(t.overlays)-1]
	}
	t.mu.Unlock()
	t.RequestRender()
}

// HasOverlay reports whether any overlay is shown.
func (t *TUI) HasOverlay() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.overlays) > 0
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default: // Already pending; coalesced
	}
}

// Start begins the render loop in a goroutine. Call Stop to terminate.
func (t *TUI) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	done := make(chan struct{})
	t.loopDone = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		t.renderLoop()
	}()
}

// Stop terminates the render loop and waits for an in-flight frame to
// finish. Safe to call multiple times.
func (t *TUI) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		if !t.running {
			t.mu.Unlock()
			return
		}
		t.running = false
		done := t.loopDone
		t.mu.Unlock()
		close(t.stopCh)
		<-done
	})
}

// RenderOnce performs a single synchronous render. Useful for testing.
func (t *TUI) RenderOnce() {
	t.render()
}

func (t *TUI) renderLoop() {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.renderCh:
			t.render()
		}
	}
}

func (t *TUI) render() {
	t.mu.Lock()
	w := t.width
	h := t.height
	prevLines := t.previousLines
	overlays := make([]Overlay, len(t.overlays))
	copy(overlays, t.overlays)
	t.mu.Unlock()

	if w <= 0 || h <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	t.container.Render(buf, w)
	compositeOverlays(buf, overlays, w, h)

	// Clamp to terminal height: keep bottom lines so the footer stays visible
	lines := buf.Lines
	if len(lines) > h {
		lines = lines[len(lines)-h:]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}

	output := diffRender(prevLines, lines)
	if output != "" {
		syncOutput := "\x1b[?2026h" + output + "\x1b[?2026l"
		_, _ = t.writer.Write([]byte(syncOutput))
	}

	// Save current lines for next diff, reusing the previous slice when possible.
	saved := prevLines
	if cap(saved) >= len(lines) {
		saved = saved[:len(lines)]
	} else {
		saved = make([]string, len(lines))
	}
	copy(saved, lines)
	t.mu.Lock()
	t.previousLines = saved
	t.mu.Unlock()
}

// compositeOverlays draws overlays over the frame in push order.
func compositeOverlays(buf *RenderBuffer, overlays []Overlay, w, h int) {
	for _, o := range overlays {
		overlayBuf := AcquireBuffer()
		o.Component.Render(overlayBuf, o.renderWidth(w))

		lines, row, col, cw := o.place(overlayBuf.Lines, w, h)
		buf.Fit(max(buf.Len(), row+len(lines)))
		for i, line := range lines {
			buf.Lines[row+i] = spliceLine(buf.Lines[row+i], line, col, cw)
		}

		ReleaseBuffer(overlayBuf)
	}
}

// spliceLine draws over on top of base starting at column col, keeping
// the base text on either side of the cw columns it covers.
func spliceLine(base, over string, col, cw int) string {
	if col == 0 && cw >= width.VisibleWidth(base) {
		return over
	}
	left := width.SliceByColumn(base, 0, col)
	if pad := col - width.VisibleWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := width.SliceByColumn(base, col+cw, width.VisibleWidth(base))
	if right == "" {
		return left + over
	}
	if pad := cw - width.VisibleWidth(over); pad > 0 {
		over += strings.Repeat(" ", pad)
	}
	if !strings.Contains(base, "\x1b") {
		return left + over + right
	}
	return left + "\x1b[0m" + over + "\x1b[0m" + right
}

// diffRender returns the escape sequences that turn the prev frame into
// curr. A nil prev clears the screen and draws every line.
func diffRender(prev, curr []string) string {
	var b strings.Builder
	var numBuf [20]byte

	if prev == nil {
		b.WriteString("\x1b[?25l\x1b[2J") // hide cursor + clear screen
	}
	for i, line := range curr {
		if prev != nil && i < len(prev) && prev[i] == line {
			continue
		}
		moveTo(&b, numBuf[:], i)
		b.WriteString("\x1b[2K")
		b.WriteString(line)
	}
	return b.String()
}

// moveTo emits an absolute move to the first column of the 0-based row.
func moveTo(b *strings.Builder, numBuf []byte, row int) {
	b.WriteString("\x1b[")
	b.Write(strconv.AppendInt(numBuf[:0], int64(row+1), 10))
	b.WriteString(";1H")
}
