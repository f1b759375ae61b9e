// ABOUTME: Line buffers shared by frames and pooled list rows, recycled through sync.Pool
// ABOUTME: Rows pin their buffer to the item height with Fit; oversized buffers are not pooled

package tui

import "sync"

// maxPooledLines caps the capacity of buffers kept for reuse. A row bound
// to one very tall item would otherwise pin that memory for the process.
const maxPooledLines = 1024

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			Lines: make([]string, 0, 64),
		}
	},
}

// AcquireBuffer returns an empty buffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer hands buf back to the pool. The caller must not touch it
// afterwards.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil || cap(buf.Lines) > maxPooledLines {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer collects the lines of a frame or of one list row.
type RenderBuffer struct {
	Lines []string
}

// WriteLine appends one line.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// WriteLines appends lines in order.
func (b *RenderBuffer) WriteLines(lines []string) {
	b.Lines = append(b.Lines, lines...)
}

// Fit makes the buffer exactly n lines long, dropping lines past n or
// padding with blank lines.
func (b *RenderBuffer) Fit(n int) {
	n = max(n, 0)
	if len(b.Lines) > n {
		clear(b.Lines[n:])
		b.Lines = b.Lines[:n]
		return
	}
	for len(b.Lines) < n {
		b.Lines = append(b.Lines, "")
	}
}

// Reset empties the buffer and keeps its capacity.
func (b *RenderBuffer) Reset() {
	clear(b.Lines)
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}
