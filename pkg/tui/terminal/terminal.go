// ABOUTME: Defines the Terminal interface for raw mode, size queries, key input and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Escape sequences for owning the full screen.
const (
	EnterAltScreen = "\x1b[?1049h\x1b[?25l" // alternate screen, hidden cursor
	LeaveAltScreen = "\x1b[?1049l\x1b[?25h" // main screen, visible cursor
)

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, key input, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}
