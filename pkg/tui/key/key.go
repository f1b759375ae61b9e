// ABOUTME: Key type and ParseKey for raw terminal keyboard input
// ABOUTME: Single bytes are decoded here; ESC-prefixed sequences go to the CSI/SS3 parser

package key

import "unicode/utf8"

// Key is one parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // printable character, or the letter of a KeyCtrl chord
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the viewer can receive.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyCtrl         // Ctrl+letter; Rune holds the lowercase letter
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyUnknown
)

// ParseKey parses one key's worth of raw terminal input. Use Split first
// when data may hold several keys.
func ParseKey(data string) Key {
	switch {
	case data == "":
		return Key{Type: KeyUnknown}
	case len(data) == 1:
		return parseByte(data[0])
	case data[0] == 0x1b:
		return parseEscape(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseByte(b byte) Key {
	switch {
	case b == 0x0d, b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f, b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x01 && b <= 0x1a:
		return Key{Type: KeyCtrl, Rune: rune('a' + b - 1), Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscape(data string) Key {
	if k, ok := parseSequence(data); ok {
		return k
	}

	// Alt+key: ESC followed by one key.
	rest := data[1:]
	if rest == "\x1b" {
		return Key{Type: KeyEscape, Alt: true}
	}
	if r, size := utf8.DecodeRuneInString(rest); size == len(rest) && r != utf8.RuneError {
		k := ParseKey(rest)
		if k.Type != KeyUnknown {
			k.Alt = true
			return k
		}
	}
	return Key{Type: KeyUnknown}
}

// String returns the key's binding name, or "unknown".
func (k Key) String() string {
	if name := k.Name(); name != "" {
		return name
	}
	return "unknown"
}
