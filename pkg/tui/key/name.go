// ABOUTME: Key names in the spelling keybinding files use ("up", "pgdown", "ctrl+c", "alt+x")
// ABOUTME: Split cuts a raw input chunk into one escape sequence or rune per key

package key

import "unicode/utf8"

var keyTypeBindingNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "esc",
}

// Name returns the keybinding name of k, or "" for unknown keys.
// Printable runes are spelled as themselves, space included.
func (k Key) Name() string {
	var prefix, base string
	if k.Alt {
		prefix = "alt+"
	}
	switch k.Type {
	case KeyUnknown:
		return ""
	case KeyRune:
		return prefix + string(k.Rune)
	case KeyCtrl:
		return prefix + "ctrl+" + string(k.Rune)
	case KeyBackTab:
		return prefix + "shift+tab"
	default:
		base = keyTypeBindingNames[k.Type]
	}
	if k.Ctrl {
		prefix += "ctrl+"
	}
	if k.Shift {
		prefix += "shift+"
	}
	return prefix + base
}

// Split cuts data into individual key inputs so a chunk read from the
// terminal that holds several keys can be parsed one key at a time.
func Split(data string) []string {
	var keys []string
	for len(data) > 0 {
		n := nextKeyLen(data)
		keys = append(keys, data[:n])
		data = data[n:]
	}
	return keys
}

func nextKeyLen(data string) int {
	if data[0] != 0x1b {
		_, size := utf8.DecodeRuneInString(data)
		return size
	}
	if len(data) == 1 {
		return 1
	}
	switch data[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then one final byte.
		for i := 2; i < len(data); i++ {
			if c := data[i]; c >= 0x40 && c <= 0x7e {
				return i + 1
			}
		}
		return len(data)
	case 'O':
		return min(3, len(data))
	case 0x1b:
		return 1
	}
	if data[1] >= 0x20 && data[1] <= 0x7e {
		return 2 // Alt+key
	}
	return 1
}
