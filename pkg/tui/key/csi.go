// ABOUTME: Parser for CSI and SS3 key sequences with xterm modifier parameters
// ABOUTME: Also accepts CSI u codepoint keys so terminals with extended key reporting still work

package key

import (
	"strconv"
	"strings"
)

// Modifier bits, sent on the wire as 1 + mask.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

// finalKeys maps the final byte of "CSI [1;mod] X" and "SS3 X" to a key.
var finalKeys = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys maps the number of "CSI n [;mod] ~" to a key. rxvt and the
// Linux console send 1/4 or 7/8 for home/end.
var tildeKeys = map[int]KeyType{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// parseSequence decodes a complete CSI or SS3 sequence.
func parseSequence(data string) (Key, bool) {
	if len(data) == 3 && data[1] == 'O' {
		t, ok := finalKeys[data[2]]
		return Key{Type: t}, ok
	}
	if len(data) < 3 || data[1] != '[' {
		return Key{}, false
	}

	final := data[len(data)-1]
	params := strings.Split(data[2:len(data)-1], ";")
	mods, release, ok := parseMods(params)
	if !ok {
		return Key{}, false
	}
	if release {
		return Key{Type: KeyUnknown}, true
	}

	var k Key
	switch final {
	case 'Z':
		return Key{Type: KeyBackTab, Shift: true}, params[0] == ""
	case '~':
		n, err := strconv.Atoi(params[0])
		t, known := tildeKeys[n]
		if err != nil || !known {
			return Key{}, false
		}
		k = Key{Type: t}
	case 'u':
		cp, err := strconv.Atoi(strings.SplitN(params[0], ":", 2)[0])
		if err != nil || cp <= 0 {
			return Key{}, false
		}
		k = codepointKey(rune(cp), mods)
	default:
		t, known := finalKeys[final]
		if !known || (params[0] != "" && params[0] != "1") {
			return Key{}, false
		}
		k = Key{Type: t}
	}

	k.Alt = k.Alt || mods&modAlt != 0
	if k.Type != KeyRune && k.Type != KeyCtrl {
		k.Ctrl = mods&modCtrl != 0
		k.Shift = mods&modShift != 0
	}
	return k, true
}

// parseMods reads the "mod[:event]" parameter. Event 3 is a key release.
func parseMods(params []string) (mods int, release, ok bool) {
	if len(params) < 2 {
		return 0, false, true
	}
	if len(params) > 2 {
		return 0, false, false
	}
	modStr, event, _ := strings.Cut(params[1], ":")
	m, err := strconv.Atoi(modStr)
	if err != nil || m < 1 {
		return 0, false, false
	}
	return m - 1, event == "3", true
}

// codepointKey maps a CSI u codepoint to a key.
func codepointKey(cp rune, mods int) Key {
	switch cp {
	case 13:
		return Key{Type: KeyEnter}
	case 9:
		return Key{Type: KeyTab}
	case 27:
		return Key{Type: KeyEscape}
	case 127, 8:
		return Key{Type: KeyBackspace}
	}
	if mods&modCtrl != 0 {
		lower := cp | 0x20
		if lower >= 'a' && lower <= 'z' {
			return Key{Type: KeyCtrl, Rune: lower, Ctrl: true}
		}
	}
	return Key{Type: KeyRune, Rune: cp}
}
