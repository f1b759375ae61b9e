// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary:   NewColor("\x1b[97m"),
			Secondary: NewColor("\x1b[90m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[38;5;214m"),

			Info:    NewColor("\x1b[38;5;117m"),
			Warning: NewColor("\x1b[38;5;221m"),
			Error:   NewColor("\x1b[38;5;203m"),

			Heading:   NewColor("\x1b[1m\x1b[38;5;117m"),
			Rule:      NewColor("\x1b[38;5;240m"),
			Match:     NewColor("\x1b[1m\x1b[38;5;221m"),
			Selection: NewColor("\x1b[48;5;236m"),

			StatusLeft:   NewColor("\x1b[1m\x1b[97m"),
			StatusRight:  NewColor("\x1b[38;5;245m"),
			StatusFilter: NewColor("\x1b[38;5;221m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary:   NewColor("\x1b[30m"),
			Secondary: NewColor("\x1b[37m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[38;5;166m"),

			Info:    NewColor("\x1b[38;5;25m"),
			Warning: NewColor("\x1b[38;5;130m"),
			Error:   NewColor("\x1b[38;5;160m"),

			Heading:   NewColor("\x1b[1m\x1b[38;5;25m"),
			Rule:      NewColor("\x1b[38;5;249m"),
			Match:     NewColor("\x1b[1m\x1b[38;5;130m"),
			Selection: NewColor("\x1b[48;5;254m"),

			StatusLeft:   NewColor("\x1b[1m\x1b[30m"),
			StatusRight:  NewColor("\x1b[38;5;242m"),
			StatusFilter: NewColor("\x1b[38;5;130m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary:   NewColor("\x1b[0m"),
			Secondary: NewColor("\x1b[2m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[1m"),

			Info:    NewColor("\x1b[1m"),
			Warning: NewColor("\x1b[1m"),
			Error:   NewColor("\x1b[1m\x1b[4m"),

			Heading:   NewColor("\x1b[1m"),
			Rule:      NewColor("\x1b[2m"),
			Match:     NewColor("\x1b[4m"),
			Selection: NewColor("\x1b[7m"),

			StatusLeft:   NewColor("\x1b[1m"),
			StatusRight:  NewColor("\x1b[2m"),
			StatusFilter: NewColor("\x1b[4m"),

			Bold:      NewColor("\x1b[1m"),
			Dim:       NewColor("\x1b[2m"),
			Italic:    NewColor("\x1b[3m"),
			Underline: NewColor("\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
