// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Flags that were set explicitly override the merged config settings

package main

import (
	"flag"
	"io"

	"github.com/mauromedda/pi-vlist/internal/config"
)

type cliArgs struct {
	mode          string
	generate      int
	height        int
	scroll        int
	index         int
	format        string
	wrap          int
	retention     int
	step          int
	theme         string
	markdownStyle string
	logFile       string
	mouse         bool
	verbose       bool
	version       bool
	keys          bool

	inputs []string
	set    map[string]bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("pi-vlist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&args.mode, "mode", "", "Front end: interactive, raw or print")
	fs.IntVar(&args.generate, "generate", 0, "Append N synthetic entries")
	fs.IntVar(&args.height, "height", 0, "Print mode viewport height in rows")
	fs.IntVar(&args.scroll, "scroll", 0, "Print mode scroll offset in rows")
	fs.IntVar(&args.index, "index", 0, "Print mode: scroll so item N starts at the top")
	fs.StringVar(&args.format, "format", "text", "Print mode output: text, json or stream-json")
	fs.IntVar(&args.wrap, "wrap", 0, "Wrap width for list rows")
	fs.IntVar(&args.retention, "retention", 0, "Free rows kept per kind by the row pool")
	fs.IntVar(&args.step, "step", 0, "Rows moved per line scroll")
	fs.StringVar(&args.theme, "theme", "", "Theme name or path to a theme .json file")
	fs.StringVar(&args.markdownStyle, "markdown-style", "", "Glamour style for markdown rows (auto, dark, light, notty)")
	fs.StringVar(&args.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&args.mouse, "mouse", false, "Enable mouse wheel scrolling (interactive mode)")
	fs.BoolVar(&args.verbose, "verbose", false, "Log debug messages")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.keys, "keys", false, "Print the effective keybindings as JSON and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.inputs = fs.Args()
	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	return args, nil
}

// overrides returns the settings named by explicitly set flags.
func (a cliArgs) overrides() *config.Settings {
	s := &config.Settings{}
	if a.set["mode"] {
		s.Mode = a.mode
	}
	if a.set["generate"] {
		s.Generate = a.generate
	}
	if a.set["wrap"] {
		s.WrapWidth = a.wrap
	}
	if a.set["retention"] {
		s.PoolRetention = a.retention
	}
	if a.set["step"] {
		s.ScrollStep = a.step
	}
	if a.set["theme"] {
		s.Theme = a.theme
	}
	if a.set["markdown-style"] {
		s.MarkdownStyle = a.markdownStyle
	}
	if a.set["log-file"] {
		s.LogFile = a.logFile
	}
	if a.set["mouse"] {
		s.Mouse = a.mouse
	}
	return s
}
