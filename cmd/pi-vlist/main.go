// ABOUTME: CLI entry point for pi-vlist with terminal crash recovery
// ABOUTME: Parses flags, loads config and entries, dispatches to the interactive, raw or print front end

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// termfix pins the lipgloss background from COLORFGBG so every mode
	// renders with the same theme.
	_ "github.com/mauromedda/pi-vlist/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/pi-vlist/internal/config"
	pilog "github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/interactive/btea"
	"github.com/mauromedda/pi-vlist/internal/mode/print"
	"github.com/mauromedda/pi-vlist/internal/mode/raw"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// generateSeed keeps --generate output stable across runs.
const generateSeed = 1

var errNoInput = errors.New("no input: pass files, pipe data on stdin or use --generate N")

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("pi-vlist %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if args.keys {
		return exportKeys(cwd, os.Stdout)
	}

	loaded, err := config.Load(cwd)
	if err != nil {
		return err
	}
	settings := loaded.Merge(args.overrides())
	if err := settings.Validate(); err != nil {
		return err
	}

	closeLog, err := openLog(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := theme.Use(settings.Theme); err != nil {
		return err
	}

	keys, err := config.LoadProjectKeybindings(cwd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputs := args.inputs
	if len(inputs) == 0 && !isTTY(os.Stdin) {
		inputs = []string{source.Stdin}
	}
	entries, err := loadEntries(ctx, inputs, settings.Generate)
	if err != nil {
		return err
	}
	pilog.Info("loaded %d entries from %d inputs (mode %s)", len(entries), len(inputs), settings.Mode)

	title := titleFor(inputs)
	catalog := source.NewCatalog(settings.WrapWidth, settings.MarkdownStyle)

	switch settings.Mode {
	case config.ModePrint:
		return print.Run(ctx, print.Config{
			OutputFormat: args.format,
			Height:       args.height,
			Width:        settings.WrapWidth,
			ScrollTop:    args.scroll,
			Index:        args.index,
			Color:        isTTY(os.Stdout),
		}, print.Deps{
			Entries:  entries,
			Catalog:  catalog,
			Settings: settings,
			Out:      os.Stdout,
		})
	case config.ModeRaw:
		return raw.Run(ctx, raw.Deps{
			Title:    title,
			Entries:  entries,
			Catalog:  catalog,
			Settings: settings,
			Keys:     keys,
		})
	default:
		return btea.Run(btea.AppDeps{
			Title:    title,
			Entries:  entries,
			Catalog:  catalog,
			Settings: settings,
			Keys:     keys,
		})
	}
}

// loadEntries reads every input and appends generate synthetic entries.
func loadEntries(ctx context.Context, inputs []string, generate int) ([]source.Entry, error) {
	if len(inputs) == 0 && generate <= 0 {
		return nil, errNoInput
	}
	var entries []source.Entry
	if len(inputs) > 0 {
		var err error
		entries, err = source.LoadAll(ctx, inputs)
		if err != nil {
			return nil, err
		}
	}
	if generate > 0 {
		entries = append(entries, source.Generate(generate, generateSeed)...)
	}
	return entries, nil
}

// titleFor names the list after its first input.
func titleFor(inputs []string) string {
	switch {
	case len(inputs) == 0:
		return "generated"
	case inputs[0] == source.Stdin:
		return "stdin"
	case len(inputs) == 1:
		return filepath.Base(inputs[0])
	default:
		return fmt.Sprintf("%s +%d", filepath.Base(inputs[0]), len(inputs)-1)
	}
}

// openLog routes log output to a file. Full-screen modes always log to a
// file so nothing scribbles over the frame; print mode keeps stderr unless
// a file is configured.
func openLog(s *config.Settings) (func(), error) {
	path := s.LogFile
	if path == "" {
		if s.Mode == config.ModePrint {
			return func() {}, nil
		}
		if err := config.EnsureDir(config.GlobalDir()); err != nil {
			return nil, err
		}
		path = config.DefaultLogFile()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	pilog.SetOutput(f)
	return func() {
		pilog.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func exportKeys(cwd string, out io.Writer) error {
	keys, err := config.LoadProjectKeybindings(cwd)
	if err != nil {
		return err
	}
	tmpl, err := keys.ExportTemplate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, tmpl)
	return err
}

func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
