// ABOUTME: Headless print mode: renders the list viewport once, or page by page, to a writer
// ABOUTME: Formats: plain text lines, one JSON object, or stream-JSON with one line per page

package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/rowpool"
	"github.com/mauromedda/pi-vlist/pkg/tui/vlist"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// DefaultHeight is the viewport height used when none is configured.
const DefaultHeight = 24

// Config configures print mode execution.
type Config struct {
	OutputFormat string // "text" (default), "json", "stream-json"
	Height       int    // viewport rows; 0 = DefaultHeight
	Width        int    // output columns; 0 = settings wrap width
	ScrollTop    int    // initial scroll offset in rows
	Index        int    // when > 0, scroll so this item starts at the top
	Color        bool   // keep SGR styling; off when stdout is not a terminal
}

// Deps provides dependencies for print mode.
type Deps struct {
	Entries  []source.Entry
	Catalog  *source.Catalog
	Settings *config.Settings
	Out      io.Writer // defaults to os.Stdout
}

// Run renders the configured viewport to deps.Out. In stream-json format it
// pages from the configured offset to the end of the list.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	settings := deps.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	if deps.Catalog == nil {
		deps.Catalog = source.NewCatalog(settings.WrapWidth, settings.MarkdownStyle)
	}
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Width <= 0 {
		cfg.Width = settings.WrapWidth
	}

	f, err := newFormatter(cfg.OutputFormat, out)
	if err != nil {
		return err
	}

	list := vlist.New(deps.Catalog, deps.Catalog.Templates(),
		vlist.WithViewHeight(cfg.Height),
		vlist.WithRetention(settings.PoolRetention),
	)
	defer list.Dispose()

	if _, err := list.Splice(0, 0, deps.Entries...); err != nil {
		return fmt.Errorf("print: %w", err)
	}

	p := &printer{list: list, width: cfg.Width, color: cfg.Color, f: f}
	unsubscribe := list.OnDidScroll(p.onScroll)
	defer unsubscribe()

	if cfg.Index > 0 {
		list.ScrollToIndex(cfg.Index)
	} else {
		list.SetScrollTop(cfg.ScrollTop)
	}

	if f.paged() {
		for p.err == nil && list.ScrollTop()+list.ViewHeight() < list.ScrollHeight() {
			if err := ctx.Err(); err != nil {
				return err
			}
			list.ScrollBy(list.ViewHeight())
		}
	}
	if p.err != nil {
		return p.err
	}
	return f.end()
}

// printer turns scroll events into formatted pages.
type printer struct {
	list  *vlist.ListView[source.Entry]
	width int
	color bool
	f     formatter
	err   error
}

func (p *printer) onScroll(ev vlist.ScrollEvent) {
	if p.err != nil {
		return
	}
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	p.list.Render(buf, p.width)

	r := p.list.Materialized()
	pg := page{
		ScrollTop:    ev.ScrollTop,
		ScrollHeight: ev.ScrollHeight,
		ViewHeight:   ev.ViewHeight,
		Start:        r.Start,
		End:          r.End,
		Lines:        trimTrailingBlank(buf.Lines),
		Pool:         p.list.PoolStats(),
	}
	if !p.color {
		for i, line := range pg.Lines {
			pg.Lines[i] = width.StripANSI(line)
		}
	}
	log.Debug("print: page top=%d items=[%d,%d)", pg.ScrollTop, pg.Start, pg.End)
	p.err = p.f.page(pg)
}

// trimTrailingBlank drops the blank padding below the last item.
func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(width.StripANSI(lines[end-1])) == "" {
		end--
	}
	return append([]string(nil), lines[:end]...)
}

// page is one rendered viewport.
type page struct {
	ScrollTop    int
	ScrollHeight int
	ViewHeight   int
	Start, End   int
	Lines        []string
	Pool         rowpool.Stats
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (pg page) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"scroll_top":`)
	w.Int(pg.ScrollTop)
	w.RawString(`,"scroll_height":`)
	w.Int(pg.ScrollHeight)
	w.RawString(`,"view_height":`)
	w.Int(pg.ViewHeight)
	w.RawString(`,"start":`)
	w.Int(pg.Start)
	w.RawString(`,"end":`)
	w.Int(pg.End)
	w.RawString(`,"lines":[`)
	for i, line := range pg.Lines {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(line)
	}
	w.RawString(`],"pool":{"constructed":`)
	w.Int(pg.Pool.Constructed)
	w.RawString(`,"reused":`)
	w.Int(pg.Pool.Reused)
	w.RawString(`,"released":`)
	w.Int(pg.Pool.Released)
	w.RawString(`,"destroyed":`)
	w.Int(pg.Pool.Destroyed)
	w.RawString(`,"lent":`)
	w.Int(pg.Pool.Lent)
	w.RawString(`,"free":`)
	w.Int(pg.Pool.Free)
	w.RawString(`}}`)
}

// formatter abstracts output formatting.
type formatter interface {
	page(pg page) error
	paged() bool
	end() error
}

func newFormatter(format string, out io.Writer) (formatter, error) {
	switch format {
	case "", "text":
		return &textFormatter{out: out}, nil
	case "json":
		return &jsonFormatter{out: out}, nil
	case "stream-json":
		return &streamJSONFormatter{out: out}, nil
	default:
		return nil, fmt.Errorf("print: unknown output format %q", format)
	}
}

// textFormatter writes the lines of the last rendered page.
type textFormatter struct {
	out  io.Writer
	last page
}

func (f *textFormatter) page(pg page) error { f.last = pg; return nil }
func (f *textFormatter) paged() bool        { return false }
func (f *textFormatter) end() error {
	for _, line := range f.last.Lines {
		if _, err := fmt.Fprintln(f.out, line); err != nil {
			return err
		}
	}
	return nil
}

// jsonFormatter writes the last rendered page as a single JSON object.
type jsonFormatter struct {
	out  io.Writer
	last page
}

func (f *jsonFormatter) page(pg page) error { f.last = pg; return nil }
func (f *jsonFormatter) paged() bool        { return false }
func (f *jsonFormatter) end() error         { return writeJSONLine(f.out, f.last) }

// streamJSONFormatter writes one JSON line per page as it is rendered.
type streamJSONFormatter struct {
	out io.Writer
}

func (f *streamJSONFormatter) page(pg page) error { return writeJSONLine(f.out, pg) }
func (f *streamJSONFormatter) paged() bool        { return true }
func (f *streamJSONFormatter) end() error         { return nil }

func writeJSONLine(out io.Writer, pg page) error {
	data, err := easyjson.Marshal(pg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
