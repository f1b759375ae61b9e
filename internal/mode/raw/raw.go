// ABOUTME: Raw terminal viewer: drives the list through the tui engine without a framework
// ABOUTME: Reads keys from the terminal, maps them through keybindings, redraws with line diffs

package raw

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/nav"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/component"
	"github.com/mauromedda/pi-vlist/pkg/tui/key"
	"github.com/mauromedda/pi-vlist/pkg/tui/terminal"
	"github.com/mauromedda/pi-vlist/pkg/tui/vlist"
)

// footerHeight is the number of terminal rows reserved below the list.
const footerHeight = 1

// Deps provides dependencies for the raw viewer.
type Deps struct {
	Title    string
	Entries  []source.Entry
	Catalog  *source.Catalog
	Settings *config.Settings
	Keys     *config.Keybindings
}

// surface reports the terminal height minus the footer to the list.
type surface struct {
	ui     *tui.TUI
	height int
}

func (s *surface) ViewportHeight() int  { return s.height }
func (s *surface) SetContentHeight(int) {}
func (s *surface) RequestLayout()       { s.ui.RequestRender() }

// Viewer is the raw-mode list viewer.
type Viewer struct {
	term    terminal.Terminal
	ui      *tui.TUI
	list    *vlist.ListView[source.Entry]
	surface *surface
	status  *component.StatusLine
	help    *helpView
	filter  *nav.Filter
	keys    *config.Keybindings
	title   string
	step    int

	filtering bool
	query     string
}

// New builds a Viewer sized to term. Entries are spliced into the list
// immediately; nothing is drawn until Run.
func New(term terminal.Terminal, deps Deps) (*Viewer, error) {
	settings := deps.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	if deps.Catalog == nil {
		deps.Catalog = source.NewCatalog(settings.WrapWidth, settings.MarkdownStyle)
	}
	if deps.Keys == nil {
		deps.Keys = config.NewKeybindings()
	}

	w, h, err := term.Size()
	if err != nil {
		return nil, err
	}

	ui := tui.New(term, w, h)
	sf := &surface{ui: ui, height: max(h-footerHeight, 0)}
	list := vlist.New(deps.Catalog, deps.Catalog.Templates(),
		vlist.WithSurface(sf),
		vlist.WithRetention(settings.PoolRetention),
		vlist.WithScrollStep(settings.ScrollStep),
	)
	if _, err := list.Splice(0, 0, deps.Entries...); err != nil {
		list.Dispose()
		return nil, err
	}
	list.Layout()

	v := &Viewer{
		term:    term,
		ui:      ui,
		list:    list,
		surface: sf,
		status:  component.NewStatusLine(),
		help:    newHelpView(deps.Keys),
		filter:  nav.NewFilter(deps.Entries),
		keys:    deps.Keys,
		title:   deps.Title,
		step:    max(settings.ScrollStep, 1),
	}
	ui.Container().Add(list)
	ui.Container().Add(v.status)
	v.refreshStatus()
	return v, nil
}

// Run owns the terminal until the user quits, input ends or ctx is done.
func Run(ctx context.Context, deps Deps) error {
	pt, err := terminal.NewProcessTerminal()
	if err != nil {
		return err
	}
	defer pt.Close()

	v, err := New(pt, deps)
	if err != nil {
		return err
	}
	defer v.Close()
	return v.Run(ctx)
}

// Run enters raw mode on the alternate screen and processes input.
func (v *Viewer) Run(ctx context.Context) error {
	defer terminal.RestoreOnPanic(v.term)

	if err := v.term.EnterRawMode(); err != nil {
		return err
	}
	defer func() {
		_, _ = v.term.Write([]byte(terminal.LeaveAltScreen))
		if err := v.term.ExitRawMode(); err != nil {
			log.Warn("raw: %v", err)
		}
	}()
	if _, err := v.term.Write([]byte(terminal.EnterAltScreen)); err != nil {
		return fmt.Errorf("raw: %w", err)
	}

	v.term.OnResize(v.Resize)
	v.ui.Start()
	defer v.ui.Stop()
	v.ui.RequestRender()

	inputCh := make(chan string)
	errCh := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go v.readInput(inputCh, errCh, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("raw: reading input: %w", err)
		case data := <-inputCh:
			if v.HandleInput(data) {
				return nil
			}
		}
	}
}

func (v *Viewer) readInput(inputCh chan<- string, errCh chan<- error, done <-chan struct{}) {
	defer terminal.RecoverGoroutine(v.term)

	buf := make([]byte, 256)
	for {
		n, err := v.term.Read(buf)
		if n > 0 {
			select {
			case inputCh <- string(buf[:n]):
			case <-done:
				return
			}
		}
		if err != nil {
			errCh <- err
			return
		}
	}
}

// HandleInput processes one chunk of raw terminal input and reports
// whether the user asked to quit.
func (v *Viewer) HandleInput(data string) (quit bool) {
	v.ui.Update(func() {
		for _, k := range key.Split(data) {
			if quit = v.handleKey(k); quit {
				return
			}
		}
		v.refreshStatus()
	})
	return quit
}

// Resize lays the list out for a new terminal size.
func (v *Viewer) Resize(w, h int) {
	v.ui.Update(func() {
		v.surface.height = max(h-footerHeight, 0)
		v.list.Layout()
		v.refreshStatus()
	})
	v.ui.SetSize(w, h)
}

// Close releases every pooled row.
func (v *Viewer) Close() {
	v.ui.Stop()
	v.list.Dispose()
}

func (v *Viewer) handleKey(data string) bool {
	k := key.ParseKey(data)

	if v.ui.HasOverlay() {
		v.ui.PopOverlay()
		return false
	}
	if v.filtering {
		return v.handleFilterKey(k)
	}

	action, ok := v.keys.Lookup(k.Name())
	if !ok {
		// Unbound keys fall back to the list's own pager keys.
		v.list.HandleInput(data)
		return false
	}
	if nav.Scroll(v.list, action, v.step) {
		return false
	}
	switch action {
	case config.ActionFilter:
		v.filtering = true
		v.query = v.filter.Query()
	case config.ActionCancel:
		if v.filter.Query() != "" {
			v.query = ""
			v.applyFilter()
		}
	case config.ActionHelp:
		v.ui.PushOverlay(tui.Overlay{Component: v.help, Position: tui.OverlayCenter})
	case config.ActionQuit:
		return true
	}
	return false
}

func (v *Viewer) handleFilterKey(k key.Key) bool {
	switch k.Type {
	case key.KeyCtrl:
		return k.Rune == 'c'
	case key.KeyEnter:
		v.filtering = false
		return false
	case key.KeyEscape:
		v.filtering = false
		v.query = ""
	case key.KeyBackspace:
		if v.query == "" {
			v.filtering = false
			return false
		}
		v.query = nav.Backspace(v.query)
	case key.KeyRune:
		if k.Alt {
			return false
		}
		v.query += string(k.Rune)
	default:
		return false
	}
	v.applyFilter()
	return false
}

func (v *Viewer) applyFilter() {
	if err := v.filter.Set(v.list, v.query); err != nil {
		log.Error("filter %q: %v", v.query, err)
	}
}

func (v *Viewer) refreshStatus() {
	left := v.title
	switch {
	case v.filtering:
		left = "/" + v.query + "█"
	case v.filter.Query() != "":
		left = fmt.Sprintf("%s  /%s (%d)", v.title, v.filter.Query(), v.list.Len())
	}

	stats := v.list.PoolStats()
	pos := "empty"
	if total := v.list.ScrollHeight(); total > 0 {
		top := v.list.ScrollTop()
		pos = fmt.Sprintf("%d-%d/%d", top+1, min(top+v.list.ViewHeight(), total), total)
	}
	v.status.Set(left, fmt.Sprintf("%s  %d items  pool %d/%d  ? help",
		pos, v.list.Len(), stats.Lent, stats.Lent+stats.Free))
}
