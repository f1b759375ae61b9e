// ABOUTME: Root Bubble Tea model: hosts a virtualized ListView of entries above a status footer
// ABOUTME: Implements vlist.Surface so the list learns its viewport height from WindowSizeMsg

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/nav"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/vlist"
)

// footerHeight is the number of terminal rows reserved below the list.
const footerHeight = 1

// wheelRows is how many scroll steps one mouse wheel notch moves.
const wheelRows = 3

// surface is the vlist.Surface backing the model.
type surface struct {
	height  int
	content int
	layouts int
}

func (s *surface) ViewportHeight() int       { return s.height }
func (s *surface) SetContentHeight(rows int) { s.content = rows }
func (s *surface) RequestLayout()            { s.layouts++ }

// shared holds mutable state that must survive AppModel value copies.
// Bubble Tea's Update is single-threaded, so no locking is needed.
type shared struct {
	list    *vlist.ListView[source.Entry]
	surface *surface
	filter  *nav.Filter
}

// AppModel is the root Bubble Tea model for the viewer.
type AppModel struct {
	sh *shared // survives value copies

	width, height int

	filtering bool
	query     string

	footer FooterModel
	deps   AppDeps
	step   int
}

// NewAppModel creates an AppModel with every entry spliced into the list.
func NewAppModel(deps AppDeps) (AppModel, error) {
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
	deps.Settings = settings

	sf := &surface{}
	list := vlist.New(deps.Catalog, deps.Catalog.Templates(),
		vlist.WithSurface(sf),
		vlist.WithRetention(settings.PoolRetention),
		vlist.WithScrollStep(settings.ScrollStep),
	)
	if _, err := list.Splice(0, 0, deps.Entries...); err != nil {
		list.Dispose()
		return AppModel{}, err
	}

	return AppModel{
		sh:     &shared{list: list, surface: sf, filter: nav.NewFilter(deps.Entries)},
		footer: NewFooterModel().WithTitle(deps.Title),
		deps:   deps,
		step:   max(settings.ScrollStep, 1),
	}, nil
}

// Init returns nil; the first WindowSizeMsg triggers layout.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sh.surface.height = max(msg.Height-footerHeight, 0)
		m.sh.list.Layout()
		updated, _ := m.footer.Update(msg)
		m.footer = updated.(FooterModel)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.sh.list.ScrollBy(-wheelRows * m.step)
		case tea.MouseButtonWheelDown:
			m.sh.list.ScrollBy(wheelRows * m.step)
		}
		return m, nil
	}
	return m, nil
}

// View renders the list viewport followed by the footer.
func (m AppModel) View() string {
	list := m.sh.list
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	list.Render(buf, m.width)

	top := list.ScrollTop()
	bottom := min(top+list.ViewHeight(), list.ScrollHeight())
	footer := m.footer.
		WithPosition(top, bottom, list.ScrollHeight()).
		WithItems(list.Len()).
		WithPoolStats(list.PoolStats()).
		WithFilter(m.filtering, m.query, list.Len())

	var b strings.Builder
	for _, line := range buf.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(footer.View())
	return b.String()
}

// --- Key handling ---

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := m.deps.Keys.Lookup(msg.String())
	if !ok || nav.Scroll(m.sh.list, action, m.step) {
		return m, nil
	}

	switch action {
	case config.ActionFilter:
		m.filtering = true
		m.query = m.sh.filter.Query()
	case config.ActionCancel:
		if m.sh.filter.Query() != "" {
			m.query = ""
			m.applyFilter()
		}
	case config.ActionQuit:
		return m, tea.Quit
	}
	return m, nil
}

// handleFilterKey edits the filter query. The list is re-filtered on every
// keystroke; enter keeps the result, esc clears it.
func (m AppModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.query = ""
	case tea.KeyBackspace:
		if m.query == "" {
			m.filtering = false
			return m, nil
		}
		m.query = nav.Backspace(m.query)
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	default:
		return m, nil
	}
	m.applyFilter()
	return m, nil
}

func (m AppModel) applyFilter() {
	if err := m.sh.filter.Set(m.sh.list, m.query); err != nil {
		log.Error("filter %q: %v", m.query, err)
	}
}

// Close releases every pooled row.
func (m AppModel) Close() {
	m.sh.list.Dispose()
}
