// ABOUTME: Markdown row template backed by glamour; each pooled row owns a TermRenderer
// ABOUTME: Falls back to a regex ANSI styler when glamour cannot build or render

package component

import (
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

const (
	ansiBold      = "\x1b[1m"
	ansiItalic    = "\x1b[3m"
	ansiDim       = "\x1b[2m"
	ansiUnderline = "\x1b[4m"
	ansiCyan      = "\x1b[36m"
	ansiReset     = "\x1b[0m"
)

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*(.+?)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// StyleAuto picks glamour's dark or light style from the terminal background.
const StyleAuto = "auto"

// ResolveStyle maps StyleAuto to a concrete glamour style: "notty" off a
// terminal, otherwise "dark" or "light" from lipgloss's background setting.
// Other names pass through.
func ResolveStyle(style string, tty bool) string {
	if style != StyleAuto {
		return style
	}
	switch {
	case !tty:
		return "notty"
	case lipgloss.HasDarkBackground():
		return "dark"
	default:
		return "light"
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MarkdownRow renders a payload's markdown through glamour at a fixed
// word-wrap width. Building a TermRenderer is the costly part, so it lives
// in the row state and survives row reuse.
type MarkdownRow[T any] struct {
	wrap     int
	style    string
	markdown func(T) string

	measurer *glamour.TermRenderer // lazily built, used by Measure only
}

type markdownState struct {
	renderer *glamour.TermRenderer
	bound    string
	lines    []string
}

// NewMarkdownRow creates a MarkdownRow. style is a glamour standard style
// name ("dark", "light", "notty", "ascii") or StyleAuto.
func NewMarkdownRow[T any](wrap int, style string, markdown func(T) string) *MarkdownRow[T] {
	if style == "" {
		style = StyleAuto
	}
	return &MarkdownRow[T]{wrap: max(wrap, 1), style: style, markdown: markdown}
}

// Measure returns the number of lines the payload renders to.
func (r *MarkdownRow[T]) Measure(v T) int {
	if r.measurer == nil {
		r.measurer = r.newRenderer()
	}
	return len(r.layout(r.measurer, r.markdown(v)))
}

// NewState implements vlist.Renderer.
func (r *MarkdownRow[T]) NewState() any {
	return &markdownState{renderer: r.newRenderer()}
}

// Render implements vlist.Renderer.
func (r *MarkdownRow[T]) Render(v T, state any, out *tui.RenderBuffer, size int) {
	s, _ := state.(*markdownState)
	if s == nil {
		s = &markdownState{}
	}
	content := r.markdown(v)
	if s.lines == nil || s.bound != content {
		s.bound = content
		s.lines = r.layout(s.renderer, content)
	}
	writeFitted(out, s.lines, size)
}

// Teardown implements vlist.Renderer.
func (r *MarkdownRow[T]) Teardown(state any) {
	if s, ok := state.(*markdownState); ok {
		s.renderer = nil
		s.lines = nil
	}
}

func (r *MarkdownRow[T]) newRenderer() *glamour.TermRenderer {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(ResolveStyle(r.style, isTerminal(os.Stdout))),
		glamour.WithWordWrap(r.wrap),
	)
	if err != nil {
		log.Warn("markdown row: glamour style %q: %v", r.style, err)
		return nil
	}
	return tr
}

// layout renders content into lines. A nil renderer or a glamour error
// falls back to styleMarkdown.
func (r *MarkdownRow[T]) layout(tr *glamour.TermRenderer, content string) []string {
	if content == "" {
		return []string{""}
	}
	if tr != nil {
		rendered, err := tr.Render(content)
		if err == nil {
			// Glamour frames its output with blank lines and pads with spaces.
			lines := strings.Split(rendered, "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight(line, " ")
			}
			for len(lines) > 1 && width.VisibleWidth(lines[0]) == 0 {
				lines = lines[1:]
			}
			for len(lines) > 1 && width.VisibleWidth(lines[len(lines)-1]) == 0 {
				lines = lines[:len(lines)-1]
			}
			return lines
		}
		log.Warn("markdown row: render: %v", err)
	}

	var lines []string
	for _, line := range styleMarkdown(content) {
		lines = append(lines, width.WrapTextWithAnsi(line, r.wrap)...)
	}
	return lines
}

// styleMarkdown converts markdown to ANSI-styled lines, one per source line.
func styleMarkdown(content string) []string {
	var result []string
	inCodeBlock := false

	for _, line := range strings.Split(content, "\n") {
		if lang, ok := strings.CutPrefix(line, "```"); ok {
			inCodeBlock = !inCodeBlock
			if lang = strings.TrimSpace(lang); inCodeBlock && lang != "" {
				result = append(result, ansiDim+"    ["+lang+"]"+ansiReset)
			}
			continue
		}
		if inCodeBlock {
			result = append(result, "    "+ansiDim+line+ansiReset)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "#"):
			h := strings.TrimSpace(strings.TrimLeft(line, "#"))
			result = append(result, ansiBold+ansiCyan+h+ansiReset)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			result = append(result, "  • "+styleInline(trimmed[2:]))
		default:
			result = append(result, styleInline(line))
		}
	}
	return result
}

func styleInline(s string) string {
	s = reBold.ReplaceAllString(s, ansiBold+"$1"+ansiReset)
	s = reItalic.ReplaceAllStringFunc(s, func(match string) string {
		if strings.Contains(match, "**") {
			return match
		}
		return ansiItalic + match[1:len(match)-1] + ansiReset
	})
	s = reInlineCode.ReplaceAllString(s, ansiDim+ansiCyan+"$1"+ansiReset)
	return reLink.ReplaceAllString(s, ansiUnderline+"$1"+ansiReset)
}
