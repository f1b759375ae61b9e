// ABOUTME: Navigation shared by the viewer front ends: keybinding actions and the fuzzy filter
// ABOUTME: Both operate on a ListView so every front end scrolls and filters the same way

package nav

import (
	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui/fuzzy"
	"github.com/mauromedda/pi-vlist/pkg/tui/vlist"
)

// Scroll applies a scrolling action to list. Lines move by step rows and
// pages by the view height. It reports false for non-scrolling actions.
func Scroll[T any](list *vlist.ListView[T], action config.KeyAction, step int) bool {
	step = max(step, 1)
	page := max(list.ViewHeight(), 1)
	switch action {
	case config.ActionScrollUp:
		list.ScrollBy(-step)
	case config.ActionScrollDown:
		list.ScrollBy(step)
	case config.ActionPageUp:
		list.ScrollBy(-page)
	case config.ActionPageDown:
		list.ScrollBy(page)
	case config.ActionHome:
		list.SetScrollTop(0)
	case config.ActionEnd:
		list.SetScrollTop(list.ScrollHeight())
	default:
		return false
	}
	return true
}

// Filter narrows a list to the entries that fuzzy-match a query.
type Filter struct {
	all   []source.Entry
	query string
}

// NewFilter creates a Filter over the full entry set.
func NewFilter(all []source.Entry) *Filter {
	return &Filter{all: all}
}

// Query returns the applied query.
func (f *Filter) Query() string {
	return f.query
}

// Total returns the size of the unfiltered entry set.
func (f *Filter) Total() int {
	return len(f.all)
}

// Set replaces the list content with the entries matching query, best
// match first, and scrolls to the top. An empty query restores every entry
// in its original order.
func (f *Filter) Set(list *vlist.ListView[source.Entry], query string) error {
	matches := fuzzy.Filter(query, f.all, source.Entry.FilterValue)
	if _, err := list.Splice(0, list.Len(), matches...); err != nil {
		return err
	}
	f.query = query
	list.SetScrollTop(0)
	log.Debug("filter %q: %d of %d entries", query, len(matches), len(f.all))
	return nil
}

// Backspace drops the last rune of s.
func Backspace(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
