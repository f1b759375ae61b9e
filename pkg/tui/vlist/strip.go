// ABOUTME: Ordered strip of attached rows in screen order, drawn top to bottom by Render
// ABOUTME: container/list keeps insert-before O(1); a side table keyed by Row.ID tracks attachment

package vlist

import (
	"container/list"

	"github.com/mauromedda/pi-vlist/pkg/tui/rowpool"
)

type strip struct {
	rows     *list.List
	attached map[uint64]*list.Element
}

func newStrip() strip {
	return strip{
		rows:     list.New(),
		attached: make(map[uint64]*list.Element),
	}
}

func (s *strip) isAttached(row *rowpool.Row) bool {
	if row == nil || s.attached == nil {
		return false
	}
	_, ok := s.attached[row.ID]
	return ok
}

// insertBefore attaches row right before next, or at the end when next is
// nil or not attached.
func (s *strip) insertBefore(row, next *rowpool.Row) {
	if next != nil {
		if mark, ok := s.attached[next.ID]; ok {
			s.attached[row.ID] = s.rows.InsertBefore(row, mark)
			return
		}
	}
	s.attached[row.ID] = s.rows.PushBack(row)
}

func (s *strip) detach(row *rowpool.Row) {
	if row == nil || s.attached == nil {
		return
	}
	if e, ok := s.attached[row.ID]; ok {
		s.rows.Remove(e)
		delete(s.attached, row.ID)
	}
}

func (s *strip) len() int {
	if s.rows == nil {
		return 0
	}
	return s.rows.Len()
}

// each calls fn for every attached row in strip order until fn returns false.
func (s *strip) each(fn func(row *rowpool.Row) bool) {
	if s.rows == nil {
		return
	}
	for e := s.rows.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(*rowpool.Row)) {
			return
		}
	}
}

func (s *strip) reset() {
	if s.rows != nil {
		s.rows.Init()
	}
	clear(s.attached)
}
