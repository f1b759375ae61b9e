// ABOUTME: Virtualized list view: rows exist only for items intersecting the viewport
// ABOUTME: Splice keeps items and the size index in lock-step; scrolling diffs index ranges

package vlist

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mauromedda/pi-vlist/internal/eventbus"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/key"
	"github.com/mauromedda/pi-vlist/pkg/tui/rowpool"
	"github.com/mauromedda/pi-vlist/pkg/tui/sizeindex"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

var (
	// ErrUnknownTemplate is returned by Splice when an element describes
	// itself with a kind that has no registered Renderer.
	ErrUnknownTemplate = rowpool.ErrUnknownTemplate
	// ErrDisposed is returned by Splice after Dispose.
	ErrDisposed = errors.New("list view disposed")
)

// Range is a half-open interval of item indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

// Contains reports whether i lies in r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// ScrollEvent is published after every committed scroll offset change.
// The list only scrolls vertically, so Horizontal is always false.
type ScrollEvent struct {
	ScrollTop    int
	ScrollHeight int
	ViewHeight   int
	Vertical     bool
	Horizontal   bool
}

type item[T any] struct {
	value  T
	size   int
	kind   string
	serial uint64 // lease tag for the row pool
	row    *rowpool.Row
}

// ListView renders a long sequence of variable-height items, keeping rows
// only for the items that intersect [renderTop, renderTop+renderHeight).
//
// A ListView is owned by one goroutine: all calls, including Render, must
// come from the host's event loop.
type ListView[T any] struct {
	describer Describer[T]
	templates Templates[T]
	pool      *rowpool.Pool
	surface   Surface
	scroll    *eventbus.Bus[ScrollEvent]

	items []*item[T]
	index *sizeindex.Index
	strip strip

	scrollTop    int
	viewHeight   int
	scrollStep   int
	renderTop    int
	renderHeight int
	rendered     Range // items holding a row after the last render pass
	stripTop     int   // offset of the first attached row relative to renderTop, <= 0

	nextSerial uint64
	disposed   bool
}

// Option configures a ListView.
type Option func(*options)

type options struct {
	surface    Surface
	retention  int
	viewHeight int
	scrollStep int
}

// WithSurface attaches the host surface.
func WithSurface(s Surface) Option {
	return func(o *options) { o.surface = s }
}

// WithRetention sets how many free rows per template kind the pool keeps.
func WithRetention(n int) Option {
	return func(o *options) { o.retention = n }
}

// WithViewHeight sets the initial viewport height.
func WithViewHeight(h int) Option {
	return func(o *options) { o.viewHeight = h }
}

// WithScrollStep sets how many rows line-wise input scrolls.
func WithScrollStep(n int) Option {
	return func(o *options) { o.scrollStep = n }
}

// New creates an empty ListView.
func New[T any](describer Describer[T], templates Templates[T], opts ...Option) *ListView[T] {
	o := options{retention: rowpool.DefaultRetention, scrollStep: 1}
	for _, opt := range opts {
		opt(&o)
	}

	v := &ListView[T]{
		describer:  describer,
		templates:  templates,
		pool:       rowpool.New(templates, rowpool.WithRetention(o.retention)),
		surface:    o.surface,
		scroll:     eventbus.New[ScrollEvent](),
		index:      sizeindex.New(),
		strip:      newStrip(),
		viewHeight: max(o.viewHeight, 0),
		scrollStep: max(o.scrollStep, 1),
	}
	return v
}

// Splice removes deleteCount items at start and inserts elems in their
// place. start and deleteCount are clamped like a slice splice. Every
// element is described before anything changes, so an unknown template
// kind leaves the list untouched. The removed payloads are returned.
func (v *ListView[T]) Splice(start, deleteCount int, elems ...T) ([]T, error) {
	if v.disposed {
		return nil, ErrDisposed
	}

	n := len(v.items)
	start = min(max(start, 0), n)
	deleteCount = min(max(deleteCount, 0), n-start)

	inserted := make([]*item[T], len(elems))
	sizes := make([]int, len(elems))
	for i, e := range elems {
		size, kind := v.describer.Describe(e)
		if _, ok := v.templates[kind]; !ok {
			return nil, fmt.Errorf("splice element %d: kind %q: %w", i, kind, ErrUnknownTemplate)
		}
		v.nextSerial++
		size = max(size, 0)
		inserted[i] = &item[T]{value: e, size: size, kind: kind, serial: v.nextSerial}
		sizes[i] = size
	}

	// Materialized survivors, re-indexed for after the splice.
	old := v.rendered
	shift := len(inserted) - deleteCount
	before := Range{Start: old.Start, End: min(old.End, start)}
	after := Range{Start: max(old.Start, start+deleteCount) + shift, End: old.End + shift}

	removed := slices.Clone(v.items[start : start+deleteCount])
	v.items = slices.Replace(v.items, start, start+deleteCount, inserted...)
	v.index.Splice(start, deleteCount, sizes...)

	values := make([]T, len(removed))
	for i, it := range removed {
		values[i] = it.value
		v.dematerialize(it)
	}

	v.reconcile(v.rangeFor(v.renderTop, v.renderHeight), before, after)

	log.Debug("vlist: splice start=%d delete=%d insert=%d count=%d size=%d",
		start, deleteCount, len(inserted), len(v.items), v.index.Size())

	if v.surface != nil {
		v.surface.SetContentHeight(v.index.Size())
	}
	v.SetScrollTop(v.scrollTop)
	if v.surface != nil {
		v.surface.RequestLayout()
	}
	return values, nil
}

// reconcile makes target the materialized range after a splice. survivors
// are the re-indexed ranges of rows that outlived the splice.
func (v *ListView[T]) reconcile(target Range, survivors ...Range) {
	for _, r := range survivors {
		for i := r.Start; i < r.End; i++ {
			if !target.Contains(i) {
				v.dematerialize(v.items[i])
			}
		}
	}
	for i := target.End - 1; i >= target.Start; i-- {
		v.materialize(i)
	}
	v.rendered = target
	v.stripTop = v.stripOffset(target, v.renderTop)
}

// Layout measures the surface and re-renders at the current offset.
func (v *ListView[T]) Layout() Range {
	if v.surface == nil {
		return v.rendered
	}
	return v.SetViewHeight(v.surface.ViewportHeight())
}

// SetViewHeight sets the viewport height and re-renders at the current
// scroll offset, re-clamped for the new height.
func (v *ListView[T]) SetViewHeight(h int) Range {
	v.viewHeight = max(h, 0)
	return v.SetScrollTop(v.scrollTop)
}

// SetScrollTop clamps top into [0, max(0, ScrollHeight()-ViewHeight())],
// renders that window, stores it and publishes a ScrollEvent. It returns
// the range of materialized items.
func (v *ListView[T]) SetScrollTop(top int) Range {
	if v.disposed {
		return Range{}
	}
	top = v.clampScrollTop(top)
	v.render(top, v.viewHeight)
	v.scrollTop = top

	v.scroll.Publish(ScrollEvent{
		ScrollTop:    top,
		ScrollHeight: v.index.Size(),
		ViewHeight:   v.viewHeight,
		Vertical:     true,
		Horizontal:   false,
	})
	return v.rendered
}

// ScrollBy moves the scroll offset by delta rows.
func (v *ListView[T]) ScrollBy(delta int) Range {
	return v.SetScrollTop(v.scrollTop + delta)
}

// ScrollToIndex scrolls so that item i starts at the top edge, as far as
// clamping allows. Out-of-range indices leave the offset unchanged.
func (v *ListView[T]) ScrollToIndex(i int) Range {
	pos := v.index.PositionAt(i)
	if pos == sizeindex.NoPosition {
		return v.rendered
	}
	return v.SetScrollTop(pos)
}

func (v *ListView[T]) clampScrollTop(top int) int {
	maxTop := max(v.index.Size()-v.viewHeight, 0)
	return min(max(top, 0), maxTop)
}

// OnDidScroll subscribes fn to scroll events and returns the unsubscribe func.
func (v *ListView[T]) OnDidScroll(fn func(ScrollEvent)) func() {
	return v.scroll.Subscribe(fn)
}

// ScrollTop returns the current scroll offset.
func (v *ListView[T]) ScrollTop() int { return v.scrollTop }

// ScrollHeight returns the total height of all items.
func (v *ListView[T]) ScrollHeight() int { return v.index.Size() }

// ViewHeight returns the viewport height.
func (v *ListView[T]) ViewHeight() int { return v.viewHeight }

// ScrollLeft is always 0; the list never scrolls horizontally.
func (v *ListView[T]) ScrollLeft() int { return 0 }

// SetScrollLeft is a no-op; the list never scrolls horizontally.
func (v *ListView[T]) SetScrollLeft(int) {}

// ScrollWidth is always 0; the list never scrolls horizontally.
func (v *ListView[T]) ScrollWidth() int { return 0 }

// Len returns the number of items.
func (v *ListView[T]) Len() int { return len(v.items) }

// Item returns the payload at i.
func (v *ListView[T]) Item(i int) (T, bool) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i].value, true
}

// ElementTop returns the offset of item i, or -1 when out of range.
func (v *ListView[T]) ElementTop(i int) int { return v.index.PositionAt(i) }

// ElementHeight returns the fixed height of item i, or -1 when out of range.
func (v *ListView[T]) ElementHeight(i int) int { return v.index.SizeAt(i) }

// IndexAt returns the index of the item covering offset pos.
func (v *ListView[T]) IndexAt(pos int) int { return v.index.IndexAt(pos) }

// Materialized returns the item range that holds rows.
func (v *ListView[T]) Materialized() Range { return v.rendered }

// PoolStats returns the row pool counters.
func (v *ListView[T]) PoolStats() rowpool.Stats { return v.pool.Stats() }

// IsInView reports whether item i overlaps the rendered window. An item
// that only touches an edge of the window is not in view.
func (v *ListView[T]) IsInView(i int) bool {
	pos := v.index.PositionAt(i)
	if pos == sizeindex.NoPosition {
		return false
	}
	size := v.index.SizeAt(i)
	return pos < v.renderTop+v.renderHeight && pos+size > v.renderTop
}

// rangeFor returns the items that overlap [top, top+height), the same set
// IsInView reports for that window. Zero-size items overlap only when they
// sit strictly inside it.
func (v *ListView[T]) rangeFor(top, height int) Range {
	if height <= 0 || len(v.items) == 0 {
		return Range{}
	}
	last := top + height - 1
	start := v.covering(top)
	end := v.index.IndexAfter(last)
	if last <= 0 {
		end = min(v.covering(last)+1, len(v.items))
	}
	return Range{Start: start, End: max(end, start)}
}

// covering returns the first item that ends past pos, or Count when none
// does. IndexAt answers 0 for pos <= 0 even when leading items are empty,
// so those are skipped here.
func (v *ListView[T]) covering(pos int) int {
	i := v.index.IndexAt(pos)
	for i < len(v.items) && v.index.PositionAt(i)+v.index.SizeAt(i) <= pos {
		i++
	}
	return i
}

// render moves the materialized range from the previous pass to the one
// covering [top, top+height). Only items in exactly one of the two ranges
// are touched. Inserts run before removes so a row leaving the window can
// be picked up by an entering item only after every visible row is placed.
func (v *ListView[T]) render(top, height int) {
	old := v.rendered
	next := v.rangeFor(top, height)

	// next \ old, walked high to low so each row lands before its successor.
	for i := min(next.End, old.Start) - 1; i >= next.Start; i-- {
		v.materialize(i)
	}
	for i := next.End - 1; i >= max(next.Start, old.End); i-- {
		v.materialize(i)
	}

	// old \ next
	for i := old.Start; i < min(old.End, next.Start); i++ {
		v.dematerialize(v.items[i])
	}
	for i := max(old.Start, next.End); i < old.End; i++ {
		v.dematerialize(v.items[i])
	}

	if next != old {
		log.Debug("vlist: render top=%d height=%d range=[%d,%d) rows=%d",
			top, height, next.Start, next.End, v.strip.len())
	}

	v.rendered = next
	v.renderTop = top
	v.renderHeight = height
	v.stripTop = v.stripOffset(next, top)
}

func (v *ListView[T]) stripOffset(r Range, top int) int {
	if r.Len() == 0 {
		return 0
	}
	return v.index.PositionAt(r.Start) - top
}

// materialize gives item i an attached, bound row: it takes a row from
// the pool if needed and attaches it before the next item's row (or at the
// end). Already attached items and out-of-range indices are no-ops.
func (v *ListView[T]) materialize(i int) {
	if i < 0 || i >= len(v.items) {
		return
	}
	it := v.items[i]
	if it.row == nil {
		row, err := v.pool.Alloc(it.kind, it.serial)
		if err != nil {
			log.Warn("vlist: materialize item %d: %v", i, err)
			return
		}
		it.row = row
	}
	if v.strip.isAttached(it.row) {
		return
	}

	var next *rowpool.Row
	if i+1 < len(v.items) {
		next = v.items[i+1].row
	}
	v.strip.insertBefore(it.row, next)
	v.bind(it)
}

// dematerialize detaches the item's row and returns it to the pool.
func (v *ListView[T]) dematerialize(it *item[T]) {
	if it == nil || it.row == nil {
		return
	}
	v.strip.detach(it.row)
	if v.pool != nil {
		if err := v.pool.Release(it.row); err != nil {
			log.Warn("vlist: release row %d: %v", it.row.ID, err)
		}
	}
	it.row = nil
}

// bind renders the payload into its row and pins the row to exactly
// it.size lines, whatever the renderer produced.
func (v *ListView[T]) bind(it *item[T]) {
	buf := it.row.Buffer
	buf.Reset()
	if r, ok := v.templates[it.kind]; ok {
		r.Render(it.value, it.row.State, buf, it.size)
	}
	buf.Fit(it.size)
}

// Render implements tui.Component. It writes exactly the rendered height:
// attached rows in order, the first one clipped by the strip offset, blank
// lines below the last item.
func (v *ListView[T]) Render(out *tui.RenderBuffer, w int) {
	skip := -v.stripTop
	written := 0
	v.strip.each(func(row *rowpool.Row) bool {
		for _, line := range row.Buffer.Lines {
			if skip > 0 {
				skip--
				continue
			}
			if written >= v.renderHeight {
				return false
			}
			out.WriteLine(width.TruncateToWidth(line, w))
			written++
		}
		return written < v.renderHeight
	})
	for ; written < v.renderHeight; written++ {
		out.WriteLine("")
	}
}

// Invalidate implements tui.Component by re-binding every attached row.
func (v *ListView[T]) Invalidate() {
	for i := v.rendered.Start; i < v.rendered.End; i++ {
		if it := v.items[i]; it.row != nil {
			v.bind(it)
		}
	}
}

// HandleInput implements tui.InputHandler with pager-style navigation.
func (v *ListView[T]) HandleInput(data string) {
	k := key.ParseKey(data)
	switch k.Type {
	case key.KeyUp:
		v.ScrollBy(-v.scrollStep)
	case key.KeyDown, key.KeyEnter:
		v.ScrollBy(v.scrollStep)
	case key.KeyPageUp:
		v.ScrollBy(-max(v.viewHeight, 1))
	case key.KeyPageDown:
		v.ScrollBy(max(v.viewHeight, 1))
	case key.KeyHome:
		v.SetScrollTop(0)
	case key.KeyEnd:
		v.SetScrollTop(v.ScrollHeight())
	case key.KeyRune:
		switch k.Rune {
		case 'k':
			v.ScrollBy(-v.scrollStep)
		case 'j':
			v.ScrollBy(v.scrollStep)
		case ' ':
			v.ScrollBy(max(v.viewHeight, 1))
		case 'g':
			v.SetScrollTop(0)
		case 'G':
			v.SetScrollTop(v.ScrollHeight())
		}
	}
}

// Dispose releases every row, tears down the pool, drops all scroll
// subscriptions and detaches the surface. It is idempotent and tolerates a
// partially constructed ListView.
func (v *ListView[T]) Dispose() {
	if v == nil || v.disposed {
		return
	}
	v.disposed = true

	for _, it := range v.items {
		v.dematerialize(it)
	}
	v.strip.reset()
	v.pool.Dispose()
	v.scroll.Close()
	v.surface = nil
	v.rendered = Range{}
	v.stripTop = 0
}
