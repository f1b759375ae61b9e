// ABOUTME: Render-resource pool: reusable rows keyed by template kind with a per-kind retention cap
// ABOUTME: Rows toggle between Free and Lent; Alloc and Release are the only transitions

package rowpool

import (
	"errors"
	"fmt"

	"github.com/mauromedda/pi-vlist/pkg/tui"
)

// DefaultRetention is the number of free rows kept per template kind.
const DefaultRetention = 16

var (
	// ErrUnknownTemplate is returned by Alloc for a kind the Source does not know.
	ErrUnknownTemplate = errors.New("unknown row template")
	// ErrNotLent is returned when releasing a row that is not currently lent.
	ErrNotLent = errors.New("row is not lent")
	// ErrForeignRow is returned when releasing a row created by another pool.
	ErrForeignRow = errors.New("row belongs to another pool")
	// ErrClosed is returned by Alloc after Dispose.
	ErrClosed = errors.New("row pool closed")
)

// Template builds and tears down the per-kind render state of a row.
// NewState is assumed to be expensive compared to re-binding data into an
// existing row, which is why rows are pooled.
type Template interface {
	NewState() any
	Teardown(state any)
}

// Source resolves a template kind to its Template.
type Source interface {
	Template(kind string) (Template, bool)
}

// Ownership is the lending state of a row.
type Ownership int

const (
	Free Ownership = iota
	Lent
	Destroyed
)

func (o Ownership) String() string {
	switch o {
	case Free:
		return "free"
	case Lent:
		return "lent"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("Ownership(%d)", int(o))
}

// Row is a reusable rendering slot. Buffer is the row's own drawable and
// State is opaque data owned by the row's template.
type Row struct {
	ID     uint64
	Kind   string
	Buffer *tui.RenderBuffer
	State  any

	pool  *Pool
	tmpl  Template
	owner Ownership
	lease uint64
}

// Ownership reports whether the row is free, lent or destroyed.
func (r *Row) Ownership() Ownership {
	return r.owner
}

// Lease returns the lease tag given to Alloc while the row is lent.
func (r *Row) Lease() (uint64, bool) {
	return r.lease, r.owner == Lent
}

// Stats counts pool activity since creation.
type Stats struct {
	Constructed int // rows built through Template.NewState
	Reused      int // allocations served from a free list
	Released    int // successful Release calls
	Destroyed   int // rows torn down (over retention or disposed)
	Lent        int // rows currently lent
	Free        int // rows currently free
}

// Pool hands out rows by template kind. It is single-owner and not safe
// for concurrent use.
type Pool struct {
	src       Source
	retention int
	free      map[string][]*Row
	lent      map[uint64]*Row
	nextID    uint64
	stats     Stats
	closed    bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithRetention sets how many free rows of each kind are kept for reuse.
func WithRetention(n int) Option {
	return func(p *Pool) {
		p.retention = max(n, 0)
	}
}

// New creates a Pool that builds rows through src.
func New(src Source, opts ...Option) *Pool {
	p := &Pool{
		src:       src,
		retention: DefaultRetention,
		free:      make(map[string][]*Row),
		lent:      make(map[uint64]*Row),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Retention returns the per-kind retention cap.
func (p *Pool) Retention() int {
	return p.retention
}

// Alloc lends a row of the given kind, tagged with lease. A free row of the
// same kind is preferred; it comes back with an empty buffer and its
// render state intact. Otherwise a new row is constructed.
func (p *Pool) Alloc(kind string, lease uint64) (*Row, error) {
	if p.closed {
		return nil, ErrClosed
	}

	if free := p.free[kind]; len(free) > 0 {
		row := free[len(free)-1]
		free[len(free)-1] = nil
		p.free[kind] = free[:len(free)-1]
		row.Buffer.Reset()
		p.lend(row, lease)
		p.stats.Reused++
		return row, nil
	}

	tmpl, ok := p.src.Template(kind)
	if !ok {
		return nil, fmt.Errorf("alloc row %q: %w", kind, ErrUnknownTemplate)
	}
	p.nextID++
	row := &Row{
		ID:     p.nextID,
		Kind:   kind,
		Buffer: tui.AcquireBuffer(),
		State:  tmpl.NewState(),
		pool:   p,
		tmpl:   tmpl,
	}
	p.stats.Constructed++
	p.lend(row, lease)
	return row, nil
}

// Release returns a lent row. The row is kept for reuse unless the free
// list of its kind is already at the retention cap or the pool is closed,
// in which case it is destroyed.
func (p *Pool) Release(row *Row) error {
	if row == nil {
		return nil
	}
	if row.pool != p {
		return fmt.Errorf("release row %d: %w", row.ID, ErrForeignRow)
	}
	if row.owner != Lent {
		return fmt.Errorf("release row %d (%s): %w", row.ID, row.owner, ErrNotLent)
	}

	delete(p.lent, row.ID)
	row.lease = 0
	p.stats.Released++

	if p.closed || len(p.free[row.Kind]) >= p.retention {
		p.destroy(row)
		return nil
	}
	row.owner = Free
	row.Buffer.Reset()
	p.free[row.Kind] = append(p.free[row.Kind], row)
	return nil
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	s := p.stats
	s.Lent = len(p.lent)
	s.Free = 0
	for _, rows := range p.free {
		s.Free += len(rows)
	}
	return s
}

// Dispose destroys every free and lent row. It is safe to call more than
// once; Alloc fails with ErrClosed afterwards.
func (p *Pool) Dispose() {
	if p == nil || p.closed {
		return
	}
	p.closed = true

	for kind, rows := range p.free {
		for _, row := range rows {
			p.destroy(row)
		}
		delete(p.free, kind)
	}
	for id, row := range p.lent {
		p.destroy(row)
		delete(p.lent, id)
	}
}

func (p *Pool) lend(row *Row, lease uint64) {
	row.owner = Lent
	row.lease = lease
	p.lent[row.ID] = row
}

func (p *Pool) destroy(row *Row) {
	if row.tmpl != nil {
		row.tmpl.Teardown(row.State)
	}
	tui.ReleaseBuffer(row.Buffer)
	row.Buffer = nil
	row.State = nil
	row.owner = Destroyed
	row.lease = 0
	p.stats.Destroyed++
}
