// ABOUTME: Cumulative size index over an ordered sequence of item heights
// ABOUTME: Implicit treap stored in an arena slice; splice and offset queries in O(log n)

package sizeindex

// NoPosition is returned by PositionAt and SizeAt for an out-of-range index.
const NoPosition = -1

// nilNode is the arena slot reserved as the empty subtree. Its count and
// sum are always zero, so child lookups need no branch.
const nilNode int32 = 0

type node struct {
	left, right int32
	prio        uint32
	size        int // rows occupied by this item
	sum         int // rows occupied by the whole subtree
	count       int // items in the whole subtree
}

// Index maps item indices to row offsets and back. Items are ordered by
// position only; the tree is keyed implicitly by subtree counts.
//
// An Index is not safe for concurrent use.
type Index struct {
	nodes []node
	free  []int32
	root  int32
	seed  uint64
}

// New returns an Index holding the given sizes in order.
func New(sizes ...int) *Index {
	x := &Index{
		nodes: make([]node, 1, len(sizes)+1),
		seed:  0x9e3779b97f4a7c15,
	}
	x.root = x.build(sizes)
	return x
}

// Count returns the number of items.
func (x *Index) Count() int {
	if x == nil || x.nodes == nil {
		return 0
	}
	return x.nodes[x.root].count
}

// Size returns the total number of rows of all items.
func (x *Index) Size() int {
	if x == nil || x.nodes == nil {
		return 0
	}
	return x.nodes[x.root].sum
}

// Splice removes deleteCount items starting at start and inserts sizes in
// their place. Arguments are clamped like a slice splice: start to
// [0, Count()] and deleteCount to the items remaining after start.
// Negative sizes are stored as zero.
func (x *Index) Splice(start, deleteCount int, sizes ...int) {
	if x.nodes == nil {
		*x = *New()
	}
	n := x.Count()
	start = min(max(start, 0), n)
	deleteCount = min(max(deleteCount, 0), n-start)

	left, rest := x.split(x.root, start)
	removed, right := x.split(rest, deleteCount)
	x.release(removed)

	x.root = x.merge(x.merge(left, x.build(sizes)), right)
}

// IndexAt returns the index of the item whose row range
// [PositionAt(i), PositionAt(i)+SizeAt(i)) contains position.
// It returns 0 for position <= 0 and Count() for position >= Size().
// Zero-size items never contain a position.
func (x *Index) IndexAt(position int) int {
	if position <= 0 {
		return 0
	}
	if position >= x.Size() {
		return x.Count()
	}

	idx := 0
	t := x.root
	for t != nilNode {
		n := &x.nodes[t]
		leftSum := x.nodes[n.left].sum
		if position < leftSum {
			t = n.left
			continue
		}
		position -= leftSum
		leftCount := x.nodes[n.left].count
		if position < n.size {
			return idx + leftCount
		}
		position -= n.size
		idx += leftCount + 1
		t = n.right
	}
	return idx
}

// IndexAfter returns the exclusive upper bound index for position:
// min(IndexAt(position)+1, Count()).
func (x *Index) IndexAfter(position int) int {
	return min(x.IndexAt(position)+1, x.Count())
}

// PositionAt returns the row offset at which item index begins, or
// NoPosition when index is out of range.
func (x *Index) PositionAt(index int) int {
	if index < 0 || index >= x.Count() {
		return NoPosition
	}

	pos := 0
	t := x.root
	for t != nilNode {
		n := &x.nodes[t]
		leftCount := x.nodes[n.left].count
		switch {
		case index < leftCount:
			t = n.left
		case index == leftCount:
			return pos + x.nodes[n.left].sum
		default:
			pos += x.nodes[n.left].sum + n.size
			index -= leftCount + 1
			t = n.right
		}
	}
	return NoPosition
}

// SizeAt returns the size of item index, or NoPosition when out of range.
func (x *Index) SizeAt(index int) int {
	if index < 0 || index >= x.Count() {
		return NoPosition
	}

	t := x.root
	for t != nilNode {
		n := &x.nodes[t]
		leftCount := x.nodes[n.left].count
		switch {
		case index < leftCount:
			t = n.left
		case index == leftCount:
			return n.size
		default:
			index -= leftCount + 1
			t = n.right
		}
	}
	return NoPosition
}

// Sizes returns all item sizes in order.
func (x *Index) Sizes() []int {
	out := make([]int, 0, x.Count())
	if x.Count() == 0 {
		return out
	}

	stack := make([]int32, 0, 32)
	t := x.root
	for t != nilNode || len(stack) > 0 {
		for t != nilNode {
			stack = append(stack, t)
			t = x.nodes[t].left
		}
		t = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, x.nodes[t].size)
		t = x.nodes[t].right
	}
	return out
}

// update recomputes the aggregates of t from its children.
func (x *Index) update(t int32) {
	n := &x.nodes[t]
	l, r := &x.nodes[n.left], &x.nodes[n.right]
	n.sum = n.size + l.sum + r.sum
	n.count = 1 + l.count + r.count
}

// split cuts t so that the first k items end up in the left tree.
func (x *Index) split(t int32, k int) (int32, int32) {
	if t == nilNode {
		return nilNode, nilNode
	}
	leftCount := x.nodes[x.nodes[t].left].count
	if k <= leftCount {
		l, r := x.split(x.nodes[t].left, k)
		x.nodes[t].left = r
		x.update(t)
		return l, t
	}
	l, r := x.split(x.nodes[t].right, k-leftCount-1)
	x.nodes[t].right = l
	x.update(t)
	return t, r
}

// merge joins a and b, every item of a ordered before every item of b.
func (x *Index) merge(a, b int32) int32 {
	if a == nilNode {
		return b
	}
	if b == nilNode {
		return a
	}
	if x.nodes[a].prio > x.nodes[b].prio {
		right := x.merge(x.nodes[a].right, b)
		x.nodes[a].right = right
		x.update(a)
		return a
	}
	left := x.merge(a, x.nodes[b].left)
	x.nodes[b].left = left
	x.update(b)
	return b
}

// build creates a treap over sizes in linear time using the right-spine
// stack construction of a Cartesian tree.
func (x *Index) build(sizes []int) int32 {
	if len(sizes) == 0 {
		return nilNode
	}

	spine := make([]int32, 0, 32)
	for _, size := range sizes {
		t := x.alloc(size)
		last := nilNode
		for len(spine) > 0 && x.nodes[spine[len(spine)-1]].prio < x.nodes[t].prio {
			last = spine[len(spine)-1]
			spine = spine[:len(spine)-1]
			x.update(last)
		}
		x.nodes[t].left = last
		if len(spine) > 0 {
			x.nodes[spine[len(spine)-1]].right = t
		}
		spine = append(spine, t)
	}
	for i := len(spine) - 1; i >= 0; i-- {
		x.update(spine[i])
	}
	return spine[0]
}

// alloc takes a node from the free list or grows the arena.
func (x *Index) alloc(size int) int32 {
	n := node{
		prio:  x.nextPrio(),
		size:  max(size, 0),
		count: 1,
	}
	n.sum = n.size

	if len(x.free) > 0 {
		t := x.free[len(x.free)-1]
		x.free = x.free[:len(x.free)-1]
		x.nodes[t] = n
		return t
	}
	x.nodes = append(x.nodes, n)
	return int32(len(x.nodes) - 1)
}

// release returns every node of subtree t to the free list.
func (x *Index) release(t int32) {
	if t == nilNode {
		return
	}
	stack := []int32{t}
	for len(stack) > 0 {
		t = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := x.nodes[t]
		if n.left != nilNode {
			stack = append(stack, n.left)
		}
		if n.right != nilNode {
			stack = append(stack, n.right)
		}
		x.nodes[t] = node{}
		x.free = append(x.free, t)
	}
}

// nextPrio is a xorshift64* step; the treap only needs priorities that
// look random, and a fixed seed keeps tree shapes reproducible.
func (x *Index) nextPrio() uint32 {
	x.seed ^= x.seed >> 12
	x.seed ^= x.seed << 25
	x.seed ^= x.seed >> 27
	return uint32((x.seed * 2685821657736338717) >> 32)
}
