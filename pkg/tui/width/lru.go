// ABOUTME: Small generic LRU cache shared by the width and wrap measurements
// ABOUTME: container/list gives O(1) promotion and eviction; a mutex guards both

package width

import (
	"container/list"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// lru is a fixed-capacity least-recently-used cache safe for concurrent use.
type lru[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*list.Element
	order *list.List
	size  int
}

func newLRU[K comparable, V any](size int) *lru[K, V] {
	return &lru[K, V]{
		items: make(map[K]*list.Element, size),
		order: list.New(),
		size:  max(size, 1),
	}
}

func (c *lru[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry[K, V]).value, true
}

func (c *lru[K, V]) put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry[K, V]).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry[K, V]{key: key, value: value})
}

func (c *lru[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
