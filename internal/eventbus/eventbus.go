// ABOUTME: Typed event bus delivering to subscribers in subscription order
// ABOUTME: Subscribe returns an unsubscribe func; Close severs every subscription at once

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscription[T any] struct {
	id      int
	handler Handler[T]
}

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID int
	closed bool
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Subscribing to a closed bus returns a no-op unsubscribe.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || handler == nil {
		return func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus[T]) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all registered handlers synchronously, in the
// order they subscribed. Handlers may unsubscribe during delivery; the
// current event still reaches the snapshot taken before delivery began.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	if b.closed || len(b.subs) == 0 {
		b.mu.RUnlock()
		return
	}
	snapshot := make([]Handler[T], len(b.subs))
	for i, s := range b.subs {
		snapshot[i] = s.handler
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close drops every subscription. Later Publish calls deliver nothing and
// later Subscribe calls are ignored. Safe to call more than once.
func (b *Bus[T]) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.closed = true
	b.subs = nil
	b.mu.Unlock()
}
