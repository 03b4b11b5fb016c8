// Package events carries the single in-process signal the storefront needs:
// "the cart changed". Views subscribe so a header badge and a catalog page
// rendered at the same time stay consistent without polling. Delivery is
// process-local only; a second process reading the same store is not
// notified.
package events

import "sync"

type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan struct{})}
}

// Subscribe returns a channel that receives a tick per cart change and an
// unsubscribe func. The channel is buffered; a slow subscriber coalesces
// ticks instead of blocking publishers.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// CartUpdated notifies every subscriber without blocking.
func (b *Bus) CartUpdated() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
