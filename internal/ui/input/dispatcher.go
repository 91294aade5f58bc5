package input

import (
	"sort"
	"sync"

	"magicbook/internal/book"
)

// Dispatcher is the application-wide key surface. Listeners are offered
// each key in registration order until one consumes it.
type Dispatcher struct {
	mu        sync.Mutex
	listeners map[uint64]book.KeyListener
	nextID    uint64
}

// NewDispatcher creates an empty key surface
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[uint64]book.KeyListener)}
}

// AddKeyListener registers l and returns a function that removes it
func (d *Dispatcher) AddKeyListener(l book.KeyListener) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[id] = l
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch offers ev to the listeners and reports whether one consumed it
func (d *Dispatcher) Dispatch(ev book.KeyEvent) bool {
	for _, l := range d.snapshot() {
		if l(ev) {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Dispatcher) snapshot() []book.KeyListener {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]uint64, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]book.KeyListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.listeners[id])
	}
	return out
}
