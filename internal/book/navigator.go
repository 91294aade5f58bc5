package book

import (
	"log"
	"sort"
	"sync"
	"time"

	"magicbook/internal/domain"
)

// DefaultDuration is the flip duration used until the host supplies one
const DefaultDuration = 1200 * time.Millisecond

// Navigator owns which page is showing and serializes page changes into
// a two-phase transition: the old page leaves for the first half of the
// duration, then the target becomes current and enters for the rest.
// A request arriving while a transition is in flight is dropped.
type Navigator struct {
	mu        sync.Mutex
	pages     []Page
	clock     Clock
	duration  time.Duration
	publisher Publisher
	debug     bool

	state  State
	timer  Timer
	seq    uint64
	active time.Duration // duration of the transition in flight

	listeners    map[uint64]Listener
	nextListener uint64

	binding  *binding
	nextBind uint64
	closed   bool
}

type binding struct {
	id     uint64
	unbind func()
}

// Option configures a Navigator
type Option func(*Navigator)

// WithClock replaces the wall clock, mostly for tests
func WithClock(c Clock) Option {
	return func(n *Navigator) {
		if c != nil {
			n.clock = c
		}
	}
}

// WithDuration sets the initial transition duration
func WithDuration(d time.Duration) Option {
	return func(n *Navigator) {
		n.duration = clampDuration(d)
	}
}

// WithPublisher attaches an event sink for transition events
func WithPublisher(p Publisher) Option {
	return func(n *Navigator) {
		n.publisher = p
	}
}

// WithDebug logs every accepted and rejected request
func WithDebug(enabled bool) Option {
	return func(n *Navigator) {
		n.debug = enabled
	}
}

// New creates a navigator over a fixed page set, showing the first page
func New(pages []Page, opts ...Option) (*Navigator, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	n := &Navigator{
		pages:     append([]Page(nil), pages...),
		clock:     WallClock(),
		duration:  DefaultDuration,
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.state = State{Total: len(n.pages)}
	return n, nil
}

// Len returns the page count
func (n *Navigator) Len() int {
	return len(n.pages)
}

// Page returns the page descriptor at index i
func (n *Navigator) Page(i int) (Page, bool) {
	if i < 0 || i >= len(n.pages) {
		return Page{}, false
	}
	return n.pages[i], true
}

// Pages returns a copy of the page set
func (n *Navigator) Pages() []Page {
	return append([]Page(nil), n.pages...)
}

// State returns a snapshot of the navigation state
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Duration returns the transition duration used for the next request
func (n *Navigator) Duration() time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.duration
}

// SetDuration changes the duration of future transitions
func (n *Navigator) SetDuration(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.duration = clampDuration(d)
}

// Subscribe registers a listener and returns its unsubscribe function
func (n *Navigator) Subscribe(fn Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || fn == nil {
		return func() {}
	}

	n.nextListener++
	id := n.nextListener
	n.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// RequestNext moves one page forward
func (n *Navigator) RequestNext() {
	n.request("next", func(s State) int { return s.Current + 1 })
}

// RequestPrev moves one page backward
func (n *Navigator) RequestPrev() {
	n.request("prev", func(s State) int { return s.Current - 1 })
}

// RequestGoTo jumps directly to index
func (n *Navigator) RequestGoTo(index int) {
	n.request("goto", func(State) int { return index })
}

// request evaluates pick against the current state and starts a
// transition to its result when the gate is open and the target is valid.
func (n *Navigator) request(name string, pick func(State) int) {
	n.mu.Lock()

	if n.closed {
		n.mu.Unlock()
		return
	}

	current := n.state.Current
	target := pick(n.state)

	var reason string
	switch {
	case n.state.InTransition:
		reason = "transition in flight"
	case target < 0 || target >= len(n.pages):
		reason = "out of range"
	case target == current:
		reason = "already showing"
	}
	if reason != "" {
		n.mu.Unlock()
		if n.debug {
			log.Printf("book: %s to %d rejected at %d: %s", name, target, current, reason)
		}
		n.publish(domain.NavigationRejectedEvent{Request: name, Current: current, Reason: reason})
		return
	}

	n.state.InTransition = true
	n.state.Target = target
	n.state.Phase = PhaseLeaving
	if target > current {
		n.state.Direction = Forward
	} else {
		n.state.Direction = Backward
	}

	n.seq++
	seq := n.seq
	n.active = n.duration
	active := n.active
	n.state.Duration = active
	n.timer = n.clock.AfterFunc(active/2, func() { n.advance(seq) })

	snapshot, listeners := n.state, n.listenersLocked()
	n.mu.Unlock()

	if n.debug {
		log.Printf("book: %s %d -> %d (%s, %v)", name, current, target, snapshot.Direction, active)
	}
	n.notify(listeners, snapshot)
	n.publish(domain.TransitionStartedEvent{From: current, To: target, Direction: snapshot.Direction.String()})
}

// advance runs when the transition timer fires: leaving becomes entering
// at the midpoint, entering becomes idle at the end.
func (n *Navigator) advance(seq uint64) {
	n.mu.Lock()
	if n.closed || seq != n.seq {
		n.mu.Unlock()
		return
	}

	var event domain.DomainEvent
	switch n.state.Phase {
	case PhaseLeaving:
		from := n.state.Current
		n.state.Current = n.state.Target
		n.state.Phase = PhaseEntering
		n.timer = n.clock.AfterFunc(n.active-n.active/2, func() { n.advance(seq) })
		event = domain.PageChangedEvent{From: from, To: n.state.Current, Title: n.pages[n.state.Current].Title}
	case PhaseEntering:
		n.state.InTransition = false
		n.state.Phase = PhaseIdle
		n.state.Duration = 0
		n.timer = nil
		event = domain.TransitionSettledEvent{Current: n.state.Current}
	default:
		n.mu.Unlock()
		return
	}

	snapshot, listeners := n.state, n.listenersLocked()
	n.mu.Unlock()

	n.notify(listeners, snapshot)
	n.publish(event)
}

// Close cancels any pending transition timer, releases the keyboard
// binding and drops listeners. Requests after Close are ignored.
func (n *Navigator) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.seq++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	var unbind func()
	if n.binding != nil {
		unbind = n.binding.unbind
	}
	n.listeners = make(map[uint64]Listener)
	n.mu.Unlock()

	if unbind != nil {
		unbind()
	}
}

// Closed reports whether Close has been called
func (n *Navigator) Closed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

func (n *Navigator) listenersLocked() []Listener {
	if len(n.listeners) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.listeners[id])
	}
	return out
}

func (n *Navigator) notify(listeners []Listener, s State) {
	for _, fn := range listeners {
		fn(s)
	}
}

func (n *Navigator) publish(event domain.DomainEvent) {
	if n.publisher != nil {
		n.publisher.Publish(event)
	}
}

func clampDuration(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
