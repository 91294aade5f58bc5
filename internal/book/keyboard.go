package book

import "sync"

// Key names as produced by the terminal layer
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeySpace = " "
	KeyHome  = "home"
	KeyEnd   = "end"
	KeyEnter = "enter"
)

// KeyTarget is what held focus when a key was pressed
type KeyTarget int

const (
	TargetDocument KeyTarget = iota
	TargetTextInput
)

// KeyEvent is a single key press
type KeyEvent struct {
	Key    string
	Target KeyTarget
}

// KeyListener handles a key press and reports whether it consumed it,
// in which case the host suppresses its default handling.
type KeyListener func(KeyEvent) bool

// KeySource is the global input surface listeners attach to
type KeySource interface {
	AddKeyListener(l KeyListener) (remove func())
}

// HandleKey translates a key press into a navigation request. Presses
// while a text input has focus are ignored and never consumed.
func (n *Navigator) HandleKey(ev KeyEvent) bool {
	if ev.Target == TargetTextInput {
		return false
	}

	switch ev.Key {
	case KeyLeft, "a", "A":
		n.RequestPrev()
		return true
	case KeyRight, "d", "D", KeySpace, "space":
		n.RequestNext()
		return true
	case KeyHome:
		n.RequestGoTo(0)
		return true
	case KeyEnd:
		n.RequestGoTo(n.Len() - 1)
		return true
	case KeyEnter:
		// Enter flips between the cover and the last page
		n.request("toggle", func(s State) int {
			if s.Current == 0 {
				return s.Total - 1
			}
			return 0
		})
		return true
	}

	if len(ev.Key) == 1 && ev.Key[0] >= '1' && ev.Key[0] <= '9' {
		index := int(ev.Key[0] - '1')
		if index < n.Len() {
			n.RequestGoTo(index)
			return true
		}
	}
	return false
}

// BindKeyboard attaches the navigator to src. Only one binding exists per
// navigator: binding again returns the current unbind function. The
// returned function is safe to call any number of times, and Close
// releases the binding as well.
func (n *Navigator) BindKeyboard(src KeySource) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed || src == nil {
		return func() {}
	}
	if n.binding != nil {
		return n.binding.unbind
	}

	remove := src.AddKeyListener(n.HandleKey)

	n.nextBind++
	id := n.nextBind
	var once sync.Once
	unbind := func() {
		once.Do(func() {
			remove()
			n.mu.Lock()
			if n.binding != nil && n.binding.id == id {
				n.binding = nil
			}
			n.mu.Unlock()
		})
	}
	n.binding = &binding{id: id, unbind: unbind}
	return unbind
}

// Bound reports whether a keyboard binding is active
func (n *Navigator) Bound() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.binding != nil
}
