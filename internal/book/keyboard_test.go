package book

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeySource records listeners like a window-level key surface
type fakeKeySource struct {
	mu        sync.Mutex
	listeners map[int]KeyListener
	next      int
	adds      int
	removes   int
}

func newFakeKeySource() *fakeKeySource {
	return &fakeKeySource{listeners: make(map[int]KeyListener)}
}

func (f *fakeKeySource) AddKeyListener(l KeyListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := f.next
	f.listeners[id] = l
	f.adds++
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			f.removes++
		}
	}
}

func (f *fakeKeySource) press(key string, target KeyTarget) bool {
	f.mu.Lock()
	ls := make([]KeyListener, 0, len(f.listeners))
	for _, l := range f.listeners {
		ls = append(ls, l)
	}
	f.mu.Unlock()

	consumed := false
	for _, l := range ls {
		if l(KeyEvent{Key: key, Target: target}) {
			consumed = true
		}
	}
	return consumed
}

func (f *fakeKeySource) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func TestHandleKeyMapping(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   string
		want  int
	}{
		{"arrow right", 1, KeyRight, 2},
		{"d", 1, "d", 2},
		{"D", 1, "D", 2},
		{"space", 1, KeySpace, 2},
		{"space by name", 1, "space", 2},
		{"arrow left", 2, KeyLeft, 1},
		{"a", 2, "a", 1},
		{"A", 2, "A", 1},
		{"home", 2, KeyHome, 0},
		{"end", 1, KeyEnd, 3},
		{"enter on cover", 0, KeyEnter, 3},
		{"enter elsewhere", 2, KeyEnter, 0},
		{"digit 1", 2, "1", 0},
		{"digit 4", 0, "4", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, clock := newTestNavigator(t, 4)
			if tt.start != 0 {
				nav.RequestGoTo(tt.start)
				settle(clock)
			}

			consumed := nav.HandleKey(KeyEvent{Key: tt.key})
			assert.True(t, consumed)
			settle(clock)
			assert.Equal(t, tt.want, nav.State().Current)
		})
	}
}

func TestHandleKeyIgnoresUnmappedKeys(t *testing.T) {
	nav, clock := newTestNavigator(t, 4)

	for _, key := range []string{"x", "up", "down", "0", "5", "9", "tab", ""} {
		assert.False(t, nav.HandleKey(KeyEvent{Key: key}), "key %q", key)
	}
	assert.Equal(t, 0, clock.Pending())
}

func TestHandleKeyIgnoresTextInputTargets(t *testing.T) {
	nav, clock := newTestNavigator(t, 4)

	for _, key := range []string{KeyRight, KeyLeft, KeySpace, KeyEnd, KeyEnter, "d", "3"} {
		consumed := nav.HandleKey(KeyEvent{Key: key, Target: TargetTextInput})
		assert.False(t, consumed, "key %q", key)
	}
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, 0, nav.State().Current)
}

func TestNavigationKeysAreConsumedEvenWhenRejected(t *testing.T) {
	nav, _ := newTestNavigator(t, 4)

	nav.RequestNext()
	assert.True(t, nav.HandleKey(KeyEvent{Key: KeySpace}))
	assert.True(t, nav.HandleKey(KeyEvent{Key: KeyLeft}))
}

func TestEndKeyGoesToLastPage(t *testing.T) {
	nav, clock := newTestNavigator(t, 6)

	nav.HandleKey(KeyEvent{Key: KeyEnd})
	settle(clock)
	assert.Equal(t, 5, nav.State().Current)
}

func TestEnterTogglesBetweenCoverAndLastPage(t *testing.T) {
	nav, clock := newTestNavigator(t, 4)

	nav.HandleKey(KeyEvent{Key: KeyEnter})
	settle(clock)
	require.Equal(t, 3, nav.State().Current)

	nav.HandleKey(KeyEvent{Key: KeyEnter})
	assert.Equal(t, Backward, nav.State().Direction)
	settle(clock)
	assert.Equal(t, 0, nav.State().Current)
}

func TestDigitKeysBeyondPageCountAreIgnored(t *testing.T) {
	nav, clock := newTestNavigator(t, 2)

	assert.False(t, nav.HandleKey(KeyEvent{Key: "3"}))
	assert.True(t, nav.HandleKey(KeyEvent{Key: "2"}))
	settle(clock)
	assert.Equal(t, 1, nav.State().Current)
}

func TestBindKeyboardRegistersOneListener(t *testing.T) {
	nav, clock := newTestNavigator(t, 4)
	src := newFakeKeySource()

	unbind := nav.BindKeyboard(src)
	again := nav.BindKeyboard(src)
	assert.Equal(t, 1, src.count())
	assert.Equal(t, 1, src.adds)
	assert.True(t, nav.Bound())

	assert.True(t, src.press(KeyRight, TargetDocument))
	settle(clock)
	assert.Equal(t, 1, nav.State().Current)

	assert.False(t, src.press(KeyRight, TargetTextInput))
	assert.Equal(t, 0, clock.Pending())

	unbind()
	unbind()
	again()
	assert.Equal(t, 0, src.count())
	assert.Equal(t, 1, src.removes)
	assert.False(t, nav.Bound())

	assert.False(t, src.press(KeyRight, TargetDocument))
	assert.Equal(t, 1, nav.State().Current)
}

func TestRebindAfterUnbind(t *testing.T) {
	nav, _ := newTestNavigator(t, 4)
	src := newFakeKeySource()

	nav.BindKeyboard(src)()
	nav.BindKeyboard(src)
	assert.Equal(t, 1, src.count())
	assert.Equal(t, 2, src.adds)
}

func TestCloseUnbindsKeyboard(t *testing.T) {
	nav, clock := newTestNavigator(t, 4)
	src := newFakeKeySource()

	unbind := nav.BindKeyboard(src)
	nav.RequestNext()
	nav.Close()

	assert.Equal(t, 0, src.count())
	assert.Equal(t, 0, clock.Pending())
	assert.NotPanics(t, unbind)
	assert.Equal(t, 1, src.removes)

	// Binding a closed navigator is a no-op
	nav.BindKeyboard(src)
	assert.Equal(t, 0, src.count())
}
