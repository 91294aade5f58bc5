package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"magicbook/internal/book"
	"magicbook/internal/ui/input/types"
)

// KeyMap describes the bindings shown in the help line. Dispatch itself
// goes through the input modes and the navigator's key table.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Toggle key.Binding
	Jump   key.Binding
	Help   key.Binding
	Quit   key.Binding

	Select   key.Binding
	Category key.Binding
	Detail   key.Binding
	Close    key.Binding

	Focus  key.Binding
	Submit key.Binding
	Blur   key.Binding
}

// DefaultKeyMap returns the bindings matching the navigator and input modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "a", "A"), key.WithHelp("←/a", "prev")),
		Next:   key.NewBinding(key.WithKeys("right", "d", "D", " "), key.WithHelp("→/d/space", "next")),
		First:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "first/last")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Select:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "select")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Detail:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "details")),
		Close:    key.NewBinding(key.WithKeys("esc", "i", "enter"), key.WithHelp("esc", "close")),

		Focus:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Blur:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
	}
}

// helpKeys adapts the keymap to what is usable right now
type helpKeys struct {
	keys KeyMap
	nav  book.State
	page types.PageKind
	mode types.Mode
}

func (h helpKeys) ShortHelp() []key.Binding {
	k := h.keys
	switch h.mode {
	case types.ModeForm:
		return []key.Binding{k.Focus, k.Submit, k.Blur}
	case types.ModeDetail:
		return []key.Binding{k.Close, k.Quit}
	}

	prev, next := k.Prev, k.Next
	prev.SetEnabled(h.nav.CanGoPrev() && !h.nav.InTransition)
	next.SetEnabled(h.nav.CanGoNext() && !h.nav.InTransition)

	bindings := []key.Binding{prev, next}
	switch h.page {
	case types.PageProjects:
		bindings = append(bindings, k.Select, k.Category, k.Detail)
	case types.PageContact:
		focus := k.Focus
		focus.SetHelp("tab", "write")
		bindings = append(bindings, focus)
	}
	return append(bindings, k.Help, k.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.Toggle, k.Jump},
		{k.Select, k.Category, k.Detail, k.Close},
		{k.Focus, k.Submit, k.Blur},
		{k.Help, k.Quit},
	}
}
