package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"magicbook/internal/book"
)

// ToKeyEvent converts a terminal key press into the navigator's key event
func ToKeyEvent(msg tea.KeyMsg, target book.KeyTarget) book.KeyEvent {
	key := msg.String()
	if msg.Alt {
		return book.KeyEvent{Key: key, Target: target}
	}
	switch msg.Type {
	case tea.KeySpace:
		key = book.KeySpace
	case tea.KeyLeft:
		key = book.KeyLeft
	case tea.KeyRight:
		key = book.KeyRight
	case tea.KeyHome:
		key = book.KeyHome
	case tea.KeyEnd:
		key = book.KeyEnd
	case tea.KeyEnter:
		key = book.KeyEnter
	}
	return book.KeyEvent{Key: key, Target: target}
}
