package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"magicbook/internal/ui/input/types"
)

// DetailMode holds the keyboard while the project popup is open
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "i", "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	// Swallow everything else so the page stays put under the popup
	return nil, true
}
