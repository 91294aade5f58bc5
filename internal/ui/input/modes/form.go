package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"magicbook/internal/book"
	"magicbook/internal/ui/input/types"
)

// FormMode is active while a contact field has focus. Keys are still offered
// to the navigator, tagged as text input, so it can decline them; whatever
// it declines is typed into the field.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFieldAction{}}
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.BlurFormAction{}}
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "tab":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "ctrl+s":
		return []types.Action{types.SubmitFormAction{}}, true
	}

	return []types.Action{
		types.PageKeyAction{Event: types.ToKeyEvent(msg, book.TargetTextInput)},
		types.EditFieldAction{Msg: msg},
	}, true
}
