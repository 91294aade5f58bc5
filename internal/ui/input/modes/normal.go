package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"magicbook/internal/book"
	"magicbook/internal/ui/input/types"
)

// NormalMode routes keys while nothing has focus. Page-local bindings win;
// everything else is offered to the navigator.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []types.Action{types.QuitAction{}}, true
	case "?":
		return []types.Action{types.ShowHelpPagerAction{}}, true
	}

	switch ctx.CurrentPage() {
	case types.PageProjects:
		if actions, ok := m.handleProjectsKey(msg, ctx); ok {
			return actions, true
		}
	case types.PageContact:
		// Focusing the form is blocked mid-flip so typing never lands on a
		// page that is leaving
		if msg.String() == "tab" && !ctx.InTransition() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true
		}
	}

	return []types.Action{types.PageKeyAction{Event: types.ToKeyEvent(msg, book.TargetDocument)}}, true
}

func (m *NormalMode) handleProjectsKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up", "k":
		return []types.Action{types.SelectProjectAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.SelectProjectAction{Delta: 1}}, true
	case "c":
		return []types.Action{types.CycleCategoryAction{}}, true
	case "i":
		if ctx.ProjectCount() == 0 || ctx.InTransition() {
			return nil, false
		}
		return []types.Action{
			types.OpenDetailAction{},
			types.ChangeModeAction{Mode: types.ModeDetail},
		}, true
	}
	return nil, false
}
