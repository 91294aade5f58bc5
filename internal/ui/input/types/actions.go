package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"magicbook/internal/book"
)

// PageKeyAction offers a key to the page navigator through the key surface
type PageKeyAction struct {
	Event book.KeyEvent
}

func (a PageKeyAction) Type() string { return "page_key" }

// Project list actions
type SelectProjectAction struct {
	Delta int // -1 up, +1 down
}

func (a SelectProjectAction) Type() string { return "select_project" }

type CycleCategoryAction struct{}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Contact form actions
type FocusFieldAction struct {
	Delta int // +1 next field, -1 previous field
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type EditFieldAction struct {
	Msg tea.KeyMsg
}

func (a EditFieldAction) Type() string { return "edit_field" }

type BlurFormAction struct{}

func (a BlurFormAction) Type() string { return "blur_form" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

// Other actions
type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
