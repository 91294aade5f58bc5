package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm        // a contact form field has focus
	ModeDetail      // the project detail popup is open
)

func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeDetail:
		return "detail"
	default:
		return "normal"
	}
}

// PageKind identifies what the current page shows
type PageKind int

const (
	PageHome PageKind = iota
	PageAbout
	PageProjects
	PageContact
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentPage() PageKind
	InTransition() bool
	ProjectCount() int
	SelectedProject() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
