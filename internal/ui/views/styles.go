package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Subtitle        lipgloss.Style
	Section         lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Page            lipgloss.Style
	PageCompact     lipgloss.Style
	Popup           lipgloss.Style
	NavItem         lipgloss.Style
	NavActive       lipgloss.Style
	NavFlipping     lipgloss.Style
	Indicator       lipgloss.Style
	IndicatorActive lipgloss.Style
	Control         lipgloss.Style
	ControlDisabled lipgloss.Style
	Progress        lipgloss.Style
	Overlay         lipgloss.Style
	Highlight       lipgloss.Style
	SelectionBg     lipgloss.Style
	Tag             lipgloss.Style
	Stat            lipgloss.Style
	Field           lipgloss.Style
	FieldFocused    lipgloss.Style
	Label           lipgloss.Style
	StatusError     lipgloss.Style
	StatusLoading   lipgloss.Style
	StatusSuccess   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().Padding(0, 1),
		Page: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 3),
		PageCompact: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2),
		NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")).Padding(0, 1),
		NavFlipping: lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1),
		Indicator:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		IndicatorActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Control:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ControlDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Progress:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Overlay:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Padding(0, 1),
		Stat:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Field:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241")),
		FieldFocused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("99")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// CategoryColor returns the accent for a project category
func CategoryColor(category string) string {
	switch category {
	case "Full Stack":
		return "99" // purple
	case "Frontend":
		return "39" // blue
	case "Backend":
		return "78" // green
	default:
		return "214" // yellow
	}
}
