package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"magicbook/internal/book"
	"magicbook/internal/motion"
)

// StatusKind selects the color of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Titles     []string
	Nav        book.State
	Frame      motion.Variant
	Compact    bool
	Body       string // the current page, already rendered
	Popup      string // project detail content, empty when closed
	HelpView   string
	Status     string
	StatusKind StatusKind

	ShowWelcome bool
	Spinner     string
	Name        string
	Tagline     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles to page renderers
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width == 0 {
		return "Loading..."
	}
	if state.ShowWelcome {
		return r.renderWelcome(state)
	}

	header := r.renderNavBar(state)
	footer := r.renderFooter(state)

	chrome := lipgloss.Height(header) + lipgloss.Height(footer)
	pageStyle := r.pageStyle(state.Compact)
	innerW := r.BodyWidth(state.Width, state.Compact)
	innerH := max(state.Height-chrome-pageStyle.GetVerticalFrameSize(), 3)

	body := clipLines(state.Body, innerH)
	body = Animate(body, state.Frame, innerW, !state.Compact)
	page := pageStyle.
		Width(innerW + pageStyle.GetHorizontalPadding()).
		Height(innerH + pageStyle.GetVerticalPadding()).
		Render(body)

	view := r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, header, page, footer))

	if state.Popup != "" {
		view = r.popupRender.RenderPopupOverlay(view, state.Popup, state.Height, state.Width)
	}
	return view
}

// BodyWidth returns the columns available to a page body
func (r *Renderer) BodyWidth(width int, compact bool) int {
	return max(width-r.pageStyle(compact).GetHorizontalFrameSize()-r.styles.Main.GetHorizontalFrameSize(), 10)
}

func (r *Renderer) pageStyle(compact bool) lipgloss.Style {
	if compact {
		return r.styles.PageCompact
	}
	return r.styles.Page
}

// renderNavBar draws the page titles; all of them dim while a page turns
func (r *Renderer) renderNavBar(state ViewState) string {
	items := make([]string, 0, len(state.Titles)+1)
	items = append(items, r.styles.Title.Render("magicbook")+" ")
	for i, title := range state.Titles {
		label := title
		if !state.Compact {
			label = fmt.Sprintf("%d %s", i+1, title)
		}
		switch {
		case state.Nav.InTransition:
			items = append(items, r.styles.NavFlipping.Render(label))
		case i == state.Nav.Current:
			items = append(items, r.styles.NavActive.Render(label))
		default:
			items = append(items, r.styles.NavItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (r *Renderer) renderFooter(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.renderControls(state))
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(state.HelpView))

	if state.Status != "" {
		b.WriteString("\n")
		b.WriteString(r.statusStyle(state.StatusKind).Render(state.Status))
	}
	return b.String()
}

// renderControls draws prev/next, the page indicators and progress
func (r *Renderer) renderControls(state ViewState) string {
	nav := state.Nav
	prev := r.styles.Control.Render("‹ Prev")
	if !nav.CanGoPrev() || nav.InTransition {
		prev = r.styles.ControlDisabled.Render("‹ Prev")
	}
	next := r.styles.Control.Render("Next ›")
	if !nav.CanGoNext() || nav.InTransition {
		next = r.styles.ControlDisabled.Render("Next ›")
	}

	progress := nav.Progress()
	parts := []string{
		prev,
		Indicators(nav, r.styles),
		next,
		r.styles.Progress.Render(fmt.Sprintf("%d/%d · %d%%", progress.Current, progress.Total, progress.Percentage)),
	}
	if nav.InTransition && nav.Target >= 0 && nav.Target < len(state.Titles) {
		parts = append(parts, r.styles.Overlay.Render("turning to "+state.Titles[nav.Target]+"…"))
	}
	return strings.Join(parts, "  ")
}

// Indicators renders one dot per page: the current page filled, the page
// being turned to hollow-marked
func Indicators(nav book.State, styles *Styles) string {
	dots := make([]string, nav.Total)
	for i := range dots {
		switch {
		case i == nav.Current:
			dots[i] = styles.IndicatorActive.Render("●")
		case nav.InTransition && i == nav.Target:
			dots[i] = styles.IndicatorActive.Render("◌")
		default:
			dots[i] = styles.Indicator.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusLoading:
		return r.styles.StatusLoading
	case StatusSuccess:
		return r.styles.StatusSuccess
	case StatusError:
		return r.styles.StatusError
	default:
		return r.styles.Status
	}
}

func (r *Renderer) renderWelcome(state ViewState) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Title.Render(state.Name),
		r.styles.Subtitle.Render(state.Tagline),
		"",
		state.Spinner+" opening the book",
		"",
		r.styles.Dim.Render("press any key to skip"),
	)
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, content)
}

func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] = "⋯"
	return strings.Join(lines, "\n")
}
