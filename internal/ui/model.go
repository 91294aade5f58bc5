package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"magicbook/internal/book"
	"magicbook/internal/config"
	"magicbook/internal/content"
	"magicbook/internal/eventbus"
	"magicbook/internal/motion"
	"magicbook/internal/ui/input"
	inputtypes "magicbook/internal/ui/input/types"
	"magicbook/internal/ui/views"
)

const (
	frameInterval   = time.Second / 30
	welcomeDuration = 1500 * time.Millisecond
	noticeTTL       = 3 * time.Second
)

// Options configures a Model
type Options struct {
	Config    *config.Config
	Portfolio *content.Portfolio
	Bus       eventbus.EventBus

	// Clock schedules the navigator's phase timers; nil means the wall clock
	Clock book.Clock
	// Now drives animation progress; nil means time.Now
	Now func() time.Time

	Debug bool
	// OnReady is called once, after the first window size arrives
	OnReady func()
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	portfolio *content.Portfolio

	// Book
	nav          *book.Navigator
	keys         *input.Dispatcher
	unbind       func()
	unsubscribe  func()
	inputHandler *input.Handler

	// Rendering
	renderer     *views.Renderer
	pages        *views.PageRenderer
	markdown     *markdownRenderer
	helpRenderer *HelpRenderer
	help         help.Model
	keymap       KeyMap
	spinner      spinner.Model
	form         *ContactForm

	width   int
	height  int
	motion  motion.Settings
	compact bool

	// Animation
	animating  bool
	phase      book.Phase
	phaseStart time.Time
	now        func() time.Time

	// Projects page
	category   string
	selected   int
	detailOpen bool

	showWelcome bool
	notice      string
	noticeKind  views.StatusKind
	noticeSeq   int
	inPagerMode bool

	onReady   func()
	readySent bool

	// Program reference for terminal management; set once, read from timer
	// goroutines
	program   atomic.Pointer[tea.Program]
	closeOnce sync.Once
}

// bookPages is the fixed page set of the book
func bookPages() []book.Page {
	return []book.Page{
		{Title: "Home", Renderer: inputtypes.PageHome},
		{Title: "About", Renderer: inputtypes.PageAbout},
		{Title: "Projects", Renderer: inputtypes.PageProjects},
		{Title: "Contact", Renderer: inputtypes.PageContact},
	}
}

// NewModel creates the UI model and binds its navigator to the key surface
func NewModel(opts Options) (*Model, error) {
	if opts.Portfolio == nil {
		return nil, errors.New("portfolio is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	settings := motion.Config(false, cfg.UI.ReducedMotion)
	navOpts := []book.Option{
		book.WithClock(opts.Clock),
		book.WithDuration(settings.Duration),
		book.WithDebug(opts.Debug),
	}
	if opts.Bus != nil {
		navOpts = append(navOpts, book.WithPublisher(opts.Bus))
	}
	nav, err := book.New(bookPages(), navOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create navigator: %w", err)
	}

	renderer := views.NewRenderer()
	keymap := DefaultKeyMap()
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		portfolio:    opts.Portfolio,
		nav:          nav,
		keys:         input.NewDispatcher(),
		inputHandler: input.New(),
		renderer:     renderer,
		pages:        views.NewPageRenderer(renderer.Styles()),
		markdown:     newMarkdownRenderer(),
		helpRenderer: NewHelpRenderer(keymap),
		help:         help.New(),
		keymap:       keymap,
		spinner:      spin,
		form:         NewContactForm(cfg.Contact.SubmitDelay, cfg.Contact.StatusTTL),
		motion:       settings,
		now:          now,
		category:     content.AllCategories,
		showWelcome:  cfg.UI.Welcome,
		onReady:      opts.OnReady,
	}

	m.unbind = nav.BindKeyboard(m.keys)
	// Listeners also run inside Update when a key starts a flip, where a
	// blocking Send would never be received
	m.unsubscribe = nav.Subscribe(func(book.State) {
		go m.send(navStateMsg{})
	})
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program.Store(p)
}

// send forwards msg into the running program, if any
func (m *Model) send(msg tea.Msg) {
	if p := m.program.Load(); p != nil {
		p.Send(msg)
	}
}

// Close cancels pending transitions and releases the key surface. It is
// safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.unsubscribe()
		m.unbind()
		m.nav.Close()
	})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if !m.showWelcome {
		return nil
	}
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(welcomeDuration, func(time.Time) tea.Msg { return welcomeDoneMsg{} }),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.showWelcome {
			if msg.Type == tea.KeyCtrlC {
				m.Close()
				return m, tea.Quit
			}
			m.showWelcome = false
			return m, nil
		}

		actions := m.inputHandler.HandleKey(msg, m.inputContext())
		return m, m.processActions(actions)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navStateMsg:
		return m, m.observe(m.nav.State())

	case tickMsg:
		if m.inPagerMode {
			m.animating = false
			return m, nil
		}
		state := m.nav.State()
		m.trackPhase(state)
		if !state.InTransition {
			m.animating = false
			return m, nil
		}
		return m, tick()

	case spinner.TickMsg:
		if !m.showWelcome {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case welcomeDoneMsg:
		m.showWelcome = false
		return m, nil

	case submitDoneMsg:
		sent, cmd, ok := m.form.Complete(msg)
		if !ok {
			return m, nil
		}
		log.Printf("Contact message %s from %s", sent.ID, sent.Email)
		if m.bus != nil {
			m.bus.Publish(eventbus.ContactSubmittedEvent{
				ID:      sent.ID,
				Name:    sent.Name,
				Email:   sent.Email,
				Subject: sent.Subject,
			})
		}
		return m, cmd

	case clearStatusMsg:
		m.form.ClearStatus(msg)
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case ContentReloadedMsg:
		return m, m.reloadContent(msg)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.observe(m.nav.State())

	default:
		// Cursor blink and other field messages
		return m, m.form.Update(msg)
	}
}

// processActions runs input actions in order. A key the navigator consumes
// never reaches the form.
func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	consumed := false
	for _, action := range actions {
		if _, ok := action.(inputtypes.EditFieldAction); ok && consumed {
			continue
		}
		if page, ok := action.(inputtypes.PageKeyAction); ok {
			consumed = m.keys.Dispatch(page.Event)
			if consumed {
				cmds = append(cmds, m.observe(m.nav.State()))
			}
			continue
		}
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.SelectProjectAction:
		projects := m.filteredProjects()
		if len(projects) == 0 {
			m.selected = 0
			return nil
		}
		m.selected = clamp(m.selected+a.Delta, 0, len(projects)-1)

	case inputtypes.CycleCategoryAction:
		categories := m.portfolio.Categories()
		next := 0
		for i, c := range categories {
			if strings.EqualFold(c, m.category) {
				next = (i + 1) % len(categories)
				break
			}
		}
		m.category = categories[next]
		m.selected = 0

	case inputtypes.OpenDetailAction:
		m.detailOpen = len(m.filteredProjects()) > 0

	case inputtypes.CloseDetailAction:
		m.detailOpen = false

	case inputtypes.FocusFieldAction:
		return m.form.Focus(a.Delta)

	case inputtypes.BlurFormAction:
		m.form.Blur()

	case inputtypes.EditFieldAction:
		return m.form.Update(a.Msg)

	case inputtypes.SubmitFormAction:
		return m.form.Submit()

	case inputtypes.ShowHelpPagerAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}

	return nil
}

// observe reacts to a navigator snapshot: starts the frame ticker when a
// flip begins and drops form focus once the contact page is gone
func (m *Model) observe(s book.State) tea.Cmd {
	m.trackPhase(s)

	var cmds []tea.Cmd
	if m.inputHandler.CurrentMode() == inputtypes.ModeForm && m.pageKind(s.Current) != inputtypes.PageContact {
		cmds = append(cmds, m.processActions(m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())))
	}
	if s.InTransition && !m.animating && !m.inPagerMode {
		m.animating = true
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

// trackPhase records when the current phase began
func (m *Model) trackPhase(s book.State) {
	phase := s.Phase
	if !s.InTransition {
		phase = book.PhaseIdle
	}
	if phase != m.phase {
		m.phase = phase
		m.phaseStart = m.now()
	}
}

// frame returns the keyframe for the page as it is drawn right now
func (m *Model) frame(s book.State) motion.Variant {
	m.trackPhase(s)
	if !s.InTransition {
		return motion.Frame(book.PhaseIdle, s.Direction, 1, m.motion)
	}
	progress := motion.PhaseProgress(m.now().Sub(m.phaseStart), s.Duration)
	return motion.Frame(s.Phase, s.Direction, progress, m.motion)
}

func (m *Model) resize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.help.Width = width

	m.compact = width < m.config.UI.CompactWidth
	m.motion = motion.Config(m.compact, m.config.UI.ReducedMotion)
	m.nav.SetDuration(m.motion.Duration)

	bodyWidth := m.renderer.BodyWidth(width, m.compact)
	formWidth := bodyWidth
	if bodyWidth >= 70 {
		formWidth = bodyWidth - bodyWidth/3
	}
	m.form.SetSize(formWidth)

	if m.onReady != nil && !m.readySent {
		m.readySent = true
		ready := m.onReady
		return func() tea.Msg {
			ready()
			return nil
		}
	}
	return nil
}

func (m *Model) reloadContent(msg ContentReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.setNotice(fmt.Sprintf("Portfolio reload failed: %v", msg.Err), views.StatusError)
	}

	m.portfolio = msg.Portfolio
	found := false
	for _, c := range m.portfolio.Categories() {
		if strings.EqualFold(c, m.category) {
			found = true
			break
		}
	}
	if !found {
		m.category = content.AllCategories
	}
	if n := len(m.filteredProjects()); m.selected >= n {
		m.selected = max(n-1, 0)
	}
	var closeDetail tea.Cmd
	if len(m.filteredProjects()) == 0 && m.detailOpen {
		closeDetail = m.processActions(m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext()))
	}
	return tea.Batch(closeDetail, m.setNotice("Portfolio reloaded", views.StatusSuccess))
}

func (m *Model) setNotice(text string, kind views.StatusKind) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.notice = text
	m.noticeKind = kind
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	p := m.program.Load()
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		p.Send(pauseRenderingMsg{})

		err := NewHelpOps(p).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		p.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.nav.State()
	state := views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Titles:      m.titles(),
		Nav:         s,
		Compact:     m.compact,
		ShowWelcome: m.showWelcome,
		Spinner:     m.spinner.View(),
		Name:        m.portfolio.Personal.Name,
		Tagline:     m.portfolio.Personal.Title,
		Status:      m.notice,
		StatusKind:  m.noticeKind,
	}
	if m.showWelcome {
		return m.renderer.Render(state)
	}

	bodyWidth := m.renderer.BodyWidth(m.width, m.compact)
	state.Frame = m.frame(s)
	state.Body = m.renderPage(m.pageKind(s.Current), bodyWidth)
	state.HelpView = m.help.View(helpKeys{
		keys: m.keymap,
		nav:  s,
		page: m.pageKind(s.Current),
		mode: m.inputHandler.CurrentMode(),
	})
	if m.detailOpen {
		state.Popup = m.renderDetail()
	}
	return m.renderer.Render(state)
}

func (m *Model) renderPage(kind inputtypes.PageKind, width int) string {
	switch kind {
	case inputtypes.PageAbout:
		return m.pages.RenderAbout(m.portfolio, m.markdown.Render(m.portfolio.Bio, width), width)
	case inputtypes.PageProjects:
		return m.pages.RenderProjects(views.ProjectsView{
			Projects:   m.filteredProjects(),
			Selected:   m.selected,
			Category:   m.category,
			Categories: m.portfolio.Categories(),
		}, width)
	case inputtypes.PageContact:
		return m.pages.RenderContact(m.portfolio, m.form.View(m.renderer.Styles()), width)
	default:
		return m.pages.RenderHome(m.portfolio, width)
	}
}

func (m *Model) renderDetail() string {
	projects := m.filteredProjects()
	if m.selected >= len(projects) {
		return ""
	}
	project := projects[m.selected]
	width := min(m.width-12, 76)
	return m.pages.RenderProjectDetail(project, m.markdown.Render(project.LongDescription, width), width)
}

func (m *Model) titles() []string {
	pages := m.nav.Pages()
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Title
	}
	return out
}

func (m *Model) pageKind(i int) inputtypes.PageKind {
	page, _ := m.nav.Page(i)
	kind, _ := page.Renderer.(inputtypes.PageKind)
	return kind
}

func (m *Model) filteredProjects() []content.Project {
	return m.portfolio.FilterProjects(m.category)
}

func (m *Model) inputContext() inputtypes.Context {
	return modelContext{m: m}
}

// modelContext implements the Context interface for the input handler
type modelContext struct {
	m *Model
}

func (c modelContext) CurrentPage() inputtypes.PageKind {
	return c.m.pageKind(c.m.nav.State().Current)
}

func (c modelContext) InTransition() bool {
	return c.m.nav.State().InTransition
}

func (c modelContext) ProjectCount() int {
	return len(c.m.filteredProjects())
}

func (c modelContext) SelectedProject() int {
	return c.m.selected
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
