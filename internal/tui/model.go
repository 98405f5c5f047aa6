package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/starfield"
	"github.com/izhairtrend/hairtrend/internal/tui/components/backdrop"
	"github.com/izhairtrend/hairtrend/internal/tui/components/button"
	"github.com/izhairtrend/hairtrend/internal/tui/components/footer"
	"github.com/izhairtrend/hairtrend/internal/tui/components/langswitch"
	"github.com/izhairtrend/hairtrend/internal/tui/components/layer"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
	"github.com/izhairtrend/hairtrend/internal/tui/page/contacts"
	"github.com/izhairtrend/hairtrend/internal/tui/page/education"
	"github.com/izhairtrend/hairtrend/internal/tui/page/home"
	"github.com/izhairtrend/hairtrend/internal/tui/page/intro"
	"github.com/izhairtrend/hairtrend/internal/tui/page/notfound"
	"github.com/izhairtrend/hairtrend/internal/tui/page/portfolio"
	"github.com/izhairtrend/hairtrend/internal/tui/page/shop"
	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type state struct {
	home      home.Model
	portfolio portfolio.Model
}

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	locale  locale.Locale
	dict    locale.Dictionary
	history *router.History
	// missing is the unmatched path shown by the not found view
	missing string

	// mountGen changes every time a view mounts; scheduled navigation and
	// reveal messages from an earlier mount are dropped.
	mountGen      int
	scroll        int
	contentHeight int

	intro    *intro.Intro
	backdrop *backdrop.Backdrop
	state    state
}

func New(deps Deps) *Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = xslog.FromContext(deps.Ctx)
	}
	if deps.Schedule == nil {
		deps.Schedule = schedule.Tick
	}
	if deps.Field == nil {
		deps.Field = starfield.New(starfield.Options{})
	}
	if deps.Catalog == nil {
		deps.Catalog = locale.MustLoad()
	}
	if deps.Locale == "" {
		deps.Locale = locale.Default
	}

	start, ok := router.Match(deps.Start)
	m := &Model{
		theme:    theme.New(),
		deps:     deps,
		locale:   deps.Locale,
		dict:     deps.Catalog.Dictionary(deps.Locale),
		history:  router.NewHistory(start),
		intro:    intro.New(deps.Schedule),
		backdrop: backdrop.New(deps.Field, deps.Schedule),
	}
	if !ok {
		m.missing = deps.Start
	}
	m.remount()
	return m
}

func (m *Model) Init() tea.Cmd {
	m.deps.Logger.InfoContext(m.deps.Ctx, "shell started",
		xslog.Route(m.Route().String()),
		xslog.Locale(m.locale.String()),
	)
	return tea.Batch(
		m.intro.Start(),
		m.backdrop.Start(),
	)
}

func (m *Model) Route() router.Route { return m.history.Current() }

func (m *Model) Locale() locale.Locale { return m.locale }

func (m *Model) Dictionary() locale.Dictionary { return m.dict }

func (m *Model) MountGen() int { return m.mountGen }

func (m *Model) Intro() *intro.Intro { return m.intro }

func (m *Model) Backdrop() *backdrop.Backdrop { return m.backdrop }

func (m *Model) Home() home.Model { return m.state.home }

func (m *Model) Portfolio() portfolio.Model { return m.state.portfolio }

func (m *Model) Scroll() int { return m.scroll }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if _, frame := msg.(backdrop.FrameMsg); !frame {
		m.measure()
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.backdrop.Update(msg)
		m.deps.Logger.DebugContext(m.deps.Ctx, "resized", xslog.Viewport(msg.Width, msg.Height))
		m.measure()
		return m.observe()

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			m.setScroll(m.scroll - wheelRows)
		case tea.MouseWheelDown:
			m.setScroll(m.scroll + wheelRows)
		}
		return m.observe()

	case tea.MouseMotionMsg:
		m.backdrop.Update(msg)
		if m.viewportWidth > 0 && m.viewportHeight > 0 {
			mouse := msg.Mouse()
			m.state.home.Pointer(
				float64(mouse.X)/float64(m.viewportWidth),
				float64(mouse.Y)/float64(m.viewportHeight),
			)
		}

	case backdrop.FrameMsg:
		cmd, live := m.backdrop.Update(msg)
		if live {
			m.intro.Advance()
			switch m.Route() {
			case router.Home:
				m.state.home.Advance()
			case router.Portfolio:
				m.state.portfolio.Advance()
			}
		}
		return cmd

	case intro.FadeMsg, intro.DoneMsg:
		if m.intro.Update(msg) {
			m.deps.Logger.DebugContext(m.deps.Ctx, "intro done")
		}

	case button.NavigateMsg:
		if msg.Gen != m.mountGen {
			m.deps.Logger.DebugContext(m.deps.Ctx, "dropped stale navigation",
				xslog.Route(msg.Target.String()),
				slog.Int("gen", msg.Gen),
				slog.Int("current_gen", m.mountGen),
			)
			return nil
		}
		return m.Navigate(msg.Target)

	case portfolio.RevealMsg:
		m.state.portfolio.Update(msg)
	}

	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	}

	// the intro covers the whole screen and takes no input
	if m.intro.Phase() == intro.Visible {
		return nil
	}

	if l, ok := langswitch.Select(key, m.locale); ok {
		m.SetLocale(l)
		return nil
	}

	switch key {
	case "esc", "backspace":
		return m.Back()
	case "h":
		return m.Navigate(router.Home)
	case "pgdown":
		m.setScroll(m.scroll + pageRows)
		return m.observe()
	case "pgup":
		m.setScroll(m.scroll - pageRows)
		return m.observe()
	case "end":
		m.setScroll(m.contentHeight)
		return m.observe()
	case "home":
		m.setScroll(0)
		return m.observe()
	}

	if m.Route() != router.Home {
		switch key {
		case "down", "j":
			m.setScroll(m.scroll + 1)
		case "up", "k":
			m.setScroll(m.scroll - 1)
		}
		return m.observe()
	}

	wasOnCards := m.state.home.FocusOnCards()
	cmd := m.state.home.Update(msg)
	if onCards := m.state.home.FocusOnCards(); onCards != wasOnCards {
		if onCards {
			m.setScroll(m.contentHeight)
		} else {
			m.setScroll(0)
		}
	}
	return cmd
}

// Navigate pushes r onto the history and mounts it.
func (m *Model) Navigate(r router.Route) tea.Cmd {
	if r == m.Route() {
		return nil
	}
	m.history.Push(r)
	m.missing = ""
	return m.mount()
}

// Back returns to the previous view; with nothing behind it, it does nothing.
func (m *Model) Back() tea.Cmd {
	if _, ok := m.history.Back(); !ok {
		return nil
	}
	m.missing = ""
	return m.mount()
}

// SetLocale swaps the dictionary for every view; nothing else changes.
func (m *Model) SetLocale(l locale.Locale) {
	if l == m.locale {
		return
	}
	m.locale = l
	m.dict = m.deps.Catalog.Dictionary(l)
	m.state.home.SetLocale(m.dict)
	m.deps.Logger.InfoContext(m.deps.Ctx, "locale changed", xslog.Locale(l.String()))
}

func (m *Model) mount() tea.Cmd {
	m.remount()
	m.measure()
	m.deps.Logger.InfoContext(m.deps.Ctx, "navigated", xslog.Route(m.Route().String()))
	return tea.Batch(m.backdrop.Start(), m.observe())
}

// remount replaces every view's state; whatever the old views scheduled is
// now stale.
func (m *Model) remount() {
	m.mountGen++
	m.scroll = 0
	m.contentHeight = 0
	m.backdrop.Scroll(0)
	m.state = state{
		home:      home.New(m.dict, m.mountGen, m.deps.Schedule),
		portfolio: portfolio.New(m.mountGen, m.deps.Schedule),
	}
}

func (m *Model) observe() tea.Cmd {
	if !m.ready || m.Route() != router.Portfolio {
		return nil
	}
	return m.state.portfolio.Observe(m.context())
}

// measure re-renders the current page to learn its height and clamps the
// scroll offset to it.
func (m *Model) measure() {
	if !m.ready {
		return
	}
	m.contentHeight = layer.Height(m.PageView())
	m.setScroll(m.scroll)
}

func (m *Model) maxScroll() int {
	return max(m.contentHeight-m.viewportHeight, 0)
}

func (m *Model) setScroll(rows int) {
	m.scroll = min(max(rows, 0), m.maxScroll())
	m.backdrop.Scroll(m.scroll)
}

func (m *Model) context() page.Context {
	progress := 0.0
	if ms := m.maxScroll(); ms > 0 {
		progress = float64(m.scroll) / float64(ms)
	}
	return page.Context{
		Theme:    m.theme,
		Dict:     m.dict,
		Art:      m.deps.Art,
		Width:    m.viewportWidth,
		Height:   m.viewportHeight,
		Scroll:   m.scroll,
		Progress: progress,
		Reserve:  lipgloss.Width(langswitch.Render(m.theme, m.locale)) + 2,
	}
}

// PageView renders the current view at full length, before scrolling.
func (m *Model) PageView() string {
	ctx := m.context()
	switch m.Route() {
	case router.Home:
		return m.state.home.View(ctx)
	case router.Portfolio:
		return m.state.portfolio.View(ctx)
	case router.Shop:
		return shop.View(ctx)
	case router.Education:
		return education.View(ctx)
	case router.Contacts:
		return contacts.View(ctx)
	default:
		return notfound.View(ctx, m.missing)
	}
}

func (m *Model) View() tea.View {
	view := tea.NewView(m.Screen())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.BackgroundColor = theme.ColorBlack
	return view
}

// Screen composes the full terminal frame: the intro, or the scrolled page
// over the starfield with the switcher and footer on top.
func (m *Model) Screen() string {
	if !m.ready {
		return ""
	}

	w, h := m.viewportWidth, m.viewportHeight

	if m.intro.Phase() == intro.Visible {
		return m.intro.View(m.theme, m.deps.Art.Logo, w, h)
	}

	screen := layer.Window(m.PageView(), m.scroll, w, h)
	screen = layer.Composite(m.backdrop.View(), screen)

	switcher := langswitch.Render(m.theme, m.locale)
	screen = layer.Place(screen, switcher, w-lipgloss.Width(switcher)-2, 0)

	hints := pageHints
	if m.Route() == router.Home {
		hints = homeHints
	}
	screen = layer.Place(screen, footer.New(hints, w).Render(), 0, h-1)

	if m.intro.Phase() == intro.Fading {
		screen = layer.Composite(screen, m.intro.View(m.theme, m.deps.Art.Logo, w, h))
	}
	return screen
}
