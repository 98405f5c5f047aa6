// Package home is the landing view: brand header, navigation buttons around
// the holo portrait, and the summary cards below the fold.
package home

import (
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/components/button"
	"github.com/izhairtrend/hairtrend/internal/tui/components/card"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

const (
	buttonCount = 4
	cardCount   = 3
	focusCount  = buttonCount + cardCount

	cardWidth     = 36
	portraitWidth = 30

	// the portrait turns up to this many cells left or right with the pointer
	maxTilt = 3
)

var cardRoutes = [cardCount]router.Route{router.Portfolio, router.Shop, router.Education}

type Model struct {
	gen      int
	schedule schedule.Func

	buttons [buttonCount]button.NavButton
	focus   int

	tiltX float64 // pointer relative to the portrait centre, [-0.5, 0.5]
	tiltY float64
}

// New mounts the view. gen is the shell's mount generation; every navigation
// this view schedules carries it.
func New(dict locale.Dictionary, gen int, sched schedule.Func) Model {
	m := Model{gen: gen, schedule: sched}
	for i, r := range router.NavRoutes() {
		m.buttons[i] = button.New(dict.Nav[i], r)
	}
	return m
}

// SetLocale relabels the buttons without touching their state.
func (m *Model) SetLocale(dict locale.Dictionary) {
	for i := range m.buttons {
		m.buttons[i].Label = dict.Nav[i]
	}
}

func (m Model) Focus() int { return m.focus }

// FocusOnCards reports whether focus is below the fold.
func (m Model) FocusOnCards() bool { return m.focus >= buttonCount }

func (m Model) Button(i int) button.NavButton { return m.buttons[i] }

// Advance steps the exit animations by one frame.
func (m *Model) Advance() {
	for i := range m.buttons {
		m.buttons[i].Advance()
	}
}

// Pointer tilts the portrait; x and y are fractions of the viewport.
func (m *Model) Pointer(x, y float64) {
	m.tiltX = math.Min(math.Max(x-0.5, -0.5), 0.5)
	m.tiltY = math.Min(math.Max(y-0.5, -0.5), 0.5)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch k := key.String(); k {
	case "tab", "down", "right":
		m.focus = (m.focus + 1) % focusCount
	case "shift+tab", "up", "left":
		m.focus = (m.focus + focusCount - 1) % focusCount
	case "enter", "space":
		return m.activate(m.focus)
	case "1", "2", "3", "4":
		i := int(k[0] - '1')
		m.focus = i
		return m.activate(i)
	}
	return nil
}

func (m *Model) activate(i int) tea.Cmd {
	if i < buttonCount {
		return m.buttons[i].Activate(m.gen, m.schedule)
	}
	msg := button.NavigateMsg{Target: cardRoutes[i-buttonCount], Gen: m.gen}
	return func() tea.Msg { return msg }
}

func (m Model) View(ctx page.Context) string {
	t := ctx.Theme
	width := ctx.Width

	header := m.header(ctx)

	left := lipgloss.JoinVertical(lipgloss.Right,
		m.buttons[0].Render(t, m.focus == 0), "",
		m.buttons[1].Render(t, m.focus == 1),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.buttons[2].Render(t, m.focus == 2), "",
		m.buttons[3].Render(t, m.focus == 3),
	)
	portrait := m.portrait(ctx)

	var stage string
	if width >= lipgloss.Width(left)+lipgloss.Width(right)+portraitWidth+8 {
		stage = lipgloss.JoinHorizontal(lipgloss.Center, left, "   ", portrait, "   ", right)
	} else {
		stage = lipgloss.JoinVertical(lipgloss.Center, portrait, "", left, "", right)
	}

	cue := lipgloss.JoinVertical(lipgloss.Center,
		t.Muted().Render(ctx.Dict.Scroll),
		t.Dim().Render("│\n│\n│"),
	)

	cards := make([]string, cardCount)
	blurbs := [cardCount]string{ctx.Dict.PortfolioBlurb, ctx.Dict.ShopBlurb, ctx.Dict.EducationBlurb}
	for i := range cards {
		c := card.Card{Title: ctx.Dict.Nav[i], Body: []string{blurbs[i]}}
		cards[i] = c.Render(t, cardWidth, m.focus == buttonCount+i)
	}
	cols := card.Columns(ctx.ContentWidth(), cardWidth, cardCount)
	section := card.Grid(cards, cols)

	above := lipgloss.JoinVertical(lipgloss.Center, "", header, "", stage, "", cue)
	// the landing section is at least a screen tall and the page two
	gap := max(ctx.Height-lipgloss.Height(above), 2)
	gap = max(gap, 2*ctx.Height-lipgloss.Height(above)-lipgloss.Height(section)-2)

	content := lipgloss.JoinVertical(lipgloss.Center,
		above,
		strings.Repeat("\n", gap-1),
		section,
		"",
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (m Model) header(ctx page.Context) string {
	t := ctx.Theme

	title := t.Heading().Render(spaced(ctx.Dict.Hero))
	if ctx.Art.Logo != "" {
		title = lipgloss.JoinVertical(lipgloss.Center, t.TextAccent().Render(ctx.Art.Logo), "", title)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.NewStyle().Foreground(TaglineColor(ctx.Progress)).Render(ctx.Dict.Tagline),
	)
}

// TaglineColor is the tagline's glow, brightening from 0.2 to 0.6 violet as
// the page scrolls.
func TaglineColor(progress float64) colorful.Color {
	p := math.Min(math.Max(progress, 0), 1)
	glow := 0.2 + 0.4*p
	muted := colorful.Color{R: 0.7, G: 0.7, B: 0.7}
	violet := colorful.Color{R: 167.0 / 255, G: 139.0 / 255, B: 250.0 / 255}
	return muted.BlendRgb(violet, glow).Clamped()
}

// Tilt is the portrait's horizontal shift for line i of n: the whole panel
// turns with the pointer's x, and leans with its y.
func (m Model) Tilt(i, n int) int {
	turn := m.tiltX * maxTilt
	lean := 0.0
	if n > 1 {
		lean = -m.tiltY * (2*float64(i)/float64(n-1) - 1) * maxTilt / 2
	}
	return int(math.Round(turn + lean))
}

func (m Model) portrait(ctx page.Context) string {
	t := ctx.Theme

	art := ctx.Art.Hero
	var lines []string
	if art != "" {
		lines = strings.Split(art, "\n")
	}
	// keep the panel's shape when the image is missing
	for len(lines) < 15 {
		lines = append(lines, "")
	}
	lines = append(lines, "", t.Muted().Render(site.Brand))

	inner := portraitWidth - 4
	for i, l := range lines {
		shift := m.Tilt(i, len(lines))
		pad := maxTilt + shift
		l = strings.Repeat(" ", pad) + l
		lines[i] = lipgloss.NewStyle().Width(inner + 2*maxTilt).MaxWidth(inner + 2*maxTilt).Render(l)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorGlass).
		Foreground(theme.ColorWhite).
		Render(strings.Join(lines, "\n"))
}

// spaced tracks letters out the way the hero title is set.
func spaced(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
