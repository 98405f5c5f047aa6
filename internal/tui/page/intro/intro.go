// Package intro is the full-screen logo overlay shown once at startup. It
// starts fading at FadeAfter and is gone for good at DoneAfter.
package intro

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

const (
	FadeAfter = 2200 * time.Millisecond
	DoneAfter = 2600 * time.Millisecond

	// FadeFrames is the length of the exit animation in backdrop frames.
	FadeFrames = 18
)

// Mark is shown when the logo art is unavailable.
const Mark = `
 ╭──────────╮
 │    IZ    │
 ╰──────────╯`

type Phase int

const (
	Visible Phase = iota
	Fading
	Gone
)

func (p Phase) String() string {
	switch p {
	case Visible:
		return "visible"
	case Fading:
		return "fading"
	default:
		return "gone"
	}
}

type FadeMsg struct{ Gen int }

type DoneMsg struct{ Gen int }

type Intro struct {
	phase    Phase
	gen      int
	frame    int
	schedule schedule.Func
}

func New(sched schedule.Func) *Intro {
	if sched == nil {
		sched = schedule.Tick
	}
	return &Intro{schedule: sched, phase: Gone}
}

// Start shows the overlay and schedules both timers.
func (i *Intro) Start() tea.Cmd {
	i.gen++
	i.phase = Visible
	i.frame = 0
	return tea.Batch(
		i.schedule(FadeAfter, FadeMsg{Gen: i.gen}),
		i.schedule(DoneAfter, DoneMsg{Gen: i.gen}),
	)
}

// Stop cancels both timers and removes the overlay.
func (i *Intro) Stop() {
	i.gen++
	i.phase = Gone
}

func (i *Intro) Phase() Phase { return i.phase }

// Active reports whether the overlay still covers the screen.
func (i *Intro) Active() bool { return i.phase != Gone }

// Advance steps the exit animation by one frame while fading.
func (i *Intro) Advance() {
	if i.phase == Fading && i.frame < FadeFrames {
		i.frame++
	}
}

// Dim is how far the logo has faded towards black, in [0, 1].
func (i *Intro) Dim() float64 {
	switch i.phase {
	case Visible:
		return 0
	case Fading:
		p := float64(i.frame) / FadeFrames
		return 1 - (1-p)*(1-p)
	default:
		return 1
	}
}

// Update applies timer messages and reports whether the intro just finished.
func (i *Intro) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FadeMsg:
		if msg.Gen == i.gen && i.phase == Visible {
			i.phase = Fading
		}
	case DoneMsg:
		if msg.Gen == i.gen && i.phase != Gone {
			i.phase = Gone
			return true
		}
	}
	return false
}

func LogoView(t theme.Theme, logo string, dim float64) string {
	if logo == "" {
		logo = Mark
	}
	c := colorful.Color{R: 1, G: 1, B: 1}.BlendRgb(colorful.Color{}, dim).Clamped()
	halo := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorful.Color{R: 167.0 / 255, G: 139.0 / 255, B: 250.0 / 255}.BlendRgb(colorful.Color{}, dim).Clamped()).
		Padding(1, 4)
	return halo.Render(t.TextAccent().Foreground(c).Render(logo))
}

// View renders the overlay. While visible it is opaque black; while fading
// only the logo remains, dimming with every frame.
func (i *Intro) View(t theme.Theme, logo string, width, height int) string {
	if i.phase == Gone {
		return ""
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		LogoView(t, logo, i.Dim()),
	)
}
