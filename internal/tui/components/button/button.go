// Package button implements the home view's navigation buttons: activating
// one plays an exit animation and navigates once the animation is done.
package button

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

const (
	NavigateDelay = 550 * time.Millisecond

	Width = 28

	// exitFrames is how many backdrop frames the slide lasts.
	exitFrames = 16
	exitCells  = 24
)

// NavigateMsg asks the shell to show Target. Gen is the mount generation of
// the view that scheduled it; the shell drops it if that view is gone.
type NavigateMsg struct {
	Target router.Route
	Gen    int
}

type NavButton struct {
	Label  string
	Target router.Route

	navigating bool
	frame      int
}

func New(label string, target router.Route) NavButton {
	return NavButton{Label: label, Target: target}
}

// Activate starts the exit animation and schedules the navigation. A second
// activation while navigating does nothing.
func (b *NavButton) Activate(gen int, sched schedule.Func) tea.Cmd {
	if b.navigating {
		return nil
	}
	b.navigating = true
	b.frame = 0
	return sched(NavigateDelay, NavigateMsg{Target: b.Target, Gen: gen})
}

func (b NavButton) Navigating() bool { return b.navigating }

// Advance moves the exit animation one frame.
func (b *NavButton) Advance() {
	if b.navigating && b.frame < exitFrames {
		b.frame++
	}
}

func (b NavButton) progress() float64 {
	if !b.navigating {
		return 0
	}
	return float64(b.frame) / exitFrames
}

// Offset is how far right the button has slid, in cells.
func (b NavButton) Offset() int {
	p := b.progress()
	// ease out
	return int(float64(exitCells) * (1 - (1-p)*(1-p)))
}

func (b NavButton) Render(t theme.Theme, focused bool) string {
	p := b.progress()
	if p >= 1 {
		return strings.Repeat(" ", Width+b.Offset())
	}

	border := theme.ColorGlass
	if focused && !b.navigating {
		border = theme.ColorViolet
	}
	fg := theme.Fade(theme.ColorWhite, p)

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Fade(border, p)).
		Foreground(fg).
		Width(Width).
		Align(lipgloss.Center).
		Render(b.Label)

	return lipgloss.NewStyle().PaddingLeft(b.Offset()).Render(body)
}

// fade blends c toward black by p.