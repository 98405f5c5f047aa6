// Package frame wraps every view except home: a header with the brand link
// and the back control, then the page heading above the body.
package frame

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

const (
	HomeKey = "h"
	BackKey = "esc"

	maxWidth = 120
)

type Frame struct {
	Logo    string // small mark, hidden when empty
	Heading string
	Back    string // localized back label
	// Reserve keeps this many cells free at the right of the header for
	// the language switcher.
	Reserve int
}

// ContentWidth is the body width available inside a viewport.
func ContentWidth(viewport int) int {
	return max(min(viewport, maxWidth)-4, 10)
}

func (f Frame) header(t theme.Theme, width int) string {
	brand := t.Heading().Render(site.Brand)
	if f.Logo != "" {
		brand = lipgloss.JoinHorizontal(lipgloss.Center, t.TextAccent().Render(f.Logo), " ", brand)
	}
	brand += t.Dim().Render(" [" + HomeKey + "]")

	back := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorGlass).
		Foreground(theme.ColorMuted).
		Padding(0, 1).
		Render("← " + f.Back + " [" + BackKey + "]")

	gap := max(width-lipgloss.Width(brand)-lipgloss.Width(back)-f.Reserve-4, 1)
	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, brand, strings.Repeat(" ", gap), back),
	)
}

// headingLines is the heading plus its top and bottom margin.
const headingLines = 3

// BodyTop is the line the body starts on, for views that need to know where
// their content lands on screen.
func (f Frame) BodyTop(t theme.Theme, width int) int {
	return lipgloss.Height(f.header(t, width)) + 1 + headingLines
}

func (f Frame) Render(t theme.Theme, width int, body string) string {
	inner := ContentWidth(width)

	heading := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Bold(true).
		Underline(true).
		MarginTop(1).
		MarginBottom(1).
		Render(f.Heading)

	main := lipgloss.JoinVertical(lipgloss.Left, heading, body)
	main = lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(inner).Render(main))

	return lipgloss.JoinVertical(lipgloss.Left, f.header(t, width), "", main, "")
}
