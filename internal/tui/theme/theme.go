package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBlack
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.foreground)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

// Heading is the page title style.
func (t Theme) Heading() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.foreground).
		Bold(true)
}

// Glass is the frosted panel used by cards and the portrait.
func (t Theme) Glass(focused bool) lipgloss.Style {
	border := ColorGlassFaint
	if focused {
		border = ColorViolet
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2)
}

// Pill is the small rounded control used by the language switcher, the back
// control and inert form buttons.
func (t Theme) Pill(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().
			Foreground(t.foreground).
			Bold(true).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
