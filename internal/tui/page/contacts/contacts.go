// Package contacts shows the studio details next to an inert contact form.
package contacts

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/components/card"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

const (
	panelWidth = 44
	mapHeight  = 8
)

func View(ctx page.Context) string {
	t := ctx.Theme
	d := ctx.Dict

	fieldW := panelWidth - 6
	form := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, field(d.FormName, fieldW/2-1, 1), "  ", field(d.FormEmail, fieldW/2-1, 1)),
		field(d.FormSubject, fieldW, 1),
		field(d.FormMessage, fieldW, 5),
		"",
		card.Action(t, d.Send),
	)
	formPanel := t.Glass(false).Width(panelWidth).Render(form)

	details := site.Contacts()
	info := lipgloss.JoinVertical(lipgloss.Left,
		t.Muted().Render(details.Address),
		t.Muted().Render(details.Phone),
		t.Muted().Render(details.Handle),
		"",
		mapPlaceholder(d.MapPlaceholder, panelWidth-6, mapHeight),
	)
	infoPanel := t.Glass(false).Width(panelWidth).Render(info)

	var panels string
	if ctx.ContentWidth() >= 2*panelWidth+4 {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, formPanel, "    ", infoPanel)
	} else {
		panels = lipgloss.JoinVertical(lipgloss.Left, formPanel, "", infoPanel)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, t.Muted().Render(d.ContactsBlurb), "", panels)
	return ctx.Framed(router.Contacts, body)
}

func field(placeholder string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorGlass).
		Foreground(theme.ColorDim).
		Width(width).
		Height(height).
		Render(placeholder)
}

// mapPlaceholder fills a box with the indigo to cyan wash and centres label.
func mapPlaceholder(label string, width, height int) string {
	from := colorful.Color{R: 129.0 / 255, G: 140.0 / 255, B: 248.0 / 255}
	to := colorful.Color{R: 103.0 / 255, G: 232.0 / 255, B: 249.0 / 255}

	lines := make([]string, height)
	for y := range height {
		var b strings.Builder
		for x := range width {
			tt := (float64(x)/float64(width) + float64(height-1-y)/float64(height)) / 2
			c := colorful.Color{}.BlendRgb(from.BlendRgb(to, tt), 0.2).Clamped()
			b.WriteString(lipgloss.NewStyle().Background(c).Render(" "))
		}
		lines[y] = b.String()
	}

	mid := height / 2
	lines[mid] = lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
	return lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(strings.Join(lines, "\n"))
}
