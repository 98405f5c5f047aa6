// Package education lists the courses. Enroll is inert.
package education

import (
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/components/card"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
)

const (
	cardWidth  = 36
	maxColumns = 3
)

func View(ctx page.Context) string {
	courses := site.Courses()
	cells := make([]string, len(courses))
	for i, c := range courses {
		cells[i] = card.Card{
			Title:  c.Title,
			Body:   []string{c.Description},
			Action: ctx.Dict.Enroll,
		}.Render(ctx.Theme, cardWidth, false)
	}

	cols := card.Columns(ctx.ContentWidth(), cardWidth, maxColumns)
	body := lipgloss.JoinVertical(lipgloss.Left,
		ctx.Theme.Muted().Render(ctx.Dict.EducationBlurb),
		"",
		card.Grid(cells, cols),
	)
	return ctx.Framed(router.Education, body)
}
