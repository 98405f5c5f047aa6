// Package notfound is shown for paths that match no route.
package notfound

import (
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
)

func View(ctx page.Context, path string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		ctx.Theme.Dim().Render(path),
		"",
		ctx.Theme.Muted().Render(ctx.Dict.NotFoundHint),
	)
	return ctx.Framed(router.NotFound, body)
}
