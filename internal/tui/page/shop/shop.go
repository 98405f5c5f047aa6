// Package shop lists the placeholder products. Add to cart is inert.
package shop

import (
	"net/url"

	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/components/card"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
)

const (
	cardWidth  = 26
	maxColumns = 4
)

func View(ctx page.Context) string {
	products := site.Products()
	cells := make([]string, len(products))
	for i, p := range products {
		host := p.ImageURL
		if u, err := url.Parse(p.ImageURL); err == nil {
			host = u.Host
		}
		c := card.Card{
			Title:  p.Title,
			Body:   []string{p.Price(), ctx.Theme.Dim().Render(host)},
			Action: ctx.Dict.AddToCart,
		}
		cells[i] = c.Render(ctx.Theme, cardWidth, false)
	}

	cols := card.Columns(ctx.ContentWidth(), cardWidth, maxColumns)
	body := lipgloss.JoinVertical(lipgloss.Left,
		ctx.Theme.Muted().Render(ctx.Dict.ShopBlurb),
		"",
		card.Grid(cells, cols),
	)
	return ctx.Framed(router.Shop, body)
}
