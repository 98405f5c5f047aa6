// Package page holds what every view needs to render itself.
package page

import (
	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/tui/components/frame"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

type Context struct {
	Theme theme.Theme
	Dict  locale.Dictionary
	Art   assets.Art

	Width  int
	Height int

	// Scroll is the first visible line; Progress is Scroll over the maximum
	// scroll, in [0, 1].
	Scroll   int
	Progress float64

	// Reserve is the header space kept free for the language switcher.
	Reserve int
}

// logoGlyph stands in for the logo image in one-line headers.
const logoGlyph = "✦"

// LogoMark is the header's brand mark, hidden when the logo art is missing.
func (c Context) LogoMark() string {
	if c.Art.Logo == "" {
		return ""
	}
	return logoGlyph
}

// Frame is the page frame for a non-home route.
func (c Context) Frame(r router.Route) frame.Frame {
	return frame.Frame{
		Logo:    c.LogoMark(),
		Heading: r.Heading(c.Dict),
		Back:    c.Dict.Back,
		Reserve: c.Reserve,
	}
}

// Framed renders body inside the page frame for r.
func (c Context) Framed(r router.Route, body string) string {
	return c.Frame(r).Render(c.Theme, c.Width, body)
}

func (c Context) ContentWidth() int {
	return frame.ContentWidth(c.Width)
}
