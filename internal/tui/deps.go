package tui

import (
	"context"
	"log/slog"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/starfield"
	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
)

type Deps struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Catalog  *locale.Catalog
	Art      assets.Art
	Field    *starfield.Field
	Schedule schedule.Func

	Locale locale.Locale
	// Start is the deep-linked path the shell opens on.
	Start string
}
