//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

var handleStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	return handleStyle.Render(site.Contacts().Handle)
}
