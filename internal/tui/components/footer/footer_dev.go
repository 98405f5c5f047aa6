//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/tui/theme"
	"github.com/izhairtrend/hairtrend/internal/version"
)

var devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	return devVersionStyle.Render(version.Get())
}
