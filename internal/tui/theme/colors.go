package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorViolet  = lipgloss.Color("#A78BFA") // headings glow, focus rings
	ColorIndigo  = lipgloss.Color("#9270FF") // button halo
	ColorCyan    = lipgloss.Color("#57C0FF") // secondary accent
	ColorFuchsia = lipgloss.Color("#E879F9") // map placeholder gradient
)

// frosted glass borders at decreasing opacity over black
var (
	ColorGlassStrong = lipgloss.Color("#999999") // white/60
	ColorGlass       = lipgloss.Color("#4D4D4D") // white/30
	ColorGlassFaint  = lipgloss.Color("#262626") // white/15
	ColorMuted       = lipgloss.Color("#B3B3B3") // white/70
)

// Fade blends c towards black; p = 0 is c itself, p = 1 is black.
func Fade(c color.Color, p float64) colorful.Color {
	cc, _ := colorful.MakeColor(c)
	return cc.BlendRgb(colorful.Color{}, p).Clamped()
}
