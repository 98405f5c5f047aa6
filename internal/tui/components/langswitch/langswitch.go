// Package langswitch renders the LT / EN / RU selector pinned to the top
// right of every view.
package langswitch

import (
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

// Keys maps each locale to the function key that selects it.
var Keys = map[string]locale.Locale{
	"f1": locale.LT,
	"f2": locale.EN,
	"f3": locale.RU,
}

const CycleKey = "l"

// Select resolves a key press to a locale. The cycle key moves to the one
// after current.
func Select(key string, current locale.Locale) (locale.Locale, bool) {
	if key == CycleKey {
		return current.Next(), true
	}
	l, ok := Keys[key]
	return l, ok
}

func Render(t theme.Theme, current locale.Locale) string {
	items := make([]string, 0, len(locale.All()))
	for _, l := range locale.All() {
		active := l == current
		border := theme.ColorGlassFaint
		if active {
			border = theme.ColorGlassStrong
		}
		items = append(items, t.Pill(active).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Render(l.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
