// Package card renders the frosted glass panels used across the views.
package card

import (
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

type Card struct {
	Title  string
	Body   []string
	Action string // inert control label, e.g. "Add to cart"
}

func (c Card) Render(t theme.Theme, width int, focused bool) string {
	inner := max(width-6, 1)

	parts := make([]string, 0, len(c.Body)+2)
	parts = append(parts, t.Heading().Width(inner).Render(c.Title))
	for _, line := range c.Body {
		parts = append(parts, t.Muted().Width(inner).Render(line))
	}
	if c.Action != "" {
		parts = append(parts, "", Action(t, c.Action))
	}

	return t.Glass(focused).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Action renders an inert pill button.
func Action(t theme.Theme, label string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorGlass).
		Padding(0, 1).
		Render(label)
}

// Grid lays cards out in rows of cols, each cell width wide.
func Grid(cells []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cells[i:end] {
			if j > 0 {
				row = append(row, "  ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns picks how many cells of cellWidth fit in width, like a responsive
// grid: at least one, at most limit.
func Columns(width, cellWidth, limit int) int {
	if cellWidth <= 0 {
		return 1
	}
	n := (width + 2) / (cellWidth + 2)
	return min(max(n, 1), max(limit, 1))
}
