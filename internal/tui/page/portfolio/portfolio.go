// Package portfolio is the gallery view. Tiles reveal with a stagger as they
// first scroll into view, once per mount.
package portfolio

import (
	"fmt"
	"math"
	"net/url"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/tui/components/card"
	"github.com/izhairtrend/hairtrend/internal/tui/page"
	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
	"github.com/izhairtrend/hairtrend/internal/tui/theme"
)

const (
	RevealStagger = 30 * time.Millisecond
	// RevealFrames is how many backdrop frames a tile takes to fade and
	// slide in once revealed.
	RevealFrames = 12

	slideCells = 4

	tileWidth  = 34
	tileHeight = 8 // including border
	rowGap     = 0
	maxColumns = 3
)

// RevealMsg shows tile Index. Gen ties it to the mount that scheduled it.
type RevealMsg struct {
	Index int
	Gen   int
}

type Model struct {
	gen      int
	schedule schedule.Func
	items    []site.GalleryItem

	scheduled [site.GallerySize]bool
	revealed  [site.GallerySize]bool
	frames    [site.GallerySize]int
}

func New(gen int, sched schedule.Func) Model {
	return Model{gen: gen, schedule: sched, items: site.Gallery()}
}

func (m Model) Revealed(i int) bool { return m.revealed[i] }

// Progress is how far tile i's entrance has played, in [0, 1].
func (m Model) Progress(i int) float64 {
	if !m.revealed[i] {
		return 0
	}
	return float64(m.frames[i]) / RevealFrames
}

// Advance steps every revealed tile's entrance by one frame.
func (m *Model) Advance() {
	for i, shown := range m.revealed {
		if shown && m.frames[i] < RevealFrames {
			m.frames[i]++
		}
	}
}

// Update applies reveal messages from this mount.
func (m *Model) Update(msg tea.Msg) {
	if r, ok := msg.(RevealMsg); ok && r.Gen == m.gen && r.Index >= 0 && r.Index < len(m.revealed) {
		m.revealed[r.Index] = true
	}
}

// Observe schedules the reveal of every tile now on screen that has not been
// scheduled yet. Tile i is delayed by i times the stagger.
func (m *Model) Observe(ctx page.Context) tea.Cmd {
	top, cols := m.layout(ctx)
	var cmds []tea.Cmd
	for i := range m.items {
		if m.scheduled[i] {
			continue
		}
		y := top + (i/cols)*(tileHeight+rowGap)
		if y >= ctx.Scroll+ctx.Height || y+tileHeight <= ctx.Scroll {
			continue
		}
		m.scheduled[i] = true
		cmds = append(cmds, m.schedule(time.Duration(i)*RevealStagger, RevealMsg{Index: i, Gen: m.gen}))
	}
	return tea.Batch(cmds...)
}

func (m Model) layout(ctx page.Context) (top, cols int) {
	top = ctx.Frame(router.Portfolio).BodyTop(ctx.Theme, ctx.Width)
	cols = card.Columns(ctx.ContentWidth(), tileWidth, maxColumns)
	return top, cols
}

func (m Model) View(ctx page.Context) string {
	_, cols := m.layout(ctx)

	tiles := make([]string, len(m.items))
	for i, item := range m.items {
		tiles[i] = m.tile(ctx.Theme, item, m.revealed[i], m.Progress(i))
	}
	return ctx.Framed(router.Portfolio, card.Grid(tiles, cols))
}

func (m Model) tile(t theme.Theme, item site.GalleryItem, revealed bool, progress float64) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(tileWidth).
		Height(tileHeight - 2)

	if !revealed {
		return style.BorderForeground(theme.ColorBlack).Render("")
	}

	host, sig := item.URL, ""
	if u, err := url.Parse(item.URL); err == nil {
		host = u.Host
		sig = u.Query().Get("sig")
	}

	// ease out: fast start, settling into place
	p := 1 - (1-progress)*(1-progress)
	dark := 1 - p
	dim := lipgloss.NewStyle().Foreground(theme.Fade(theme.ColorDim, dark))
	accent := t.TextAccent().Foreground(theme.Fade(theme.ColorViolet, dark))
	muted := lipgloss.NewStyle().Foreground(theme.Fade(theme.ColorMuted, dark))

	body := lipgloss.JoinVertical(lipgloss.Left,
		dim.Render("░░▒▒▓▓██▓▓▒▒░░"),
		dim.Render("▒▒▓▓██████▓▓▒▒"),
		"",
		accent.Render(fmt.Sprintf("#%02d", item.Index+1)),
		muted.Render(host),
		dim.Render("sig="+sig),
	)
	return style.
		BorderForeground(theme.Fade(theme.ColorGlassFaint, dark)).
		PaddingLeft(int(math.Round(dark * slideCells))).
		Render(body)
}
