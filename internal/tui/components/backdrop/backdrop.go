// Package backdrop runs the starfield animation behind every view and
// rasterizes it to braille cells.
package backdrop

import (
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/izhairtrend/hairtrend/internal/starfield"
	"github.com/izhairtrend/hairtrend/internal/tui/schedule"
)

const (
	FrameInterval = time.Second / 30

	// RowPixels is how many css pixels one terminal row scrolls.
	RowPixels = 16

	// braille cells are 2 dots wide and 4 dots tall
	dotsPerCol = 2
	dotsPerRow = 4

	alphaLevels = 8
	glowLevels  = 6
)

// FrameMsg advances the animation. Frames from a stopped loop carry a stale
// generation and are dropped.
type FrameMsg struct {
	Gen int
}

type Backdrop struct {
	field    *starfield.Field
	schedule schedule.Func

	gen     int
	running bool

	cols   int
	rows   int
	points []starfield.Point
	styles map[cellKey]lipgloss.Style
}

func New(field *starfield.Field, sched schedule.Func) *Backdrop {
	if sched == nil {
		sched = schedule.Tick
	}
	return &Backdrop{
		field:    field,
		schedule: sched,
		styles:   make(map[cellKey]lipgloss.Style),
	}
}

// Start begins the frame loop. Calling it on a running loop restarts it
// without leaving the old loop alive.
func (b *Backdrop) Start() tea.Cmd {
	b.gen++
	b.running = true
	return b.next()
}

// Stop cancels the frame loop; the pending frame is ignored when it lands.
func (b *Backdrop) Stop() {
	b.gen++
	b.running = false
}

func (b *Backdrop) Running() bool { return b.running }

func (b *Backdrop) Gen() int { return b.gen }

func (b *Backdrop) Field() *starfield.Field { return b.field }

func (b *Backdrop) next() tea.Cmd {
	return b.schedule(FrameInterval, FrameMsg{Gen: b.gen})
}

// Update handles frames, resizes and pointer motion. It reports whether msg
// was a live frame so the caller can advance its own animations in step.
func (b *Backdrop) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case FrameMsg:
		if !b.running || msg.Gen != b.gen {
			return nil, false
		}
		b.field.Step()
		return b.next(), true

	case tea.WindowSizeMsg:
		b.Resize(msg.Width, msg.Height)

	case tea.MouseMotionMsg:
		m := msg.Mouse()
		b.Pointer(m.X, m.Y)
	}
	return nil, false
}

// Resize sets the viewport in cells; the surface follows at the field's
// pixel ratio.
func (b *Backdrop) Resize(cols, rows int) starfield.Surface {
	b.cols = max(cols, 0)
	b.rows = max(rows, 0)
	return b.field.Resize(b.cols, b.rows)
}

func (b *Backdrop) Pointer(col, row int) {
	if b.cols == 0 || b.rows == 0 {
		return
	}
	b.field.SetPointer(float64(col)/float64(b.cols), float64(row)/float64(b.rows))
}

// Scroll sets the page offset in rows.
func (b *Backdrop) Scroll(rows int) {
	b.field.SetScroll(float64(rows*RowPixels) * b.field.Surface().DPR)
}

type cellKey struct {
	star uint8
	glow uint8
}

// View rasterizes the current frame. An empty surface renders nothing.
func (b *Backdrop) View() string {
	surface := b.field.Surface()
	if surface.Empty() || b.cols == 0 || b.rows == 0 {
		return ""
	}

	var (
		dotsW = b.cols * dotsPerCol
		dotsH = b.rows * dotsPerRow
		sx    = float64(dotsW) / float64(surface.Width)
		sy    = float64(dotsH) / float64(surface.Height)
		alpha = make([]float64, b.cols*b.rows)
	)

	canvas := drawille.NewCanvas()
	b.points = b.field.Project(b.points[:0])
	for _, p := range b.points {
		dx := int(p.X * sx)
		dy := int(p.Y * sy)
		if dx < 0 || dy < 0 || dx >= dotsW || dy >= dotsH {
			continue
		}
		canvas.Set(dx, dy)
		// stars bigger than a device pixel at dpr 2 light the neighbouring dot
		if p.Size*sx >= 1 && dx+1 < dotsW {
			canvas.Set(dx+1, dy)
		}

		cell := (dy/dotsPerRow)*b.cols + dx/dotsPerCol
		a := p.Alpha * surface.Vignette(p.X, p.Y)
		alpha[cell] = math.Max(alpha[cell], a)
	}

	rows := canvasRows(&canvas, dotsW, dotsH)

	var out strings.Builder
	for r, line := range rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		b.renderRow(&out, []rune(line), alpha[r*b.cols:(r+1)*b.cols], r, surface)
	}
	return out.String()
}

// renderRow merges neighbouring cells that share a style into one run.
func (b *Backdrop) renderRow(out *strings.Builder, cells []rune, alpha []float64, row int, surface starfield.Surface) {
	var (
		run     strings.Builder
		current cellKey
		started bool
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(b.style(current).Render(run.String()))
		run.Reset()
	}

	cellH := float64(surface.Height) / float64(b.rows)
	cellW := float64(surface.Width) / float64(b.cols)
	cy := (float64(row) + 0.5) * cellH

	for c, ch := range cells {
		glow := surface.Glow((float64(c)+0.5)*cellW, cy)
		key := cellKey{
			star: quantize(alpha[c], 1, alphaLevels),
			glow: quantize(glow.A, 0.10, glowLevels),
		}
		if ch == emptyBraille || ch == ' ' {
			ch = ' '
			key.star = 0
		}
		if !started || key != current {
			flush()
			current = key
			started = true
		}
		run.WriteRune(ch)
	}
	flush()
}

func (b *Backdrop) style(k cellKey) lipgloss.Style {
	if s, ok := b.styles[k]; ok {
		return s
	}

	bg := glowColor(float64(k.glow) / glowLevels)
	s := lipgloss.NewStyle().Background(bg)
	if k.star > 0 {
		a := float64(k.star) / alphaLevels
		s = s.Foreground(bg.BlendRgb(white, a).Clamped())
	}
	b.styles[k] = s
	return s
}

var (
	black  = colorful.Color{}
	white  = colorful.Color{R: 1, G: 1, B: 1}
	violet = colorful.Color{R: 168.0 / 255, G: 132.0 / 255, B: 1}
	cyan   = colorful.Color{R: 87.0 / 255, G: 192.0 / 255, B: 1}
)

// glowColor is the gradient over black at t of its peak opacity. The hue
// runs from cyan at the mid stop to violet at the centre.
func glowColor(t float64) colorful.Color {
	const mid = 0.6 // mid stop opacity relative to the centre
	hue := cyan
	if t > mid {
		hue = cyan.BlendRgb(violet, (t-mid)/(1-mid))
	}
	return black.BlendRgb(hue, t*0.10).Clamped()
}

func quantize(v, peak float64, levels int) uint8 {
	if v <= 0 || peak <= 0 {
		return 0
	}
	q := int(math.Round(v / peak * float64(levels)))
	return uint8(min(max(q, 0), levels))
}

const emptyBraille rune = '⠀'

// canvasRows extracts the canvas with consistent dimensions, one string per
// terminal row.
func canvasRows(canvas *drawille.Canvas, width, height int) []string {
	charWidth := width / dotsPerCol
	charHeight := height / dotsPerRow

	rows := canvas.Rows(0, 0, width, height)

	lines := make([]string, charHeight)
	for i := range charHeight {
		if i >= len(rows) {
			lines[i] = strings.Repeat(" ", charWidth)
			continue
		}
		line := []rune(rows[i])
		switch {
		case len(line) < charWidth:
			lines[i] = string(line) + strings.Repeat(" ", charWidth-len(line))
		case len(line) > charWidth:
			lines[i] = string(line[:charWidth])
		default:
			lines[i] = string(line)
		}
	}
	return lines
}
