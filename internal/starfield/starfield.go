// Package starfield models the animated parallax star backdrop. It is pure
// geometry: callers supply a viewport, pointer and scroll offset and rasterize
// the projected points however their surface allows.
package starfield

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultCount = 600
	MaxDPR       = 2.0

	twinkleStep  = 0.02
	parallaxPx   = 40.0
	scrollFactor = 0.3
)

type Star struct {
	X, Y  float64 // normalized position
	Z     float64 // depth, 0 far to 1 near
	S     float64 // base size in css px
	Phase float64 // twinkle phase in radians
}

// Surface is the drawing area in device pixels.
type Surface struct {
	Width  int
	Height int
	DPR    float64
}

func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point is a star projected onto the surface for one frame.
type Point struct {
	X, Y  float64
	Size  float64
	Alpha float64
}

type Options struct {
	Count int
	DPR   float64
	// Seed makes the field reproducible; zero seeds from the clock.
	Seed uint64
}

type Field struct {
	stars   []Star
	dpr     float64
	surface Surface

	pointerX float64
	pointerY float64
	scroll   float64
}

func New(opts Options) *Field {
	count := opts.Count
	if count <= 0 {
		count = DefaultCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64(),
			Y:     rng.Float64(),
			Z:     rng.Float64(),
			S:     rng.Float64()*0.8 + 0.2,
			Phase: rng.Float64() * math.Pi * 2,
		}
	}

	return &Field{
		stars: stars,
		dpr:   CapDPR(opts.DPR),
	}
}

// CapDPR clamps a device pixel ratio to (0, MaxDPR]; unknown ratios are 1.
func CapDPR(dpr float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) {
		return 1
	}
	return math.Min(dpr, MaxDPR)
}

// Resize sets the viewport in css pixels and returns the new surface, which
// is the viewport scaled by the capped pixel ratio.
func (f *Field) Resize(width, height int) Surface {
	f.surface = Surface{
		Width:  int(math.Round(float64(max(width, 0)) * f.dpr)),
		Height: int(math.Round(float64(max(height, 0)) * f.dpr)),
		DPR:    f.dpr,
	}
	return f.surface
}

func (f *Field) Surface() Surface { return f.surface }

func (f *Field) Len() int { return len(f.stars) }

// Stars returns a copy of the current star state.
func (f *Field) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

// SetPointer records the pointer as a fraction of the viewport.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX = clamp01(x)
	f.pointerY = clamp01(y)
}

func (f *Field) Pointer() (x, y float64) {
	return f.pointerX, f.pointerY
}

// SetScroll records the page scroll offset in device pixels.
func (f *Field) SetScroll(px float64) {
	f.scroll = max(px, 0)
}

func (f *Field) Scroll() float64 { return f.scroll }

// Step advances every star's twinkle by one frame.
func (f *Field) Step() {
	for i := range f.stars {
		f.stars[i].Phase += twinkleStep
	}
}

// Project appends the current frame's points to dst.
func (f *Field) Project(dst []Point) []Point {
	w := float64(f.surface.Width)
	h := float64(f.surface.Height)
	for _, st := range f.stars {
		depth := 1 + st.Z*2
		near := 1 - st.Z
		sin := math.Sin(st.Phase)

		px := (st.X-0.5)*depth*w + (f.pointerX-0.5)*parallaxPx*near
		py := (st.Y-0.5)*depth*h + (f.pointerY-0.5)*parallaxPx*near + f.scroll*st.Z*scrollFactor

		dst = append(dst, Point{
			X:     px + w*0.5,
			Y:     py + h*0.5,
			Size:  st.S * (1 + sin*0.2) * f.dpr,
			Alpha: 0.6 + sin*0.3,
		})
	}
	return dst
}

// Frame advances the field and projects it.
func (f *Field) Frame(dst []Point) []Point {
	f.Step()
	return f.Project(dst)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}
