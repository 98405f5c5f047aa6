package starfield

import "math"

// RGBA is a straight (non-premultiplied) colour with alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

type stop struct {
	at    float64
	color RGBA
}

var glowStops = [...]stop{
	{at: 0, color: RGBA{R: 168, G: 132, B: 255, A: 0.10}},
	{at: 0.5, color: RGBA{R: 87, G: 192, B: 255, A: 0.06}},
	{at: 1, color: RGBA{}},
}

// Glow samples the radial gradient centred at 70% across and 30% down the
// surface, with a radius of the surface's larger side.
func (s Surface) Glow(x, y float64) RGBA {
	if s.Empty() {
		return RGBA{}
	}
	w := float64(s.Width)
	h := float64(s.Height)
	d := math.Hypot(x-w*0.7, y-h*0.3) / math.Max(w, h)
	return gradient(d)
}

// Vignette is the mask applied over the whole backdrop: opaque in the centre,
// 0.6 at 60% of the way to the edge, transparent at the edge.
func (s Surface) Vignette(x, y float64) float64 {
	if s.Empty() {
		return 0
	}
	hw := float64(s.Width) / 2
	hh := float64(s.Height) / 2
	d := math.Hypot((x-hw)/hw, (y-hh)/hh) / math.Sqrt2
	switch {
	case d <= 0:
		return 1
	case d < 0.6:
		return 1 - 0.4*(d/0.6)
	case d < 1:
		return 0.6 * (1 - (d-0.6)/0.4)
	default:
		return 0
	}
}

func gradient(d float64) RGBA {
	if d <= 0 {
		return glowStops[0].color
	}
	for i := 1; i < len(glowStops); i++ {
		lo, hi := glowStops[i-1], glowStops[i]
		if d <= hi.at {
			t := (d - lo.at) / (hi.at - lo.at)
			return lerp(lo.color, hi.color, t)
		}
	}
	return glowStops[len(glowStops)-1].color
}

func lerp(a, b RGBA, t float64) RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}
