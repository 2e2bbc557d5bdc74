package render

import (
	"math"

	"github.com/lixenwraith/cyberfx/vmath"
)

// gradientBands is the number of solid bands a gradient is approximated with
const gradientBands = 24

// Stop is a color position on a gradient, At in [0, 1]
type Stop struct {
	At    float64
	Color Color
}

// Sample returns the gradient color at t, stops must be sorted by At
func Sample(stops []Stop, t float64) Color {
	if len(stops) == 0 {
		return Color{}
	}
	if t <= stops[0].At {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].At {
			a, b := stops[i-1], stops[i]
			span := b.At - a.At
			if span <= 0 {
				return b.Color
			}
			return Mix(a.Color, b.Color, (t-a.At)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// VerticalGradient fills a rect top to bottom in solid bands
func VerticalGradient(s Surface, x, y, w, h float64, stops []Stop) {
	if h <= 0 || w <= 0 {
		return
	}
	step := h / gradientBands
	for i := 0; i < gradientBands; i++ {
		t := (float64(i) + 0.5) / gradientBands
		s.FillRect(x, y+float64(i)*step, w, step, Sample(stops, t))
	}
}

// HorizontalGradient fills a rect left to right in solid bands
func HorizontalGradient(s Surface, x, y, w, h float64, stops []Stop) {
	if h <= 0 || w <= 0 {
		return
	}
	step := w / gradientBands
	for i := 0; i < gradientBands; i++ {
		t := (float64(i) + 0.5) / gradientBands
		s.FillRect(x+float64(i)*step, y, step, h, Sample(stops, t))
	}
}

// RadialGradient draws concentric rings from r0 to r1, the disc inside r0 takes the first stop
func RadialGradient(s Surface, cx, cy, r0, r1 float64, stops []Stop) {
	if r1 <= r0 || len(stops) == 0 {
		return
	}
	if r0 > 0 && stops[0].Color.Visible() {
		s.FillCircle(cx, cy, r0, stops[0].Color)
	}
	bands := int(math.Max(4, math.Min(gradientBands, (r1-r0)/2)))
	step := (r1 - r0) / float64(bands)
	for i := 0; i < bands; i++ {
		t := (float64(i) + 0.5) / float64(bands)
		c := Sample(stops, t)
		if !c.Visible() {
			continue
		}
		s.StrokeCircle(cx, cy, vmath.Lerp(r0, r1, t), step, c)
	}
}

// Glow draws a soft radial falloff of c around a point, alpha fading to zero at r
func Glow(s Surface, cx, cy, r float64, c Color) {
	RadialGradient(s, cx, cy, 0, r, []Stop{{0, c}, {1, c.WithAlpha(0)}})
}
