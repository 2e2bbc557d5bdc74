package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/render"
)

// fillRoundRect fills a rectangle with rounded corners of radius r
func fillRoundRect(s render.Surface, x, y, w, h, r float64, c render.Color) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	s.FillRect(x+r, y, w-2*r, h, c)
	s.FillRect(x, y+r, r, h-2*r, c)
	s.FillRect(x+w-r, y+r, r, h-2*r, c)
	s.FillCircle(x+r, y+r, r, c)
	s.FillCircle(x+w-r, y+r, r, c)
	s.FillCircle(x+r, y+h-r, r, c)
	s.FillCircle(x+w-r, y+h-r, r, c)
}

// fadeAlpha returns a fade-in over [0, in), full until out, fade-out over [out, 1]
func fadeAlpha(p, in, out float64) float64 {
	switch {
	case p < in:
		return p / in
	case p > out:
		return math.Max(0, (1-p)/(1-out))
	default:
		return 1
	}
}
