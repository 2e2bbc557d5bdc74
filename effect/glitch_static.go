package effect

import (
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var glitchPhases = engine.PhaseTable{
	{Name: "low", From: 0, To: 0.6},
	{Name: "high", From: 0.6, To: 0.9},
	{Name: "decay", From: 0.9, To: 1},
}

// glitchStatic redraws random bands and noise every frame, its randomness is the visual
// and is drawn from the session RNG so seeded runs repeat exactly
type glitchStatic struct {
	env Env
}

func newGlitchStatic(env Env) Effect {
	return &glitchStatic{env: env}
}

// intensity returns the draw intensity and band count for a frame
func (gs *glitchStatic) intensity(progress float64) (float64, int) {
	ph, local := glitchPhases.Select(progress)
	rnd := gs.env.Rand
	switch ph.Name {
	case "low":
		return 1, parameter.GlitchLowBands + rnd.Intn(2)
	case "high":
		return 1, parameter.GlitchHighBands + rnd.Intn(3)
	default:
		k := 1 - local
		return k, max(1, int(k*parameter.GlitchDecayBands))
	}
}

func (gs *glitchStatic) Frame(t engine.Timing, s render.Surface) {
	env := gs.env
	w, h := env.Width, env.Height

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.3))

	k, bands := gs.intensity(t.Progress)
	if k <= 0 {
		return
	}

	for b := 0; b < bands; b++ {
		by := env.Rand.Float64() * h
		bh := env.Range(4, 20)
		bw := env.Range(80, 160)
		bx := env.Rand.Float64() * max(0, w-bw)
		shift := env.Signed(parameter.GlitchMaxShift / 2)
		gray := uint8(55 + env.Rand.Intn(200))

		s.FillRect(bx+shift, by, bw, bh, render.RGBA(gray, gray, gray, 0.4*k))
		// Chromatic split
		s.FillRect(bx+shift+3, by, bw, 2, render.RGBA(255, 0, 0, 0.3*k))
		s.FillRect(bx+shift-3, by+bh-2, bw, 2, render.RGBA(0, 0, 255, 0.3*k))
	}

	dots := int(parameter.GlitchNoiseDots * k)
	for n := 0; n < dots; n++ {
		g := uint8(env.Rand.Intn(255))
		s.FillRect(env.Rand.Float64()*w, env.Rand.Float64()*h, 2, 2, render.RGBA(g, g, g, 0.6*k))
	}

	scan := colorBlack.WithAlpha(0.15 * k)
	for y := 0.0; y < h; y += 4 {
		s.FillRect(0, y, w, 1, scan)
	}
}
