package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var ukrainePhases = engine.PhaseTable{
	{Name: "fade-in", From: 0, To: 0.3},
	{Name: "steady", From: 0.3, To: 0.9},
	{Name: "fade-out", From: 0.9, To: 1},
}

var (
	ukraineNight    = render.MustHex("#000814")
	ukraineBlueLow  = render.MustHex("#0066CC")
	ukraineGoldLow  = render.MustHex("#FFC200")
	sunflowerCenter = render.MustHex("#8B5E00")
)

type sunflower struct {
	pos   vmath.Vec2
	vx    float64
	phase float64
}

type ukraineWave struct {
	env        Env
	sunflowers []sunflower
}

func newUkraineWave(env Env) Effect {
	uw := &ukraineWave{env: env, sunflowers: make([]sunflower, parameter.SunflowerCount)}
	for i := range uw.sunflowers {
		uw.sunflowers[i] = sunflower{
			pos:   vmath.V2(env.Rand.Float64()*env.Width, env.Height*0.5+env.Rand.Float64()*env.Height*0.45),
			vx:    env.Range(0.2, 0.7),
			phase: env.Rand.Float64() * 2 * math.Pi,
		}
	}
	return uw
}

// waveY returns the flag boundary at column x
func (uw *ukraineWave) waveY(x, ms, amp float64) float64 {
	return uw.env.Height/2 + math.Sin(ms/parameter.WavePeriodMs+x/parameter.WaveLength)*amp
}

func (uw *ukraineWave) Frame(t engine.Timing, s render.Surface) {
	w, h := uw.env.Width, uw.env.Height
	ms := t.Ms()
	p := t.Progress

	ph, local := ukrainePhases.Select(p)
	global := 1.0
	switch ph.Name {
	case "fade-in":
		global = local
	case "fade-out":
		global = 1 - local
	}

	amp := parameter.WaveAmplitude
	if p > 0.7 {
		amp *= math.Max(0, 1-(p-0.7)/0.2)
	}

	s.FillRect(0, 0, w, h, ukraineNight)

	blue := render.Mix(colorUABlue, ukraineBlueLow, 0.5)
	gold := render.Mix(colorUAYellow, ukraineGoldLow, 0.5)
	cols := parameter.WaveColumns
	cw := w / float64(cols)
	for c := 0; c < cols; c++ {
		x := float64(c) * cw
		y := uw.waveY(x+cw/2, ms, amp)
		s.FillRect(x, 0, cw, y, blue.Fade(global))
		s.FillRect(x, y, cw, h-y, gold.Fade(global))
	}

	if p <= 0.3 || p >= 0.9 {
		return
	}
	sf := 1.0
	if p < 0.4 {
		sf = (p - 0.3) / 0.1
	} else if p > 0.8 {
		sf = (0.9 - p) / 0.1
	}
	alpha := vmath.Clamp01(global * sf)
	r := parameter.SunflowerRadius
	for i := range uw.sunflowers {
		f := &uw.sunflowers[i]
		f.pos.X += f.vx * t.Dt
		if f.pos.X > w+10 {
			f.pos.X = -10
		}
		s.FillCircle(f.pos.X, f.pos.Y, r, sunflowerCenter.WithAlpha(alpha))
		for petal := 0; petal < 6; petal++ {
			angle := float64(petal)/6*2*math.Pi + f.phase
			pp := vmath.V2Add(f.pos, vmath.V2Polar(r*2.5, angle))
			s.FillCircle(pp.X, pp.Y, r*0.8, colorUAYellow.WithAlpha(alpha))
		}
	}
}
