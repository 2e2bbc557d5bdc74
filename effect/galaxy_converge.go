package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var galaxyPhases = engine.PhaseTable{
	{Name: "drift", From: 0, To: 0.5},
	{Name: "converge", From: 0.5, To: 0.75},
	{Name: "snap", From: 0.75, To: 0.9},
	{Name: "hold", From: 0.9, To: 1},
}

// 5x7 bitmap glyphs, '#' marks a lit cell
var galaxyGlyphs = [][]string{
	{
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	},
	{
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#####",
	},
}

var (
	starPalette = mustPalette("#ffffff", "#aaaaff", "#8888ff", "#ccccff")
	galaxyCore  = render.MustHex("#aaffff")
)

type star struct {
	pos     vmath.Vec2
	vel     vmath.Vec2
	color   render.Color
	alpha   float64
	twinkle float64
	size    float64
	target  vmath.Vec2
	bound   bool
}

type galaxyConverge struct {
	env   Env
	stars []star
	watch phaseWatch
}

// glyphTargets returns the centers of every lit cell, laying glyphs left to right
func glyphTargets(env Env, glyphs [][]string) []vmath.Vec2 {
	const cols, rows = 5, 7
	cell := parameter.GalaxyCell
	digitW := cols * cell
	totalW := digitW*float64(len(glyphs)) + parameter.GalaxyGap*float64(len(glyphs)-1)
	ox := (env.Width - totalW) / 2
	oy := (env.Height - rows*cell) / 2

	var out []vmath.Vec2
	for g, glyph := range glyphs {
		gx := ox + float64(g)*(digitW+parameter.GalaxyGap)
		for ri, row := range glyph {
			for ci, c := range row {
				if c == '#' {
					out = append(out, vmath.V2(gx+float64(ci)*cell+cell/2, oy+float64(ri)*cell+cell/2))
				}
			}
		}
	}
	return out
}

func newGalaxyConverge(env Env) Effect {
	targets := glyphTargets(env, galaxyGlyphs)
	gc := &galaxyConverge{env: env, stars: make([]star, 0, len(targets)+parameter.GalaxyNoiseStars)}

	spawn := func(alphaMin, alphaSpan, size float64) star {
		return star{
			pos:     vmath.V2(env.Rand.Float64()*env.Width, env.Rand.Float64()*env.Height),
			vel:     vmath.V2(env.Signed(parameter.GalaxyDrift), env.Signed(parameter.GalaxyDrift)),
			color:   pick(env, starPalette),
			alpha:   alphaMin + env.Rand.Float64()*alphaSpan,
			twinkle: env.Rand.Float64() * 2 * math.Pi,
			size:    size,
		}
	}
	for _, t := range targets {
		s := spawn(0.4, 0.6, 1.5)
		s.target, s.bound = t, true
		gc.stars = append(gc.stars, s)
	}
	for i := 0; i < parameter.GalaxyNoiseStars; i++ {
		gc.stars = append(gc.stars, spawn(0.2, 0.3, 1))
	}
	return gc
}

func (gc *galaxyConverge) Frame(t engine.Timing, s render.Surface) {
	i, entered := gc.watch.enter(galaxyPhases, t.Progress)
	local := galaxyPhases[i].Local(t.Progress)
	w, h := gc.env.Width, gc.env.Height
	ms := t.Ms()

	if entered && i == 3 {
		gc.env.cue(audio.CueChime)
		for j := range gc.stars {
			if gc.stars[j].bound {
				gc.stars[j].pos = gc.stars[j].target
			}
		}
	}

	s.FillRect(0, 0, w, h, colorBlack)

	for j := range gc.stars {
		st := &gc.stars[j]
		drift := vmath.V2Add(st.pos, vmath.V2Scale(st.vel, t.Dt))

		switch i {
		case 0:
			st.pos = vmath.V2(vmath.Wrap(drift.X, 0, w), vmath.Wrap(drift.Y, 0, h))
			tw := 0.5 + 0.5*math.Sin(ms/300+st.twinkle)
			s.FillCircle(st.pos.X, st.pos.Y, st.size, st.color.WithAlpha(st.alpha*tw))

		case 1:
			if st.bound {
				st.pos = vmath.V2Approach(st.pos, st.target, vmath.EaseInCubic(local)*0.08, t.Dt)
			} else {
				st.pos = drift
			}
			s.FillCircle(st.pos.X, st.pos.Y, st.size, st.color.WithAlpha(st.alpha))

		case 2:
			if st.bound {
				st.pos = vmath.V2Approach(st.pos, st.target, 0.2, t.Dt)
				pulse := 0.7 + 0.3*math.Sin(ms/150)
				render.RadialGradient(s, st.pos.X, st.pos.Y, 0, parameter.GalaxyGlowRadius, []render.Stop{
					{At: 0, Color: colorWhite.WithAlpha(pulse)},
					{At: 0.4, Color: galaxyCore.WithAlpha(pulse)},
					{At: 1, Color: colorCyan.WithAlpha(0)},
				})
			} else {
				st.vel = vmath.V2Scale(st.vel, vmath.Decay(1.02, t.Dt))
				st.pos = vmath.V2Add(st.pos, vmath.V2Scale(st.vel, t.Dt))
				s.FillCircle(st.pos.X, st.pos.Y, st.size, st.color.WithAlpha(math.Max(0, st.alpha*(1-local))))
			}

		default:
			if st.bound {
				s.FillCircle(st.pos.X, st.pos.Y, 2.5, galaxyCore.WithAlpha((1-local)*0.9))
			} else {
				st.alpha = 0
			}
		}
	}
}
