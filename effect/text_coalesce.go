package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var coalescePhases = engine.PhaseTable{
	{Name: "noise", From: 0, To: 0.2},
	{Name: "converge", From: 0.2, To: 0.7},
	{Name: "glow", From: 0.7, To: 0.9},
	{Name: "pulse", From: 0.9, To: 1},
}

var coalesceLines = []string{
	"Write code that lasts.",
	"Ship things that matter.",
	"Debug with patience.",
}

type glyphParticle struct {
	pos    vmath.Vec2
	vel    vmath.Vec2
	char   string
	target vmath.Vec2
	bound  bool
}

type textCoalesce struct {
	env       Env
	particles []glyphParticle
	watch     phaseWatch
}

func newTextCoalesce(env Env) Effect {
	tc := &textCoalesce{env: env}
	px := parameter.CoalesceFontPx
	lh := parameter.CoalesceLineHeight
	top := env.Height/2 - float64(len(coalesceLines)-1)*lh/2

	spawn := func(char string) glyphParticle {
		return glyphParticle{
			pos:  vmath.V2(env.Rand.Float64()*env.Width, env.Rand.Float64()*env.Height),
			vel:  vmath.V2(env.Signed(parameter.CoalesceDrift), env.Signed(parameter.CoalesceDrift)),
			char: char,
		}
	}

	for li, line := range coalesceLines {
		x := (env.Width - render.MeasureText(line, px)) / 2
		y := top + float64(li)*lh
		for _, r := range line {
			adv := render.RuneAdvance(r, px)
			if r != ' ' {
				p := spawn(string(r))
				p.target, p.bound = vmath.V2(x+adv/2, y), true
				tc.particles = append(tc.particles, p)
			}
			x += adv
		}
	}
	for i := 0; i < parameter.CoalesceNoiseCount; i++ {
		tc.particles = append(tc.particles, spawn(string(rune(33+env.Rand.Intn(93)))))
	}
	return tc
}

func (tc *textCoalesce) Frame(t engine.Timing, s render.Surface) {
	i, entered := tc.watch.enter(coalescePhases, t.Progress)
	if entered && i == 2 {
		tc.env.cue(audio.CueChime)
	}
	local := coalescePhases[i].Local(t.Progress)
	w, h := tc.env.Width, tc.env.Height
	px := parameter.CoalesceFontPx

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.25))

	for j := range tc.particles {
		p := &tc.particles[j]
		switch i {
		case 0:
			jitter := vmath.V2(tc.env.Signed(0.25), tc.env.Signed(0.25))
			p.pos = vmath.V2Add(p.pos, vmath.V2Scale(vmath.V2Add(p.vel, jitter), t.Dt))
			p.pos = vmath.V2(vmath.Wrap(p.pos.X, 0, w), vmath.Wrap(p.pos.Y, 0, h))
			s.Text(p.pos.X, p.pos.Y, p.char, px, render.AlignCenter, colorCyan.WithAlpha(0.5))

		case 1:
			if p.bound {
				pull := 0.02 + local*local*0.08
				d := vmath.V2Sub(p.target, p.pos)
				p.vel = vmath.V2Add(vmath.V2Scale(p.vel, vmath.Decay(0.9, t.Dt)), vmath.V2Scale(d, pull*t.Dt))
			}
			p.pos = vmath.V2Add(p.pos, vmath.V2Scale(p.vel, t.Dt))
			s.Text(p.pos.X, p.pos.Y, p.char, px, render.AlignCenter, colorCyan.WithAlpha(0.4+local*0.5))

		case 2:
			if p.bound {
				p.pos = vmath.V2Approach(p.pos, p.target, 0.2, t.Dt)
				render.Glow(s, p.pos.X, p.pos.Y-px/3, px*0.6, colorCyan.WithAlpha(0.15))
				s.Text(p.pos.X, p.pos.Y, p.char, px, render.AlignCenter, colorCyan.WithAlpha(0.7+0.3*local))
			} else {
				p.vel = vmath.V2Scale(p.vel, vmath.Decay(1.02, t.Dt))
				p.pos = vmath.V2Add(p.pos, vmath.V2Scale(p.vel, t.Dt))
				s.Text(p.pos.X, p.pos.Y, p.char, px, render.AlignCenter, colorCyan.WithAlpha(math.Max(0, 0.3*(1-local))))
			}

		default:
			if !p.bound {
				continue
			}
			p.pos = vmath.V2Approach(p.pos, p.target, 0.1, t.Dt)
			alpha := math.Max(0, 1-local)
			glow := 6 + math.Sin(t.Ms()/100)*3
			render.Glow(s, p.pos.X, p.pos.Y-px/3, glow, colorCyan.WithAlpha(0.2*alpha))
			s.Text(p.pos.X, p.pos.Y, p.char, px, render.AlignCenter, colorCyan.WithAlpha(alpha))
		}
	}
}
