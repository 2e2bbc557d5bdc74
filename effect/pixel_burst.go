package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var pixelBurstPhases = engine.PhaseTable{
	{Name: "charge", From: 0, To: 0.15},
	{Name: "explode", From: 0.15, To: 0.6},
	{Name: "float", From: 0.6, To: 1},
}

var nesPalette = mustPalette("#D62411", "#E8B800", "#00A800", "#00FFFF", "#FCFCFC", "#F26122")

type burstPixel struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	size  float64
	color render.Color
}

type pixelBurst struct {
	env    Env
	pixels []burstPixel
	watch  phaseWatch
}

func newPixelBurst(env Env) Effect {
	pb := &pixelBurst{env: env, pixels: make([]burstPixel, parameter.BurstPixelCount)}
	for i := range pb.pixels {
		size := parameter.BurstPixelSmall
		if env.Rand.Float64() >= 0.5 {
			size = parameter.BurstPixelLarge
		}
		pb.pixels[i] = burstPixel{
			pos:   env.Center(),
			vel:   vmath.V2(env.Signed(parameter.BurstMaxSpeed), env.Signed(parameter.BurstMaxSpeed)),
			size:  size,
			color: pick(env, nesPalette),
		}
	}
	return pb
}

func (pb *pixelBurst) Frame(t engine.Timing, s render.Surface) {
	i, entered := pb.watch.enter(pixelBurstPhases, t.Progress)
	if entered && i == 1 {
		pb.env.cue(audio.CueBurst)
	}
	local := pixelBurstPhases[i].Local(t.Progress)
	w, h := pb.env.Width, pb.env.Height
	c := pb.env.Center()

	switch i {
	case 0:
		s.FillRect(0, 0, w, h, colorBlack)
		r := 5 + local*15 + math.Sin(t.Ms()/100)*3
		s.FillCircle(c.X, c.Y, math.Max(0, r), colorWhite.WithAlpha(0.5+0.5*math.Sin(t.Ms()/80)))

	case 1:
		s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.15))
		for j := range pb.pixels {
			p := &pb.pixels[j]
			p.pos = vmath.V2Add(p.pos, vmath.V2Scale(p.vel, t.Dt))
			p.vel.Y += parameter.BurstGravity * t.Dt
			pb.draw(s, p, 1)
		}

	default:
		s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.1))
		drag := vmath.Decay(parameter.BurstDrag, t.Dt)
		alpha := vmath.Clamp01(1 - local)
		for j := range pb.pixels {
			p := &pb.pixels[j]
			p.vel = vmath.V2Scale(p.vel, drag)
			p.pos = vmath.V2Add(p.pos, vmath.V2Scale(p.vel, t.Dt))
			pb.draw(s, p, alpha)
		}
	}
}

func (pb *pixelBurst) draw(s render.Surface, p *burstPixel, alpha float64) {
	s.FillRect(p.pos.X-p.size/2, p.pos.Y-p.size/2, p.size, p.size, p.color.WithAlpha(alpha))
}
