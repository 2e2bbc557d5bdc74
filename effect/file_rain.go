package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var fileRainPhases = engine.PhaseTable{
	{Name: "fall", From: 0, To: 0.45},
	{Name: "freeze", From: 0.45, To: 0.55},
	{Name: "rise", From: 0.55, To: 1},
}

var filePaths = []string{
	"/bin/sh", "/usr/bin/python", "/etc/passwd",
	"/home/guest/cybercity/experience/meta.json",
	"/home/guest/cybercity/projects/",
	"/home/guest/cybercity/skills/",
	"/static/resume.pdf",
	"/usr/lib/node_modules/",
	"/home/guest/cybercity/education/",
	"/var/log/system.log",
}

var (
	fileRainBg     = render.RGBA(10, 14, 39, 0.85)
	fileRainBgRise = render.RGBA(10, 14, 39, 0.9)
	fileRainRise   = render.MustHex("#00ff88")
)

// fallingPath is a deleted file path; paths that fall off the bottom during the fall
// phase re-enter from the top at a new column
type fallingPath struct {
	text   string
	pos    vmath.Vec2
	vy     float64
	alpha  float64
	frozen bool
}

type fileRain struct {
	env   Env
	paths []fallingPath
	watch phaseWatch
}

func newFileRain(env Env) Effect {
	fr := &fileRain{env: env, paths: make([]fallingPath, parameter.FileRainCount)}
	for i := range fr.paths {
		fr.paths[i] = fallingPath{
			text: filePaths[env.Rand.Intn(len(filePaths))],
			pos:  vmath.V2(env.Rand.Float64()*env.Width, -env.Rand.Float64()*200),
			vy:   env.Range(parameter.FileRainFallMin, parameter.FileRainFallMax),
		}
	}
	return fr
}

func (fr *fileRain) Frame(t engine.Timing, s render.Surface) {
	i, entered := fr.watch.enter(fileRainPhases, t.Progress)
	local := fileRainPhases[i].Local(t.Progress)
	w, h := fr.env.Width, fr.env.Height

	bg := fileRainBg
	if i == 2 {
		bg = fileRainBgRise
	}
	s.FillRect(0, 0, w, h, bg)

	switch i {
	case 0:
		for j := range fr.paths {
			p := &fr.paths[j]
			p.pos.Y += p.vy * t.Dt
			if p.pos.Y > h+parameter.FileRainFontPx {
				p.pos = vmath.V2(fr.env.Rand.Float64()*w, -fr.env.Rand.Float64()*60)
			}
			p.alpha = math.Min(1, p.alpha+0.05*t.Dt)
			s.Text(p.pos.X, p.pos.Y, p.text, parameter.FileRainFontPx, render.AlignLeft, colorRed.WithAlpha(0.9*p.alpha))
		}

		ms := fr.env.MinSide()
		render.RadialGradient(s, w/2, h/2, ms*0.3*(1-local*0.5), ms, []render.Stop{
			{At: 0, Color: colorBlack.WithAlpha(0)},
			{At: 0.6, Color: render.RGBA(100, 0, 0, 0.1*local)},
			{At: 1, Color: render.RGBA(180, 0, 0, 0.4*local)},
		})

	case 1:
		if entered {
			for j := range fr.paths {
				fr.paths[j].frozen = true
			}
			fr.env.cue(audio.CueBurst)
		}
		for j := range fr.paths {
			p := &fr.paths[j]
			s.Text(p.pos.X, p.pos.Y, p.text, parameter.FileRainFontPx, render.AlignLeft, colorWhite.WithAlpha(p.alpha))
		}
		s.FillRect(0, 0, w, h, colorWhite.WithAlpha(vmath.Triangle(local, 0.5)))

	default:
		accel := vmath.Decay(parameter.FileRainRiseAccel, t.Dt)
		for j := range fr.paths {
			p := &fr.paths[j]
			if p.frozen || p.vy > 0 {
				p.frozen = false
				p.vy = -p.vy * 1.5
			}
			p.pos.Y += p.vy * t.Dt
			p.vy *= accel
			if p.pos.Y > 0 {
				p.alpha = math.Min(1, p.alpha)
			} else {
				p.alpha = math.Max(0, p.alpha-0.05*t.Dt)
			}
			s.Text(p.pos.X, p.pos.Y, p.text, parameter.FileRainFontPx, render.AlignLeft, fileRainRise.WithAlpha(p.alpha))
		}
	}
}
