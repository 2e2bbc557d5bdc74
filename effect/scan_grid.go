package effect

import (
	"fmt"
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var scanGridPhases = engine.PhaseTable{
	{Name: "scan", From: 0, To: 0.5},
	{Name: "alert", From: 0.5, To: 0.8},
	{Name: "lockdown", From: 0.8, To: 1},
}

const (
	honeypotText = "HONEYPOT DETECTED"
	loggingText  = "LOGGING ATTACKER..."
)

// hexLabel is a memory address flashing near the scan beam
// Values cycle through a pool drawn at construction
type hexLabel struct {
	pos  vmath.Vec2
	pool []string
	cur  int
	life float64
}

type scanGrid struct {
	env    Env
	labels []hexLabel
	watch  phaseWatch
}

func newScanGrid(env Env) Effect {
	sg := &scanGrid{env: env, labels: make([]hexLabel, parameter.ScanHexLabels)}
	cols := max(1, int(env.Width/parameter.ScanGridSpacing))
	rows := max(1, int(env.Height/parameter.ScanGridSpacing))
	for i := range sg.labels {
		l := &sg.labels[i]
		l.pos = vmath.V2(
			float64(env.Rand.Intn(cols))*parameter.ScanGridSpacing,
			float64(env.Rand.Intn(rows))*parameter.ScanGridSpacing,
		)
		l.pool = make([]string, parameter.ScanHexPool)
		for j := range l.pool {
			l.pool[j] = fmt.Sprintf("0x%04X", env.Rand.Intn(0xFFFF))
		}
		l.life = env.Rand.Float64()
	}
	return sg
}

func (sg *scanGrid) Frame(t engine.Timing, s render.Surface) {
	i, entered := sg.watch.enter(scanGridPhases, t.Progress)
	if entered && i == 1 {
		sg.env.cue(audio.CueError)
	}
	local := scanGridPhases[i].Local(t.Progress)
	w, h := sg.env.Width, sg.env.Height

	s.FillRect(0, 0, w, h, colorBlack)

	switch i {
	case 0:
		sg.grid(s, colorGreen.WithAlpha(0.3))

		beamY := local*(h+40) - 20
		sg.beam(s, beamY, colorGreen, 0.6)

		for j := range sg.labels {
			l := &sg.labels[j]
			dist := math.Abs(l.pos.Y - beamY)
			if dist >= parameter.ScanLabelRange {
				continue
			}
			l.life += 0.05 * t.Dt
			a := vmath.Clamp01(1 - dist/parameter.ScanLabelRange)
			s.Text(l.pos.X, l.pos.Y, l.pool[l.cur], 9, render.AlignLeft, colorGreen.WithAlpha(a*0.8))
			if l.life > 1 {
				l.cur = (l.cur + 1) % len(l.pool)
				l.life = 0
			}
		}

	case 1:
		flicker := vmath.Oscillate(t.Ms(), 20, 0)
		sg.grid(s, colorRed.WithAlpha(0.3+0.2*flicker))

		beamY := h - local*(h+40) + 20
		sg.beam(s, beamY, colorRed, 0.4+0.2*flicker)

		text := typed(honeypotText, local)
		render.Glow(s, w/2, h/2-8, parameter.ScanReticleRadius, colorRed.WithAlpha(0.25))
		s.Text(w/2, h/2, text, 24, render.AlignCenter, colorRed)

	default:
		inner := (1 - local) * sg.env.MinSide() * 0.7
		outer := sg.env.MinSide() * 1.5
		render.RadialGradient(s, w/2, h/2, inner, outer, []render.Stop{
			{At: 0, Color: colorBlack.WithAlpha(0)},
			{At: 0.5, Color: render.RGBA(100, 0, 0, 0.3+0.4*local)},
			{At: 1, Color: render.RGBA(150, 0, 0, 0.7+0.3*local)},
		})

		text := typed(loggingText, local*3)
		if vmath.Blink(t.Ms(), parameter.ScanCursorBlinkMs) {
			text += "█"
		}
		s.Text(w/2, h/2, text, 20, render.AlignCenter, colorRed.WithAlpha(1-local*0.5))

		if local > 0.8 {
			s.FillRect(0, 0, w, h, colorBlack.WithAlpha((local-0.8)/0.2))
		}
	}
}

func (sg *scanGrid) grid(s render.Surface, c render.Color) {
	w, h := sg.env.Width, sg.env.Height
	for x := 0.0; x < w; x += parameter.ScanGridSpacing {
		s.Line(x, 0, x, h, 1, c)
	}
	for y := 0.0; y < h; y += parameter.ScanGridSpacing {
		s.Line(0, y, w, y, 1, c)
	}
}

// beam draws a 40px horizontal band peaking at alpha in the middle
func (sg *scanGrid) beam(s render.Surface, y float64, c render.Color, alpha float64) {
	render.VerticalGradient(s, 0, y-20, sg.env.Width, 40, []render.Stop{
		{At: 0, Color: c.WithAlpha(0)},
		{At: 0.5, Color: c.WithAlpha(alpha)},
		{At: 1, Color: c.WithAlpha(0)},
	})
}
