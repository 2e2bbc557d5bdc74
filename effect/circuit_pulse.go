package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var circuitPhases = engine.PhaseTable{
	{Name: "trace", From: 0, To: 0.4},
	{Name: "pulse", From: 0.4, To: 0.8},
	{Name: "flash", From: 0.8, To: 1},
}

// circuitTrace is a right-angled path from the center with a pulse phase offset
type circuitTrace struct {
	path   vmath.Polyline
	offset float64
}

type circuitPulse struct {
	env    Env
	traces []circuitTrace
	scr    []vmath.Vec2
	watch  phaseWatch
}

func newCircuitPulse(env Env) Effect {
	cp := &circuitPulse{env: env, traces: make([]circuitTrace, parameter.CircuitTraceCount)}
	margin := parameter.CircuitMargin
	for i := range cp.traces {
		cur := env.Center()
		points := []vmath.Vec2{cur}
		segs := parameter.CircuitMinSegments + env.Rand.Intn(parameter.CircuitExtraSegments+1)
		for j := 0; j < segs; j++ {
			length := env.Range(parameter.CircuitSegMin, parameter.CircuitSegMax)
			if env.Rand.Float64() < 0.5 {
				length = -length
			}
			if env.Rand.Float64() < 0.5 {
				cur.X += length
			} else {
				cur.Y += length
			}
			cur.X = vmath.Clamp(cur.X, margin, env.Width-margin)
			cur.Y = vmath.Clamp(cur.Y, margin, env.Height-margin)
			points = append(points, cur)
		}
		cp.traces[i] = circuitTrace{path: vmath.NewPolyline(points), offset: env.Rand.Float64()}
	}
	return cp
}

func (cp *circuitPulse) Frame(t engine.Timing, s render.Surface) {
	i, entered := cp.watch.enter(circuitPhases, t.Progress)
	if entered && i == 2 {
		cp.env.cue(audio.CueChime)
	}
	local := circuitPhases[i].Local(t.Progress)
	w, h := cp.env.Width, cp.env.Height

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.2))

	switch i {
	case 0:
		for j := range cp.traces {
			cp.drawTrace(s, &cp.traces[j], local, 1.5, colorCyan.WithAlpha(0.4))
		}

	case 1:
		for j := range cp.traces {
			tr := &cp.traces[j]
			cp.drawTrace(s, tr, 1, 1.5, colorCyan.WithAlpha(0.4))
			for k := 0; k < parameter.CircuitPulsesPerTrace; k++ {
				frac := vmath.Frac(local + tr.offset + float64(k)*0.33)
				p := tr.path.At(frac)
				s.FillCircle(p.X, p.Y, 3, colorWhite.WithAlpha(0.9))
				s.FillCircle(p.X, p.Y, 6, colorCyan.WithAlpha(0.3))
			}
		}

	default:
		for j := range cp.traces {
			cp.drawTrace(s, &cp.traces[j], 1, 1, colorCyan.WithAlpha(0.3))
		}
		c := cp.env.Center()
		render.RadialGradient(s, c.X, c.Y, 0, cp.env.MinSide()/2, []render.Stop{
			{At: 0, Color: colorWhite.WithAlpha(local * 0.8)},
			{At: 0.5, Color: colorCyan.WithAlpha(local * 0.3)},
			{At: 1, Color: colorBlack.WithAlpha(0)},
		})
		s.FillRect(0, 0, w, h, colorBlack.WithAlpha(local))
	}
}

// drawTrace strokes the first frac of a trace's length
func (cp *circuitPulse) drawTrace(s render.Surface, tr *circuitTrace, frac, width float64, c render.Color) {
	cp.scr = tr.path.Prefix(frac, cp.scr)
	for k := 1; k < len(cp.scr); k++ {
		a, b := cp.scr[k-1], cp.scr[k]
		s.Line(a.X, a.Y, b.X, b.Y, math.Max(width, 0), c)
	}
}
