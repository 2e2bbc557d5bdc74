package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var networkPhases = engine.PhaseTable{
	{Name: "reveal", From: 0, To: 0.2},
	{Name: "hops", From: 0.2, To: 0.9},
	{Name: "arrive", From: 0.9, To: 1},
}

var hopLabels = []string{"gateway", "seattle-core", "pacific-spine", "neon-district", "rain-relay", "HOME ●"}

type hopNode struct {
	pos   vmath.Vec2
	label string
}

type networkPulse struct {
	env     Env
	nodes   []hopNode
	lastHop int
	watch   phaseWatch
}

func newNetworkPulse(env Env) Effect {
	np := &networkPulse{env: env, nodes: make([]hopNode, len(hopLabels)), lastHop: -1}
	step := env.Width * 0.8 / float64(len(hopLabels)-1)
	for i, label := range hopLabels {
		np.nodes[i] = hopNode{
			pos:   vmath.V2(env.Width*0.1+float64(i)*step, env.Height*0.4+math.Sin(float64(i)*1.1)*env.Height*0.12),
			label: label,
		}
	}
	return np
}

// hop returns the current hop index and the fraction travelled toward the next node
// Hops advance on raw elapsed time from the start of the hops phase
func (np *networkPulse) hop(t engine.Timing) (int, float64) {
	start := time.Duration(float64(t.Duration) * networkPhases[1].From)
	travel := t.Elapsed - start
	if travel < 0 {
		return 0, 0
	}
	n := int(travel / parameter.NetworkHopTime)
	frac := float64(travel%parameter.NetworkHopTime) / float64(parameter.NetworkHopTime)
	return n, frac
}

func (np *networkPulse) Frame(t engine.Timing, s render.Surface) {
	i, entered := np.watch.enter(networkPhases, t.Progress)
	if entered && i == 2 {
		np.env.cue(audio.CueChime)
	}
	local := networkPhases[i].Local(t.Progress)
	w, h := np.env.Width, np.env.Height
	last := len(np.nodes) - 1

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.25))

	switch i {
	case 0:
		np.links(s, -1, colorWhite.WithAlpha(0.15*local))
		for j, n := range np.nodes {
			fade := vmath.Clamp01(local*float64(len(np.nodes)) - float64(j))
			if fade <= 0 {
				continue
			}
			s.FillCircle(n.pos.X, n.pos.Y, parameter.NetworkNodeRadius, render.RGBA(0, 80, 90, fade))
			s.StrokeCircle(n.pos.X, n.pos.Y, parameter.NetworkNodeRadius, 1.5, colorCyan.WithAlpha(0.5*fade))
			np.label(s, n, colorCyan.WithAlpha(0.7*fade))
		}

	case 1:
		cur, frac := np.hop(t)
		if cur != np.lastHop && cur <= last {
			np.lastHop = cur
			np.env.cue(audio.CueBeat)
		}
		np.links(s, cur, colorWhite.WithAlpha(0.15))

		ring := vmath.Frac(t.Ms() / 500)
		for j, n := range np.nodes {
			active := j <= cur
			fill, stroke, text := render.RGBA(0, 40, 50, 0.8), colorCyan.WithAlpha(0.3), colorCyan.WithAlpha(0.4)
			if active {
				fill, stroke, text = colorCyan.WithAlpha(0.3), colorCyan, colorCyan
			}
			s.FillCircle(n.pos.X, n.pos.Y, parameter.NetworkNodeRadius, fill)
			s.StrokeCircle(n.pos.X, n.pos.Y, parameter.NetworkNodeRadius, 2, stroke)
			if active {
				s.StrokeCircle(n.pos.X, n.pos.Y, parameter.NetworkNodeRadius+15*ring, 2, colorCyan.WithAlpha((1-ring)*0.5))
			}
			np.label(s, n, text)
		}

		if cur < last {
			dot := vmath.V2Lerp(np.nodes[cur].pos, np.nodes[cur+1].pos, frac)
			s.FillCircle(dot.X, dot.Y, 5, colorWhite)
			s.FillCircle(dot.X, dot.Y, 10, colorWhite.WithAlpha(0.2))
		}

	default:
		np.links(s, len(np.nodes), colorCyan.WithAlpha(0.8))
		pulse := math.Abs(math.Sin(local * math.Pi * 6))
		for j, n := range np.nodes {
			r, fill := parameter.NetworkNodeRadius, colorCyan.WithAlpha(0.2)
			if j == last {
				r, fill = parameter.NetworkNodeRadius+pulse*8, colorCyan.WithAlpha(0.6)
			}
			s.FillCircle(n.pos.X, n.pos.Y, r, fill)
			s.StrokeCircle(n.pos.X, n.pos.Y, r, 2, colorCyan)
			np.label(s, n, colorCyan)
		}
		s.FillRect(0, 0, w, h, colorBlack.WithAlpha(local))
	}
}

// links draws the connections, the first traversed ones highlighted
func (np *networkPulse) links(s render.Surface, traversed int, idle render.Color) {
	for j := 0; j < len(np.nodes)-1; j++ {
		a, b := np.nodes[j].pos, np.nodes[j+1].pos
		if j < traversed {
			s.Line(a.X, a.Y, b.X, b.Y, 2, colorCyan.WithAlpha(0.7))
			continue
		}
		s.Line(a.X, a.Y, b.X, b.Y, 1, idle)
	}
}

func (np *networkPulse) label(s render.Surface, n hopNode, c render.Color) {
	s.Text(n.pos.X, n.pos.Y+24, n.label, 10, render.AlignCenter, c)
}
