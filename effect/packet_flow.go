package effect

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var packetPhases = engine.PhaseTable{
	{Name: "handshake", From: 0, To: 0.25},
	{Name: "stream", From: 0.25, To: 0.7},
	{Name: "reset", From: 0.7, To: 1},
}

type handshakePacket struct {
	label string
	start float64 // local handshake progress at launch
	dir   float64
}

var handshake = []handshakePacket{
	{label: "SYN", start: 0, dir: 1},
	{label: "SYN-ACK", start: 0.08, dir: -1},
	{label: "ACK", start: 0.16, dir: 1},
}

var (
	packetReturn     = render.MustHex("#00ff88")
	packetRemote     = render.MustHex("#0055ff")
	packetNodeDim    = render.RGBA(0, 40, 80, 0.5)
	packetNodeLocal  = render.RGBA(0, 60, 80, 0.8)
	packetNodeRemote = render.RGBA(0, 20, 80, 0.8)
	packetRimDim     = render.RGBA(100, 100, 100, 0.4)
	packetLabelDim   = render.RGBA(150, 150, 150, 0.5)
	packetBroken     = render.RGBA(255, 50, 50, 0.6)
)

type packetFlow struct {
	env    Env
	left   float64
	right  float64
	midY   float64
	hexes  []string
	rstX   float64
	broken bool
	watch  phaseWatch
}

func newPacketFlow(env Env) Effect {
	pf := &packetFlow{
		env:   env,
		left:  env.Width * 0.1,
		right: env.Width * 0.9,
		midY:  env.Height / 2,
		hexes: make([]string, parameter.PacketHexPool),
	}
	for i := range pf.hexes {
		pf.hexes[i] = fmt.Sprintf("0x%04X", env.Rand.Intn(0xFFFF))
	}
	return pf
}

func (pf *packetFlow) Frame(t engine.Timing, s render.Surface) {
	i, entered := pf.watch.enter(packetPhases, t.Progress)
	local := packetPhases[i].Local(t.Progress)
	w, h := pf.env.Width, pf.env.Height
	lx, rx := pf.left+parameter.PacketPortInset, pf.right-parameter.PacketPortInset

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.3))

	switch i {
	case 0:
		if entered {
			pf.env.cue(audio.CueBeat)
		}
		pf.dashed(s, pf.left+20, pf.right-20, colorCyan.WithAlpha(0.5))
		pf.nodes(s, false)

		for _, pkt := range handshake {
			frac := vmath.Clamp01((local - pkt.start) / 0.08)
			if frac <= 0 {
				continue
			}
			from, to := lx, rx
			if pkt.dir < 0 {
				from, to = rx, lx
			}
			px := vmath.Lerp(from, to, frac)
			s.FillRect(px-4, pf.midY-2, 8, 4, colorCyan)
			s.Text(px, pf.midY-8, pkt.label, 9, render.AlignCenter, colorCyan)
		}

	case 1:
		if entered {
			pf.env.cue(audio.CueChime)
		}
		render.Glow(s, (pf.left+pf.right)/2, pf.midY, 8, colorCyan.WithAlpha(0.2))
		s.Line(pf.left+20, pf.midY, pf.right-20, pf.midY, 2, colorCyan.WithAlpha(0.6))
		pf.nodes(s, false)
		pf.stream(s, t)

	default:
		if entered {
			pf.rstX = rx
			pf.env.cue(audio.CueError)
		}
		pf.rstX = math.Max(lx, pf.rstX-parameter.PacketResetSpeed*t.Dt)

		if !pf.broken {
			s.Line(pf.left+20, pf.midY, pf.right-20, pf.midY, 1.5, colorCyan.WithAlpha(0.4))
		} else {
			gap := pf.left + 40
			s.Line(pf.left+20, pf.midY-3, gap-10, pf.midY+3, 2, packetBroken)
			s.Line(gap+10, pf.midY-3, pf.right-20, pf.midY+3, 2, packetBroken)
		}

		s.FillRect(pf.rstX-8, pf.midY-4, 16, 8, colorRed)
		s.Text(pf.rstX, pf.midY-8, "RST", 9, render.AlignCenter, colorWhite)

		if pf.rstX <= pf.left+25 {
			if !pf.broken {
				pf.broken = true
				pf.env.cue(audio.CueBurst)
			}
			s.FillRect(0, 0, w, h, colorRed.WithAlpha(0.3*(1-local)))
		}
		pf.nodes(s, pf.broken)

		if local > 0.7 {
			s.FillRect(0, 0, w, h, colorBlack.WithAlpha((local-0.7)/0.3))
		}
	}
}

// stream draws one packet per interval in each direction, positioned by time since the stream opened
func (pf *packetFlow) stream(s render.Surface, t engine.Timing) {
	lx, rx := pf.left+parameter.PacketPortInset, pf.right-parameter.PacketPortInset
	span := rx - lx
	since := t.Elapsed - time.Duration(float64(t.Duration)*packetPhases[1].From)
	transit := time.Duration(float64(t.Duration) * (packetPhases[1].To - packetPhases[1].From))
	if transit <= 0 {
		return
	}

	for k, at := 0, time.Duration(0); at < since; k, at = k+1, at+parameter.PacketInterval {
		frac := float64(since-at) / float64(transit)
		if frac < 0 || frac > 1 {
			continue
		}

		x := lx + frac*span
		if x < rx {
			s.FillRect(x-3, pf.midY-4, 6, 4, colorCyan)
			s.Text(x, pf.midY-8, pf.hexes[k%len(pf.hexes)], 8, render.AlignCenter, colorCyan.WithAlpha(0.6))
		}

		back := float64((since-at+parameter.PacketInterval/2)%transit) / float64(transit)
		x = rx - back*span
		if x > lx {
			s.FillRect(x-3, pf.midY+2, 6, 4, packetReturn)
			label := fmt.Sprintf("0x%02X", (k*2*37)%256)
			s.Text(x, pf.midY+14, label, 8, render.AlignCenter, packetReturn.WithAlpha(0.6))
		}
	}
}

func (pf *packetFlow) dashed(s render.Surface, x0, x1 float64, c render.Color) {
	for x := x0; x < x1; x += 10 {
		s.Line(x, pf.midY, math.Min(x+5, x1), pf.midY, 1.5, c)
	}
}

func (pf *packetFlow) nodes(s render.Surface, dim bool) {
	pf.node(s, pf.left, "You", "Y", colorCyan, packetNodeLocal, dim)
	pf.node(s, pf.right, "Meta Corp", "M", packetRemote, packetNodeRemote, dim)
}

func (pf *packetFlow) node(s render.Surface, x float64, label, initial string, rim, fill render.Color, dim bool) {
	text := rim
	if dim {
		fill, rim, text = packetNodeDim, packetRimDim, packetLabelDim
	}
	r := parameter.PacketNodeRadius
	s.FillCircle(x, pf.midY, r, fill)
	s.StrokeCircle(x, pf.midY, r, 2, rim)
	s.Text(x, pf.midY+4, initial, 10, render.AlignCenter, text)
	s.Text(x, pf.midY+34, label, 9, render.AlignCenter, text)
}
