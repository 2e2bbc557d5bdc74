package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var heartbeatPhases = engine.PhaseTable{
	{Name: "beat", From: 0, To: 0.7},
	{Name: "flatline", From: 0.7, To: 0.8},
	{Name: "recover", From: 0.8, To: 0.9},
	{Name: "fade", From: 0.9, To: 1},
}

var (
	ekgGreen = render.MustHex("#00ff88")
	ekgAmber = render.MustHex("#FFBA00")
)

// ekgOffset returns the trace's upward displacement at one sample of the 80-sample cycle
func ekgOffset(sample int) float64 {
	a := parameter.HeartbeatAmplitude
	c := float64(sample % parameter.HeartbeatCycleSamples)
	switch {
	case c < 35:
		return 0
	case c < 38:
		return (c - 35) / 3 * a * 1.2
	case c < 40:
		return a*1.2 - (c-38)/2*a*0.4
	case c < 43:
		return a*0.8 - (c-40)/3*a*1.5
	case c < 60:
		return -a * 0.7 * math.Exp(-(c-43)*0.4)
	default:
		return 0
	}
}

// heartbeatMonitor scrolls a circular sample buffer one column per sample right to left
type heartbeatMonitor struct {
	env     Env
	midY    float64
	samples []float64
	head    int // next write slot, also the oldest sample
	written int // samples emitted so far
	watch   phaseWatch
}

func newHeartbeatMonitor(env Env) Effect {
	n := max(1, int(env.Width))
	hm := &heartbeatMonitor{env: env, midY: env.Height / 2, samples: make([]float64, n)}
	for i := range hm.samples {
		hm.samples[i] = hm.midY
	}
	return hm
}

// sampleY returns the trace height for sample n under phase i
func (hm *heartbeatMonitor) sampleY(n, i int) float64 {
	switch i {
	case 1:
		return hm.midY
	case 2:
		if n%parameter.HeartbeatCycleSamples < 5 {
			return hm.midY - parameter.HeartbeatAmplitude*1.5
		}
	}
	return hm.midY - ekgOffset(n)
}

func (hm *heartbeatMonitor) Frame(t engine.Timing, s render.Surface) {
	i, entered := hm.watch.enter(heartbeatPhases, t.Progress)
	w, h := hm.env.Width, hm.env.Height
	if entered && i == 1 {
		hm.env.cue(audio.CueFlatline)
	}

	// Samples advance with elapsed time rather than frame count
	due := int(t.Elapsed.Seconds() * parameter.HeartbeatSampleRate)
	for ; hm.written <= due; hm.written++ {
		if hm.written%parameter.HeartbeatCycleSamples == 38 && i != 1 {
			hm.env.cue(audio.CueBeat)
		}
		hm.samples[hm.head] = hm.sampleY(hm.written, i)
		hm.head = (hm.head + 1) % len(hm.samples)
	}

	lineColor, bpm := ekgGreen, "64 BPM"
	flat := i == 1
	if flat {
		lineColor, bpm = ekgAmber, "0 BPM"
	}

	s.FillRect(0, 0, w, h, colorBlack)

	n := len(hm.samples)
	prev := hm.traceY(0, flat)
	for x := 1; x < n; x++ {
		y := hm.traceY(x, flat)
		s.Line(float64(x-1), prev, float64(x), y, 2, lineColor)
		prev = y
	}

	if flat {
		s.Text(w/2, hm.midY-20, "- - - - -", 16, render.AlignCenter, ekgAmber)
	}
	s.Text(10, 20, "♥ "+bpm, 12, render.AlignLeft, lineColor)

	dot := ekgGreen.WithAlpha(0.2)
	if vmath.Blink(t.Ms(), parameter.HeartbeatLiveBlinkMs) {
		dot = ekgGreen
	}
	s.FillCircle(w-30, 14, 5, dot)
	s.Text(w-38, 18, "LIVE", 10, render.AlignRight, ekgGreen)

	if i == 3 {
		s.FillRect(0, 0, w, h, colorBlack.WithAlpha(heartbeatPhases[i].Local(t.Progress)))
	}
}

// traceY returns the buffered sample shown at column x, oldest on the left
// During a flatline every column but the newest few is pinned to the baseline
func (hm *heartbeatMonitor) traceY(x int, flat bool) float64 {
	n := len(hm.samples)
	if flat && x < n-5 {
		return hm.midY
	}
	return hm.samples[(hm.head+x)%n]
}
