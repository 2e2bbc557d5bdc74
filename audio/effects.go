package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cyberfx/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain onto beep's logarithmic volume, 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// createBeat is a low sine thump with a faint overtone
func createBeat(rate beep.SampleRate) beep.Streamer {
	d := parameter.BeatCueDuration
	fund := NewSweep(parameter.BeatCueFreq*1.5, parameter.BeatCueFreq, d, WaveSine, rate)
	over := NewOscillator(parameter.BeatCueFreq*2, d, WaveSine, rate)
	return beep.Mix(
		newVolume(NewEnvelope(fund, d, parameter.BeatCueAttack, parameter.BeatCueRelease, rate), 0.8),
		newVolume(NewEnvelope(over, d, parameter.BeatCueAttack, parameter.BeatCueRelease/2, rate), 0.2),
	)
}

// createBurst is shaped noise over a falling square sweep
func createBurst(rate beep.SampleRate) beep.Streamer {
	d := parameter.BurstCueDuration
	noise := NewOscillator(0, d, WaveNoise, rate)
	body := NewSweep(180, 40, d, WaveSquare, rate)
	return beep.Mix(
		newVolume(NewEnvelope(noise, d, parameter.BurstCueAttack, parameter.BurstCueRelease, rate), 0.6),
		newVolume(NewEnvelope(body, d, parameter.BurstCueAttack, parameter.BurstCueRelease, rate), 0.3),
	)
}

// createError is a short harsh saw buzz
func createError(rate beep.SampleRate) beep.Streamer {
	d := parameter.ErrorCueDuration
	osc := NewOscillator(parameter.ErrorCueFreq, d, WaveSaw, rate)
	return NewEnvelope(osc, d, parameter.ErrorCueAttack, parameter.ErrorCueRelease, rate)
}

// createChime is a rising two-note square chime
func createChime(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, parameter.ChimeNote1Duration, WaveSquare, rate)
	n2 := NewOscillator(1318.51, parameter.ChimeNote2Duration, WaveSquare, rate)
	return newVolume(beep.Seq(
		NewEnvelope(n1, parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate),
		NewEnvelope(n2, parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate),
	), 0.5)
}

// createFlatline is a steady monitor tone
func createFlatline(rate beep.SampleRate) beep.Streamer {
	d := parameter.FlatlineCueDuration
	osc := NewOscillator(parameter.FlatlineCueFreq, d, WaveSine, rate)
	return newVolume(NewEnvelope(osc, d, parameter.FlatlineCueAttack, parameter.FlatlineCueRelease, rate), 0.4)
}

// CueStreamer builds the streamer for c scaled by the master volume
func CueStreamer(c Cue, cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueBeat:
		s = createBeat(rate)
	case CueBurst:
		s = createBurst(rate)
	case CueError:
		s = createError(rate)
	case CueChime:
		s = createChime(rate)
	case CueFlatline:
		s = createFlatline(rate)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, int(c))
	}
	return newVolume(s, cfg.MasterVolume), nil
}
