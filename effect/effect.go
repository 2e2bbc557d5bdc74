// Package effect implements the procedural terminal animations and the dispatcher that starts them.
package effect

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

// Effect is one running animation's state
// Frame is called once per loop tick and must draw the whole frame
type Effect interface {
	Frame(t engine.Timing, s render.Surface)
}

// Env is what a constructor may read while seeding initial state
type Env struct {
	Width, Height float64
	Duration      time.Duration
	Rand          *rand.Rand
	Cues          audio.Cues
}

// Center returns the midpoint of the surface
func (e Env) Center() vmath.Vec2 {
	return vmath.V2(e.Width/2, e.Height/2)
}

// MinSide returns the shorter surface dimension
func (e Env) MinSide() float64 {
	return min(e.Width, e.Height)
}

// Range returns a uniform value in [lo, hi)
func (e Env) Range(lo, hi float64) float64 {
	return lo + e.Rand.Float64()*(hi-lo)
}

// Signed returns a uniform value in [-mag, mag)
func (e Env) Signed(mag float64) float64 {
	return (e.Rand.Float64()*2 - 1) * mag
}

// cue emits c when a sink is present
func (e Env) cue(c audio.Cue) {
	if e.Cues != nil {
		e.Cues.Play(c)
	}
}

// constructor seeds an effect's state once at start
type constructor func(env Env) Effect

// phaseWatch reports phase transitions so effects can fire one-shot work on entry
type phaseWatch struct {
	current int
	started bool
}

// enter returns the active phase index and whether it was entered this frame
func (w *phaseWatch) enter(pt engine.PhaseTable, progress float64) (int, bool) {
	i := pt.Index(progress)
	if !w.started || i != w.current {
		w.started = true
		w.current = i
		return i, true
	}
	return i, false
}

// typed returns the first n runes of s where n is frac of its length
func typed(s string, frac float64) string {
	r := []rune(s)
	n := int(vmath.Clamp01(frac) * float64(len(r)))
	return string(r[:n])
}
