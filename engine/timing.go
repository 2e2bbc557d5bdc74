package engine

import (
	"time"

	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/vmath"
)

// Timing is the per-frame view of a session's progress
type Timing struct {
	Elapsed  time.Duration
	Duration time.Duration

	// Progress is Elapsed/Duration, unclamped above 1 only on the terminal frame
	Progress float64

	// Dt is the time since the previous frame in reference frames (1.0 at 60 fps)
	// Per-frame velocities and decay factors are scaled by it
	Dt float64

	// Frame counts rendered frames starting at 0
	Frame int
}

// NewTiming derives progress from elapsed time, a non-positive duration reports complete
func NewTiming(elapsed, duration time.Duration) Timing {
	t := Timing{Elapsed: elapsed, Duration: duration, Dt: 1}
	if duration <= 0 {
		t.Progress = 1
		return t
	}
	t.Progress = float64(elapsed) / float64(duration)
	return t
}

// Ms returns elapsed time in milliseconds
func (t Timing) Ms() float64 {
	return float64(t.Elapsed) / float64(time.Millisecond)
}

// Local renormalizes progress into [0, 1] over the window [from, to)
func (t Timing) Local(from, to float64) float64 {
	if to <= from {
		if t.Progress >= to {
			return 1
		}
		return 0
	}
	return vmath.Clamp01((t.Progress - from) / (to - from))
}

// Complete reports whether the session has reached its duration
func (t Timing) Complete() bool {
	return t.Progress >= 1
}

// frameDelta converts a wall-clock delta into reference frames, clamped so a stalled
// loop does not teleport particles
func frameDelta(d time.Duration) float64 {
	return vmath.Clamp(float64(d)/float64(parameter.ReferenceFrame), 0, parameter.MaxFrameDelta)
}
