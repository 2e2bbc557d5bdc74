package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1], NaN maps to 0
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates a→b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InvLerp returns the position of v within [a, b] as a fraction, zero-width range returns 0
func InvLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Decay converts a per-frame multiplier into one applied over dt frames
// Decay(0.97, 1) == 0.97, Decay(0.97, 2) == 0.97*0.97
func Decay(factor, dt float64) float64 {
	if dt == 1 {
		return factor
	}
	return math.Pow(factor, dt)
}

// Wrap maps v into [lo, hi) with modular arithmetic
func Wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	v = math.Mod(v-lo, span)
	if v < 0 {
		v += span
	}
	return v + lo
}

// Frac returns the fractional part of a non-negative v
func Frac(v float64) float64 {
	return v - math.Floor(v)
}

// Blink alternates every periodMs, starting on
func Blink(elapsedMs, periodMs float64) bool {
	if periodMs <= 0 {
		return true
	}
	return int64(elapsedMs/periodMs)%2 == 0
}
