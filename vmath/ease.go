package vmath

import "math"

// EaseOutCubic decelerates toward 1, input clamped to [0, 1]
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseInCubic accelerates from 0, input clamped to [0, 1]
func EaseInCubic(t float64) float64 {
	t = Clamp01(t)
	return t * t * t
}

// Arch rises 0→1→0 over t in [0, 1] as a half sine
func Arch(t float64) float64 {
	return math.Sin(Clamp01(t) * math.Pi)
}

// Triangle rises linearly to 1 at peak then falls back to 0 at t=1
func Triangle(t, peak float64) float64 {
	t = Clamp01(t)
	if peak <= 0 {
		return 1 - t
	}
	if peak >= 1 {
		return t
	}
	if t < peak {
		return t / peak
	}
	return 1 - (t-peak)/(1-peak)
}

// Oscillate maps sin(elapsedMs/periodMs + phase) into [0, 1]
func Oscillate(elapsedMs, periodMs, phase float64) float64 {
	return 0.5 + 0.5*math.Sin(elapsedMs/periodMs+phase)
}
