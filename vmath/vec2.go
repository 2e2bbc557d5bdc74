package vmath

import "math"

// Vec2 is a float64 2D vector in surface pixel space
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

func V2Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// V2Lerp interpolates a→b by t, t is not clamped
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2Approach moves cur toward target by fraction k applied over dt frames
// Frame-rate independent form of cur += (target-cur)*k
func V2Approach(cur, target Vec2, k, dt float64) Vec2 {
	keep := Decay(1-Clamp01(k), dt)
	return V2Lerp(target, cur, keep)
}

// V2Polar returns a vector of length r at angle theta radians
func V2Polar(r, theta float64) Vec2 {
	return Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}
