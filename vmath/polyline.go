package vmath

// Polyline is an ordered list of waypoints with cumulative segment lengths
// Used for traversal by distance fraction along the whole path
type Polyline struct {
	Points []Vec2
	cum    []float64 // cum[i] is distance from Points[0] to Points[i]
	total  float64
}

// NewPolyline precomputes cumulative lengths, points slice is retained
func NewPolyline(points []Vec2) Polyline {
	cum := make([]float64, len(points))
	var acc float64
	for i := 1; i < len(points); i++ {
		acc += V2Dist(points[i-1], points[i])
		cum[i] = acc
	}
	return Polyline{Points: points, cum: cum, total: acc}
}

// Length returns total path length
func (p Polyline) Length() float64 {
	return p.total
}

// At returns the point at fraction frac of total length, frac clamped to [0, 1]
func (p Polyline) At(frac float64) Vec2 {
	switch len(p.Points) {
	case 0:
		return Vec2{}
	case 1:
		return p.Points[0]
	}
	target := Clamp01(frac) * p.total
	for i := 1; i < len(p.Points); i++ {
		if p.cum[i] >= target {
			seg := p.cum[i] - p.cum[i-1]
			if seg == 0 {
				return p.Points[i]
			}
			return V2Lerp(p.Points[i-1], p.Points[i], (target-p.cum[i-1])/seg)
		}
	}
	return p.Points[len(p.Points)-1]
}

// Prefix returns the vertices of the sub-path covering fraction frac of the length
// Last vertex is interpolated, result always holds at least the first point
func (p Polyline) Prefix(frac float64, dst []Vec2) []Vec2 {
	dst = dst[:0]
	if len(p.Points) == 0 {
		return dst
	}
	dst = append(dst, p.Points[0])
	target := Clamp01(frac) * p.total
	for i := 1; i < len(p.Points); i++ {
		if p.cum[i] >= target {
			seg := p.cum[i] - p.cum[i-1]
			if seg > 0 && target > p.cum[i-1] {
				dst = append(dst, V2Lerp(p.Points[i-1], p.Points[i], (target-p.cum[i-1])/seg))
			}
			return dst
		}
		dst = append(dst, p.Points[i])
	}
	return dst
}
