package internal

import "math"

// Twice the signed area of the triangle (a, b, p). Positive when p is to the
// left of the directed line a→b in a y-up frame.
func Cross(a, b, p *Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func Distance(a, b *Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
