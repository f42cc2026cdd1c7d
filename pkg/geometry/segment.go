package geometry

import "math"

// SegmentDistance returns the shortest distance from p to the segment a-b.
func SegmentDistance(p, a, b Point2D) float64 {
	lenSq := distSq(a, b)
	if lenSq == 0 {
		return p.Distance(a)
	}

	// Project p onto the segment, clamping to the endpoints
	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := Point2D{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	return p.Distance(closest)
}

// distSq computes the squared distance between two points.
func distSq(a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
