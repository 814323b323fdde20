// Package physics provides the point-mass bodies, integration and circle
// collision routines used by the asteroid field.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Norm()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(p, center Vec2, radius float64) bool {
	return DistanceSquared(p, center) <= radius*radius
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) < minDist*minDist
}

// finite reports whether v has no NaN or infinite component.
func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
