package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vec2 is a 2D world-space point or vector.
type Vec2 = r2.Point

// V is shorthand for building a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle creates a vector from an angle (radians) and magnitude.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// ClampLength rescales v to max if it is longer, keeping its direction.
func ClampLength(v Vec2, max float64) Vec2 {
	length := v.Norm()
	if length <= max || length == 0 {
		return v
	}
	return v.Mul(max / length)
}

// ProjectOut returns p moved along origin→p so it lies at least minDist from
// origin. Points already far enough are returned unchanged. A point that
// coincides with origin is pushed along +X.
func ProjectOut(p, origin Vec2, minDist float64) Vec2 {
	d := p.Sub(origin)
	dist := d.Norm()
	if dist >= minDist {
		return p
	}
	if dist == 0 {
		return origin.Add(Vec2{X: minDist})
	}
	return origin.Add(d.Mul(minDist / dist))
}
