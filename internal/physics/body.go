package physics

import (
	"fmt"
	"math"
)

// Body is a circular point mass. It represents the ship as well as every
// asteroid in the field.
type Body struct {
	Pos      Vec2    // World position (center), unbounded
	Vel      Vec2    // World units per tick
	Radius   float64 // Collision radius
	Mass     float64 // Asteroids use Radius² (area-proportional)
	MaxSpeed float64 // Hard cap on |Vel|, enforced every tick
}

// NewBody creates a body and validates its construction parameters.
// Invalid parameters are a programming error and cause a panic.
func NewBody(pos, vel Vec2, radius, mass, maxSpeed float64) Body {
	switch {
	case !(radius > 0) || math.IsInf(radius, 0):
		panic(fmt.Sprintf("physics: body radius must be positive and finite, got %v", radius))
	case !(mass > 0) || math.IsInf(mass, 0):
		panic(fmt.Sprintf("physics: body mass must be positive and finite, got %v", mass))
	case !(maxSpeed > 0):
		panic(fmt.Sprintf("physics: body max speed must be positive, got %v", maxSpeed))
	case !finite(pos):
		panic(fmt.Sprintf("physics: body position must be finite, got %v", pos))
	case !finite(vel):
		panic(fmt.Sprintf("physics: body velocity must be finite, got %v", vel))
	}
	return Body{
		Pos:      pos,
		Vel:      vel,
		Radius:   radius,
		Mass:     mass,
		MaxSpeed: maxSpeed,
	}
}

// AreaMass returns the mass of a body of the given radius.
func AreaMass(radius float64) float64 {
	return radius * radius
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Vel.Norm()
}

// Momentum returns Mass·Vel.
func (b Body) Momentum() Vec2 {
	return b.Vel.Mul(b.Mass)
}

// Overlaps reports whether two bodies interpenetrate.
func (b Body) Overlaps(o Body) bool {
	return CirclesOverlap(b.Pos, b.Radius, o.Pos, o.Radius)
}
