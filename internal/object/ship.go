package object

import (
	"math"

	"github.com/tomz197/asteroidfield/internal/physics"
)

// Ship defaults. Rates are per simulation tick.
const (
	ShipRadius        = 10.0
	ShipMaxSpeed      = 8.0
	ShipRotationSpeed = 0.05 // Radians per tick
	ShipThrustAccel   = 0.2  // Units per tick²
	ShipBrakeFactor   = 0.1  // Fraction of velocity removed per braking tick
	ShipLives         = 3
)

// Controls is the set of pilot inputs held during a tick.
type Controls struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Brake       bool
}

// Ship is the player-controlled body.
type Ship struct {
	physics.Body

	Heading       float64 // Facing in radians (0 = +X), independent of velocity
	RotationSpeed float64 // Heading change per tick while turning
	ThrustAccel   float64 // Velocity gained per tick while thrusting
	BrakeFactor   float64 // Velocity scaled by (1 - BrakeFactor) per braking tick
	Lives         int
}

// NewShip creates a ship at rest at the given position with default tuning.
func NewShip(pos physics.Vec2) Ship {
	return Ship{
		Body:          physics.NewBody(pos, physics.Vec2{}, ShipRadius, physics.AreaMass(ShipRadius), ShipMaxSpeed),
		RotationSpeed: ShipRotationSpeed,
		ThrustAccel:   ShipThrustAccel,
		BrakeFactor:   ShipBrakeFactor,
		Lives:         ShipLives,
	}
}

// Steer applies one tick of control input to heading and velocity.
// Position is left alone; see Update.
func (s *Ship) Steer(c Controls) {
	if c.RotateLeft {
		s.Heading -= s.RotationSpeed
	}
	if c.RotateRight {
		s.Heading += s.RotationSpeed
	}

	// Keep heading in [-π, π] so it doesn't grow without bound
	if s.Heading > math.Pi {
		s.Heading -= 2 * math.Pi
	} else if s.Heading < -math.Pi {
		s.Heading += 2 * math.Pi
	}

	if c.Thrust {
		s.Vel = s.Vel.Add(physics.FromAngle(s.Heading, s.ThrustAccel))
	}
	if c.Brake {
		s.Vel = s.Vel.Mul(1 - s.BrakeFactor)
	}
}

// Update steers the ship, clamps its speed and moves it by one tick.
func (s *Ship) Update(c Controls) {
	s.Steer(c)
	physics.Integrate(&s.Body)
}

// Respawn puts the ship back at pos with zero velocity. Heading is kept.
func (s *Ship) Respawn(pos physics.Vec2) {
	s.Pos = pos
	s.Vel = physics.Vec2{}
}

// Nose returns the world position of the ship's tip.
func (s Ship) Nose() physics.Vec2 {
	return s.Pos.Add(physics.FromAngle(s.Heading, s.Radius*2))
}

// Tail returns the world position just behind the ship, where exhaust appears.
func (s Ship) Tail() physics.Vec2 {
	return s.Pos.Sub(physics.FromAngle(s.Heading, s.Radius*1.5))
}
