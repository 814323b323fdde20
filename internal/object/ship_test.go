package object

import (
	"math"
	"testing"

	"github.com/tomz197/asteroidfield/internal/physics"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func approxVec(a, b physics.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestNewShip(t *testing.T) {
	s := NewShip(physics.V(5, -5))
	if s.Pos != physics.V(5, -5) || s.Vel != (physics.Vec2{}) {
		t.Errorf("unexpected initial state: pos=%v vel=%v", s.Pos, s.Vel)
	}
	if s.Lives != ShipLives {
		t.Errorf("Lives = %d, expected %d", s.Lives, ShipLives)
	}
	if s.Radius != ShipRadius || s.MaxSpeed != ShipMaxSpeed {
		t.Errorf("Radius/MaxSpeed = %v/%v", s.Radius, s.MaxSpeed)
	}
}

func TestShip_Steer(t *testing.T) {
	tests := []struct {
		name            string
		heading         float64
		vel             physics.Vec2
		controls        Controls
		expectedHeading float64
		expectedVel     physics.Vec2
	}{
		{
			name:            "idle",
			controls:        Controls{},
			expectedHeading: 0,
			expectedVel:     physics.V(0, 0),
		},
		{
			name:            "rotate_left",
			controls:        Controls{RotateLeft: true},
			expectedHeading: -ShipRotationSpeed,
		},
		{
			name:            "rotate_right",
			controls:        Controls{RotateRight: true},
			expectedHeading: ShipRotationSpeed,
		},
		{
			name:            "both_rotations_cancel",
			heading:         1,
			controls:        Controls{RotateLeft: true, RotateRight: true},
			expectedHeading: 1,
		},
		{
			name:            "thrust_along_heading",
			heading:         math.Pi / 2,
			controls:        Controls{Thrust: true},
			expectedHeading: math.Pi / 2,
			expectedVel:     physics.V(0, ShipThrustAccel),
		},
		{
			name:        "brake",
			vel:         physics.V(4, -2),
			controls:    Controls{Brake: true},
			expectedVel: physics.V(3.6, -1.8),
		},
		{
			name:        "thrust_then_brake",
			vel:         physics.V(1, 0),
			controls:    Controls{Thrust: true, Brake: true},
			expectedVel: physics.V((1+ShipThrustAccel)*(1-ShipBrakeFactor), 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShip(physics.Vec2{})
			s.Heading = tt.heading
			s.Vel = tt.vel
			s.Steer(tt.controls)

			if !approx(s.Heading, tt.expectedHeading) {
				t.Errorf("Heading = %v, expected %v", s.Heading, tt.expectedHeading)
			}
			if !approxVec(s.Vel, tt.expectedVel) {
				t.Errorf("Vel = %v, expected %v", s.Vel, tt.expectedVel)
			}
			if s.Pos != (physics.Vec2{}) {
				t.Errorf("Steer moved the ship to %v", s.Pos)
			}
		})
	}
}

func TestShip_HeadingWraps(t *testing.T) {
	s := NewShip(physics.Vec2{})
	s.Heading = math.Pi - 0.01
	s.Steer(Controls{RotateRight: true})
	if s.Heading > math.Pi || s.Heading < -math.Pi {
		t.Errorf("Heading %v outside [-π, π]", s.Heading)
	}
}

func TestShip_UpdateClampsSpeed(t *testing.T) {
	s := NewShip(physics.Vec2{})
	for i := 0; i < 200; i++ {
		s.Update(Controls{Thrust: true})
		if s.Speed() > s.MaxSpeed+epsilon {
			t.Fatalf("speed %v exceeds cap %v", s.Speed(), s.MaxSpeed)
		}
	}
	if !approx(s.Speed(), s.MaxSpeed) {
		t.Errorf("Speed() = %v, expected to reach cap %v", s.Speed(), s.MaxSpeed)
	}
}

func TestShip_UpdateMovesByVelocity(t *testing.T) {
	s := NewShip(physics.V(10, 10))
	s.Update(Controls{Thrust: true})
	if !approxVec(s.Pos, physics.V(10+ShipThrustAccel, 10)) {
		t.Errorf("Pos = %v", s.Pos)
	}

	idle := NewShip(physics.Vec2{})
	for i := 0; i < 10; i++ {
		idle.Update(Controls{})
	}
	if idle.Pos != (physics.Vec2{}) {
		t.Errorf("idle ship drifted to %v", idle.Pos)
	}
}

func TestShip_Respawn(t *testing.T) {
	s := NewShip(physics.V(100, 100))
	s.Vel = physics.V(3, 3)
	s.Heading = 1.5
	s.Respawn(physics.Vec2{})

	if s.Pos != (physics.Vec2{}) || s.Vel != (physics.Vec2{}) {
		t.Errorf("Respawn left pos=%v vel=%v", s.Pos, s.Vel)
	}
	if s.Heading != 1.5 {
		t.Errorf("Respawn changed heading to %v", s.Heading)
	}
}
