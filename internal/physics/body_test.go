package physics

import (
	"math"
	"testing"
)

func TestNewBody(t *testing.T) {
	b := NewBody(V(1, 2), V(3, 4), 20, AreaMass(20), 5)
	if b.Mass != 400 {
		t.Errorf("Mass = %v, expected 400", b.Mass)
	}
	if b.Speed() != 5 {
		t.Errorf("Speed() = %v, expected 5", b.Speed())
	}
	if got := b.Momentum(); !approxVec(got, V(1200, 1600)) {
		t.Errorf("Momentum() = %v, expected (1200, 1600)", got)
	}
}

func TestNewBody_PanicsOnInvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel Vec2
		radius   float64
		mass     float64
		maxSpeed float64
	}{
		{name: "zero_radius", radius: 0, mass: 1, maxSpeed: 1},
		{name: "negative_radius", radius: -3, mass: 1, maxSpeed: 1},
		{name: "nan_radius", radius: math.NaN(), mass: 1, maxSpeed: 1},
		{name: "zero_mass", radius: 1, mass: 0, maxSpeed: 1},
		{name: "infinite_mass", radius: 1, mass: math.Inf(1), maxSpeed: 1},
		{name: "zero_max_speed", radius: 1, mass: 1, maxSpeed: 0},
		{name: "nan_position", pos: V(math.NaN(), 0), radius: 1, mass: 1, maxSpeed: 1},
		{name: "infinite_velocity", vel: V(0, math.Inf(-1)), radius: 1, mass: 1, maxSpeed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected NewBody to panic")
				}
			}()
			NewBody(tt.pos, tt.vel, tt.radius, tt.mass, tt.maxSpeed)
		})
	}
}

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name        string
		body        Body
		expectedPos Vec2
		expectedVel Vec2
	}{
		{
			name:        "below_cap",
			body:        Body{Pos: V(0, 0), Vel: V(1, 2), MaxSpeed: 5},
			expectedPos: V(1, 2),
			expectedVel: V(1, 2),
		},
		{
			name:        "clamped_before_move",
			body:        Body{Pos: V(10, 10), Vel: V(6, 8), MaxSpeed: 5},
			expectedPos: V(13, 14),
			expectedVel: V(3, 4),
		},
		{
			name:        "at_rest",
			body:        Body{Pos: V(-4, 7), MaxSpeed: 5},
			expectedPos: V(-4, 7),
			expectedVel: V(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			Integrate(&b)
			if !approxVec(b.Pos, tt.expectedPos) {
				t.Errorf("Pos = %v, expected %v", b.Pos, tt.expectedPos)
			}
			if !approxVec(b.Vel, tt.expectedVel) {
				t.Errorf("Vel = %v, expected %v", b.Vel, tt.expectedVel)
			}
		})
	}
}

func TestIntegrateAll_KeepsSpeedUnderCap(t *testing.T) {
	bodies := []Body{
		{Vel: V(100, 0), MaxSpeed: 5},
		{Vel: V(-3, -3), MaxSpeed: 5},
		{Vel: V(0.5, 0), MaxSpeed: 5},
	}
	IntegrateAll(bodies)
	for i, b := range bodies {
		if b.Speed() > b.MaxSpeed+epsilon {
			t.Errorf("body %d speed %v exceeds cap %v", i, b.Speed(), b.MaxSpeed)
		}
	}
}
