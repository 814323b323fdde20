package object

import (
	"testing"
	"time"

	"github.com/tomz197/asteroidfield/internal/physics"
)

func TestParticles_ExplodeAndExpire(t *testing.T) {
	ps := NewParticles(1)
	ps.Explode(physics.V(10, 10), 25, 100, 1.0)

	if got := len(ps.Live()); got != 25 {
		t.Fatalf("got %d particles, expected 25", got)
	}
	for _, p := range ps.Live() {
		if p.Lifetime < 0.5 || p.Lifetime > 1.0 {
			t.Errorf("lifetime %v outside [0.5, 1.0]", p.Lifetime)
		}
	}

	ps.Update(100 * time.Millisecond)
	moved := false
	for _, p := range ps.Live() {
		if p.Pos != physics.V(10, 10) {
			moved = true
		}
	}
	if !moved {
		t.Error("particles did not move")
	}

	ps.Update(time.Second)
	if got := len(ps.Live()); got != 0 {
		t.Errorf("got %d particles after expiry, expected 0", got)
	}
}

func TestParticles_Exhaust(t *testing.T) {
	ps := NewParticles(2)
	ship := NewShip(physics.V(0, 0))
	ps.Exhaust(ship)

	n := len(ps.Live())
	if n < 1 || n > 2 {
		t.Fatalf("got %d exhaust particles, expected 1-2", n)
	}
	for _, p := range ps.Live() {
		// Ship faces +X, exhaust flies backwards
		if p.Vel.X >= 0 {
			t.Errorf("exhaust velocity %v not pointing behind the ship", p.Vel)
		}
		if p.Pos != ship.Tail() {
			t.Errorf("exhaust spawned at %v, expected %v", p.Pos, ship.Tail())
		}
	}

	ps.Clear()
	if len(ps.Live()) != 0 {
		t.Error("Clear() left particles behind")
	}
}

func TestParticle_Faded(t *testing.T) {
	p := Particle{Lifetime: 0.2, MaxLifetime: 1}
	if !p.Faded() {
		t.Error("expected particle at 20% life to be faded")
	}
	p.Lifetime = 0.5
	if p.Faded() {
		t.Error("expected particle at 50% life to be visible")
	}
}
