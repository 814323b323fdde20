package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/asteroidfield/internal/physics"
)

// Particle is a short-lived visual effect in world space.
type Particle struct {
	Pos         physics.Vec2
	Vel         physics.Vec2 // World units per second
	Lifetime    float64      // Seconds remaining
	MaxLifetime float64      // Initial lifetime (for fade calculation)
	Drag        float64      // Velocity kept per 1/60 s (1.0 = no drag)
}

// Faded reports whether the particle is in the last quarter of its life.
func (p Particle) Faded() bool {
	return p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25
}

// Particles owns the live particle set. It has its own random source so
// visual effects never disturb the simulation's sequence.
type Particles struct {
	rng  *rand.Rand
	live []Particle
}

// NewParticles creates an empty particle set.
func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// Explode creates count particles in a circular burst.
// speed is in units per second; lifetime in seconds.
func (ps *Particles) Explode(at physics.Vec2, count int, speed, lifetime float64) {
	for i, n := 0, count; i < n; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + ps.rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + ps.rng.Float64()*0.5)

		ps.live = append(ps.live, Particle{
			Pos:         at,
			Vel:         physics.FromAngle(angle, spd),
			Lifetime:    life,
			MaxLifetime: life,
			Drag:        0.95,
		})
	}
}

// Exhaust emits 1-2 particles behind a thrusting ship.
func (ps *Particles) Exhaust(ship Ship) {
	count := 1 + ps.rng.Intn(2)
	for i, n := 0, count; i < n; i++ {
		// Opposite of ship facing, with spread
		angle := ship.Heading + math.Pi + (ps.rng.Float64()-0.5)*0.5
		speed := 60.0 + ps.rng.Float64()*40.0
		life := 0.15 + ps.rng.Float64()*0.15

		ps.live = append(ps.live, Particle{
			Pos:         ship.Tail(),
			Vel:         ship.Vel.Mul(60).Add(physics.FromAngle(angle, speed)),
			Lifetime:    life,
			MaxLifetime: life,
			Drag:        0.85,
		})
	}
}

// Update advances all particles and drops expired ones.
func (ps *Particles) Update(delta time.Duration) {
	dt := delta.Seconds()
	dragExp := dt * 60 // Drag is defined per 1/60 s

	kept := ps.live[:0]
	for _, p := range ps.live {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}
		p.Vel = p.Vel.Mul(math.Pow(p.Drag, dragExp))
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		kept = append(kept, p)
	}
	ps.live = kept
}

// Live returns the current particles. The slice is valid until the next
// call that modifies the set.
func (ps *Particles) Live() []Particle {
	return ps.live
}

// Clear removes every particle.
func (ps *Particles) Clear() {
	ps.live = ps.live[:0]
}
