package physics

// ClampSpeed rescales the body's velocity to MaxSpeed if it exceeds it.
func ClampSpeed(b *Body) {
	b.Vel = ClampLength(b.Vel, b.MaxSpeed)
}

// Integrate advances the body by one tick: the speed cap is applied first,
// then the position moves by the velocity.
func Integrate(b *Body) {
	ClampSpeed(b)
	b.Pos = b.Pos.Add(b.Vel)
}

// IntegrateAll integrates every body in place.
func IntegrateAll(bodies []Body) {
	for i := range bodies {
		Integrate(&bodies[i])
	}
}

// ClampAll applies the speed cap to every body in place.
func ClampAll(bodies []Body) {
	for i := range bodies {
		ClampSpeed(&bodies[i])
	}
}
