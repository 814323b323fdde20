package physics

// ResolveElastic resolves a collision between two overlapping bodies.
//
// Velocities exchange an impulse along the contact normal in proportion to
// the other body's mass (a 1D elastic collision projected onto the normal;
// tangential components are untouched). The bodies are then pushed apart by
// half the overlap each. Coincident centers have no normal, so the pair is
// skipped and false is returned.
func ResolveElastic(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Norm()
	if dist == 0 {
		return false
	}
	n := delta.Mul(1 / dist)

	dvn := a.Vel.Sub(b.Vel).Dot(n)
	impulse := 2 * dvn / (a.Mass + b.Mass)

	a.Vel = a.Vel.Sub(n.Mul(impulse * b.Mass))
	b.Vel = b.Vel.Add(n.Mul(impulse * a.Mass))

	overlap := (a.Radius + b.Radius - dist) / 2
	a.Pos = a.Pos.Sub(n.Mul(overlap))
	b.Pos = b.Pos.Add(n.Mul(overlap))
	return true
}

// CollideAll scans every unordered pair (i < j) in slice order and resolves
// the overlapping ones. Returns the number of pairs resolved.
//
// The scan is O(n²). Fields stay at tens of bodies, so no broad phase is used.
func CollideAll(bodies []Body) int {
	resolved := 0
	for i := 0; i < len(bodies); i++ {
		a := &bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := &bodies[j]
			if !a.Overlaps(*b) {
				continue
			}
			if ResolveElastic(a, b) {
				resolved++
			}
		}
	}
	return resolved
}

// FirstOverlap returns the index of the first body in others that overlaps
// b, or -1 if none does.
func FirstOverlap(b Body, others []Body) int {
	for i := range others {
		if b.Overlaps(others[i]) {
			return i
		}
	}
	return -1
}
