package object

import (
	"math/rand"

	"github.com/tomz197/asteroidfield/internal/physics"
)

// Asteroid spawn parameters.
const (
	SpawnHalfExtent      = 400.0 // Spawn offset per axis is uniform in [-400, 400]
	ShipClearance        = 150.0 // Minimum spawn distance from the ship
	DestinationClearance = 200.0 // Minimum spawn distance from the destination
	AsteroidMinRadius    = 10.0
	AsteroidMaxRadius    = 40.0
	AsteroidSpawnSpeed   = 2.0 // Initial velocity per axis is uniform in [-2, 2]
	AsteroidMaxSpeed     = 5.0
)

// SpawnAsteroid creates an asteroid somewhere around the ship.
//
// The point is first pushed out of the ship's clearance zone and then,
// independently, out of the destination's. The second push can land the
// asteroid back inside the ship zone; that case is accepted.
func SpawnAsteroid(rng *rand.Rand, shipPos, destination physics.Vec2) physics.Body {
	pos := shipPos.Add(physics.Vec2{
		X: (rng.Float64()*2 - 1) * SpawnHalfExtent,
		Y: (rng.Float64()*2 - 1) * SpawnHalfExtent,
	})
	vel := physics.Vec2{
		X: (rng.Float64()*2 - 1) * AsteroidSpawnSpeed,
		Y: (rng.Float64()*2 - 1) * AsteroidSpawnSpeed,
	}
	radius := AsteroidMinRadius + rng.Float64()*(AsteroidMaxRadius-AsteroidMinRadius)

	pos = physics.ProjectOut(pos, shipPos, ShipClearance)
	pos = physics.ProjectOut(pos, destination, DestinationClearance)

	return physics.NewBody(pos, vel, radius, physics.AreaMass(radius), AsteroidMaxSpeed)
}

// AsteroidOutline returns vertex distances for drawing an irregular rock.
// The shape is derived from seed alone, so an asteroid keeps its outline
// from frame to frame.
func AsteroidOutline(seed int64, radius float64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	// 8-12 vertices, each ±30% of the radius
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = radius * (0.7 + rng.Float64()*0.6)
	}
	return vertices
}
