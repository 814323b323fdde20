// Package session runs a single asteroid-field flight: the ship, the
// asteroid field, and the win/loss state machine, advanced on a fixed tick.
//
// A Session does no I/O and is not safe for concurrent use; the host loop
// that owns it feeds input, advances time and renders snapshots.
package session

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/asteroidfield/internal/loop/config"
	"github.com/tomz197/asteroidfield/internal/object"
	"github.com/tomz197/asteroidfield/internal/physics"
)

// Options tunes a session. Start from DefaultOptions and override fields.
type Options struct {
	InitialAsteroids int          // Asteroids spawned at start
	SpawnInterval    int          // Ticks between spawns
	WinRadius        float64      // Distance to the destination that counts as arrival
	RespawnAt        physics.Vec2 // Where the ship reappears after a hit
}

// DefaultOptions returns the stock session options.
func DefaultOptions() Options {
	return Options{
		InitialAsteroids: config.InitialAsteroids,
		SpawnInterval:    config.SpawnInterval,
		WinRadius:        config.WinRadius,
	}
}

func (o Options) validate() error {
	if o.InitialAsteroids < 0 {
		return fmt.Errorf("initial asteroids must be >= 0, got %d", o.InitialAsteroids)
	}
	if o.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be > 0, got %d", o.SpawnInterval)
	}
	if !(o.WinRadius > 0) || math.IsInf(o.WinRadius, 0) {
		return fmt.Errorf("win radius must be positive and finite, got %v", o.WinRadius)
	}
	if math.IsNaN(o.RespawnAt.X) || math.IsNaN(o.RespawnAt.Y) ||
		math.IsInf(o.RespawnAt.X, 0) || math.IsInf(o.RespawnAt.Y, 0) {
		return fmt.Errorf("respawn position must be finite, got %v", o.RespawnAt)
	}
	return nil
}

// Snapshot is a copy of the session state for rendering. It shares no
// memory with the session.
type Snapshot struct {
	Ship        physics.Body
	Heading     float64
	Lives       int
	Asteroids   []physics.Body
	State       State
	Destination physics.Vec2
	Tick        uint64
}

// Session holds the state of one flight.
type Session struct {
	seed        int64
	destination physics.Vec2
	initialShip object.Ship
	opts        Options

	rng        *rand.Rand
	ship       object.Ship
	asteroids  []physics.Body
	input      object.Controls
	state      State
	tick       uint64
	spawnTimer int
	pending    time.Duration // Simulated time not yet consumed by a tick
}

// New creates a session with the given seed, destination and starting ship.
// The same seed, destination, ship and options always produce the same
// flight for the same input sequence.
//
// Panics if opts is invalid or the destination is not finite.
func New(seed int64, destination physics.Vec2, ship object.Ship, opts Options) *Session {
	if err := opts.validate(); err != nil {
		panic("session: " + err.Error())
	}
	if math.IsNaN(destination.X) || math.IsNaN(destination.Y) ||
		math.IsInf(destination.X, 0) || math.IsInf(destination.Y, 0) {
		panic(fmt.Sprintf("session: destination must be finite, got %v", destination))
	}

	s := &Session{
		seed:        seed,
		destination: destination,
		initialShip: ship,
		opts:        opts,
	}
	s.Reset()
	return s
}

// Reset restores the session to the state New produced.
func (s *Session) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.ship = s.initialShip
	s.input = object.Controls{}
	s.state = StateFlying
	s.tick = 0
	s.spawnTimer = 0
	s.pending = 0

	s.asteroids = make([]physics.Body, 0, s.opts.InitialAsteroids)
	for i := 0; i < s.opts.InitialAsteroids; i++ {
		s.asteroids = append(s.asteroids, object.SpawnAsteroid(s.rng, s.ship.Pos, s.destination))
	}
}

// SetInput sets the controls held for all following ticks.
func (s *Session) SetInput(c object.Controls) {
	s.input = c
}

// Update advances the simulation by dt and returns the events raised, in
// order. Time is consumed in whole ticks of config.TickDuration; the
// remainder carries over to the next call. At most config.MaxStepsPerUpdate
// ticks run per call and any backlog beyond that is dropped.
//
// Once the session is victorious or defeated, Update does nothing.
func (s *Session) Update(dt time.Duration) []Event {
	if s.state.Terminal() {
		return nil
	}
	if dt > 0 {
		s.pending += dt
	}

	var events []Event
	steps := 0
	for s.pending >= config.TickDuration && steps < config.MaxStepsPerUpdate {
		s.pending -= config.TickDuration
		steps++

		events = s.step(events)
		if s.state.Terminal() {
			s.pending = 0
			break
		}
	}
	if steps == config.MaxStepsPerUpdate && s.pending >= config.TickDuration {
		s.pending = 0
	}
	return events
}

// step runs exactly one tick.
func (s *Session) step(events []Event) []Event {
	s.tick++

	s.ship.Update(s.input)

	s.spawnTimer++
	if s.spawnTimer >= s.opts.SpawnInterval {
		s.spawnTimer = 0
		s.asteroids = append(s.asteroids, object.SpawnAsteroid(s.rng, s.ship.Pos, s.destination))
	}

	physics.IntegrateAll(s.asteroids)
	physics.CollideAll(s.asteroids)
	// An elastic exchange can leave an asteroid above its cap until the
	// next integration; clamp so the cap holds between ticks too.
	physics.ClampAll(s.asteroids)

	if physics.FirstOverlap(s.ship.Body, s.asteroids) >= 0 {
		hitPos := s.ship.Pos
		s.ship.Lives--
		s.ship.Respawn(s.opts.RespawnAt)
		if s.ship.Lives <= 0 {
			s.ship.Lives = 0
			s.state = StateDefeated
			return append(events, Event{Type: EventDefeated, Pos: hitPos})
		}
		events = append(events, Event{Type: EventShipHit, Lives: s.ship.Lives, Pos: hitPos})
	}

	if physics.Distance(s.ship.Pos, s.destination) < s.opts.WinRadius {
		s.state = StateVictorious
		events = append(events, Event{Type: EventVictorious, Lives: s.ship.Lives, Pos: s.ship.Pos})
	}
	return events
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Tick returns the number of ticks simulated since New or Reset.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Destination returns the target position.
func (s *Session) Destination() physics.Vec2 {
	return s.destination
}

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	asteroids := make([]physics.Body, len(s.asteroids))
	copy(asteroids, s.asteroids)
	return Snapshot{
		Ship:        s.ship.Body,
		Heading:     s.ship.Heading,
		Lives:       s.ship.Lives,
		Asteroids:   asteroids,
		State:       s.state,
		Destination: s.destination,
		Tick:        s.tick,
	}
}

// WorldToScreen maps a world position into view coordinates with the
// camera centered on the ship.
func (s *Session) WorldToScreen(pos physics.Vec2, view object.Viewport) physics.Vec2 {
	return object.WorldToScreen(pos, s.ship.Pos, view)
}
