// Package config centralizes all tunable game parameters.
package config

import (
	"math"
	"time"

	envconfig "github.com/tomz197/asteroidfield/internal/config"
)

// Simulation clock. The physics advances in fixed ticks; per-tick rates
// (rotation, thrust, braking, velocity) are applied once per tick.
const (
	TickRate          = 60
	TickDuration      = time.Second / TickRate
	MaxStepsPerUpdate = 5 // Cap on catch-up ticks per Update call
)

// Session
const (
	SpawnInterval    = 60 // Ticks between asteroid spawns
	InitialAsteroids = 10
	WinRadius        = 50.0
	DestinationX     = 2000.0
	DestinationY     = 1500.0
	InitialLives     = 3
)

// View - the visible area in world units. The ship stays centered while the
// camera follows it; rendering scales this to the terminal size.
const (
	ViewWidth  = 960
	ViewHeight = 640
	ArrowInset = 40.0 // Distance of the destination arrow from the view edge
)

// Max render resolution (terminal columns/rows). Larger terminals get a
// centered, bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Messages
const (
	HitMessageSeconds     = 2.0
	VictoryMessageSeconds = 3.0
	ResultDelaySeconds    = 2.0 // Pause on the field before the result screen
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Tuning holds the per-session parameters a deployment may override.
type Tuning struct {
	Seed             int64 // 0 picks a time-based seed
	DestinationX     float64
	DestinationY     float64
	InitialAsteroids int
	SpawnInterval    int
	Lives            int
	WinRadius        float64
}

// DefaultTuning returns the stock game parameters.
func DefaultTuning() Tuning {
	return Tuning{
		DestinationX:     DestinationX,
		DestinationY:     DestinationY,
		InitialAsteroids: InitialAsteroids,
		SpawnInterval:    SpawnInterval,
		Lives:            InitialLives,
		WinRadius:        WinRadius,
	}
}

// TuningFromEnv returns DefaultTuning with ASTEROIDS_* environment
// overrides applied. Malformed or out-of-range values keep the default.
func TuningFromEnv() Tuning {
	t := DefaultTuning()
	t.Seed = envconfig.GetEnvInt64("ASTEROIDS_SEED", t.Seed)
	if x := envconfig.GetEnvFloat("ASTEROIDS_DEST_X", t.DestinationX); finite(x) {
		t.DestinationX = x
	}
	if y := envconfig.GetEnvFloat("ASTEROIDS_DEST_Y", t.DestinationY); finite(y) {
		t.DestinationY = y
	}

	if n := envconfig.GetEnvInt("ASTEROIDS_INITIAL", t.InitialAsteroids); n >= 0 {
		t.InitialAsteroids = n
	}
	if n := envconfig.GetEnvInt("ASTEROIDS_SPAWN_INTERVAL", t.SpawnInterval); n > 0 {
		t.SpawnInterval = n
	}
	if n := envconfig.GetEnvInt("ASTEROIDS_LIVES", t.Lives); n > 0 {
		t.Lives = n
	}
	return t
}

// ResolveSeed returns the configured seed, or one derived from now when
// the seed is unset.
func (t Tuning) ResolveSeed(now time.Time) int64 {
	if t.Seed != 0 {
		return t.Seed
	}
	return now.UnixNano()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
