package config

import (
	"testing"
	"time"
)

func TestTuningFromEnv_Defaults(t *testing.T) {
	got := TuningFromEnv()
	if got != DefaultTuning() {
		t.Errorf("TuningFromEnv() = %+v, expected defaults %+v", got, DefaultTuning())
	}
}

func TestTuningFromEnv_Overrides(t *testing.T) {
	t.Setenv("ASTEROIDS_SEED", "99")
	t.Setenv("ASTEROIDS_DEST_X", "-500")
	t.Setenv("ASTEROIDS_DEST_Y", "750.5")
	t.Setenv("ASTEROIDS_INITIAL", "0")
	t.Setenv("ASTEROIDS_SPAWN_INTERVAL", "30")
	t.Setenv("ASTEROIDS_LIVES", "5")

	got := TuningFromEnv()
	expected := Tuning{
		Seed:             99,
		DestinationX:     -500,
		DestinationY:     750.5,
		InitialAsteroids: 0,
		SpawnInterval:    30,
		Lives:            5,
		WinRadius:        WinRadius,
	}
	if got != expected {
		t.Errorf("TuningFromEnv() = %+v, expected %+v", got, expected)
	}
}

func TestTuningFromEnv_RejectsOutOfRange(t *testing.T) {
	t.Setenv("ASTEROIDS_INITIAL", "-1")
	t.Setenv("ASTEROIDS_SPAWN_INTERVAL", "0")
	t.Setenv("ASTEROIDS_LIVES", "nope")
	t.Setenv("ASTEROIDS_DEST_X", "NaN")
	t.Setenv("ASTEROIDS_DEST_Y", "-Inf")

	got := TuningFromEnv()
	if got != DefaultTuning() {
		t.Errorf("out-of-range overrides were applied: %+v", got)
	}
}

func TestTuning_ResolveSeed(t *testing.T) {
	now := time.Unix(0, 12345)
	if got := (Tuning{Seed: 7}).ResolveSeed(now); got != 7 {
		t.Errorf("ResolveSeed() = %d, expected 7", got)
	}
	if got := (Tuning{}).ResolveSeed(now); got != 12345 {
		t.Errorf("ResolveSeed() = %d, expected 12345", got)
	}
}
