package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroidfield/internal/loop/config"
	"github.com/tomz197/asteroidfield/internal/loop/session"
	"github.com/tomz197/asteroidfield/internal/object"
	"github.com/tomz197/asteroidfield/internal/physics"
)

func newTestClient(t *testing.T, keys string, tuning config.Tuning) (*Client, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := NewClient(bufio.NewReader(strings.NewReader(keys)), &out, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 100, 40, nil },
		Username:     "tester",
		Tuning:       &tuning,
		Logger:       log.New(io.Discard),
	})
	return c, &out
}

func TestStartGame_UsesTuning(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Seed = 7
	tuning.InitialAsteroids = 4
	tuning.Lives = 5
	c, _ := newTestClient(t, "", tuning)

	c.startGame()

	if c.state.GameState != GameStatePlaying {
		t.Fatalf("expected playing state, got %v", c.state.GameState)
	}
	snap := c.state.Snapshot
	if len(snap.Asteroids) != 4 || snap.Lives != 5 || c.state.Session.Seed() != 7 {
		t.Errorf("session ignored tuning: asteroids=%d lives=%d seed=%d",
			len(snap.Asteroids), snap.Lives, c.state.Session.Seed())
	}
}

func TestStartGame_PinnedSeedReplaysField(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Seed = 99
	c, _ := newTestClient(t, "", tuning)

	c.startGame()
	first := c.state.Session
	firstField := c.state.Snapshot.Asteroids

	c.state.delta = time.Second
	c.updatePlayingState()
	c.startGame()

	if c.state.Session != first {
		t.Error("expected the pinned-seed session to be reset, not replaced")
	}
	for i, a := range c.state.Snapshot.Asteroids {
		if a != firstField[i] {
			t.Fatalf("asteroid %d differs after restart", i)
		}
	}
}

func TestPlaying_VictoryShowsResult(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Seed = 1
	tuning.InitialAsteroids = 0
	tuning.DestinationX = 40
	tuning.DestinationY = 0
	c, _ := newTestClient(t, "", tuning)
	c.startGame()

	c.state.delta = config.TickDuration
	c.updatePlayingState()

	if c.state.Outcome != session.StateVictorious {
		t.Fatalf("expected victory, got outcome %v", c.state.Outcome)
	}
	if c.state.message != "DESTINATION REACHED!" {
		t.Errorf("unexpected message %q", c.state.message)
	}
	if len(c.state.Particles.Live()) == 0 {
		t.Error("expected a victory burst")
	}
	if c.state.GameState != GameStatePlaying {
		t.Error("result screen should wait for the delay")
	}

	c.state.delta = time.Duration(config.ResultDelaySeconds * float64(time.Second))
	c.updatePlayingState()
	if c.state.GameState != GameStateResult {
		t.Errorf("expected result screen after the delay, got %v", c.state.GameState)
	}
}

func TestHandleEvent_ShipHit(t *testing.T) {
	c, _ := newTestClient(t, "", config.DefaultTuning())
	c.startGame()

	hitPos := physics.V(250, -80)
	c.handleEvent(session.Event{Type: session.EventShipHit, Lives: 2, Pos: hitPos})

	if !strings.HasPrefix(c.state.message, "SHIP DESTROYED!") {
		t.Errorf("unexpected message %q", c.state.message)
	}
	if c.state.blinkTime <= 0 {
		t.Error("expected the ship to blink after a hit")
	}
	if c.state.Outcome != session.StateFlying {
		t.Error("a hit with lives left must not end the flight")
	}
	live := c.state.Particles.Live()
	if len(live) == 0 {
		t.Fatal("expected an explosion")
	}
	for _, p := range live {
		if p.Pos != hitPos {
			t.Fatalf("explosion particle at %v, expected %v", p.Pos, hitPos)
		}
	}
}

func TestOutline_IndependentOfRequestOrder(t *testing.T) {
	s := NewClientState()

	// A later rock is seen first; earlier ones get filled in behind it.
	late := s.outline(2, 7)
	early := s.outline(0, 7)

	if !reflect.DeepEqual(early, object.AsteroidOutline(7, 1)) {
		t.Error("outline for index 0 depends on which index was requested first")
	}
	if !reflect.DeepEqual(late, object.AsteroidOutline(9, 1)) {
		t.Error("outline for index 2 not derived from its own index")
	}
	for i, o := range [][]float64{early, s.outline(1, 7), late} {
		for _, r := range o {
			if r < 0.7 || r > 1.3 {
				t.Errorf("outline %d has vertex distance %v outside the unit band", i, r)
			}
		}
	}
}

func TestDrawFrame_Playing(t *testing.T) {
	c, out := newTestClient(t, "", config.DefaultTuning())
	c.startGame()

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}
	frame := out.String()
	for _, want := range []string{"Lives: 3", "Beacon:"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if !strings.ContainsAny(frame, "▀▄█") {
		t.Error("frame has no canvas cells")
	}
}

func TestDrawFrame_StartScreen(t *testing.T) {
	c, out := newTestClient(t, "", config.DefaultTuning())

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Error("start screen missing controls")
	}
}

func TestUpdateShutdownState(t *testing.T) {
	c, _ := newTestClient(t, "", config.DefaultTuning())
	c.state.GameState = GameStateShutdown
	c.state.shutdownTimer = 1

	c.state.delta = 500 * time.Millisecond
	c.updateShutdownState()
	if !c.state.Running {
		t.Fatal("client stopped before the shutdown notice expired")
	}
	c.updateShutdownState()
	if c.state.Running {
		t.Error("client should stop once the shutdown notice expires")
	}
}

func TestRun_QuitKey(t *testing.T) {
	c, _ := newTestClient(t, "q", config.DefaultTuning())

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestShouldRenderBlink(t *testing.T) {
	if !shouldRenderBlink(0, shipBlinkFrequency) {
		t.Error("expected visible when not blinking")
	}
	on := shouldRenderBlink(1.0, 4)
	off := shouldRenderBlink(1.0-1.0/8, 4)
	if on == off {
		t.Error("expected blink phase to alternate")
	}
}
