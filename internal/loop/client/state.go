package client

import (
	"time"

	"github.com/tomz197/asteroidfield/internal/input"
	"github.com/tomz197/asteroidfield/internal/loop/session"
	"github.com/tomz197/asteroidfield/internal/object"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Flying, including the pause after the outcome
	GameStateResult                    // Victory or defeat screen, restart prompt
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection state: input, the running session and
// purely visual bookkeeping.
type ClientState struct {
	Input     input.Input
	View      object.Viewport
	GameState GameState
	Session   *session.Session
	Snapshot  session.Snapshot  // Taken once per frame after the update
	Particles *object.Particles // Visual effects only, not part of the session
	Running   bool

	Outcome     session.State // Final state once the session ends
	resultDelay float64       // Seconds left before the result screen shows

	message      string  // Transient centered message
	messageColor string  // ANSI color of the message
	messageTimer float64 // Seconds the message stays up

	blinkTime float64     // Seconds the ship blinks after a respawn
	outlines  [][]float64 // Cached unit-radius asteroid outlines, by insertion index
	elapsed   float64     // Seconds since the session started, for animation

	delta         time.Duration
	shutdownTimer float64
	isInactive    bool

	prevGameState GameState
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Running:       true,
	}
}

// ShowMessage displays a transient message for the given number of seconds.
func (s *ClientState) ShowMessage(text, color string, seconds float64) {
	s.message = text
	s.messageColor = color
	s.messageTimer = seconds
}

// tickTimers counts down the message, blink and result timers.
func (s *ClientState) tickTimers(dt float64) {
	s.elapsed += dt
	s.messageTimer = max(s.messageTimer-dt, 0)
	if s.messageTimer == 0 {
		s.message = ""
	}
	s.blinkTime = max(s.blinkTime-dt, 0)
	if s.resultDelay > 0 {
		s.resultDelay = max(s.resultDelay-dt, 0)
	}
}

// outline returns the cached unit-radius outline for the asteroid at index
// i. Each outline depends only on its own index, so indices may be first
// requested in any order. Scale by the asteroid's radius when drawing.
func (s *ClientState) outline(i int, seed int64) []float64 {
	for len(s.outlines) <= i {
		n := int64(len(s.outlines))
		s.outlines = append(s.outlines, object.AsteroidOutline(seed+n, 1))
	}
	return s.outlines[i]
}

// shouldRenderBlink reports whether a blinking object is visible this frame.
func shouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	return int(remaining*frequency*2)%2 == 0
}
