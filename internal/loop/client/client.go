// Package client runs one player's flight in a terminal: it reads keys,
// drives a session on the frame clock and renders the field.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroidfield/internal/draw"
	"github.com/tomz197/asteroidfield/internal/input"
	"github.com/tomz197/asteroidfield/internal/loop/config"
	"github.com/tomz197/asteroidfield/internal/loop/session"
	"github.com/tomz197/asteroidfield/internal/object"
	"github.com/tomz197/asteroidfield/internal/physics"
)

// Client handles rendering and input for a single connection.
type Client struct {
	state        *ClientState
	tuning       config.Tuning
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	now          func() time.Time
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Tuning       *config.Tuning // nil uses config.DefaultTuning
	Logger       *log.Logger    // nil uses the charmbracelet/log default logger
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	state := NewClientState()
	state.View = object.Viewport{Width: config.ViewWidth, Height: config.ViewHeight}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitRenderArea(
		termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		state:        state,
		tuning:       tuning,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
		now:          time.Now,
	}
}

// Run starts the client loop. Blocks until the player quits, the input
// ends, or ctx is cancelled and the shutdown notice has been shown.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.logger.Info("client started")
	lastTime := c.now()

	for c.state.Running {
		frameStart := c.now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if ctx.Err() != nil && c.state.GameState != GameStateShutdown {
			c.state.GameState = GameStateShutdown
			c.state.shutdownTimer = config.ShutdownDisplaySeconds
		}

		c.processInput()
		c.updateScreen()

		switch c.state.GameState {
		case GameStateStart:
			c.updateStartState()
		case GameStatePlaying:
			c.updatePlayingState()
		case GameStateResult:
			c.updateResultState()
		case GameStateShutdown:
			c.updateShutdownState()
		}

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	c.logger.Info("client stopped")
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.inputStream.Closed() {
		c.state.Running = false
		return
	}

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitRenderArea(
		termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// updateStartState handles the title screen.
func (c *Client) updateStartState() {
	if c.state.Input.Confirm() {
		c.startGame()
	}
}

// startGame starts a new flight, or replays the same field when the seed
// is pinned.
func (c *Client) startGame() {
	if c.state.Session != nil && c.tuning.Seed != 0 {
		c.state.Session.Reset()
	} else {
		c.state.Session = newSession(c.tuning, c.now())
	}
	if c.state.Particles == nil {
		c.state.Particles = object.NewParticles(c.state.Session.Seed())
	}
	c.state.Particles.Clear()
	c.state.outlines = c.state.outlines[:0]
	c.state.elapsed = 0
	c.state.blinkTime = 0
	c.state.resultDelay = 0
	c.state.ShowMessage("", "", 0)
	c.state.Snapshot = c.state.Session.Snapshot()
	c.state.GameState = GameStatePlaying

	c.logger.Info("flight started",
		"seed", c.state.Session.Seed(),
		"destination", fmt.Sprintf("%.0f,%.0f", c.tuning.DestinationX, c.tuning.DestinationY),
		"lives", c.state.Snapshot.Lives)
}

// newSession builds a session from tuning. A zero seed is replaced by one
// derived from now.
func newSession(t config.Tuning, now time.Time) *session.Session {
	ship := object.NewShip(physics.Vec2{})
	ship.Lives = t.Lives

	opts := session.DefaultOptions()
	opts.InitialAsteroids = t.InitialAsteroids
	opts.SpawnInterval = t.SpawnInterval
	opts.WinRadius = t.WinRadius

	dest := physics.V(t.DestinationX, t.DestinationY)
	return session.New(t.ResolveSeed(now), dest, ship, opts)
}

// updatePlayingState advances the session and turns its events into
// messages and effects.
func (c *Client) updatePlayingState() {
	st := c.state
	dt := st.delta.Seconds()
	st.tickTimers(dt)

	if st.Session.State() == session.StateFlying {
		controls := st.Input.Controls()
		if st.isInactive {
			controls = object.Controls{}
		}
		st.Session.SetInput(controls)

		for _, ev := range st.Session.Update(st.delta) {
			c.handleEvent(ev)
		}

		if controls.Thrust && st.Session.State() == session.StateFlying {
			snap := st.Session.Snapshot()
			st.Particles.Exhaust(object.Ship{Body: snap.Ship, Heading: snap.Heading})
		}
	} else if st.resultDelay == 0 {
		st.GameState = GameStateResult
	}

	st.Particles.Update(st.delta)
	st.Snapshot = st.Session.Snapshot()
}

// handleEvent reacts to one session event.
func (c *Client) handleEvent(ev session.Event) {
	st := c.state
	switch ev.Type {
	case session.EventShipHit:
		st.Particles.Explode(ev.Pos, 20, 120, 0.8)
		st.blinkTime = config.HitMessageSeconds
		st.ShowMessage(fmt.Sprintf("SHIP DESTROYED! %d LIVES LEFT", ev.Lives), draw.ColorRed, config.HitMessageSeconds)
		c.logger.Info("ship hit", "lives", ev.Lives, "tick", st.Session.Tick())

	case session.EventDefeated:
		st.Particles.Explode(ev.Pos, 40, 160, 1.2)
		st.Outcome = session.StateDefeated
		st.resultDelay = config.ResultDelaySeconds
		st.ShowMessage("SHIP DESTROYED!", draw.ColorRed, config.ResultDelaySeconds)
		c.logger.Info("flight lost", "tick", st.Session.Tick())

	case session.EventVictorious:
		st.Particles.Explode(st.Session.Destination(), 50, 140, 1.5)
		st.Outcome = session.StateVictorious
		st.resultDelay = config.ResultDelaySeconds
		st.ShowMessage("DESTINATION REACHED!", draw.ColorGreen, config.VictoryMessageSeconds)
		c.logger.Info("flight won", "lives", ev.Lives, "tick", st.Session.Tick())
	}
}

// updateResultState waits for a restart.
func (c *Client) updateResultState() {
	if c.state.Input.Confirm() {
		c.startGame()
	}
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
