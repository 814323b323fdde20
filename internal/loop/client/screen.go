package client

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/asteroidfield/internal/draw"
	"github.com/tomz197/asteroidfield/internal/loop/config"
	"github.com/tomz197/asteroidfield/internal/loop/session"
	"github.com/tomz197/asteroidfield/internal/object"
	"github.com/tomz197/asteroidfield/internal/physics"
)

// shipBlinkFrequency is how many times per second the ship blinks after a hit.
const shipBlinkFrequency = 4.0

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.GameState == GameStatePlaying && !c.state.isInactive {
		c.drawField()
	}

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(c.chunkWriter); err != nil {
		return err
	}

	c.drawUI()

	return c.chunkWriter.Flush()
}

// writeText writes s at a 1-based canvas position and marks the cells so
// the canvas paints over them on the next frame.
func (c *Client) writeText(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() || col < 1 {
		return
	}
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, draw.TextWidth(s))
}

// writeCentered writes s horizontally centered on centerX.
func (c *Client) writeCentered(centerX, row int, s string) {
	c.writeText(centerX-draw.TextWidth(s)/2, row, s)
}

// drawField draws the destination, asteroids, particles and ship.
func (c *Client) drawField() {
	st := c.state
	snap := st.Snapshot
	view := st.View
	camera := snap.Ship.Pos

	c.drawDestination(snap, camera)

	for i, a := range snap.Asteroids {
		pos := object.WorldToScreen(a.Pos, camera, view)
		if !object.Visible(pos, view) {
			continue
		}
		outline := st.outline(i, st.Session.Seed())
		points := c.canvas.BorrowPoints(len(outline))
		for k, r := range outline {
			angle := 2 * math.Pi * float64(k) / float64(len(outline))
			points[k] = pos.Add(physics.FromAngle(angle, r*a.Radius))
		}
		c.canvas.DrawPolygon(points, false)
	}

	frame := int(st.elapsed * config.ClientTargetFPS)
	for _, p := range st.Particles.Live() {
		// Fading particles flicker
		if p.Faded() && frame%2 == 1 {
			continue
		}
		c.canvas.Plot(object.WorldToScreen(p.Pos, camera, view))
	}

	if snap.State != session.StateDefeated && shouldRenderBlink(st.blinkTime, shipBlinkFrequency) {
		c.drawShip(view.Center(), snap.Heading, snap.Ship.Radius)
	}
}

// drawShip draws the ship triangle at a screen position.
func (c *Client) drawShip(pos physics.Vec2, heading, radius float64) {
	points := c.canvas.BorrowPoints(3)
	points[0] = pos.Add(physics.FromAngle(heading, radius*2))
	points[1] = pos.Add(physics.FromAngle(heading+2.5, radius))
	points[2] = pos.Add(physics.FromAngle(heading-2.5, radius))
	c.canvas.DrawPolygon(points, true)
}

// drawDestination draws the pulsing destination marker when it is in
// view, or an arrow on the view edge pointing at it when it is not.
func (c *Client) drawDestination(snap session.Snapshot, camera physics.Vec2) {
	view := c.state.View
	pos := object.WorldToScreen(snap.Destination, camera, view)

	if object.Visible(pos, view) {
		pulse := 1 + 0.15*math.Sin(c.state.elapsed*4)
		c.canvas.DrawCircle(pos, c.tuning.WinRadius*pulse)
		c.canvas.DrawCircle(pos, c.tuning.WinRadius*0.3)
	}

	arrow, angle, ok := object.EdgeArrow(pos, view, config.ArrowInset)
	if !ok {
		return
	}
	points := c.canvas.BorrowPoints(3)
	points[0] = arrow.Add(physics.FromAngle(angle, 18))
	points[1] = arrow.Add(physics.FromAngle(angle+2.4, 12))
	points[2] = arrow.Add(physics.FromAngle(angle-2.4, 12))
	c.canvas.DrawPolygon(points, true)
}

// drawUI draws the text overlay for the current state.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight)
	case GameStateResult:
		c.drawResultScreen(centerX, centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

var titleArt = []string{
	`   _   ___ _____ ___ ___  ___ ___ ___    ___ ___ ___ _    ___  `,
	`  /_\ / __|_   _| __| _ \/ _ \_ _|   \  | __|_ _| __| |  |   \ `,
	` / _ \\__ \ | | | _||   / (_) | || |) | | _| | || _|| |__| |) |`,
	`/_/ \_\___/ |_| |___|_|_\\___/___|___/  |_| |___|___|____|___/ `,
}

var controlLines = []string{
	"A D / < >  . . . . Rotate",
	"W / Up / SPACE . . Thrust",
	"S B / Down . . . .  Brake",
	"Q  . . . . . . . . . Quit",
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	titleStartY := centerY - 8
	for i, line := range titleArt {
		c.writeText(centerX-titleWidth/2, titleStartY+i, line)
	}

	dist := math.Hypot(c.tuning.DestinationX, c.tuning.DestinationY)
	subtitle := fmt.Sprintf("~ Reach the beacon %.0f units away ~", dist)
	c.writeCentered(centerX, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	if blinkOn(time.Now()) {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	snap := c.state.Snapshot

	c.writeText(2, 1, fmt.Sprintf("Lives: %-3d", snap.Lives))

	dist := physics.Distance(snap.Ship.Pos, snap.Destination)
	distText := fmt.Sprintf("Beacon: %-7.0f", dist)
	c.writeText(termWidth-len(distText)-1, 1, distText)

	c.writeText(2, termHeight, fmt.Sprintf("X:%-6.0f Y:%-6.0f V:%-4.1f", snap.Ship.Pos.X, snap.Ship.Pos.Y, snap.Ship.Speed()))

	legend := "A/D rotate  W thrust  S brake  Q quit"
	if termWidth > len(legend)+30 {
		c.writeText(termWidth-len(legend)-1, termHeight, legend)
	}

	if c.state.message != "" {
		msg := c.state.message
		if c.state.messageColor != "" {
			msg = draw.Colorize(c.state.messageColor+draw.ColorBold, msg)
		}
		c.writeCentered(termWidth/2, termHeight/2-4, msg)
	}
}

// drawResultScreen draws the victory or game over screen.
func (c *Client) drawResultScreen(centerX, centerY int) {
	var art []string
	color := draw.ColorGreen
	if c.state.Outcome == session.StateVictorious {
		art = []string{
			` ___  ___ ___ _____ ___ _  _   _ _____ ___ ___  _  _ `,
			`|   \| __/ __|_   _|_ _| \| | /_\_   _|_ _/ _ \| \| |`,
			`| |) | _|\__ \ | |  | || .' |/ _ \| |  | | (_) | .' |`,
			`|___/|___|___/ |_| |___|_|\_/_/ \_\_| |___\___/|_|\_|`,
		}
	} else {
		color = draw.ColorRed
		art = []string{
			`  ___   _   __  __ ___    _____   _____ ___ `,
			` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
			`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
			` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
		}
	}

	titleWidth := 0
	for _, line := range art {
		titleWidth = max(titleWidth, len(line))
	}

	titleStartY := centerY - 6
	for i, line := range art {
		c.writeText(centerX-titleWidth/2, titleStartY+i, draw.Colorize(color, line))
	}

	snap := c.state.Snapshot
	seconds := float64(snap.Tick) / config.TickRate
	stats := fmt.Sprintf("Flight time: %.1fs   Lives left: %d   Asteroids: %d", seconds, snap.Lives, len(snap.Asteroids))
	c.writeCentered(centerX, titleStartY+len(art)+2, stats)

	if blinkOn(time.Now()) {
		c.writeCentered(centerX, titleStartY+len(art)+4, ">>  Press SPACE or ENTER to fly again  <<")
	}
	c.writeCentered(centerX, titleStartY+len(art)+6, "Press Q to quit")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}

// blinkOn toggles prompts at a steady rate.
func blinkOn(now time.Time) bool {
	return now.UnixMilli()/600%2 == 0
}
