package input

import (
	"bufio"
	"time"

	"github.com/tomz197/asteroidfield/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so this has to bridge the repeat gap.
const keyHoldDuration = 90 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Thrust  bool
	Brake   bool
	Space   bool
	Enter   bool
	Escape  bool
	Pressed []byte
}

// Controls returns the pilot controls held in this frame.
func (in Input) Controls() object.Controls {
	return object.Controls{
		RotateLeft:  in.Left,
		RotateRight: in.Right,
		Thrust:      in.Thrust,
		Brake:       in.Brake,
	}
}

// Confirm reports whether a confirm key (Enter or Space) was pressed.
func (in Input) Confirm() bool {
	return in.Enter || in.Space
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	thrust time.Time
	brake  time.Time
	space  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.apply(buf, time.Now())
}

// apply parses buf into key state timestamps and builds the frame input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.brake = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	// Keys are "pressed" if seen within hold duration
	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Thrust:  now.Sub(s.state.thrust) < keyHoldDuration,
		Brake:   now.Sub(s.state.brake) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case 's', 'S', 'k', 'K', 'b', 'B':
		state.brake = now
	case ' ':
		state.space = now
		state.thrust = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
