package session

import "github.com/tomz197/asteroidfield/internal/physics"

// EventType identifies what happened during a tick.
type EventType int

const (
	// EventShipHit is emitted when the ship strikes an asteroid and still
	// has lives left. The ship has already been moved to the respawn point.
	EventShipHit EventType = iota
	// EventDefeated is emitted once, when the last life is lost.
	EventDefeated
	// EventVictorious is emitted once, when the ship reaches the destination.
	EventVictorious
)

func (t EventType) String() string {
	switch t {
	case EventShipHit:
		return "ship_hit"
	case EventDefeated:
		return "defeated"
	case EventVictorious:
		return "victorious"
	default:
		return "unknown"
	}
}

// Event is a notable state change reported by Update.
type Event struct {
	Type  EventType
	Lives int          // Lives remaining after the event
	Pos   physics.Vec2 // Ship position at the moment of the event, before any respawn
}

// State is the session's position in the win/loss state machine.
type State int

const (
	StateFlying State = iota
	StateVictorious
	StateDefeated
)

func (s State) String() string {
	switch s {
	case StateFlying:
		return "flying"
	case StateVictorious:
		return "victorious"
	case StateDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has finished.
func (s State) Terminal() bool {
	return s == StateVictorious || s == StateDefeated
}
