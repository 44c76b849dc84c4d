package invaders

import "fmt"

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	EventMove EventKind = iota
	EventShoot
	EventTick
	EventAlienShoot
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventShoot:
		return "shoot"
	case EventTick:
		return "tick"
	case EventAlienShoot:
		return "alien-shoot"
	case EventRestart:
		return "restart"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one input to Step. DX is only meaningful for EventMove:
// the ship's new horizontal velocity, negative for left and zero to stop.
type Event struct {
	Kind EventKind
	DX   float64
}

// Move sets the ship's velocity to dx.
func Move(dx float64) Event { return Event{Kind: EventMove, DX: dx} }

// Shoot fires a ship bullet from the ship's position.
func Shoot() Event { return Event{Kind: EventShoot} }

// Tick advances the simulation one frame.
func Tick() Event { return Event{Kind: EventTick} }

// AlienShoot fires a bullet from one randomly picked alien.
func AlienShoot() Event { return Event{Kind: EventAlienShoot} }

// Restart returns to the initial layout with score and level reset.
func Restart() Event { return Event{Kind: EventRestart} }

func (e Event) String() string {
	if e.Kind == EventMove {
		return fmt.Sprintf("move(%g)", e.DX)
	}
	return e.Kind.String()
}
