package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// maxAutopilotBullets caps how many ship bullets the autopilot keeps in flight.
const maxAutopilotBullets = 3

// Autopilot plays the game headlessly. It chases the lowest alien and fires
// when its shot would meet it, emitting the same press and release edges a keyboard would.
type Autopilot struct {
	held core.Action // ActionLeft, ActionRight or ActionNone
}

// NewAutopilot returns an autopilot with no key held.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Decide returns the input transitions to apply after observing s.
func (a *Autopilot) Decide(s State) []core.InputEvent {
	if s.GameOver || len(s.Aliens) == 0 {
		return a.steer(core.ActionNone)
	}

	target := lowestAlien(s.Aliens)
	// Lead the target by how far it drifts while a bullet climbs to it
	flight := (s.Ship.Y - target.Y) / -ShipBulletVelocity
	dx := target.X + target.Vel*flight - s.Ship.X

	want := core.ActionNone
	switch {
	case dx < -ShipSpeed/2:
		want = core.ActionLeft
	case dx > ShipSpeed/2:
		want = core.ActionRight
	}

	events := a.steer(want)
	if math.Abs(dx) <= AlienRadius && len(s.ShipBullets) < maxAutopilotBullets {
		events = append(events, core.Press(core.ActionShoot), core.Release(core.ActionShoot))
	}
	return events
}

// steer releases the held direction and presses the wanted one if they differ.
func (a *Autopilot) steer(want core.Action) []core.InputEvent {
	if want == a.held {
		return nil
	}
	var events []core.InputEvent
	if a.held != core.ActionNone {
		events = append(events, core.Release(a.held))
	}
	if want != core.ActionNone {
		events = append(events, core.Press(want))
	}
	a.held = want
	return events
}

// lowestAlien picks the alien closest to the ship's row, leftmost on ties.
func lowestAlien(aliens []Body) Body {
	best := aliens[0]
	for _, al := range aliens[1:] {
		if al.Y > best.Y || (al.Y == best.Y && al.X < best.X) {
			best = al
		}
	}
	return best
}
