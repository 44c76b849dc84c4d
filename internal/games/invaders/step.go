// Package invaders implements a Space Invaders simulation as a pure reducer
// over immutable snapshots, plus the adapter that plugs it into the arcade
// platform.
package invaders

// Picker supplies the index of the alien that fires next.
// *RNG satisfies it; tests can substitute a fixed sequence.
type Picker interface {
	Intn(n int) int
}

// Step applies one event to s and returns the resulting snapshot.
// It is total: every combination of state and event has a defined result.
func Step(s State, e Event, p Picker) State {
	if e.Kind == EventRestart {
		next := InitialState()
		next.Removed = retiredBullets(s)
		return next
	}

	if s.GameOver {
		return s
	}

	// A cleared wave resets on whatever event arrives next.
	if s.NextLevel {
		next := freshLayout(s.Score, s.Level)
		next.Removed = retiredBullets(s)
		return next
	}

	next := s.clone()
	switch e.Kind {
	case EventMove:
		next.Ship.Vel = e.DX
	case EventShoot:
		next.ShipBullets = append(next.ShipBullets, NewShipBullet(next.NextID, next.Ship.X, next.Ship.Y))
		next.NextID++
	case EventTick:
		next = tick(next)
	case EventAlienShoot:
		next = alienShoot(next, p)
	}
	return next
}

// retiredBullets lists every live bullet, alien bullets first.
func retiredBullets(s State) []Body {
	out := make([]Body, 0, len(s.AlienBullets)+len(s.ShipBullets))
	out = append(out, s.AlienBullets...)
	out = append(out, s.ShipBullets...)
	return out
}

func alienShoot(s State, p Picker) State {
	if len(s.Aliens) == 0 || p == nil {
		return s
	}
	i := p.Intn(len(s.Aliens))
	if i < 0 || i >= len(s.Aliens) {
		return s
	}
	shooter := s.Aliens[i]
	s.AlienBullets = append(s.AlienBullets, NewAlienBullet(s.NextID, shooter.X, shooter.Y))
	s.NextID++
	return s
}
