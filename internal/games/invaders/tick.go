package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// tick runs one frame on a state that already owns its collections.
func tick(s State) State {
	// Expire bullets that left the field on the previous frame
	var keep []Body
	keep, s.Removed = partition(s.ShipBullets, s.Removed, func(b Body) bool { return b.Y <= 0 })
	s.ShipBullets = keep
	keep, s.Removed = partition(s.AlienBullets, s.Removed, func(b Body) bool { return b.Y >= FieldHeight })
	s.AlienBullets = keep

	s.Ship.X = core.Wrap(s.Ship.X+s.Ship.Vel, FieldWidth)

	for i := range s.ShipBullets {
		s.ShipBullets[i].Y += s.ShipBullets[i].Vel
	}
	for i := range s.AlienBullets {
		s.AlienBullets[i].Y += s.AlienBullets[i].Vel
	}

	s.Aliens = moveAliens(s.Aliens, s.Level)

	return resolve(s)
}

// partition moves the bodies matching drop onto removed.
func partition(in, removed []Body, drop func(Body) bool) ([]Body, []Body) {
	keep := make([]Body, 0, len(in))
	for _, b := range in {
		if drop(b) {
			removed = append(removed, b)
			continue
		}
		keep = append(keep, b)
	}
	return keep, removed
}

// alienSpeed is the formation speed for n remaining aliens at level.
func alienSpeed(n, level int) float64 {
	mult := fullWaveMultiplier
	switch {
	case n < 5:
		mult = depletedWaveMultiplier
	case n <= 10:
		mult = thinnedWaveMultiplier
	}
	return AlienVelocity * float64(level) * mult
}

func outOfBounds(a Body) bool {
	return a.X < AlienRadius || a.X > FieldWidth-AlienRadius
}

// moveAliens shifts the formation by each alien's stored velocity and stores
// the new speed for the next frame. If any alien is at an edge the whole
// formation backs off, steps down and flips direction.
func moveAliens(aliens []Body, level int) []Body {
	speed := alienSpeed(len(aliens), level)

	reverse := false
	for _, a := range aliens {
		if outOfBounds(a) {
			reverse = true
			break
		}
	}

	for i := range aliens {
		a := &aliens[i]
		dir := 1.0
		if a.Vel < 0 {
			dir = -1
		}
		if reverse {
			a.X -= a.Vel
			a.Y += AlienDescent
			dir = -dir
		} else {
			a.X += a.Vel
		}
		a.Vel = dir * speed
	}
	return aliens
}
