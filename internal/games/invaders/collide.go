package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// overlaps is the circular test used for bullets against aliens and shields.
func overlaps(a, b Body) bool {
	return core.Distance(a.X, a.Y, b.X, b.Y) <= a.Radius+b.Radius
}

// hitsShip is the box test between the ship rectangle and a round body.
func hitsShip(ship, b Body) bool {
	return math.Abs(ship.X-b.X) <= ShipWidth/2+b.Radius &&
		math.Abs(ship.Y-b.Y) <= ShipHeight/2+b.Radius
}

// pairOff matches each shooter with the first unclaimed target it overlaps.
// Every body takes part in at most one hit per frame.
func pairOff(shooters, targets []Body) (hitShooters, hitTargets []Body) {
	claimed := make([]bool, len(targets))
	for _, s := range shooters {
		for j, t := range targets {
			if claimed[j] || !overlaps(s, t) {
				continue
			}
			claimed[j] = true
			hitShooters = append(hitShooters, s)
			hitTargets = append(hitTargets, t)
			break
		}
	}
	return hitShooters, hitTargets
}

// resolve applies collisions and terminal checks to a moved frame.
func resolve(s State) State {
	// Ship and breach checks see every moved alien, including ones shot this frame
	for _, a := range s.Aliens {
		if hitsShip(s.Ship, a) || a.Y >= FieldHeight-AlienRadius {
			s.GameOver = true
		}
	}
	for _, b := range s.AlienBullets {
		if hitsShip(s.Ship, b) {
			s.GameOver = true
		}
	}

	deadBullets, deadAliens := pairOff(s.ShipBullets, s.Aliens)
	s.ShipBullets = core.Except(s.ShipBullets, deadBullets, bodyKey)
	s.Aliens = core.Except(s.Aliens, deadAliens, bodyKey)
	s.Score += PointsPerAlien * len(deadAliens)

	spentBullets, brokenShields := pairOff(s.AlienBullets, s.Shields)
	s.AlienBullets = core.Except(s.AlienBullets, spentBullets, bodyKey)
	s.Shields = core.Except(s.Shields, brokenShields, bodyKey)

	s.Removed = append(s.Removed, deadBullets...)
	s.Removed = append(s.Removed, deadAliens...)
	s.Removed = append(s.Removed, spentBullets...)
	s.Removed = append(s.Removed, brokenShields...)

	if len(s.Aliens) == 0 {
		s.NextLevel = true
		s.Level++
	}
	return s
}
