package invaders

// Playfield and entity constants. All coordinates are in playfield units,
// origin top-left, y growing downward.
const (
	FieldWidth  = 600.0
	FieldHeight = 600.0

	ShipWidth  = 50.0
	ShipHeight = 20.0
	ShipSpeed  = 10.0
	ShipRadius = 10.0
	ShipStartX = 300.0
	ShipStartY = 580.0

	BulletRadius        = 4.0
	ShipBulletVelocity  = -15.0
	AlienBulletVelocity = 6.0

	AlienRadius   = 18.0
	AlienVelocity = 1.5
	AlienDescent  = 25.0
	AlienCount    = 21
	AlienColumns  = 7

	ShieldCount  = 80
	ShieldRadius = 19.0

	PointsPerAlien = 10
)

// Alien speed multipliers by remaining formation size.
const (
	fullWaveMultiplier     = 1.0  // more than 10 aliens
	thinnedWaveMultiplier  = 1.5  // 5 to 10 aliens
	depletedWaveMultiplier = 1.75 // fewer than 5 aliens
)

// Timer identifiers scheduled by the platform.
const (
	TimerTick      = "tick"
	TimerAlienFire = "alien-fire"
)
