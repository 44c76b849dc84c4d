package invaders

import "strconv"

// Kind identifies what a Body represents.
type Kind int

const (
	KindShip Kind = iota
	KindShipBullet
	KindAlien
	KindAlienBullet
	KindShield
)

// String returns the kind name, which is also the id prefix of its bodies.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindShipBullet:
		return "shipBullet"
	case KindAlien:
		return "alien"
	case KindAlienBullet:
		return "alienBullet"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Body is any simulated object on the playfield.
// Vel is horizontal for the ship and aliens, vertical for bullets.
type Body struct {
	Kind   Kind
	ID     string
	X, Y   float64
	Vel    float64
	Radius float64
}

// NewBody returns a body with the velocity and radius defaults of its kind.
func NewBody(kind Kind, id string, x, y float64) Body {
	b := Body{Kind: kind, ID: id, X: x, Y: y}
	switch kind {
	case KindShip:
		b.Radius = ShipRadius
	case KindShipBullet:
		b.Vel = ShipBulletVelocity
		b.Radius = BulletRadius
	case KindAlienBullet:
		b.Vel = AlienBulletVelocity
		b.Radius = BulletRadius
	case KindAlien:
		b.Vel = AlienVelocity
		b.Radius = AlienRadius
	case KindShield:
		b.Radius = ShieldRadius
	}
	return b
}

func bodyID(kind Kind, n int) string {
	return kind.String() + strconv.Itoa(n)
}

// NewShip returns the player ship at (x, y), at rest.
func NewShip(x, y float64) Body {
	return NewBody(KindShip, KindShip.String(), x, y)
}

// NewShipBullet returns an upward bullet numbered n.
func NewShipBullet(n int, x, y float64) Body {
	return NewBody(KindShipBullet, bodyID(KindShipBullet, n), x, y)
}

// NewAlienBullet returns a downward bullet numbered n.
func NewAlienBullet(n int, x, y float64) Body {
	return NewBody(KindAlienBullet, bodyID(KindAlienBullet, n), x, y)
}

// NewAlien returns alien number n.
func NewAlien(n int, x, y float64) Body {
	return NewBody(KindAlien, bodyID(KindAlien, n), x, y)
}

// NewShield returns shield fragment number n.
func NewShield(n int, x, y float64) Body {
	return NewBody(KindShield, bodyID(KindShield, n), x, y)
}

func bodyKey(b Body) string {
	return b.ID
}
