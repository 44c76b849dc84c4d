package invaders

// shieldRows are the fragment y positions, one per block of 20 fragments.
var shieldRows = [...]float64{420, 435, 450, 459}

// InitialState returns a fresh game: full formation, intact shields,
// ship centered at the bottom, score 0 and level 1.
func InitialState() State {
	return freshLayout(0, 1)
}

// freshLayout builds the starting entities while carrying score and level.
func freshLayout(score, level int) State {
	return State{
		Ship:         NewShip(ShipStartX, ShipStartY),
		ShipBullets:  []Body{},
		Aliens:       initialAliens(),
		AlienBullets: []Body{},
		Shields:      initialShields(),
		Removed:      []Body{},
		Score:        score,
		Level:        level,
	}
}

func initialAliens() []Body {
	aliens := make([]Body, AlienCount)
	for i := range AlienCount {
		row, col := i/AlienColumns, i%AlienColumns
		aliens[i] = NewAlien(i, float64(30+60*col), float64(80+50*row))
	}
	return aliens
}

func initialShields() []Body {
	shields := make([]Body, ShieldCount)
	for i := range ShieldCount {
		var x int
		if i < ShieldCount/2 {
			x = (i%4)*150 + (i%5)*15 + 40
		} else {
			x = (i%4)*135 + (i%8)*15 + 40
		}
		shields[i] = NewShield(i, float64(x), shieldRows[i/20])
	}
	return shields
}
