package invaders

import "math"

// Phase is the coarse state of the game derived from its flags.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelAdvance
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelAdvance:
		return "level-advance"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the whole game.
// Step never writes to a State it receives; it always returns a new one.
type State struct {
	Ship         Body
	ShipBullets  []Body
	Aliens       []Body
	AlienBullets []Body
	Shields      []Body

	// NextID numbers the next bullet fired by either side.
	NextID int

	// Removed lists the entities the producing step took off the field.
	Removed []Body

	GameOver  bool
	Score     int
	Level     int
	NextLevel bool // wave cleared; the next event resets the layout
}

// Phase derives the state machine position. GameOver dominates.
func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.NextLevel:
		return PhaseLevelAdvance
	default:
		return PhasePlaying
	}
}

// clone copies every collection so the result can be modified freely.
// Removed is reset; each step reports only its own removals.
func (s State) clone() State {
	out := s
	out.ShipBullets = cloneBodies(s.ShipBullets)
	out.Aliens = cloneBodies(s.Aliens)
	out.AlienBullets = cloneBodies(s.AlienBullets)
	out.Shields = cloneBodies(s.Shields)
	out.Removed = []Body{}
	return out
}

func cloneBodies(in []Body) []Body {
	out := make([]Body, len(in))
	copy(out, in)
	return out
}

// Hash returns a simple hash of the state for determinism testing.
func (s State) Hash() uint64 {
	h := uint64(17)
	h = hashBody(h, s.Ship)
	for _, group := range [][]Body{s.ShipBullets, s.Aliens, s.AlienBullets, s.Shields, s.Removed} {
		h = h*31 + uint64(len(group))
		for _, b := range group {
			h = hashBody(h, b)
		}
	}
	h = h*31 + uint64(s.NextID) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level)  //#nosec G115 -- hash computation
	h = h*31 + boolBit(s.GameOver)
	h = h*31 + boolBit(s.NextLevel)
	return h
}

func hashBody(h uint64, b Body) uint64 {
	h = h*31 + uint64(b.Kind) //#nosec G115 -- hash computation
	for i := 0; i < len(b.ID); i++ {
		h = h*31 + uint64(b.ID[i])
	}
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.Vel)
	h = h*31 + math.Float64bits(b.Radius)
	return h
}

func boolBit(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
