package invaders

import (
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Burst marks where an alien or shield was destroyed so the renderer can
// flash it for a few frames after the body itself is gone.
type Burst struct {
	ID         string
	Kind       Kind
	X, Y       float64
	FramesLeft int
}

// Game adapts the reducer to the platform: it owns the current snapshot,
// turns signals into events, and keeps presentation-only state.
type Game struct {
	state State
	rng   *RNG

	paused    bool
	leftHeld  bool
	rightHeld bool

	// Presentation state, never fed back into Step
	bursts map[string]Burst
	frame  int

	runtime        core.RuntimeConfig
	cfg            config.InvadersConfig
	screenTooSmall bool
}

// New creates a new Invaders game instance.
func New() *Game {
	return &Game{
		state:  InitialState(),
		rng:    NewRNG(0),
		bursts: make(map[string]Burst),
		cfg:    config.DefaultInvadersConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	g.cfg = cfg

	g.screenTooSmall = runtime.ScreenW < cfg.Display.MinWidth || runtime.ScreenH < cfg.Display.MinHeight

	g.state = InitialState()
	g.rng = NewRNG(runtime.Seed)
	g.paused = false
	g.leftHeld = false
	g.rightHeld = false
	g.bursts = make(map[string]Burst)
	g.frame = 0
}

// Resize adapts to a new terminal size without touching the simulation.
// The playfield is logical, so only the too-small guard depends on it.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.cfg.Display.MinWidth || height < g.cfg.Display.MinHeight
}

// Timers returns the simulation clock and the alien fire clock.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{
		{ID: TimerTick, Interval: g.cfg.Timing.TickInterval},
		{ID: TimerAlienFire, Interval: g.cfg.Timing.AlienFireInterval},
	}
}

// Handle applies one signal from the platform loop.
func (g *Game) Handle(sig core.Signal) core.StepResult {
	switch sig.Kind {
	case core.SignalTimer:
		g.handleTimer(sig.Timer)
	case core.SignalInput:
		g.handleInput(sig.Input)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handleTimer(id core.TimerID) {
	if g.paused || g.screenTooSmall {
		return
	}
	switch id {
	case TimerTick:
		g.ageBursts()
		g.apply(Tick())
		g.frame++
	case TimerAlienFire:
		g.apply(AlienShoot())
	}
}

func (g *Game) handleInput(in core.InputEvent) {
	switch in.Action {
	case core.ActionLeft:
		g.leftHeld = !in.Released
		g.apply(Move(g.heldVelocity(in)))
	case core.ActionRight:
		g.rightHeld = !in.Released
		g.apply(Move(g.heldVelocity(in)))
	case core.ActionShoot:
		if !in.Released && !g.paused {
			g.apply(Shoot())
		}
	case core.ActionRestart:
		if !in.Released {
			g.paused = false
			g.apply(Restart())
		}
	case core.ActionPause:
		if !in.Released && !g.state.GameOver {
			g.paused = !g.paused
		}
	}
}

// heldVelocity resolves the ship velocity after a direction change.
// The most recent press wins; releasing it falls back to a key still held.
func (g *Game) heldVelocity(in core.InputEvent) float64 {
	if !in.Released {
		if in.Action == core.ActionLeft {
			return -ShipSpeed
		}
		return ShipSpeed
	}
	switch {
	case g.leftHeld:
		return -ShipSpeed
	case g.rightHeld:
		return ShipSpeed
	default:
		return 0
	}
}

// apply advances the snapshot and records bursts for what it destroyed.
func (g *Game) apply(e Event) {
	wasOver := g.state.GameOver
	g.state = Step(g.state, e, g.rng)
	if wasOver && e.Kind != EventRestart {
		// Frozen snapshot still carries the removals of its last frame
		return
	}
	for _, b := range g.state.Removed {
		if b.Kind != KindAlien && b.Kind != KindShield {
			continue
		}
		if g.cfg.Display.BurstFrames <= 0 {
			continue
		}
		g.bursts[b.ID] = Burst{ID: b.ID, Kind: b.Kind, X: b.X, Y: b.Y, FramesLeft: g.cfg.Display.BurstFrames}
	}
}

func (g *Game) ageBursts() {
	for id, b := range g.bursts {
		b.FramesLeft--
		if b.FramesLeft <= 0 {
			delete(g.bursts, id)
			continue
		}
		g.bursts[id] = b
	}
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// Bursts returns the active destruction markers ordered by id.
func (g *Game) Bursts() []Burst {
	out := make([]Burst, 0, len(g.bursts))
	for _, b := range g.bursts {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
