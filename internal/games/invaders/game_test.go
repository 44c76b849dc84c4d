package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: seed})
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	return g.Handle(core.InputSignal(core.Press(a)))
}

func release(g *Game, a core.Action) core.StepResult {
	return g.Handle(core.InputSignal(core.Release(a)))
}

func tickGame(g *Game) core.StepResult {
	return g.Handle(core.TimerSignal(TimerTick))
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("invaders")
	if err != nil {
		t.Fatalf("registry.Create(invaders) error = %v", err)
	}
	if g.ID() != "invaders" || g.Title() != "Space Invaders" {
		t.Errorf("registered game = %s/%s", g.ID(), g.Title())
	}
}

func TestGameTimers(t *testing.T) {
	g := newTestGame(t, 1)

	timers := g.Timers()
	if len(timers) != 2 {
		t.Fatalf("Timers() = %v, expected two timers", timers)
	}
	want := map[core.TimerID]time.Duration{
		TimerTick:      30 * time.Millisecond,
		TimerAlienFire: 400 * time.Millisecond,
	}
	for _, tm := range timers {
		if want[tm.ID] != tm.Interval {
			t.Errorf("timer %s interval = %v, expected %v", tm.ID, tm.Interval, want[tm.ID])
		}
	}
}

func TestGameHeldKeys(t *testing.T) {
	g := newTestGame(t, 1)

	steps := []struct {
		name    string
		do      func()
		wantVel float64
	}{
		{"press left", func() { press(g, core.ActionLeft) }, -ShipSpeed},
		{"press right over left", func() { press(g, core.ActionRight) }, ShipSpeed},
		{"release right falls back to left", func() { release(g, core.ActionRight) }, -ShipSpeed},
		{"release left stops", func() { release(g, core.ActionLeft) }, 0},
		{"press right", func() { press(g, core.ActionRight) }, ShipSpeed},
		{"release right", func() { release(g, core.ActionRight) }, 0},
	}

	for _, st := range steps {
		st.do()
		if got := g.Snapshot().Ship.Vel; got != st.wantVel {
			t.Errorf("%s: Ship.Vel = %v, expected %v", st.name, got, st.wantVel)
		}
	}
}

func TestGameShoot(t *testing.T) {
	g := newTestGame(t, 1)

	press(g, core.ActionShoot)
	release(g, core.ActionShoot)
	if n := len(g.Snapshot().ShipBullets); n != 1 {
		t.Errorf("ShipBullets after one press = %d, expected 1", n)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)

	res := press(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("Paused = false after pressing pause")
	}

	before := g.Snapshot().Hash()
	tickGame(g)
	g.Handle(core.TimerSignal(TimerAlienFire))
	press(g, core.ActionShoot)
	if g.Snapshot().Hash() != before {
		t.Error("state advanced while paused")
	}

	press(g, core.ActionPause)
	tickGame(g)
	if g.Snapshot().Hash() == before {
		t.Error("state did not advance after resuming")
	}
	if g.State().Paused {
		t.Error("Paused = true after resuming")
	}
}

func TestGameCannotPauseWhenOver(t *testing.T) {
	g := newTestGame(t, 1)
	g.state.GameOver = true

	press(g, core.ActionPause)
	if g.State().Paused {
		t.Error("game over should not be pausable")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionPause)
	g.state.GameOver = true
	g.state.Score = 90

	res := press(g, core.ActionRestart)
	if res.State.GameOver || res.State.Paused || res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("State() after restart = %+v, expected a fresh unpaused game", res.State)
	}
}

func TestGameBursts(t *testing.T) {
	g := newTestGame(t, 1)
	frames := g.cfg.Display.BurstFrames

	s := emptyState()
	s.Aliens = []Body{stillAlien(0, 300, 300), stillAlien(1, 100, 100)}
	s.ShipBullets = []Body{NewShipBullet(0, 300, 310)}
	s.Shields = []Body{NewShield(0, 100, 420)}
	s.AlienBullets = []Body{NewAlienBullet(1, 100, 410)}
	g.state = s

	tickGame(g)

	bursts := g.Bursts()
	if len(bursts) != 2 {
		t.Fatalf("Bursts() = %+v, expected alien0 and shield0", bursts)
	}
	if bursts[0].ID != "alien0" || bursts[1].ID != "shield0" {
		t.Errorf("Bursts() ids = %s, %s; expected alien0, shield0", bursts[0].ID, bursts[1].ID)
	}
	if bursts[0].FramesLeft != frames {
		t.Errorf("FramesLeft = %d, expected %d", bursts[0].FramesLeft, frames)
	}

	for i := 1; i < frames; i++ {
		tickGame(g)
	}
	if len(g.Bursts()) != 2 {
		t.Errorf("bursts expired early: %+v", g.Bursts())
	}
	tickGame(g)
	if len(g.Bursts()) != 0 {
		t.Errorf("Bursts() = %+v, expected all expired", g.Bursts())
	}
}

// drive runs n ticks with alien fire every 13 ticks and the autopilot at the keys.
func drive(g *Game, n int, observe func(core.GameState)) {
	pilot := NewAutopilot()
	for i := 0; i < n; i++ {
		res := tickGame(g)
		if i%13 == 12 {
			res = g.Handle(core.TimerSignal(TimerAlienFire))
		}
		for _, in := range pilot.Decide(g.Snapshot()) {
			res = g.Handle(core.InputSignal(in))
		}
		if observe != nil {
			observe(res.State)
		}
		if res.State.GameOver {
			return
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	drive(a, 600, nil)
	drive(b, 600, nil)

	if a.Snapshot().Hash() != b.Snapshot().Hash() {
		t.Error("same seed and inputs produced different states")
	}
}

func TestGameScoreAndLevelMonotonic(t *testing.T) {
	g := newTestGame(t, 7)

	prev := g.State()
	drive(g, 3000, func(st core.GameState) {
		if st.Score < prev.Score {
			t.Fatalf("Score decreased from %d to %d", prev.Score, st.Score)
		}
		if st.Level < prev.Level || st.Level > prev.Level+1 {
			t.Fatalf("Level jumped from %d to %d", prev.Level, st.Level)
		}
		if (st.Score-prev.Score)%PointsPerAlien != 0 {
			t.Fatalf("Score changed by %d, expected a multiple of %d", st.Score-prev.Score, PointsPerAlien)
		}
		prev = st
	})

	if g.State().Score == 0 {
		t.Error("autopilot never scored")
	}
}

func TestGameResizeKeepsState(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionShoot)
	before := g.Snapshot().Hash()

	g.Resize(20, 10)
	tickGame(g)
	if g.Snapshot().Hash() != before {
		t.Error("ticks should be ignored while the screen is too small")
	}

	g.Resize(80, 30)
	tickGame(g)
	if g.Snapshot().Hash() == before {
		t.Error("simulation should resume after growing the screen")
	}
	if len(g.Snapshot().ShipBullets) != 1 {
		t.Errorf("Resize() dropped bullets, got %d", len(g.Snapshot().ShipBullets))
	}
}
