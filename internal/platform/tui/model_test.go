package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui/mocks"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame records every signal it receives and reports a scripted state.
type fakeGame struct {
	state   core.GameState
	signals []core.Signal
	resets  int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Handle(sig core.Signal) core.StepResult {
	g.signals = append(g.signals, sig)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Timers() []core.Timer {
	return []core.Timer{{ID: "tick", Interval: 10 * time.Millisecond}}
}

// resizableGame additionally follows terminal resizes.
type resizableGame struct {
	fakeGame
	width, height int
}

func (g *resizableGame) Resize(w, h int) { g.width, g.height = w, h }

func newTestModel(game *fakeGame, store ScoreStore) Model {
	return NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Player: "tester"})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func fire(m Model, id core.TimerID) TimerMsg {
	return TimerMsg{ID: id, Gen: m.timerGen}
}

func TestModelResetsGameOnCreate(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
	if m.Init() == nil {
		t.Error("Init() should arm the game timers")
	}
}

func TestModelLatchesMovementKeys(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	if len(game.signals) != 1 {
		t.Fatalf("signals = %v, expected a single press", game.signals)
	}
	if game.signals[0] != core.InputSignal(core.Press(core.ActionLeft)) {
		t.Errorf("signal = %v, expected input:Left", game.signals[0])
	}

	// Force the hold window to lapse; the next timer delivers the release first
	m.latch.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, cmd := update(t, m, fire(m, "tick"))
	if cmd == nil {
		t.Error("known timer should be re-armed")
	}

	expected := []core.Signal{
		core.InputSignal(core.Press(core.ActionLeft)),
		core.InputSignal(core.Release(core.ActionLeft)),
		core.TimerSignal("tick"),
	}
	if len(game.signals) != len(expected) {
		t.Fatalf("signals = %v, expected %v", game.signals, expected)
	}
	for i := range expected {
		if game.signals[i] != expected[i] {
			t.Errorf("signals[%d] = %v, expected %v", i, game.signals[i], expected[i])
		}
	}
}

func TestModelHeldShootFiresOnce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game := invaders.New()
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})

	// Terminal auto-repeat of one held space bar
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, space)
	}
	if n := len(game.Snapshot().ShipBullets); n != 1 {
		t.Fatalf("ship bullets after one held press = %d, expected 1", n)
	}

	// Letting go and pressing again fires a second bullet
	m.latch.now = func() time.Time { return time.Now().Add(time.Hour) }
	m, _ = update(t, m, fire(m, invaders.TimerTick))
	m.latch.now = time.Now
	_, _ = update(t, m, space)
	if n := len(game.Snapshot().ShipBullets); n != 2 {
		t.Errorf("ship bullets after a second press = %d, expected 2", n)
	}
}

func TestModelHeldKeysDeliverOnePress(t *testing.T) {
	keys := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"restart", runeKey('r'), core.ActionRestart},
		{"pause", runeKey('p'), core.ActionPause},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
	}

	for _, tc := range keys {
		t.Run(tc.name, func(t *testing.T) {
			game := &fakeGame{}
			m := newTestModel(game, nil)
			for i := 0; i < 4; i++ {
				m, _ = update(t, m, tc.msg)
			}
			if len(game.signals) != 1 || game.signals[0] != core.InputSignal(core.Press(tc.action)) {
				t.Errorf("signals = %v, expected a single %v press", game.signals, tc.action)
			}
		})
	}
}

func TestModelUnknownTimer(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	_, cmd := update(t, m, fire(m, "nope"))
	if cmd != nil {
		t.Error("unknown timer should not be re-armed")
	}
	if len(game.signals) != 0 {
		t.Errorf("signals = %v, expected none", game.signals)
	}
}

func TestModelDropsStaleTimers(t *testing.T) {
	game := &fakeGame{}
	old := newTestModel(game, nil)
	m := newTestModel(game, nil)

	_, cmd := update(t, m, fire(old, "tick"))
	if cmd != nil {
		t.Error("timer armed by another model should not be re-armed")
	}
	if len(game.signals) != 0 {
		t.Errorf("signals = %v, expected none", game.signals)
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)

	store.EXPECT().
		SaveScore(gomock.Any()).
		DoAndReturn(func(e storage.ScoreEntry) (storage.ScoreEntry, error) {
			if e.GameID != "fake" || e.Player != "tester" || e.Score != 120 || e.Level != 2 {
				t.Errorf("SaveScore(%+v) has unexpected fields", e)
			}
			e.RunID = "run-1"
			return e, nil
		}).
		Times(1)

	game := &fakeGame{}
	m := newTestModel(game, store)

	game.state = core.GameState{Score: 120, Level: 2, GameOver: true}
	m, _ = update(t, m, fire(m, "tick"))
	m, _ = update(t, m, fire(m, "tick"))

	if m.LastRunID() != "run-1" {
		t.Errorf("LastRunID() = %q, expected run-1", m.LastRunID())
	}
}

func TestModelSavesAgainAfterRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().SaveScore(gomock.Any()).Return(storage.ScoreEntry{}, nil).Times(2)

	game := &fakeGame{}
	m := newTestModel(game, store)

	game.state = core.GameState{Score: 10, Level: 1, GameOver: true}
	m, _ = update(t, m, fire(m, "tick"))

	game.state = core.GameState{Level: 1}
	m, _ = update(t, m, runeKey('r'))

	game.state = core.GameState{Score: 30, Level: 1, GameOver: true}
	_, _ = update(t, m, fire(m, "tick"))
}

func TestModelSkipsZeroScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)

	game := &fakeGame{}
	m := newTestModel(game, store)

	game.state = core.GameState{Level: 1, GameOver: true}
	_, _ = update(t, m, fire(m, "tick"))
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().SaveScore(gomock.Any()).Return(storage.ScoreEntry{}, errors.New("disk full"))

	game := &fakeGame{}
	m := newTestModel(game, store)

	game.state = core.GameState{Score: 10, Level: 1, GameOver: true}
	m, cmd := update(t, m, fire(m, "tick"))
	if cmd == nil {
		t.Error("timer should keep running after a failed save")
	}
	if m.LastRunID() != "" {
		t.Errorf("LastRunID() = %q, expected empty", m.LastRunID())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc during play should be ignored")
	}

	game.state = core.GameState{Paused: true}
	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("esc while paused should leave for the menu")
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer", func(t *testing.T) {
		game := &resizableGame{}
		m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{})

		_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
		if game.width != 100 || game.height != 40 {
			t.Errorf("Resize() got %dx%d, expected 100x40", game.width, game.height)
		}
		if game.resets != 1 {
			t.Errorf("resets = %d, expected no reset on resize", game.resets)
		}
	})

	t.Run("plain game resets", func(t *testing.T) {
		game := &fakeGame{}
		m := newTestModel(game, nil)

		m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
		if game.resets != 2 {
			t.Errorf("resets = %d, expected 2", game.resets)
		}
		if m.screen.Width() != 100 || m.screen.Height() != 40 {
			t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
		}
	})
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if view := m.View(); len(view) == 0 {
		t.Error("View() should render the game")
	}
}
