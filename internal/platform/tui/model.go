package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

//go:generate go tool mockgen -destination=./mocks/score_store_mock.go -package=mocks . ScoreStore

// ScoreStore is the part of score storage the UI needs.
type ScoreStore interface {
	SaveScore(entry storage.ScoreEntry) (storage.ScoreEntry, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// Options carries per-session settings that are not part of the game itself.
type Options struct {
	Player      string        // Name stored with saved scores
	RepeatDelay time.Duration // Wait for the first auto-repeat, DefaultRepeatDelay if zero
	HoldRelease time.Duration // Gap between repeats, DefaultHoldRelease if zero
	Logger      *log.Logger
}

// Model is the Bubble Tea model for running a game.
// It owns the game's timers and the key latch and feeds the game one
// signal at a time from Update.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreStore
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	timers     map[core.TimerID]core.Timer
	timerGen   uint64
	latch      *KeyLatch
	keyMapper  *KeyMapper
	gameState  core.GameState
	lastRunID  string
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger,
		latch:     NewKeyLatch(opts.RepeatDelay, opts.HoldRelease, LatchedActions...),
		keyMapper: NewKeyMapper(),
		gameState: game.State(),
		timerGen:  nextTimerGen(),
	}
	m.timers = indexTimers(game.Timers())
	return m
}

func indexTimers(timers []core.Timer) map[core.TimerID]core.Timer {
	out := make(map[core.TimerID]core.Timer, len(timers))
	for _, t := range timers {
		out[t.ID] = t
	}
	return out
}

// Init starts every game timer.
func (m Model) Init() tea.Cmd {
	return timerCmds(m.timerGen, m.game.Timers())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TimerMsg:
		return m.handleTimer(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if ev, ok := m.latch.Press(action); ok {
		m.deliver(core.InputSignal(ev))
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without a resize hook restart with the new dimensions.
	// Timers already in flight keep running, so only the index is refreshed.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.timers = indexTimers(m.game.Timers())
	}
	return m, nil
}

// handleTimer delivers pending key releases and then the timer itself.
func (m Model) handleTimer(msg TimerMsg) (tea.Model, tea.Cmd) {
	t, ok := m.timers[msg.ID]
	if !ok || msg.Gen != m.timerGen {
		return m, nil
	}

	for _, ev := range m.latch.Expire() {
		m.deliver(core.InputSignal(ev))
	}
	m.deliver(core.TimerSignal(msg.ID))

	return m, timerCmd(m.timerGen, t)
}

// deliver feeds one signal to the game and records the score once per game over.
func (m *Model) deliver(sig core.Signal) {
	result := m.game.Handle(sig)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	entry, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.lastRunID = entry.RunID
	m.logger.Info("score saved", "run", entry.RunID, "score", entry.Score, "level", entry.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the run id of the most recently saved score.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result describes how a game session ended.
type Result struct {
	State      core.GameState
	RunID      string
	BackToMenu bool
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.State(), RunID: m.LastRunID(), BackToMenu: m.BackToMenu()}, nil
}
