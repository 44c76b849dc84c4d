// Package sim plays the game headlessly: the scheduler drives the game's own
// timers while the autopilot feeds key transitions through the input channel.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/scheduler"
)

// inputBuffer bounds autopilot decisions waiting to be forwarded.
const inputBuffer = 64

// Options configures a headless run.
type Options struct {
	Seed   int64
	Ticks  int     // Stop after this many simulation ticks, 0 runs until game over
	Speed  float64 // Timer speed-up factor, 1 is real time
	Logger *log.Logger
}

// Report summarises a finished run.
type Report struct {
	Ticks    int
	Signals  int
	Dropped  int // Autopilot events dropped because the input buffer was full
	Score    int
	Level    int
	GameOver bool
	Hash     uint64
	Elapsed  time.Duration
}

// ErrBadSpeed is returned for a non-positive speed factor.
var ErrBadSpeed = errors.New("sim: speed must be positive")

// Run plays one game until it ends, the tick budget is spent, or ctx is done.
// The report is filled in even when ctx ends the run early.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Speed <= 0 {
		return Report{}, ErrBadSpeed
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := invaders.New()
	game.Reset(core.RuntimeConfig{
		ScreenW: core.DefaultConfig().ScreenW,
		ScreenH: core.DefaultConfig().ScreenH,
		Seed:    opts.Seed,
	})

	timers := scale(game.Timers(), opts.Speed)
	input := make(chan core.InputEvent, inputBuffer)
	pilot := invaders.NewAutopilot()
	sched := scheduler.New(timers, input, logger)

	var rep Report
	start := time.Now()

	err := sched.Run(ctx, func(_ context.Context, sig core.Signal) bool {
		rep.Signals++
		res := game.Handle(sig)

		if sig.Kind != core.SignalTimer || sig.Timer != invaders.TimerTick {
			return false
		}
		rep.Ticks++

		if res.State.GameOver {
			return true
		}
		if opts.Ticks > 0 && rep.Ticks >= opts.Ticks {
			return true
		}

		for _, ev := range pilot.Decide(game.Snapshot()) {
			select {
			case input <- ev:
			default:
				rep.Dropped++
			}
		}
		return false
	})

	rep.Elapsed = time.Since(start)
	st := game.State()
	rep.Score = st.Score
	rep.Level = st.Level
	rep.GameOver = st.GameOver
	rep.Hash = game.Snapshot().Hash()

	if err != nil {
		return rep, fmt.Errorf("sim: %w", err)
	}

	logger.Debug("simulation finished",
		"ticks", rep.Ticks,
		"signals", rep.Signals,
		"score", rep.Score,
		"level", rep.Level,
		"game_over", rep.GameOver,
	)
	return rep, nil
}

// scale shortens every timer interval by the speed factor.
func scale(timers []core.Timer, speed float64) []core.Timer {
	out := make([]core.Timer, len(timers))
	for i, t := range timers {
		iv := time.Duration(float64(t.Interval) / speed)
		out[i] = core.Timer{ID: t.ID, Interval: max(iv, time.Microsecond)}
	}
	return out
}
