// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TimerMsg is sent each time one of the game's timers fires.
// Gen ties the firing to the Model that armed it, so timers left in flight
// by a finished game are dropped instead of being re-armed by the next one.
type TimerMsg struct {
	ID  core.TimerID
	Gen uint64
	At  time.Time
}

var timerGen atomic.Uint64

func nextTimerGen() uint64 {
	return timerGen.Add(1)
}

// timerCmd schedules the next firing of a single game timer.
// Bubble Tea ticks are one-shot, so the model re-arms the timer on delivery.
func timerCmd(gen uint64, t core.Timer) tea.Cmd {
	return tea.Tick(t.Interval, func(at time.Time) tea.Msg {
		return TimerMsg{ID: t.ID, Gen: gen, At: at}
	})
}

// timerCmds arms every timer the game declared.
func timerCmds(gen uint64, timers []core.Timer) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		if t.Interval <= 0 {
			continue
		}
		cmds = append(cmds, timerCmd(gen, t))
	}
	return tea.Batch(cmds...)
}
