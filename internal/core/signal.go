package core

import "time"

// TimerID names a periodic timer owned by a game.
type TimerID string

// Timer declares a periodic signal a game wants delivered.
type Timer struct {
	ID       TimerID
	Interval time.Duration
}

// SignalKind distinguishes timer firings from input transitions.
type SignalKind int

const (
	SignalInput SignalKind = iota
	SignalTimer
)

func (k SignalKind) String() string {
	switch k {
	case SignalInput:
		return "input"
	case SignalTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Signal is the single event type flowing from the platform into a game.
// Exactly one of Timer or Input is meaningful, selected by Kind.
type Signal struct {
	Kind  SignalKind
	Timer TimerID
	Input InputEvent
}

// TimerSignal wraps a timer firing.
func TimerSignal(id TimerID) Signal {
	return Signal{Kind: SignalTimer, Timer: id}
}

// InputSignal wraps an input transition.
func InputSignal(ev InputEvent) Signal {
	return Signal{Kind: SignalInput, Input: ev}
}

func (s Signal) String() string {
	if s.Kind == SignalTimer {
		return "timer:" + string(s.Timer)
	}
	return "input:" + s.Input.String()
}
