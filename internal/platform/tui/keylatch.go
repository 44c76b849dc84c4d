package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	// DefaultRepeatDelay is how long a fresh press waits for the first auto-repeat.
	// It sits above the common 250-500ms terminal repeat delays.
	DefaultRepeatDelay = 500 * time.Millisecond
	// DefaultHoldRelease is how long a repeating key stays down without a repeat.
	DefaultHoldRelease = 180 * time.Millisecond
)

// LatchedActions are the actions whose auto-repeats are swallowed while the
// game runs. Each yields a single press per physical key-down.
var LatchedActions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionShoot,
	core.ActionRestart,
	core.ActionPause,
}

// KeyLatch turns the terminal's key stream into press/release edges.
// Terminals only report key-down (plus auto-repeat), so a latched action is
// considered held until no repeat arrives within its window: the repeat
// delay after the first press, the hold window once repeats are flowing.
type KeyLatch struct {
	delay   time.Duration
	hold    time.Duration
	now     func() time.Time
	latched map[core.Action]bool
	held    map[core.Action]time.Time // release deadline per held action
}

// NewKeyLatch creates a latch for the given actions.
// Actions not listed pass through as bare presses.
func NewKeyLatch(delay, hold time.Duration, actions ...core.Action) *KeyLatch {
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	if hold <= 0 {
		hold = DefaultHoldRelease
	}
	latched := make(map[core.Action]bool, len(actions))
	for _, a := range actions {
		latched[a] = true
	}
	return &KeyLatch{
		delay:   delay,
		hold:    hold,
		now:     time.Now,
		latched: latched,
		held:    make(map[core.Action]time.Time),
	}
}

// Press records a key arrival and reports the edge to deliver, if any.
// A repeat of an already held action only pushes its deadline out.
func (l *KeyLatch) Press(a core.Action) (core.InputEvent, bool) {
	if a == core.ActionNone {
		return core.InputEvent{}, false
	}
	if !l.latched[a] {
		return core.Press(a), true
	}
	if _, down := l.held[a]; down {
		l.held[a] = l.now().Add(l.hold)
		return core.InputEvent{}, false
	}
	l.held[a] = l.now().Add(l.delay)
	return core.Press(a), true
}

// Expire synthesises releases for every held action past its deadline.
// Releases come back in action order so replay is stable.
func (l *KeyLatch) Expire() []core.InputEvent {
	now := l.now()
	var out []core.InputEvent
	for a, deadline := range l.held {
		if now.Before(deadline) {
			continue
		}
		delete(l.held, a)
		out = append(out, core.Release(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

// ReleaseAll drops every held action and returns their releases.
func (l *KeyLatch) ReleaseAll() []core.InputEvent {
	out := make([]core.InputEvent, 0, len(l.held))
	for a := range l.held {
		out = append(out, core.Release(a))
	}
	clear(l.held)
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}

// Held reports whether the action is currently latched down.
func (l *KeyLatch) Held(a core.Action) bool {
	_, ok := l.held[a]
	return ok
}
