package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionShoot          // Space - fire
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionShoot:   "Shoot",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputEvent is one discrete key transition delivered to a game.
// Released is false for a press and true for the matching release.
type InputEvent struct {
	Action   Action
	Released bool
}

// Press builds a key-down event for the action.
func Press(a Action) InputEvent {
	return InputEvent{Action: a}
}

// Release builds a key-up event for the action.
func Release(a Action) InputEvent {
	return InputEvent{Action: a, Released: true}
}

// String renders the event as "Left" or "Left(up)".
func (e InputEvent) String() string {
	if e.Released {
		return e.Action.String() + "(up)"
	}
	return e.Action.String()
}
