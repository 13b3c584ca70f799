package core

import "maps"

// Action is a game intent. The host maps keys to actions, and one key may
// raise several so each game reads the one it understands: Up steers the
// quiz cursor and also jumps in the runner.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // w/up: previous option; also raises Jump
	ActionDown           // s/down: next option
	ActionJump           // space/up: runner jump, wheel spin
	ActionConfirm        // enter/space: answer the quiz, spin the wheel
	ActionBack           // b/esc: leave to the menu
	ActionRestart        // r: new run once the game is over
	ActionQuit           // q/ctrl+c: end the session
	ActionPause          // p: runner pause toggle
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions raised during one tick. The host reuses
// one frame and clears it after every Step, so games that keep a frame past
// Step must Clone it.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set raises a for this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was raised this tick. A zero frame has nothing.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame in place for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns a frame that does not share storage with f.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	maps.Copy(c.Actions, f.Actions)
	return c
}
