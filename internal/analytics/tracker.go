// Package analytics emits fire-and-forget usage events. Tracking never
// blocks or fails from the caller's point of view; sinks drop what they
// cannot deliver.
package analytics

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tummy-arcade/internal/core"
)

// Event names shared with the site's analytics.
const (
	EventGamePlay     = "game_play"
	EventGameOver     = "game_over"
	EventQuizComplete = "quiz_complete"
	EventAuth         = "auth_action"
	EventPageView     = "page_view"
)

// QuizName identifies the digestive quiz in quiz_complete events.
const QuizName = "DQ_Test"

// Event is one tracked occurrence.
type Event struct {
	Name      string
	Params    map[string]any
	SessionID string
	Time      time.Time
}

// Sink receives events. Emit must return promptly.
type Sink interface {
	Emit(Event)
}

// Tracker stamps events with a session ID and hands them to a sink.
// A nil *Tracker is valid and discards everything.
type Tracker struct {
	sink    Sink
	session string
	now     func() time.Time
}

// NewTracker creates a tracker with a fresh session ID.
func NewTracker(sink Sink) *Tracker {
	if sink == nil {
		sink = Nop{}
	}
	return &Tracker{
		sink:    sink,
		session: uuid.NewString(),
		now:     time.Now,
	}
}

// SessionID returns the ID stamped on every event from this tracker.
func (t *Tracker) SessionID() string {
	if t == nil {
		return ""
	}
	return t.session
}

// Track emits name with a copy of params.
func (t *Tracker) Track(name string, params map[string]any) {
	if t == nil {
		return
	}
	p := make(map[string]any, len(params))
	maps.Copy(p, params)

	t.sink.Emit(Event{
		Name:      name,
		Params:    p,
		SessionID: t.session,
		Time:      t.now(),
	})
}

// Forward tracks events reported by a game step.
func (t *Tracker) Forward(events []core.Event) {
	for _, ev := range events {
		t.Track(ev.Name, ev.Params)
	}
}

// GamePlay records that a game was started.
func (t *Tracker) GamePlay(gameName string) {
	t.Track(EventGamePlay, map[string]any{"game_name": gameName})
}

// GameOver records the final score of a run.
func (t *Tracker) GameOver(gameName string, score int) {
	t.Track(EventGameOver, map[string]any{"game_name": gameName, "score": score})
}

// QuizComplete records a finished quiz.
func (t *Tracker) QuizComplete(score int) {
	t.Track(EventQuizComplete, map[string]any{"quiz_name": QuizName, "score": score})
}

// Auth records a login, signup, or logout.
func (t *Tracker) Auth(action string) {
	t.Track(EventAuth, map[string]any{"action": action})
}

// PageView records navigation to a screen.
func (t *Tracker) PageView(path string) {
	t.Track(EventPageView, map[string]any{"page_path": path})
}
