package analytics

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tummy-arcade/internal/core"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func TestTrackerHelpers(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tests := []struct {
		name   string
		call   func()
		event  string
		params map[string]any
	}{
		{"game play", func() { tr.GamePlay("Tummy Runner") }, "game_play", map[string]any{"game_name": "Tummy Runner"}},
		{"game over", func() { tr.GameOver("Tummy Runner", 40) }, "game_over", map[string]any{"game_name": "Tummy Runner", "score": 40}},
		{"quiz", func() { tr.QuizComplete(25) }, "quiz_complete", map[string]any{"quiz_name": "DQ_Test", "score": 25}},
		{"auth", func() { tr.Auth("login") }, "auth_action", map[string]any{"action": "login"}},
		{"page", func() { tr.PageView("/recipes") }, "page_view", map[string]any{"page_path": "/recipes"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.call()
			ev := rec.last()
			if ev.Name != tc.event {
				t.Errorf("Name = %q, expected %q", ev.Name, tc.event)
			}
			if len(ev.Params) != len(tc.params) {
				t.Fatalf("Params = %v, expected %v", ev.Params, tc.params)
			}
			for k, v := range tc.params {
				if ev.Params[k] != v {
					t.Errorf("Params[%q] = %v, expected %v", k, ev.Params[k], v)
				}
			}
			if ev.SessionID != tr.SessionID() || ev.Time.IsZero() {
				t.Errorf("event not stamped: %+v", ev)
			}
		})
	}
}

func TestTrackerSessionID(t *testing.T) {
	a, b := NewTracker(nil), NewTracker(nil)

	if _, err := uuid.Parse(a.SessionID()); err != nil {
		t.Errorf("session ID is not a UUID: %v", err)
	}
	if a.SessionID() == b.SessionID() {
		t.Error("trackers should get distinct session IDs")
	}
}

func TestTrackerCopiesParams(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	params := map[string]any{"score": 10}
	tr.Track("custom", params)
	params["score"] = 99

	if rec.last().Params["score"] != 10 {
		t.Error("caller mutation leaked into the tracked event")
	}
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tr *Tracker
	tr.GamePlay("Tummy Runner")
	tr.Forward([]core.Event{{Name: "game_over"}})
	if tr.SessionID() != "" {
		t.Error("nil tracker should have no session")
	}
}

func TestForwardGameEvents(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec)

	tr.Forward([]core.Event{
		{Name: "game_over", Params: map[string]any{"score": 30}},
		{Name: "quiz_complete", Params: map[string]any{"score": 50}},
	})

	if len(rec.events) != 2 || rec.events[0].Name != "game_over" || rec.events[1].Name != "quiz_complete" {
		t.Errorf("unexpected forwarded events: %+v", rec.events)
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	tr := NewTracker(Multi(a, Nop{}, b))

	tr.Auth("logout")

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("expected one event per sink, got %d and %d", len(a.events), len(b.events))
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	tr := NewTracker(NewLogSink(logger))

	tr.GameOver("Tummy Runner", 70)

	out := buf.String()
	for _, want := range []string{"track", "event=game_over", "score=70", "session=" + tr.SessionID()} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
