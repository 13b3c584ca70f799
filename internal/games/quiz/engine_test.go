package quiz

import (
	"testing"

	"github.com/vovakirdan/tummy-arcade/internal/config"
)

func newQuiz() *Engine {
	return NewEngine(config.DefaultQuizConfig())
}

func TestAnswerSequences(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		score   int
		tier    string
		message string
	}{
		{"all best", []int{10, 10, 10, 10, 10}, 50, "A", "Amazing! Your tummy is very happy! 🌟"},
		{"tier A floor", []int{10, 10, 10, 10, 0}, 40, "A", "Amazing! Your tummy is very happy! 🌟"},
		{"tier B ceiling", []int{10, 10, 10, 5, 0}, 35, "B", "Good job! A few tweaks and you'll be perfect. 👍"},
		{"tier B floor", []int{10, 10, 5, 0, 0}, 25, "B", "Good job! A few tweaks and you'll be perfect. 👍"},
		{"tier C ceiling", []int{10, 10, 0, 0, 0}, 20, "C", "Your tummy needs some love. Let's start healthy habits! 💚"},
		{"mostly poor", []int{0, 0, 5, 0, 0}, 5, "C", "Your tummy needs some love. Let's start healthy habits! 💚"},
		{"all poor", []int{0, 0, 0, 0, 0}, 0, "C", "Your tummy needs some love. Let's start healthy habits! 💚"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newQuiz()
			for i, a := range tc.answers {
				if e.IsTerminal() {
					t.Fatalf("terminal after %d answers", i)
				}
				e.Answer(a)
			}

			res, ok := e.Result()
			if !ok {
				t.Fatal("expected a result after five answers")
			}
			if res.Score != tc.score {
				t.Errorf("Score = %d, expected %d", res.Score, tc.score)
			}
			if res.Tier != tc.tier {
				t.Errorf("Tier = %q, expected %q", res.Tier, tc.tier)
			}
			if res.Message != tc.message {
				t.Errorf("Message = %q, expected %q", res.Message, tc.message)
			}
		})
	}
}

func TestNoResultBeforeEnd(t *testing.T) {
	e := newQuiz()
	for i := 0; i < 4; i++ {
		if _, ok := e.Result(); ok {
			t.Fatalf("result available after %d answers", i)
		}
		e.Answer(10)
	}
	if e.Index() != 4 {
		t.Errorf("Index = %d, expected 4", e.Index())
	}
}

func TestCurrentQuestion(t *testing.T) {
	e := newQuiz()

	q, ok := e.CurrentQuestion()
	if !ok {
		t.Fatal("expected an active question")
	}
	if q.Number != 1 || q.Text != "How often do you feel bloated after meals?" {
		t.Errorf("unexpected first question: %+v", q)
	}
	if len(q.Options) != 3 || q.Options[0].Score != 10 || q.Options[2].Score != 0 {
		t.Errorf("unexpected options: %+v", q.Options)
	}

	for i := 0; i < 5; i++ {
		e.Answer(5)
	}
	if _, ok := e.CurrentQuestion(); ok {
		t.Error("no question should be active in the result state")
	}
}

func TestAnswerAfterEndIsNoop(t *testing.T) {
	e := newQuiz()
	for i := 0; i < 5; i++ {
		e.Answer(5)
	}
	e.Answer(10)
	e.Answer(10)

	res, _ := e.Result()
	if res.Score != 25 || e.Index() != 5 {
		t.Errorf("answers after the end changed state: score=%d index=%d", res.Score, e.Index())
	}
}

func TestResetRestoresFirstQuestion(t *testing.T) {
	e := newQuiz()
	first, _ := e.CurrentQuestion()

	for i := 0; i < 5; i++ {
		e.Answer(10)
	}
	e.Reset()

	if e.Score() != 0 || e.Index() != 0 || e.IsTerminal() {
		t.Errorf("Reset should return to question 1 with score 0, got index=%d score=%d", e.Index(), e.Score())
	}
	q, ok := e.CurrentQuestion()
	if !ok || q.Text != first.Text {
		t.Errorf("first question after reset = %q, expected %q", q.Text, first.Text)
	}
}

func TestChooseOption(t *testing.T) {
	e := newQuiz()
	e.Choose(1) // "Sometimes" = 5
	e.Choose(7) // ignored
	e.Choose(-1)

	if e.Score() != 5 || e.Index() != 1 {
		t.Errorf("Choose: score=%d index=%d, expected 5 and 1", e.Score(), e.Index())
	}
}

func TestSnapshotOptionsAreCopies(t *testing.T) {
	e := newQuiz()
	q, _ := e.CurrentQuestion()
	q.Options[0].Score = 99

	again, _ := e.CurrentQuestion()
	if again.Options[0].Score != 10 {
		t.Error("mutating a returned question leaked into the engine")
	}
}
