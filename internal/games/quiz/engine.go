// Package quiz implements the Tummy Quiz, a fixed five-question digestive
// health check that scores each answer and maps the total to a tier.
package quiz

import "github.com/vovakirdan/tummy-arcade/internal/config"

// Option is one selectable answer.
type Option struct {
	Text  string
	Score int
}

// Question is the active prompt and its options.
type Question struct {
	Number  int // 1-based
	Text    string
	Options []Option
}

// Result is the outcome shown once every question is answered.
type Result struct {
	Score   int
	Tier    string
	Message string
}

// Engine walks through the question set. It is not safe for concurrent use;
// the host serializes input.
type Engine struct {
	cfg   config.QuizConfig
	index int
	score int
}

// NewEngine creates a quiz positioned at the first question.
func NewEngine(cfg config.QuizConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Name is the quiz identifier reported to analytics.
func (e *Engine) Name() string {
	return e.cfg.Name
}

// Len returns the number of questions.
func (e *Engine) Len() int {
	return len(e.cfg.Questions)
}

// Index returns the zero-based position of the active question.
func (e *Engine) Index() int {
	return e.index
}

// Score returns the running total.
func (e *Engine) Score() int {
	return e.score
}

// IsTerminal reports whether every question has been answered.
func (e *Engine) IsTerminal() bool {
	return e.index >= len(e.cfg.Questions)
}

// CurrentQuestion returns the active question. ok is false once the quiz is over.
func (e *Engine) CurrentQuestion() (Question, bool) {
	if e.IsTerminal() {
		return Question{}, false
	}

	q := e.cfg.Questions[e.index]
	opts := make([]Option, len(q.Options))
	for i, o := range q.Options {
		opts[i] = Option{Text: o.Text, Score: o.Score}
	}
	return Question{Number: e.index + 1, Text: q.Text, Options: opts}, true
}

// Answer adds score and moves to the next question. It does nothing after
// the last question.
func (e *Engine) Answer(score int) {
	if e.IsTerminal() {
		return
	}
	e.score += score
	e.index++
}

// Choose answers with the option at idx of the active question.
// Out-of-range indexes are ignored.
func (e *Engine) Choose(idx int) {
	q, ok := e.CurrentQuestion()
	if !ok || idx < 0 || idx >= len(q.Options) {
		return
	}
	e.Answer(q.Options[idx].Score)
}

// Result returns the scored outcome. ok is false until the quiz is over.
func (e *Engine) Result() (Result, bool) {
	if !e.IsTerminal() {
		return Result{}, false
	}

	res := Result{Score: e.score}
	if t, found := tierFor(e.cfg.Tiers, e.score); found {
		res.Tier = t.Name
		res.Message = t.Message
	}
	return res, true
}

// Reset returns to the first question with a zero score.
func (e *Engine) Reset() {
	e.index = 0
	e.score = 0
}

// tierFor picks the first tier whose threshold the score meets. Tiers are
// ordered highest first; the lowest acts as a catch-all.
func tierFor(tiers []config.QuizTier, score int) (config.QuizTier, bool) {
	for _, t := range tiers {
		if score >= t.MinScore {
			return t, true
		}
	}
	if len(tiers) > 0 {
		return tiers[len(tiers)-1], true
	}
	return config.QuizTier{}, false
}
