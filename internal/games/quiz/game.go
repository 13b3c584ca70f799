package quiz

import (
	"fmt"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
	"github.com/vovakirdan/tummy-arcade/internal/registry"
)

// GameName is the display title.
const GameName = "Tummy Quiz"

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts Engine to the arcade platform: a cursor over the options of
// the active question.
type Game struct {
	engine   *Engine
	cursor   int
	reported bool
}

// New creates a new Tummy Quiz instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "quiz"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameName
}

// Reset loads the question set and starts from the first question.
func (g *Game) Reset(_ core.RuntimeConfig) {
	cfg, err := config.LoadQuiz(configPath)
	if err != nil {
		cfg = config.DefaultQuizConfig()
	}
	g.engine = NewEngine(cfg)
	g.cursor = 0
	g.reported = false
}

// Interruptible reports that the host may leave the game at any time.
func (g *Game) Interruptible() bool {
	return true
}

// Engine exposes the underlying quiz.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if q, ok := g.engine.CurrentQuestion(); ok && len(q.Options) > 0 {
		switch {
		case in.Has(core.ActionUp):
			g.cursor = (g.cursor + len(q.Options) - 1) % len(q.Options)
		case in.Has(core.ActionDown):
			g.cursor = (g.cursor + 1) % len(q.Options)
		case in.Has(core.ActionConfirm):
			g.engine.Choose(g.cursor)
			g.cursor = 0
		}
	}

	var events []core.Event
	if res, ok := g.engine.Result(); ok && !g.reported {
		g.reported = true
		events = append(events, core.Event{
			Name:   "quiz_complete",
			Params: map[string]any{"quiz_name": g.engine.Name(), "score": res.Score},
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. The quiz is over once a result exists.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.IsTerminal(),
	}
}

// Render draws the active question or the result card.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	box := core.NewRect(2, 1, core.Max(10, w-4), core.Max(6, h-2))
	dst.DrawBox(box)
	dst.DrawTextCentered(1, " TUMMY QUIZ ")

	if res, ok := g.engine.Result(); ok {
		dst.DrawTextCentered(h/2-2, fmt.Sprintf("Your score: %d", res.Score))
		dst.DrawTextCentered(h/2, res.Message)
		dst.DrawTextCentered(h-3, "Press R to retake")
		return
	}

	q, _ := g.engine.CurrentQuestion()
	dst.DrawTextColor(5, 3, fmt.Sprintf("Question %d of %d", q.Number, g.engine.Len()), core.ColorMuted)
	dst.DrawText(5, 5, q.Text)

	for i, opt := range q.Options {
		y := 7 + i*2
		if i == g.cursor {
			dst.DrawTextColor(5, y, "> "+opt.Text, core.ColorHealthy)
		} else {
			dst.DrawText(7, y, opt.Text)
		}
	}

	dst.DrawTextCentered(h-3, "↑/↓ choose  •  Enter answer")
}

func init() {
	registry.Register("quiz", 2, func() registry.Game {
		return New()
	})
}
