package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
	"github.com/vovakirdan/tummy-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	PlayerEye   = '◉'
	JunkChar    = '▓'
	HealthyChar = '♣'
	GroundChar  = '═'
)

// GameName is the display title, also used as the analytics game_name.
const GameName = "Tummy Runner"

// Game adapts Engine to the arcade platform: input mapping and terminal rendering.
type Game struct {
	engine  *Engine
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// New creates a new Tummy Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameName
}

// Reset loads config and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyRunnerPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	if g.engine != nil {
		g.engine.Close()
	}
	g.engine = NewEngine(cfg, core.NewRand(runtime.Seed))
	g.engine.Init()
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.engine.IsTerminal() {
		g.engine.SetPaused(!g.engine.Paused())
	}

	if in.Has(core.ActionJump) {
		g.engine.Jump()
	}

	res := g.engine.Tick()

	var events []core.Event
	if res.Crashed {
		events = append(events, core.Event{
			Name:   "game_over",
			Params: map[string]any{"game_name": GameName, "score": g.engine.Score()},
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.engine.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		GameOver: snap.Phase == PhaseOver,
		Paused:   snap.Paused,
	}
}

// viewport maps playfield units to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func (v viewport) rect(r core.RectF) core.Rect {
	x := int(math.Floor(r.X * v.sx))
	y := v.top + int(math.Floor(r.Y*v.sy))
	w := core.Max(1, int(math.Round(r.W*v.sx)))
	h := core.Max(1, int(math.Round(r.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.engine.Snapshot()

	const hud = 1
	vp := viewport{
		sx:  float64(dst.Width()) / g.cfg.Playfield.Width,
		sy:  float64(dst.Height()-hud-1) / g.cfg.Playfield.Floor,
		top: hud,
	}
	groundY := vp.top + int(math.Round(g.cfg.Playfield.Floor*vp.sy))

	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorMuted)

	for _, obs := range snap.Obstacles {
		r := vp.rect(obs.Rect())
		if obs.Kind == KindJunk {
			dst.DrawRectColor(r, JunkChar, core.ColorJunk)
		} else {
			dst.DrawRectColor(r, HealthyChar, core.ColorHealthy)
		}
	}

	pr := vp.rect(snap.Player.Rect())
	dst.DrawRectColor(pr, PlayerChar, core.ColorBrand)
	dst.SetColor(pr.Right()-1, pr.Y, PlayerEye, core.ColorWhite)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	speed := fmt.Sprintf(" Spd: %.2f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speed)-2, 0, speed)

	if snap.Paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if snap.Phase == PhaseOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", 0, func() registry.Game {
		return New()
	})
}
