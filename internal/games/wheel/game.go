package wheel

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
	"github.com/vovakirdan/tummy-arcade/internal/registry"
)

// GameName is the display title, also used as the analytics game_name.
const GameName = "Habit Wheel"

// EventResult is emitted when a spin settles.
const EventResult = "wheel_result"

const pointerChar = '▼'

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts Engine to the arcade platform. Time advances one tick per Step
// so animation and the busy window replay identically for a given seed.
type Game struct {
	engine   *Engine
	cfg      config.WheelConfig
	runtime  core.RuntimeConfig
	now      time.Time
	tickDur  time.Duration
	spinning bool
	spins    int
}

// New creates a new Habit Wheel instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "wheel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameName
}

// Reset loads config and puts the wheel at rest.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadWheel(configPath)
	if err != nil {
		cfg = config.DefaultWheelConfig()
	}
	g.cfg = cfg

	rate := runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.tickDur = time.Second / time.Duration(rate)
	g.now = time.Time{}
	g.spinning = false
	g.spins = 0

	g.engine = NewEngine(cfg, core.NewRand(runtime.Seed))
}

// Interruptible reports that the host may leave the game at any time.
func (g *Game) Interruptible() bool {
	return true
}

// Engine exposes the underlying wheel.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the clock by one tick and handles spin requests.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.now = g.now.Add(g.tickDur)

	var events []core.Event
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		if _, ok := g.engine.Spin(g.now); ok {
			g.spinning = true
			g.spins++
		}
	}

	if g.spinning && !g.engine.Busy(g.now) {
		g.spinning = false
		s, _ := g.engine.Last()
		events = append(events, core.Event{
			Name:   EventResult,
			Params: map[string]any{"game_name": GameName, "label": s.Label},
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. Score counts settled spins.
func (g *Game) State() core.GameState {
	settled := g.spins
	if g.spinning {
		settled--
	}
	return core.GameState{Score: settled}
}

// angle returns the wheel rotation to draw, easing out toward the target.
func (g *Game) angle() float64 {
	s, ok := g.engine.Last()
	if !ok {
		return 0
	}
	p := s.Progress(g.now)
	eased := 1 - math.Pow(1-p, 3)
	return float64(s.Angle) * eased
}

// Render draws the labels on a ring with the pointer fixed at the top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	labels := g.engine.Labels()
	w, h := dst.Width(), dst.Height()
	cx, cy := w/2, h/2+1
	rx := float64(w) / 4
	ry := float64(h) / 3

	rot := g.angle()
	under := g.engine.OutcomeIndex(int(math.Round(rot)))

	for i, label := range labels {
		theta := (float64(i)*360/float64(len(labels)) + rot) * math.Pi / 180
		x := cx + int(math.Round(rx*math.Sin(theta)))
		y := cy - int(math.Round(ry*math.Cos(theta)))

		c := core.ColorMuted
		if i == under {
			c = core.ColorHighlight
		}
		dst.DrawTextColor(x-len(label)/2, y, label, c)
	}

	top := cy - int(math.Round(ry)) - 1
	dst.SetColor(cx, top, pointerChar, core.ColorJunk)
	dst.DrawTextCentered(0, " HABIT WHEEL ")

	s, ok := g.engine.Last()
	switch {
	case g.spinning:
		dst.DrawTextCentered(h-1, "Spinning...")
	case ok:
		dst.DrawTextCentered(h-2, fmt.Sprintf("Today: %s", s.Label))
		dst.DrawTextCentered(h-1, "Space to spin again")
	default:
		dst.DrawTextCentered(h-1, "Press Space to spin")
	}
}

func init() {
	registry.Register("wheel", 1, func() registry.Game {
		return New()
	})
}
