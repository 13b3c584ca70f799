// Package runner implements Tummy Runner, a side-scrolling endless runner.
// The player jumps over junk food resting on the floor and collects healthy
// food floating above it; touching junk ends the run.
package runner

import (
	"sync"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
)

// Kind distinguishes obstacles that end the run from ones that score.
type Kind int

const (
	KindJunk Kind = iota
	KindHealthy
)

// String returns the kind name used in snapshots and analytics.
func (k Kind) String() string {
	if k == KindHealthy {
		return "healthy"
	}
	return "junk"
}

// Visual tags carried by obstacles for renderers that can draw them.
const (
	TagJunk    = "🍔"
	TagHealthy = "🥦"
)

// Phase is the engine lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseOver
	PhaseClosed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Player is the runner's avatar. X is fixed; Y is the top edge.
type Player struct {
	X, Y          float64
	Width, Height float64
	DY            float64 // Vertical velocity, positive is down
	JumpPower     float64 // Negative impulse applied on jump
	Gravity       float64 // Added to DY every tick
	Grounded      bool
}

// Rect returns the player's visual bounds.
func (p Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Obstacle is a piece of food scrolling toward the player.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Kind          Kind
	Tag           string
}

// Rect returns the obstacle's visual bounds.
func (o Obstacle) Rect() core.RectF {
	return core.RectF{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Snapshot is an immutable copy of the engine state for rendering.
type Snapshot struct {
	Player    Player
	Obstacles []Obstacle
	Score     int
	Speed     float64
	Phase     Phase
	Paused    bool
	Tick      uint64
}

// TickResult reports what happened during a single Tick.
type TickResult struct {
	Collected int  // Healthy obstacles consumed this tick
	Crashed   bool // Junk was hit this tick
}

// Engine owns the runner simulation for one session.
// All methods are safe to call from multiple goroutines; input and ticks are
// serialized on an internal lock.
type Engine struct {
	mu        sync.Mutex
	cfg       config.RunnerConfig
	rng       core.RandSource
	player    Player
	obstacles []Obstacle
	score     int
	speed     float64
	phase     Phase
	paused    bool
	tick      uint64
}

// NewEngine creates an engine in the Ready phase. Call Init to start a run.
func NewEngine(cfg config.RunnerConfig, rng core.RandSource) *Engine {
	return &Engine{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Init starts a fresh run from any phase.
func (e *Engine) Init() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.score = 0
	e.speed = e.cfg.Physics.InitialSpeed
	e.obstacles = e.obstacles[:0]
	e.paused = false
	e.tick = 0
	e.player = Player{
		X:         e.cfg.Player.X,
		Y:         e.cfg.Playfield.Floor - e.cfg.Player.Height,
		Width:     e.cfg.Player.Width,
		Height:    e.cfg.Player.Height,
		JumpPower: e.cfg.Physics.JumpPower,
		Gravity:   e.cfg.Physics.Gravity,
		Grounded:  true,
	}
	e.phase = PhaseRunning
}

// Jump launches the player if it is standing on the floor during an active run.
// Calls while airborne, paused, over, or before Init do nothing.
func (e *Engine) Jump() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseRunning || e.paused || !e.player.Grounded {
		return
	}
	e.player.DY = e.player.JumpPower
	e.player.Grounded = false
}

// SetPaused freezes or resumes ticking without ending the run.
func (e *Engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == PhaseRunning {
		e.paused = paused
	}
}

// Paused reports whether the run is paused.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Close halts the engine; later ticks and jumps are ignored until Init.
// Closing twice is harmless.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phase = PhaseClosed
	e.paused = false
}

// Tick advances the simulation by one frame. It is a no-op unless running.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	var res TickResult
	if e.phase != PhaseRunning || e.paused {
		return res
	}
	e.tick++

	e.stepPlayer()

	if e.rng.Float64() < e.cfg.Obstacles.SpawnChance {
		e.spawn()
	}

	e.stepObstacles(&res)

	e.speed += e.cfg.Physics.SpeedIncrement
	return res
}

// stepPlayer integrates gravity and clamps the player to the floor.
func (e *Engine) stepPlayer() {
	p := &e.player
	p.DY += p.Gravity
	p.Y += p.DY

	floor := e.cfg.Playfield.Floor
	if p.Y+p.Height > floor {
		p.Y = floor - p.Height
		p.DY = 0
		p.Grounded = true
	}
}

// spawn appends a new obstacle at the right edge of the playfield.
func (e *Engine) spawn() {
	oc := e.cfg.Obstacles

	obs := Obstacle{
		X:      e.cfg.Playfield.Width,
		Width:  oc.Width,
		Height: oc.Height,
		Kind:   KindHealthy,
		Tag:    TagHealthy,
	}
	if e.rng.Float64() > oc.JunkAbove {
		obs.Kind = KindJunk
		obs.Tag = TagJunk
		obs.Y = oc.JunkY
	} else {
		obs.Y = oc.HealthyMinY + e.rng.Float64()*oc.HealthyBand
	}

	e.obstacles = append(e.obstacles, obs)
}

// stepObstacles moves, collides, and collects obstacles in a single pass.
// Survivors are compacted in place so no entry is skipped or seen twice.
func (e *Engine) stepObstacles(res *TickResult) {
	pad := e.cfg.Obstacles.Padding
	hitbox := e.player.Rect().Inset(pad)

	live := e.obstacles[:0]
	for _, obs := range e.obstacles {
		obs.X -= e.speed

		if e.phase == PhaseRunning && hitbox.Intersects(obs.Rect().Inset(pad)) {
			if obs.Kind == KindJunk {
				e.phase = PhaseOver
				res.Crashed = true
			} else {
				e.score += e.cfg.Obstacles.HealthyScore
				res.Collected++
				continue
			}
		}

		if obs.X+obs.Width < 0 {
			continue
		}
		live = append(live, obs)
	}

	e.obstacles = live
}

// IsTerminal reports whether the run has ended on junk.
func (e *Engine) IsTerminal() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase == PhaseOver
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Snapshot returns a copy of the current state. It never mutates the engine.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	obstacles := make([]Obstacle, len(e.obstacles))
	copy(obstacles, e.obstacles)

	return Snapshot{
		Player:    e.player,
		Obstacles: obstacles,
		Score:     e.score,
		Speed:     e.speed,
		Phase:     e.phase,
		Paused:    e.paused,
		Tick:      e.tick,
	}
}
