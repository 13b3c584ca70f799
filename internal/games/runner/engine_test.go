package runner

import (
	"math"
	"sync"
	"testing"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
)

// scriptedRand replays fixed draws, then returns 0.99 (no spawn) forever.
type scriptedRand struct {
	floats []float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	return 0
}

func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnChance = 0
	return cfg
}

func newRunning(t *testing.T, cfg config.RunnerConfig, rng core.RandSource) *Engine {
	t.Helper()
	e := NewEngine(cfg, rng)
	e.Init()
	return e
}

func TestInitState(t *testing.T) {
	e := newRunning(t, config.DefaultRunnerConfig(), &scriptedRand{})
	snap := e.Snapshot()

	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", snap.Phase)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Speed != 4 {
		t.Errorf("Speed = %v, expected 4", snap.Speed)
	}
	if snap.Player.JumpPower != -13 {
		t.Errorf("JumpPower = %v, expected -13", snap.Player.JumpPower)
	}
	if !snap.Player.Grounded || snap.Player.Y+snap.Player.Height != 400 {
		t.Errorf("Player should rest on the floor, got %+v", snap.Player)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("Obstacles = %d, expected none", len(snap.Obstacles))
	}
}

func TestJumpBeforeInitIsNoop(t *testing.T) {
	e := NewEngine(config.DefaultRunnerConfig(), &scriptedRand{})
	e.Jump()
	res := e.Tick()

	snap := e.Snapshot()
	if snap.Phase != PhaseReady {
		t.Errorf("Phase = %v, expected ready", snap.Phase)
	}
	if snap.Player.DY != 0 || snap.Tick != 0 || res.Crashed {
		t.Errorf("engine should be untouched before Init, got %+v", snap)
	}
}

func TestFloorInvariant(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	e := newRunning(t, cfg, core.NewRand(7))
	floor := cfg.Playfield.Floor

	for i := 0; i < 5000; i++ {
		if i%37 == 0 {
			e.Jump()
		}
		e.Tick()
		if e.IsTerminal() {
			e.Init()
			continue
		}

		p := e.Snapshot().Player
		if p.Y+p.Height > floor {
			t.Fatalf("tick %d: player below floor, bottom=%v", i, p.Y+p.Height)
		}
		atRest := p.DY == 0 && p.Y+p.Height == floor
		if p.Grounded != atRest {
			t.Fatalf("tick %d: grounded=%v but dy=%v bottom=%v", i, p.Grounded, p.DY, p.Y+p.Height)
		}
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	once := newRunning(t, quietConfig(), &scriptedRand{})
	twice := newRunning(t, quietConfig(), &scriptedRand{})

	once.Jump()
	twice.Jump()
	twice.Jump()

	for i := 0; i < 30; i++ {
		if i == 5 {
			twice.Jump() // airborne, must be ignored
		}
		once.Tick()
		twice.Tick()

		a, b := once.Snapshot().Player, twice.Snapshot().Player
		if a != b {
			t.Fatalf("tick %d: trajectories diverge: %+v vs %+v", i, a, b)
		}
	}

	p := once.Snapshot().Player
	if p.Grounded {
		t.Error("player should still be airborne 30 ticks into a jump")
	}
}

func TestJumpPhysics(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	startY := e.Snapshot().Player.Y

	e.Jump()
	e.Tick()

	p := e.Snapshot().Player
	if math.Abs(p.DY-(-12.4)) > 1e-9 {
		t.Errorf("DY = %v, expected -12.4", p.DY)
	}
	if p.Y >= startY {
		t.Errorf("Jump should move player up, was %v, now %v", startY, p.Y)
	}

	// The player lands again eventually.
	for i := 0; i < 100 && !e.Snapshot().Player.Grounded; i++ {
		e.Tick()
	}
	if !e.Snapshot().Player.Grounded {
		t.Error("player never landed")
	}
}

func TestHealthyCollisionScores(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.obstacles = append(e.obstacles, Obstacle{X: 64, Y: 365, Width: 30, Height: 30, Kind: KindHealthy})

	res := e.Tick()

	snap := e.Snapshot()
	if snap.Score != 10 {
		t.Errorf("Score = %d, expected 10", snap.Score)
	}
	if res.Collected != 1 {
		t.Errorf("Collected = %d, expected 1", res.Collected)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("healthy obstacle should be consumed, %d remain", len(snap.Obstacles))
	}
	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected running", snap.Phase)
	}
}

func TestJunkCollisionEndsRun(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.score = 30
	e.obstacles = append(e.obstacles, Obstacle{X: 64, Y: 360, Width: 30, Height: 30, Kind: KindJunk})

	res := e.Tick()
	if !res.Crashed || !e.IsTerminal() {
		t.Fatal("junk collision should end the run")
	}

	frozen := e.Snapshot()
	for i := 0; i < 10; i++ {
		e.Jump()
		e.Tick()
	}
	after := e.Snapshot()

	if after.Score != 30 {
		t.Errorf("Score changed after game over: %d", after.Score)
	}
	if after.Tick != frozen.Tick || after.Player != frozen.Player || after.Speed != frozen.Speed {
		t.Error("ticks after game over should be no-ops")
	}
}

func TestJunkFreezesScoreWithinTick(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.obstacles = append(e.obstacles,
		Obstacle{X: 64, Y: 360, Width: 30, Height: 30, Kind: KindJunk},
		Obstacle{X: 70, Y: 365, Width: 30, Height: 30, Kind: KindHealthy},
	)

	e.Tick()

	if !e.IsTerminal() {
		t.Fatal("expected game over")
	}
	if e.Score() != 0 {
		t.Errorf("healthy overlap after the crash should not score, got %d", e.Score())
	}
}

func TestPaddedHitboxForgivesEdgeContact(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	// Player spans x 50..90. After moving 4 the junk spans 82..112: visual
	// overlap of 8, padded overlap of -2.
	e.obstacles = append(e.obstacles, Obstacle{X: 86, Y: 360, Width: 30, Height: 30, Kind: KindJunk})

	e.Tick()

	if e.IsTerminal() {
		t.Error("edge contact within padding should not end the run")
	}
}

func TestOffscreenObstaclesRemovedSameTick(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.obstacles = append(e.obstacles,
		Obstacle{X: -25, Y: 100, Width: 30, Height: 30, Kind: KindHealthy},
		Obstacle{X: 500, Y: 100, Width: 30, Height: 30, Kind: KindHealthy},
	)

	for i := 0; i < 5; i++ {
		e.Tick()
		for _, obs := range e.Snapshot().Obstacles {
			if obs.X+obs.Width < 0 {
				t.Fatalf("tick %d: off-screen obstacle survived: %+v", i, obs)
			}
		}
	}

	if n := len(e.Snapshot().Obstacles); n != 1 {
		t.Errorf("expected 1 obstacle left, got %d", n)
	}
}

func TestRemovalDoesNotSkipNeighbours(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.obstacles = append(e.obstacles,
		Obstacle{X: 64, Y: 365, Width: 30, Height: 30, Kind: KindHealthy},
		Obstacle{X: 60, Y: 370, Width: 30, Height: 30, Kind: KindHealthy},
		Obstacle{X: -40, Y: 100, Width: 30, Height: 30, Kind: KindHealthy},
		Obstacle{X: 600, Y: 100, Width: 30, Height: 30, Kind: KindJunk},
	)

	res := e.Tick()

	if res.Collected != 2 || e.Score() != 20 {
		t.Errorf("expected both adjacent healthy items collected, got %d (score %d)", res.Collected, e.Score())
	}
	obs := e.Snapshot().Obstacles
	if len(obs) != 1 || obs[0].X != 596 {
		t.Errorf("expected only the far junk to remain, got %+v", obs)
	}
}

func TestSpawnPlacement(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
		kind  Kind
		y     float64
	}{
		{"junk on the floor", []float64{0.0, 0.9}, KindJunk, 360},
		{"healthy in the band", []float64{0.0, 0.2, 0.5}, KindHealthy, 200},
		{"healthy at band floor", []float64{0.005, 0.5, 0.0}, KindHealthy, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newRunning(t, config.DefaultRunnerConfig(), &scriptedRand{floats: tc.draws})
			e.Tick()

			obs := e.Snapshot().Obstacles
			if len(obs) != 1 {
				t.Fatalf("expected one spawn, got %d", len(obs))
			}
			if obs[0].Kind != tc.kind {
				t.Errorf("Kind = %v, expected %v", obs[0].Kind, tc.kind)
			}
			if obs[0].Y != tc.y {
				t.Errorf("Y = %v, expected %v", obs[0].Y, tc.y)
			}
			// Spawned at the right edge, then moved once this tick.
			if obs[0].X != 800-4 {
				t.Errorf("X = %v, expected 796", obs[0].X)
			}
		})
	}
}

func TestNoSpawnAboveChance(t *testing.T) {
	e := newRunning(t, config.DefaultRunnerConfig(), &scriptedRand{floats: []float64{0.01}})
	e.Tick()
	if n := len(e.Snapshot().Obstacles); n != 0 {
		t.Errorf("a draw equal to the spawn chance should not spawn, got %d", n)
	}
}

func TestSpeedRamp(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	prev := e.Snapshot().Speed
	for i := 0; i < 1000; i++ {
		e.Tick()
		cur := e.Snapshot().Speed
		if cur <= prev {
			t.Fatalf("tick %d: speed did not increase (%v -> %v)", i, prev, cur)
		}
		prev = cur
	}
	if math.Abs(prev-4.5) > 1e-9 {
		t.Errorf("Speed after 1000 ticks = %v, expected 4.5", prev)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.Close()
	e.Close()

	e.Jump()
	e.Tick()
	snap := e.Snapshot()
	if snap.Phase != PhaseClosed || snap.Tick != 0 {
		t.Errorf("closed engine should ignore ticks, got %+v", snap)
	}

	e.Init()
	if e.Phase() != PhaseRunning {
		t.Error("Init should restart a closed engine")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.SetPaused(true)
	e.Jump()
	e.Tick()

	snap := e.Snapshot()
	if snap.Tick != 0 || !snap.Player.Grounded {
		t.Errorf("paused engine should not move, got %+v", snap)
	}

	e.SetPaused(false)
	e.Tick()
	if e.Snapshot().Tick != 1 {
		t.Error("engine should resume after unpause")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newRunning(t, quietConfig(), &scriptedRand{})
	e.obstacles = append(e.obstacles, Obstacle{X: 500, Y: 100, Width: 30, Height: 30, Kind: KindHealthy})

	snap := e.Snapshot()
	snap.Obstacles[0].X = -1000
	snap.Player.Y = 0

	again := e.Snapshot()
	if again.Obstacles[0].X != 500 || again.Player.Y != 360 {
		t.Error("mutating a snapshot leaked into the engine")
	}
}

func TestConcurrentJumpAndTick(t *testing.T) {
	e := newRunning(t, config.DefaultRunnerConfig(), core.NewRand(3))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			e.Jump()
		}
	}()
	for i := 0; i < 500; i++ {
		e.Tick()
	}
	wg.Wait()

	p := e.Snapshot().Player
	if p.Y+p.Height > 400 {
		t.Errorf("player below floor after concurrent input: %+v", p)
	}
}
