// Package wheel implements the Habit Wheel: a six-sector prize wheel that
// lands on a daily habit after a fixed settle delay.
package wheel

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
)

// Spin describes one resolved draw. The outcome is known immediately; hosts
// reveal it only after SettleDelay has passed.
type Spin struct {
	Rotations   int // Full turns
	Offset      int // Extra degrees in [0, 360)
	Angle       int // Rotations*360 + Offset
	Index       int
	Label       string
	Started     time.Time
	SettleDelay time.Duration
}

// SettlesAt returns the moment the wheel comes to rest.
func (s Spin) SettlesAt() time.Time {
	return s.Started.Add(s.SettleDelay)
}

// Progress returns how far the animation has run at now, in [0, 1].
func (s Spin) Progress(now time.Time) float64 {
	if s.SettleDelay <= 0 {
		return 1
	}
	p := float64(now.Sub(s.Started)) / float64(s.SettleDelay)
	return core.ClampF(p, 0, 1)
}

// OutcomeIndex maps a total clockwise rotation to the sector under a fixed
// top pointer. Sector 0 is centered on the pointer at rest, so boundaries sit
// at phase, phase+width, and so on.
func OutcomeIndex(total, sectors, phase int) int {
	if sectors <= 0 {
		return 0
	}
	width := 360 / sectors
	r := ((total % 360) + 360) % 360
	normalized := (360 - r + phase) % 360
	return core.Min(normalized/width, sectors-1)
}

// Engine resolves spins and tracks the busy window between them.
type Engine struct {
	mu        sync.Mutex
	cfg       config.WheelConfig
	rng       core.RandSource
	last      Spin
	hasSpun   bool
	busyUntil time.Time
}

// NewEngine creates a wheel with the given labels and timing.
func NewEngine(cfg config.WheelConfig, rng core.RandSource) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Labels returns a copy of the sector labels in index order.
func (e *Engine) Labels() []string {
	out := make([]string, len(e.cfg.Labels))
	copy(out, e.cfg.Labels)
	return out
}

// Draw picks a whole number of rotations in [MinRotations, MaxRotations) and
// an integer offset in [0, 360).
func (e *Engine) Draw(rng core.RandSource) (rotations, offset int) {
	span := e.cfg.MaxRotations - e.cfg.MinRotations
	rotations = e.cfg.MinRotations
	if span > 0 {
		rotations += rng.Intn(span)
	}
	offset = rng.Intn(360)
	return rotations, offset
}

// OutcomeIndex maps a total rotation to a label index for this wheel.
func (e *Engine) OutcomeIndex(total int) int {
	return OutcomeIndex(total, len(e.cfg.Labels), e.cfg.PhaseDegrees)
}

// Spin draws a new result at now. While a previous spin is still settling it
// returns ok=false and changes nothing.
func (e *Engine) Spin(now time.Time) (Spin, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if now.Before(e.busyUntil) {
		return Spin{}, false
	}

	rotations, offset := e.Draw(e.rng)
	s := e.resolve(rotations, offset, now)

	e.last = s
	e.hasSpun = true
	e.busyUntil = s.SettlesAt()
	return s, true
}

func (e *Engine) resolve(rotations, offset int, now time.Time) Spin {
	total := rotations*360 + offset
	idx := e.OutcomeIndex(total)

	var label string
	if idx < len(e.cfg.Labels) {
		label = e.cfg.Labels[idx]
	}

	return Spin{
		Rotations:   rotations,
		Offset:      offset,
		Angle:       total,
		Index:       idx,
		Label:       label,
		Started:     now,
		SettleDelay: e.cfg.SettleDelay(),
	}
}

// Busy reports whether a spin is still settling at now.
func (e *Engine) Busy(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Before(e.busyUntil)
}

// Last returns the most recent spin, if any.
func (e *Engine) Last() (Spin, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.hasSpun
}

// Reset clears the last spin and the busy window.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = Spin{}
	e.hasSpun = false
	e.busyUntil = time.Time{}
}

// Await blocks until s has settled in wall-clock time. If ctx ends first it
// returns ctx.Err() and the caller must discard the result.
func (e *Engine) Await(ctx context.Context, s Spin) error {
	wait := time.Until(s.SettlesAt())
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
