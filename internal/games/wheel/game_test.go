package wheel

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tummy-arcade/internal/core"
)

func TestGameSpinLifecycle(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	spin := core.NewInputFrame()
	spin.Set(core.ActionJump)
	g.Step(spin)

	if !g.engine.Busy(g.now) {
		t.Fatal("wheel should be spinning after input")
	}

	// A second request mid-spin is ignored.
	g.Step(spin)
	if g.spins != 1 {
		t.Errorf("spins = %d, expected 1", g.spins)
	}

	var result *core.Event
	for i := 0; i < 4*60+5 && result == nil; i++ {
		res := g.Step(core.NewInputFrame())
		for _, ev := range res.Events {
			if ev.Name == "wheel_result" {
				ev := ev
				result = &ev
			}
		}
	}
	if result == nil {
		t.Fatal("expected a wheel_result event after the settle delay")
	}

	last, _ := g.engine.Last()
	if result.Params["label"] != last.Label {
		t.Errorf("event label %v, expected %q", result.Params["label"], last.Label)
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1 settled spin", g.State().Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() string {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2024})
		spin := core.NewInputFrame()
		spin.Set(core.ActionConfirm)
		g.Step(spin)
		s, _ := g.engine.Last()
		return s.Label
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestGameRenderRevealsLabel(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Press Space to spin") {
		t.Error("idle wheel should prompt for a spin")
	}

	spin := core.NewInputFrame()
	spin.Set(core.ActionJump)
	g.Step(spin)
	for i := 0; i < 5*60; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Render(scr)
	last, _ := g.engine.Last()
	if !strings.Contains(scr.String(), "Today: "+last.Label) {
		t.Errorf("settled wheel should reveal %q", last.Label)
	}
}
