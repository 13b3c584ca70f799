package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tummy-arcade/internal/games/quiz"
	_ "github.com/vovakirdan/tummy-arcade/internal/games/runner"
	_ "github.com/vovakirdan/tummy-arcade/internal/games/wheel"
)

func menuPress(t *testing.T, m MenuModel, key string) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMenuListsGamesInOrder(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "")
	var ids []string
	for _, it := range m.items {
		ids = append(ids, it.GameID)
	}
	if got := strings.Join(ids, ","); got != "runner,wheel,quiz" {
		t.Errorf("menu order = %s, want runner,wheel,quiz", got)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "")
	m, _ = menuPress(t, m, "down")
	m, _ = menuPress(t, m, "down")
	m, _ = menuPress(t, m, "down") // clamps at the last item
	m, cmd := menuPress(t, m, "enter")

	if cmd == nil {
		t.Error("select should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != "quiz" {
		t.Fatalf("Selected = %+v, want quiz", m.Selected())
	}
}

func TestMenuActions(t *testing.T) {
	tests := []struct {
		key    string
		check  func(MenuModel) bool
		expect string
	}{
		{"tab", MenuModel.WantsScoreboard, "scoreboard"},
		{"c", MenuModel.WantsRecipes, "recipes"},
		{"q", MenuModel.IsQuitting, "quit"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			m, _ := menuPress(t, NewMenuModel(nil, testConfig(), ""), tt.key)
			if !tt.check(m) {
				t.Errorf("key %q did not request %s", tt.key, tt.expect)
			}
		})
	}
}

func TestMenuShowsHighScoreAndGreeting(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("runner", 120); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	cfg := testConfig()
	cfg.ScreenW = 100
	view := NewMenuModel(store, cfg, "sam").View()

	for _, want := range []string{"Tummy Runner", "best 120", "Welcome back, sam", "Habit Wheel", "Tummy Quiz"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, testConfig(), "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
