package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tummy-arcade/internal/analytics"
	"github.com/vovakirdan/tummy-arcade/internal/content"
)

type fakeSource struct {
	recipes []content.Card
	games   []content.Card
	hero    *content.Hero
	err     error
}

func (f fakeSource) Recipes(context.Context) ([]content.Card, error) { return f.recipes, f.err }
func (f fakeSource) Games(context.Context) ([]content.Card, error)   { return f.games, f.err }

func (f fakeSource) Hero(context.Context) (content.Hero, error) {
	if f.hero == nil {
		return content.Hero{}, content.ErrNotFound
	}
	return *f.hero, nil
}

func load(t *testing.T, m RecipesModel, tab contentTab, withHero bool) RecipesModel {
	t.Helper()
	msg := m.fetch(tab, withHero)()
	next, _ := m.Update(msg)
	return next.(RecipesModel)
}

func TestRecipesLoads(t *testing.T) {
	src := fakeSource{
		recipes: []content.Card{{ID: 1, Title: "Overnight Oats", Description: "Oats and yogurt"}},
		hero:    &content.Hero{Title: "Happy Tummy", Subtitle: "Feel good"},
	}
	sink := &recordingSink{}
	m := NewRecipesModel(src, analytics.NewTracker(sink), 80, 24)
	if !strings.Contains(m.View(), "Loading recipes") {
		t.Error("initial view should show loading")
	}

	m = load(t, m, tabRecipes, true)
	view := m.View()
	for _, want := range []string{"Overnight Oats", "Oats and yogurt", "Happy Tummy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	names := sink.names()
	if len(names) != 1 || names[0] != analytics.EventPageView {
		t.Errorf("events = %v, want one page_view", names)
	}
}

func TestRecipesMissingHeroIsFine(t *testing.T) {
	m := NewRecipesModel(fakeSource{recipes: []content.Card{{Title: "Soup"}}}, nil, 80, 24)
	m = load(t, m, tabRecipes, true)
	if m.Err() != nil {
		t.Fatalf("Err = %v", m.Err())
	}
	if len(m.Cards()) != 1 {
		t.Errorf("cards = %d, want 1", len(m.Cards()))
	}
}

func TestRecipesError(t *testing.T) {
	m := NewRecipesModel(fakeSource{err: content.ErrServer}, nil, 80, 24)
	m = load(t, m, tabRecipes, false)
	if !errors.Is(m.Err(), content.ErrServer) {
		t.Fatalf("Err = %v, want ErrServer", m.Err())
	}
	if !strings.Contains(m.View(), "Could not load recipes") {
		t.Error("view missing error")
	}
}

func TestRecipesSwitchTab(t *testing.T) {
	src := fakeSource{
		recipes: []content.Card{{Title: "Soup"}},
		games:   []content.Card{{Title: "Tummy Runner"}},
	}
	m := NewRecipesModel(src, nil, 80, 24)
	m = load(t, m, tabRecipes, false)

	next, cmd := m.Update(keyMsg("tab"))
	m = next.(RecipesModel)
	if cmd == nil || m.tab != tabGames {
		t.Fatal("tab should switch to games and start a fetch")
	}

	// A late recipes result is ignored once the games tab is showing.
	next, _ = m.Update(contentLoadedMsg{tab: tabRecipes, cards: src.recipes})
	m = next.(RecipesModel)
	if len(m.Cards()) != 0 {
		t.Errorf("stale result applied: %+v", m.Cards())
	}

	m = load(t, m, tabGames, false)
	if len(m.Cards()) != 1 || m.Cards()[0].Title != "Tummy Runner" {
		t.Errorf("cards = %+v", m.Cards())
	}
}

func TestRecipesEmptyAndBack(t *testing.T) {
	m := NewRecipesModel(fakeSource{}, nil, 80, 24)
	m = load(t, m, tabRecipes, false)
	if !strings.Contains(m.View(), "Nothing here yet") {
		t.Error("view missing empty message")
	}

	next, _ := m.Update(keyMsg("b"))
	if !next.(RecipesModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
