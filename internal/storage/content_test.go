package storage

import (
	"context"
	"errors"
	"testing"
)

func TestStoreCardsEmpty(t *testing.T) {
	store := openTestStore(t)

	recipes, err := store.ListRecipes(context.Background())
	if err != nil {
		t.Fatalf("ListRecipes() failed: %v", err)
	}
	if recipes == nil || len(recipes) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", recipes)
	}
}

func TestStoreCardsOrdered(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	titles := []string{"Kimchi Bowl", "Bone Broth", "Miso Soup"}
	for _, title := range titles {
		if _, err := store.AddRecipe(ctx, Card{Title: title, ImageURL: "/img/" + title}); err != nil {
			t.Fatalf("AddRecipe() failed: %v", err)
		}
	}
	store.AddGame(ctx, Card{Title: "Tummy Runner"})

	recipes, err := store.ListRecipes(ctx)
	if err != nil {
		t.Fatalf("ListRecipes() failed: %v", err)
	}
	if len(recipes) != len(titles) {
		t.Fatalf("expected %d recipes, got %d", len(titles), len(recipes))
	}
	for i, r := range recipes {
		if r.Title != titles[i] {
			t.Errorf("recipe %d = %q, expected %q", i, r.Title, titles[i])
		}
	}

	games, _ := store.ListGames(ctx)
	if len(games) != 1 || games[0].Title != "Tummy Runner" {
		t.Errorf("unexpected games: %+v", games)
	}
}

func TestStoreHero(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Hero(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Hero() on empty db = %v, expected ErrNotFound", err)
	}

	store.SetHero(ctx, Hero{Title: "One"})
	if err := store.SetHero(ctx, Hero{Title: "Two", Subtitle: "sub"}); err != nil {
		t.Fatalf("SetHero() failed: %v", err)
	}

	h, err := store.Hero(ctx)
	if err != nil {
		t.Fatalf("Hero() failed: %v", err)
	}
	if h.Title != "Two" || h.Subtitle != "sub" {
		t.Errorf("unexpected hero: %+v", h)
	}
}

func TestStoreSeedContentOnce(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SeedContent(ctx); err != nil {
		t.Fatalf("SeedContent() failed: %v", err)
	}
	if err := store.SeedContent(ctx); err != nil {
		t.Fatalf("second SeedContent() failed: %v", err)
	}

	recipes, _ := store.ListRecipes(ctx)
	games, _ := store.ListGames(ctx)
	if len(recipes) != len(seedRecipes) || len(games) != len(seedGames) {
		t.Errorf("seeding twice should not duplicate: %d recipes, %d games", len(recipes), len(games))
	}
	if _, err := store.Hero(ctx); err != nil {
		t.Errorf("Hero() after seed: %v", err)
	}
}
