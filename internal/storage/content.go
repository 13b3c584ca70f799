package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Card is a listing entry shared by the recipes and games tables.
type Card struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
}

// Hero is the landing-page banner.
type Hero struct {
	Title    string
	Subtitle string
	ImageURL string
}

// ListRecipes returns all recipes in insertion order.
func (s *Store) ListRecipes(ctx context.Context) ([]Card, error) {
	return s.listCards(ctx, "recipes")
}

// AddRecipe inserts a recipe and returns its ID.
func (s *Store) AddRecipe(ctx context.Context, c Card) (int64, error) {
	return s.addCard(ctx, "recipes", c)
}

// ListGames returns all game cards in insertion order.
func (s *Store) ListGames(ctx context.Context) ([]Card, error) {
	return s.listCards(ctx, "games")
}

// AddGame inserts a game card and returns its ID.
func (s *Store) AddGame(ctx context.Context, c Card) (int64, error) {
	return s.addCard(ctx, "games", c)
}

// table is always one of the fixed names above, never user input.
func (s *Store) listCards(ctx context.Context, table string) ([]Card, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, image_url FROM "+table+" ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", table, err)
	}
	defer rows.Close()

	cards := []Card{}
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("storage: cannot scan %s row: %w", table, err)
		}
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cards, nil
}

func (s *Store) addCard(ctx context.Context, table string, c Card) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO "+table+" (title, description, image_url) VALUES (?, ?, ?)",
		c.Title, c.Description, c.ImageURL,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot insert into %s: %w", table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Hero returns the banner, or ErrNotFound if none is set.
func (s *Store) Hero(ctx context.Context) (Hero, error) {
	var h Hero
	err := s.db.QueryRowContext(ctx,
		"SELECT title, subtitle, image_url FROM hero WHERE id = 1",
	).Scan(&h.Title, &h.Subtitle, &h.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return Hero{}, ErrNotFound
	}
	if err != nil {
		return Hero{}, fmt.Errorf("storage: cannot query hero: %w", err)
	}
	return h, nil
}

// SetHero replaces the banner.
func (s *Store) SetHero(ctx context.Context, h Hero) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hero (id, title, subtitle, image_url) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title,
		   subtitle = excluded.subtitle, image_url = excluded.image_url`,
		h.Title, h.Subtitle, h.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set hero: %w", err)
	}
	return nil
}

// SeedContent fills the recipes, games, and hero tables when they are empty.
// Existing content is left alone.
func (s *Store) SeedContent(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&n); err != nil {
		return fmt.Errorf("storage: cannot count recipes: %w", err)
	}
	if n == 0 {
		for _, c := range seedRecipes {
			if _, err := s.AddRecipe(ctx, c); err != nil {
				return err
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return fmt.Errorf("storage: cannot count games: %w", err)
	}
	if n == 0 {
		for _, c := range seedGames {
			if _, err := s.AddGame(ctx, c); err != nil {
				return err
			}
		}
	}

	if _, err := s.Hero(ctx); errors.Is(err, ErrNotFound) {
		return s.SetHero(ctx, seedHero)
	} else if err != nil {
		return err
	}
	return nil
}

var seedRecipes = []Card{
	{Title: "Overnight Oats", Description: "Oats, chia and yogurt soaked overnight for an easy fiber boost."},
	{Title: "Green Smoothie", Description: "Spinach, banana and kefir blended for a gut-friendly breakfast."},
	{Title: "Lentil Soup", Description: "A warm bowl of lentils, carrots and cumin, packed with prebiotics."},
}

var seedGames = []Card{
	{Title: "Tummy Runner", Description: "Jump the junk food and grab the greens."},
	{Title: "Habit Wheel", Description: "Spin for today's healthy habit."},
	{Title: "Tummy Quiz", Description: "Five questions to check on your gut health."},
}

var seedHero = Hero{
	Title:    "Happy Tummy, Happy You",
	Subtitle: "Recipes, games and habits for better digestion.",
}
