package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tummy-arcade/internal/content"
	"github.com/vovakirdan/tummy-arcade/internal/platform/tui"
)

var flagPlain bool

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Browse recipes and games from the content service",
	Long: `Browse the recipes and games served at --api.

Examples:
  tummy recipes
  tummy recipes --plain
  tummy recipes --api http://tummy.example.com`,
	RunE: runRecipes,
}

func init() {
	recipesCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the lists instead of opening the browser")
}

func runRecipes(cmd *cobra.Command, _ []string) error {
	client := newClient()

	if flagPlain {
		return printContent(cmd.Context(), client)
	}

	store := openStore()
	defer closeStore(store)
	tracker, flush := newTracker(store)
	defer flush()

	cfg := terminalConfig()
	_, err := tui.RunRecipes(client, tracker, cfg.ScreenW, cfg.ScreenH)
	return err
}

func printContent(ctx context.Context, client *content.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	recipes, err := client.Recipes(ctx)
	if err != nil {
		return fmt.Errorf("fetching recipes: %w", err)
	}
	games, err := client.Games(ctx)
	if err != nil {
		return fmt.Errorf("fetching games: %w", err)
	}

	for _, section := range []struct {
		title string
		cards []content.Card
	}{{"Recipes", recipes}, {"Games", games}} {
		fmt.Println(section.title)
		if len(section.cards) == 0 {
			fmt.Println("  (none)")
		}
		for _, c := range section.cards {
			fmt.Printf("  %-24s %s\n", c.Title, c.Description)
		}
		fmt.Println()
	}
	return nil
}
