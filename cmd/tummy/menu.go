package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tummy-arcade/internal/content"
	"github.com/vovakirdan/tummy-arcade/internal/platform/tui"
	"github.com/vovakirdan/tummy-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  C            - Recipes and games from the content service
  Q            - Quit

Examples:
  tummy menu
  tummy menu --fps 30
  tummy menu --db ./tummy.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)
	tracker, flush := newTracker(store)
	defer flush()

	cfg := terminalConfig()
	greeting := currentUserName()
	tracker.PageView("/")

	for {
		res, err := tui.RunMenu(store, cfg, greeting)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.WantsRecipes:
			goBack, err := tui.RunRecipes(newClient(), tracker, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case res.GameID != "":
			applyGameFlags(res.GameID)
			game, err := registry.Create(res.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}
			cfg.Seed = time.Now().UnixNano()
			if err := tui.Run(game, store, tracker, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
		}
	}
}

// currentUserName returns the logged-in user's name, or "" if nobody is.
func currentUserName() string {
	path, err := sessionPath()
	if err != nil {
		return ""
	}
	s, ok, err := content.LoadSession(path)
	if err != nil || !ok {
		return ""
	}
	return s.User.Name
}
