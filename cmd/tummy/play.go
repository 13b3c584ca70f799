package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tummy-arcade/internal/platform/tui"
	"github.com/vovakirdan/tummy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up     - Jump (runner), spin (wheel), answer (quiz)
  Up/Down      - Choose an answer (quiz)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (after game over, while paused, or any time in wheel/quiz)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.tummy/screenshots

Difficulty options (runner):
  easy   - Slower start, gentle speed ramp
  normal - The classic pace
  hard   - Faster start, steeper ramp
  fixed  - No speed ramp

Examples:
  tummy play runner
  tummy play runner --difficulty hard
  tummy play quiz
  tummy play wheel --config ./my-wheel.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tummy list' to see available games)", gameID)
	}

	applyGameFlags(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)
	tracker, flush := newTracker(store)
	defer flush()

	if err := tui.Run(game, store, tracker, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
