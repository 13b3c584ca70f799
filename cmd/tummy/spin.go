package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/core"
	"github.com/vovakirdan/tummy-arcade/internal/games/wheel"
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin the habit wheel once",
	Long: `Spin the Habit Wheel from the command line and print today's habit
once the wheel settles. Ctrl+C abandons the spin.

Examples:
  tummy spin
  tummy spin --seed 42`,
	RunE: runSpin,
}

var habitStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

func runSpin(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadWheel(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := wheel.NewEngine(cfg, core.NewRand(seed))

	store := openStore()
	defer closeStore(store)
	tracker, flush := newTracker(store)
	defer flush()
	tracker.GamePlay(wheel.GameName)

	s, ok := engine.Spin(time.Now())
	if !ok {
		return errors.New("the wheel is already spinning")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Print("Spinning")
	done := make(chan error, 1)
	go func() { done <- engine.Await(ctx, s) }()

	ticker := time.NewTicker(max(s.SettleDelay/8, 50*time.Millisecond))
	defer ticker.Stop()

wait:
	for {
		select {
		case <-ticker.C:
			fmt.Print(".")
		case err := <-done:
			fmt.Println()
			if errors.Is(err, context.Canceled) {
				fmt.Println("Spin abandoned.")
				return nil
			}
			if err != nil {
				return err
			}
			break wait
		}
	}

	tracker.Track(wheel.EventResult, map[string]any{"game_name": wheel.GameName, "label": s.Label})
	fmt.Printf("Today: %s\n", habitStyle.Render(s.Label))
	fmt.Println(strings.Repeat("-", 20))
	fmt.Printf("Landed after %d turns and %d°\n", s.Rotations, s.Offset)
	return nil
}
