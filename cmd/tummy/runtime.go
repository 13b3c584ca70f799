package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tummy-arcade/internal/analytics"
	"github.com/vovakirdan/tummy-arcade/internal/content"
	"github.com/vovakirdan/tummy-arcade/internal/core"
	"github.com/vovakirdan/tummy-arcade/internal/games/quiz"
	"github.com/vovakirdan/tummy-arcade/internal/games/runner"
	"github.com/vovakirdan/tummy-arcade/internal/games/wheel"
	"github.com/vovakirdan/tummy-arcade/internal/storage"
)

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags passes --config and --difficulty to the game packages.
func applyGameFlags(gameID string) {
	switch gameID {
	case "runner":
		runner.SetConfigPath(flagConfig)
		runner.SetDifficultyPreset(flagDifficulty)
	case "wheel":
		wheel.SetConfigPath(flagConfig)
	case "quiz":
		quiz.SetConfigPath(flagConfig)
	}
}

// openStore opens the scores database, warning and returning nil on failure
// so games stay playable without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newTracker records analytics into store. The returned func flushes
// pending events and must be called before store is closed.
// Terminal UIs own stdout/stderr, so events are not logged here.
func newTracker(store *storage.Store) (*analytics.Tracker, func()) {
	if store == nil {
		return analytics.NewTracker(analytics.Nop{}), func() {}
	}
	sink := analytics.NewStoreSink(store, 64, nil)
	return analytics.NewTracker(sink), sink.Close
}

func newClient() *content.Client {
	return content.NewClient(flagAPI, &http.Client{Timeout: 15 * time.Second})
}

func sessionPath() (string, error) {
	return content.DefaultSessionPath()
}

func closeStore(store *storage.Store) {
	if store != nil {
		//nolint:errcheck // Best-effort close on exit
		store.Close()
	}
}
