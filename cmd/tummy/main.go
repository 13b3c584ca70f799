// tummy is the Happy Tummy terminal arcade: mini-games, a content service,
// and an SSH server for remote play.
//
// Usage:
//
//	tummy list              - List available games
//	tummy play <game>       - Play a game
//	tummy menu              - Pick games interactively
//	tummy serve             - Start SSH server for remote play
//	tummy scores <game>     - Show high scores for a game
//	tummy api               - Run the content/auth HTTP service
//	tummy recipes           - Browse recipes and games from the service
//	tummy auth <action>     - login, register, logout, whoami
//	tummy spin              - Spin the habit wheel once
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tummy/tummy.db)
//	--api <url>     - Content service URL (default: http://localhost:3000)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tummy-arcade/internal/games/quiz"
	_ "github.com/vovakirdan/tummy-arcade/internal/games/runner"
	_ "github.com/vovakirdan/tummy-arcade/internal/games/wheel"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagAPI        string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tummy",
	Short: "Happy Tummy - healthy habits, one mini-game at a time",
	Long: `Happy Tummy is a terminal arcade of small wellness games:
Tummy Runner, the Habit Wheel and the Tummy Quiz.

Examples:
  tummy list
  tummy play runner --difficulty easy
  tummy menu
  tummy api
  tummy auth login --email me@example.com
  tummy serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tummy/tummy.db", "Path to scores database")
	pf.StringVar(&flagAPI, "api", "http://localhost:3000", "Content service base URL")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Runner difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, serveCmd, scoresCmd, apiCmd, recipesCmd, authCmd, spinCmd)
}
