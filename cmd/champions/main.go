// champions is a terminal arcade built around timed arithmetic practice.
//
// Usage:
//
//	champions list              - List available games
//	champions play <game>       - Play a game
//	champions menu              - Start the menu to pick games interactively
//	champions serve             - Start SSH server for remote play
//	champions scores <game>     - Show the score history of a game
//	champions stats             - Show the progress of a profile
//	champions badges            - Show earned and locked badges
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.champions/champions.db)
//	--profile <name>      - Player profile (default: local)
//	--config <path>       - Custom champions.yaml
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Log destination for play and menu (default: ~/.champions/champions.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/math-champions/internal/games/mathquiz"
	_ "github.com/vovakirdan/math-champions/internal/games/memory"
	_ "github.com/vovakirdan/math-champions/internal/games/stackdrop"
	_ "github.com/vovakirdan/math-champions/internal/games/tapperfect"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagProfile  string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "champions",
	Short: "Math Champions - arithmetic practice and mini-games in your terminal",
	Long: `Math Champions is a terminal arcade for practising arithmetic.
Clear timed levels for stars, XP and badges, then unwind with
Memory Match, Stack Drop and Tap Perfect.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive arcade menu
  serve    - Start SSH server for remote play
  scores   - View the score history of a game
  stats    - View a profile's progress
  badges   - View the badge catalog

Examples:
  champions menu
  champions play math --level 3
  champions play memory --difficulty hard
  champions serve --ssh :2222
  champions scores stackdrop`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.champions/champions.db", "Path to the arcade database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "local", "Player profile")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom champions.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.champions/champions.log", "Log file used while a game is on screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
}
