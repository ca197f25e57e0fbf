package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/platform/tui"
	"github.com/vovakirdan/math-champions/internal/registry"
)

var (
	flagLevel      int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  1-4          - Answer (math)
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select, flip, drop or tap
  P            - Pause
  Esc/B        - Back
  R            - Play again
  Q/Ctrl+C     - Quit

Math levels:
  --level 0 continues at the profile's current level. Locked levels
  fall back to the current one.

Difficulty options (memory, stackdrop, tapperfect):
  easy, medium, hard

Examples:
  champions play math
  champions play math --level 4
  champions play memory --difficulty hard
  champions play tapperfect --profile ada`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Math level to play (0 = current level)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'champions list' to see available games", gameID)
	}
	if flagLevel < 0 {
		return fmt.Errorf("invalid --level %d", flagLevel)
	}
	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	a, err := openArcade(true)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := tui.RunGame(a.profile, runtimeConfig(), gameID, flagLevel, difficulty); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
