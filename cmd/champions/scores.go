package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-champions/internal/registry"
	"github.com/vovakirdan/math-champions/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the score history of a game",
	Long: `Display the best sessions of the specified game across all profiles.

Examples:
  champions scores stackdrop
  champions scores tapperfect --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'champions list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'champions play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Profile, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(flagProfile, gameID); err == nil {
		if best > 0 {
			fmt.Printf("Best for %s: %d\n", flagProfile, best)
		} else {
			fmt.Printf("%s has not scored yet.\n", flagProfile)
		}
	}
	return nil
}
