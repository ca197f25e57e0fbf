package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-champions/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'champions play <id>' to play a game.")
}
