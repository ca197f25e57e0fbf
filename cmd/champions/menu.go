package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-champions/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  champions menu
  champions menu --profile ada
  champions menu --db ./champions.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := openArcade(true)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := tui.Run(a.profile, runtimeConfig()); err != nil {
		return fmt.Errorf("error running arcade: %w", err)
	}
	return nil
}
