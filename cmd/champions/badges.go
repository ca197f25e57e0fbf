package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned and locked badges",
	Long: `List the badge catalog and mark the badges the profile has earned.

Examples:
  champions badges
  champions badges --profile ada`,
	RunE: runBadges,
}

func runBadges(_ *cobra.Command, _ []string) error {
	a, err := openArcade(false)
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.profile.Ledger.Load()
	catalog := a.profile.Ledger.Catalog().All()
	fmt.Printf("Badges - %s (%d of %d)\n\n", a.profile.Name, len(p.Badges), len(catalog))
	for _, b := range catalog {
		mark := "·"
		if p.HasBadge(b.ID) {
			mark = b.Icon
		}
		fmt.Printf("  %s  %-14s %s\n", mark, b.Name, b.Description)
	}
	return nil
}
