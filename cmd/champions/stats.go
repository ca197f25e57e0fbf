package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-champions/internal/gamestats"
)

var flagAllProfiles bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the progress of a profile",
	Long: `Print the Math Champions progress, the mini-game records and the
score history summary of a profile.

Examples:
  champions stats
  champions stats --profile ada
  champions stats --all`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagAllProfiles, "all", false, "List every profile in the database")
}

func runStats(_ *cobra.Command, _ []string) error {
	a, err := openArcade(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if flagAllProfiles {
		return listProfiles(a)
	}

	p := a.profile.Ledger.Load()
	fmt.Printf("Profile: %s\n\n", a.profile.Name)
	fmt.Println("Math Champions")
	fmt.Printf("  Level:            %d\n", p.CurrentLevel)
	fmt.Printf("  XP:               %d\n", p.XPPoints)
	fmt.Printf("  Stars:            %d\n", p.TotalStars)
	fmt.Printf("  Problems solved:  %d of %d (%d%%)\n", p.TotalProblemsSolved, p.TotalAttempts, p.AccuracyPercentage)
	fmt.Printf("  Streak:           %d (best %d)\n", p.CurrentStreak, p.BestStreak)
	fmt.Printf("  Levels completed: %d (%d perfect)\n", len(p.CompletedLevels), p.PerfectClears)
	fmt.Printf("  Days in a row:    %d\n", p.DaysPlayedStreak)
	fmt.Printf("  Badges:           %d of %d\n", len(p.Badges), len(a.profile.Ledger.Catalog().All()))
	fmt.Println()

	mem := a.profile.Stats.Memory()
	fmt.Println("Memory Match")
	fmt.Printf("  Played: %d  Wins: %d  Best time: %s  Best moves: %s\n",
		mem.GamesPlayed, mem.TotalWins, best(mem.BestTime, "s"), best(mem.BestMoves, ""))

	sd := a.profile.Stats.StackDrop()
	fmt.Println("Stack Drop")
	fmt.Printf("  Played: %d  High score: %d  Blocks: %d  Perfect drops: %d\n",
		sd.TotalGames, sd.HighScore, sd.TotalBlocks, sd.PerfectDrops)

	tp := a.profile.Stats.TapPerfect()
	fmt.Println("Tap Perfect")
	fmt.Printf("  Played: %d  High score: %d  Taps: %d  Bullseyes: %d\n",
		tp.TotalGames, tp.HighScore, tp.TotalTaps, tp.PerfectTaps)

	if a.store == nil {
		return nil
	}
	history, err := a.store.ProfileStats(a.profile.Name)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}

	ids := make([]string, 0, len(history))
	for id := range history {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Println("Score history")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	for _, id := range ids {
		gs := history[id]
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func listProfiles(a *arcade) error {
	if a.store == nil {
		return fmt.Errorf("no database at %s", flagDBPath)
	}
	names, err := a.store.Profiles()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No profiles yet.")
		return nil
	}
	fmt.Println("Profiles:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func best(v int, unit string) string {
	if v <= 0 || v >= gamestats.NoBest {
		return "-"
	}
	return fmt.Sprintf("%d%s", v, unit)
}
