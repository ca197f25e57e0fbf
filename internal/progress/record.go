// Package progress owns the player's cumulative Math Champions record:
// XP, streaks, stars per level, unlocked levels and badges. The Ledger is the
// only code path that mutates it.
package progress

import (
	"slices"

	"github.com/vovakirdan/math-champions/internal/badges"
)

// RecordKey is the storage key of the progress record.
const RecordKey = "PlayerProgress"

// CurrentVersion is the schema version written by this build.
const CurrentVersion = 2

// PlayerProgress is the persisted progress record.
type PlayerProgress struct {
	Version             int         `json:"version"`
	TotalProblemsSolved int         `json:"total_problems_solved"`
	TotalAttempts       int         `json:"total_attempts"`
	CurrentStreak       int         `json:"current_streak"`
	BestStreak          int         `json:"best_streak"`
	TotalStars          int         `json:"total_stars"`
	XPPoints            int         `json:"xp_points"`
	CurrentLevel        int         `json:"current_level"`
	CompletedLevels     []int       `json:"completed_levels"`
	LevelStars          map[int]int `json:"level_stars"`
	Badges              []badges.ID `json:"badges"`
	AccuracyPercentage  int         `json:"accuracy_percentage"`
	PerfectClears       int         `json:"perfect_clears"`
	FastestAnswerMs     int         `json:"fastest_answer_ms"`
	DaysPlayedStreak    int         `json:"days_played_streak"`
	LastPlayedDate      string      `json:"last_played_date,omitempty"`
}

// Defaults returns the record of a player who has never played.
func Defaults() PlayerProgress {
	return PlayerProgress{
		Version:         CurrentVersion,
		CurrentLevel:    1,
		CompletedLevels: []int{},
		LevelStars:      map[int]int{},
		Badges:          []badges.ID{},
	}
}

// Clone returns a deep copy.
func (p PlayerProgress) Clone() PlayerProgress {
	c := p
	c.CompletedLevels = slices.Clone(p.CompletedLevels)
	c.Badges = slices.Clone(p.Badges)
	c.LevelStars = make(map[int]int, len(p.LevelStars))
	for k, v := range p.LevelStars {
		c.LevelStars[k] = v
	}
	return c
}

// IsCompleted reports whether level has been finished at least once.
func (p PlayerProgress) IsCompleted(level int) bool {
	_, found := slices.BinarySearch(p.CompletedLevels, level)
	return found
}

// StarsFor returns the best star result for level, 0 if never finished.
func (p PlayerProgress) StarsFor(level int) int {
	return p.LevelStars[level]
}

// IsUnlocked reports whether level may be played. Only clears that earn
// enough stars advance CurrentLevel, so it is the single unlock boundary.
func (p PlayerProgress) IsUnlocked(level int) bool {
	return level <= 1 || level <= p.CurrentLevel
}

// HasBadge reports whether the badge is owned.
func (p PlayerProgress) HasBadge(id badges.ID) bool {
	return slices.Contains(p.Badges, id)
}

// Facts extracts what the badge rules need.
func (p PlayerProgress) Facts() badges.Facts {
	completed := make(map[int]bool, len(p.CompletedLevels))
	for _, l := range p.CompletedLevels {
		completed[l] = true
	}
	return badges.Facts{
		Completed:       completed,
		CurrentLevel:    p.CurrentLevel,
		BestStreak:      p.BestStreak,
		ProblemsSolved:  p.TotalProblemsSolved,
		TotalStars:      p.TotalStars,
		PerfectClears:   p.PerfectClears,
		FastestAnswerMs: p.FastestAnswerMs,
		DayStreak:       p.DaysPlayedStreak,
	}
}

func (p *PlayerProgress) markCompleted(level int) {
	i, found := slices.BinarySearch(p.CompletedLevels, level)
	if !found {
		p.CompletedLevels = slices.Insert(p.CompletedLevels, i, level)
	}
}

// accuracy is round(100*solved/attempts) clamped to [0, 100].
func accuracy(solved, attempts int) int {
	if attempts <= 0 {
		return 0
	}
	pct := (200*solved + attempts) / (2 * attempts)
	return min(max(pct, 0), 100)
}

func sumStars(m map[int]int) int {
	total := 0
	for _, s := range m {
		total += s
	}
	return total
}
