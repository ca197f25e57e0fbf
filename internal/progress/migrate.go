package progress

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/vovakirdan/math-champions/internal/badges"
)

// migration upgrades a record from version From to From+1.
type migration struct {
	From  int
	Apply func(*PlayerProgress)
}

// migrations run in order on every load. Records written before versioning
// decode with Version 0 and are treated as version 1.
var migrations = []migration{
	{From: 1, Apply: backfillLevelStars},
}

// backfillLevelStars gives finished levels that predate per-level stars the
// three stars the level picker used to show for them, then makes total_stars
// agree with the map.
func backfillLevelStars(p *PlayerProgress) {
	if p.LevelStars == nil {
		p.LevelStars = map[int]int{}
	}
	for _, l := range p.CompletedLevels {
		if _, ok := p.LevelStars[l]; !ok {
			p.LevelStars[l] = 3
		}
	}
	p.TotalStars = sumStars(p.LevelStars)
}

// Decode parses a stored record: defaults, then the stored JSON on top, then
// migrations, then normalisation. Any JSON error means the record is unusable.
func Decode(data []byte) (PlayerProgress, error) {
	p := Defaults()
	p.Version = 0
	if err := json.Unmarshal(data, &p); err != nil {
		return PlayerProgress{}, fmt.Errorf("progress: decode record: %w", err)
	}

	if p.Version < 1 {
		p.Version = 1
	}
	for _, m := range migrations {
		if p.Version == m.From {
			m.Apply(&p)
			p.Version = m.From + 1
		}
	}
	if p.Version > CurrentVersion {
		// Written by a newer build; keep its fields and stay readable.
		p.Version = CurrentVersion
	}

	normalize(&p)
	return p, nil
}

// Encode serialises a record for storage.
func Encode(p PlayerProgress) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("progress: encode record: %w", err)
	}
	return data, nil
}

// normalize clamps counters and restores the set and sum invariants.
func normalize(p *PlayerProgress) {
	nonNeg := []*int{
		&p.TotalProblemsSolved, &p.TotalAttempts, &p.CurrentStreak, &p.BestStreak,
		&p.XPPoints, &p.PerfectClears, &p.FastestAnswerMs, &p.DaysPlayedStreak,
	}
	for _, v := range nonNeg {
		*v = max(*v, 0)
	}
	p.TotalAttempts = max(p.TotalAttempts, p.TotalProblemsSolved)
	p.BestStreak = max(p.BestStreak, p.CurrentStreak)
	p.CurrentLevel = max(p.CurrentLevel, 1)

	levels := make([]int, 0, len(p.CompletedLevels))
	for _, l := range p.CompletedLevels {
		if l >= 1 {
			levels = append(levels, l)
		}
	}
	slices.Sort(levels)
	p.CompletedLevels = slices.Compact(levels)

	if p.LevelStars == nil {
		p.LevelStars = map[int]int{}
	}
	for l, s := range p.LevelStars {
		if l < 1 {
			delete(p.LevelStars, l)
			continue
		}
		p.LevelStars[l] = min(max(s, 0), 3)
	}
	p.TotalStars = sumStars(p.LevelStars)

	seen := make(map[badges.ID]bool, len(p.Badges))
	owned := make([]badges.ID, 0, len(p.Badges))
	for _, b := range p.Badges {
		if b != "" && !seen[b] {
			seen[b] = true
			owned = append(owned, b)
		}
	}
	p.Badges = owned

	p.AccuracyPercentage = accuracy(p.TotalProblemsSolved, p.TotalAttempts)
}
