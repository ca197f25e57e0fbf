// Package badges holds the badge catalog and the rules that unlock each badge.
// Rules read Facts, a flat summary of a player's progress, so the package has
// no dependency on how progress is stored.
package badges

import (
	"fmt"

	"github.com/vovakirdan/math-champions/internal/config"
)

// ID is a stable badge identifier as stored in the progress record.
type ID string

const (
	FirstStep    ID = "first_step"
	OnFire       ID = "on_fire"
	QuickThinker ID = "quick_thinker"
	LevelUp      ID = "level_up"
	MathMaster   ID = "math_master"
	Perfecto     ID = "perfecto"
	Steady       ID = "steady"
	Champion     ID = "champion"
	Conqueror    ID = "conqueror"
	Legend       ID = "legend"
)

// Facts is the part of a player's progress the rules look at.
type Facts struct {
	Completed       map[int]bool
	CurrentLevel    int
	BestStreak      int
	ProblemsSolved  int
	TotalStars      int
	PerfectClears   int
	FastestAnswerMs int // 0 means no timed correct answer yet
	DayStreak       int
}

// Badge is one catalog entry.
type Badge struct {
	ID          ID
	Name        string
	Description string
	Icon        string

	rule func(Facts) bool
	// meta badges unlock once every other catalog badge is owned
	meta bool
}

// Catalog is the ordered, read-only list of badges.
type Catalog struct {
	badges []Badge
	index  map[ID]int
}

// NewCatalog builds the catalog with thresholds from cfg.
func NewCatalog(cfg config.BadgeConfig) *Catalog {
	list := []Badge{
		{
			ID: FirstStep, Name: "First Step", Icon: "»",
			Description: "Completed level 1",
			rule:        func(f Facts) bool { return f.Completed[1] },
		},
		{
			ID: OnFire, Name: "On Fire", Icon: "♨",
			Description: fmt.Sprintf("%d correct answers in a row", cfg.StreakTarget),
			rule:        func(f Facts) bool { return f.BestStreak >= cfg.StreakTarget },
		},
		{
			ID: QuickThinker, Name: "Quick Thinker", Icon: "↯",
			Description: fmt.Sprintf("Answered correctly in under %.1fs", float64(cfg.QuickMs)/1000),
			rule: func(f Facts) bool {
				return f.FastestAnswerMs > 0 && f.FastestAnswerMs <= cfg.QuickMs
			},
		},
		{
			ID: LevelUp, Name: "Level Up", Icon: "▲",
			Description: fmt.Sprintf("Reached level %d", cfg.LevelTarget),
			rule:        func(f Facts) bool { return f.CurrentLevel >= cfg.LevelTarget },
		},
		{
			ID: MathMaster, Name: "Math Master", Icon: "∑",
			Description: fmt.Sprintf("Solved %d problems", cfg.SolvedTarget),
			rule:        func(f Facts) bool { return f.ProblemsSolved >= cfg.SolvedTarget },
		},
		{
			ID: Perfecto, Name: "Perfecto", Icon: "✓",
			Description: "100% score achieved",
			rule:        func(f Facts) bool { return f.PerfectClears > 0 },
		},
		{
			ID: Steady, Name: "Steady", Icon: "≡",
			Description: fmt.Sprintf("Played %d days in a row", cfg.SteadyDays),
			rule:        func(f Facts) bool { return f.DayStreak >= cfg.SteadyDays },
		},
		{
			ID: Champion, Name: "Champion", Icon: "★",
			Description: fmt.Sprintf("Collected %d stars", cfg.StarsTarget),
			rule:        func(f Facts) bool { return f.TotalStars >= cfg.StarsTarget },
		},
		{
			ID: Conqueror, Name: "Conqueror", Icon: "♛",
			Description: fmt.Sprintf("Completed level %d", cfg.ConquerLevel),
			rule:        func(f Facts) bool { return f.Completed[cfg.ConquerLevel] },
		},
		{
			ID: Legend, Name: "Legend", Icon: "♔",
			Description: "All badges collected",
			meta:        true,
		},
	}

	c := &Catalog{badges: list, index: make(map[ID]int, len(list))}
	for i, b := range list {
		c.index[b.ID] = i
	}
	return c
}

// All returns the badges in catalog order.
func (c *Catalog) All() []Badge {
	return append([]Badge(nil), c.badges...)
}

// Lookup returns the badge with the given id.
func (c *Catalog) Lookup(id ID) (Badge, bool) {
	i, ok := c.index[id]
	if !ok {
		return Badge{}, false
	}
	return c.badges[i], true
}

// Evaluation is the result of running every rule once.
type Evaluation struct {
	// Badges is the full owned set: catalog badges in catalog order,
	// then any unknown ids that were already owned.
	Badges []ID
	// Newly lists the badges unlocked by this evaluation in catalog order,
	// meta badges last.
	Newly []ID
	// Celebrated is the badge to announce, the first of Newly, or "".
	Celebrated ID
}

// Evaluate runs the rules against facts. Owned badges are never dropped,
// so evaluating an unchanged record twice unlocks nothing the second time.
// Meta badges are checked last, against the set that includes this call's unlocks.
func (c *Catalog) Evaluate(f Facts, owned []ID) Evaluation {
	have := make(map[ID]bool, len(owned))
	for _, id := range owned {
		have[id] = true
	}

	var ev Evaluation
	for _, b := range c.badges {
		if b.meta || have[b.ID] {
			continue
		}
		if b.rule(f) {
			have[b.ID] = true
			ev.Newly = append(ev.Newly, b.ID)
		}
	}
	for _, b := range c.badges {
		if !b.meta || have[b.ID] {
			continue
		}
		if c.ownsAllBut(have, b.ID) {
			have[b.ID] = true
			ev.Newly = append(ev.Newly, b.ID)
		}
	}

	for _, b := range c.badges {
		if have[b.ID] {
			ev.Badges = append(ev.Badges, b.ID)
		}
	}
	for _, id := range owned {
		if _, known := c.index[id]; !known && have[id] {
			ev.Badges = append(ev.Badges, id)
			delete(have, id)
		}
	}
	if len(ev.Newly) > 0 {
		ev.Celebrated = ev.Newly[0]
	}
	return ev
}

func (c *Catalog) ownsAllBut(have map[ID]bool, skip ID) bool {
	for _, b := range c.badges {
		if b.ID != skip && !have[b.ID] {
			return false
		}
	}
	return true
}
