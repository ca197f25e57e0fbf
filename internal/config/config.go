// Package config loads the YAML tuning for every game in the arcade:
// the math level table, star and badge thresholds, and the parameters of
// the companion mini-games.
package config

import (
	"errors"
	"fmt"
)

// Config is the full arcade configuration.
type Config struct {
	Math       MathConfig       `yaml:"math"`
	Badges     BadgeConfig      `yaml:"badges"`
	Memory     MemoryConfig     `yaml:"memory"`
	StackDrop  StackDropConfig  `yaml:"stackdrop"`
	TapPerfect TapPerfectConfig `yaml:"tapperfect"`
}

// Operation is an arithmetic operator symbol.
type Operation string

const (
	OpAdd Operation = "+"
	OpSub Operation = "-"
	OpMul Operation = "×"
	OpDiv Operation = "÷"
)

// Valid reports whether o is one of the four supported operators.
func (o Operation) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// LevelConfig describes one math level.
type LevelConfig struct {
	Ops       []Operation `yaml:"ops"`
	MaxNum    int         `yaml:"max_num"`
	DivMax    int         `yaml:"div_max"`    // largest divisor and quotient, 0 = min(max_num, 10)
	TimeLimit int         `yaml:"time_limit"` // seconds per question
	Questions int         `yaml:"questions"`
}

// DivisionMax returns the bound used for divisors and quotients.
func (l LevelConfig) DivisionMax() int {
	if l.DivMax > 0 {
		return l.DivMax
	}
	return max(1, min(l.MaxNum, 10))
}

// GrowthConfig extends the level table past its last row.
type GrowthConfig struct {
	MaxNumStep     int `yaml:"max_num_step"`
	MaxNumCap      int `yaml:"max_num_cap"`
	TimeLimitEvery int `yaml:"time_limit_every"` // levels per one-second cut
	MinTimeLimit   int `yaml:"min_time_limit"`
	Questions      int `yaml:"questions"`
}

// StarThresholds are the minimum percentages for 3, 2 and 1 stars.
type StarThresholds struct {
	Three int `yaml:"three"`
	Two   int `yaml:"two"`
	One   int `yaml:"one"`
}

// MathConfig tunes the Math Champions quiz and the progress ledger.
type MathConfig struct {
	Levels         []LevelConfig  `yaml:"levels"`
	Growth         GrowthConfig   `yaml:"growth"`
	Stars          StarThresholds `yaml:"stars"`
	XPPerCorrect   int            `yaml:"xp_per_correct"`
	Choices        int            `yaml:"choices"`
	UnlockMinStars int            `yaml:"unlock_min_stars"`
	MaxLevel       int            `yaml:"max_level"` // 0 = uncapped
	FeedbackMs     int            `yaml:"feedback_ms"`
	VisibleLevels  int            `yaml:"visible_levels"`
	VisibleAhead   int            `yaml:"visible_ahead"`
}

// Level returns the settings for level n. Levels below 1 are treated as 1
// and levels past the table follow the growth curve.
func (m MathConfig) Level(n int) LevelConfig {
	if len(m.Levels) == 0 {
		return DefaultConfig().Math.Level(n)
	}
	n = max(n, 1)
	if n <= len(m.Levels) {
		return m.Levels[n-1]
	}

	last := m.Levels[len(m.Levels)-1]
	extra := n - len(m.Levels)
	g := m.Growth

	lvl := LevelConfig{
		Ops:       []Operation{OpAdd, OpSub, OpMul, OpDiv},
		MaxNum:    last.MaxNum + extra*g.MaxNumStep,
		DivMax:    last.DivMax,
		TimeLimit: last.TimeLimit,
		Questions: last.Questions,
	}
	if g.MaxNumCap > 0 {
		lvl.MaxNum = min(lvl.MaxNum, g.MaxNumCap)
	}
	if g.TimeLimitEvery > 0 {
		lvl.TimeLimit -= extra / g.TimeLimitEvery
	}
	if g.MinTimeLimit > 0 {
		lvl.TimeLimit = max(lvl.TimeLimit, g.MinTimeLimit)
	}
	if g.Questions > 0 {
		lvl.Questions = g.Questions
	}
	return lvl
}

// StarsFor maps a level score to 0..3 stars.
func (m MathConfig) StarsFor(correct, total int) int {
	if total <= 0 {
		return 0
	}
	pct := correct * 100
	switch {
	case pct >= m.Stars.Three*total:
		return 3
	case pct >= m.Stars.Two*total:
		return 2
	case pct >= m.Stars.One*total:
		return 1
	}
	return 0
}

// Unlocks reports whether a clear with the given stars opens the next level.
func (m MathConfig) Unlocks(stars int) bool {
	return stars >= m.UnlockMinStars
}

// VisibleUpTo returns the highest level the level picker lists.
func (m MathConfig) VisibleUpTo(currentLevel int) int {
	n := max(m.VisibleLevels, currentLevel+m.VisibleAhead)
	if m.MaxLevel > 0 {
		n = min(n, m.MaxLevel)
	}
	return n
}

// BadgeConfig holds the unlock thresholds of the badge catalog.
type BadgeConfig struct {
	StreakTarget int `yaml:"streak_target"`
	QuickMs      int `yaml:"quick_ms"`
	LevelTarget  int `yaml:"level_target"`
	SolvedTarget int `yaml:"solved_target"`
	SteadyDays   int `yaml:"steady_days"`
	StarsTarget  int `yaml:"stars_target"`
	ConquerLevel int `yaml:"conquer_level"`
}

// MemoryDifficulty is one Memory Match board size.
type MemoryDifficulty struct {
	Pairs   int `yaml:"pairs"`
	Columns int `yaml:"columns"`
}

// MemoryConfig tunes Memory Match.
type MemoryConfig struct {
	Difficulties map[DifficultyPreset]MemoryDifficulty `yaml:"difficulties"`
	MismatchMs   int                                   `yaml:"mismatch_ms"`
	Symbols      string                                `yaml:"symbols"`
}

// StackDropConfig tunes Stack Drop. Widths are in screen cells.
type StackDropConfig struct {
	InitialWidth     int     `yaml:"initial_width"`
	MinWidth         int     `yaml:"min_width"`
	PerfectThreshold int     `yaml:"perfect_threshold"`
	PerfectGrow      int     `yaml:"perfect_grow"`
	SwingSpeed       float64 `yaml:"swing_speed"` // cells per tick
	SpeedStep        float64 `yaml:"speed_step"`  // added per placed block
	MaxSpeed         float64 `yaml:"max_speed"`
}

// TapPerfectConfig tunes Tap Perfect.
type TapPerfectConfig struct {
	Lives        int `yaml:"lives"`
	Target       int `yaml:"target"`
	PowerStep    int `yaml:"power_step"` // meter units per tick
	PerfectRange int `yaml:"perfect_range"`
	GoodRange    int `yaml:"good_range"`
	PerfectBase  int `yaml:"perfect_base"`
	ComboBonus   int `yaml:"combo_bonus"`
	GoodPoints   int `yaml:"good_points"`
	ResetMs      int `yaml:"reset_ms"`
}

// Validate returns every nonsensical value found, joined.
func (c Config) Validate() error {
	var errs []error
	if len(c.Math.Levels) == 0 {
		errs = append(errs, errors.New("math.levels must not be empty"))
	}
	for i, l := range c.Math.Levels {
		if len(l.Ops) == 0 {
			errs = append(errs, fmt.Errorf("math.levels[%d]: no operations", i))
		}
		for _, op := range l.Ops {
			if !op.Valid() {
				errs = append(errs, fmt.Errorf("math.levels[%d]: unknown operation %q", i, op))
			}
		}
		if l.MaxNum < 1 || l.TimeLimit < 1 || l.Questions < 1 {
			errs = append(errs, fmt.Errorf("math.levels[%d]: max_num, time_limit and questions must be positive", i))
		}
	}
	if c.Math.Choices < 3 || c.Math.Choices > 4 {
		errs = append(errs, fmt.Errorf("math.choices must be 3 or 4, got %d", c.Math.Choices))
	}
	s := c.Math.Stars
	if !(s.Three >= s.Two && s.Two >= s.One && s.One > 0 && s.Three <= 100) {
		errs = append(errs, fmt.Errorf("math.stars must satisfy 100 >= three >= two >= one > 0"))
	}
	if c.Math.UnlockMinStars < 0 || c.Math.UnlockMinStars > 3 {
		errs = append(errs, fmt.Errorf("math.unlock_min_stars must be in 0..3"))
	}
	if c.Math.MaxLevel < 0 {
		errs = append(errs, errors.New("math.max_level must not be negative"))
	}
	for preset, d := range c.Memory.Difficulties {
		if d.Pairs < 2 || d.Columns < 2 {
			errs = append(errs, fmt.Errorf("memory.difficulties.%s: need at least 2 pairs and 2 columns", preset))
		}
		if d.Pairs > len([]rune(c.Memory.Symbols)) {
			errs = append(errs, fmt.Errorf("memory.difficulties.%s: more pairs than symbols", preset))
		}
	}
	if c.StackDrop.InitialWidth < c.StackDrop.MinWidth || c.StackDrop.MinWidth < 1 {
		errs = append(errs, errors.New("stackdrop: initial_width must be >= min_width >= 1"))
	}
	if c.TapPerfect.Lives < 1 || c.TapPerfect.PowerStep < 1 {
		errs = append(errs, errors.New("tapperfect: lives and power_step must be positive"))
	}
	if c.TapPerfect.PerfectRange > c.TapPerfect.GoodRange {
		errs = append(errs, errors.New("tapperfect: perfect_range must not exceed good_range"))
	}
	return errors.Join(errs...)
}
