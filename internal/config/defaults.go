package config

import (
	_ "embed"
)

//go:embed defaults/champions.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration used when no YAML parses.
func DefaultConfig() Config {
	all := []Operation{OpAdd, OpSub, OpMul, OpDiv}
	return Config{
		Math: MathConfig{
			Levels: []LevelConfig{
				{Ops: []Operation{OpAdd}, MaxNum: 10, TimeLimit: 15, Questions: 10},
				{Ops: []Operation{OpSub}, MaxNum: 10, TimeLimit: 15, Questions: 10},
				{Ops: []Operation{OpAdd, OpSub}, MaxNum: 20, TimeLimit: 12, Questions: 10},
				{Ops: []Operation{OpMul}, MaxNum: 10, TimeLimit: 15, Questions: 10},
				{Ops: []Operation{OpDiv}, MaxNum: 50, DivMax: 10, TimeLimit: 15, Questions: 10},
				{Ops: []Operation{OpMul, OpDiv}, MaxNum: 12, TimeLimit: 12, Questions: 10},
				{Ops: all, MaxNum: 20, DivMax: 10, TimeLimit: 12, Questions: 12},
				{Ops: all, MaxNum: 50, DivMax: 10, TimeLimit: 10, Questions: 12},
				{Ops: all, MaxNum: 100, DivMax: 10, TimeLimit: 8, Questions: 15},
				{Ops: all, MaxNum: 100, DivMax: 10, TimeLimit: 6, Questions: 20},
			},
			Growth: GrowthConfig{
				MaxNumStep:     10,
				MaxNumCap:      1000,
				TimeLimitEvery: 10,
				MinTimeLimit:   4,
				Questions:      20,
			},
			Stars:          StarThresholds{Three: 90, Two: 70, One: 50},
			XPPerCorrect:   10,
			Choices:        4,
			UnlockMinStars: 1,
			FeedbackMs:     900,
			VisibleLevels:  15,
			VisibleAhead:   4,
		},
		Badges: BadgeConfig{
			StreakTarget: 5,
			QuickMs:      2000,
			LevelTarget:  10,
			SolvedTarget: 100,
			SteadyDays:   5,
			StarsTarget:  500,
			ConquerLevel: 50,
		},
		Memory: MemoryConfig{
			Difficulties: map[DifficultyPreset]MemoryDifficulty{
				DifficultyEasy:   {Pairs: 6, Columns: 4},
				DifficultyMedium: {Pairs: 8, Columns: 4},
				DifficultyHard:   {Pairs: 10, Columns: 5},
			},
			MismatchMs: 1000,
			Symbols:    "★♥♦♣♠☀☂☯♫✿⚑✈",
		},
		StackDrop: StackDropConfig{
			InitialWidth:     16,
			MinWidth:         2,
			PerfectThreshold: 1,
			PerfectGrow:      1,
			SwingSpeed:       0.5,
			SpeedStep:        0.02,
			MaxSpeed:         1.2,
		},
		TapPerfect: TapPerfectConfig{
			Lives:        3,
			Target:       50,
			PowerStep:    3,
			PerfectRange: 15,
			GoodRange:    30,
			PerfectBase:  10,
			ComboBonus:   2,
			GoodPoints:   5,
			ResetMs:      800,
		},
	}
}
