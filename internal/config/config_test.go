package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestMathLevel(t *testing.T) {
	m := DefaultConfig().Math

	tests := []struct {
		name      string
		level     int
		ops       []Operation
		maxNum    int
		timeLimit int
		questions int
	}{
		{"below one", 0, []Operation{OpAdd}, 10, 15, 10},
		{"first", 1, []Operation{OpAdd}, 10, 15, 10},
		{"division", 5, []Operation{OpDiv}, 50, 15, 10},
		{"last row", 10, []Operation{OpAdd, OpSub, OpMul, OpDiv}, 100, 6, 20},
		{"first grown", 11, []Operation{OpAdd, OpSub, OpMul, OpDiv}, 110, 6, 20},
		{"grown", 25, []Operation{OpAdd, OpSub, OpMul, OpDiv}, 250, 5, 20},
		{"capped", 100, []Operation{OpAdd, OpSub, OpMul, OpDiv}, 1000, 4, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := m.Level(tt.level)
			assert.Equal(t, tt.ops, lvl.Ops)
			assert.Equal(t, tt.maxNum, lvl.MaxNum)
			assert.Equal(t, tt.timeLimit, lvl.TimeLimit)
			assert.Equal(t, tt.questions, lvl.Questions)
		})
	}
}

func TestDivisionMax(t *testing.T) {
	assert.Equal(t, 10, LevelConfig{MaxNum: 50, DivMax: 10}.DivisionMax())
	assert.Equal(t, 10, LevelConfig{MaxNum: 50}.DivisionMax())
	assert.Equal(t, 6, LevelConfig{MaxNum: 6}.DivisionMax())
	assert.Equal(t, 1, LevelConfig{}.DivisionMax())
}

func TestStarsFor(t *testing.T) {
	m := DefaultConfig().Math

	tests := []struct {
		correct, total, expected int
	}{
		{10, 10, 3},
		{9, 10, 3},
		{8, 10, 2},
		{7, 10, 2},
		{6, 10, 1},
		{5, 10, 1},
		{4, 10, 0},
		{11, 12, 3},
		{0, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, m.StarsFor(tt.correct, tt.total), "StarsFor(%d, %d)", tt.correct, tt.total)
	}
}

func TestVisibleUpTo(t *testing.T) {
	m := DefaultConfig().Math
	assert.Equal(t, 15, m.VisibleUpTo(1))
	assert.Equal(t, 24, m.VisibleUpTo(20))

	m.MaxLevel = 12
	assert.Equal(t, 12, m.VisibleUpTo(1))
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("math:\n  unlock_min_stars: 3\nmemory:\n  difficulties:\n    easy: { pairs: 4, columns: 4 }\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Math.UnlockMinStars)
	assert.Len(t, cfg.Math.Levels, 10, "unset sections keep their defaults")
	assert.Equal(t, 4, cfg.Memory.Difficulties[DifficultyEasy].Pairs)
	assert.Equal(t, 8, cfg.Memory.Difficulties[DifficultyMedium].Pairs, "maps merge with the defaults")
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "math: ["},
		{"unknown op", "math:\n  levels:\n    - { ops: [\"%\"], max_num: 5, time_limit: 5, questions: 5 }\n"},
		{"too many choices", "math:\n  choices: 6\n"},
		{"inverted stars", "math:\n  stars: { three: 50, two: 70, one: 90 }\n"},
		{"perfect wider than good", "tapperfect:\n  perfect_range: 40\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("math:\n  xp_per_correct: 25\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Math.XPPerCorrect)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyMedium, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestPresetsScaleGames(t *testing.T) {
	tap := DefaultConfig().TapPerfect
	ApplyTapPerfectPreset(&tap, DifficultyEasy)
	assert.Equal(t, 2, tap.PowerStep)

	tap = DefaultConfig().TapPerfect
	ApplyTapPerfectPreset(&tap, DifficultyHard)
	assert.Equal(t, 4, tap.PowerStep)

	stack := DefaultConfig().StackDrop
	ApplyStackDropPreset(&stack, DifficultyHard)
	assert.InDelta(t, 0.75, stack.SwingSpeed, 1e-9)

	mem := DefaultConfig().Memory
	assert.Equal(t, 10, mem.MemoryBoard(DifficultyHard).Pairs)
	assert.Equal(t, 8, mem.MemoryBoard("unknown").Pairs)
}
