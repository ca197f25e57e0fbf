package stackdrop

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/gamestats"
	"github.com/vovakirdan/math-champions/internal/registry"
	"github.com/vovakirdan/math-champions/internal/session"
	"github.com/vovakirdan/math-champions/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 3}

func newStats() *gamestats.Stats {
	return gamestats.New(storage.NewMemoryRecords(), log.New(io.Discard))
}

func newGame(stats *gamestats.Stats, preset config.DifficultyPreset) *Game {
	g := New(registry.Env{
		Config:     config.DefaultConfig(),
		Stats:      stats,
		Logger:     log.New(io.Discard),
		Difficulty: preset,
	})
	g.Reset(testRuntime)
	return g
}

func drop(g *Game) {
	g.Step(core.NewInputFrame(core.ActionSelect))
}

// started returns an active game with the swinging block at x.
func started(t *testing.T, stats *gamestats.Stats) *Game {
	t.Helper()
	g := newGame(stats, config.DifficultyMedium)
	drop(g)
	require.Equal(t, session.Active, g.sess.Phase())
	return g
}

func TestInitialTower(t *testing.T) {
	g := newGame(newStats(), config.DifficultyMedium)

	assert.Equal(t, 48, g.fieldW)
	assert.Equal(t, core.Span{X: 16, W: 16}, g.Top().Span)
	assert.Equal(t, session.NotStarted, g.sess.Phase())
}

func TestPerfectDrop(t *testing.T) {
	g := started(t, newStats())
	g.x = 16

	drop(g)

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 1, snap.Perfect)
	assert.Equal(t, 2, snap.Blocks)
	assert.Equal(t, 16, snap.TopX)
	assert.Equal(t, 16, snap.TopW, "width never grows past the initial width")
	assert.Positive(t, g.flash)
}

func TestPerfectDropGrowsNarrowBlock(t *testing.T) {
	g := started(t, newStats())
	g.x = 20
	drop(g)
	require.Equal(t, 12, g.width)

	g.x = 20
	drop(g)

	assert.Equal(t, 13, g.Top().W)
	assert.Equal(t, 20, g.Top().X)
	assert.Equal(t, 1, g.perfect)
}

func TestPartialDropTrims(t *testing.T) {
	g := started(t, newStats())
	g.x = 21

	drop(g)

	top := g.Top()
	assert.Equal(t, 21, top.X)
	assert.Equal(t, 11, top.W)
	assert.Equal(t, 11, g.width)
	assert.Zero(t, g.perfect)
	assert.InDelta(t, 0.52, g.x, 1e-9, "the next block starts from the left edge")
}

func TestMissEndsGame(t *testing.T) {
	stats := newStats()
	g := started(t, stats)
	g.x = 0

	drop(g)

	require.True(t, g.State().GameOver)
	assert.Equal(t, session.EndGameRule, g.sess.Reason())
	rec := stats.StackDrop()
	assert.Equal(t, 1, rec.TotalGames)
	assert.Zero(t, rec.HighScore)
}

func TestTooNarrowEndsGame(t *testing.T) {
	g := started(t, newStats())
	g.x = 31

	drop(g)

	assert.True(t, g.State().GameOver)
	assert.Equal(t, 1, len(g.tower))
}

func TestRecordsOncePerTower(t *testing.T) {
	stats := newStats()
	g := started(t, stats)
	for i := 0; i < 3; i++ {
		g.x = 16
		drop(g)
	}
	g.x = 0
	drop(g)
	for i := 0; i < 50; i++ {
		g.Step(core.InputFrame{})
	}

	rec := stats.StackDrop()
	assert.Equal(t, gamestats.StackDropProgress{HighScore: 3, TotalGames: 1, PerfectDrops: 3, TotalBlocks: 3}, rec)
}

func TestSwingStaysInField(t *testing.T) {
	g := started(t, newStats())

	sawLeft := false
	for i := 0; i < 1000; i++ {
		g.Step(core.InputFrame{})
		assert.GreaterOrEqual(t, g.x, 0.0)
		assert.LessOrEqual(t, g.x, float64(g.fieldW-g.width))
		if g.dir < 0 {
			sawLeft = true
		}
	}
	assert.True(t, sawLeft, "block should bounce off the right edge")
}

func TestSpeedCapped(t *testing.T) {
	g := started(t, newStats())
	for i := 0; i < 100; i++ {
		g.x = float64(g.Top().X)
		drop(g)
	}

	assert.InDelta(t, 1.2, g.speed, 1e-9)
	assert.False(t, g.State().GameOver)
}

func TestPresetScalesSpeed(t *testing.T) {
	easy := newGame(newStats(), config.DifficultyEasy)
	hard := newGame(newStats(), config.DifficultyHard)

	assert.InDelta(t, 0.375, easy.speed, 1e-9)
	assert.InDelta(t, 0.75, hard.speed, 1e-9)
}

func TestRestartAfterFall(t *testing.T) {
	g := started(t, newStats())
	g.x = 0
	drop(g)
	require.True(t, g.State().GameOver)

	g.Step(core.NewInputFrame(core.ActionRestart))

	assert.Equal(t, session.NotStarted, g.sess.Phase())
	assert.Len(t, g.tower, 1)
	assert.Equal(t, 0, g.State().Score)
}

func TestPauseFreezesSwing(t *testing.T) {
	g := started(t, newStats())
	g.Step(core.InputFrame{})

	g.Step(core.NewInputFrame(core.ActionPause))
	x := g.x
	for i := 0; i < 30; i++ {
		drop(g)
	}

	assert.Equal(t, x, g.x)
	assert.Len(t, g.tower, 1)
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(newStats(), config.DifficultyMedium)
	g2 := newGame(newStats(), config.DifficultyMedium)

	for i := 0; i < 400; i++ {
		in := core.InputFrame{}
		if i%37 == 0 {
			in.Set(core.ActionSelect)
		}
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestRender(t *testing.T) {
	g := newGame(newStats(), config.DifficultyMedium)
	s := core.NewScreen(80, 24)

	g.Render(s)
	assert.True(t, s.Contains("Press Space to start"))

	drop(g)
	g.x = 0
	drop(g)
	s.Clear()
	g.Render(s)
	assert.True(t, s.Contains("Tower fell!"))
}

func TestResizeKeepsTower(t *testing.T) {
	g := started(t, newStats())
	g.x = 16
	drop(g)

	g.Resize(50, 24)
	assert.True(t, g.State().Paused, "a 48 cell field does not fit in 50 columns")
	assert.Len(t, g.tower, 2)

	g.Resize(100, 30)
	assert.False(t, g.State().Paused)
	assert.Equal(t, 48, g.fieldW)
	assert.Len(t, g.tower, 2)
}
