package memory

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

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}

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

// flipAt moves the cursor onto card i and flips it.
func flipAt(g *Game, i int) {
	g.cursor = i
	g.Step(core.NewInputFrame(core.ActionSelect))
}

// pairs returns the indices of both cards of every symbol.
func pairs(g *Game) [][2]int {
	seen := map[rune]int{}
	var out [][2]int
	for i, c := range g.cards {
		if j, ok := seen[c.symbol]; ok {
			out = append(out, [2]int{j, i})
			continue
		}
		seen[c.symbol] = i
	}
	return out
}

func mismatch(g *Game) (int, int) {
	for i := 1; i < len(g.cards); i++ {
		if g.cards[i].symbol != g.cards[0].symbol {
			return 0, i
		}
	}
	return 0, 0
}

func TestBoardSizes(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		cards  int
	}{
		{config.DifficultyEasy, 12},
		{config.DifficultyMedium, 16},
		{config.DifficultyHard, 20},
		{"", 16},
	}

	for _, tt := range tests {
		g := newGame(newStats(), tt.preset)
		assert.Len(t, g.cards, tt.cards, "preset %q", tt.preset)
		for _, p := range pairs(g) {
			assert.Equal(t, g.cards[p[0]].symbol, g.cards[p[1]].symbol)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(newStats(), config.DifficultyEasy)
	g2 := newGame(newStats(), config.DifficultyEasy)

	for i := 0; i < 60; i++ {
		in := core.InputFrame{}
		switch i % 7 {
		case 0:
			in.Set(core.ActionSelect)
		case 3:
			in.Set(core.ActionRight)
		case 5:
			in.Set(core.ActionDown)
		}
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestTimerStartsOnFirstFlip(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)

	for i := 0; i < 30; i++ {
		g.Step(core.InputFrame{})
	}
	assert.Equal(t, session.NotStarted, g.sess.Phase())
	assert.Zero(t, g.sess.Elapsed())

	flipAt(g, 0)
	assert.Equal(t, session.Active, g.sess.Phase())
	for i := 0; i < 60; i++ {
		g.Step(core.InputFrame{})
	}
	assert.Equal(t, 2, g.Seconds())
}

func TestMismatchTurnsBack(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)
	a, b := mismatch(g)

	flipAt(g, a)
	flipAt(g, b)
	assert.Equal(t, 1, g.Moves())
	assert.Len(t, g.flipped, 2)

	// Flips are ignored while the pair is showing.
	flipAt(g, 5)
	assert.Len(t, g.flipped, 2)

	for i := 0; i < testRuntime.Ticks(1000); i++ {
		g.Step(core.InputFrame{})
	}
	assert.Empty(t, g.flipped)
	assert.Zero(t, g.matched)
}

func TestMatchStaysUp(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)
	p := pairs(g)[0]

	flipAt(g, p[0])
	flipAt(g, p[1])

	assert.Equal(t, 1, g.matched)
	assert.True(t, g.cards[p[0]].matched)
	assert.Empty(t, g.flipped)
	assert.Equal(t, pairPoints, g.sess.Score())

	flipAt(g, p[0])
	assert.Empty(t, g.flipped, "matched cards cannot be flipped")
}

func TestSameCardTwiceIsIgnored(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)

	flipAt(g, 0)
	flipAt(g, 0)

	assert.Equal(t, []int{0}, g.flipped)
	assert.Zero(t, g.Moves())
}

func TestWinRecordsStats(t *testing.T) {
	stats := newStats()
	g := newGame(stats, config.DifficultyEasy)

	for _, p := range pairs(g) {
		flipAt(g, p[0])
		flipAt(g, p[1])
	}

	require.True(t, g.State().GameOver)
	assert.Equal(t, 6, g.Moves())
	assert.Equal(t, 6*pairPoints+6*bonusPoints, g.State().Score)
	assert.Equal(t, []Option{OptionNext, OptionAgain, OptionMenu}, g.Options())

	rec := stats.Memory()
	assert.Equal(t, 1, rec.GamesPlayed)
	assert.Equal(t, 1, rec.TotalWins)
	assert.Equal(t, 6, rec.BestMoves)
	assert.Equal(t, config.DifficultyEasy, rec.CurrentDifficulty)

	// A second Reset must not count the finished board again.
	g.Reset(testRuntime)
	assert.Equal(t, 1, stats.Memory().GamesPlayed)
}

func TestAbandonedBoardCountsAsPlayed(t *testing.T) {
	stats := newStats()
	g := newGame(stats, config.DifficultyMedium)
	a, b := mismatch(g)
	flipAt(g, a)
	flipAt(g, b)

	g.Step(core.NewInputFrame(core.ActionBack))
	require.Equal(t, session.Paused, g.sess.Phase())
	res := g.Step(core.NewInputFrame(core.ActionBack))

	assert.True(t, res.State.Exit)
	rec := stats.Memory()
	assert.Equal(t, 1, rec.GamesPlayed)
	assert.Zero(t, rec.TotalWins)
	assert.Equal(t, gamestats.NoBest, rec.BestMoves)
}

func TestCloseRecordsAbandonedBoardOnce(t *testing.T) {
	stats := newStats()
	g := newGame(stats, config.DifficultyEasy)
	a, b := mismatch(g)
	flipAt(g, a)
	flipAt(g, b)

	g.Close()
	g.Close()
	g.Reset(testRuntime)

	rec := stats.Memory()
	assert.Equal(t, 1, rec.GamesPlayed)
	assert.Zero(t, rec.TotalWins)
}

func TestUntouchedBoardIsNotRecorded(t *testing.T) {
	stats := newStats()
	g := newGame(stats, config.DifficultyEasy)

	assert.True(t, g.Step(core.NewInputFrame(core.ActionBack)).State.Exit)
	g.Reset(testRuntime)
	assert.Zero(t, stats.Memory().GamesPlayed)
}

func TestHarderBoard(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)
	for _, p := range pairs(g) {
		flipAt(g, p[0])
		flipAt(g, p[1])
	}

	g.Step(core.NewInputFrame(core.ActionConfirm))

	assert.Equal(t, config.DifficultyMedium, g.Difficulty())
	assert.Len(t, g.cards, 16)
	assert.Equal(t, session.NotStarted, g.sess.Phase())
}

func TestHardestBoardOffersNoHarder(t *testing.T) {
	g := newGame(newStats(), config.DifficultyHard)
	for _, p := range pairs(g) {
		flipAt(g, p[0])
		flipAt(g, p[1])
	}

	assert.Equal(t, []Option{OptionAgain, OptionMenu}, g.Options())
}

func TestPauseFreezesClock(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)
	flipAt(g, 0)

	g.Step(core.NewInputFrame(core.ActionPause))
	elapsed := g.sess.Elapsed()
	for i := 0; i < 90; i++ {
		g.Step(core.InputFrame{})
	}
	assert.Equal(t, elapsed, g.sess.Elapsed())
}

func TestRender(t *testing.T) {
	g := newGame(newStats(), config.DifficultyEasy)
	s := core.NewScreen(80, 24)
	g.Render(s)
	assert.True(t, s.Contains("MEMORY MATCH"))
	assert.True(t, s.Contains("?"))

	for _, p := range pairs(g) {
		flipAt(g, p[0])
		flipAt(g, p[1])
	}
	s.Clear()
	g.Render(s)
	assert.True(t, s.Contains("All pairs found!"))
	assert.True(t, s.Contains("New personal best!"))
}
