package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	m := New(Config{Units: 3})
	assert.Equal(t, NotStarted, m.Phase())
	assert.Empty(t, m.ID())

	require.NoError(t, m.Start())
	assert.Equal(t, Active, m.Phase())
	assert.NotEmpty(t, m.ID())
	assert.ErrorIs(t, m.Start(), ErrWrongPhase)

	require.NoError(t, m.Record(true, 10))
	require.NoError(t, m.Record(false, 10))
	assert.Equal(t, Active, m.Phase())
	require.NoError(t, m.Record(true, 10))

	assert.Equal(t, Complete, m.Phase())
	assert.Equal(t, EndUnits, m.Reason())
	assert.Equal(t, 20, m.Score())
	assert.Equal(t, 2, m.Correct())
	assert.Equal(t, 3, m.Unit())

	m.Restart()
	assert.Equal(t, NotStarted, m.Phase())
	assert.Equal(t, 0, m.Score())
}

func TestNoScoringOutsideActive(t *testing.T) {
	m := New(Config{Units: 2, Lives: 3})

	assert.ErrorIs(t, m.Record(true, 5), ErrNotActive)
	assert.ErrorIs(t, m.AddScore(5), ErrNotActive)
	assert.ErrorIs(t, m.LoseLife(), ErrNotActive)

	require.NoError(t, m.Start())
	require.NoError(t, m.Pause())
	assert.ErrorIs(t, m.Record(true, 5), ErrNotActive)
	require.NoError(t, m.Resume())

	m.Record(true, 5) //nolint:errcheck
	m.Record(true, 5) //nolint:errcheck
	require.True(t, m.Done())

	assert.ErrorIs(t, m.Record(true, 5), ErrNotActive)
	assert.ErrorIs(t, m.AddScore(1), ErrNotActive)
	assert.Equal(t, 10, m.Score(), "no score change after Complete")
}

func TestStreaks(t *testing.T) {
	m := New(Config{})
	require.NoError(t, m.Start())

	for _, c := range []bool{true, true, true, false, true} {
		require.NoError(t, m.Record(c, 1))
	}
	assert.Equal(t, 1, m.Streak())
	assert.Equal(t, 3, m.BestStreak())
	assert.Equal(t, Active, m.Phase(), "zero units means unbounded")
}

func TestNegativePointsIgnored(t *testing.T) {
	m := New(Config{})
	require.NoError(t, m.Start())
	require.NoError(t, m.Record(true, -4))
	require.NoError(t, m.AddScore(-4))
	assert.Equal(t, 0, m.Score())
}

func TestUnitCountdown(t *testing.T) {
	m := New(Config{Units: 5, UnitTicks: 3})
	require.NoError(t, m.Start())

	assert.False(t, m.Tick().UnitExpired)
	assert.False(t, m.Tick().UnitExpired)
	assert.True(t, m.Tick().UnitExpired)
	assert.Equal(t, 0, m.UnitTicksLeft())

	require.NoError(t, m.Record(false, 0))
	assert.Equal(t, 3, m.UnitTicksLeft(), "recording a unit restarts its countdown")
}

func TestTimersFrozenWhilePaused(t *testing.T) {
	m := New(Config{UnitTicks: 10, TimeLimitTicks: 20})
	require.NoError(t, m.Start())
	m.Tick()

	m.TogglePause()
	assert.Equal(t, Paused, m.Phase())
	for i := 0; i < 50; i++ {
		assert.Equal(t, TickResult{}, m.Tick())
	}
	assert.Equal(t, 9, m.UnitTicksLeft())
	assert.Equal(t, 19, m.TimeLeft())
	assert.Equal(t, 1, m.Elapsed())

	m.TogglePause()
	assert.Equal(t, Active, m.Phase())
}

func TestSessionTimeLimit(t *testing.T) {
	m := New(Config{TimeLimitTicks: 4})
	require.NoError(t, m.Start())

	var last TickResult
	for i := 0; i < 4; i++ {
		last = m.Tick()
	}
	assert.True(t, last.Completed)
	assert.Equal(t, EndTime, m.Reason())
	assert.Equal(t, TickResult{}, m.Tick(), "no ticks after Complete")
}

func TestLives(t *testing.T) {
	m := New(Config{Lives: 2})
	require.NoError(t, m.Start())

	require.NoError(t, m.LoseLife())
	assert.Equal(t, 1, m.Lives())
	assert.True(t, m.Running())

	require.NoError(t, m.LoseLife())
	assert.True(t, m.Done())
	assert.Equal(t, EndLives, m.Reason())
}

func TestLivesDisabled(t *testing.T) {
	m := New(Config{})
	require.NoError(t, m.Start())
	require.NoError(t, m.LoseLife())
	assert.True(t, m.Running())
}

func TestFinish(t *testing.T) {
	m := New(Config{})
	assert.ErrorIs(t, m.Finish(EndGameRule), ErrWrongPhase)

	require.NoError(t, m.Start())
	require.NoError(t, m.Finish(EndGameRule))
	assert.Equal(t, EndGameRule, m.Reason())
	assert.ErrorIs(t, m.Finish(EndGameRule), ErrWrongPhase)
}

func TestRestartIssuesNewID(t *testing.T) {
	m := New(Config{})
	require.NoError(t, m.Start())
	first := m.ID()

	m.Restart()
	require.NoError(t, m.Start())
	assert.NotEqual(t, first, m.ID())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
