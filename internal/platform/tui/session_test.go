package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	_ "github.com/vovakirdan/math-champions/internal/games/mathquiz"
	_ "github.com/vovakirdan/math-champions/internal/games/memory"
	_ "github.com/vovakirdan/math-champions/internal/games/stackdrop"
	_ "github.com/vovakirdan/math-champions/internal/games/tapperfect"
	"github.com/vovakirdan/math-champions/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}

func testProfile() *Profile {
	return NewProfile(nil, "", config.DefaultConfig(), log.New(io.Discard))
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		require.True(t, ok, "Update returned %T", next)
	}
	return m, cmd
}

func TestMenuListsGamesThenScreens(t *testing.T) {
	menu := NewMenuModel(testProfile(), 80, 24)

	var titles []string
	for _, item := range menu.items {
		titles = append(titles, item.Title)
	}
	require.Len(t, titles, 7)
	assert.Equal(t, "Math Champions", menu.items[0].Game.Title)
	assert.Equal(t, MenuItemStats, menu.items[4].Kind)
	assert.Equal(t, MenuItemBadges, menu.items[5].Kind)
	assert.Equal(t, MenuItemQuit, menu.items[6].Kind)
	assert.Contains(t, menu.View(), "Level 1")
}

func TestSessionMathFlow(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)

	m, _ = send(t, m, keyEnter)
	require.Equal(t, viewLevels, m.view)
	assert.Contains(t, m.View(), "CHOOSE A LEVEL")

	m, cmd := send(t, m, keyEnter)
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.gen)

	// Back on the intro screen leaves the game on the next tick.
	m, _ = send(t, m, keyEsc, TickMsg{Gen: 1})
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.gameModel)

	// A tick still in flight from the finished game is ignored.
	m, cmd = send(t, m, TickMsg{Gen: 1})
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, cmd)
}

func TestSessionLockedLevelIsNotPlayable(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)
	m, _ = send(t, m, keyEnter, tea.KeyMsg{Type: tea.KeyRight}, keyEnter)

	assert.Equal(t, viewLevels, m.view)
	assert.Equal(t, 0, m.levels.Chosen())
}

func TestSessionDifficultyFlow(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)

	m, _ = send(t, m, keyDown, keyEnter)
	require.Equal(t, viewDifficulty, m.view)
	assert.Equal(t, config.DifficultyEasy, m.difficulty.presets[m.difficulty.cursor])
	assert.Contains(t, m.View(), "6 pairs")

	m, _ = send(t, m, keyDown, keyEnter)
	require.Equal(t, viewGame, m.view)
	assert.Equal(t, "memory", m.gameModel.game.ID())

	m, _ = send(t, m, keyEsc, TickMsg{Gen: m.gen})
	assert.Equal(t, viewMenu, m.view)
}

func TestQuitMidGameSettlesMemoryBoard(t *testing.T) {
	profile := testProfile()
	m := NewSessionModel(profile, testRuntime)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}

	m, _ = send(t, m, keyDown, keyEnter, keyEnter)
	require.Equal(t, viewGame, m.view)
	m, _ = send(t, m,
		space, TickMsg{Gen: m.gen},
		tea.KeyMsg{Type: tea.KeyRight}, TickMsg{Gen: m.gen},
		space, TickMsg{Gen: m.gen},
	)

	m, _ = send(t, m, runeKey("q"))
	require.True(t, m.IsQuitting())
	assert.Equal(t, 1, profile.Stats.Memory().GamesPlayed)
}

func TestSessionPickerBack(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)

	m, _ = send(t, m, keyDown, keyDown, keyEnter)
	require.Equal(t, viewDifficulty, m.view)

	m, _ = send(t, m, keyEsc)
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.menu.Selected())
}

func TestSessionStatsAndBadges(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)

	m, _ = send(t, m, keyDown, keyDown, keyDown, keyDown, keyEnter)
	require.Equal(t, viewStats, m.view)
	assert.Contains(t, m.View(), "No scores recorded yet")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "Memory Match")

	m, _ = send(t, m, keyEsc)
	require.Equal(t, viewMenu, m.view)

	m, _ = send(t, m, keyDown, keyDown, keyDown, keyDown, keyDown, keyEnter)
	require.Equal(t, viewBadges, m.view)
	assert.Contains(t, m.View(), "First Step")

	m, _ = send(t, m, keyEsc)
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)

	m, cmd := send(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestSingleGameSession(t *testing.T) {
	m := NewSingleGameSession(testProfile(), testRuntime, "tapperfect", 0, config.DifficultyHard)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	require.Equal(t, viewGame, m.view)
	assert.Equal(t, "tapperfect", m.gameModel.game.ID())

	m, cmd = send(t, m, keyEsc, TickMsg{Gen: m.gen})
	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
}

func TestSingleGameSessionUnknownGame(t *testing.T) {
	m := NewSingleGameSession(testProfile(), testRuntime, "chess", 0, "")

	m, _ = send(t, m, startSingleMsg{})
	assert.True(t, m.IsQuitting())
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	m := NewSessionModel(testProfile(), testRuntime)
	m, _ = send(t, m, keyEnter, keyEnter)
	require.Equal(t, viewGame, m.view)

	m, cmd := send(t, m, TickMsg{Gen: m.gen + 5})
	assert.Nil(t, cmd)
	assert.Equal(t, viewGame, m.view)

	_, cmd = send(t, m, TickMsg{Gen: m.gen})
	assert.NotNil(t, cmd)
}

func TestProfileWithoutStore(t *testing.T) {
	p := testProfile()

	assert.Equal(t, DefaultProfile, p.Name)
	p.SaveScore("math", 10)
	assert.Empty(t, p.TopScores("math", 10))
	assert.Equal(t, 1, p.Ledger.Load().CurrentLevel)
}

func TestProfileScoresAreShared(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "champions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ada := NewProfile(store, "ada", config.DefaultConfig(), log.New(io.Discard))
	bob := NewProfile(store, "bob", config.DefaultConfig(), log.New(io.Discard))
	ada.SaveScore("stackdrop", 12)
	bob.SaveScore("stackdrop", 30)

	scores := ada.TopScores("stackdrop", 10)
	require.Len(t, scores, 2)
	assert.Equal(t, "bob", scores[0].Profile)
	assert.Equal(t, 30, scores[0].Score)
}
