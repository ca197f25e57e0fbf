package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/registry"
)

// view is the screen a session is showing.
type view int

const (
	viewMenu view = iota
	viewLevels
	viewDifficulty
	viewGame
	viewStats
	viewBadges
)

// SessionModel manages the full arcade flow for one player:
// menu -> picker -> game -> menu, plus the stats and badge screens.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	profile    *Profile
	config     core.RuntimeConfig
	id         string
	view       view
	menu       MenuModel
	levels     LevelPickerModel
	difficulty DifficultyPickerModel
	stats      StatsModel
	badges     BadgesModel
	gameModel  *GameModel
	pending    registry.Info
	gen        int
	single     *singleGame
	quitting   bool
}

// singleGame describes the one game a `play` session runs.
type singleGame struct {
	id         string
	level      int
	difficulty config.DifficultyPreset
}

// NewSessionModel creates a session that starts at the main menu.
func NewSessionModel(profile *Profile, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		profile: profile,
		config:  cfg,
		id:      uuid.NewString(),
		menu:    NewMenuModel(profile, cfg.ScreenW, cfg.ScreenH),
	}
}

// NewSingleGameSession creates a session that runs one game and quits
// when the player leaves it.
func NewSingleGameSession(profile *Profile, cfg core.RuntimeConfig, gameID string, level int, difficulty config.DifficultyPreset) SessionModel {
	m := NewSessionModel(profile, cfg)
	m.single = &singleGame{id: gameID, level: level, difficulty: difficulty}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.single != nil {
		return func() tea.Msg { return startSingleMsg{} }
	}
	return m.menu.Init()
}

// startSingleMsg starts the game of a single-game session. Init has a
// value receiver, so the game model is created on the first Update.
type startSingleMsg struct{}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	case startSingleMsg:
		info, ok := registry.Lookup(m.single.id)
		if !ok {
			m.profile.Logger.Error("unknown game", "game", m.single.id)
			m.quitting = true
			return m, tea.Quit
		}
		return m.startGame(info, m.single.level, m.single.difficulty)
	case TickMsg:
		// Ticks from a game that already ended are dropped here.
		if m.view != viewGame {
			return m, nil
		}
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewLevels:
		return m.updateLevels(msg)
	case viewDifficulty:
		return m.updateDifficulty(msg)
	case viewStats:
		return m.updateStats(msg)
	case viewBadges:
		return m.updateBadges(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	if m.single != nil {
		return m.quit()
	}
	m.view = viewMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.profile, m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	w, h := m.config.ScreenW, m.config.ScreenH
	switch selected.Kind {
	case MenuItemStats:
		m.view = viewStats
		m.stats = NewStatsModel(m.profile, w, h)
		return m, m.stats.Init()
	case MenuItemBadges:
		m.view = viewBadges
		m.badges = NewBadgesModel(m.profile, w, h)
		return m, m.badges.Init()
	}

	m.pending = selected.Game
	switch selected.Game.Picker {
	case registry.PickLevel:
		m.view = viewLevels
		m.levels = NewLevelPickerModel(m.profile, w, h)
		return m, m.levels.Init()
	case registry.PickDifficulty:
		m.view = viewDifficulty
		m.difficulty = NewDifficultyPickerModel(selected.Game, m.profile, w, h)
		return m, m.difficulty.Init()
	}
	return m.startGame(selected.Game, 0, "")
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.levels.Update(msg)
	if levels, ok := next.(LevelPickerModel); ok {
		m.levels = levels
	}
	switch {
	case m.levels.IsQuitting():
		return m.quit()
	case m.levels.GoingBack():
		return m.toMenu()
	case m.levels.Chosen() > 0:
		return m.startGame(m.pending, m.levels.Chosen(), "")
	}
	return m, cmd
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	if difficulty, ok := next.(DifficultyPickerModel); ok {
		m.difficulty = difficulty
	}
	switch {
	case m.difficulty.IsQuitting():
		return m.quit()
	case m.difficulty.GoingBack():
		return m.toMenu()
	case m.difficulty.Chosen() != "":
		return m.startGame(m.pending, 0, m.difficulty.Chosen())
	}
	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.stats.Update(msg)
	if stats, ok := next.(StatsModel); ok {
		m.stats = stats
	}
	switch {
	case m.stats.IsQuitting():
		return m.quit()
	case m.stats.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateBadges(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.badges.Update(msg)
	if badges, ok := next.(BadgesModel); ok {
		m.badges = badges
	}
	switch {
	case m.badges.IsQuitting():
		return m.quit()
	case m.badges.GoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// startGame creates the game and a runner with a fresh tick generation.
func (m SessionModel) startGame(info registry.Info, level int, difficulty config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := registry.Create(info.ID, m.profile.Env(level, difficulty))
	if err != nil {
		m.profile.Logger.Error("cannot start game", "game", info.ID, "error", err)
		return m.toMenu()
	}
	m.profile.Logger.Debug("game started",
		"session", m.id, "game", info.ID, "level", level, "difficulty", difficulty)

	m.gen++
	gameModel := NewGameModel(game, m.profile, m.config, m.gen)
	m.gameModel = &gameModel
	m.view = viewGame
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		return m.quit()
	}
	if m.gameModel.BackToMenu() {
		m.profile.Logger.Debug("game ended",
			"session", m.id, "game", m.gameModel.game.ID(), "score", m.gameModel.State().Score)
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case viewLevels:
		return m.levels.View()
	case viewDifficulty:
		return m.difficulty.View()
	case viewStats:
		return m.stats.View()
	case viewBadges:
		return m.badges.View()
	}
	return m.menu.View()
}

// ID returns the session identifier used in logs.
func (m SessionModel) ID() string {
	return m.id
}

// IsQuitting reports whether the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}
