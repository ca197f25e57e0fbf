package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/registry"
)

// resizer is implemented by games that can follow a window resize
// without starting over.
type resizer interface {
	Resize(w, h int)
}

// closer is implemented by games that must settle an unfinished session
// when the player quits the program mid-game.
type closer interface {
	Close()
}

// GameModel runs one game: it owns the tick loop, maps keys to actions
// and saves the score when a session ends.
type GameModel struct {
	game       registry.Game
	profile    *Profile
	screen     *core.Screen
	config     core.RuntimeConfig
	gen        int
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a runner for game. gen tags its ticks.
func NewGameModel(game registry.Game, profile *Profile, cfg core.RuntimeConfig, gen int) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		game:       game,
		profile:    profile,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		gen:        gen,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		if c, ok := m.game.(closer); ok {
			c.Close()
		}
		return m, nil
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Save score on game over (once per session)
	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		if m.profile != nil && m.gameState.Score > 0 {
			m.profile.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	if m.gameState.Exit {
		m.backToMenu = true
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".champions", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}
