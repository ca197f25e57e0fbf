package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/registry"
)

// DifficultyPickerModel lets the player choose a difficulty preset.
type DifficultyPickerModel struct {
	game      registry.Info
	cfg       config.Config
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    config.DifficultyPreset
	back      bool
	quitting  bool
}

// NewDifficultyPickerModel starts on the preset last played, if known.
func NewDifficultyPickerModel(game registry.Info, profile *Profile, width, height int) DifficultyPickerModel {
	m := DifficultyPickerModel{
		game:      game,
		cfg:       profile.Config,
		presets:   config.Presets(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	last := config.DifficultyMedium
	if game.ID == "memory" {
		last = profile.Stats.Memory().CurrentDifficulty
	}
	for i, p := range m.presets {
		if p == last {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.back = true
		case MenuActionUp, MenuActionLeft:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown, MenuActionRight:
			m.cursor = min(m.cursor+1, len(m.presets)-1)
		case MenuActionSelect:
			m.chosen = m.presets[m.cursor]
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// describe summarises what a preset changes for the game.
func (m DifficultyPickerModel) describe(p config.DifficultyPreset) string {
	switch m.game.ID {
	case "memory":
		board := m.cfg.Memory.MemoryBoard(p)
		return fmt.Sprintf("%d pairs", board.Pairs)
	case "stackdrop":
		sd := m.cfg.StackDrop
		config.ApplyStackDropPreset(&sd, p)
		return fmt.Sprintf("swing %.2f cells/tick", sd.SwingSpeed)
	case "tapperfect":
		tp := m.cfg.TapPerfect
		config.ApplyTapPerfectPreset(&tp, p)
		return fmt.Sprintf("meter speed %d", tp.PowerStep)
	}
	return ""
}

// View renders the preset list.
func (m DifficultyPickerModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.game.Title)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Choose a difficulty"), m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-7s %s  ", p, m.describe(p))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-7s %s <", p, m.describe(p)))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the picked preset, "" if none yet.
func (m DifficultyPickerModel) Chosen() config.DifficultyPreset {
	return m.chosen
}

// GoingBack reports whether the player backed out.
func (m DifficultyPickerModel) GoingBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m DifficultyPickerModel) IsQuitting() bool {
	return m.quitting
}
