package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/games/hud"
	"github.com/vovakirdan/math-champions/internal/progress"
)

const levelColumns = 5

// LevelPickerModel lets the player choose a math level.
type LevelPickerModel struct {
	progress  progress.PlayerProgress
	math      config.MathConfig
	count     int
	cursor    int // zero-based level index
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    int
	back      bool
	quitting  bool
}

// NewLevelPickerModel lists the visible levels with the cursor on the current one.
func NewLevelPickerModel(profile *Profile, width, height int) LevelPickerModel {
	p := profile.Ledger.Load()
	math := profile.Ledger.Math()
	count := max(math.VisibleUpTo(p.CurrentLevel), 1)
	return LevelPickerModel{
		progress:  p,
		math:      math,
		count:     count,
		cursor:    min(p.CurrentLevel, count) - 1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *LevelPickerModel) handleKey(msg tea.KeyMsg) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionBack:
		m.back = true
	case MenuActionLeft:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionRight:
		m.cursor = min(m.cursor+1, m.count-1)
	case MenuActionUp:
		if m.cursor-levelColumns >= 0 {
			m.cursor -= levelColumns
		}
	case MenuActionDown:
		if m.cursor+levelColumns < m.count {
			m.cursor += levelColumns
		}
	case MenuActionSelect:
		if level := m.cursor + 1; m.progress.IsUnlocked(level) {
			m.chosen = level
		}
	}
}

// View renders the level grid.
func (m LevelPickerModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CHOOSE A LEVEL"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(fmt.Sprintf("Continue at level %d · ★ %d", m.progress.CurrentLevel, m.progress.TotalStars)), m.width))
	b.WriteString("\n\n")

	var rows []string
	for start := 0; start < m.count; start += levelColumns {
		cells := make([]string, 0, levelColumns)
		for i := start; i < min(start+levelColumns, m.count); i++ {
			cells = append(cells, m.renderCell(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n\n")

	lvl := m.math.Level(m.cursor + 1)
	ops := make([]string, len(lvl.Ops))
	for i, op := range lvl.Ops {
		ops[i] = string(op)
	}
	detail := fmt.Sprintf("Level %d: %s up to %d · %d questions · %ds each",
		m.cursor+1, strings.Join(ops, " "), lvl.MaxNum, lvl.Questions, lvl.TimeLimit)
	b.WriteString(centerText(detail, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Arrows: Move  |  Enter: Play  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m LevelPickerModel) renderCell(i int) string {
	level := i + 1
	var label string
	style := lipgloss.NewStyle().Width(10).Align(lipgloss.Center).Padding(0, 1)
	switch {
	case !m.progress.IsUnlocked(level):
		label = fmt.Sprintf("%2d ∙∙∙", level)
		style = style.Inherit(lockedStyle)
	case m.progress.IsCompleted(level):
		label = fmt.Sprintf("%2d ", level) + starStyle.Render(hud.Stars(m.progress.StarsFor(level)))
	default:
		label = fmt.Sprintf("%2d new", level)
	}
	if i == m.cursor {
		style = style.Inherit(selectedStyle)
	}
	return style.Render(label)
}

// Chosen returns the picked level, 0 if none yet.
func (m LevelPickerModel) Chosen() int {
	return m.chosen
}

// GoingBack reports whether the player backed out.
func (m LevelPickerModel) GoingBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}
