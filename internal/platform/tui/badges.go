package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-champions/internal/badges"
	"github.com/vovakirdan/math-champions/internal/progress"
)

// BadgesModel lists the badge catalog with earned badges highlighted.
type BadgesModel struct {
	catalog   []badges.Badge
	progress  progress.PlayerProgress
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	back      bool
	quitting  bool
}

// NewBadgesModel creates the badge screen for profile.
func NewBadgesModel(profile *Profile, width, height int) BadgesModel {
	return BadgesModel{
		catalog:   profile.Ledger.Catalog().All(),
		progress:  profile.Ledger.Load(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m BadgesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BadgesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack, MenuActionSelect:
			m.back = true
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.catalog)-1)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the catalog.
func (m BadgesModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("BADGES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(fmt.Sprintf("%d of %d earned", len(m.progress.Badges), len(m.catalog))), m.width))
	b.WriteString("\n\n")

	lines := make([]string, 0, len(m.catalog))
	for i, badge := range m.catalog {
		owned := m.progress.HasBadge(badge.ID)
		var line string
		if owned {
			line = fmt.Sprintf("%s  %-14s %s", starStyle.Render(badge.Icon), badge.Name, badge.Description)
		} else {
			line = lockedStyle.Render(fmt.Sprintf("%s  %-14s %s", "·", badge.Name, badge.Description))
		}
		if i == m.cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelStyle.Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Up/Down: Browse  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// GoingBack reports whether the player left the screen.
func (m BadgesModel) GoingBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m BadgesModel) IsQuitting() bool {
	return m.quitting
}
