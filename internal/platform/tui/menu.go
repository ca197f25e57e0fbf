package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-champions/internal/registry"
)

// MenuItemKind says what a main menu entry opens.
type MenuItemKind int

const (
	MenuItemGame MenuItemKind = iota
	MenuItemStats
	MenuItemBadges
	MenuItemQuit
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Kind  MenuItemKind
	Game  registry.Info
	Title string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	profile   *Profile
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a main menu for profile.
func NewMenuModel(profile *Profile, width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)
	for _, g := range games {
		items = append(items, MenuItem{Kind: MenuItemGame, Game: g, Title: g.Title})
	}
	items = append(items,
		MenuItem{Kind: MenuItemStats, Title: "Stats & high scores"},
		MenuItem{Kind: MenuItemBadges, Title: "Badges"},
		MenuItem{Kind: MenuItemQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		profile:   profile,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == MenuItemQuit {
			m.quitting = true
			break
		}
		m.selected = &selected
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M A T H   C H A M P I O N S"), m.width))
	b.WriteString("\n\n")

	if m.profile != nil {
		p := m.profile.Ledger.Load()
		summary := fmt.Sprintf("%s · Level %d · %d XP · ★ %d · %d/%d badges",
			m.profile.Name, p.CurrentLevel, p.XPPoints, p.TotalStars,
			len(p.Badges), len(m.profile.Ledger.Catalog().All()))
		b.WriteString(centerText(subtleStyle.Render(summary), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		if item.Kind == MenuItemStats {
			b.WriteString("\n")
		}
		line := "  " + item.Title + "  "
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.Title + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if i == m.cursor && item.Kind == MenuItemGame && item.Game.Description != "" {
			b.WriteString(centerText(subtleStyle.Render(item.Game.Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
