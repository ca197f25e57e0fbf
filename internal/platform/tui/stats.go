package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-champions/internal/gamestats"
	"github.com/vovakirdan/math-champions/internal/registry"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// Stats screen layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show game list sidebar
	sidebarWidth       = 20
	maxScores          = 100
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel shows the player's records and the shared score history.
type StatsModel struct {
	games       []registry.Info
	gameCursor  int
	profile     *Profile
	scores      []storage.ScoreEntry
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsModel creates the stats screen for profile.
func NewStatsModel(profile *Profile, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		games:       registry.List(),
		profile:     profile,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 50 {
		columns[1].Width = min(tableWidth-32, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-14, 3)), // header, records panel and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *StatsModel) loadScores(gameID string) {
	m.scores = m.profile.TopScores(gameID, maxScores)
	m.updateTableRows()
}

func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Profile
		if player == m.profile.Name {
			player += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadScores(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "STATS"
	if len(m.games) > 0 {
		title = fmt.Sprintf("STATS - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.progressSummary()), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m StatsModel) progressSummary() string {
	p := m.profile.Ledger.Load()
	return fmt.Sprintf("%s · Level %d · %d XP · ★ %d · best streak %d · %d%% accuracy",
		m.profile.Name, p.CurrentLevel, p.XPPoints, p.TotalStars, p.BestStreak, p.AccuracyPercentage)
}

// recordLines describes the profile's own record for the selected game.
func (m StatsModel) recordLines() []string {
	if len(m.games) == 0 {
		return nil
	}
	switch m.games[m.gameCursor].ID {
	case "math":
		p := m.profile.Ledger.Load()
		return []string{
			fmt.Sprintf("Problems solved: %d of %d", p.TotalProblemsSolved, p.TotalAttempts),
			fmt.Sprintf("Levels completed: %d (%d perfect)", len(p.CompletedLevels), p.PerfectClears),
			fmt.Sprintf("Fastest answer: %s", fastest(p.FastestAnswerMs)),
			fmt.Sprintf("Days in a row: %d", p.DaysPlayedStreak),
		}
	case "memory":
		r := m.profile.Stats.Memory()
		return []string{
			fmt.Sprintf("Games played: %d · wins: %d", r.GamesPlayed, r.TotalWins),
			fmt.Sprintf("Best time: %s · best moves: %s", orDash(r.BestTime, "s"), orDash(r.BestMoves, "")),
			fmt.Sprintf("Last difficulty: %s", r.CurrentDifficulty),
		}
	case "stackdrop":
		r := m.profile.Stats.StackDrop()
		return []string{
			fmt.Sprintf("High score: %d · games: %d", r.HighScore, r.TotalGames),
			fmt.Sprintf("Blocks stacked: %d · perfect drops: %d", r.TotalBlocks, r.PerfectDrops),
		}
	case "tapperfect":
		r := m.profile.Stats.TapPerfect()
		return []string{
			fmt.Sprintf("High score: %d · games: %d", r.HighScore, r.TotalGames),
			fmt.Sprintf("Taps: %d · bullseyes: %d", r.TotalTaps, r.PerfectTaps),
		}
	}
	return nil
}

func fastest(ms int) string {
	if ms <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

func orDash(v int, unit string) string {
	if v <= 0 || v >= gamestats.NoBest {
		return "-"
	}
	return fmt.Sprintf("%d%s", v, unit)
}

func (m StatsModel) renderWideLayout() string {
	sidebarStyle := panelStyle.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + g.Title))
		sidebar.WriteString("\n")
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(strings.Join(m.recordLines(), "\n")),
		panelStyle.Render(m.renderTableContent()),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(sidebar.String()), "  ", right)
}

func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := selectedStyle.Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.games) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	for _, line := range m.recordLines() {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

func (m StatsModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
