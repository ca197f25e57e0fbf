package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
)

// Run starts the arcade at the main menu.
func Run(profile *Profile, cfg core.RuntimeConfig) error {
	return runProgram(NewSessionModel(profile, cfg))
}

// RunGame plays a single game and exits when the player leaves it.
func RunGame(profile *Profile, cfg core.RuntimeConfig, gameID string, level int, difficulty config.DifficultyPreset) error {
	return runProgram(NewSingleGameSession(profile, cfg, gameID, level, difficulty))
}

func runProgram(model SessionModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
