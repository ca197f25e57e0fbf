// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// runner that scheduled it; ticks from an older runner are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
