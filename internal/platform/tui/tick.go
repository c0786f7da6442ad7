// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, key bindings, animation ticks and
// the scores screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gainDisplay is how long the "+gain" indicator stays next to the score.
const gainDisplay = 1200 * time.Millisecond

// gainExpiredMsg hides the gain indicator set by move seq.
type gainExpiredMsg struct{ seq int }

// gainExpiryCmd schedules the expiry of the gain set by move seq.
func gainExpiryCmd(seq int) tea.Cmd {
	return tea.Tick(gainDisplay, func(time.Time) tea.Msg {
		return gainExpiredMsg{seq: seq}
	})
}

// TickMsg is sent to advance the running animation by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
