// Package tui provides the Bubble Tea integration for the word search game.
// It handles the terminal UI loop, mouse and key mapping, the pack menu and
// SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SettleMsg is sent when a resize debounce delay has expired.
type SettleMsg struct {
	Gen uint64 // Debouncer generation the delay was scheduled for
}

// settleCmd returns a Bubble Tea command that reports gen after delay.
func settleCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SettleMsg{Gen: gen}
	})
}
