// Package tui provides the Bubble Tea front end for the game.
// Each screen is its own model; the command layer chains them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// revealMsg is sent when the opponent's move may be shown.
type revealMsg time.Time

// revealCmd returns a Bubble Tea command that sends a reveal message after d.
func revealCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return revealMsg(t)
	})
}
