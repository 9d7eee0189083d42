// Package tui provides the Bubble Tea front end for 2048: key mapping,
// the game session state machine, and rendering of the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SpawnMsg asks the model to place the tile that follows a move.
// Seq ties it to the move that scheduled it; a restart in between makes it stale.
type SpawnMsg struct {
	Seq int
}

// spawnCmd returns a command that delivers a SpawnMsg after delay.
func spawnCmd(seq int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return SpawnMsg{Seq: seq}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SpawnMsg{Seq: seq}
	})
}
