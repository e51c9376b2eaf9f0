package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg asks the model to drop the error line. It only applies
// when seq still matches the latest error, so a newer error cancels any
// pending clear.
type clearErrorMsg struct {
	seq int
}

// clearErrorAfter schedules a clearErrorMsg for seq.
func clearErrorAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}
