package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/internal/game"
)

// Theme holds the tile colors for each letter state.
type Theme struct {
	Correct   lipgloss.AdaptiveColor
	Misplaced lipgloss.AdaptiveColor
	Absent    lipgloss.AdaptiveColor
	Key       lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
}

// DefaultTheme mirrors the classic green/yellow/gray board.
var DefaultTheme = Theme{
	Correct:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#15803D"},
	Misplaced: lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#A16207"},
	Absent:    lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#111827"},
	Key:       lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"},
	Border:    lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"},
	Text:      lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"},
	Error:     lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
	Muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
}

// tile renders one grid cell.
func (t Theme) tile(l game.Letter) string {
	st := lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true).Foreground(t.Text)
	ch := strings.ToUpper(l.String())
	switch l.State {
	case game.Correct:
		st = st.Background(t.Correct).Foreground(lipgloss.Color("#FFFFFF"))
	case game.Misplaced:
		st = st.Background(t.Misplaced).Foreground(lipgloss.Color("#FFFFFF"))
	case game.Absent:
		st = st.Background(t.Absent).Foreground(lipgloss.Color("#FFFFFF"))
	default:
		if l.Char == 0 {
			ch = "·"
			st = st.Foreground(t.Border)
		}
	}
	return st.Render(ch)
}

// key renders one keyboard key colored by its latest known state.
func (t Theme) key(ch rune, s game.LetterState) string {
	st := lipgloss.NewStyle().Padding(0, 1).Background(t.Key).Foreground(t.Text)
	switch s {
	case game.Correct:
		st = st.Background(t.Correct).Foreground(lipgloss.Color("#FFFFFF"))
	case game.Misplaced:
		st = st.Background(t.Misplaced).Foreground(lipgloss.Color("#FFFFFF"))
	case game.Absent:
		st = st.Background(t.Absent).Foreground(t.Muted)
	}
	return st.Render(strings.ToUpper(string(ch)))
}
