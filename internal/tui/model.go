// Package tui is the terminal front end. It turns key presses into game
// operations and renders the grid, the keyboard and the error line.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

// ErrorTTL is how long the "not in word list" line stays up.
const ErrorTTL = 2 * time.Second

var keyRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Options configures a Model.
type Options struct {
	Words    *words.List
	Picker   words.Picker
	MaxTries int
	Scoring  game.Scoring
	Theme    *Theme
}

// Model is the bubbletea model for one terminal game.
type Model struct {
	words    *words.List
	picker   words.Picker
	maxTries int
	theme    Theme

	session game.Session

	errText string
	errSeq  int
	status  string

	width    int
	quitting bool
}

// NewModel starts a session on a freshly picked word.
func NewModel(o Options) (*Model, error) {
	if o.Picker == nil {
		o.Picker = words.RandomPicker{}
	}
	if o.MaxTries == 0 {
		o.MaxTries = o.Words.Length() + 1
	}
	s, err := game.New(o.Picker.Pick(o.Words), o.MaxTries, o.Words, game.WithScoring(o.Scoring))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	m := &Model{
		words:    o.Words,
		picker:   o.Picker,
		maxTries: o.MaxTries,
		theme:    DefaultTheme,
		session:  s,
	}
	if o.Theme != nil {
		m.theme = *o.Theme
	}
	return m, nil
}

// Session returns the current game state.
func (m *Model) Session() game.Session { return m.session }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses and timer ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clearErrorMsg:
		if msg.seq == m.errSeq {
			m.errText = ""
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyBackspace:
		m.session, _ = game.Apply(m.session, game.RemoveLast{})
		return m, nil
	case tea.KeyEnter:
		var sigs []game.Signal
		m.session, sigs = game.Apply(m.session, game.Submit{})
		return m, m.handleSignals(sigs)
	case tea.KeyCtrlN:
		m.newGame()
		return m, nil
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return m, nil
		}
		if ch, ok := game.LetterKey(string(msg.Runes[0])); ok {
			m.session, _ = game.Apply(m.session, game.AppendChar{Ch: ch})
		}
	}
	return m, nil
}

func (m *Model) handleSignals(sigs []game.Signal) tea.Cmd {
	var cmd tea.Cmd
	for _, sg := range sigs {
		switch sg := sg.(type) {
		case game.InvalidWord:
			m.errSeq++
			m.errText = sg.Word + " is not in word list."
			cmd = clearErrorAfter(ErrorTTL, m.errSeq)
		case game.GameEnd:
			logGameEnd(sg)
			if sg.Found {
				m.status = fmt.Sprintf("Solved in %d/%d. ctrl+n for a new word.", len(sg.Guesses), sg.MaxTries)
			} else {
				m.status = fmt.Sprintf("The word was %s. ctrl+n for a new word.", strings.ToUpper(sg.Word))
			}
		}
	}
	return cmd
}

func (m *Model) newGame() {
	m.session, _ = game.Apply(m.session, game.Reset{
		Target:   m.picker.Pick(m.words),
		MaxTries: m.maxTries,
	})
	m.errSeq++
	m.errText = ""
	m.status = ""
}

func logGameEnd(e game.GameEnd) {
	verdict := "NAY"
	if e.Found {
		verdict = "YAY"
	}
	log.Info().Msgf("%s: %s => %d/%d tries", verdict, e.Word, len(e.Guesses), e.MaxTries)
}

// View renders the board.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text).Render("W O R D L E")

	var grid []string
	for _, row := range m.session.Rows() {
		cells := make([]string, len(row))
		for i, l := range row {
			cells[i] = m.theme.tile(l)
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	kb := m.session.Keyboard()
	var keys []string
	for _, r := range keyRows {
		var ks []string
		for _, ch := range r {
			ks = append(ks, m.theme.key(ch, kb.State(ch)))
		}
		keys = append(keys, lipgloss.JoinHorizontal(lipgloss.Top, ks...))
	}

	errLine := lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.errText)
	status := lipgloss.NewStyle().Foreground(m.theme.Text).Render(m.status)
	help := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("enter submit • backspace delete • ctrl+n new word • esc quit")

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Center, grid...),
		"",
		errLine,
		status,
		"",
		lipgloss.JoinVertical(lipgloss.Center, keys...),
		"",
		help,
	)
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body + "\n"
}

// Run plays one terminal session until the player quits.
func Run(o Options) error {
	m, err := NewModel(o)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
