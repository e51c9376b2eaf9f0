package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/words"
)

type seqPicker struct {
	words []string
	i     int
}

func (p *seqPicker) Pick(*words.List) string {
	w := p.words[p.i%len(p.words)]
	p.i++
	return w
}

func newTestModel(t *testing.T, picks ...string) *Model {
	t.Helper()
	l, err := words.NewList(5, []string{"crane", "slate", "brine"}, []string{"trace", "react"})
	require.NoError(t, err)
	m, err := NewModel(Options{Words: l, Picker: &seqPicker{words: picks}})
	require.NoError(t, err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeKeys(m *Model, w string) {
	for _, r := range w {
		send(m, runes(string(r)))
	}
}

func TestNewModelDefaultsMaxTries(t *testing.T) {
	m := newTestModel(t, "crane")
	assert.Equal(t, 6, m.Session().MaxTries())
	assert.Equal(t, "crane", m.Session().Target())
}

func TestLettersAndBackspace(t *testing.T) {
	m := newTestModel(t, "crane")
	typeKeys(m, "Sl4te")
	assert.Equal(t, "slte", m.Session().Buffer())

	send(m, runes("ab"))
	assert.Equal(t, "slte", m.Session().Buffer(), "pasted runs are ignored")

	send(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "sl", m.Session().Buffer())
}

func TestInvalidWordShowsAndClearsError(t *testing.T) {
	m := newTestModel(t, "crane")
	typeKeys(m, "zzzzz")
	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "zzzzz is not in word list.", m.errText)
	assert.Contains(t, m.View(), "zzzzz is not in word list.")
	assert.Equal(t, "zzzzz", m.Session().Buffer())

	send(m, clearErrorMsg{seq: m.errSeq})
	assert.Empty(t, m.errText)
}

func TestStaleClearIsIgnored(t *testing.T) {
	m := newTestModel(t, "crane")
	typeKeys(m, "zzzzz")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.errSeq

	send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	typeKeys(m, "q")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "zzzzq is not in word list.", m.errText)

	send(m, clearErrorMsg{seq: first})
	assert.Equal(t, "zzzzq is not in word list.", m.errText, "older timer must not clear a newer error")

	send(m, clearErrorMsg{seq: m.errSeq})
	assert.Empty(t, m.errText)
}

func TestWinSetsStatus(t *testing.T) {
	m := newTestModel(t, "crane")
	typeKeys(m, "slate")
	cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.status)

	typeKeys(m, "crane")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Session().Found())
	assert.Equal(t, "Solved in 2/6. ctrl+n for a new word.", m.status)

	typeKeys(m, "a")
	assert.Empty(t, m.Session().Buffer())
}

func TestNewGameResets(t *testing.T) {
	m := newTestModel(t, "crane", "brine")
	typeKeys(m, "zzzzz")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "brine", m.Session().Target())
	assert.Empty(t, m.Session().Buffer())
	assert.Empty(t, m.errText)
	assert.Equal(t, 0, m.Session().Tries())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t, "crane")
		cmd := send(m, tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestViewShowsBoard(t *testing.T) {
	m := newTestModel(t, "crane")
	typeKeys(m, "react")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	v := m.View()
	assert.Contains(t, v, "W O R D L E")
	assert.Contains(t, v, "R")
	assert.Equal(t, game.Correct, m.Session().Keyboard().State('a'))
}
