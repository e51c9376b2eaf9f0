package game

import (
	"unicode"

	"github.com/samber/lo"
)

// Rows returns the render grid. Each row has WordLength cells.
//
//   - In progress: completed guesses, the live buffer padded with blanks,
//     then blank rows up to MaxTries.
//   - Won: completed guesses, then blank rows up to MaxTries.
//   - Lost: exactly the completed guesses.
func (s Session) Rows() []Guess {
	n := s.WordLength()
	rows := make([]Guess, 0, s.maxTries)
	rows = append(rows, cloneGuesses(s.guesses)...)

	switch {
	case s.Found():
	case s.Ended():
		return rows
	default:
		cur := blankRow(n)
		for i, r := range []rune(s.buffer) {
			cur[i].Char = r
		}
		rows = append(rows, cur)
	}
	for len(rows) < s.maxTries {
		rows = append(rows, blankRow(n))
	}
	return rows
}

func blankRow(n int) Guess { return make(Guess, n) }

// Keyboard holds one entry per letter seen in a completed guess, most
// recently observed first.
type Keyboard []Letter

// Keyboard derives the per-letter state for a keyboard affordance.
// When a letter appears several times, the last occurrence wins.
func (s Session) Keyboard() Keyboard {
	flat := lo.FlatMap(s.guesses, func(g Guess, _ int) []Letter { return g })
	rev := make([]Letter, len(flat))
	for i, l := range flat {
		rev[len(flat)-1-i] = l
	}
	return lo.UniqBy(rev, func(l Letter) rune { return l.Char })
}

// State returns the latest verdict for ch, or None if it was never guessed.
func (k Keyboard) State(ch rune) LetterState {
	ch = unicode.ToLower(ch)
	for _, l := range k {
		if l.Char == ch {
			return l.State
		}
	}
	return None
}

// Map returns the keyboard as letter -> state.
func (k Keyboard) Map() map[string]LetterState {
	return lo.Associate(k, func(l Letter) (string, LetterState) { return string(l.Char), l.State })
}
