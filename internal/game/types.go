// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterState: per-letter verdict of a guess (correct/misplaced/absent).
//   - Letter, Guess: evaluated characters and submitted rows.
//   - Dictionary: the accepted-word set consumed by Submit.
//   - Scoring: how Misplaced is decided for repeated letters.

package game

import (
	"errors"
	"fmt"
)

// LetterState represents the evaluation result for a single letter.
// Possible values:
//   - None:      no verdict yet (typing buffer, blank cells).
//   - Correct:   letter matches the target at that position.
//   - Misplaced: letter exists in the target at a different position.
//   - Absent:    letter does not exist in the target at all.
type LetterState int

const (
	None LetterState = iota
	Correct
	Misplaced
	Absent
)

// String returns the lowercase name used in JSON views and logs.
func (s LetterState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	case Absent:
		return "absent"
	default:
		return "none"
	}
}

// MarshalText lets LetterState serialize as its name.
func (s LetterState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (s *LetterState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*s = None
	case "correct":
		*s = Correct
	case "misplaced":
		*s = Misplaced
	case "absent":
		*s = Absent
	default:
		return fmt.Errorf("game: unknown letter state %q", b)
	}
	return nil
}

// Letter is one character paired with its verdict. Char is zero for a blank cell.
type Letter struct {
	Char  rune
	State LetterState
}

// String returns the character, or "" for a blank cell.
func (l Letter) String() string {
	if l.Char == 0 {
		return ""
	}
	return string(l.Char)
}

// Guess is an ordered row of letters, length equal to the target's.
type Guess []Letter

// Word joins the guess characters back into a string.
func (g Guess) Word() string {
	rs := make([]rune, 0, len(g))
	for _, l := range g {
		if l.Char != 0 {
			rs = append(rs, l.Char)
		}
	}
	return string(rs)
}

// Dictionary is the membership-testable set of accepted guesses.
// Implementations receive lower-cased words.
type Dictionary interface {
	Contains(word string) bool
}

// DictionaryFunc adapts a plain function to Dictionary.
type DictionaryFunc func(word string) bool

// Contains calls f(word).
func (f DictionaryFunc) Contains(word string) bool { return f(word) }

// Scoring selects the Misplaced rule.
type Scoring int

const (
	// ScoringSimple marks a letter Misplaced whenever it occurs anywhere in
	// the target. Repeated letters are not budgeted against target counts.
	ScoringSimple Scoring = iota
	// ScoringStandard budgets Misplaced verdicts against the number of
	// unmatched occurrences of each letter in the target.
	ScoringStandard
)

// ParseScoring maps a config value to a Scoring mode.
func ParseScoring(s string) (Scoring, error) {
	switch s {
	case "", "simple":
		return ScoringSimple, nil
	case "standard":
		return ScoringStandard, nil
	}
	return ScoringSimple, errors.New("scoring must be simple or standard")
}

func (m Scoring) String() string {
	if m == ScoringStandard {
		return "standard"
	}
	return "simple"
}

// MaxTriesLimit caps the attempts per session. Rows allocates one row per try.
const MaxTriesLimit = 32

var (
	ErrEmptyTarget     = errors.New("game: target word is empty")
	ErrInvalidTarget   = errors.New("game: target word must be letters only")
	ErrInvalidMaxTries = fmt.Errorf("game: max tries must be between 1 and %d", MaxTriesLimit)
)

// validTries reports whether n is an allowed attempt count.
func validTries(n int) bool { return n >= 1 && n <= MaxTriesLimit }
