// internal/game/session.go
//
// Turn state machine for a single Wordle session.
// Responsibilities:
//   - Hold the canonical fields: target, max tries, completed guesses, buffer.
//   - Apply operations (append, remove, submit, reset) as a pure transition.
//   - Derive ended/found/can-submit from the canonical fields on demand.
//
// Notes:
//   - Session is a value. Apply never mutates its input; callers keep the
//     returned Session.
//   - Every mutator is a no-op once the session has ended. Reset is the only
//     way out of an ended session.

package game

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Session is the live state of one game.
type Session struct {
	target   string
	maxTries int
	guesses  []Guess
	buffer   string
	dict     Dictionary
	scoring  Scoring
}

// Option configures a Session at construction.
type Option func(*Session)

// WithScoring selects the Misplaced rule. The default is ScoringSimple.
func WithScoring(m Scoring) Option {
	return func(s *Session) { s.scoring = m }
}

// New starts a session for target with maxTries attempts.
// A nil dict accepts every well-formed guess.
func New(target string, maxTries int, dict Dictionary, opts ...Option) (Session, error) {
	target, err := normalizeTarget(target)
	if err != nil {
		return Session{}, err
	}
	if !validTries(maxTries) {
		return Session{}, ErrInvalidMaxTries
	}
	if dict == nil {
		dict = DictionaryFunc(func(string) bool { return true })
	}
	s := Session{target: target, maxTries: maxTries, dict: dict}
	for _, o := range opts {
		o(&s)
	}
	return s, nil
}

func normalizeTarget(t string) (string, error) {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return "", ErrEmptyTarget
	}
	for _, r := range t {
		if !unicode.IsLetter(r) {
			return "", ErrInvalidTarget
		}
	}
	return t, nil
}

// Target returns the lower-cased hidden word.
func (s Session) Target() string { return s.target }

// MaxTries returns the number of allowed guesses.
func (s Session) MaxTries() int { return s.maxTries }

// WordLength returns the target length in letters.
func (s Session) WordLength() int { return utf8.RuneCountInString(s.target) }

// Scoring returns the session's Misplaced rule.
func (s Session) Scoring() Scoring { return s.scoring }

// Buffer returns the in-progress guess.
func (s Session) Buffer() string { return s.buffer }

// Tries returns the number of completed guesses.
func (s Session) Tries() int { return len(s.guesses) }

// Guesses returns a copy of the completed guesses in submission order.
func (s Session) Guesses() []Guess { return cloneGuesses(s.guesses) }

// Found reports whether the last completed guess was the target.
func (s Session) Found() bool {
	n := len(s.guesses)
	return n > 0 && s.guesses[n-1].Word() == s.target
}

// Ended reports whether no further guesses are accepted.
func (s Session) Ended() bool {
	return s.Found() || len(s.guesses) >= s.maxTries
}

// CanSubmit reports whether Submit would be considered at all
// (the dictionary check still applies).
func (s Session) CanSubmit() bool {
	return !s.Ended() && utf8.RuneCountInString(s.buffer) == s.WordLength()
}

// Append is Apply(s, AppendChar{ch}).
func (s Session) Append(ch rune) Session {
	next, _ := Apply(s, AppendChar{Ch: ch})
	return next
}

// Backspace is Apply(s, RemoveLast{}).
func (s Session) Backspace() Session {
	next, _ := Apply(s, RemoveLast{})
	return next
}

// Submit is Apply(s, Submit{}).
func (s Session) Submit() (Session, []Signal) { return Apply(s, Submit{}) }

// Reset is Apply(s, Reset{target, maxTries}).
func (s Session) Reset(target string, maxTries int) Session {
	next, _ := Apply(s, Reset{Target: target, MaxTries: maxTries})
	return next
}

func (s Session) appendChar(ch rune) Session {
	if s.Ended() {
		return s
	}
	buf := []rune(s.buffer)
	n := s.WordLength()
	if len(buf) >= n {
		s.buffer = string(buf[:n])
		return s
	}
	s.buffer = string(append(buf, unicode.ToLower(ch)))
	return s
}

func (s Session) removeLast() Session {
	if s.Ended() || s.buffer == "" {
		return s
	}
	buf := []rune(s.buffer)
	s.buffer = string(buf[:len(buf)-1])
	return s
}

func (s Session) submit() (Session, []Signal) {
	if !s.CanSubmit() {
		return s, nil
	}
	word := strings.ToLower(s.buffer)
	if !s.dict.Contains(word) {
		return s, []Signal{InvalidWord{Word: s.buffer}}
	}

	g := Evaluate(s.target, word, s.scoring)
	s.buffer = ""
	// Clip forces append to copy so the caller's Session keeps its history.
	s.guesses = append(slices.Clip(s.guesses), g)

	if s.Ended() {
		return s, []Signal{GameEnd{
			Word:     s.target,
			Found:    s.Found(),
			Guesses:  cloneGuesses(s.guesses),
			MaxTries: s.maxTries,
		}}
	}
	return s, nil
}

func (s Session) reset(target string, maxTries int) Session {
	t, err := normalizeTarget(target)
	if err != nil || !validTries(maxTries) {
		return s
	}
	return Session{target: t, maxTries: maxTries, dict: s.dict, scoring: s.scoring}
}

func cloneGuesses(gs []Guess) []Guess {
	out := make([]Guess, len(gs))
	for i, g := range gs {
		out[i] = slices.Clone(g)
	}
	return out
}
