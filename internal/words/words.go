// internal/words/words.go
//
// Word source for the game core.
//
// Responsibilities:
//   - Load answer and allowed guess lists from a SQLite database, from
//     files, or from the embedded defaults in package assets.
//   - Keep only words of the configured length made of letters a–z.
//   - Serve as the game.Dictionary (answers ∪ allowed) and supply targets
//     through a Picker.
//
// Source selection (Load):
//  1. Options.DB set: read both lists from SQLite.
//  2. AnswersFile and AllowedFile set: answers from the first, guesses
//     from the second.
//  3. Only AllowedFile set: that file serves as both lists.
//  4. Otherwise: embedded defaults.

package words

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/robalobadob/wordle/assets"
)

// DefaultLength is the classic word length.
const DefaultLength = 5

// ErrNoAnswers is returned when no answer survives filtering.
var ErrNoAnswers = errors.New("words: answers list is empty")

// List is an immutable pair of answers and accepted guesses.
type List struct {
	length  int
	answers []string
	allowed map[string]struct{} // answers ∪ guesses
}

// NewList filters both inputs to length-letter a–z words and builds the
// lookup set. Every answer is also allowed.
func NewList(length int, answers, allowed []string) (*List, error) {
	if length < 1 {
		return nil, fmt.Errorf("words: invalid length %d", length)
	}
	ans := normalize(length, answers)
	if len(ans) == 0 {
		return nil, ErrNoAnswers
	}
	set := lo.SliceToMap(ans, func(w string) (string, struct{}) { return w, struct{}{} })
	for _, w := range normalize(length, allowed) {
		set[w] = struct{}{}
	}
	return &List{length: length, answers: ans, allowed: set}, nil
}

func normalize(length int, in []string) []string {
	out := lo.Map(in, func(w string, _ int) string { return strings.ToLower(strings.TrimSpace(w)) })
	out = lo.Filter(out, func(w string, _ int) bool { return len(w) == length && isAlpha(w) })
	return lo.Uniq(out)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is an accepted guess. It implements game.Dictionary.
func (l *List) Contains(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is a possible target.
func (l *List) IsAnswer(w string) bool {
	return lo.Contains(l.answers, strings.ToLower(w))
}

// Answers returns a copy of the answer list.
func (l *List) Answers() []string { return append([]string(nil), l.answers...) }

// Length returns the word length every entry shares.
func (l *List) Length() int { return l.length }

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

// Picker chooses a target word from a List.
type Picker interface {
	Pick(l *List) string
}

// RandomPicker picks uniformly with a CSPRNG.
type RandomPicker struct{}

// Pick returns a random answer.
func (RandomPicker) Pick(l *List) string {
	return l.answers[frand.Intn(len(l.answers))]
}

// Options selects and shapes the word source.
type Options struct {
	Length      int
	AnswersFile string
	AllowedFile string
	DB          string
}

// Load builds a List from the first configured source.
func Load(ctx context.Context, o Options) (*List, error) {
	if o.Length == 0 {
		o.Length = DefaultLength
	}

	var ansList, allowList []string
	var err error
	src := "embedded"

	switch {
	case o.DB != "":
		src = "sqlite"
		ansList, allowList, err = readSQLite(ctx, o.DB)

	case o.AnswersFile != "" && o.AllowedFile != "":
		src = "files"
		if ansList, err = ReadFile(o.AnswersFile); err == nil {
			allowList, err = ReadFile(o.AllowedFile)
		}

	case o.AllowedFile != "":
		src = "file"
		allowList, err = ReadFile(o.AllowedFile)
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err == nil {
			allowList, err = assets.AllowedList()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load %s words: %w", src, err)
	}

	l, err := NewList(o.Length, ansList, allowList)
	if err != nil {
		return nil, err
	}
	a, g := l.Stats()
	log.Debug().Str("source", src).Int("length", o.Length).Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return l, nil
}

// ReadFile loads one word per line from a file, skipping blanks and # comments.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}
