// Package assets embeds the default word lists so the game runs without
// any configured word source.
package assets

import (
	"embed"
	"io"
	"strings"

	"github.com/samber/lo"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadLines parses a word list: one word per line, lower-cased.
// Blank lines and lines starting with '#' are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(strings.Split(string(b), "\n"), func(line string, _ int) (string, bool) {
		w := strings.ToLower(strings.TrimSpace(line))
		return w, w != "" && w[0] != '#'
	}), nil
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// AnswersList returns the embedded target words (all lengths).
func AnswersList() ([]string, error) {
	return readEmbedded("answers.txt")
}

// AllowedList returns the embedded extra guesses (all lengths).
func AllowedList() ([]string, error) {
	return readEmbedded("allowed.txt")
}
