// Package daily picks one target word per calendar day, the same for every
// player. Nothing is recorded; the date alone decides the word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/internal/words"
)

const dateLayout = "2006-01-02"

// DateKey names the UTC day t falls on.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Picker is a words.Picker that returns the day's answer. Salt keys the
// day-to-word mapping so it cannot be guessed from the list order.
type Picker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

var _ words.Picker = Picker{}

// Pick returns the answer for the current UTC date.
func (p Picker) Pick(l *words.List) string {
	answers := l.Answers()
	return answers[p.Index(p.now(), len(answers))]
}

// Index maps the UTC day of t onto [0, n). It returns 0 when n < 1.
func (p Picker) Index(t time.Time, n int) int {
	if n < 1 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(p.Salt))
	mac.Write([]byte(DateKey(t)))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

func (p Picker) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
