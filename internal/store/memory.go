// internal/store/memory.go
//
// In-memory store of live game sessions for the HTTP front end.
//
// Characteristics:
//   - Entries are keyed by game ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs a read-modify-write under the write lock, so two requests
//     for the same game never interleave.
//   - State is lost when the process restarts; idle entries are swept.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("store: game not found")

// Entry is one stored session.
type Entry struct {
	ID      string
	Session game.Session
	Daily   bool // started from the daily word; resets keep using it
	Updated time.Time
}

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save inserts or replaces an entry.
	Save(ctx context.Context, e Entry) error

	// Get retrieves an entry by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Entry, error)

	// Update loads the entry, applies fn, and stores the result atomically.
	// If fn returns an error nothing is stored.
	Update(ctx context.Context, id string, fn func(*Entry) error) (Entry, error)

	// Sweep drops entries not updated since now-idle and reports how many.
	Sweep(now time.Time, idle time.Duration) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex
	games map[string]Entry
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]Entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, e Entry) error {
	if e.Updated.IsZero() {
		e.Updated = m.now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[e.ID] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok {
		return e, nil
	}
	return Entry{}, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*Entry) error) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	if err := fn(&e); err != nil {
		return Entry{}, err
	}
	e.ID = id
	e.Updated = m.now()
	m.games[id] = e
	return e, nil
}

func (m *memory) Sweep(now time.Time, idle time.Duration) int {
	cutoff := now.Add(-idle)
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for id, e := range m.games {
		if e.Updated.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}
