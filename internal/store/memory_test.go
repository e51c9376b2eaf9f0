package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/game"
)

func newEntry(t *testing.T, id string) Entry {
	t.Helper()
	s, err := game.New("crane", 6, nil)
	require.NoError(t, err)
	return Entry{ID: id, Session: s}
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, newEntry(t, "g1")))
	e, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "crane", e.Session.Target())
	assert.False(t, e.Updated.IsZero())
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newEntry(t, "g1")))

	e, err := st.Update(ctx, "g1", func(e *Entry) error {
		e.Session = e.Session.Append('c')
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "c", e.Session.Buffer())

	boom := errors.New("boom")
	_, err = st.Update(ctx, "g1", func(e *Entry) error {
		e.Session = e.Session.Append('r')
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, _ := st.Get(ctx, "g1")
	assert.Equal(t, "c", got.Session.Buffer(), "failed update not stored")

	_, err = st.Update(ctx, "nope", func(*Entry) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSerializes(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s, err := game.New("abcdefghij", 1, nil)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, Entry{ID: "g", Session: s}))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = st.Update(ctx, "g", func(e *Entry) error {
				e.Session = e.Session.Append('x')
				return nil
			})
		}()
	}
	wg.Wait()
	got, _ := st.Get(ctx, "g")
	assert.Equal(t, "xxxxxxxxxx", got.Session.Buffer())
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	now := time.Now()

	old := newEntry(t, "old")
	old.Updated = now.Add(-3 * time.Hour)
	require.NoError(t, st.Save(ctx, old))
	fresh := newEntry(t, "fresh")
	fresh.Updated = now
	require.NoError(t, st.Save(ctx, fresh))

	assert.Equal(t, 1, st.Sweep(now, 2*time.Hour))
	_, err := st.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, "fresh")
	assert.NoError(t, err)
}
