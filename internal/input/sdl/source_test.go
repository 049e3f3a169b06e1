//go:build sdl2

package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
)

func openHeadless(t *testing.T) *Source {
	t.Helper()
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	t.Setenv("SDL_AUDIODRIVER", "dummy")
	s, err := Open(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// nextDrop skips whatever SDL queued during init and returns the first drop.
func nextDrop(t *testing.T, s *Source) event.Record {
	t.Helper()
	s.Pump()
	for rec, ok := s.Next(); ok; rec, ok = s.Next() {
		if rec.Raw.Type() == event.TypeDropFile {
			return rec
		}
		rec.Release()
	}
	t.Fatal("drop record not delivered")
	return event.Record{}
}

func TestPushCopiesOwnedText(t *testing.T) {
	s := openHeadless(t)

	require.NoError(t, s.Push(event.Encode(&event.DropFileEvent{Drop: event.Drop{File: "/tmp/a.txt"}})))
	rec := nextDrop(t, s)
	require.NotNil(t, rec.Owned)
	assert.Equal(t, "/tmp/a.txt", rec.Owned.Text())
	rec.Release()
	assert.True(t, rec.Owned.Released())
}

func TestPushWithoutOwnedSendsNull(t *testing.T) {
	s := openHeadless(t)

	var raw event.Raw
	raw.SetType(event.TypeDropFile)
	require.NoError(t, s.Push(event.Record{Raw: raw}))

	rec := nextDrop(t, s)
	assert.Nil(t, rec.Owned)
	assert.Equal(t, "", event.NewDecoder(s.Level().Set).Decode(rec).(*event.DropFileEvent).File)
}
