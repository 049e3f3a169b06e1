package recording

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
)

func session() []event.Event {
	return []event.Event{
		&event.WindowShownEvent{WindowHeader: event.WindowHeader{Common: event.Common{Timestamp: 10}, WindowID: 1}},
		&event.KeyDownEvent{Key: event.Key{Common: event.Common{Timestamp: 20}, WindowID: 1, Keysym: event.Keysym{Sym: 'q'}}},
		&event.DropFileEvent{Drop: event.Drop{Common: event.Common{Timestamp: 30}, File: "/home/me/notes.txt", WindowID: 1}},
		&event.QuitEvent{Common: event.Common{Timestamp: 40}},
	}
}

func TestSaveLoadReplays(t *testing.T) {
	lvl := feature.Latest()
	r := FromEvents(lvl, session())
	assert.NotEqual(t, uuid.Nil, r.Session)
	require.Len(t, r.Events, 4)
	assert.Equal(t, "drop_file", r.Events[2].Type)
	assert.Equal(t, "/home/me/notes.txt", r.Events[2].Text)

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, r.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.Session, loaded.Session)
	got, err := loaded.Level()
	require.NoError(t, err)
	assert.Equal(t, lvl.String(), got.String())

	dec := event.NewDecoder(got.Set)
	var decoded []event.Event
	for _, rec := range loaded.Records() {
		decoded = append(decoded, dec.Decode(rec))
	}
	if diff := deep.Equal(decoded, session()); diff != nil {
		t.Error(diff)
	}
}

func TestEncodeWritesHexRaw(t *testing.T) {
	r := FromEvents(feature.Baseline(), []event.Event{&event.QuitEvent{}})
	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	out := buf.String()
	assert.Contains(t, out, "type: quit")
	assert.Contains(t, out, "00010000")
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := Decode(strings.NewReader("events:\n  - raw: zz\n"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("feature_level: \"1.2.15\"\n"))
	assert.Error(t, err)
}

func TestLevelDefaultsToLatest(t *testing.T) {
	r, err := Decode(strings.NewReader("events: []\n"))
	require.NoError(t, err)
	lvl, err := r.Level()
	require.NoError(t, err)
	assert.Equal(t, feature.Latest(), lvl)
}

func TestPlayerFeedsPerPump(t *testing.T) {
	r := FromEvents(feature.Latest(), session())
	player := NewPlayer(r, 3)
	q := input.NewQueue(8, player)
	p := input.NewPoller(q, event.NewDecoder(feature.Latest().Set))

	p.Pump()
	assert.Len(t, p.Drain(), 3)
	assert.False(t, player.Done())
	assert.Equal(t, 1, player.Remaining())

	p.Pump()
	last := p.Drain()
	require.Len(t, last, 1)
	assert.IsType(t, &event.QuitEvent{}, last[0])
	assert.True(t, player.Done())
}

func TestPlayerRetriesWhenQueueFull(t *testing.T) {
	r := FromEvents(feature.Latest(), session())
	player := NewPlayer(r, 0)
	q := input.NewQueue(2, player)

	q.Pump()
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 2, player.Remaining())

	q.Clear()
	q.Pump()
	assert.True(t, player.Done())
}

func TestTapRecordsWhatIsPolled(t *testing.T) {
	q := input.NewQueue(8, nil)
	r := New(feature.Latest())
	tap := NewTap(q, r)
	p := input.NewPoller(tap, event.NewDecoder(feature.Latest().Set))

	for _, e := range session() {
		require.NoError(t, p.Push(e))
	}
	assert.Len(t, p.Drain(), 4)
	require.Len(t, r.Events, 4)
	assert.Equal(t, "/home/me/notes.txt", r.Events[2].Text, "payload is copied before the decoder releases it")
}
