package recording

import (
	"errors"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
)

// Player is an input.Device that replays a recording, a fixed number of
// records per pump. A record the queue rejects is retried on the next pump.
type Player struct {
	rec     *Recording
	perPump int
	next    int
}

var _ input.Device = (*Player)(nil)

// NewPlayer replays r. perPump <= 0 feeds everything on the first pump.
func NewPlayer(r *Recording, perPump int) *Player {
	return &Player{rec: r, perPump: perPump}
}

func (p *Player) Feed(dst input.Pusher) {
	for n := 0; p.next < len(p.rec.Events) && (p.perPump <= 0 || n < p.perPump); n++ {
		if err := dst.Push(p.rec.Record(p.next)); errors.Is(err, input.ErrQueueFull) {
			return
		}
		p.next++
	}
}

// Done reports whether every record has been fed.
func (p *Player) Done() bool { return p.next >= len(p.rec.Events) }

// Remaining is the number of records not yet fed.
func (p *Player) Remaining() int { return len(p.rec.Events) - p.next }

// Tap wraps a source and appends every record it yields to a recording.
type Tap struct {
	src input.Source
	rec *Recording
}

// NewTap records what src yields into r.
func NewTap(src input.Source, r *Recording) *Tap {
	return &Tap{src: src, rec: r}
}

func (t *Tap) Pump() { t.src.Pump() }

func (t *Tap) Next() (event.Record, bool) {
	rec, ok := t.src.Next()
	if ok {
		t.rec.Add(rec)
	}
	return rec, ok
}

// Push forwards to the wrapped source when it accepts pushes.
func (t *Tap) Push(rec event.Record) error {
	p, ok := t.src.(input.Pusher)
	if !ok {
		rec.Release()
		return input.ErrNotPushable
	}
	return p.Push(rec)
}
