package input

import (
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/logging"
	"github.com/gyaneshwarpardhi/sdlevents/internal/metrics"
)

// Poller decodes records from a Source.
type Poller struct {
	src     Source
	dec     *event.Decoder
	ignored atomic.Pointer[map[event.Type]struct{}]
	logger  *slog.Logger
}

type Option func(*Poller)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIgnored starts the poller with an ignore list.
func WithIgnored(types ...event.Type) Option {
	return func(p *Poller) { p.SetIgnored(types...) }
}

// NewPoller creates a Poller reading src and decoding with dec.
func NewPoller(src Source, dec *event.Decoder, opts ...Option) *Poller {
	p := &Poller{src: src, dec: dec, logger: logging.Nop()}
	p.ignored.Store(&map[event.Type]struct{}{})
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decoder returns the decoder the poller was built with.
func (p *Poller) Decoder() *event.Decoder { return p.dec }

// Source returns the underlying source.
func (p *Poller) Source() Source { return p.src }

// Pump refreshes the source's device state.
func (p *Poller) Pump() {
	start := time.Now()
	p.src.Pump()
	metrics.PumpDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
}

// Poll decodes the oldest pending record. It returns false when the source is
// empty. Records whose type is ignored are released and skipped.
func (p *Poller) Poll() (event.Event, bool) {
	ignored := *p.ignored.Load()
	for {
		rec, ok := p.src.Next()
		if !ok {
			return nil, false
		}
		if _, skip := ignored[rec.Raw.Type()]; skip {
			rec.Release()
			metrics.EventsIgnored.Inc()
			continue
		}

		e := p.dec.Decode(rec)
		cat := event.CategoryOfEvent(e)
		metrics.EventsPolled.WithLabelValues(cat.String()).Inc()
		if cat == event.CategoryUnknown {
			metrics.EventsUnknown.Inc()
			p.logger.Debug("unrecognised event", "code", fmt.Sprintf("%#x", uint32(e.Type())),
				"features", p.dec.Features().String())
		}
		return e, true
	}
}

// Drain polls until the source is empty.
func (p *Poller) Drain() []event.Event {
	var out []event.Event
	for {
		e, ok := p.Poll()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// Push encodes e and hands it to the source.
func (p *Poller) Push(e event.Event) error {
	return p.PushRecord(event.Encode(e))
}

// PushRecord hands a raw record to the source. The record's payload is
// released if the source cannot take it.
func (p *Poller) PushRecord(rec event.Record) error {
	pusher, ok := p.src.(Pusher)
	if !ok {
		rec.Release()
		return ErrNotPushable
	}
	t := rec.Raw.Type()
	if err := pusher.Push(rec); err != nil {
		metrics.PushesRejected.Inc()
		return fmt.Errorf("push %s: %w", t, err)
	}
	return nil
}

// SetIgnored atomically replaces the ignore list.
func (p *Poller) SetIgnored(types ...event.Type) {
	set := make(map[event.Type]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	p.ignored.Store(&set)
	p.logger.Debug("ignore list replaced", "types", len(set))
}

// Ignored returns the ignore list in ascending order.
func (p *Poller) Ignored() []event.Type {
	set := *p.ignored.Load()
	out := make([]event.Type, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// QueueUtilization returns queued / capacity (0–1) for sources that report a
// size, and 0 otherwise.
func (p *Poller) QueueUtilization() float64 {
	q, ok := p.src.(interface {
		Len() int
		Cap() int
	})
	if !ok || q.Cap() == 0 {
		return 0
	}
	return float64(q.Len()) / float64(q.Cap())
}
