package input

import (
	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/metrics"
)

// DefaultCapacity matches the native queue limit.
const DefaultCapacity = 65535

// Queue is an in-memory Source with a bounded capacity.
type Queue struct {
	records chan event.Record
	device  Device
}

// NewQueue creates a queue holding up to capacity records. dev, if non-nil,
// is asked to feed the queue on every Pump.
func NewQueue(capacity int, dev Device) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		records: make(chan event.Record, capacity),
		device:  dev,
	}
}

func (q *Queue) Pump() {
	if q.device != nil {
		q.device.Feed(q)
	}
	q.observe()
}

func (q *Queue) Next() (event.Record, bool) {
	select {
	case rec := <-q.records:
		q.observe()
		return rec, true
	default:
		return event.Record{}, false
	}
}

// Push enqueues rec without blocking. A rejected record is released.
func (q *Queue) Push(rec event.Record) error {
	select {
	case q.records <- rec:
		q.observe()
		return nil
	default:
		rec.Release()
		return ErrQueueFull
	}
}

func (q *Queue) observe() {
	metrics.QueueDepth.Set(float64(q.Len()))
}

// Len returns how many records are currently queued.
func (q *Queue) Len() int {
	return len(q.records)
}

// Cap returns the total queue capacity.
func (q *Queue) Cap() int {
	return cap(q.records)
}

// Clear releases and discards every queued record.
func (q *Queue) Clear() int {
	n := 0
	for {
		rec, ok := q.Next()
		if !ok {
			q.observe()
			return n
		}
		rec.Release()
		n++
	}
}
