// Package input is the pump/poll contract in front of an event source.
//
// A Source owns a FIFO of raw records. Pump refreshes device state, which may
// enqueue new records; Poll removes and decodes at most one record and never
// blocks. Sources are owned by a single goroutine: callers that share a
// Poller across goroutines must serialise Pump, Poll and Push themselves.
package input

import (
	"errors"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
)

var (
	// ErrQueueFull is returned by Push when the source cannot accept more records.
	ErrQueueFull = errors.New("event queue full")
	// ErrNotPushable is returned when the source does not accept synthetic events.
	ErrNotPushable = errors.New("source does not accept pushed events")
	// ErrUnavailable is returned by native sources built without library support.
	ErrUnavailable = errors.New("native input source unavailable")
)

// Source produces raw records in FIFO order.
type Source interface {
	// Pump refreshes device state. It must not block beyond the OS input call.
	Pump()
	// Next removes the oldest record. ok is false when nothing is queued.
	Next() (rec event.Record, ok bool)
}

// Pusher accepts synthetic records. On error the record's owned payload has
// already been released.
type Pusher interface {
	Push(rec event.Record) error
}

// Device feeds records into a queue when pumped.
type Device interface {
	Feed(dst Pusher)
}

// DeviceFunc adapts a function to Device.
type DeviceFunc func(dst Pusher)

func (f DeviceFunc) Feed(dst Pusher) { f(dst) }
