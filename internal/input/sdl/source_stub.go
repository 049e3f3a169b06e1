//go:build !sdl2

package sdl

import (
	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
)

// Source is unavailable in builds without the sdl2 tag.
type Source struct{}

// Open always fails with input.ErrUnavailable.
func Open(Options) (*Source, error) {
	return nil, input.ErrUnavailable
}

func (*Source) Level() feature.Level       { return feature.Baseline() }
func (*Source) Pump()                      {}
func (*Source) Next() (event.Record, bool) { return event.Record{}, false }
func (*Source) Close() error               { return nil }

func (*Source) Push(rec event.Record) error {
	rec.Release()
	return input.ErrUnavailable
}
