//go:build !sdl2

package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
)

func TestOpenUnavailable(t *testing.T) {
	s, err := Open(Options{Window: true})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, input.ErrUnavailable)
}

func TestStubReleasesPushedPayload(t *testing.T) {
	var released int
	rec := event.Record{Owned: event.NewOwned("x", func() { released++ })}
	assert.ErrorIs(t, (&Source{}).Push(rec), input.ErrUnavailable)
	assert.Equal(t, 1, released)
}
