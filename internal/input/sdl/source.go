//go:build sdl2

package sdl

/*
#cgo pkg-config: sdl2
#include <stdlib.h>
#include <SDL.h>
*/
import "C"

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
	"github.com/gyaneshwarpardhi/sdlevents/internal/logging"
)

const initFlags = sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_JOYSTICK |
	sdl.INIT_GAMECONTROLLER | sdl.INIT_SENSOR | sdl.INIT_AUDIO

// Source reads the native SDL event queue.
type Source struct {
	window *sdl.Window
	level  feature.Level
	logger *slog.Logger
}

var (
	_ input.Source = (*Source)(nil)
	_ input.Pusher = (*Source)(nil)
)

// Open initialises SDL and, if requested, creates a window.
func Open(opts Options) (*Source, error) {
	opts.defaults()
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	if C.sizeof_SDL_Event != event.RecordSize {
		return nil, fmt.Errorf("sdl: event union is %d bytes, decoder expects %d", C.sizeof_SDL_Event, event.RecordSize)
	}
	if err := sdl.Init(initFlags); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	level, err := feature.ParseLevel(fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl version: %w", err)
	}

	s := &Source{level: level, logger: logger}
	if opts.Window {
		w, err := sdl.CreateWindow(opts.Title,
			int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
			opts.Width, opts.Height, uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl create window: %w", err)
		}
		s.window = w
	}
	logger.Info("sdl source opened", "version", level.String(), "window", opts.Window)
	return s, nil
}

// Level is the feature level of the linked library.
func (s *Source) Level() feature.Level { return s.level }

func (s *Source) Pump() {
	C.SDL_PumpEvents()
}

// Next removes one record from the native queue. Owned strings are copied
// into Go memory and freed with SDL_free when the record is released.
func (s *Source) Next() (event.Record, bool) {
	var ev C.SDL_Event
	if C.SDL_PollEvent(&ev) == 0 {
		return event.Record{}, false
	}

	var rec event.Record
	copy(rec.Raw[:], unsafe.Slice((*byte)(unsafe.Pointer(&ev)), event.RecordSize))

	if off, ok := event.OwnedSlot(rec.Raw.Type()); ok {
		slot := (**C.char)(unsafe.Add(unsafe.Pointer(&ev), off))
		if p := *slot; p != nil {
			rec.Owned = event.NewOwned(C.GoString(p), func() { C.SDL_free(unsafe.Pointer(p)) })
		}
	}
	return rec, true
}

// Push appends rec to the native queue. Owned text is duplicated with
// SDL_strdup so that SDL's consumer can free it.
func (s *Source) Push(rec event.Record) error {
	defer rec.Release()

	var ev C.SDL_Event
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&ev)), event.RecordSize), rec.Raw[:])

	var dup *C.char
	if off, ok := event.OwnedSlot(rec.Raw.Type()); ok {
		if rec.Owned != nil {
			cs := C.CString(rec.Owned.Text())
			dup = C.SDL_strdup(cs)
			C.free(unsafe.Pointer(cs))
		}
		*(**C.char)(unsafe.Add(unsafe.Pointer(&ev), off)) = dup
	}

	switch rc := C.SDL_PushEvent(&ev); {
	case rc == 1:
		return nil
	case rc == 0:
		C.SDL_free(unsafe.Pointer(dup))
		s.logger.Debug("pushed event filtered", "type", rec.Raw.Type().String())
		return nil
	default:
		C.SDL_free(unsafe.Pointer(dup))
		return fmt.Errorf("%w: %s", input.ErrQueueFull, C.GoString(C.SDL_GetError()))
	}
}

// Close destroys the window and shuts SDL down.
func (s *Source) Close() error {
	if s.window != nil {
		if err := s.window.Destroy(); err != nil {
			s.logger.Warn("sdl destroy window", "err", err)
		}
		s.window = nil
	}
	sdl.Quit()
	return nil
}
