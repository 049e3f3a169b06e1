// Package sdl is the native input source backed by SDL2. It is only
// functional when built with the sdl2 tag; otherwise Open returns
// input.ErrUnavailable.
//
// SDL requires event handling on the thread that initialised the video
// subsystem. Callers should lock the main goroutine to its OS thread before
// calling Open and keep every Pump, Poll and Push on it.
package sdl

import "log/slog"

// Options configures Open.
type Options struct {
	// Window opens a visible window so that keyboard, mouse and window
	// events have somewhere to go. Headless sources still see device
	// hotplug and quit events.
	Window bool
	Title  string
	Width  int32
	Height int32
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "sdlevents"
	}
	if o.Width == 0 {
		o.Width = 640
	}
	if o.Height == 0 {
		o.Height = 480
	}
}
