// Package feature describes which optional parts of the native event API a
// build targets. A Level is resolved once at startup and handed to the decoder;
// nothing in this package is consulted per event.
package feature

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Capability names one optional piece of the native event API.
type Capability uint

const (
	ButtonClicks Capability = iota
	RenderTargetsReset
	KeymapChanged
	AudioHotplug
	RenderDeviceReset
	WheelDirection
	DropExtended
	WindowTakeFocus
	Display
	Sensor
	FingerWindowID
	LocaleChanged
	ControllerTouchpad
	ControllerSensor
	DisplayConnection
	PreciseWheel
	WindowDisplayChanged
	TextEditingExt
	PollSentinel
	JoyBattery
	WheelMousePosition
	SensorTimestamp
	DisplayMoved

	numCapabilities
)

type capabilityInfo struct {
	name       string
	introduced string
}

var capabilities = [numCapabilities]capabilityInfo{
	ButtonClicks:         {"button_clicks", "2.0.2"},
	RenderTargetsReset:   {"render_targets_reset", "2.0.2"},
	KeymapChanged:        {"keymap_changed", "2.0.4"},
	AudioHotplug:         {"audio_hotplug", "2.0.4"},
	RenderDeviceReset:    {"render_device_reset", "2.0.4"},
	WheelDirection:       {"wheel_direction", "2.0.4"},
	DropExtended:         {"drop_extended", "2.0.5"},
	WindowTakeFocus:      {"window_take_focus", "2.0.5"},
	Display:              {"display", "2.0.9"},
	Sensor:               {"sensor", "2.0.9"},
	FingerWindowID:       {"finger_window_id", "2.0.12"},
	LocaleChanged:        {"locale_changed", "2.0.14"},
	ControllerTouchpad:   {"controller_touchpad", "2.0.14"},
	ControllerSensor:     {"controller_sensor", "2.0.14"},
	DisplayConnection:    {"display_connection", "2.0.14"},
	PreciseWheel:         {"precise_wheel", "2.0.18"},
	WindowDisplayChanged: {"window_display_changed", "2.0.18"},
	TextEditingExt:       {"text_editing_ext", "2.0.22"},
	PollSentinel:         {"poll_sentinel", "2.0.22"},
	JoyBattery:           {"joy_battery", "2.24.0"},
	WheelMousePosition:   {"wheel_mouse_position", "2.26.0"},
	SensorTimestamp:      {"sensor_timestamp", "2.26.0"},
	DisplayMoved:         {"display_moved", "2.28.0"},
}

const (
	baselineVersion = "2.0.0"
	latestVersion   = "2.28.0"
)

func (c Capability) String() string {
	if c >= numCapabilities {
		return fmt.Sprintf("capability(%d)", uint(c))
	}
	return capabilities[c].name
}

// Introduced returns the first native version that ships c.
func (c Capability) Introduced() semver.Version {
	if c >= numCapabilities {
		return semver.Version{}
	}
	return *semver.New(capabilities[c].introduced)
}

// ParseCapability looks a capability up by its snake_case name.
func ParseCapability(name string) (Capability, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range capabilities {
		if info.name == name {
			return Capability(i), nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// All lists every known capability in declaration order.
func All() []Capability {
	out := make([]Capability, numCapabilities)
	for i := range out {
		out[i] = Capability(i)
	}
	return out
}

// Set is a bitmask of capabilities.
type Set uint64

func (s Set) Has(c Capability) bool {
	return c < numCapabilities && s&(1<<c) != 0
}

func (s Set) With(cs ...Capability) Set {
	for _, c := range cs {
		if c < numCapabilities {
			s |= 1 << c
		}
	}
	return s
}

func (s Set) Without(cs ...Capability) Set {
	for _, c := range cs {
		s &^= 1 << c
	}
	return s
}

// Capabilities returns the members of s in declaration order.
func (s Set) Capabilities() []Capability {
	var out []Capability
	for c := Capability(0); c < numCapabilities; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	caps := s.Capabilities()
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// For returns every capability introduced at or before v.
func For(v semver.Version) Set {
	var s Set
	for c := Capability(0); c < numCapabilities; c++ {
		if !v.LessThan(c.Introduced()) {
			s = s.With(c)
		}
	}
	return s
}

// Level is a native version together with the capability set a build uses.
// Set normally equals For(Version) but may be narrowed with Without.
type Level struct {
	Version semver.Version
	Set     Set
}

// ParseLevel parses a version such as "2.0.18" or "2.26" and resolves its set.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if strings.Count(s, ".") == 1 {
		s += ".0"
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return Level{}, fmt.Errorf("parse feature level %q: %w", s, err)
	}
	if v.Major != 2 {
		return Level{}, fmt.Errorf("feature level %s: only major version 2 is supported", v)
	}
	return Level{Version: *v, Set: For(*v)}, nil
}

// Baseline is the oldest supported level.
func Baseline() Level {
	v := *semver.New(baselineVersion)
	return Level{Version: v, Set: For(v)}
}

// Latest is the newest level the decoder knows about.
func Latest() Level {
	v := *semver.New(latestVersion)
	return Level{Version: v, Set: For(v)}
}

// Without returns a copy of l with cs removed from its set.
func (l Level) Without(cs ...Capability) Level {
	l.Set = l.Set.Without(cs...)
	return l
}

func (l Level) String() string {
	return l.Version.String()
}
