package event

import (
	"fmt"
	"strings"
)

// Type is the outer discriminant stored in the first four bytes of a record.
type Type uint32

// Application events
const (
	TypeQuit Type = 0x100 + iota
	TypeAppTerminating
	TypeAppLowMemory
	TypeAppWillEnterBackground
	TypeAppDidEnterBackground
	TypeAppWillEnterForeground
	TypeAppDidEnterForeground
	TypeLocaleChanged
)

const TypeDisplayEvent Type = 0x150

// Window events
const (
	TypeWindowEvent Type = 0x200 + iota
	TypeSysWMEvent
)

// Keyboard events
const (
	TypeKeyDown Type = 0x300 + iota
	TypeKeyUp
	TypeTextEditing
	TypeTextInput
	TypeKeymapChanged
	TypeTextEditingExt
)

// Mouse events
const (
	TypeMouseMotion Type = 0x400 + iota
	TypeMouseButtonDown
	TypeMouseButtonUp
	TypeMouseWheel
)

// Joystick events
const (
	TypeJoyAxisMotion Type = 0x600 + iota
	TypeJoyBallMotion
	TypeJoyHatMotion
	TypeJoyButtonDown
	TypeJoyButtonUp
	TypeJoyDeviceAdded
	TypeJoyDeviceRemoved
	TypeJoyBatteryUpdated
)

// Game controller events
const (
	TypeControllerAxisMotion Type = 0x650 + iota
	TypeControllerButtonDown
	TypeControllerButtonUp
	TypeControllerDeviceAdded
	TypeControllerDeviceRemoved
	TypeControllerDeviceRemapped
	TypeControllerTouchpadDown
	TypeControllerTouchpadMotion
	TypeControllerTouchpadUp
	TypeControllerSensorUpdate
)

// Touch events
const (
	TypeFingerDown Type = 0x700 + iota
	TypeFingerUp
	TypeFingerMotion
)

// Gesture events
const (
	TypeDollarGesture Type = 0x800 + iota
	TypeDollarRecord
	TypeMultiGesture
)

const TypeClipboardUpdate Type = 0x900

// Drag and drop events
const (
	TypeDropFile Type = 0x1000 + iota
	TypeDropText
	TypeDropBegin
	TypeDropComplete
)

// Audio hotplug events
const (
	TypeAudioDeviceAdded Type = 0x1100 + iota
	TypeAudioDeviceRemoved
)

const TypeSensorUpdate Type = 0x1200

// Render events
const (
	TypeRenderTargetsReset Type = 0x2000 + iota
	TypeRenderDeviceReset
)

const TypePollSentinel Type = 0x7F00

const (
	// TypeUser is the first code handed out to application-registered events.
	TypeUser Type = 0x8000
	TypeLast Type = 0xFFFF
)

var typeNames = map[Type]string{
	TypeQuit:                     "quit",
	TypeAppTerminating:           "app_terminating",
	TypeAppLowMemory:             "app_low_memory",
	TypeAppWillEnterBackground:   "app_will_enter_background",
	TypeAppDidEnterBackground:    "app_did_enter_background",
	TypeAppWillEnterForeground:   "app_will_enter_foreground",
	TypeAppDidEnterForeground:    "app_did_enter_foreground",
	TypeLocaleChanged:            "locale_changed",
	TypeDisplayEvent:             "display_event",
	TypeWindowEvent:              "window_event",
	TypeSysWMEvent:               "syswm_event",
	TypeKeyDown:                  "key_down",
	TypeKeyUp:                    "key_up",
	TypeTextEditing:              "text_editing",
	TypeTextInput:                "text_input",
	TypeKeymapChanged:            "keymap_changed",
	TypeTextEditingExt:           "text_editing_ext",
	TypeMouseMotion:              "mouse_motion",
	TypeMouseButtonDown:          "mouse_button_down",
	TypeMouseButtonUp:            "mouse_button_up",
	TypeMouseWheel:               "mouse_wheel",
	TypeJoyAxisMotion:            "joy_axis_motion",
	TypeJoyBallMotion:            "joy_ball_motion",
	TypeJoyHatMotion:             "joy_hat_motion",
	TypeJoyButtonDown:            "joy_button_down",
	TypeJoyButtonUp:              "joy_button_up",
	TypeJoyDeviceAdded:           "joy_device_added",
	TypeJoyDeviceRemoved:         "joy_device_removed",
	TypeJoyBatteryUpdated:        "joy_battery_updated",
	TypeControllerAxisMotion:     "controller_axis_motion",
	TypeControllerButtonDown:     "controller_button_down",
	TypeControllerButtonUp:       "controller_button_up",
	TypeControllerDeviceAdded:    "controller_device_added",
	TypeControllerDeviceRemoved:  "controller_device_removed",
	TypeControllerDeviceRemapped: "controller_device_remapped",
	TypeControllerTouchpadDown:   "controller_touchpad_down",
	TypeControllerTouchpadMotion: "controller_touchpad_motion",
	TypeControllerTouchpadUp:     "controller_touchpad_up",
	TypeControllerSensorUpdate:   "controller_sensor_update",
	TypeFingerDown:               "finger_down",
	TypeFingerUp:                 "finger_up",
	TypeFingerMotion:             "finger_motion",
	TypeDollarGesture:            "dollar_gesture",
	TypeDollarRecord:             "dollar_record",
	TypeMultiGesture:             "multi_gesture",
	TypeClipboardUpdate:          "clipboard_update",
	TypeDropFile:                 "drop_file",
	TypeDropText:                 "drop_text",
	TypeDropBegin:                "drop_begin",
	TypeDropComplete:             "drop_complete",
	TypeAudioDeviceAdded:         "audio_device_added",
	TypeAudioDeviceRemoved:       "audio_device_removed",
	TypeSensorUpdate:             "sensor_update",
	TypeRenderTargetsReset:       "render_targets_reset",
	TypeRenderDeviceReset:        "render_device_reset",
	TypePollSentinel:             "poll_sentinel",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t >= TypeUser && t < TypeLast {
		return fmt.Sprintf("user(%#x)", uint32(t))
	}
	return fmt.Sprintf("type(%#x)", uint32(t))
}

// ParseType resolves a name from Type.String. "user" maps to TypeUser.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "user" {
		return TypeUser, nil
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// Category groups types that share one payload layout, i.e. one member of the
// native event union.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryQuit
	CategoryApp
	CategoryDisplay
	CategoryWindow
	CategorySysWM
	CategoryKeyboard
	CategoryTextEditing
	CategoryTextInput
	CategoryTextEditingExt
	CategoryMouseMotion
	CategoryMouseButton
	CategoryMouseWheel
	CategoryJoyAxis
	CategoryJoyBall
	CategoryJoyHat
	CategoryJoyButton
	CategoryJoyDevice
	CategoryJoyBattery
	CategoryControllerAxis
	CategoryControllerButton
	CategoryControllerDevice
	CategoryControllerTouchpad
	CategoryControllerSensor
	CategoryFinger
	CategoryDollarGesture
	CategoryMultiGesture
	CategoryClipboard
	CategoryDrop
	CategoryAudioDevice
	CategorySensor
	CategoryRender
	CategoryPollSentinel
	CategoryUser

	numCategories
)

var categoryNames = [numCategories]string{
	CategoryUnknown:            "unknown",
	CategoryQuit:               "quit",
	CategoryApp:                "app",
	CategoryDisplay:            "display",
	CategoryWindow:             "window",
	CategorySysWM:              "syswm",
	CategoryKeyboard:           "keyboard",
	CategoryTextEditing:        "text_editing",
	CategoryTextInput:          "text_input",
	CategoryTextEditingExt:     "text_editing_ext",
	CategoryMouseMotion:        "mouse_motion",
	CategoryMouseButton:        "mouse_button",
	CategoryMouseWheel:         "mouse_wheel",
	CategoryJoyAxis:            "joy_axis",
	CategoryJoyBall:            "joy_ball",
	CategoryJoyHat:             "joy_hat",
	CategoryJoyButton:          "joy_button",
	CategoryJoyDevice:          "joy_device",
	CategoryJoyBattery:         "joy_battery",
	CategoryControllerAxis:     "controller_axis",
	CategoryControllerButton:   "controller_button",
	CategoryControllerDevice:   "controller_device",
	CategoryControllerTouchpad: "controller_touchpad",
	CategoryControllerSensor:   "controller_sensor",
	CategoryFinger:             "finger",
	CategoryDollarGesture:      "dollar_gesture",
	CategoryMultiGesture:       "multi_gesture",
	CategoryClipboard:          "clipboard",
	CategoryDrop:               "drop",
	CategoryAudioDevice:        "audio_device",
	CategorySensor:             "sensor",
	CategoryRender:             "render",
	CategoryPollSentinel:       "poll_sentinel",
	CategoryUser:               "user",
}

func (c Category) String() string {
	if c >= numCategories {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Categories lists every category, CategoryUnknown first.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// CategoryOf maps a type code to its category. It is total: codes outside the
// known ranges, including reserved gaps inside a range, are CategoryUnknown.
func CategoryOf(t Type) Category {
	switch {
	case t == TypeQuit:
		return CategoryQuit
	case t >= TypeAppTerminating && t <= TypeLocaleChanged:
		return CategoryApp
	case t == TypeDisplayEvent:
		return CategoryDisplay
	case t == TypeWindowEvent:
		return CategoryWindow
	case t == TypeSysWMEvent:
		return CategorySysWM
	case t == TypeKeyDown, t == TypeKeyUp, t == TypeKeymapChanged:
		return CategoryKeyboard
	case t == TypeTextEditing:
		return CategoryTextEditing
	case t == TypeTextInput:
		return CategoryTextInput
	case t == TypeTextEditingExt:
		return CategoryTextEditingExt
	case t == TypeMouseMotion:
		return CategoryMouseMotion
	case t == TypeMouseButtonDown, t == TypeMouseButtonUp:
		return CategoryMouseButton
	case t == TypeMouseWheel:
		return CategoryMouseWheel
	case t == TypeJoyAxisMotion:
		return CategoryJoyAxis
	case t == TypeJoyBallMotion:
		return CategoryJoyBall
	case t == TypeJoyHatMotion:
		return CategoryJoyHat
	case t == TypeJoyButtonDown, t == TypeJoyButtonUp:
		return CategoryJoyButton
	case t == TypeJoyDeviceAdded, t == TypeJoyDeviceRemoved:
		return CategoryJoyDevice
	case t == TypeJoyBatteryUpdated:
		return CategoryJoyBattery
	case t == TypeControllerAxisMotion:
		return CategoryControllerAxis
	case t == TypeControllerButtonDown, t == TypeControllerButtonUp:
		return CategoryControllerButton
	case t >= TypeControllerDeviceAdded && t <= TypeControllerDeviceRemapped:
		return CategoryControllerDevice
	case t >= TypeControllerTouchpadDown && t <= TypeControllerTouchpadUp:
		return CategoryControllerTouchpad
	case t == TypeControllerSensorUpdate:
		return CategoryControllerSensor
	case t >= TypeFingerDown && t <= TypeFingerMotion:
		return CategoryFinger
	case t == TypeDollarGesture, t == TypeDollarRecord:
		return CategoryDollarGesture
	case t == TypeMultiGesture:
		return CategoryMultiGesture
	case t == TypeClipboardUpdate:
		return CategoryClipboard
	case t >= TypeDropFile && t <= TypeDropComplete:
		return CategoryDrop
	case t == TypeAudioDeviceAdded, t == TypeAudioDeviceRemoved:
		return CategoryAudioDevice
	case t == TypeSensorUpdate:
		return CategorySensor
	case t == TypeRenderTargetsReset, t == TypeRenderDeviceReset:
		return CategoryRender
	case t == TypePollSentinel:
		return CategoryPollSentinel
	case t >= TypeUser && t < TypeLast:
		return CategoryUser
	}
	return CategoryUnknown
}

// WindowEventID is the sub-discriminant of a window event, stored in the
// payload byte after the window id.
type WindowEventID uint8

const (
	WindowNone WindowEventID = iota
	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
	WindowTakeFocus
	WindowHitTest
	WindowICCProfChanged
	WindowDisplayChanged
)

var windowEventNames = map[WindowEventID]string{
	WindowNone:           "none",
	WindowShown:          "shown",
	WindowHidden:         "hidden",
	WindowExposed:        "exposed",
	WindowMoved:          "moved",
	WindowResized:        "resized",
	WindowSizeChanged:    "size_changed",
	WindowMinimized:      "minimized",
	WindowMaximized:      "maximized",
	WindowRestored:       "restored",
	WindowEnter:          "enter",
	WindowLeave:          "leave",
	WindowFocusGained:    "focus_gained",
	WindowFocusLost:      "focus_lost",
	WindowClose:          "close",
	WindowTakeFocus:      "take_focus",
	WindowHitTest:        "hit_test",
	WindowICCProfChanged: "icc_prof_changed",
	WindowDisplayChanged: "display_changed",
}

func (id WindowEventID) String() string {
	if name, ok := windowEventNames[id]; ok {
		return name
	}
	return fmt.Sprintf("window_event(%d)", uint8(id))
}

// DisplayEventID is the sub-discriminant of a display event.
type DisplayEventID uint8

const (
	DisplayNone DisplayEventID = iota
	DisplayOrientation
	DisplayConnected
	DisplayDisconnected
	DisplayMoved
)

var displayEventNames = map[DisplayEventID]string{
	DisplayNone:         "none",
	DisplayOrientation:  "orientation",
	DisplayConnected:    "connected",
	DisplayDisconnected: "disconnected",
	DisplayMoved:        "moved",
}

func (id DisplayEventID) String() string {
	if name, ok := displayEventNames[id]; ok {
		return name
	}
	return fmt.Sprintf("display_event(%d)", uint8(id))
}

// Button and key states.
const (
	Released uint8 = 0
	Pressed  uint8 = 1
)

// MouseWheelDirection tells whether wheel deltas are already inverted.
type MouseWheelDirection uint32

const (
	WheelNormal MouseWheelDirection = iota
	WheelFlipped
)

func (d MouseWheelDirection) String() string {
	switch d {
	case WheelNormal:
		return "normal"
	case WheelFlipped:
		return "flipped"
	}
	return fmt.Sprintf("direction(%d)", uint32(d))
}

// Orientation is the data of a display orientation event.
type Orientation int32

const (
	OrientationUnknown Orientation = iota
	OrientationLandscape
	OrientationLandscapeFlipped
	OrientationPortrait
	OrientationPortraitFlipped
)

// BatteryLevel is the power level reported by a joystick battery event.
type BatteryLevel int32

const (
	BatteryUnknown BatteryLevel = iota - 1
	BatteryEmpty
	BatteryLow
	BatteryMedium
	BatteryFull
	BatteryWired
	BatteryMax
)
