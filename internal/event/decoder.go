package event

import (
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
)

// decodeFunc builds a variant from a record. A nil result means the arm does
// not recognise the record's sub-discriminant.
type decodeFunc func(rec *Record, c Common) Event

// Decoder maps raw records to variants. Its dispatch tables are built once
// from a feature set; a category or sub-code without an arm at that level
// decodes to UnknownEvent. A Decoder is immutable and safe to share.
type Decoder struct {
	features feature.Set
	arms     [numCategories]decodeFunc
	windows  map[WindowEventID]func(h WindowHeader, r *Raw) Event
	displays map[DisplayEventID]func(h DisplayHeader, r *Raw) Event
}

// NewDecoder builds the dispatch tables for fs.
func NewDecoder(fs feature.Set) *Decoder {
	d := &Decoder{features: fs}
	d.buildWindowArms()
	d.buildDisplayArms()

	d.arms[CategoryQuit] = func(_ *Record, c Common) Event { return &QuitEvent{Common: c} }

	app := map[Type]decodeFunc{
		TypeAppTerminating:         func(_ *Record, c Common) Event { return &AppTerminatingEvent{Common: c} },
		TypeAppLowMemory:           func(_ *Record, c Common) Event { return &AppLowMemoryEvent{Common: c} },
		TypeAppWillEnterBackground: func(_ *Record, c Common) Event { return &AppWillEnterBackgroundEvent{Common: c} },
		TypeAppDidEnterBackground:  func(_ *Record, c Common) Event { return &AppDidEnterBackgroundEvent{Common: c} },
		TypeAppWillEnterForeground: func(_ *Record, c Common) Event { return &AppWillEnterForegroundEvent{Common: c} },
		TypeAppDidEnterForeground:  func(_ *Record, c Common) Event { return &AppDidEnterForegroundEvent{Common: c} },
	}
	if fs.Has(feature.LocaleChanged) {
		app[TypeLocaleChanged] = func(_ *Record, c Common) Event { return &LocaleChangedEvent{Common: c} }
	}
	d.arms[CategoryApp] = byType(app)

	if fs.Has(feature.Display) {
		d.arms[CategoryDisplay] = d.decodeDisplay
	}
	d.arms[CategoryWindow] = d.decodeWindow
	d.arms[CategorySysWM] = raw(decodeSysWM)

	keyboard := map[Type]decodeFunc{
		TypeKeyDown: func(rec *Record, c Common) Event { return &KeyDownEvent{decodeKey(&rec.Raw, c)} },
		TypeKeyUp:   func(rec *Record, c Common) Event { return &KeyUpEvent{decodeKey(&rec.Raw, c)} },
	}
	if fs.Has(feature.KeymapChanged) {
		keyboard[TypeKeymapChanged] = func(_ *Record, c Common) Event { return &KeymapChangedEvent{Common: c} }
	}
	d.arms[CategoryKeyboard] = byType(keyboard)
	d.arms[CategoryTextEditing] = raw(decodeTextEditing)
	d.arms[CategoryTextInput] = raw(decodeTextInput)
	if fs.Has(feature.TextEditingExt) {
		d.arms[CategoryTextEditingExt] = decodeTextEditingExt
	}

	d.arms[CategoryMouseMotion] = raw(decodeMouseMotion)
	clicks := fs.Has(feature.ButtonClicks)
	d.arms[CategoryMouseButton] = byType(map[Type]decodeFunc{
		TypeMouseButtonDown: func(rec *Record, c Common) Event {
			return &MouseButtonDownEvent{decodeMouseButton(&rec.Raw, c, clicks)}
		},
		TypeMouseButtonUp: func(rec *Record, c Common) Event {
			return &MouseButtonUpEvent{decodeMouseButton(&rec.Raw, c, clicks)}
		},
	})
	d.arms[CategoryMouseWheel] = wheelArm(fs)

	d.arms[CategoryJoyAxis] = raw(decodeJoyAxis)
	d.arms[CategoryJoyBall] = raw(decodeJoyBall)
	d.arms[CategoryJoyHat] = raw(decodeJoyHat)
	d.arms[CategoryJoyButton] = byType(map[Type]decodeFunc{
		TypeJoyButtonDown: func(rec *Record, c Common) Event { return &JoyButtonDownEvent{decodeJoyButton(&rec.Raw, c)} },
		TypeJoyButtonUp:   func(rec *Record, c Common) Event { return &JoyButtonUpEvent{decodeJoyButton(&rec.Raw, c)} },
	})
	d.arms[CategoryJoyDevice] = byType(map[Type]decodeFunc{
		TypeJoyDeviceAdded:   func(rec *Record, c Common) Event { return &JoyDeviceAddedEvent{decodeJoyDevice(&rec.Raw, c)} },
		TypeJoyDeviceRemoved: func(rec *Record, c Common) Event { return &JoyDeviceRemovedEvent{decodeJoyDevice(&rec.Raw, c)} },
	})
	if fs.Has(feature.JoyBattery) {
		d.arms[CategoryJoyBattery] = raw(decodeJoyBattery)
	}

	d.arms[CategoryControllerAxis] = raw(decodeControllerAxis)
	d.arms[CategoryControllerButton] = byType(map[Type]decodeFunc{
		TypeControllerButtonDown: func(rec *Record, c Common) Event {
			return &ControllerButtonDownEvent{decodeJoyButton(&rec.Raw, c)}
		},
		TypeControllerButtonUp: func(rec *Record, c Common) Event {
			return &ControllerButtonUpEvent{decodeJoyButton(&rec.Raw, c)}
		},
	})
	d.arms[CategoryControllerDevice] = byType(map[Type]decodeFunc{
		TypeControllerDeviceAdded: func(rec *Record, c Common) Event {
			return &ControllerDeviceAddedEvent{decodeJoyDevice(&rec.Raw, c)}
		},
		TypeControllerDeviceRemoved: func(rec *Record, c Common) Event {
			return &ControllerDeviceRemovedEvent{decodeJoyDevice(&rec.Raw, c)}
		},
		TypeControllerDeviceRemapped: func(rec *Record, c Common) Event {
			return &ControllerDeviceRemappedEvent{decodeJoyDevice(&rec.Raw, c)}
		},
	})
	if fs.Has(feature.ControllerTouchpad) {
		d.arms[CategoryControllerTouchpad] = byType(map[Type]decodeFunc{
			TypeControllerTouchpadDown: func(rec *Record, c Common) Event {
				return &ControllerTouchpadDownEvent{decodeControllerTouchpad(&rec.Raw, c)}
			},
			TypeControllerTouchpadMotion: func(rec *Record, c Common) Event {
				return &ControllerTouchpadMotionEvent{decodeControllerTouchpad(&rec.Raw, c)}
			},
			TypeControllerTouchpadUp: func(rec *Record, c Common) Event {
				return &ControllerTouchpadUpEvent{decodeControllerTouchpad(&rec.Raw, c)}
			},
		})
	}
	sensorTimestamp := fs.Has(feature.SensorTimestamp)
	if fs.Has(feature.ControllerSensor) {
		d.arms[CategoryControllerSensor] = func(rec *Record, c Common) Event {
			return decodeControllerSensor(&rec.Raw, c, sensorTimestamp)
		}
	}

	fingerWindow := fs.Has(feature.FingerWindowID)
	d.arms[CategoryFinger] = byType(map[Type]decodeFunc{
		TypeFingerDown: func(rec *Record, c Common) Event {
			return &FingerDownEvent{decodeTouchFinger(&rec.Raw, c, fingerWindow)}
		},
		TypeFingerUp: func(rec *Record, c Common) Event {
			return &FingerUpEvent{decodeTouchFinger(&rec.Raw, c, fingerWindow)}
		},
		TypeFingerMotion: func(rec *Record, c Common) Event {
			return &FingerMotionEvent{decodeTouchFinger(&rec.Raw, c, fingerWindow)}
		},
	})
	d.arms[CategoryDollarGesture] = byType(map[Type]decodeFunc{
		TypeDollarGesture: func(rec *Record, c Common) Event { return &DollarGestureEvent{decodeDollarGesture(&rec.Raw, c)} },
		TypeDollarRecord:  func(rec *Record, c Common) Event { return &DollarRecordEvent{decodeDollarGesture(&rec.Raw, c)} },
	})
	d.arms[CategoryMultiGesture] = raw(decodeMultiGesture)
	d.arms[CategoryClipboard] = func(_ *Record, c Common) Event { return &ClipboardUpdateEvent{Common: c} }
	d.arms[CategoryDrop] = dropArm(fs)

	if fs.Has(feature.AudioHotplug) {
		d.arms[CategoryAudioDevice] = byType(map[Type]decodeFunc{
			TypeAudioDeviceAdded: func(rec *Record, c Common) Event {
				return &AudioDeviceAddedEvent{decodeAudioDevice(&rec.Raw, c)}
			},
			TypeAudioDeviceRemoved: func(rec *Record, c Common) Event {
				return &AudioDeviceRemovedEvent{decodeAudioDevice(&rec.Raw, c)}
			},
		})
	}
	if fs.Has(feature.Sensor) {
		d.arms[CategorySensor] = func(rec *Record, c Common) Event {
			return decodeSensor(&rec.Raw, c, sensorTimestamp)
		}
	}

	render := map[Type]decodeFunc{}
	if fs.Has(feature.RenderTargetsReset) {
		render[TypeRenderTargetsReset] = func(_ *Record, c Common) Event { return &RenderTargetsResetEvent{Common: c} }
	}
	if fs.Has(feature.RenderDeviceReset) {
		render[TypeRenderDeviceReset] = func(_ *Record, c Common) Event { return &RenderDeviceResetEvent{Common: c} }
	}
	if len(render) > 0 {
		d.arms[CategoryRender] = byType(render)
	}
	if fs.Has(feature.PollSentinel) {
		d.arms[CategoryPollSentinel] = func(_ *Record, c Common) Event { return &PollSentinelEvent{Common: c} }
	}
	d.arms[CategoryUser] = raw(decodeUser)
	return d
}

// Features returns the set the decoder was built for.
func (d *Decoder) Features() feature.Set {
	return d.features
}

// Decode returns exactly one variant for rec. It never fails: anything
// without an arm becomes an UnknownEvent carrying the raw bytes. The owned
// payload, if any, is released before Decode returns on every path.
func (d *Decoder) Decode(rec Record) Event {
	defer rec.Owned.Release()

	c := Common{Timestamp: rec.Raw.Timestamp()}
	if arm := d.arms[CategoryOf(rec.Raw.Type())]; arm != nil {
		if e := arm(&rec, c); e != nil {
			return e
		}
	}
	return &UnknownEvent{Common: c, Code: rec.Raw.Type(), Raw: rec.Raw}
}

// Supports reports whether records of type t can decode to something other
// than UnknownEvent. Window and display types report true when at least one
// sub-code has an arm.
func (d *Decoder) Supports(t Type) bool {
	cat := CategoryOf(t)
	if d.arms[cat] == nil {
		return false
	}
	switch cat {
	case CategoryWindow:
		return len(d.windows) > 0
	case CategoryDisplay:
		return len(d.displays) > 0
	}
	var probe Record
	probe.Raw.SetType(t)
	return d.arms[cat](&probe, Common{}) != nil
}

func (d *Decoder) decodeWindow(rec *Record, c Common) Event {
	fn, ok := d.windows[WindowEventID(rec.Raw.u8(offWindowEvent))]
	if !ok {
		return nil
	}
	return fn(windowHeader(&rec.Raw, c), &rec.Raw)
}

func (d *Decoder) decodeDisplay(rec *Record, c Common) Event {
	fn, ok := d.displays[DisplayEventID(rec.Raw.u8(offDisplayEvent))]
	if !ok {
		return nil
	}
	return fn(displayHeader(&rec.Raw, c), &rec.Raw)
}

func (d *Decoder) buildWindowArms() {
	d.windows = map[WindowEventID]func(WindowHeader, *Raw) Event{
		WindowShown:   func(h WindowHeader, _ *Raw) Event { return &WindowShownEvent{h} },
		WindowHidden:  func(h WindowHeader, _ *Raw) Event { return &WindowHiddenEvent{h} },
		WindowExposed: func(h WindowHeader, _ *Raw) Event { return &WindowExposedEvent{h} },
		WindowMoved: func(h WindowHeader, r *Raw) Event {
			return &WindowMovedEvent{h, Point{r.i32(offWindowData1), r.i32(offWindowData2)}}
		},
		WindowResized: func(h WindowHeader, r *Raw) Event {
			return &WindowResizedEvent{h, Size{r.i32(offWindowData1), r.i32(offWindowData2)}}
		},
		WindowSizeChanged: func(h WindowHeader, r *Raw) Event {
			return &WindowSizeChangedEvent{h, Size{r.i32(offWindowData1), r.i32(offWindowData2)}}
		},
		WindowMinimized:   func(h WindowHeader, _ *Raw) Event { return &WindowMinimizedEvent{h} },
		WindowMaximized:   func(h WindowHeader, _ *Raw) Event { return &WindowMaximizedEvent{h} },
		WindowRestored:    func(h WindowHeader, _ *Raw) Event { return &WindowRestoredEvent{h} },
		WindowEnter:       func(h WindowHeader, _ *Raw) Event { return &WindowEnterEvent{h} },
		WindowLeave:       func(h WindowHeader, _ *Raw) Event { return &WindowLeaveEvent{h} },
		WindowFocusGained: func(h WindowHeader, _ *Raw) Event { return &WindowFocusGainedEvent{h} },
		WindowFocusLost:   func(h WindowHeader, _ *Raw) Event { return &WindowFocusLostEvent{h} },
		WindowClose:       func(h WindowHeader, _ *Raw) Event { return &WindowCloseEvent{h} },
	}
	if d.features.Has(feature.WindowTakeFocus) {
		d.windows[WindowTakeFocus] = func(h WindowHeader, _ *Raw) Event { return &WindowTakeFocusEvent{h} }
		d.windows[WindowHitTest] = func(h WindowHeader, _ *Raw) Event { return &WindowHitTestEvent{h} }
	}
	if d.features.Has(feature.WindowDisplayChanged) {
		d.windows[WindowICCProfChanged] = func(h WindowHeader, _ *Raw) Event { return &WindowICCProfChangedEvent{h} }
		d.windows[WindowDisplayChanged] = func(h WindowHeader, r *Raw) Event {
			return &WindowDisplayChangedEvent{h, r.i32(offWindowData1)}
		}
	}
}

func (d *Decoder) buildDisplayArms() {
	d.displays = map[DisplayEventID]func(DisplayHeader, *Raw) Event{
		DisplayOrientation: func(h DisplayHeader, r *Raw) Event {
			return &DisplayOrientationEvent{h, Orientation(r.i32(offDisplayData1))}
		},
	}
	if d.features.Has(feature.DisplayConnection) {
		d.displays[DisplayConnected] = func(h DisplayHeader, _ *Raw) Event { return &DisplayConnectedEvent{h} }
		d.displays[DisplayDisconnected] = func(h DisplayHeader, _ *Raw) Event { return &DisplayDisconnectedEvent{h} }
	}
	if d.features.Has(feature.DisplayMoved) {
		d.displays[DisplayMoved] = func(h DisplayHeader, _ *Raw) Event { return &DisplayMovedEvent{h} }
	}
}

// wheelArm picks the one wheel layout the feature set describes. Layouts are
// cumulative, so the newest enabled one wins.
func wheelArm(fs feature.Set) decodeFunc {
	var fn func(*Raw, Common) *MouseWheelEvent
	switch {
	case fs.Has(feature.WheelMousePosition):
		fn = decodeWheelPosition
	case fs.Has(feature.PreciseWheel):
		fn = decodeWheelPrecise
	case fs.Has(feature.WheelDirection):
		fn = decodeWheelDirection
	default:
		fn = decodeWheelBase
	}
	return func(rec *Record, c Common) Event { return fn(&rec.Raw, c) }
}

// dropArm gives drop_file an arm at every level. The other drop codes only get
// arms with drop_extended; below it they fall to UnknownEvent rather than
// being decoded as a file drop.
func dropArm(fs feature.Set) decodeFunc {
	window := fs.Has(feature.DropExtended)
	arms := map[Type]decodeFunc{
		TypeDropFile: func(rec *Record, c Common) Event { return &DropFileEvent{decodeDrop(rec, c, window)} },
	}
	if window {
		arms[TypeDropText] = func(rec *Record, c Common) Event { return &DropTextEvent{decodeDrop(rec, c, true)} }
		arms[TypeDropBegin] = func(rec *Record, c Common) Event { return &DropBeginEvent{decodeDrop(rec, c, true)} }
		arms[TypeDropComplete] = func(rec *Record, c Common) Event { return &DropCompleteEvent{decodeDrop(rec, c, true)} }
	}
	return byType(arms)
}

// byType dispatches on the exact type code within a category.
func byType(arms map[Type]decodeFunc) decodeFunc {
	return func(rec *Record, c Common) Event {
		if fn, ok := arms[rec.Raw.Type()]; ok {
			return fn(rec, c)
		}
		return nil
	}
}

// raw adapts a decoder that only needs the fixed bytes.
func raw(fn func(*Raw, Common) Event) decodeFunc {
	return func(rec *Record, c Common) Event { return fn(&rec.Raw, c) }
}
