package event

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
)

func level(t *testing.T, s string) feature.Set {
	t.Helper()
	l, err := feature.ParseLevel(s)
	require.NoError(t, err)
	return l.Set
}

// sampleEvents returns one populated value of every variant.
func sampleEvents() []Event {
	c := Common{Timestamp: 4242}
	wh := WindowHeader{Common: c, WindowID: 3}
	dh := DisplayHeader{Common: c, Display: 1}
	key := Key{Common: c, WindowID: 2, Repeat: 1, Keysym: Keysym{Scancode: 4, Sym: 'a', Mod: 0x40}}
	btn := MouseButton{Common: c, WindowID: 2, Which: 0, Button: ButtonLeft, Clicks: 2, Position: Point{10, 20}}
	jb := JoyButton{Common: c, Which: 5, Button: 9}
	jd := JoyDevice{Common: c, Which: 1}
	tp := ControllerTouchpad{Common: c, Which: 5, Touchpad: 0, Finger: 1, X: 0.25, Y: 0.75, Pressure: 1}
	tf := TouchFinger{Common: c, TouchID: 11, FingerID: 12, X: 0.5, Y: 0.5, DX: 0.125, DY: -0.125, Pressure: 0.5, WindowID: 2}
	dg := DollarGesture{Common: c, TouchID: 11, GestureID: 99, NumFingers: 2, Error: 0.5, X: 0.25, Y: 0.5}
	ad := AudioDevice{Common: c, Which: 2, IsCapture: true}

	return []Event{
		&QuitEvent{c},
		&AppTerminatingEvent{c},
		&AppLowMemoryEvent{c},
		&AppWillEnterBackgroundEvent{c},
		&AppDidEnterBackgroundEvent{c},
		&AppWillEnterForegroundEvent{c},
		&AppDidEnterForegroundEvent{c},
		&LocaleChangedEvent{c},
		&DisplayOrientationEvent{dh, OrientationPortrait},
		&DisplayConnectedEvent{dh},
		&DisplayDisconnectedEvent{dh},
		&DisplayMovedEvent{dh},
		&WindowShownEvent{wh},
		&WindowHiddenEvent{wh},
		&WindowExposedEvent{wh},
		&WindowMovedEvent{wh, Point{-5, 40}},
		&WindowResizedEvent{wh, Size{800, 600}},
		&WindowSizeChangedEvent{wh, Size{640, 480}},
		&WindowMinimizedEvent{wh},
		&WindowMaximizedEvent{wh},
		&WindowRestoredEvent{wh},
		&WindowEnterEvent{wh},
		&WindowLeaveEvent{wh},
		&WindowFocusGainedEvent{wh},
		&WindowFocusLostEvent{wh},
		&WindowCloseEvent{wh},
		&WindowTakeFocusEvent{wh},
		&WindowHitTestEvent{wh},
		&WindowICCProfChangedEvent{wh},
		&WindowDisplayChangedEvent{wh, 1},
		&SysWMEvent{c, 0xdeadbeef},
		&KeyDownEvent{key},
		&KeyUpEvent{key},
		&KeymapChangedEvent{c},
		&TextEditingEvent{Common: c, WindowID: 2, Text: "にほ", Start: 1, Length: 2},
		&TextInputEvent{Common: c, WindowID: 2, Text: "hello"},
		&TextEditingExtEvent{Common: c, WindowID: 2, Text: strings.Repeat("x", 80), Start: 3, Length: 4},
		&MouseMotionEvent{Common: c, WindowID: 2, Which: 0, State: 1, Position: Point{100, 200}, XRel: -1, YRel: 2},
		&MouseButtonDownEvent{btn},
		&MouseButtonUpEvent{btn},
		&MouseWheelEvent{Common: c, WindowID: 2, X: 0, Y: 1, Direction: WheelFlipped, PreciseX: 0, PreciseY: 1.5, Mouse: Point{30, 40}},
		&JoyAxisEvent{Common: c, Which: 5, Axis: 1, Value: -32768},
		&JoyBallEvent{Common: c, Which: 5, Ball: 0, XRel: 3, YRel: -3},
		&JoyHatEvent{Common: c, Which: 5, Hat: 0, Value: 0x02},
		&JoyButtonDownEvent{jb},
		&JoyButtonUpEvent{jb},
		&JoyDeviceAddedEvent{jd},
		&JoyDeviceRemovedEvent{jd},
		&JoyBatteryEvent{Common: c, Which: 5, Level: BatteryLow},
		&ControllerAxisEvent{Common: c, Which: 5, Axis: 4, Value: 32767},
		&ControllerButtonDownEvent{jb},
		&ControllerButtonUpEvent{jb},
		&ControllerDeviceAddedEvent{jd},
		&ControllerDeviceRemovedEvent{jd},
		&ControllerDeviceRemappedEvent{jd},
		&ControllerTouchpadDownEvent{tp},
		&ControllerTouchpadMotionEvent{tp},
		&ControllerTouchpadUpEvent{tp},
		&ControllerSensorEvent{Common: c, Which: 5, Sensor: 2, Data: [3]float32{1, 2, 3}, TimestampUS: 123456},
		&FingerDownEvent{tf},
		&FingerUpEvent{tf},
		&FingerMotionEvent{tf},
		&DollarGestureEvent{dg},
		&DollarRecordEvent{dg},
		&MultiGestureEvent{Common: c, TouchID: 11, DTheta: 0.5, DDist: 0.25, X: 0.5, Y: 0.5, NumFingers: 2},
		&ClipboardUpdateEvent{c},
		&DropFileEvent{Drop{Common: c, File: "/tmp/a b.png", WindowID: 2}},
		&DropTextEvent{Drop{Common: c, File: "dragged text", WindowID: 2}},
		&DropBeginEvent{Drop{Common: c, WindowID: 2}},
		&DropCompleteEvent{Drop{Common: c, WindowID: 2}},
		&AudioDeviceAddedEvent{ad},
		&AudioDeviceRemovedEvent{ad},
		&SensorEvent{Common: c, Which: 1, Data: [6]float32{1, 2, 3, 4, 5, 6}, TimestampUS: 654321},
		&RenderTargetsResetEvent{c},
		&RenderDeviceResetEvent{c},
		&PollSentinelEvent{c},
		&UserEvent{Common: c, UserType: TypeUser + 3, WindowID: 2, Code: 7, Data1: 1, Data2: 2},
	}
}

func TestRoundTripAtLatest(t *testing.T) {
	d := NewDecoder(feature.Latest().Set)
	for _, want := range sampleEvents() {
		t.Run(want.Type().String(), func(t *testing.T) {
			got := d.Decode(Encode(want))
			if diff := deep.Equal(got, want); diff != nil {
				t.Errorf("round trip of %s: %v", want, diff)
			}
		})
	}
}

func TestEncodeWritesDiscriminant(t *testing.T) {
	for _, e := range sampleEvents() {
		rec := Encode(e)
		assert.Equal(t, e.Type(), rec.Raw.Type(), "%T", e)
		assert.Equal(t, e.Ticks(), rec.Raw.Timestamp(), "%T", e)
		switch v := e.(type) {
		case WindowEvent:
			assert.Equal(t, uint8(v.WindowEventID()), rec.Raw[offWindowEvent], "%T", e)
		case DisplayEvent:
			assert.Equal(t, uint8(v.DisplayEventID()), rec.Raw[offDisplayEvent], "%T", e)
		}
		assert.NotEqual(t, CategoryUnknown, CategoryOfEvent(e), "%T", e)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	for _, lvl := range []string{"2.0.0", "2.0.4", "2.0.18", "2.28.0"} {
		t.Run(lvl, func(t *testing.T) {
			d := NewDecoder(level(t, lvl))
			for code := uint32(0); code <= 0x10000; code++ {
				var rec Record
				rec.Raw.SetType(Type(code))
				rec.Raw.SetTimestamp(code)
				rec.Raw[offWindowEvent] = uint8(code)

				e := d.Decode(rec)
				require.NotNil(t, e, "code %#x", code)
				assert.Equal(t, code, e.Ticks())
				if u, ok := e.(*UnknownEvent); ok {
					assert.Equal(t, rec.Raw, u.Raw)
					continue
				}
				assert.Equal(t, Type(code), e.Type(), "code %#x decoded to %T", code, e)
			}
		})
	}
}

func TestDecodeWindowResized(t *testing.T) {
	var rec Record
	rec.Raw.SetType(TypeWindowEvent)
	rec.Raw.SetTimestamp(1000)
	rec.Raw.putU32(offWindowID, 7)
	rec.Raw.putU8(offWindowEvent, uint8(WindowResized))
	rec.Raw.putI32(offWindowData1, 800)
	rec.Raw.putI32(offWindowData2, 600)

	e := NewDecoder(feature.Baseline().Set).Decode(rec)

	resized, ok := e.(*WindowResizedEvent)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, uint32(7), resized.Window())
	assert.Equal(t, Size{800, 600}, resized.Size)
	assert.Equal(t, uint32(1000), resized.Ticks())
	assert.Equal(t, CategoryWindow, CategoryOfEvent(e))
}

func TestDecodeWindowSubcodes(t *testing.T) {
	cases := []struct {
		name  string
		level string
		id    WindowEventID
		known bool
	}{
		{"none is unknown", "2.28.0", WindowNone, false},
		{"out of range", "2.28.0", 200, false},
		{"shown at baseline", "2.0.0", WindowShown, true},
		{"take focus before introduced", "2.0.4", WindowTakeFocus, false},
		{"take focus", "2.0.5", WindowTakeFocus, true},
		{"hit test", "2.0.5", WindowHitTest, true},
		{"display changed before introduced", "2.0.14", WindowDisplayChanged, false},
		{"display changed", "2.0.18", WindowDisplayChanged, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rec Record
			rec.Raw.SetType(TypeWindowEvent)
			rec.Raw.putU8(offWindowEvent, uint8(tc.id))

			e := NewDecoder(level(t, tc.level)).Decode(rec)
			if !tc.known {
				assert.IsType(t, &UnknownEvent{}, e)
				return
			}
			w, ok := e.(WindowEvent)
			require.True(t, ok, "got %T", e)
			assert.Equal(t, tc.id, w.WindowEventID())
		})
	}
}

func TestDecodeDisplayGating(t *testing.T) {
	cases := []struct {
		level string
		id    DisplayEventID
		known bool
	}{
		{"2.0.5", DisplayOrientation, false},
		{"2.0.9", DisplayOrientation, true},
		{"2.0.9", DisplayConnected, false},
		{"2.0.14", DisplayConnected, true},
		{"2.0.14", DisplayDisconnected, true},
		{"2.26.0", DisplayMoved, false},
		{"2.28.0", DisplayMoved, true},
		{"2.28.0", DisplayNone, false},
	}
	for _, tc := range cases {
		var rec Record
		rec.Raw.SetType(TypeDisplayEvent)
		rec.Raw.putU8(offDisplayEvent, uint8(tc.id))

		e := NewDecoder(level(t, tc.level)).Decode(rec)
		_, known := e.(DisplayEvent)
		assert.Equal(t, tc.known, known, "%s at %s", tc.id, tc.level)
	}
}

func wheelRecord() Record {
	var rec Record
	rec.Raw.SetType(TypeMouseWheel)
	rec.Raw.putU32(offWheelWindowID, 2)
	rec.Raw.putI32(offWheelY, 1)
	rec.Raw.putU32(offWheelDirection, uint32(WheelFlipped))
	rec.Raw.putF32(offWheelPreciseY, 1.5)
	rec.Raw.putI32(offWheelMouseX, 30)
	rec.Raw.putI32(offWheelMouseY, 40)
	return rec
}

func TestDecodeWheelLayouts(t *testing.T) {
	cases := []struct {
		level string
		want  MouseWheelEvent
	}{
		{"2.0.0", MouseWheelEvent{WindowID: 2, Y: 1}},
		{"2.0.4", MouseWheelEvent{WindowID: 2, Y: 1, Direction: WheelFlipped}},
		{"2.0.18", MouseWheelEvent{WindowID: 2, Y: 1, Direction: WheelFlipped, PreciseY: 1.5}},
		{"2.26.0", MouseWheelEvent{WindowID: 2, Y: 1, Direction: WheelFlipped, PreciseY: 1.5, Mouse: Point{30, 40}}},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			e := NewDecoder(level(t, tc.level)).Decode(wheelRecord())
			got, ok := e.(*MouseWheelEvent)
			require.True(t, ok, "got %T", e)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestDecodeWheelIgnoresPreciseWhenDisabled(t *testing.T) {
	fs := feature.Latest().Without(feature.PreciseWheel, feature.WheelMousePosition).Set
	got := NewDecoder(fs).Decode(wheelRecord()).(*MouseWheelEvent)
	assert.Zero(t, got.PreciseY)
	assert.Equal(t, WheelFlipped, got.Direction)
}

func TestDecodeMouseButtonClicks(t *testing.T) {
	rec := Encode(&MouseButtonDownEvent{MouseButton{Button: ButtonRight, Clicks: 2}})

	got := NewDecoder(level(t, "2.0.0")).Decode(rec).(*MouseButtonDownEvent)
	assert.Zero(t, got.Clicks)
	assert.Equal(t, ButtonRight, got.Button)

	got = NewDecoder(level(t, "2.0.2")).Decode(rec).(*MouseButtonDownEvent)
	assert.Equal(t, uint8(2), got.Clicks)
}

func TestDecodeFingerWindow(t *testing.T) {
	rec := Encode(&FingerDownEvent{TouchFinger{FingerID: 1, WindowID: 9}})

	got := NewDecoder(level(t, "2.0.9")).Decode(rec).(*FingerDownEvent)
	assert.Zero(t, got.WindowID)

	got = NewDecoder(level(t, "2.0.12")).Decode(rec).(*FingerDownEvent)
	assert.Equal(t, uint32(9), got.WindowID)
}

func TestDecodeSensorTimestamp(t *testing.T) {
	rec := Encode(&SensorEvent{Which: 1, Data: [6]float32{9.8}, TimestampUS: 77})

	got := NewDecoder(level(t, "2.24.0")).Decode(rec).(*SensorEvent)
	assert.Zero(t, got.TimestampUS)
	assert.Equal(t, float32(9.8), got.Data[0])

	got = NewDecoder(level(t, "2.26.0")).Decode(rec).(*SensorEvent)
	assert.Equal(t, uint64(77), got.TimestampUS)
}

func countingRecord(t Type, text string, released *int) Record {
	var rec Record
	rec.Raw.SetType(t)
	rec.Raw.putU32(offDropWindowID, 4)
	rec.Owned = NewOwned(text, func() { *released++ })
	return rec
}

func TestDecodeDropBelowExtended(t *testing.T) {
	d := NewDecoder(level(t, "2.0.4"))

	var released int
	e := d.Decode(countingRecord(TypeDropFile, "/tmp/f", &released))
	file, ok := e.(*DropFileEvent)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, "/tmp/f", file.File)
	assert.Zero(t, file.WindowID, "window id is not part of the layout below drop_extended")
	assert.Equal(t, 1, released)

	for _, typ := range []Type{TypeDropText, TypeDropBegin, TypeDropComplete} {
		released = 0
		e := d.Decode(countingRecord(typ, "payload", &released))
		assert.IsType(t, &UnknownEvent{}, e, "%s", typ)
		assert.Equal(t, typ, e.Type())
		assert.Equal(t, 1, released, "%s payload must be released on the unknown path", typ)
	}
}

func TestDecodeDropExtended(t *testing.T) {
	d := NewDecoder(level(t, "2.0.5"))

	var released int
	e := d.Decode(countingRecord(TypeDropText, "hello", &released))
	text, ok := e.(*DropTextEvent)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, "hello", text.File)
	assert.Equal(t, uint32(4), text.WindowID)
	assert.Equal(t, 1, released)
}

func TestDecodeReleasesOwnedOnce(t *testing.T) {
	var released int
	rec := Record{Owned: NewOwned(strings.Repeat("composition ", 5), func() { released++ })}
	rec.Raw.SetType(TypeTextEditingExt)

	e := NewDecoder(level(t, "2.0.22")).Decode(rec)
	ext, ok := e.(*TextEditingExtEvent)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, strings.Repeat("composition ", 5), ext.Text)
	assert.True(t, rec.Owned.Released())

	rec.Release()
	assert.Equal(t, 1, released)

	released = 0
	rec = Record{Owned: NewOwned("x", func() { released++ })}
	rec.Raw.SetType(TypeTextEditingExt)
	assert.IsType(t, &UnknownEvent{}, NewDecoder(level(t, "2.0.18")).Decode(rec))
	assert.Equal(t, 1, released)
}

func TestDecodeUnknownKeepsBytes(t *testing.T) {
	var rec Record
	for i := range rec.Raw {
		rec.Raw[i] = byte(i)
	}
	rec.Raw.SetType(0x7777)

	e := NewDecoder(feature.Latest().Set).Decode(rec)
	u, ok := e.(*UnknownEvent)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, Type(0x7777), u.Code)
	assert.Equal(t, rec.Raw, u.Raw)
	assert.Equal(t, CategoryUnknown, CategoryOfEvent(u))

	again := Encode(u)
	assert.Equal(t, rec.Raw, again.Raw)
}

func TestDecodeUserRange(t *testing.T) {
	d := NewDecoder(feature.Baseline().Set)
	for _, code := range []Type{TypeUser, TypeUser + 1, TypeLast - 1} {
		var rec Record
		rec.Raw.SetType(code)
		rec.Raw.putI32(offUserCode, 17)
		e, ok := d.Decode(rec).(*UserEvent)
		require.True(t, ok, "%#x", uint32(code))
		assert.Equal(t, code, e.Type())
		assert.Equal(t, int32(17), e.Code)
	}

	var rec Record
	rec.Raw.SetType(TypeLast)
	assert.IsType(t, &UnknownEvent{}, d.Decode(rec))
}

func TestTextIsTruncatedToInlineBuffer(t *testing.T) {
	long := strings.Repeat("abcdefgh", 5)
	rec := Encode(&TextInputEvent{Text: long})

	got := NewDecoder(feature.Baseline().Set).Decode(rec).(*TextInputEvent)
	assert.Equal(t, long[:TextSize-1], got.Text)
}

func TestTextTruncationKeepsRunesWhole(t *testing.T) {
	dec := NewDecoder(feature.Latest().Set)
	kana := strings.Repeat("に", 11)

	input := dec.Decode(Encode(&TextInputEvent{Text: kana})).(*TextInputEvent)
	assert.Equal(t, strings.Repeat("に", 10), input.Text)
	assert.True(t, utf8.ValidString(input.Text))

	editing := dec.Decode(Encode(&TextEditingEvent{Text: "a" + kana})).(*TextEditingEvent)
	assert.Equal(t, "a"+strings.Repeat("に", 10), editing.Text)
	assert.True(t, utf8.ValidString(editing.Text))
}

func TestUserTypeIsFoldedIntoUserRange(t *testing.T) {
	dec := NewDecoder(feature.Latest().Set)
	cases := []struct {
		name string
		in   Type
		want Type
	}{
		{"zero", 0, TypeUser},
		{"core code", TypeQuit, TypeUser + TypeQuit},
		{"last", TypeLast, TypeUser + 1},
		{"in range", TypeUser + 5, TypeUser + 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := &UserEvent{UserType: tc.in, Code: 3}
			require.Equal(t, tc.want, e.Type())
			assert.Equal(t, CategoryUser, CategoryOfEvent(e))

			rec := Encode(e)
			assert.Equal(t, tc.want, rec.Raw.Type())
			got, ok := dec.Decode(rec).(*UserEvent)
			require.True(t, ok)
			assert.Equal(t, tc.want, got.UserType)
			assert.Equal(t, int32(3), got.Code)
		})
	}
}

func TestSupports(t *testing.T) {
	base := NewDecoder(feature.Baseline().Set)
	latest := NewDecoder(feature.Latest().Set)

	assert.True(t, base.Supports(TypeKeyDown))
	assert.True(t, base.Supports(TypeDropFile))
	assert.False(t, base.Supports(TypeDropText))
	assert.False(t, base.Supports(TypeDisplayEvent))
	assert.False(t, base.Supports(TypePollSentinel))
	assert.False(t, base.Supports(0x1234))

	assert.True(t, latest.Supports(TypeDropText))
	assert.True(t, latest.Supports(TypeDisplayEvent))
	assert.True(t, latest.Supports(TypeUser+9))
	assert.Equal(t, feature.Latest().Set, latest.Features())
}

func TestStringIncludesFields(t *testing.T) {
	e := &WindowResizedEvent{WindowHeader{Common{5}, 7}, Size{800, 600}}
	assert.Equal(t, "Window{ts=5 event=resized window=7 size=800x600}", e.String())
}
