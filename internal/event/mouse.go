package event

const (
	offMotionWindowID = 8
	offMotionWhich    = 12
	offMotionState    = 16
	offMotionX        = 20
	offMotionY        = 24
	offMotionXRel     = 28
	offMotionYRel     = 32

	offButtonWindowID = 8
	offButtonWhich    = 12
	offButtonButton   = 16
	offButtonState    = 17
	offButtonClicks   = 18
	offButtonX        = 20
	offButtonY        = 24

	offWheelWindowID  = 8
	offWheelWhich     = 12
	offWheelX         = 16
	offWheelY         = 20
	offWheelDirection = 24
	offWheelPreciseX  = 28
	offWheelPreciseY  = 32
	offWheelMouseX    = 36
	offWheelMouseY    = 40
)

// TouchMouseID is the Which value of mouse events synthesised from touch input.
const TouchMouseID uint32 = 0xFFFFFFFF

// Mouse buttons.
const (
	ButtonLeft uint8 = 1 + iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

type MouseMotionEvent struct {
	Common
	WindowID uint32 `json:"window_id"`
	Which    uint32 `json:"which"`
	State    uint32 `json:"state"`
	Position Point  `json:"position"`
	XRel     int32  `json:"xrel"`
	YRel     int32  `json:"yrel"`
}

func (*MouseMotionEvent) Type() Type { return TypeMouseMotion }

func (e *MouseMotionEvent) String() string {
	return render("MouseMotion", e.Common, "window", e.WindowID, "which", e.Which,
		"state", e.State, "position", e.Position, "rel", Point{e.XRel, e.YRel})
}

func (e *MouseMotionEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeMouseMotion)
	rec.Raw.putU32(offMotionWindowID, e.WindowID)
	rec.Raw.putU32(offMotionWhich, e.Which)
	rec.Raw.putU32(offMotionState, e.State)
	rec.Raw.putI32(offMotionX, e.Position.X)
	rec.Raw.putI32(offMotionY, e.Position.Y)
	rec.Raw.putI32(offMotionXRel, e.XRel)
	rec.Raw.putI32(offMotionYRel, e.YRel)
}

func decodeMouseMotion(r *Raw, c Common) Event {
	return &MouseMotionEvent{
		Common:   c,
		WindowID: r.u32(offMotionWindowID),
		Which:    r.u32(offMotionWhich),
		State:    r.u32(offMotionState),
		Position: Point{r.i32(offMotionX), r.i32(offMotionY)},
		XRel:     r.i32(offMotionXRel),
		YRel:     r.i32(offMotionYRel),
	}
}

// MouseButton is the payload shared by button down and button up.
// Clicks is zero below the button_clicks feature level.
type MouseButton struct {
	Common
	WindowID uint32 `json:"window_id"`
	Which    uint32 `json:"which"`
	Button   uint8  `json:"button"`
	Clicks   uint8  `json:"clicks"`
	Position Point  `json:"position"`
}

func (b MouseButton) put(rec *Record, t Type, state uint8) {
	rec.Raw.SetType(t)
	rec.Raw.putU32(offButtonWindowID, b.WindowID)
	rec.Raw.putU32(offButtonWhich, b.Which)
	rec.Raw.putU8(offButtonButton, b.Button)
	rec.Raw.putU8(offButtonState, state)
	rec.Raw.putU8(offButtonClicks, b.Clicks)
	rec.Raw.putI32(offButtonX, b.Position.X)
	rec.Raw.putI32(offButtonY, b.Position.Y)
}

func (b MouseButton) render(name string) string {
	return render(name, b.Common, "window", b.WindowID, "which", b.Which,
		"button", b.Button, "clicks", b.Clicks, "position", b.Position)
}

func decodeMouseButton(r *Raw, c Common, withClicks bool) MouseButton {
	b := MouseButton{
		Common:   c,
		WindowID: r.u32(offButtonWindowID),
		Which:    r.u32(offButtonWhich),
		Button:   r.u8(offButtonButton),
		Position: Point{r.i32(offButtonX), r.i32(offButtonY)},
	}
	if withClicks {
		b.Clicks = r.u8(offButtonClicks)
	}
	return b
}

type MouseButtonDownEvent struct{ MouseButton }

func (*MouseButtonDownEvent) Type() Type           { return TypeMouseButtonDown }
func (e *MouseButtonDownEvent) String() string     { return e.render("MouseButtonDown") }
func (e *MouseButtonDownEvent) encode(rec *Record) { e.put(rec, TypeMouseButtonDown, Pressed) }

type MouseButtonUpEvent struct{ MouseButton }

func (*MouseButtonUpEvent) Type() Type           { return TypeMouseButtonUp }
func (e *MouseButtonUpEvent) String() string     { return e.render("MouseButtonUp") }
func (e *MouseButtonUpEvent) encode(rec *Record) { e.put(rec, TypeMouseButtonUp, Released) }

// MouseWheelEvent has one layout per feature level. Fields the configured
// level does not define are left zero by the decoder: Direction needs
// wheel_direction, PreciseX/PreciseY need precise_wheel, and Mouse needs
// wheel_mouse_position.
type MouseWheelEvent struct {
	Common
	WindowID  uint32              `json:"window_id"`
	Which     uint32              `json:"which"`
	X         int32               `json:"x"`
	Y         int32               `json:"y"`
	Direction MouseWheelDirection `json:"direction"`
	PreciseX  float32             `json:"precise_x"`
	PreciseY  float32             `json:"precise_y"`
	Mouse     Point               `json:"mouse"`
}

func (*MouseWheelEvent) Type() Type { return TypeMouseWheel }

func (e *MouseWheelEvent) String() string {
	return render("MouseWheel", e.Common, "window", e.WindowID, "which", e.Which,
		"delta", Point{e.X, e.Y}, "direction", e.Direction,
		"precise", [2]float32{e.PreciseX, e.PreciseY}, "mouse", e.Mouse)
}

func (e *MouseWheelEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeMouseWheel)
	rec.Raw.putU32(offWheelWindowID, e.WindowID)
	rec.Raw.putU32(offWheelWhich, e.Which)
	rec.Raw.putI32(offWheelX, e.X)
	rec.Raw.putI32(offWheelY, e.Y)
	rec.Raw.putU32(offWheelDirection, uint32(e.Direction))
	rec.Raw.putF32(offWheelPreciseX, e.PreciseX)
	rec.Raw.putF32(offWheelPreciseY, e.PreciseY)
	rec.Raw.putI32(offWheelMouseX, e.Mouse.X)
	rec.Raw.putI32(offWheelMouseY, e.Mouse.Y)
}

// decodeWheelBase reads the 2.0.0 layout: window, which and integer deltas.
func decodeWheelBase(r *Raw, c Common) *MouseWheelEvent {
	return &MouseWheelEvent{
		Common:   c,
		WindowID: r.u32(offWheelWindowID),
		Which:    r.u32(offWheelWhich),
		X:        r.i32(offWheelX),
		Y:        r.i32(offWheelY),
	}
}

func decodeWheelDirection(r *Raw, c Common) *MouseWheelEvent {
	e := decodeWheelBase(r, c)
	e.Direction = MouseWheelDirection(r.u32(offWheelDirection))
	return e
}

func decodeWheelPrecise(r *Raw, c Common) *MouseWheelEvent {
	e := decodeWheelDirection(r, c)
	e.PreciseX = r.f32(offWheelPreciseX)
	e.PreciseY = r.f32(offWheelPreciseY)
	return e
}

func decodeWheelPosition(r *Raw, c Common) *MouseWheelEvent {
	e := decodeWheelPrecise(r, c)
	e.Mouse = Point{r.i32(offWheelMouseX), r.i32(offWheelMouseY)}
	return e
}
