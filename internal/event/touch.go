package event

const (
	offFingerTouchID  = 8
	offFingerID       = 16
	offFingerX        = 24
	offFingerY        = 28
	offFingerDX       = 32
	offFingerDY       = 36
	offFingerPressure = 40
	offFingerWindowID = 44

	offMultiTouchID    = 8
	offMultiDTheta     = 16
	offMultiDDist      = 20
	offMultiX          = 24
	offMultiY          = 28
	offMultiNumFingers = 32

	offDollarTouchID    = 8
	offDollarGestureID  = 16
	offDollarNumFingers = 24
	offDollarError      = 28
	offDollarX          = 32
	offDollarY          = 36
)

type (
	TouchID   int64
	FingerID  int64
	GestureID int64
)

// TouchFinger is the payload shared by finger down, up and motion.
// Coordinates are normalised to [0,1]. WindowID needs finger_window_id.
type TouchFinger struct {
	Common
	TouchID  TouchID  `json:"touch_id"`
	FingerID FingerID `json:"finger_id"`
	X        float32  `json:"x"`
	Y        float32  `json:"y"`
	DX       float32  `json:"dx"`
	DY       float32  `json:"dy"`
	Pressure float32  `json:"pressure"`
	WindowID uint32   `json:"window_id"`
}

func (f TouchFinger) put(rec *Record, t Type) {
	rec.Raw.SetType(t)
	rec.Raw.putI64(offFingerTouchID, int64(f.TouchID))
	rec.Raw.putI64(offFingerID, int64(f.FingerID))
	rec.Raw.putF32(offFingerX, f.X)
	rec.Raw.putF32(offFingerY, f.Y)
	rec.Raw.putF32(offFingerDX, f.DX)
	rec.Raw.putF32(offFingerDY, f.DY)
	rec.Raw.putF32(offFingerPressure, f.Pressure)
	rec.Raw.putU32(offFingerWindowID, f.WindowID)
}

func (f TouchFinger) render(name string) string {
	return render(name, f.Common, "touch", f.TouchID, "finger", f.FingerID,
		"x", f.X, "y", f.Y, "dx", f.DX, "dy", f.DY, "pressure", f.Pressure, "window", f.WindowID)
}

func decodeTouchFinger(r *Raw, c Common, withWindow bool) TouchFinger {
	f := TouchFinger{
		Common:   c,
		TouchID:  TouchID(r.i64(offFingerTouchID)),
		FingerID: FingerID(r.i64(offFingerID)),
		X:        r.f32(offFingerX),
		Y:        r.f32(offFingerY),
		DX:       r.f32(offFingerDX),
		DY:       r.f32(offFingerDY),
		Pressure: r.f32(offFingerPressure),
	}
	if withWindow {
		f.WindowID = r.u32(offFingerWindowID)
	}
	return f
}

type FingerDownEvent struct{ TouchFinger }

func (*FingerDownEvent) Type() Type           { return TypeFingerDown }
func (e *FingerDownEvent) String() string     { return e.render("FingerDown") }
func (e *FingerDownEvent) encode(rec *Record) { e.put(rec, TypeFingerDown) }

type FingerUpEvent struct{ TouchFinger }

func (*FingerUpEvent) Type() Type           { return TypeFingerUp }
func (e *FingerUpEvent) String() string     { return e.render("FingerUp") }
func (e *FingerUpEvent) encode(rec *Record) { e.put(rec, TypeFingerUp) }

type FingerMotionEvent struct{ TouchFinger }

func (*FingerMotionEvent) Type() Type           { return TypeFingerMotion }
func (e *FingerMotionEvent) String() string     { return e.render("FingerMotion") }
func (e *FingerMotionEvent) encode(rec *Record) { e.put(rec, TypeFingerMotion) }

type MultiGestureEvent struct {
	Common
	TouchID    TouchID `json:"touch_id"`
	DTheta     float32 `json:"dtheta"`
	DDist      float32 `json:"ddist"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	NumFingers uint16  `json:"num_fingers"`
}

func (*MultiGestureEvent) Type() Type { return TypeMultiGesture }

func (e *MultiGestureEvent) String() string {
	return render("MultiGesture", e.Common, "touch", e.TouchID, "dtheta", e.DTheta,
		"ddist", e.DDist, "x", e.X, "y", e.Y, "fingers", e.NumFingers)
}

func (e *MultiGestureEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeMultiGesture)
	rec.Raw.putI64(offMultiTouchID, int64(e.TouchID))
	rec.Raw.putF32(offMultiDTheta, e.DTheta)
	rec.Raw.putF32(offMultiDDist, e.DDist)
	rec.Raw.putF32(offMultiX, e.X)
	rec.Raw.putF32(offMultiY, e.Y)
	rec.Raw.putU16(offMultiNumFingers, e.NumFingers)
}

func decodeMultiGesture(r *Raw, c Common) Event {
	return &MultiGestureEvent{
		Common:     c,
		TouchID:    TouchID(r.i64(offMultiTouchID)),
		DTheta:     r.f32(offMultiDTheta),
		DDist:      r.f32(offMultiDDist),
		X:          r.f32(offMultiX),
		Y:          r.f32(offMultiY),
		NumFingers: r.u16(offMultiNumFingers),
	}
}

// DollarGesture is the payload shared by a recognised gesture and a newly
// recorded template.
type DollarGesture struct {
	Common
	TouchID    TouchID   `json:"touch_id"`
	GestureID  GestureID `json:"gesture_id"`
	NumFingers uint32    `json:"num_fingers"`
	Error      float32   `json:"error"`
	X          float32   `json:"x"`
	Y          float32   `json:"y"`
}

func (g DollarGesture) put(rec *Record, t Type) {
	rec.Raw.SetType(t)
	rec.Raw.putI64(offDollarTouchID, int64(g.TouchID))
	rec.Raw.putI64(offDollarGestureID, int64(g.GestureID))
	rec.Raw.putU32(offDollarNumFingers, g.NumFingers)
	rec.Raw.putF32(offDollarError, g.Error)
	rec.Raw.putF32(offDollarX, g.X)
	rec.Raw.putF32(offDollarY, g.Y)
}

func (g DollarGesture) render(name string) string {
	return render(name, g.Common, "touch", g.TouchID, "gesture", g.GestureID,
		"fingers", g.NumFingers, "error", g.Error, "x", g.X, "y", g.Y)
}

func decodeDollarGesture(r *Raw, c Common) DollarGesture {
	return DollarGesture{
		Common:     c,
		TouchID:    TouchID(r.i64(offDollarTouchID)),
		GestureID:  GestureID(r.i64(offDollarGestureID)),
		NumFingers: r.u32(offDollarNumFingers),
		Error:      r.f32(offDollarError),
		X:          r.f32(offDollarX),
		Y:          r.f32(offDollarY),
	}
}

type DollarGestureEvent struct{ DollarGesture }

func (*DollarGestureEvent) Type() Type           { return TypeDollarGesture }
func (e *DollarGestureEvent) String() string     { return e.render("DollarGesture") }
func (e *DollarGestureEvent) encode(rec *Record) { e.put(rec, TypeDollarGesture) }

type DollarRecordEvent struct{ DollarGesture }

func (*DollarRecordEvent) Type() Type           { return TypeDollarRecord }
func (e *DollarRecordEvent) String() string     { return e.render("DollarRecord") }
func (e *DollarRecordEvent) encode(rec *Record) { e.put(rec, TypeDollarRecord) }
