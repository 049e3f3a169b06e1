package event

// Joystick and game controller payloads all start with the instance id.
const (
	offJoyWhich = 8

	offJoyAxis      = 12
	offJoyAxisValue = 16

	offJoyBall     = 12
	offJoyBallXRel = 16
	offJoyBallYRel = 18

	offJoyHat      = 12
	offJoyHatValue = 13

	offJoyButton      = 12
	offJoyButtonState = 13

	offJoyBatteryLevel = 12

	offTouchpad         = 12
	offTouchpadFinger   = 16
	offTouchpadX        = 20
	offTouchpadY        = 24
	offTouchpadPressure = 28

	offCSensor          = 12
	offCSensorData      = 16
	offCSensorTimestamp = 32
)

// JoystickID is the instance id of an opened joystick or controller. For
// device-added events it is the device index instead.
type JoystickID int32

type JoyAxisEvent struct {
	Common
	Which JoystickID `json:"which"`
	Axis  uint8      `json:"axis"`
	Value int16      `json:"value"`
}

func (*JoyAxisEvent) Type() Type { return TypeJoyAxisMotion }

func (e *JoyAxisEvent) String() string {
	return render("JoyAxis", e.Common, "which", e.Which, "axis", e.Axis, "value", e.Value)
}

func (e *JoyAxisEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeJoyAxisMotion)
	rec.Raw.putI32(offJoyWhich, int32(e.Which))
	rec.Raw.putU8(offJoyAxis, e.Axis)
	rec.Raw.putI16(offJoyAxisValue, e.Value)
}

func decodeJoyAxis(r *Raw, c Common) Event {
	return &JoyAxisEvent{
		Common: c,
		Which:  JoystickID(r.i32(offJoyWhich)),
		Axis:   r.u8(offJoyAxis),
		Value:  r.i16(offJoyAxisValue),
	}
}

type JoyBallEvent struct {
	Common
	Which JoystickID `json:"which"`
	Ball  uint8      `json:"ball"`
	XRel  int16      `json:"xrel"`
	YRel  int16      `json:"yrel"`
}

func (*JoyBallEvent) Type() Type { return TypeJoyBallMotion }

func (e *JoyBallEvent) String() string {
	return render("JoyBall", e.Common, "which", e.Which, "ball", e.Ball, "xrel", e.XRel, "yrel", e.YRel)
}

func (e *JoyBallEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeJoyBallMotion)
	rec.Raw.putI32(offJoyWhich, int32(e.Which))
	rec.Raw.putU8(offJoyBall, e.Ball)
	rec.Raw.putI16(offJoyBallXRel, e.XRel)
	rec.Raw.putI16(offJoyBallYRel, e.YRel)
}

func decodeJoyBall(r *Raw, c Common) Event {
	return &JoyBallEvent{
		Common: c,
		Which:  JoystickID(r.i32(offJoyWhich)),
		Ball:   r.u8(offJoyBall),
		XRel:   r.i16(offJoyBallXRel),
		YRel:   r.i16(offJoyBallYRel),
	}
}

type JoyHatEvent struct {
	Common
	Which JoystickID `json:"which"`
	Hat   uint8      `json:"hat"`
	Value uint8      `json:"value"`
}

func (*JoyHatEvent) Type() Type { return TypeJoyHatMotion }

func (e *JoyHatEvent) String() string {
	return render("JoyHat", e.Common, "which", e.Which, "hat", e.Hat, "value", e.Value)
}

func (e *JoyHatEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeJoyHatMotion)
	rec.Raw.putI32(offJoyWhich, int32(e.Which))
	rec.Raw.putU8(offJoyHat, e.Hat)
	rec.Raw.putU8(offJoyHatValue, e.Value)
}

func decodeJoyHat(r *Raw, c Common) Event {
	return &JoyHatEvent{
		Common: c,
		Which:  JoystickID(r.i32(offJoyWhich)),
		Hat:    r.u8(offJoyHat),
		Value:  r.u8(offJoyHatValue),
	}
}

// JoyButton is shared by joystick and controller button events.
type JoyButton struct {
	Common
	Which  JoystickID `json:"which"`
	Button uint8      `json:"button"`
}

func (b JoyButton) put(rec *Record, t Type, state uint8) {
	rec.Raw.SetType(t)
	rec.Raw.putI32(offJoyWhich, int32(b.Which))
	rec.Raw.putU8(offJoyButton, b.Button)
	rec.Raw.putU8(offJoyButtonState, state)
}

func (b JoyButton) render(name string) string {
	return render(name, b.Common, "which", b.Which, "button", b.Button)
}

func decodeJoyButton(r *Raw, c Common) JoyButton {
	return JoyButton{Common: c, Which: JoystickID(r.i32(offJoyWhich)), Button: r.u8(offJoyButton)}
}

type JoyButtonDownEvent struct{ JoyButton }

func (*JoyButtonDownEvent) Type() Type           { return TypeJoyButtonDown }
func (e *JoyButtonDownEvent) String() string     { return e.render("JoyButtonDown") }
func (e *JoyButtonDownEvent) encode(rec *Record) { e.put(rec, TypeJoyButtonDown, Pressed) }

type JoyButtonUpEvent struct{ JoyButton }

func (*JoyButtonUpEvent) Type() Type           { return TypeJoyButtonUp }
func (e *JoyButtonUpEvent) String() string     { return e.render("JoyButtonUp") }
func (e *JoyButtonUpEvent) encode(rec *Record) { e.put(rec, TypeJoyButtonUp, Released) }

type ControllerButtonDownEvent struct{ JoyButton }

func (*ControllerButtonDownEvent) Type() Type       { return TypeControllerButtonDown }
func (e *ControllerButtonDownEvent) String() string { return e.render("ControllerButtonDown") }
func (e *ControllerButtonDownEvent) encode(rec *Record) {
	e.put(rec, TypeControllerButtonDown, Pressed)
}

type ControllerButtonUpEvent struct{ JoyButton }

func (*ControllerButtonUpEvent) Type() Type       { return TypeControllerButtonUp }
func (e *ControllerButtonUpEvent) String() string { return e.render("ControllerButtonUp") }
func (e *ControllerButtonUpEvent) encode(rec *Record) {
	e.put(rec, TypeControllerButtonUp, Released)
}

// JoyDevice is shared by joystick and controller hotplug events.
type JoyDevice struct {
	Common
	Which JoystickID `json:"which"`
}

func (d JoyDevice) put(rec *Record, t Type) {
	rec.Raw.SetType(t)
	rec.Raw.putI32(offJoyWhich, int32(d.Which))
}

func (d JoyDevice) render(name string) string {
	return render(name, d.Common, "which", d.Which)
}

func decodeJoyDevice(r *Raw, c Common) JoyDevice {
	return JoyDevice{Common: c, Which: JoystickID(r.i32(offJoyWhich))}
}

type JoyDeviceAddedEvent struct{ JoyDevice }

func (*JoyDeviceAddedEvent) Type() Type           { return TypeJoyDeviceAdded }
func (e *JoyDeviceAddedEvent) String() string     { return e.render("JoyDeviceAdded") }
func (e *JoyDeviceAddedEvent) encode(rec *Record) { e.put(rec, TypeJoyDeviceAdded) }

type JoyDeviceRemovedEvent struct{ JoyDevice }

func (*JoyDeviceRemovedEvent) Type() Type           { return TypeJoyDeviceRemoved }
func (e *JoyDeviceRemovedEvent) String() string     { return e.render("JoyDeviceRemoved") }
func (e *JoyDeviceRemovedEvent) encode(rec *Record) { e.put(rec, TypeJoyDeviceRemoved) }

type ControllerDeviceAddedEvent struct{ JoyDevice }

func (*ControllerDeviceAddedEvent) Type() Type           { return TypeControllerDeviceAdded }
func (e *ControllerDeviceAddedEvent) String() string     { return e.render("ControllerDeviceAdded") }
func (e *ControllerDeviceAddedEvent) encode(rec *Record) { e.put(rec, TypeControllerDeviceAdded) }

type ControllerDeviceRemovedEvent struct{ JoyDevice }

func (*ControllerDeviceRemovedEvent) Type() Type { return TypeControllerDeviceRemoved }
func (e *ControllerDeviceRemovedEvent) String() string {
	return e.render("ControllerDeviceRemoved")
}
func (e *ControllerDeviceRemovedEvent) encode(rec *Record) { e.put(rec, TypeControllerDeviceRemoved) }

type ControllerDeviceRemappedEvent struct{ JoyDevice }

func (*ControllerDeviceRemappedEvent) Type() Type { return TypeControllerDeviceRemapped }
func (e *ControllerDeviceRemappedEvent) String() string {
	return e.render("ControllerDeviceRemapped")
}
func (e *ControllerDeviceRemappedEvent) encode(rec *Record) {
	e.put(rec, TypeControllerDeviceRemapped)
}

type JoyBatteryEvent struct {
	Common
	Which JoystickID   `json:"which"`
	Level BatteryLevel `json:"level"`
}

func (*JoyBatteryEvent) Type() Type { return TypeJoyBatteryUpdated }

func (e *JoyBatteryEvent) String() string {
	return render("JoyBattery", e.Common, "which", e.Which, "level", e.Level)
}

func (e *JoyBatteryEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeJoyBatteryUpdated)
	rec.Raw.putI32(offJoyWhich, int32(e.Which))
	rec.Raw.putI32(offJoyBatteryLevel, int32(e.Level))
}

func decodeJoyBattery(r *Raw, c Common) Event {
	return &JoyBatteryEvent{
		Common: c,
		Which:  JoystickID(r.i32(offJoyWhich)),
		Level:  BatteryLevel(r.i32(offJoyBatteryLevel)),
	}
}

type ControllerAxisEvent struct {
	Common
	Which JoystickID `json:"which"`
	Axis  uint8      `json:"axis"`
	Value int16      `json:"value"`
}

func (*ControllerAxisEvent) Type() Type { return TypeControllerAxisMotion }

func (e *ControllerAxisEvent) String() string {
	return render("ControllerAxis", e.Common, "which", e.Which, "axis", e.Axis, "value", e.Value)
}

func (e *ControllerAxisEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeControllerAxisMotion)
	rec.Raw.putI32(offJoyWhich, int32(e.Which))
	rec.Raw.putU8(offJoyAxis, e.Axis)
	rec.Raw.putI16(offJoyAxisValue, e.Value)
}

func decodeControllerAxis(r *Raw, c Common) Event {
	return &ControllerAxisEvent{
		Common: c,
		Which:  JoystickID(r.i32(offJoyWhich)),
		Axis:   r.u8(offJoyAxis),
		Value:  r.i16(offJoyAxisValue),
	}
}

// ControllerTouchpad is shared by the three touchpad events.
type ControllerTouchpad struct {
	Common
	Which    JoystickID `json:"which"`
	Touchpad int32      `json:"touchpad"`
	Finger   int32      `json:"finger"`
	X        float32    `json:"x"`
	Y        float32    `json:"y"`
	Pressure float32    `json:"pressure"`
}

func (p ControllerTouchpad) put(rec *Record, t Type) {
	rec.Raw.SetType(t)
	rec.Raw.putI32(offJoyWhich, int32(p.Which))
	rec.Raw.putI32(offTouchpad, p.Touchpad)
	rec.Raw.putI32(offTouchpadFinger, p.Finger)
	rec.Raw.putF32(offTouchpadX, p.X)
	rec.Raw.putF32(offTouchpadY, p.Y)
	rec.Raw.putF32(offTouchpadPressure, p.Pressure)
}

func (p ControllerTouchpad) render(name string) string {
	return render(name, p.Common, "which", p.Which, "touchpad", p.Touchpad, "finger", p.Finger,
		"x", p.X, "y", p.Y, "pressure", p.Pressure)
}

func decodeControllerTouchpad(r *Raw, c Common) ControllerTouchpad {
	return ControllerTouchpad{
		Common:   c,
		Which:    JoystickID(r.i32(offJoyWhich)),
		Touchpad: r.i32(offTouchpad),
		Finger:   r.i32(offTouchpadFinger),
		X:        r.f32(offTouchpadX),
		Y:        r.f32(offTouchpadY),
		Pressure: r.f32(offTouchpadPressure),
	}
}

type ControllerTouchpadDownEvent struct{ ControllerTouchpad }

func (*ControllerTouchpadDownEvent) Type() Type { return TypeControllerTouchpadDown }
func (e *ControllerTouchpadDownEvent) String() string {
	return e.render("ControllerTouchpadDown")
}
func (e *ControllerTouchpadDownEvent) encode(rec *Record) { e.put(rec, TypeControllerTouchpadDown) }

type ControllerTouchpadMotionEvent struct{ ControllerTouchpad }

func (*ControllerTouchpadMotionEvent) Type() Type { return TypeControllerTouchpadMotion }
func (e *ControllerTouchpadMotionEvent) String() string {
	return e.render("ControllerTouchpadMotion")
}
func (e *ControllerTouchpadMotionEvent) encode(rec *Record) {
	e.put(rec, TypeControllerTouchpadMotion)
}

type ControllerTouchpadUpEvent struct{ ControllerTouchpad }

func (*ControllerTouchpadUpEvent) Type() Type { return TypeControllerTouchpadUp }
func (e *ControllerTouchpadUpEvent) String() string {
	return e.render("ControllerTouchpadUp")
}
func (e *ControllerTouchpadUpEvent) encode(rec *Record) { e.put(rec, TypeControllerTouchpadUp) }

// ControllerSensorEvent reports accelerometer or gyro data. TimestampUS needs
// the sensor_timestamp feature level.
type ControllerSensorEvent struct {
	Common
	Which       JoystickID `json:"which"`
	Sensor      int32      `json:"sensor"`
	Data        [3]float32 `json:"data"`
	TimestampUS uint64     `json:"timestamp_us"`
}

func (*ControllerSensorEvent) Type() Type { return TypeControllerSensorUpdate }

func (e *ControllerSensorEvent) String() string {
	return render("ControllerSensor", e.Common, "which", e.Which, "sensor", e.Sensor,
		"data", e.Data, "timestamp_us", e.TimestampUS)
}

func (e *ControllerSensorEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeControllerSensorUpdate)
	rec.Raw.putI32(offJoyWhich, int32(e.Which))
	rec.Raw.putI32(offCSensor, e.Sensor)
	for i, v := range e.Data {
		rec.Raw.putF32(offCSensorData+4*i, v)
	}
	rec.Raw.putU64(offCSensorTimestamp, e.TimestampUS)
}

func decodeControllerSensor(r *Raw, c Common, withTimestamp bool) Event {
	e := &ControllerSensorEvent{
		Common: c,
		Which:  JoystickID(r.i32(offJoyWhich)),
		Sensor: r.i32(offCSensor),
	}
	for i := range e.Data {
		e.Data[i] = r.f32(offCSensorData + 4*i)
	}
	if withTimestamp {
		e.TimestampUS = r.u64(offCSensorTimestamp)
	}
	return e
}
