package event

const (
	offAudioWhich     = 8
	offAudioIsCapture = 12

	offSensorWhich     = 8
	offSensorData      = 12
	offSensorTimestamp = 40

	offDropFile     = 8
	offDropWindowID = 16
)

// AudioDevice is shared by audio hotplug events. For added events Which is a
// device index; for removed events it is an opened device id.
type AudioDevice struct {
	Common
	Which     uint32 `json:"which"`
	IsCapture bool   `json:"is_capture"`
}

func (d AudioDevice) put(rec *Record, t Type) {
	rec.Raw.SetType(t)
	rec.Raw.putU32(offAudioWhich, d.Which)
	var capture uint8
	if d.IsCapture {
		capture = 1
	}
	rec.Raw.putU8(offAudioIsCapture, capture)
}

func (d AudioDevice) render(name string) string {
	return render(name, d.Common, "which", d.Which, "capture", d.IsCapture)
}

func decodeAudioDevice(r *Raw, c Common) AudioDevice {
	return AudioDevice{Common: c, Which: r.u32(offAudioWhich), IsCapture: r.u8(offAudioIsCapture) != 0}
}

type AudioDeviceAddedEvent struct{ AudioDevice }

func (*AudioDeviceAddedEvent) Type() Type           { return TypeAudioDeviceAdded }
func (e *AudioDeviceAddedEvent) String() string     { return e.render("AudioDeviceAdded") }
func (e *AudioDeviceAddedEvent) encode(rec *Record) { e.put(rec, TypeAudioDeviceAdded) }

type AudioDeviceRemovedEvent struct{ AudioDevice }

func (*AudioDeviceRemovedEvent) Type() Type           { return TypeAudioDeviceRemoved }
func (e *AudioDeviceRemovedEvent) String() string     { return e.render("AudioDeviceRemoved") }
func (e *AudioDeviceRemovedEvent) encode(rec *Record) { e.put(rec, TypeAudioDeviceRemoved) }

// SensorEvent is a reading from a standalone sensor. TimestampUS needs the
// sensor_timestamp feature level.
type SensorEvent struct {
	Common
	Which       int32      `json:"which"`
	Data        [6]float32 `json:"data"`
	TimestampUS uint64     `json:"timestamp_us"`
}

func (*SensorEvent) Type() Type { return TypeSensorUpdate }

func (e *SensorEvent) String() string {
	return render("Sensor", e.Common, "which", e.Which, "data", e.Data, "timestamp_us", e.TimestampUS)
}

func (e *SensorEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeSensorUpdate)
	rec.Raw.putI32(offSensorWhich, e.Which)
	for i, v := range e.Data {
		rec.Raw.putF32(offSensorData+4*i, v)
	}
	rec.Raw.putU64(offSensorTimestamp, e.TimestampUS)
}

func decodeSensor(r *Raw, c Common, withTimestamp bool) Event {
	e := &SensorEvent{Common: c, Which: r.i32(offSensorWhich)}
	for i := range e.Data {
		e.Data[i] = r.f32(offSensorData + 4*i)
	}
	if withTimestamp {
		e.TimestampUS = r.u64(offSensorTimestamp)
	}
	return e
}

// Drop is the payload shared by drag and drop events. WindowID needs
// drop_extended. File holds the path or text for drop_file and drop_text and
// is empty for begin and complete.
type Drop struct {
	Common
	File     string `json:"file,omitempty"`
	WindowID uint32 `json:"window_id"`
}

func (d Drop) put(rec *Record, t Type, withFile bool) {
	rec.Raw.SetType(t)
	rec.Raw.putU32(offDropWindowID, d.WindowID)
	if withFile {
		rec.Owned = NewOwned(d.File, nil)
	}
}

func (d Drop) render(name string) string {
	return render(name, d.Common, "file", d.File, "window", d.WindowID)
}

func decodeDrop(rec *Record, c Common, withWindow bool) Drop {
	d := Drop{Common: c, File: rec.Owned.Text()}
	if withWindow {
		d.WindowID = rec.Raw.u32(offDropWindowID)
	}
	return d
}

type DropFileEvent struct{ Drop }

func (*DropFileEvent) Type() Type           { return TypeDropFile }
func (e *DropFileEvent) String() string     { return e.render("DropFile") }
func (e *DropFileEvent) encode(rec *Record) { e.put(rec, TypeDropFile, true) }

type DropTextEvent struct{ Drop }

func (*DropTextEvent) Type() Type           { return TypeDropText }
func (e *DropTextEvent) String() string     { return e.render("DropText") }
func (e *DropTextEvent) encode(rec *Record) { e.put(rec, TypeDropText, true) }

type DropBeginEvent struct{ Drop }

func (*DropBeginEvent) Type() Type           { return TypeDropBegin }
func (e *DropBeginEvent) String() string     { return e.render("DropBegin") }
func (e *DropBeginEvent) encode(rec *Record) { e.put(rec, TypeDropBegin, false) }

type DropCompleteEvent struct{ Drop }

func (*DropCompleteEvent) Type() Type           { return TypeDropComplete }
func (e *DropCompleteEvent) String() string     { return e.render("DropComplete") }
func (e *DropCompleteEvent) encode(rec *Record) { e.put(rec, TypeDropComplete, false) }
