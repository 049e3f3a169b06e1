package event

const (
	offDisplayIndex = 8
	offDisplayEvent = 12
	offDisplayData1 = 16
)

// DisplayEvent is implemented by every display sub-variant.
type DisplayEvent interface {
	Event
	DisplayEventID() DisplayEventID
	DisplayIndex() uint32
}

// DisplayHeader is the part shared by all display events.
type DisplayHeader struct {
	Common
	Display uint32 `json:"display"`
}

func (DisplayHeader) Type() Type { return TypeDisplayEvent }

func (h DisplayHeader) DisplayIndex() uint32 { return h.Display }

func (h DisplayHeader) put(rec *Record, id DisplayEventID, data1 int32) {
	rec.Raw.SetType(TypeDisplayEvent)
	rec.Raw.putU32(offDisplayIndex, h.Display)
	rec.Raw.putU8(offDisplayEvent, uint8(id))
	rec.Raw.putI32(offDisplayData1, data1)
}

func (h DisplayHeader) render(id DisplayEventID, kv ...interface{}) string {
	return render("Display", h.Common, append([]interface{}{"event", id, "display", h.Display}, kv...)...)
}

func displayHeader(r *Raw, c Common) DisplayHeader {
	return DisplayHeader{Common: c, Display: r.u32(offDisplayIndex)}
}

type DisplayOrientationEvent struct {
	DisplayHeader
	Orientation Orientation `json:"orientation"`
}

func (*DisplayOrientationEvent) DisplayEventID() DisplayEventID { return DisplayOrientation }

func (e *DisplayOrientationEvent) String() string {
	return e.render(DisplayOrientation, "orientation", e.Orientation)
}

func (e *DisplayOrientationEvent) encode(rec *Record) {
	e.put(rec, DisplayOrientation, int32(e.Orientation))
}

type DisplayConnectedEvent struct{ DisplayHeader }

func (*DisplayConnectedEvent) DisplayEventID() DisplayEventID { return DisplayConnected }
func (e *DisplayConnectedEvent) String() string               { return e.render(DisplayConnected) }
func (e *DisplayConnectedEvent) encode(rec *Record)           { e.put(rec, DisplayConnected, 0) }

type DisplayDisconnectedEvent struct{ DisplayHeader }

func (*DisplayDisconnectedEvent) DisplayEventID() DisplayEventID { return DisplayDisconnected }
func (e *DisplayDisconnectedEvent) String() string               { return e.render(DisplayDisconnected) }
func (e *DisplayDisconnectedEvent) encode(rec *Record)           { e.put(rec, DisplayDisconnected, 0) }

type DisplayMovedEvent struct{ DisplayHeader }

func (*DisplayMovedEvent) DisplayEventID() DisplayEventID { return DisplayMoved }
func (e *DisplayMovedEvent) String() string               { return e.render(DisplayMoved) }
func (e *DisplayMovedEvent) encode(rec *Record)           { e.put(rec, DisplayMoved, 0) }
