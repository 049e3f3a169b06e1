package event

const (
	offWindowID    = 8
	offWindowEvent = 12
	offWindowData1 = 16
	offWindowData2 = 20
)

// WindowEvent is implemented by every window sub-variant.
type WindowEvent interface {
	Event
	WindowEventID() WindowEventID
	Window() uint32
}

// WindowHeader is the part shared by all window events.
type WindowHeader struct {
	Common
	WindowID uint32 `json:"window_id"`
}

func (WindowHeader) Type() Type { return TypeWindowEvent }

func (h WindowHeader) Window() uint32 { return h.WindowID }

func (h WindowHeader) put(rec *Record, id WindowEventID, data1, data2 int32) {
	rec.Raw.SetType(TypeWindowEvent)
	rec.Raw.putU32(offWindowID, h.WindowID)
	rec.Raw.putU8(offWindowEvent, uint8(id))
	rec.Raw.putI32(offWindowData1, data1)
	rec.Raw.putI32(offWindowData2, data2)
}

func (h WindowHeader) render(id WindowEventID, kv ...interface{}) string {
	return render("Window", h.Common, append([]interface{}{"event", id, "window", h.WindowID}, kv...)...)
}

func windowHeader(r *Raw, c Common) WindowHeader {
	return WindowHeader{Common: c, WindowID: r.u32(offWindowID)}
}

type WindowShownEvent struct{ WindowHeader }

func (*WindowShownEvent) WindowEventID() WindowEventID { return WindowShown }
func (e *WindowShownEvent) String() string            { return e.render(WindowShown) }
func (e *WindowShownEvent) encode(rec *Record)        { e.put(rec, WindowShown, 0, 0) }

type WindowHiddenEvent struct{ WindowHeader }

func (*WindowHiddenEvent) WindowEventID() WindowEventID { return WindowHidden }
func (e *WindowHiddenEvent) String() string            { return e.render(WindowHidden) }
func (e *WindowHiddenEvent) encode(rec *Record)        { e.put(rec, WindowHidden, 0, 0) }

type WindowExposedEvent struct{ WindowHeader }

func (*WindowExposedEvent) WindowEventID() WindowEventID { return WindowExposed }
func (e *WindowExposedEvent) String() string            { return e.render(WindowExposed) }
func (e *WindowExposedEvent) encode(rec *Record)        { e.put(rec, WindowExposed, 0, 0) }

type WindowMinimizedEvent struct{ WindowHeader }

func (*WindowMinimizedEvent) WindowEventID() WindowEventID { return WindowMinimized }
func (e *WindowMinimizedEvent) String() string            { return e.render(WindowMinimized) }
func (e *WindowMinimizedEvent) encode(rec *Record)        { e.put(rec, WindowMinimized, 0, 0) }

type WindowMaximizedEvent struct{ WindowHeader }

func (*WindowMaximizedEvent) WindowEventID() WindowEventID { return WindowMaximized }
func (e *WindowMaximizedEvent) String() string            { return e.render(WindowMaximized) }
func (e *WindowMaximizedEvent) encode(rec *Record)        { e.put(rec, WindowMaximized, 0, 0) }

type WindowRestoredEvent struct{ WindowHeader }

func (*WindowRestoredEvent) WindowEventID() WindowEventID { return WindowRestored }
func (e *WindowRestoredEvent) String() string            { return e.render(WindowRestored) }
func (e *WindowRestoredEvent) encode(rec *Record)        { e.put(rec, WindowRestored, 0, 0) }

type WindowEnterEvent struct{ WindowHeader }

func (*WindowEnterEvent) WindowEventID() WindowEventID { return WindowEnter }
func (e *WindowEnterEvent) String() string            { return e.render(WindowEnter) }
func (e *WindowEnterEvent) encode(rec *Record)        { e.put(rec, WindowEnter, 0, 0) }

type WindowLeaveEvent struct{ WindowHeader }

func (*WindowLeaveEvent) WindowEventID() WindowEventID { return WindowLeave }
func (e *WindowLeaveEvent) String() string            { return e.render(WindowLeave) }
func (e *WindowLeaveEvent) encode(rec *Record)        { e.put(rec, WindowLeave, 0, 0) }

type WindowFocusGainedEvent struct{ WindowHeader }

func (*WindowFocusGainedEvent) WindowEventID() WindowEventID { return WindowFocusGained }
func (e *WindowFocusGainedEvent) String() string            { return e.render(WindowFocusGained) }
func (e *WindowFocusGainedEvent) encode(rec *Record)        { e.put(rec, WindowFocusGained, 0, 0) }

type WindowFocusLostEvent struct{ WindowHeader }

func (*WindowFocusLostEvent) WindowEventID() WindowEventID { return WindowFocusLost }
func (e *WindowFocusLostEvent) String() string            { return e.render(WindowFocusLost) }
func (e *WindowFocusLostEvent) encode(rec *Record)        { e.put(rec, WindowFocusLost, 0, 0) }

type WindowCloseEvent struct{ WindowHeader }

func (*WindowCloseEvent) WindowEventID() WindowEventID { return WindowClose }
func (e *WindowCloseEvent) String() string            { return e.render(WindowClose) }
func (e *WindowCloseEvent) encode(rec *Record)        { e.put(rec, WindowClose, 0, 0) }

type WindowTakeFocusEvent struct{ WindowHeader }

func (*WindowTakeFocusEvent) WindowEventID() WindowEventID { return WindowTakeFocus }
func (e *WindowTakeFocusEvent) String() string            { return e.render(WindowTakeFocus) }
func (e *WindowTakeFocusEvent) encode(rec *Record)        { e.put(rec, WindowTakeFocus, 0, 0) }

type WindowHitTestEvent struct{ WindowHeader }

func (*WindowHitTestEvent) WindowEventID() WindowEventID { return WindowHitTest }
func (e *WindowHitTestEvent) String() string            { return e.render(WindowHitTest) }
func (e *WindowHitTestEvent) encode(rec *Record)        { e.put(rec, WindowHitTest, 0, 0) }

type WindowICCProfChangedEvent struct{ WindowHeader }

func (*WindowICCProfChangedEvent) WindowEventID() WindowEventID { return WindowICCProfChanged }
func (e *WindowICCProfChangedEvent) String() string            { return e.render(WindowICCProfChanged) }
func (e *WindowICCProfChangedEvent) encode(rec *Record)        { e.put(rec, WindowICCProfChanged, 0, 0) }

type WindowMovedEvent struct {
	WindowHeader
	Position Point `json:"position"`
}

func (*WindowMovedEvent) WindowEventID() WindowEventID { return WindowMoved }

func (e *WindowMovedEvent) String() string {
	return e.render(WindowMoved, "position", e.Position)
}

func (e *WindowMovedEvent) encode(rec *Record) {
	e.put(rec, WindowMoved, e.Position.X, e.Position.Y)
}

// WindowResizedEvent is sent after an external resize; it is always preceded
// by a WindowSizeChangedEvent.
type WindowResizedEvent struct {
	WindowHeader
	Size Size `json:"size"`
}

func (*WindowResizedEvent) WindowEventID() WindowEventID { return WindowResized }

func (e *WindowResizedEvent) String() string {
	return e.render(WindowResized, "size", e.Size)
}

func (e *WindowResizedEvent) encode(rec *Record) {
	e.put(rec, WindowResized, e.Size.W, e.Size.H)
}

type WindowSizeChangedEvent struct {
	WindowHeader
	Size Size `json:"size"`
}

func (*WindowSizeChangedEvent) WindowEventID() WindowEventID { return WindowSizeChanged }

func (e *WindowSizeChangedEvent) String() string {
	return e.render(WindowSizeChanged, "size", e.Size)
}

func (e *WindowSizeChangedEvent) encode(rec *Record) {
	e.put(rec, WindowSizeChanged, e.Size.W, e.Size.H)
}

type WindowDisplayChangedEvent struct {
	WindowHeader
	DisplayIndex int32 `json:"display_index"`
}

func (*WindowDisplayChangedEvent) WindowEventID() WindowEventID { return WindowDisplayChanged }

func (e *WindowDisplayChangedEvent) String() string {
	return e.render(WindowDisplayChanged, "display", e.DisplayIndex)
}

func (e *WindowDisplayChangedEvent) encode(rec *Record) {
	e.put(rec, WindowDisplayChanged, e.DisplayIndex, 0)
}
