package event

// Variants whose payload is only the common header, plus the two that carry
// opaque pointers (syswm and user).

const (
	offSysWMMsg = 8

	offUserWindowID = 8
	offUserCode     = 12
	offUserData1    = 16
	offUserData2    = 24
)

type QuitEvent struct{ Common }

func (*QuitEvent) Type() Type           { return TypeQuit }
func (e *QuitEvent) String() string     { return render("Quit", e.Common) }
func (e *QuitEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type AppTerminatingEvent struct{ Common }

func (*AppTerminatingEvent) Type() Type           { return TypeAppTerminating }
func (e *AppTerminatingEvent) String() string     { return render("AppTerminating", e.Common) }
func (e *AppTerminatingEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type AppLowMemoryEvent struct{ Common }

func (*AppLowMemoryEvent) Type() Type           { return TypeAppLowMemory }
func (e *AppLowMemoryEvent) String() string     { return render("AppLowMemory", e.Common) }
func (e *AppLowMemoryEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type AppWillEnterBackgroundEvent struct{ Common }

func (*AppWillEnterBackgroundEvent) Type() Type { return TypeAppWillEnterBackground }
func (e *AppWillEnterBackgroundEvent) String() string {
	return render("AppWillEnterBackground", e.Common)
}
func (e *AppWillEnterBackgroundEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type AppDidEnterBackgroundEvent struct{ Common }

func (*AppDidEnterBackgroundEvent) Type() Type { return TypeAppDidEnterBackground }
func (e *AppDidEnterBackgroundEvent) String() string {
	return render("AppDidEnterBackground", e.Common)
}
func (e *AppDidEnterBackgroundEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type AppWillEnterForegroundEvent struct{ Common }

func (*AppWillEnterForegroundEvent) Type() Type { return TypeAppWillEnterForeground }
func (e *AppWillEnterForegroundEvent) String() string {
	return render("AppWillEnterForeground", e.Common)
}
func (e *AppWillEnterForegroundEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type AppDidEnterForegroundEvent struct{ Common }

func (*AppDidEnterForegroundEvent) Type() Type { return TypeAppDidEnterForeground }
func (e *AppDidEnterForegroundEvent) String() string {
	return render("AppDidEnterForeground", e.Common)
}
func (e *AppDidEnterForegroundEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type LocaleChangedEvent struct{ Common }

func (*LocaleChangedEvent) Type() Type           { return TypeLocaleChanged }
func (e *LocaleChangedEvent) String() string     { return render("LocaleChanged", e.Common) }
func (e *LocaleChangedEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type ClipboardUpdateEvent struct{ Common }

func (*ClipboardUpdateEvent) Type() Type           { return TypeClipboardUpdate }
func (e *ClipboardUpdateEvent) String() string     { return render("ClipboardUpdate", e.Common) }
func (e *ClipboardUpdateEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type RenderTargetsResetEvent struct{ Common }

func (*RenderTargetsResetEvent) Type() Type           { return TypeRenderTargetsReset }
func (e *RenderTargetsResetEvent) String() string     { return render("RenderTargetsReset", e.Common) }
func (e *RenderTargetsResetEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

type RenderDeviceResetEvent struct{ Common }

func (*RenderDeviceResetEvent) Type() Type           { return TypeRenderDeviceReset }
func (e *RenderDeviceResetEvent) String() string     { return render("RenderDeviceReset", e.Common) }
func (e *RenderDeviceResetEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

// PollSentinelEvent marks the end of one native pump cycle.
type PollSentinelEvent struct{ Common }

func (*PollSentinelEvent) Type() Type           { return TypePollSentinel }
func (e *PollSentinelEvent) String() string     { return render("PollSentinel", e.Common) }
func (e *PollSentinelEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

// SysWMEvent carries a platform message pointer that is only meaningful to
// the process that polled it.
type SysWMEvent struct {
	Common
	Msg uintptr `json:"msg"`
}

func (*SysWMEvent) Type() Type { return TypeSysWMEvent }

func (e *SysWMEvent) String() string {
	return render("SysWM", e.Common, "msg", e.Msg)
}

func (e *SysWMEvent) encode(rec *Record) {
	rec.Raw.SetType(e.Type())
	rec.Raw.SetPointer(offSysWMMsg, e.Msg)
}

// UserEvent is any application-registered code in [TypeUser, TypeLast).
// A UserType outside that range is folded into it: zero is TypeUser and any
// other value v becomes TypeUser + v mod (TypeLast - TypeUser).
type UserEvent struct {
	Common
	UserType Type    `json:"user_type"`
	WindowID uint32  `json:"window_id"`
	Code     int32   `json:"code"`
	Data1    uintptr `json:"data1"`
	Data2    uintptr `json:"data2"`
}

func (e *UserEvent) Type() Type { return userType(e.UserType) }

func userType(t Type) Type {
	if t >= TypeUser && t < TypeLast {
		return t
	}
	return TypeUser + t%(TypeLast-TypeUser)
}

func (e *UserEvent) String() string {
	return render("User", e.Common, "type", e.Type(), "window", e.WindowID,
		"code", e.Code, "data1", e.Data1, "data2", e.Data2)
}

func (e *UserEvent) encode(rec *Record) {
	rec.Raw.SetType(e.Type())
	rec.Raw.putU32(offUserWindowID, e.WindowID)
	rec.Raw.putI32(offUserCode, e.Code)
	rec.Raw.SetPointer(offUserData1, e.Data1)
	rec.Raw.SetPointer(offUserData2, e.Data2)
}

func decodeUser(r *Raw, c Common) Event {
	return &UserEvent{
		Common:   c,
		UserType: r.Type(),
		WindowID: r.u32(offUserWindowID),
		Code:     r.i32(offUserCode),
		Data1:    r.Pointer(offUserData1),
		Data2:    r.Pointer(offUserData2),
	}
}

func decodeSysWM(r *Raw, c Common) Event {
	return &SysWMEvent{Common: c, Msg: r.Pointer(offSysWMMsg)}
}
