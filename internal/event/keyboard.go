package event

const (
	offKeyWindowID = 8
	offKeyState    = 12
	offKeyRepeat   = 13
	offKeyScancode = 16
	offKeySym      = 20
	offKeyMod      = 24

	offEditWindowID = 8
	offEditText     = 12
	offEditStart    = 44
	offEditLength   = 48

	offTextWindowID = 8
	offTextText     = 12

	offEditExtWindowID = 8
	offEditExtText     = 16
	offEditExtStart    = 24
	offEditExtLength   = 28

	// TextSize is the inline text buffer of editing and input events,
	// including the terminating NUL.
	TextSize = 32
)

// Keysym identifies a key by physical position and by layout.
type Keysym struct {
	Scancode int32  `json:"scancode"`
	Sym      int32  `json:"sym"`
	Mod      uint16 `json:"mod"`
}

// Key is the payload shared by key down and key up.
type Key struct {
	Common
	WindowID uint32 `json:"window_id"`
	Repeat   uint8  `json:"repeat"`
	Keysym   Keysym `json:"keysym"`
}

func (k Key) put(rec *Record, t Type, state uint8) {
	rec.Raw.SetType(t)
	rec.Raw.putU32(offKeyWindowID, k.WindowID)
	rec.Raw.putU8(offKeyState, state)
	rec.Raw.putU8(offKeyRepeat, k.Repeat)
	rec.Raw.putI32(offKeyScancode, k.Keysym.Scancode)
	rec.Raw.putI32(offKeySym, k.Keysym.Sym)
	rec.Raw.putU16(offKeyMod, k.Keysym.Mod)
}

func (k Key) render(name string) string {
	return render(name, k.Common, "window", k.WindowID, "repeat", k.Repeat,
		"scancode", k.Keysym.Scancode, "sym", k.Keysym.Sym, "mod", k.Keysym.Mod)
}

func decodeKey(r *Raw, c Common) Key {
	return Key{
		Common:   c,
		WindowID: r.u32(offKeyWindowID),
		Repeat:   r.u8(offKeyRepeat),
		Keysym: Keysym{
			Scancode: r.i32(offKeyScancode),
			Sym:      r.i32(offKeySym),
			Mod:      r.u16(offKeyMod),
		},
	}
}

type KeyDownEvent struct{ Key }

func (*KeyDownEvent) Type() Type           { return TypeKeyDown }
func (e *KeyDownEvent) String() string     { return e.render("KeyDown") }
func (e *KeyDownEvent) encode(rec *Record) { e.put(rec, TypeKeyDown, Pressed) }

type KeyUpEvent struct{ Key }

func (*KeyUpEvent) Type() Type           { return TypeKeyUp }
func (e *KeyUpEvent) String() string     { return e.render("KeyUp") }
func (e *KeyUpEvent) encode(rec *Record) { e.put(rec, TypeKeyUp, Released) }

type KeymapChangedEvent struct{ Common }

func (*KeymapChangedEvent) Type() Type           { return TypeKeymapChanged }
func (e *KeymapChangedEvent) String() string     { return render("KeymapChanged", e.Common) }
func (e *KeymapChangedEvent) encode(rec *Record) { rec.Raw.SetType(e.Type()) }

// TextEditingEvent reports an in-progress IME composition that fits inline.
type TextEditingEvent struct {
	Common
	WindowID uint32 `json:"window_id"`
	Text     string `json:"text"`
	Start    int32  `json:"start"`
	Length   int32  `json:"length"`
}

func (*TextEditingEvent) Type() Type { return TypeTextEditing }

func (e *TextEditingEvent) String() string {
	return render("TextEditing", e.Common, "window", e.WindowID, "text", e.Text,
		"start", e.Start, "length", e.Length)
}

func (e *TextEditingEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeTextEditing)
	rec.Raw.putU32(offEditWindowID, e.WindowID)
	rec.Raw.putCstr(offEditText, TextSize, e.Text)
	rec.Raw.putI32(offEditStart, e.Start)
	rec.Raw.putI32(offEditLength, e.Length)
}

func decodeTextEditing(r *Raw, c Common) Event {
	return &TextEditingEvent{
		Common:   c,
		WindowID: r.u32(offEditWindowID),
		Text:     r.cstr(offEditText, TextSize),
		Start:    r.i32(offEditStart),
		Length:   r.i32(offEditLength),
	}
}

type TextInputEvent struct {
	Common
	WindowID uint32 `json:"window_id"`
	Text     string `json:"text"`
}

func (*TextInputEvent) Type() Type { return TypeTextInput }

func (e *TextInputEvent) String() string {
	return render("TextInput", e.Common, "window", e.WindowID, "text", e.Text)
}

func (e *TextInputEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeTextInput)
	rec.Raw.putU32(offTextWindowID, e.WindowID)
	rec.Raw.putCstr(offTextText, TextSize, e.Text)
}

func decodeTextInput(r *Raw, c Common) Event {
	return &TextInputEvent{
		Common:   c,
		WindowID: r.u32(offTextWindowID),
		Text:     r.cstr(offTextText, TextSize),
	}
}

// TextEditingExtEvent is a composition too long for the inline buffer. The
// text arrives as an owned payload.
type TextEditingExtEvent struct {
	Common
	WindowID uint32 `json:"window_id"`
	Text     string `json:"text"`
	Start    int32  `json:"start"`
	Length   int32  `json:"length"`
}

func (*TextEditingExtEvent) Type() Type { return TypeTextEditingExt }

func (e *TextEditingExtEvent) String() string {
	return render("TextEditingExt", e.Common, "window", e.WindowID, "text", e.Text,
		"start", e.Start, "length", e.Length)
}

func (e *TextEditingExtEvent) encode(rec *Record) {
	rec.Raw.SetType(TypeTextEditingExt)
	rec.Raw.putU32(offEditExtWindowID, e.WindowID)
	rec.Raw.putI32(offEditExtStart, e.Start)
	rec.Raw.putI32(offEditExtLength, e.Length)
	rec.Owned = NewOwned(e.Text, nil)
}

func decodeTextEditingExt(rec *Record, c Common) Event {
	return &TextEditingExtEvent{
		Common:   c,
		WindowID: rec.Raw.u32(offEditExtWindowID),
		Text:     rec.Owned.Text(),
		Start:    rec.Raw.i32(offEditExtStart),
		Length:   rec.Raw.i32(offEditExtLength),
	}
}
