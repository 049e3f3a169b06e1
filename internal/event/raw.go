package event

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"unicode/utf8"
)

// RecordSize is the size of the native event union on 64-bit platforms.
const RecordSize = 56

const (
	offType      = 0
	offTimestamp = 4
)

// Raw is the flat, fixed-layout event record produced by the input subsystem.
// Multi-byte fields are little-endian.
type Raw [RecordSize]byte

func (r *Raw) Type() Type {
	return Type(r.u32(offType))
}

func (r *Raw) SetType(t Type) {
	r.putU32(offType, uint32(t))
}

func (r *Raw) Timestamp() uint32 {
	return r.u32(offTimestamp)
}

func (r *Raw) SetTimestamp(ts uint32) {
	r.putU32(offTimestamp, ts)
}

// Pointer reads a native pointer slot. Only input sources touch these.
func (r *Raw) Pointer(off int) uintptr {
	return uintptr(r.u64(off))
}

func (r *Raw) SetPointer(off int, p uintptr) {
	r.putU64(off, uint64(p))
}

func (r *Raw) String() string {
	return hex.EncodeToString(r[:])
}

// MarshalText renders the record as hex so JSON and YAML output stay readable.
func (r Raw) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Raw) UnmarshalText(text []byte) error {
	v, err := ParseRaw(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRaw decodes a hex dump produced by Raw.String.
func ParseRaw(s string) (Raw, error) {
	var r Raw
	b, err := hex.DecodeString(s)
	if err != nil {
		return r, fmt.Errorf("parse raw record: %w", err)
	}
	if len(b) != RecordSize {
		return r, fmt.Errorf("parse raw record: got %d bytes, want %d", len(b), RecordSize)
	}
	copy(r[:], b)
	return r, nil
}

func (r *Raw) u8(off int) uint8   { return r[off] }
func (r *Raw) u16(off int) uint16 { return binary.LittleEndian.Uint16(r[off:]) }
func (r *Raw) i16(off int) int16  { return int16(r.u16(off)) }
func (r *Raw) u32(off int) uint32 { return binary.LittleEndian.Uint32(r[off:]) }
func (r *Raw) i32(off int) int32  { return int32(r.u32(off)) }
func (r *Raw) u64(off int) uint64 { return binary.LittleEndian.Uint64(r[off:]) }
func (r *Raw) i64(off int) int64  { return int64(r.u64(off)) }

func (r *Raw) f32(off int) float32 {
	return math.Float32frombits(r.u32(off))
}

// cstr reads a NUL-terminated string from a fixed-size inline buffer.
func (r *Raw) cstr(off, n int) string {
	b := r[off : off+n]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func (r *Raw) putU8(off int, v uint8)   { r[off] = v }
func (r *Raw) putU16(off int, v uint16) { binary.LittleEndian.PutUint16(r[off:], v) }
func (r *Raw) putI16(off int, v int16)  { r.putU16(off, uint16(v)) }
func (r *Raw) putU32(off int, v uint32) { binary.LittleEndian.PutUint32(r[off:], v) }
func (r *Raw) putI32(off int, v int32)  { r.putU32(off, uint32(v)) }
func (r *Raw) putU64(off int, v uint64) { binary.LittleEndian.PutUint64(r[off:], v) }
func (r *Raw) putI64(off int, v int64)  { r.putU64(off, uint64(v)) }

func (r *Raw) putF32(off int, v float32) {
	r.putU32(off, math.Float32bits(v))
}

// putCstr writes s into an n-byte inline buffer, truncating so that a
// terminating NUL always fits. A cut never splits a UTF-8 sequence.
func (r *Raw) putCstr(off, n int, s string) {
	b := r[off : off+n]
	for i := range b {
		b[i] = 0
	}
	if len(s) > n-1 {
		cut := n - 1
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	copy(b, s)
}

// Owned is a dynamically sized payload attached to a record, such as the path
// of a dropped file. The input subsystem allocates it; whoever consumes the
// record must call Release exactly once. Release is idempotent and nil-safe.
type Owned struct {
	text     string
	free     func()
	released bool
}

// NewOwned wraps text. free, if non-nil, runs on the first Release.
func NewOwned(text string, free func()) *Owned {
	return &Owned{text: text, free: free}
}

// Text returns the payload. It stays readable after Release since it is a Go
// copy of the native buffer.
func (o *Owned) Text() string {
	if o == nil {
		return ""
	}
	return o.text
}

func (o *Owned) Release() {
	if o == nil || o.released {
		return
	}
	o.released = true
	if o.free != nil {
		o.free()
	}
}

// Released reports whether Release has run.
func (o *Owned) Released() bool {
	return o != nil && o.released
}

// Record is one raw event as delivered by a source: the fixed bytes plus an
// optional owned payload.
type Record struct {
	Raw   Raw
	Owned *Owned
}

// Release frees the owned payload, if any.
func (r Record) Release() {
	r.Owned.Release()
}

// OwnedSlot reports where t keeps a pointer to an owned payload inside the
// raw bytes. Native sources use it to extract and free the buffer.
func OwnedSlot(t Type) (off int, ok bool) {
	switch t {
	case TypeDropFile, TypeDropText:
		return offDropFile, true
	case TypeTextEditingExt:
		return offEditExtText, true
	}
	return 0, false
}
