// Package event decodes raw input records into a closed set of typed event
// variants.
//
// A raw record carries a type code and a timestamp followed by a payload whose
// layout depends on the type and, for some categories, on a second
// sub-discriminant. Decoder maps each record to exactly one variant; anything
// it does not recognise at the configured feature level becomes an
// UnknownEvent. Encode is the inverse and is used to push synthetic events and
// to write recordings.
package event

import (
	"fmt"
	"strings"
)

// Event is implemented only by the variants in this package.
type Event interface {
	fmt.Stringer
	// Type is the outer discriminant this variant is written with.
	Type() Type
	// Ticks is the millisecond timestamp copied verbatim from the record.
	Ticks() uint32

	encode(rec *Record)
}

// Common holds the fields every variant shares.
type Common struct {
	Timestamp uint32 `json:"timestamp"`
}

func (c Common) Ticks() uint32 { return c.Timestamp }

// Point is an integer position.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is an integer extent.
type Size struct {
	W int32 `json:"w"`
	H int32 `json:"h"`
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Encode writes e into a fresh record. The record's type (and the
// sub-discriminant, where the category has one) always matches e's static
// type. Variants with a dynamically sized payload attach it as Owned with no
// release hook.
func Encode(e Event) Record {
	var rec Record
	rec.Raw.SetTimestamp(e.Ticks())
	e.encode(&rec)
	return rec
}

// CategoryOfEvent is CategoryOf applied to a decoded variant. UnknownEvent
// always reports CategoryUnknown, whatever code it carries.
func CategoryOfEvent(e Event) Category {
	if _, ok := e.(*UnknownEvent); ok {
		return CategoryUnknown
	}
	return CategoryOf(e.Type())
}

// render formats a variant for debugging as Name{k=v k=v}.
func render(name string, c Common, kv ...interface{}) string {
	var b strings.Builder
	b.WriteString(name)
	fmt.Fprintf(&b, "{ts=%d", c.Timestamp)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	b.WriteByte('}')
	return b.String()
}
