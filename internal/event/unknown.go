package event

import "fmt"

// UnknownEvent is what the decoder returns for any record it has no arm for
// at the configured feature level. The raw bytes are kept as received.
type UnknownEvent struct {
	Common
	Code Type `json:"code"`
	Raw  Raw  `json:"raw"`
}

func (e *UnknownEvent) Type() Type { return e.Code }

func (e *UnknownEvent) String() string {
	return render("Unknown", e.Common, "code", fmt.Sprintf("%#x", uint32(e.Code)), "raw", e.Raw.String())
}

func (e *UnknownEvent) encode(rec *Record) {
	rec.Raw = e.Raw
	rec.Raw.SetType(e.Code)
	rec.Raw.SetTimestamp(e.Timestamp)
}
