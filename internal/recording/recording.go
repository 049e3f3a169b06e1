// Package recording stores raw event records in a YAML file so that a
// session captured from a native source can be replayed through the decoder
// without the library present.
package recording

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
)

// Recording is the file format.
type Recording struct {
	Session uuid.UUID `yaml:"session"`
	// FeatureLevel is the level of the source that produced the records.
	FeatureLevel string    `yaml:"feature_level"`
	Created      time.Time `yaml:"created"`
	Events       []Entry   `yaml:"events"`
}

// Entry is one raw record. Type is informational; Raw is authoritative.
type Entry struct {
	Type string    `yaml:"type"`
	Raw  event.Raw `yaml:"raw"`
	Text string    `yaml:"text,omitempty"`
}

// New starts an empty recording for a source at level.
func New(level feature.Level) *Recording {
	return &Recording{
		Session:      uuid.New(),
		FeatureLevel: level.String(),
		Created:      time.Now().UTC(),
	}
}

// FromEvents encodes events into a new recording.
func FromEvents(level feature.Level, events []event.Event) *Recording {
	r := New(level)
	for _, e := range events {
		rec := event.Encode(e)
		r.Add(rec)
		rec.Release()
	}
	return r
}

// Add appends a copy of rec. It does not release rec's payload.
func (r *Recording) Add(rec event.Record) {
	r.Events = append(r.Events, Entry{
		Type: rec.Raw.Type().String(),
		Raw:  rec.Raw,
		Text: rec.Owned.Text(),
	})
}

// Level parses FeatureLevel. A recording without one is read at the latest
// level.
func (r *Recording) Level() (feature.Level, error) {
	if r.FeatureLevel == "" {
		return feature.Latest(), nil
	}
	return feature.ParseLevel(r.FeatureLevel)
}

// Record rebuilds entry i. Types that carry an owned payload get a fresh one.
func (r *Recording) Record(i int) event.Record {
	e := r.Events[i]
	rec := event.Record{Raw: e.Raw}
	if _, ok := event.OwnedSlot(e.Raw.Type()); ok {
		rec.Owned = event.NewOwned(e.Text, nil)
	}
	return rec
}

// Records rebuilds every entry.
func (r *Recording) Records() []event.Record {
	out := make([]event.Record, len(r.Events))
	for i := range r.Events {
		out[i] = r.Record(i)
	}
	return out
}

func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	if r.FeatureLevel != "" {
		if _, err := r.Level(); err != nil {
			return nil, fmt.Errorf("decode recording: %w", err)
		}
	}
	return &r, nil
}

func (r *Recording) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return enc.Close()
}

// Load reads a recording file.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Save writes the recording to path, replacing any existing file.
func (r *Recording) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create recording %s: %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
