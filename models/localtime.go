package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LocalTimeLayout is the canonical wire format for appointment timestamps:
// a calendar-naive local time with no offset suffix. Every actor in the
// system (client, storage, display) shares one local time reference, so
// zone information must never be attached or interpreted.
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalDateLayout is the wire format for calendar dates.
const LocalDateLayout = "2006-01-02"

// LocalTime is a naive local wall-clock timestamp. It carries no zone or
// offset; comparisons are done on calendar components only. The zero value
// is the zero time.
type LocalTime struct {
	wall time.Time
}

// NewLocalTime builds a LocalTime from calendar components. Seconds and
// finer are always zero.
func NewLocalTime(year int, month time.Month, day, hour, min int) LocalTime {
	return LocalTime{wall: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

// LocalTimeOf strips any location from t and keeps its wall-clock reading.
func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{wall: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// localTimeParseLayouts are tried in order. Offset-bearing inputs are
// tolerated on parse (the offset is dropped, the written wall clock kept)
// so that stored values with serialization noise still match.
var localTimeParseLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04",
}

// ParseLocalTime parses a naive local timestamp. Sub-minute fractions and
// trailing offsets are accepted and discarded; the wall-clock components are
// taken exactly as written.
func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range localTimeParseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return LocalTimeOf(t), nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid local timestamp %q, want %s", s, LocalTimeLayout)
}

// String renders the canonical no-offset form.
func (lt LocalTime) String() string {
	return lt.wall.Format(LocalTimeLayout)
}

// DateString renders the calendar date portion.
func (lt LocalTime) DateString() string {
	return lt.wall.Format(LocalDateLayout)
}

// Truncate drops everything below minute granularity. Matching between slot
// candidates and stored bookings happens on truncated values.
func (lt LocalTime) Truncate() LocalTime {
	return NewLocalTime(lt.wall.Year(), lt.wall.Month(), lt.wall.Day(), lt.wall.Hour(), lt.wall.Minute())
}

// Equal reports whether the two timestamps agree to the minute.
func (lt LocalTime) Equal(other LocalTime) bool {
	return lt.Truncate().wall.Equal(other.Truncate().wall)
}

// Before compares wall-clock order.
func (lt LocalTime) Before(other LocalTime) bool {
	return lt.wall.Before(other.wall)
}

// Add returns the timestamp shifted by d.
func (lt LocalTime) Add(d time.Duration) LocalTime {
	return LocalTime{wall: lt.wall.Add(d)}
}

// Hour returns the hour component.
func (lt LocalTime) Hour() int {
	return lt.wall.Hour()
}

// Minute returns the minute component.
func (lt LocalTime) Minute() int {
	return lt.wall.Minute()
}

// IsZero reports whether this is the zero timestamp.
func (lt LocalTime) IsZero() bool {
	return lt.wall.IsZero()
}

// MarshalJSON renders the canonical quoted form.
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.String() + `"`), nil
}

// UnmarshalJSON parses a quoted naive local timestamp.
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid local timestamp literal %s", string(data))
	}
	parsed, err := ParseLocalTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

// MarshalBSONValue stores the canonical string form. Persisting the naive
// string (rather than a BSON datetime) keeps Mongo from reinterpreting the
// value as UTC.
func (lt LocalTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(lt.String())
}

// UnmarshalBSONValue parses the stored string form.
func (lt *LocalTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return err
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
