// File: datetime.go
// Title: DateTime Value Type
// Description: Implements the immutable DateTime value at the center of the
//              library: validated civil fields (year through millisecond), a
//              derived Unix-millisecond timestamp, and an informational zone
//              label. All construction goes through validating factories;
//              every "modifying" operation returns a new value.
// Author: tempus contributors
// Version: v0.1.1
// Created: 2026-06-14
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation with validated factories
// - 2026-08-11 v0.1.1: Added field-override cloning via With

package chrono

import (
	"fmt"
	"time"
)

// ZoneUTC is the default zone label attached to values constructed without
// an explicit label.
const ZoneUTC = "UTC"

// DateTime is an immutable civil date/time value with millisecond precision.
//
// The civil fields are the source of truth; the Unix-millisecond timestamp is
// derived from them at construction by treating them as UTC wall-clock time.
// The zone label is pure metadata: it never shifts the timestamp. The zero
// DateTime is not a valid value; use one of the From* factories.
type DateTime struct {
	year        int
	month       int
	day         int
	hour        int
	minute      int
	second      int
	millisecond int
	unixMilli   int64
	zoneLabel   string
}

// FromFields constructs a DateTime from explicit civil fields, validating the
// date first and the clock fields second. The fields are interpreted as UTC
// wall-clock time regardless of any zone label attached later. Failures carry
// the INVALID_FIELD code with the offending field and value.
func FromFields(year, month, day, hour, minute, second, millisecond int) (DateTime, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return DateTime{}, err
	}
	if err := ValidateTime(hour, minute, second, millisecond); err != nil {
		return DateTime{}, err
	}
	return newDateTime(year, month, day, hour, minute, second, millisecond, ZoneUTC), nil
}

// FromDate constructs a DateTime at midnight UTC of the given calendar date.
func FromDate(year, month, day int) (DateTime, error) {
	return FromFields(year, month, day, 0, 0, 0, 0)
}

// FromUnixMilli constructs a DateTime from a count of milliseconds since the
// Unix epoch, UTC. Decomposition is total: it cannot fail for any
// representable input.
func FromUnixMilli(ms int64) DateTime {
	t := time.UnixMilli(ms).UTC()
	return DateTime{
		year:        t.Year(),
		month:       int(t.Month()),
		day:         t.Day(),
		hour:        t.Hour(),
		minute:      t.Minute(),
		second:      t.Second(),
		millisecond: t.Nanosecond() / int(time.Millisecond),
		unixMilli:   ms,
		zoneLabel:   ZoneUTC,
	}
}

// FromTime adapts a native time.Time into a DateTime. The instant is
// truncated to millisecond precision and read in UTC.
func FromTime(t time.Time) DateTime {
	return FromUnixMilli(t.UnixMilli())
}

// Now returns the current instant as a DateTime.
func Now() DateTime {
	return FromTime(time.Now())
}

// newDateTime assembles a value from already-validated civil fields,
// deriving the timestamp. Internal construction only.
func newDateTime(year, month, day, hour, minute, second, millisecond int, zoneLabel string) DateTime {
	return DateTime{
		year:        year,
		month:       month,
		day:         day,
		hour:        hour,
		minute:      minute,
		second:      second,
		millisecond: millisecond,
		unixMilli:   civilToUnixMilli(year, month, day, hour, minute, second, millisecond),
		zoneLabel:   zoneLabel,
	}
}

// civilToUnixMilli computes the UTC linear time of the given civil fields.
func civilToUnixMilli(year, month, day, hour, minute, second, millisecond int) int64 {
	return time.Date(year, time.Month(month), day, hour, minute, second,
		millisecond*int(time.Millisecond), time.UTC).UnixMilli()
}

// Field is a single civil-field override for With. Each override kind has
// its own named constructor, so callers dispatch explicitly instead of the
// library inspecting dynamic argument types.
type Field func(*fieldSet)

type fieldSet struct {
	year, month, day             int
	hour, minute, second, millis int
	zoneLabel                    string
}

// Year overrides the year field.
func Year(v int) Field { return func(f *fieldSet) { f.year = v } }

// Month overrides the month field (1-12).
func Month(v int) Field { return func(f *fieldSet) { f.month = v } }

// Day overrides the day-of-month field.
func Day(v int) Field { return func(f *fieldSet) { f.day = v } }

// Hour overrides the hour field (0-23).
func Hour(v int) Field { return func(f *fieldSet) { f.hour = v } }

// Minute overrides the minute field.
func Minute(v int) Field { return func(f *fieldSet) { f.minute = v } }

// Second overrides the second field.
func Second(v int) Field { return func(f *fieldSet) { f.second = v } }

// Millisecond overrides the millisecond field.
func Millisecond(v int) Field { return func(f *fieldSet) { f.millis = v } }

// Zone overrides the zone label. The label is metadata only and does not
// shift the timestamp.
func Zone(label string) Field { return func(f *fieldSet) { f.zoneLabel = label } }

// With returns a new DateTime where each given override replaces the
// corresponding field of the receiver and the rest are copied. The result is
// re-validated and its timestamp re-derived from the civil fields, never
// copied from the receiver.
func (dt DateTime) With(overrides ...Field) (DateTime, error) {
	f := fieldSet{
		year: dt.year, month: dt.month, day: dt.day,
		hour: dt.hour, minute: dt.minute, second: dt.second, millis: dt.millisecond,
		zoneLabel: dt.zoneLabel,
	}
	for _, o := range overrides {
		o(&f)
	}
	if err := ValidateDate(f.year, f.month, f.day); err != nil {
		return DateTime{}, err
	}
	if err := ValidateTime(f.hour, f.minute, f.second, f.millis); err != nil {
		return DateTime{}, err
	}
	return newDateTime(f.year, f.month, f.day, f.hour, f.minute, f.second, f.millis, f.zoneLabel), nil
}

// WithZone returns a copy of the value carrying the given zone label. The
// civil fields and the timestamp are unchanged; no re-validation is needed
// because the label is metadata.
func (dt DateTime) WithZone(label string) DateTime {
	dt.zoneLabel = label
	return dt
}

// Year returns the calendar year.
func (dt DateTime) Year() int { return dt.year }

// Month returns the calendar month, 1-12.
func (dt DateTime) Month() int { return dt.month }

// Day returns the day of the month, 1-31.
func (dt DateTime) Day() int { return dt.day }

// Hour returns the hour of the day, 0-23.
func (dt DateTime) Hour() int { return dt.hour }

// Minute returns the minute, 0-59.
func (dt DateTime) Minute() int { return dt.minute }

// Second returns the second, 0-59.
func (dt DateTime) Second() int { return dt.second }

// Millisecond returns the millisecond, 0-999.
func (dt DateTime) Millisecond() int { return dt.millisecond }

// UnixMilli returns the derived Unix timestamp in milliseconds, UTC.
func (dt DateTime) UnixMilli() int64 { return dt.unixMilli }

// ZoneLabel returns the informational zone label.
func (dt DateTime) ZoneLabel() string { return dt.zoneLabel }

// Weekday returns the day of the week, 0 (Sunday) through 6 (Saturday).
func (dt DateTime) Weekday() int {
	return int(dt.ToTime().Weekday())
}

// ToTime converts the value to a native time.Time at the same instant, UTC.
// The conversion is lossless down to the millisecond.
func (dt DateTime) ToTime() time.Time {
	return time.UnixMilli(dt.unixMilli).UTC()
}

// IsZero reports whether the value is the unusable zero DateTime, which can
// only arise from bypassing the factories.
func (dt DateTime) IsZero() bool {
	return dt.month == 0
}

// Equal reports whether both values denote the same instant. Because the
// civil fields fully determine the timestamp, equal timestamps imply equal
// fields. Zone labels are metadata and are ignored.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.unixMilli == other.unixMilli
}

// Text renders the canonical UTC form YYYY-MM-DDTHH:mm:ss[.SSS]Z. The
// fractional part appears only when the millisecond field is non-zero; the
// trailing Z reflects the UTC field semantics regardless of the zone label.
func (dt DateTime) Text() string {
	if dt.millisecond > 0 {
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
			dt.year, dt.month, dt.day, dt.hour, dt.minute, dt.second, dt.millisecond)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
		dt.year, dt.month, dt.day, dt.hour, dt.minute, dt.second)
}

// String implements fmt.Stringer using the canonical text form.
func (dt DateTime) String() string {
	return dt.Text()
}
