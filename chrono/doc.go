// Package chrono implements the immutable calendar date/time value at the
// heart of the tempus library.
//
// Package: chrono
// Title: Calendar Date/Time Values
// Description: Civil-calendar values with millisecond precision, a restricted
//              ISO 8601 parser, a cached pattern formatter, and calendar-aware
//              arithmetic and comparison.
// Author: tempus contributors
// Version: v0.1.1
// Created: 2026-06-14
// Modified: 2026-08-11
//
// # Data Model
//
// A DateTime aggregates civil fields (year, month, day, hour, minute, second,
// millisecond), a Unix-millisecond timestamp derived from those fields read
// as UTC wall-clock time, and an informational zone label. The civil fields
// are the source of truth; the timestamp is a cached derivation. Values are
// immutable: every operation that "changes" a value returns a new one, so
// any number of goroutines may share values without synchronization.
//
// # Construction
//
// Values are created only through validating factories:
//
//	dt, err := chrono.FromFields(2026, 1, 15, 10, 30, 45, 123)
//	dt := chrono.FromUnixMilli(1768473045123)
//	dt, err := chrono.ParseISO("2026-01-15T10:30:45.123Z")
//	dt := chrono.FromTime(time.Now())
//
// Partial overrides re-validate and re-derive the timestamp:
//
//	next, err := dt.With(chrono.Month(2), chrono.Day(1))
//
// # Formatting
//
// Format compiles moment-style patterns ("YYYY-MM-DD HH:mm:ss.SSS") into
// cached segment lists; bracketed spans like "[Today is]" are literal text.
// Preset names (ISO, SQL, RFC2822, ...) alias fixed pattern strings whose
// output is byte-stable across versions. The compiled-pattern cache is the
// only shared mutable state in the package and is safe for concurrent use;
// ClearFormatCache releases it explicitly.
//
// # Arithmetic
//
// Day and sub-day additions are linear timestamp shifts followed by full
// re-decomposition. Month and year additions operate on the civil fields and
// clamp the day to the target month's length (Jan 31 + 1 month = Feb 28).
// AddDuration applies compound durations in the fixed order years, months,
// weeks, days, hours, minutes, seconds, milliseconds.
//
// # Errors
//
// All failures are *error.Error values from core/error carrying the codes
// INVALID_FIELD, PARSE_ERROR, FORMAT_ERROR, or EMPTY_INPUT, with the
// offending field and value in the error details.
package chrono
