// File: datetime_test.go
// Title: DateTime Value Tests
// Description: Tests for the validated factories, timestamp derivation,
//              round-trips, field overrides, immutability, and canonical text
//              rendering of the DateTime value.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-08-11

package chrono

import (
	"testing"
	"time"

	terr "github.com/tempuslib/tempus/core/error"
)

func mustFields(t *testing.T, year, month, day, hour, minute, second, millis int) DateTime {
	t.Helper()
	dt, err := FromFields(year, month, day, hour, minute, second, millis)
	if err != nil {
		t.Fatalf("FromFields(%d,%d,%d,%d,%d,%d,%d) unexpected error: %v",
			year, month, day, hour, minute, second, millis, err)
	}
	return dt
}

func mustDate(t *testing.T, year, month, day int) DateTime {
	t.Helper()
	dt, err := FromDate(year, month, day)
	if err != nil {
		t.Fatalf("FromDate(%d,%d,%d) unexpected error: %v", year, month, day, err)
	}
	return dt
}

func TestFromFields(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 10, 30, 45, 123)

	if dt.Year() != 2025 || dt.Month() != 1 || dt.Day() != 15 {
		t.Errorf("date fields = %d-%d-%d, want 2025-1-15", dt.Year(), dt.Month(), dt.Day())
	}
	if dt.Hour() != 10 || dt.Minute() != 30 || dt.Second() != 45 || dt.Millisecond() != 123 {
		t.Errorf("time fields = %d:%d:%d.%d, want 10:30:45.123",
			dt.Hour(), dt.Minute(), dt.Second(), dt.Millisecond())
	}
	if dt.ZoneLabel() != ZoneUTC {
		t.Errorf("zone label = %q, want UTC", dt.ZoneLabel())
	}

	want := time.Date(2025, 1, 15, 10, 30, 45, 123e6, time.UTC).UnixMilli()
	if dt.UnixMilli() != want {
		t.Errorf("UnixMilli() = %d, want %d", dt.UnixMilli(), want)
	}
}

func TestFromFieldsRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name                                 string
		year, month, day, hour, min, sec, ms int
	}{
		{"month 13", 2025, 13, 1, 0, 0, 0, 0},
		{"day 32", 2025, 1, 32, 0, 0, 0, 0},
		{"Feb 30", 2025, 2, 30, 0, 0, 0, 0},
		{"non-leap Feb 29", 2023, 2, 29, 0, 0, 0, 0},
		{"hour 24", 2025, 1, 1, 24, 0, 0, 0},
		{"millisecond 1000", 2025, 1, 1, 0, 0, 0, 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromFields(tc.year, tc.month, tc.day, tc.hour, tc.min, tc.sec, tc.ms)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !terr.HasCode(err, terr.CodeInvalidField) {
				t.Errorf("code = %s, want INVALID_FIELD", terr.GetCode(err))
			}
		})
	}
}

func TestFromUnixMilliRoundTrip(t *testing.T) {
	timestamps := []int64{
		0,
		1,
		-1,
		1736937045123, // 2025-01-15T10:30:45.123Z
		-86400000,     // 1969-12-31T00:00:00Z
		253402300799999,
	}

	for _, ts := range timestamps {
		dt := FromUnixMilli(ts)
		// Re-deriving the timestamp from the decomposed fields must
		// reproduce the input exactly.
		derived := civilToUnixMilli(dt.Year(), dt.Month(), dt.Day(),
			dt.Hour(), dt.Minute(), dt.Second(), dt.Millisecond())
		if derived != ts {
			t.Errorf("round trip of %d produced %d", ts, derived)
		}
		if dt.UnixMilli() != ts {
			t.Errorf("UnixMilli() = %d, want %d", dt.UnixMilli(), ts)
		}
	}
}

func TestFieldsTextParseRoundTrip(t *testing.T) {
	values := []DateTime{
		mustFields(t, 2025, 1, 15, 10, 30, 45, 123),
		mustFields(t, 2024, 2, 29, 23, 59, 59, 999),
		mustFields(t, 2025, 12, 31, 0, 0, 0, 0),
		mustFields(t, 1970, 1, 1, 0, 0, 0, 1),
	}

	for _, dt := range values {
		parsed, err := ParseISO(dt.Text())
		if err != nil {
			t.Fatalf("ParseISO(%q) unexpected error: %v", dt.Text(), err)
		}
		if !parsed.Equal(dt) {
			t.Errorf("round trip of %s: timestamp %d != %d",
				dt.Text(), parsed.UnixMilli(), dt.UnixMilli())
		}
		if parsed.Year() != dt.Year() || parsed.Month() != dt.Month() ||
			parsed.Day() != dt.Day() || parsed.Millisecond() != dt.Millisecond() {
			t.Errorf("round trip of %s changed civil fields", dt.Text())
		}
	}
}

func TestFromTime(t *testing.T) {
	native := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)
	dt := FromTime(native)

	if dt.Millisecond() != 123 {
		t.Errorf("Millisecond() = %d, want 123 (truncated)", dt.Millisecond())
	}
	if back := dt.ToTime(); back.UnixMilli() != native.UnixMilli() {
		t.Errorf("ToTime().UnixMilli() = %d, want %d", back.UnixMilli(), native.UnixMilli())
	}
}

func TestWithOverrides(t *testing.T) {
	base := mustFields(t, 2025, 1, 15, 10, 30, 45, 123)

	dt, err := base.With(Month(2), Day(28))
	if err != nil {
		t.Fatalf("With unexpected error: %v", err)
	}
	if dt.Month() != 2 || dt.Day() != 28 {
		t.Errorf("override produced %d-%d, want 2-28", dt.Month(), dt.Day())
	}
	if dt.Hour() != 10 || dt.Minute() != 30 {
		t.Error("unrelated fields were not copied")
	}
	want := civilToUnixMilli(2025, 2, 28, 10, 30, 45, 123)
	if dt.UnixMilli() != want {
		t.Errorf("timestamp not re-derived: %d, want %d", dt.UnixMilli(), want)
	}

	// Overrides that produce an invalid combination must fail.
	if _, err := base.With(Month(2), Day(30)); err == nil {
		t.Error("With(Month(2), Day(30)) expected error, got nil")
	}
	if _, err := base.With(Hour(24)); err == nil {
		t.Error("With(Hour(24)) expected error, got nil")
	}
}

func TestImmutability(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 10, 30, 45, 123)
	snapshot := dt

	_, _ = dt.With(Year(1999))
	_ = dt.WithZone("+05:30")
	_ = AddDays(dt, 400)
	_ = AddMonths(dt, 7)
	_ = AddDuration(dt, Duration{Years: 1, Days: 2, Minutes: 3})
	_, _ = Format(dt, "YYYY-MM-DD")

	if dt != snapshot {
		t.Errorf("operations mutated the receiver: %+v != %+v", dt, snapshot)
	}
}

func TestWithZoneIsMetadataOnly(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 10, 30, 45, 0)
	relabeled := dt.WithZone("+05:30")

	if relabeled.ZoneLabel() != "+05:30" {
		t.Errorf("zone label = %q, want +05:30", relabeled.ZoneLabel())
	}
	if relabeled.UnixMilli() != dt.UnixMilli() {
		t.Error("zone label shifted the timestamp")
	}
	if relabeled.Hour() != dt.Hour() {
		t.Error("zone label shifted the civil fields")
	}
}

func TestText(t *testing.T) {
	testCases := []struct {
		name     string
		value    DateTime
		expected string
	}{
		{"with millis", mustFields(t, 2025, 1, 15, 10, 30, 45, 123), "2025-01-15T10:30:45.123Z"},
		{"without millis", mustFields(t, 2025, 1, 15, 10, 30, 45, 0), "2025-01-15T10:30:45Z"},
		{"midnight", mustDate(t, 2025, 1, 15), "2025-01-15T00:00:00Z"},
		{"single digit fields", mustFields(t, 2025, 2, 3, 4, 5, 6, 7), "2025-02-03T04:05:06.007Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.Text(); got != tc.expected {
				t.Errorf("Text() = %q, want %q", got, tc.expected)
			}
		})
	}
}
