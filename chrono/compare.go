// File: compare.go
// Title: Ordering and Difference Queries
// Description: Implements strict timestamp ordering, unit-aware sameness and
//              difference, inclusive range checks, and variadic min/max folds
//              over DateTime values.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation with anniversary-aware diffs

package chrono

import (
	"strings"

	terr "github.com/tempuslib/tempus/core/error"
)

// Unit names a calendar or clock granularity for sameness and difference
// queries.
type Unit string

const (
	UnitMillisecond Unit = "millisecond"
	UnitSecond      Unit = "second"
	UnitMinute      Unit = "minute"
	UnitHour        Unit = "hour"
	UnitDay         Unit = "day"
	UnitWeek        Unit = "week"
	UnitMonth       Unit = "month"
	UnitYear        Unit = "year"
)

// ParseUnit converts a unit name into a Unit. Plural forms are accepted.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "s")
	switch Unit(name) {
	case UnitMillisecond, UnitSecond, UnitMinute, UnitHour,
		UnitDay, UnitWeek, UnitMonth, UnitYear:
		return Unit(name), nil
	default:
		return "", terr.Newf("unknown unit %q", s).
			WithCode(terr.CodeInvalidInput).
			WithDetail("unit", s)
	}
}

// IsBefore reports whether a denotes a strictly earlier instant than b.
func IsBefore(a, b DateTime) bool {
	return a.unixMilli < b.unixMilli
}

// IsAfter reports whether a denotes a strictly later instant than b.
func IsAfter(a, b DateTime) bool {
	return a.unixMilli > b.unixMilli
}

// IsBetween reports whether x lies within [a, b], inclusive on both ends.
// The caller must pass a <= b; with a > b the result is always false.
func IsBetween(x, a, b DateTime) bool {
	return a.unixMilli <= x.unixMilli && x.unixMilli <= b.unixMilli
}

// IsSame reports whether a and b agree on every civil field down to and
// including the given unit. Millisecond is exact timestamp equality. Week is
// a deliberate simplification kept for compatibility: both timestamps must
// fall into the same zero-indexed seven-day bucket counted from the epoch,
// which is not ISO calendar-week alignment.
func IsSame(a, b DateTime, unit Unit) (bool, error) {
	switch unit {
	case UnitMillisecond:
		return a.unixMilli == b.unixMilli, nil
	case UnitSecond:
		return sameCivilPrefix(a, b, 6), nil
	case UnitMinute:
		return sameCivilPrefix(a, b, 5), nil
	case UnitHour:
		return sameCivilPrefix(a, b, 4), nil
	case UnitDay:
		return sameCivilPrefix(a, b, 3), nil
	case UnitMonth:
		return sameCivilPrefix(a, b, 2), nil
	case UnitYear:
		return sameCivilPrefix(a, b, 1), nil
	case UnitWeek:
		return floorDiv(a.unixMilli, millisPerWeek) == floorDiv(b.unixMilli, millisPerWeek), nil
	default:
		return false, terr.Newf("unknown unit %q", unit).
			WithCode(terr.CodeInvalidInput).
			WithDetail("unit", string(unit))
	}
}

// sameCivilPrefix compares the first n civil fields in order year, month,
// day, hour, minute, second.
func sameCivilPrefix(a, b DateTime, n int) bool {
	fields := [6][2]int{
		{a.year, b.year},
		{a.month, b.month},
		{a.day, b.day},
		{a.hour, b.hour},
		{a.minute, b.minute},
		{a.second, b.second},
	}
	for i := 0; i < n; i++ {
		if fields[i][0] != fields[i][1] {
			return false
		}
	}
	return true
}

// Diff returns b minus a expressed in the given unit. Fixed-length units use
// floor division of the timestamp delta. Month and year are calendar-aware
// anniversary counts: a unit is counted only once the day (or month-and-day)
// boundary has actually been crossed, not by dividing elapsed days.
func Diff(a, b DateTime, unit Unit) (int64, error) {
	switch unit {
	case UnitMillisecond:
		return b.unixMilli - a.unixMilli, nil
	case UnitSecond:
		return floorDiv(b.unixMilli-a.unixMilli, millisPerSecond), nil
	case UnitMinute:
		return floorDiv(b.unixMilli-a.unixMilli, millisPerMinute), nil
	case UnitHour:
		return floorDiv(b.unixMilli-a.unixMilli, millisPerHour), nil
	case UnitDay:
		return floorDiv(b.unixMilli-a.unixMilli, millisPerDay), nil
	case UnitWeek:
		return floorDiv(b.unixMilli-a.unixMilli, millisPerWeek), nil
	case UnitMonth:
		return monthsBetween(a, b), nil
	case UnitYear:
		return monthsBetween(a, b) / 12, nil
	default:
		return 0, terr.Newf("unknown unit %q", unit).
			WithCode(terr.CodeInvalidInput).
			WithDetail("unit", string(unit))
	}
}

// monthsBetween counts complete months from a to b, decrementing when the
// trailing day-of-month (or, on equal days, the clock) shows the anniversary
// has not been reached. Negative spans mirror the positive count.
func monthsBetween(a, b DateTime) int64 {
	if a.unixMilli > b.unixMilli {
		return -monthsBetween(b, a)
	}
	months := int64(b.year-a.year)*12 + int64(b.month-a.month)
	if b.day < a.day {
		months--
	} else if b.day == a.day && clockMillis(b) < clockMillis(a) {
		months--
	}
	return months
}

// clockMillis collapses the time-of-day fields to a single millisecond count.
func clockMillis(dt DateTime) int64 {
	return int64(dt.hour)*millisPerHour +
		int64(dt.minute)*millisPerMinute +
		int64(dt.second)*millisPerSecond +
		int64(dt.millisecond)
}

// Min returns the earliest of the given values. Calling it with no
// arguments fails with EMPTY_INPUT.
func Min(values ...DateTime) (DateTime, error) {
	if len(values) == 0 {
		return DateTime{}, terr.New("min requires at least one value").
			WithCode(terr.CodeEmptyInput)
	}
	result := values[0]
	for _, v := range values[1:] {
		if IsBefore(v, result) {
			result = v
		}
	}
	return result, nil
}

// Max returns the latest of the given values. Calling it with no arguments
// fails with EMPTY_INPUT.
func Max(values ...DateTime) (DateTime, error) {
	if len(values) == 0 {
		return DateTime{}, terr.New("max requires at least one value").
			WithCode(terr.CodeEmptyInput)
	}
	result := values[0]
	for _, v := range values[1:] {
		if IsAfter(v, result) {
			result = v
		}
	}
	return result, nil
}
