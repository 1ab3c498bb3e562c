// File: arith.go
// Title: Calendar Arithmetic
// Description: Implements day/week and sub-day arithmetic as linear timestamp
//              addition with full re-decomposition, month/year arithmetic as
//              civil-field addition with end-of-month clamping, and compound
//              duration application in a fixed unit order.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation with clamped month arithmetic

package chrono

// Millisecond factors of the fixed-length units.
const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
	millisPerWeek   = 7 * millisPerDay
)

// addLinear shifts the timestamp by delta milliseconds and re-decomposes the
// result into civil fields. The zone label is carried over unchanged.
func addLinear(dt DateTime, delta int64) DateTime {
	return FromUnixMilli(dt.unixMilli + delta).WithZone(dt.zoneLabel)
}

// AddMilliseconds returns the value shifted by n milliseconds.
func AddMilliseconds(dt DateTime, n int64) DateTime {
	return addLinear(dt, n)
}

// AddSeconds returns the value shifted by n seconds.
func AddSeconds(dt DateTime, n int64) DateTime {
	return addLinear(dt, n*millisPerSecond)
}

// AddMinutes returns the value shifted by n minutes.
func AddMinutes(dt DateTime, n int64) DateTime {
	return addLinear(dt, n*millisPerMinute)
}

// AddHours returns the value shifted by n hours.
func AddHours(dt DateTime, n int64) DateTime {
	return addLinear(dt, n*millisPerHour)
}

// AddDays returns the value shifted by n days. Day addition is linear-time
// addition over UTC fields, so it is unaffected by zone labels.
func AddDays(dt DateTime, n int64) DateTime {
	return addLinear(dt, n*millisPerDay)
}

// AddWeeks returns the value shifted by n weeks.
func AddWeeks(dt DateTime, n int64) DateTime {
	return addLinear(dt, n*millisPerWeek)
}

// AddMonths adds n to the civil month field with year carry and clamps the
// day to the target month's length: Jan 31 plus one month is Feb 28 (or 29),
// never Mar 2. The clock fields are unchanged and the timestamp is re-derived
// from the resulting civil fields.
func AddMonths(dt DateTime, n int) DateTime {
	total := int64(dt.month-1) + int64(n)
	year := dt.year + int(floorDiv(total, 12))
	month := int(floorMod(total, 12)) + 1

	day := dt.day
	if max := daysIn(year, month); day > max {
		day = max
	}
	return newDateTime(year, month, day,
		dt.hour, dt.minute, dt.second, dt.millisecond, dt.zoneLabel)
}

// AddYears adds n to the year field with the same day-clamp rule: Feb 29
// lands on Feb 28 in non-leap target years.
func AddYears(dt DateTime, n int) DateTime {
	year := dt.year + n
	day := dt.day
	if max := daysIn(year, dt.month); day > max {
		day = max
	}
	return newDateTime(year, dt.month, day,
		dt.hour, dt.minute, dt.second, dt.millisecond, dt.zoneLabel)
}

// Duration is a compound calendar duration. A zero field contributes
// nothing when the duration is applied.
type Duration struct {
	Years        int
	Months       int
	Weeks        int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// IsZero reports whether every field of the duration is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Negate returns the duration with every field negated.
func (d Duration) Negate() Duration {
	return Duration{
		Years:        -d.Years,
		Months:       -d.Months,
		Weeks:        -d.Weeks,
		Days:         -d.Days,
		Hours:        -d.Hours,
		Minutes:      -d.Minutes,
		Seconds:      -d.Seconds,
		Milliseconds: -d.Milliseconds,
	}
}

// AddDuration applies the duration's non-zero fields in the fixed order
// years, months, weeks, days, hours, minutes, seconds, milliseconds, each as
// its own addition on the evolving result. The order is part of the
// contract: month and year addition clamp days before smaller units apply,
// so reordering would change observable results.
func AddDuration(dt DateTime, d Duration) DateTime {
	result := dt
	if d.Years != 0 {
		result = AddYears(result, d.Years)
	}
	if d.Months != 0 {
		result = AddMonths(result, d.Months)
	}
	if d.Weeks != 0 {
		result = AddWeeks(result, int64(d.Weeks))
	}
	if d.Days != 0 {
		result = AddDays(result, int64(d.Days))
	}
	if d.Hours != 0 {
		result = AddHours(result, int64(d.Hours))
	}
	if d.Minutes != 0 {
		result = AddMinutes(result, int64(d.Minutes))
	}
	if d.Seconds != 0 {
		result = AddSeconds(result, int64(d.Seconds))
	}
	if d.Milliseconds != 0 {
		result = AddMilliseconds(result, int64(d.Milliseconds))
	}
	return result
}

// SubtractDuration negates every field and delegates to AddDuration.
func SubtractDuration(dt DateTime, d Duration) DateTime {
	return AddDuration(dt, d.Negate())
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv, always in [0, b).
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
