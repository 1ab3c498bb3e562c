// File: calendar.go
// Title: Calendar Rules
// Description: Implements the pure Gregorian calendar rules shared by every
//              other part of the library: leap-year test, days-in-month table,
//              and field-range validation for dates and clock times.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation with calendar rules

package chrono

import (
	terr "github.com/tempuslib/tempus/core/error"
)

// daysPerMonth holds the day count of each month in a non-leap year.
// Index 0 is unused so that month numbers index directly.
var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the given year is a Gregorian leap year:
// divisible by 4 and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year. February yields 29 in leap years and 28 otherwise. A month outside
// 1-12 fails with an INVALID_FIELD error.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, invalidField("month", month, "month must be between 1 and 12")
	}
	return daysIn(year, month), nil
}

// daysIn is the infallible variant for callers that already validated month.
func daysIn(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// ValidateDate checks that month and day form a valid calendar date in the
// given year. The month range is checked first, then the day against the
// month's length, so the first failing field is always reported.
func ValidateDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return invalidField("month", month, "month must be between 1 and 12")
	}
	if max := daysIn(year, month); day < 1 || day > max {
		return invalidField("day", day, "day must be between 1 and the month's length").
			WithDetail("year", year).
			WithDetail("month", month).
			WithDetail("max", max)
	}
	return nil
}

// ValidateTime checks the four clock fields against their ranges. Fields are
// checked in order hour, minute, second, millisecond and the first failing
// field is reported.
func ValidateTime(hour, minute, second, millisecond int) error {
	if hour < 0 || hour > 23 {
		return invalidField("hour", hour, "hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return invalidField("minute", minute, "minute must be between 0 and 59")
	}
	if second < 0 || second > 59 {
		return invalidField("second", second, "second must be between 0 and 59")
	}
	if millisecond < 0 || millisecond > 999 {
		return invalidField("millisecond", millisecond, "millisecond must be between 0 and 999")
	}
	return nil
}

// invalidField builds the INVALID_FIELD error every validation failure
// carries: the offending field name and value are always present in the
// error details.
func invalidField(field string, value int, message string) *terr.Error {
	return terr.New(message).
		WithCode(terr.CodeInvalidField).
		WithDetail("field", field).
		WithDetail("value", value)
}
