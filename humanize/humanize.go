// File: humanize.go
// Title: Relative Time Phrases
// Description: Renders the distance between two instants as an English
//              phrase ("in 3 days", "5 minutes ago"). Built purely on the
//              chrono difference queries.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-26
// Modified: 2026-06-26
//
// Change History:
// - 2026-06-26 v0.1.0: Initial implementation

package humanize

import (
	"fmt"

	"github.com/tempuslib/tempus/chrono"
)

// threshold selects the largest unit whose count is non-zero, checked from
// the largest down.
var thresholds = []chrono.Unit{
	chrono.UnitYear,
	chrono.UnitMonth,
	chrono.UnitWeek,
	chrono.UnitDay,
	chrono.UnitHour,
	chrono.UnitMinute,
	chrono.UnitSecond,
}

var unitNames = map[chrono.Unit]string{
	chrono.UnitYear:   "year",
	chrono.UnitMonth:  "month",
	chrono.UnitWeek:   "week",
	chrono.UnitDay:    "day",
	chrono.UnitHour:   "hour",
	chrono.UnitMinute: "minute",
	chrono.UnitSecond: "second",
}

// Relative renders the distance from one instant to another as a phrase.
// A future target yields "in N units", a past one "N units ago", and
// anything under a second apart is "just now". The count is always the
// magnitude in the largest non-zero unit; differences are taken on the
// ordered pair so floor division never inflates a past distance.
func Relative(from, to chrono.DateTime) string {
	earlier, later := from, to
	future := true
	if chrono.IsBefore(to, from) {
		earlier, later = to, from
		future = false
	}

	for _, unit := range thresholds {
		count, err := chrono.Diff(earlier, later, unit)
		if err != nil {
			continue
		}
		if count == 0 {
			continue
		}
		return phrase(count, future, unitNames[unit])
	}
	return "just now"
}

// RelativeToNow renders the distance from the current instant to the value.
func RelativeToNow(v chrono.DateTime) string {
	return Relative(chrono.Now(), v)
}

func phrase(count int64, future bool, unit string) string {
	if count != 1 {
		unit += "s"
	}
	if future {
		return fmt.Sprintf("in %d %s", count, unit)
	}
	return fmt.Sprintf("%d %s ago", count, unit)
}
