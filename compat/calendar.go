// File: calendar.go
// Title: Legacy Calendar Facade
// Description: Remaps DateTime values to and from the legacy calendar-object
//              shape: zero-based month, day-of-week field, and the timestamp
//              split into unix seconds plus a millisecond remainder.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-27
// Modified: 2026-06-27
//
// Change History:
// - 2026-06-27 v0.1.0: Initial implementation

package compat

import (
	"github.com/tempuslib/tempus/chrono"
	terr "github.com/tempuslib/tempus/core/error"
)

// Calendar mirrors the legacy calendar object field for field. Month runs
// 0-11 and DayOfWeek 0-6 starting at Sunday. Unix carries whole seconds;
// Millis the 0-999 remainder.
type Calendar struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Second    int    `json:"second"`
	Millis    int    `json:"millis"`
	DayOfWeek int    `json:"dayOfWeek"`
	Unix      int64  `json:"unix"`
	Zone      string `json:"zone"`
}

// FromDateTime converts a DateTime into the legacy calendar shape.
func FromDateTime(v chrono.DateTime) Calendar {
	ms := v.UnixMilli()
	seconds := ms / 1000
	remainder := ms % 1000
	if remainder < 0 {
		seconds--
		remainder += 1000
	}

	return Calendar{
		Year:      v.Year(),
		Month:     v.Month() - 1,
		Day:       v.Day(),
		Hour:      v.Hour(),
		Minute:    v.Minute(),
		Second:    v.Second(),
		Millis:    v.Millisecond(),
		DayOfWeek: v.Weekday(),
		Unix:      seconds,
		Zone:      v.ZoneLabel(),
	}
}

// ToDateTime converts a legacy calendar back into a DateTime. The civil
// fields are authoritative; Unix and DayOfWeek are derived on the way out
// and ignored on the way in.
func (c Calendar) ToDateTime() (chrono.DateTime, error) {
	v, err := chrono.FromFields(c.Year, c.Month+1, c.Day,
		c.Hour, c.Minute, c.Second, c.Millis)
	if err != nil {
		return chrono.DateTime{}, terr.Wrap(err, "legacy calendar fields invalid").
			WithOperation("compat.ToDateTime")
	}
	if c.Zone != "" {
		v = v.WithZone(c.Zone)
	}
	return v, nil
}
