// File: zone.go
// Title: Zone Resolution
// Description: Resolves zone identifiers to UTC offsets and rewrites DateTime
//              values into the wall-clock time of the named zone. Accepts IANA
//              names (cached), fixed abbreviations from a built-in table with
//              runtime overrides, and literal offset strings.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-22
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-22 v0.1.0: Initial implementation with abbreviation table

package zone

import (
	"fmt"
	"sync"
	"time"

	"github.com/tempuslib/tempus/chrono"
	terr "github.com/tempuslib/tempus/core/error"
)

// abbreviations maps fixed zone abbreviations to their UTC offset in
// minutes. These are conventional fixed offsets; abbreviations that shift
// with daylight saving appear twice (EST/EDT and so on). IST follows the
// Indian convention.
var abbreviations = map[string]int{
	"UTC":  0,
	"GMT":  0,
	"EST":  -5 * 60,
	"EDT":  -4 * 60,
	"CST":  -6 * 60,
	"CDT":  -5 * 60,
	"MST":  -7 * 60,
	"MDT":  -6 * 60,
	"PST":  -8 * 60,
	"PDT":  -7 * 60,
	"CET":  1 * 60,
	"CEST": 2 * 60,
	"BST":  1 * 60,
	"JST":  9 * 60,
	"KST":  9 * 60,
	"IST":  5*60 + 30,
	"AEST": 10 * 60,
	"NZST": 12 * 60,
}

var abbrevMu sync.RWMutex

// Register adds or overrides a zone abbreviation with a fixed UTC offset in
// minutes. Registered abbreviations take precedence over IANA lookups.
func Register(abbr string, offsetMinutes int) {
	abbrevMu.Lock()
	abbreviations[abbr] = offsetMinutes
	abbrevMu.Unlock()
}

// lookupAbbreviation returns the fixed offset for an abbreviation.
func lookupAbbreviation(abbr string) (int, bool) {
	abbrevMu.RLock()
	offset, ok := abbreviations[abbr]
	abbrevMu.RUnlock()
	return offset, ok
}

// Location cache for IANA zone names
var (
	locationMu    sync.RWMutex
	locationCache = make(map[string]*time.Location)
)

// cachedLocation returns a cached IANA location or loads and caches it
func cachedLocation(name string) (*time.Location, error) {
	locationMu.RLock()
	if loc, exists := locationCache[name]; exists {
		locationMu.RUnlock()
		return loc, nil
	}
	locationMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	locationMu.Lock()
	locationCache[name] = loc
	locationMu.Unlock()

	return loc, nil
}

// Resolve returns a copy of v whose civil fields show the wall-clock time
// of v's instant in the named zone, with the zone label set accordingly.
// The input value is never modified. The identifier may be an IANA name
// ("Europe/Berlin"), a fixed abbreviation ("CET"), or a literal offset
// ("+05:30"). An unrecognized identifier fails with ZONE_RESOLUTION.
func Resolve(v chrono.DateTime, id string) (chrono.DateTime, error) {
	if id == "" {
		return chrono.DateTime{}, terr.New("zone identifier must not be empty").
			WithCode(terr.CodeZoneResolution).
			WithOperation("zone.Resolve")
	}

	if offsetMinutes, ok := parseOffset(id); ok {
		return shift(v, offsetMinutes, FormatOffset(offsetMinutes))
	}

	if offsetMinutes, ok := lookupAbbreviation(id); ok {
		return shift(v, offsetMinutes, id)
	}

	loc, err := cachedLocation(id)
	if err != nil {
		return chrono.DateTime{}, terr.Wrap(err, "unknown zone identifier").
			WithCode(terr.CodeZoneResolution).
			WithOperation("zone.Resolve").
			WithDetail("zone", id)
	}

	// The instant's offset in this location decides the wall clock; DST
	// makes it depend on the instant itself.
	t := v.ToTime().In(loc)
	_, offsetSeconds := t.Zone()
	return shift(v, offsetSeconds/60, id)
}

// Offset returns the UTC offset in minutes that the identifier resolves to
// at the given value's instant.
func Offset(v chrono.DateTime, id string) (int, error) {
	if offsetMinutes, ok := parseOffset(id); ok {
		return offsetMinutes, nil
	}
	if offsetMinutes, ok := lookupAbbreviation(id); ok {
		return offsetMinutes, nil
	}
	loc, err := cachedLocation(id)
	if err != nil {
		return 0, terr.Wrap(err, "unknown zone identifier").
			WithCode(terr.CodeZoneResolution).
			WithOperation("zone.Offset").
			WithDetail("zone", id)
	}
	_, offsetSeconds := v.ToTime().In(loc).Zone()
	return offsetSeconds / 60, nil
}

// shift rebuilds the value's civil fields at the given offset from the
// instant, then stamps the label. The timestamp of the result differs from
// the input: the fields are the zone's wall clock read as UTC, which is the
// library's field-first data model.
func shift(v chrono.DateTime, offsetMinutes int, label string) (chrono.DateTime, error) {
	shifted := chrono.AddMinutes(v, int64(offsetMinutes))
	result, err := chrono.FromFields(shifted.Year(), shifted.Month(), shifted.Day(),
		shifted.Hour(), shifted.Minute(), shifted.Second(), shifted.Millisecond())
	if err != nil {
		return chrono.DateTime{}, terr.Wrap(err, "shifted instant out of range").
			WithCode(terr.CodeZoneResolution).
			WithOperation("zone.Resolve").
			WithDetail("zone", label)
	}
	return result.WithZone(label), nil
}

// parseOffset recognizes literal ±HH:MM offset strings.
func parseOffset(id string) (int, bool) {
	if len(id) != 6 {
		return 0, false
	}
	sign := 0
	switch id[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, false
	}
	if id[3] != ':' {
		return 0, false
	}
	hh, ok1 := twoDigits(id[1], id[2])
	mm, ok2 := twoDigits(id[4], id[5])
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return 0, false
	}
	return sign * (hh*60 + mm), true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// FormatOffset renders an offset in minutes as ±HH:MM.
func FormatOffset(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}
