// File: parse.go
// Title: ISO 8601 Subset Parser
// Description: Parses the restricted ISO 8601 grammar accepted by the library:
//              YYYY-MM-DD, optionally followed by T and HH:MM:SS with an
//              optional 1-3 digit fraction, optionally suffixed by Z or a
//              literal +HH:MM / -HH:MM offset. The offset suffix only sets the
//              zone label; civil fields are taken verbatim as written.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-16
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-16 v0.1.0: Initial implementation of the restricted grammar

package chrono

import (
	"strings"

	terr "github.com/tempuslib/tempus/core/error"
)

// ParseISO parses text in the restricted ISO 8601 grammar into a DateTime.
//
// A missing time part defaults the clock fields to zero; a missing zone
// suffix defaults the zone label to UTC. Every failure returns a PARSE_ERROR
// and discards all partial state; syntactically well-formed but calendrically
// invalid dates (2025-02-30, non-leap-year Feb 29) are rejected by the same
// calendar validation used at construction.
func ParseISO(text string) (DateTime, error) {
	if text == "" {
		return DateTime{}, parseErr(text, "empty input")
	}

	sections := strings.Split(text, "T")
	if len(sections) > 2 {
		return DateTime{}, parseErr(text, "more than one time section")
	}

	year, month, day, err := parseDateSection(sections[0])
	if err != nil {
		return DateTime{}, err
	}
	if err := ValidateDate(year, month, day); err != nil {
		return DateTime{}, terr.Wrap(err, "invalid calendar date").
			WithCode(terr.CodeParseError).
			WithDetail("input", text)
	}

	hour, minute, second, millis := 0, 0, 0, 0
	zoneLabel := ZoneUTC
	if len(sections) == 2 {
		timeText := sections[1]
		timeText, zoneLabel, err = stripZoneSuffix(timeText)
		if err != nil {
			return DateTime{}, err
		}
		hour, minute, second, millis, err = parseTimeSection(timeText)
		if err != nil {
			return DateTime{}, err
		}
		if err := ValidateTime(hour, minute, second, millis); err != nil {
			return DateTime{}, terr.Wrap(err, "invalid time").
				WithCode(terr.CodeParseError).
				WithDetail("input", text)
		}
	}

	// Fields are fully validated; construct directly, re-deriving the
	// timestamp from the civil fields.
	return newDateTime(year, month, day, hour, minute, second, millis, zoneLabel), nil
}

// parseDateSection matches exactly YYYY-MM-DD.
func parseDateSection(s string) (year, month, day int, err error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, parseErr(s, "malformed date, expected YYYY-MM-DD")
	}
	year, ok := parseDigits(s[0:4])
	if !ok {
		return 0, 0, 0, parseErr(s, "malformed year")
	}
	month, ok = parseDigits(s[5:7])
	if !ok {
		return 0, 0, 0, parseErr(s, "malformed month")
	}
	day, ok = parseDigits(s[8:10])
	if !ok {
		return 0, 0, 0, parseErr(s, "malformed day")
	}
	return year, month, day, nil
}

// stripZoneSuffix removes a trailing Z or ±HH:MM from the time section and
// returns the remaining time text plus the zone label. The offset form is
// kept verbatim as the label; it never shifts the decoded fields.
func stripZoneSuffix(s string) (rest, zoneLabel string, err error) {
	if strings.HasSuffix(s, "Z") {
		return s[:len(s)-1], ZoneUTC, nil
	}
	if len(s) >= 6 {
		suffix := s[len(s)-6:]
		if (suffix[0] == '+' || suffix[0] == '-') && suffix[3] == ':' {
			if _, ok := parseDigits(suffix[1:3]); !ok {
				return "", "", parseErr(s, "malformed zone offset")
			}
			if _, ok := parseDigits(suffix[4:6]); !ok {
				return "", "", parseErr(s, "malformed zone offset")
			}
			return s[:len(s)-6], suffix, nil
		}
	}
	return s, ZoneUTC, nil
}

// parseTimeSection matches HH:MM:SS with an optional dot and 1-3 fraction
// digits. Shorter fractions are right-padded: .1 is 100ms, .12 is 120ms.
func parseTimeSection(s string) (hour, minute, second, millis int, err error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return 0, 0, 0, 0, parseErr(s, "malformed time, expected HH:MM:SS")
	}
	var ok bool
	if hour, ok = parseDigits(s[0:2]); !ok {
		return 0, 0, 0, 0, parseErr(s, "malformed hour")
	}
	if minute, ok = parseDigits(s[3:5]); !ok {
		return 0, 0, 0, 0, parseErr(s, "malformed minute")
	}
	if second, ok = parseDigits(s[6:8]); !ok {
		return 0, 0, 0, 0, parseErr(s, "malformed second")
	}
	if len(s) == 8 {
		return hour, minute, second, 0, nil
	}
	if s[8] != '.' {
		return 0, 0, 0, 0, parseErr(s, "unexpected characters after seconds")
	}
	frac := s[9:]
	if len(frac) < 1 || len(frac) > 3 {
		return 0, 0, 0, 0, parseErr(s, "fraction must have 1 to 3 digits")
	}
	if millis, ok = parseDigits(frac); !ok {
		return 0, 0, 0, 0, parseErr(s, "malformed fraction")
	}
	for i := len(frac); i < 3; i++ {
		millis *= 10
	}
	return hour, minute, second, millis, nil
}

// parseDigits converts a run of ASCII digits to an int. Any non-digit byte,
// including signs and spaces, fails the match.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func parseErr(input, message string) *terr.Error {
	return terr.New(message).
		WithCode(terr.CodeParseError).
		WithDetail("input", input)
}
