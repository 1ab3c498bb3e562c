// File: format.go
// Title: Pattern Formatter
// Description: Compiles format patterns into cached segment lists and renders
//              DateTime values through them. Patterns use a fixed moment-style
//              token grammar with bracketed literal spans; preset names alias
//              concrete pattern strings. Compilation cannot fail: unknown
//              characters pass through as literals.
// Author: tempus contributors
// Version: v0.1.1
// Created: 2026-06-18
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-18 v0.1.0: Initial implementation with token compiler and cache
// - 2026-08-11 v0.1.1: Added RFC2822 and HTTP presets

package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	terr "github.com/tempuslib/tempus/core/error"
)

// Preset pattern strings. These are a published contract: once released the
// rendered output must stay byte-stable across versions.
const (
	PresetISO     = "ISO"
	PresetISODate = "ISO_DATE"
	PresetISOTime = "ISO_TIME"
	PresetShort   = "SHORT"
	PresetMedium  = "MEDIUM"
	PresetLong    = "LONG"
	PresetFull    = "FULL"
	PresetSQL     = "SQL"
	PresetTime12  = "TIME_12"
	PresetTime24  = "TIME_24"
	PresetRFC2822 = "RFC2822"
	PresetHTTP    = "HTTP"
)

// presets maps preset names to their underlying pattern strings.
var presets = map[string]string{
	PresetISO:     "YYYY-MM-DDTHH:mm:ss.SSSZ",
	PresetISODate: "YYYY-MM-DD",
	PresetISOTime: "HH:mm:ss",
	PresetShort:   "MM/DD/YYYY",
	PresetMedium:  "MMM D, YYYY",
	PresetLong:    "MMMM D, YYYY",
	PresetFull:    "dddd, MMMM D, YYYY HH:mm",
	PresetSQL:     "YYYY-MM-DD HH:mm:ss",
	PresetTime12:  "h:mm A",
	PresetTime24:  "HH:mm",
	PresetRFC2822: "ddd, DD MMM YYYY HH:mm:ss ZZ",
	PresetHTTP:    "ddd, DD MMM YYYY HH:mm:ss [GMT]",
}

// Presets returns a copy of the preset name to pattern-string table.
func Presets() map[string]string {
	out := make(map[string]string, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}

// Fixed English name tables. Index 0 of the month tables is unused.
var (
	monthNames = [13]string{"", "January", "February", "March", "April", "May",
		"June", "July", "August", "September", "October", "November", "December"}
	monthAbbrevs = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday"}
	weekdayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayMin     = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
)

// renderFunc renders one field of a value.
type renderFunc func(DateTime) string

// segment is one compiled pattern element: either a literal run or a field
// accessor, never both.
type segment struct {
	literal string
	render  renderFunc
}

// tokenEntry pairs a token string with its renderer. The table is kept
// sorted by descending token length so the scanner's first hit is always the
// longest match.
type tokenEntry struct {
	token  string
	render renderFunc
}

var tokenTable = []tokenEntry{
	{"YYYY", func(dt DateTime) string { return fmt.Sprintf("%04d", dt.year) }},
	{"MMMM", func(dt DateTime) string { return monthNames[dt.month] }},
	{"dddd", func(dt DateTime) string { return weekdayNames[dt.Weekday()] }},
	{"MMM", func(dt DateTime) string { return monthAbbrevs[dt.month] }},
	{"ddd", func(dt DateTime) string { return weekdayAbbrevs[dt.Weekday()] }},
	{"SSS", func(dt DateTime) string { return fmt.Sprintf("%03d", dt.millisecond) }},
	{"YY", func(dt DateTime) string { return fmt.Sprintf("%02d", ((dt.year % 100) + 100) % 100) }},
	{"MM", func(dt DateTime) string { return fmt.Sprintf("%02d", dt.month) }},
	{"DD", func(dt DateTime) string { return fmt.Sprintf("%02d", dt.day) }},
	{"dd", func(dt DateTime) string { return weekdayMin[dt.Weekday()] }},
	{"HH", func(dt DateTime) string { return fmt.Sprintf("%02d", dt.hour) }},
	{"hh", func(dt DateTime) string { return fmt.Sprintf("%02d", hour12(dt.hour)) }},
	{"mm", func(dt DateTime) string { return fmt.Sprintf("%02d", dt.minute) }},
	{"ss", func(dt DateTime) string { return fmt.Sprintf("%02d", dt.second) }},
	{"ZZ", func(dt DateTime) string { return zoneOffset(dt.zoneLabel) }},
	{"M", func(dt DateTime) string { return strconv.Itoa(dt.month) }},
	{"D", func(dt DateTime) string { return strconv.Itoa(dt.day) }},
	{"d", func(dt DateTime) string { return strconv.Itoa(dt.Weekday()) }},
	{"H", func(dt DateTime) string { return strconv.Itoa(dt.hour) }},
	{"h", func(dt DateTime) string { return strconv.Itoa(hour12(dt.hour)) }},
	{"m", func(dt DateTime) string { return strconv.Itoa(dt.minute) }},
	{"s", func(dt DateTime) string { return strconv.Itoa(dt.second) }},
	{"A", func(dt DateTime) string { return amPM(dt.hour, "AM", "PM") }},
	{"a", func(dt DateTime) string { return amPM(dt.hour, "am", "pm") }},
	{"Z", func(dt DateTime) string { return zoneToken(dt.zoneLabel) }},
	{"X", func(dt DateTime) string { return strconv.FormatInt(floorDiv(dt.unixMilli, 1000), 10) }},
	{"x", func(dt DateTime) string { return strconv.FormatInt(dt.unixMilli, 10) }},
}

// hour12 maps the 24-hour field onto a 12-hour clock; hour 0 renders as 12.
func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

func amPM(hour int, am, pm string) string {
	if hour >= 12 {
		return pm
	}
	return am
}

// zoneToken renders the Z token: UTC collapses to the literal Z, anything
// else prints the label verbatim.
func zoneToken(label string) string {
	if label == ZoneUTC {
		return "Z"
	}
	return label
}

// zoneOffset renders the ZZ token as an offset string where one is known:
// UTC becomes +00:00, literal offset labels pass through, and named
// abbreviations print verbatim since the core carries no zone database.
func zoneOffset(label string) string {
	if label == ZoneUTC {
		return "+00:00"
	}
	return label
}

// compiledPattern is an ordered list of segments rendered in one pass.
type compiledPattern []segment

// patternCache holds compiled patterns keyed by the exact input string.
// Preset names are cached as their own keys alongside their expansions.
// Concurrent duplicate compiles of the same key are benign: both results
// are identical and last write wins.
var (
	patternMu    sync.RWMutex
	patternCache = make(map[string]compiledPattern)
)

// Format renders the value using the given pattern string or preset name.
// It fails with FORMAT_ERROR only for a zero value or an empty pattern;
// unrecognized pattern characters are passed through as literal text.
func Format(value DateTime, pattern string) (string, error) {
	if value.IsZero() {
		return "", terr.New("value was not constructed through a factory").
			WithCode(terr.CodeFormatError)
	}
	if pattern == "" {
		return "", terr.New("pattern must not be empty").
			WithCode(terr.CodeFormatError)
	}

	compiled := lookupPattern(pattern)
	var b strings.Builder
	for _, seg := range compiled {
		if seg.render != nil {
			b.WriteString(seg.render(value))
		} else {
			b.WriteString(seg.literal)
		}
	}
	return b.String(), nil
}

// ClearFormatCache drops every compiled pattern. The cache grows by one
// entry per distinct pattern string for the lifetime of the process; long
// running processes formatting unbounded pattern sets can reclaim it here.
func ClearFormatCache() {
	patternMu.Lock()
	patternCache = make(map[string]compiledPattern)
	patternMu.Unlock()
}

// lookupPattern returns the cached compilation of the key, compiling on
// first use. A preset name is resolved to its expansion and both keys are
// cached independently.
func lookupPattern(key string) compiledPattern {
	patternMu.RLock()
	if compiled, ok := patternCache[key]; ok {
		patternMu.RUnlock()
		return compiled
	}
	patternMu.RUnlock()

	pattern := key
	if expansion, ok := presets[key]; ok {
		// Cache the expansion under its own key as well.
		pattern = expansion
		lookupPattern(expansion)
	}
	compiled := compile(pattern)

	patternMu.Lock()
	patternCache[key] = compiled
	patternMu.Unlock()

	return compiled
}

// compile scans the pattern left to right and produces the segment list.
// Bracketed spans become literals with their brackets stripped and take
// precedence over token matching; outside brackets the longest known token
// wins at each position; everything else is copied verbatim.
func compile(pattern string) compiledPattern {
	var segments compiledPattern
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(pattern) {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end >= 0 {
				literal.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
			// Unterminated bracket: treat the rest as literal text.
			literal.WriteString(pattern[i+1:])
			break
		}
		if entry, ok := matchToken(pattern[i:]); ok {
			flush()
			segments = append(segments, segment{render: entry.render})
			i += len(entry.token)
			continue
		}
		literal.WriteByte(pattern[i])
		i++
	}
	flush()
	return segments
}

// matchToken finds the longest token starting at the head of s. The table
// is ordered by descending token length, so the first match is the longest.
func matchToken(s string) (tokenEntry, bool) {
	for _, entry := range tokenTable {
		if strings.HasPrefix(s, entry.token) {
			return entry, true
		}
	}
	return tokenEntry{}, false
}
