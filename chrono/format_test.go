// File: format_test.go
// Title: Pattern Formatter Tests
// Description: Tests for token rendering, longest-match scanning, bracket
//              literals, preset aliasing, cache transparency, and concurrent
//              cache access.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-18
// Modified: 2026-08-11

package chrono

import (
	"sync"
	"testing"

	terr "github.com/tempuslib/tempus/core/error"
)

func TestFormatTokens(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	dt := mustFields(t, 2025, 1, 15, 10, 30, 45, 123)

	testCases := []struct {
		pattern  string
		expected string
	}{
		{"YYYY-MM-DD", "2025-01-15"},
		{"YYYY-MM-DD HH:mm:ss.SSS", "2025-01-15 10:30:45.123"},
		{"YY", "25"},
		{"M/D", "1/15"},
		{"MMM", "Jan"},
		{"MMMM", "January"},
		{"ddd", "Wed"},
		{"dddd", "Wednesday"},
		{"dd", "We"},
		{"d", "3"},
		{"H:m:s", "10:30:45"},
		{"hh A", "10 AM"},
		{"h a", "10 am"},
		{"x", "1736937045123"},
		{"X", "1736937045"},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := Format(dt, tc.pattern)
			if err != nil {
				t.Fatalf("Format(%q) unexpected error: %v", tc.pattern, err)
			}
			if got != tc.expected {
				t.Errorf("Format(%q) = %q, want %q", tc.pattern, got, tc.expected)
			}
		})
	}
}

func TestFormatTwelveHourClock(t *testing.T) {
	testCases := []struct {
		hour     int
		expected string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}

	for _, tc := range testCases {
		dt := mustFields(t, 2025, 1, 15, tc.hour, 0, 0, 0)
		got, err := Format(dt, "h A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.expected {
			t.Errorf("hour %d: Format(h A) = %q, want %q", tc.hour, got, tc.expected)
		}
	}
}

func TestFormatBracketLiterals(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 0, 0, 0, 0)

	testCases := []struct {
		pattern  string
		expected string
	}{
		{"[Today is] YYYY-MM-DD", "Today is 2025-01-15"},
		{"[YYYY]", "YYYY"},
		{"YYYY [YYYY] YYYY", "2025 YYYY 2025"},
		{"[a literal with spaces]", "a literal with spaces"},
		{"[]", ""},
	}

	for _, tc := range testCases {
		got, err := Format(dt, tc.pattern)
		if err != nil {
			t.Fatalf("Format(%q) unexpected error: %v", tc.pattern, err)
		}
		if got != tc.expected {
			t.Errorf("Format(%q) = %q, want %q", tc.pattern, got, tc.expected)
		}
	}
}

func TestFormatUnknownCharactersPassThrough(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 10, 30, 0, 0)

	got, err := Format(dt, "YYYY?MM!DD @ HH|mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025?01!15 @ 10|30" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPresets(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 10, 30, 45, 123)

	testCases := []struct {
		preset   string
		expected string
	}{
		{PresetISO, "2025-01-15T10:30:45.123Z"},
		{PresetISODate, "2025-01-15"},
		{PresetISOTime, "10:30:45"},
		{PresetShort, "01/15/2025"},
		{PresetMedium, "Jan 15, 2025"},
		{PresetLong, "January 15, 2025"},
		{PresetFull, "Wednesday, January 15, 2025 10:30"},
		{PresetSQL, "2025-01-15 10:30:45"},
		{PresetTime12, "10:30 AM"},
		{PresetTime24, "10:30"},
		{PresetRFC2822, "Wed, 15 Jan 2025 10:30:45 +00:00"},
		{PresetHTTP, "Wed, 15 Jan 2025 10:30:45 GMT"},
	}

	for _, tc := range testCases {
		t.Run(tc.preset, func(t *testing.T) {
			got, err := Format(dt, tc.preset)
			if err != nil {
				t.Fatalf("Format(%s) unexpected error: %v", tc.preset, err)
			}
			if got != tc.expected {
				t.Errorf("Format(%s) = %q, want %q", tc.preset, got, tc.expected)
			}
		})
	}
}

func TestFormatPresetMatchesExpansion(t *testing.T) {
	dt := mustFields(t, 2025, 3, 7, 8, 9, 10, 11)

	for name, pattern := range Presets() {
		viaPreset, err := Format(dt, name)
		if err != nil {
			t.Fatalf("Format(%s) unexpected error: %v", name, err)
		}
		viaPattern, err := Format(dt, pattern)
		if err != nil {
			t.Fatalf("Format(%q) unexpected error: %v", pattern, err)
		}
		if viaPreset != viaPattern {
			t.Errorf("preset %s: %q != expansion output %q", name, viaPreset, viaPattern)
		}
	}
}

func TestFormatCacheTransparency(t *testing.T) {
	ClearFormatCache()

	first := mustFields(t, 2025, 1, 15, 0, 0, 0, 0)
	second := mustFields(t, 2025, 2, 20, 0, 0, 0, 0)

	// The cache is keyed by pattern, not by value: both calls must produce
	// independently correct output in either order.
	got1, err := Format(first, "YYYY-MM-DD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got2, err := Format(second, "YYYY-MM-DD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got1 != "2025-01-15" || got2 != "2025-02-20" {
		t.Errorf("got %q and %q", got1, got2)
	}

	ClearFormatCache()
	if got, _ := Format(second, "YYYY-MM-DD"); got != "2025-02-20" {
		t.Errorf("after cache clear got %q", got)
	}
}

func TestFormatErrors(t *testing.T) {
	dt := mustFields(t, 2025, 1, 15, 0, 0, 0, 0)

	if _, err := Format(dt, ""); err == nil {
		t.Error("empty pattern expected error, got nil")
	} else if !terr.HasCode(err, terr.CodeFormatError) {
		t.Errorf("empty pattern code = %s, want FORMAT_ERROR", terr.GetCode(err))
	}

	var zero DateTime
	if _, err := Format(zero, "YYYY"); err == nil {
		t.Error("zero value expected error, got nil")
	} else if !terr.HasCode(err, terr.CodeFormatError) {
		t.Errorf("zero value code = %s, want FORMAT_ERROR", terr.GetCode(err))
	}
}

func TestFormatConcurrentCacheAccess(t *testing.T) {
	ClearFormatCache()
	dt := mustFields(t, 2025, 1, 15, 10, 30, 45, 123)

	patterns := []string{"YYYY-MM-DD", "HH:mm:ss", PresetISO, PresetSQL, "[lit] YYYY"}
	expected := make([]string, len(patterns))
	for i, p := range patterns {
		out, err := Format(dt, p)
		if err != nil {
			t.Fatalf("Format(%q) unexpected error: %v", p, err)
		}
		expected[i] = out
	}
	ClearFormatCache()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				p := patterns[i%len(patterns)]
				out, err := Format(dt, p)
				if err != nil {
					t.Errorf("Format(%q) unexpected error: %v", p, err)
					return
				}
				if out != expected[i%len(patterns)] {
					t.Errorf("Format(%q) = %q, want %q", p, out, expected[i%len(patterns)])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFormatZoneTokens(t *testing.T) {
	utc := mustFields(t, 2025, 1, 15, 10, 0, 0, 0)
	offset := utc.WithZone("+05:30")

	if got, _ := Format(utc, "Z"); got != "Z" {
		t.Errorf("UTC Z token = %q, want Z", got)
	}
	if got, _ := Format(offset, "Z"); got != "+05:30" {
		t.Errorf("offset Z token = %q, want +05:30", got)
	}
	if got, _ := Format(utc, "ZZ"); got != "+00:00" {
		t.Errorf("UTC ZZ token = %q, want +00:00", got)
	}
	if got, _ := Format(offset, "ZZ"); got != "+05:30" {
		t.Errorf("offset ZZ token = %q, want +05:30", got)
	}
}
