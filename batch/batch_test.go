// File: batch_test.go
// Title: Batch Operation Tests
// Description: Tests for elementwise parse, format, add, and diff batches,
//              including per-element error isolation and order preservation.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-25
// Modified: 2026-06-25

package batch

import (
	"testing"

	"github.com/tempuslib/tempus/chrono"
	terr "github.com/tempuslib/tempus/core/error"
)

func mustParse(t *testing.T, text string) chrono.DateTime {
	t.Helper()
	dt, err := chrono.ParseISO(text)
	if err != nil {
		t.Fatalf("ParseISO(%q) failed: %v", text, err)
	}
	return dt
}

func TestParseAll(t *testing.T) {
	texts := []string{
		"2025-01-15",
		"garbage",
		"2025-01-15T10:30:00Z",
		"2025-02-30",
	}

	results := ParseAll(texts)
	if len(results) != len(texts) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(texts))
	}

	if results[0].Err != nil {
		t.Errorf("element 0 unexpected error: %v", results[0].Err)
	}
	if results[0].Value.Day() != 15 {
		t.Errorf("element 0 day = %d", results[0].Value.Day())
	}

	// Bad elements fail alone; their neighbors are untouched.
	if results[1].Err == nil {
		t.Error("element 1 expected error")
	} else if !terr.HasCode(results[1].Err, terr.CodeParseError) {
		t.Errorf("element 1 code = %s", terr.GetCode(results[1].Err))
	}

	if results[2].Err != nil {
		t.Errorf("element 2 unexpected error: %v", results[2].Err)
	}
	if results[3].Err == nil {
		t.Error("element 3 expected error for impossible date")
	}
}

func TestFormatAll(t *testing.T) {
	values := []chrono.DateTime{
		mustParse(t, "2025-01-15"),
		{}, // zero value fails
		mustParse(t, "2025-03-07"),
	}

	results := FormatAll(values, "YYYY-MM-DD")
	if results[0].Text != "2025-01-15" {
		t.Errorf("element 0 = %q", results[0].Text)
	}
	if results[1].Err == nil {
		t.Error("element 1 expected error for zero value")
	}
	if results[2].Text != "2025-03-07" {
		t.Errorf("element 2 = %q", results[2].Text)
	}
	if Failed(results) != 1 {
		t.Errorf("Failed = %d, want 1", Failed(results))
	}
}

func TestAddAll(t *testing.T) {
	values := []chrono.DateTime{
		mustParse(t, "2025-01-31"),
		mustParse(t, "2025-06-15"),
	}

	results := AddAll(values, chrono.Duration{Months: 1})
	if got := results[0].Value.Text(); got != "2025-02-28T00:00:00Z" {
		t.Errorf("element 0 = %s", got)
	}
	if got := results[1].Value.Text(); got != "2025-07-15T00:00:00Z" {
		t.Errorf("element 1 = %s", got)
	}
	if Failed(results) != 0 {
		t.Errorf("Failed = %d, want 0", Failed(results))
	}
}

func TestDiffAll(t *testing.T) {
	a := mustParse(t, "2025-01-15")
	pairs := []Pair{
		{A: a, B: mustParse(t, "2025-01-20")},
		{A: a, B: mustParse(t, "2025-01-10")},
	}

	results := DiffAll(pairs, chrono.UnitDay)
	if results[0].Count != 5 {
		t.Errorf("element 0 = %d, want 5", results[0].Count)
	}
	if results[1].Count != -5 {
		t.Errorf("element 1 = %d, want -5", results[1].Count)
	}

	bad := DiffAll(pairs, chrono.Unit("eon"))
	if bad[0].Err == nil || bad[1].Err == nil {
		t.Error("unknown unit expected per-element errors")
	}
}

func TestEmptyBatches(t *testing.T) {
	if got := ParseAll(nil); len(got) != 0 {
		t.Errorf("ParseAll(nil) = %v", got)
	}
	if got := FormatAll(nil, "YYYY"); len(got) != 0 {
		t.Errorf("FormatAll(nil) = %v", got)
	}
	if got := DiffAll(nil, chrono.UnitDay); len(got) != 0 {
		t.Errorf("DiffAll(nil) = %v", got)
	}
}
