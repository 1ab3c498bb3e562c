// File: batch.go
// Title: Elementwise Batch Operations
// Description: Fans core chrono operations out over slices. Results keep the
//              input order and every element gets its own error slot, so one
//              bad element never aborts the rest of the batch.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-25
// Modified: 2026-06-25
//
// Change History:
// - 2026-06-25 v0.1.0: Initial implementation

package batch

import (
	"github.com/tempuslib/tempus/chrono"
)

// Result holds the outcome of one batch element. Exactly one of Value/Text/
// Count is meaningful depending on the operation; Err is set when the
// element failed.
type Result struct {
	Value chrono.DateTime
	Text  string
	Count int64
	Err   error
}

// Pair is an ordered pair of values for difference batches.
type Pair struct {
	A chrono.DateTime
	B chrono.DateTime
}

// ParseAll parses every text through chrono.ParseISO. The result slice has
// the same length and order as the input.
func ParseAll(texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		value, err := chrono.ParseISO(text)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Value = value
	}
	return results
}

// FormatAll formats every value with the same pattern or preset.
func FormatAll(values []chrono.DateTime, pattern string) []Result {
	results := make([]Result, len(values))
	for i, value := range values {
		text, err := chrono.Format(value, pattern)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Text = text
	}
	return results
}

// AddAll applies the same duration to every value. Arithmetic is total, so
// no element can fail; the signature stays uniform with the other batches.
func AddAll(values []chrono.DateTime, d chrono.Duration) []Result {
	results := make([]Result, len(values))
	for i, value := range values {
		results[i].Value = chrono.AddDuration(value, d)
	}
	return results
}

// DiffAll computes B minus A in the given unit for every pair.
func DiffAll(pairs []Pair, unit chrono.Unit) []Result {
	results := make([]Result, len(pairs))
	for i, pair := range pairs {
		count, err := chrono.Diff(pair.A, pair.B, unit)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Count = count
	}
	return results
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}
