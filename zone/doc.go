// File: doc.go
// Title: Package Documentation for zone
// Description: Package documentation for the tempus zone resolver.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-22
// Modified: 2026-06-22

// Package zone resolves zone identifiers and rewrites DateTime values into
// a zone's wall-clock time.
//
// The chrono core treats its fields as a UTC wall clock and carries the
// zone label as plain metadata. This package is the one place where a zone
// actually moves the clock: Resolve takes a value's instant, computes the
// wall-clock fields in the requested zone, and returns a new value with
// those fields and the label set.
//
// Three identifier forms are accepted: IANA names ("Europe/Berlin",
// resolved through a cached time.LoadLocation and honoring daylight
// saving at the value's instant), fixed abbreviations from a built-in
// table ("CET", "PST", extensible via Register), and literal offsets
// ("+05:30").
package zone
