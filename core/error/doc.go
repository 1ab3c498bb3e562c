// Package error provides structured error handling for the tempus library.
//
// Package: error
// Title: Structured Error Handling
// Description: Rich error type with codes, severities, and key-value details.
//              All tempus packages surface failures through this type so that
//              callers can branch on error codes rather than message strings.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-12
// Modified: 2026-08-02
//
// # Usage
//
// Create classified errors with the fluent builders:
//
//	err := error.New("month outside valid range").
//		WithCode(error.CodeInvalidField).
//		WithDetail("field", "month").
//		WithDetail("value", 13)
//
// Wrap causes while preserving their classification:
//
//	err := error.Wrap(cause, "parse failed")
//
// Branch on codes, not messages:
//
//	if error.HasCode(err, error.CodeParseError) {
//		// reject the input
//	}
//
// Severity defaults are derived from the code (see GetSeverityFromCode) and
// can be overridden with WithSeverity. The type implements error, Unwrap,
// and json.Marshaler for structured logging.
package error
