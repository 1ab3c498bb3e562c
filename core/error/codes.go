// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the tempus library. Codes enable callers to match on error
//              kinds programmatically instead of parsing human-readable messages.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-12
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the tempus library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar and clock validation
	CodeInvalidField Code = "INVALID_FIELD"

	// Text input and output
	CodeParseError  Code = "PARSE_ERROR"
	CodeFormatError Code = "FORMAT_ERROR"

	// Variadic helpers
	CodeEmptyInput Code = "EMPTY_INPUT"

	// Zone collaborator boundary
	CodeZoneResolution Code = "ZONE_RESOLUTION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeInvalidField, CodeParseError, CodeFormatError,
		CodeEmptyInput, CodeZoneResolution,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidField:
		return "validation"
	case CodeParseError, CodeFormatError:
		return "text"
	case CodeEmptyInput, CodeInvalidInput:
		return "input"
	case CodeZoneResolution:
		return "zone"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
