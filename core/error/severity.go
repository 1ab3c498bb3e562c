// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and logging. Severity levels help integrators decide which failures
//              only need caller attention and which indicate a library bug.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-12
// Modified: 2026-06-12
//
// Change History:
// - 2026-06-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, a malformed date string, an empty argument list
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unresolvable zone identifiers, unusable configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: corrupted configuration files, failed environment setup
	SeverityHigh

	// SeverityCritical indicates a defect in the library itself
	// Examples: an internal invariant violated despite validated construction
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Library defects
	case CodeInternal:
		return SeverityCritical

	// Configuration problems
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	// External lookups
	case CodeZoneResolution:
		return SeverityMedium

	// Caller input problems
	case CodeInvalidField, CodeParseError, CodeFormatError,
		CodeEmptyInput, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
