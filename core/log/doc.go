// File: doc.go
// Title: Package Documentation for core/log
// Description: Package documentation for the tempus structured logging package.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14

// Package log provides structured, leveled logging for the tempus library
// and its command line tools.
//
// Loggers are immutable: the With* methods return copies, so a derived
// logger can carry extra context fields without affecting its parent.
//
//	logger := log.New().WithName("tempus").WithField("component", "batch")
//	logger.Info("run started", log.String("run_id", id))
//
// Three output formats are available: JSON for machine consumption, plain
// text, and a colored console format for development. LogError understands
// the structured errors from core/error and chooses its log level from the
// error's severity.
package log
