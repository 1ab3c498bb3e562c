// File: doc.go
// Title: Package Documentation for core/config
// Description: Package documentation for the tempus configuration package.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15

// Package config loads configuration for tempus tools from TOML and YAML
// files, with environment variable overrides.
//
// The format is detected from the file extension (.toml, .yaml, .yml);
// anything else is read as TOML. Keys use dot notation for nesting:
//
//	cfg, err := config.Load("tempus.toml")
//	zone := cfg.GetString("zone.default", "UTC")
//
// When an environment prefix is set, TEMPUS_ZONE_DEFAULT overrides
// zone.default. Environment values always win over file values.
package config
