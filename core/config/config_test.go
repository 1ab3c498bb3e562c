// File: config_test.go
// Title: Core Configuration Tests
// Description: Tests for configuration loading from TOML and YAML, typed
//              accessors, dot notation, environment overrides, and error codes.
// Author: tempus contributors
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-06-15

package config

import (
	"os"
	"path/filepath"
	"testing"

	terr "github.com/tempuslib/tempus/core/error"
)

const tomlContent = `
name = "tempus"
verbose = true
limit = 42

[zone]
default = "UTC"
aliases = ["CET", "CEST"]
`

const yamlContent = `
name: tempus
verbose: true
limit: 42
zone:
  default: UTC
  aliases:
    - CET
    - CEST
`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "tempus.toml", tomlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %s, want toml", cfg.Format())
	}
	assertConfigValues(t, cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "tempus.yaml", yamlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %s, want yaml", cfg.Format())
	}
	assertConfigValues(t, cfg)
}

func assertConfigValues(t *testing.T, cfg *Config) {
	t.Helper()

	if got := cfg.GetString("name"); got != "tempus" {
		t.Errorf("GetString(name) = %q", got)
	}
	if !cfg.GetBool("verbose") {
		t.Error("GetBool(verbose) = false")
	}
	if got := cfg.GetInt("limit"); got != 42 {
		t.Errorf("GetInt(limit) = %d", got)
	}
	if got := cfg.GetString("zone.default"); got != "UTC" {
		t.Errorf("GetString(zone.default) = %q", got)
	}
	aliases := cfg.GetStringSlice("zone.aliases")
	if len(aliases) != 2 || aliases[0] != "CET" || aliases[1] != "CEST" {
		t.Errorf("GetStringSlice(zone.aliases) = %v", aliases)
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	assertConfigValues(t, cfg)
}

func TestDefaultsAndMissingKeys(t *testing.T) {
	path := writeTempConfig(t, "tempus.toml", tomlContent)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:   FormatAuto,
		Defaults: map[string]interface{}{"missing": "fallback", "limit": 7},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	if got := cfg.GetString("missing"); got != "fallback" {
		t.Errorf("default value not applied: %q", got)
	}
	// File values win over defaults.
	if got := cfg.GetInt("limit"); got != 42 {
		t.Errorf("file value overridden by default: %d", got)
	}
	if got := cfg.GetString("absent", "inline"); got != "inline" {
		t.Errorf("inline default = %q", got)
	}
	if cfg.Has("absent") {
		t.Error("Has(absent) = true")
	}
	if !cfg.Has("zone.default") {
		t.Error("Has(zone.default) = false")
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempConfig(t, "tempus.toml", tomlContent)

	t.Setenv("TEMPUS_ZONE_DEFAULT", "CET")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "tempus"})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}
	if got := cfg.GetString("zone.default"); got != "CET" {
		t.Errorf("env override not applied: %q", got)
	}
}

func TestSet(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	cfg.Set("zone.default", "JST")
	if got := cfg.GetString("zone.default"); got != "JST" {
		t.Errorf("Set did not take effect: %q", got)
	}

	cfg.Set("new.nested.key", 9)
	if got := cfg.GetInt("new.nested.key"); got != 9 {
		t.Errorf("Set on new nested path = %d", got)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	all := cfg.GetAll()
	all["name"] = "mutated"
	if got := cfg.GetString("name"); got != "tempus" {
		t.Errorf("GetAll exposed internal state: %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path expected error")
	} else if !terr.HasCode(err, terr.CodeInvalidConfig) {
		t.Errorf("empty path code = %s", terr.GetCode(err))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file expected error")
	} else if !terr.HasCode(err, terr.CodeMissingConfig) {
		t.Errorf("missing file code = %s", terr.GetCode(err))
	}

	path := writeTempConfig(t, "broken.toml", "= not toml at all [")
	if _, err := Load(path); err == nil {
		t.Error("malformed file expected error")
	} else if !terr.HasCode(err, terr.CodeInvalidConfig) {
		t.Errorf("malformed file code = %s", terr.GetCode(err))
	}
}
