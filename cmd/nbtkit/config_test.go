// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigParsesJSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	content := `{
	// dump preferences
	"color": "never",
	"max_depth": 3,
	"format": "yaml", // export default
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Color != "never" {
		t.Errorf("Color: got %q, want %q", cfg.Color, "never")
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth: got %d, want 3", cfg.MaxDepth)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Format: got %q, want %q", cfg.Format, "yaml")
	}
}

func TestLoadConfigExplicitMissingFails(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.jsonc")); err == nil {
		t.Error("loadConfig with an explicit missing path should fail")
	}
}

func TestLoadConfigDefaultMissingIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != (config{}) {
		t.Errorf("config: got %+v, want zero value", cfg)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "nbtkit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.jsonc"), []byte(`{"indent": 4}`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Indent != 4 {
		t.Errorf("Indent: got %d, want 4", cfg.Indent)
	}
}

func TestLoadConfigRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	if err := os.WriteFile(path, []byte(`{"color": `), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig of malformed JSONC should fail")
	}
}
