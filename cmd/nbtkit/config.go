// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// config holds per-user defaults for flags that are tedious to repeat.
// Explicit flags always win over config values. The file is JSONC, so
// it may carry comments and trailing commas.
type config struct {
	Color       string `json:"color"`
	Compression string `json:"compression"`
	Format      string `json:"format"`
	Indent      int    `json:"indent"`
	MaxDepth    int    `json:"max_depth"`
}

// loadConfig reads the config file at path, or the default location
// when path is empty. A missing file at the default location is not
// an error; a missing file named explicitly is.
func loadConfig(path string) (config, error) {
	var cfg config

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath resolves $XDG_CONFIG_HOME/nbtkit/config.jsonc,
// falling back to ~/.config.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "nbtkit", "config.jsonc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nbtkit", "config.jsonc")
}
