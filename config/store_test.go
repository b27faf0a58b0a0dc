// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	apps = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if got := cfg.GetString("", "defaultApp", ""); got != "pixelgrid" {
		t.Fatalf("expected defaultApp pixelgrid, got %q", got)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.GetString("", "defaultApp", "") == "" {
		t.Fatalf("expected seeded system config on disk")
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := App("pixelgrid")
	if got := cfg.GetInt("pixelgrid", "too_long_threshold", 0); got != 255 {
		t.Fatalf("expected too_long_threshold 255, got %d", got)
	}
	if got := cfg.GetInt("pixelgrid", "grid_cols", 0); got != 21 {
		t.Fatalf("expected grid_cols 21, got %d", got)
	}
	if got := cfg.GetStringMap("pixelgrid.palette")["violet"]; got == "" {
		t.Fatalf("expected palette defaults")
	}

	path, err := appConfigPath("pixelgrid")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestExistingAppConfigKeepsUserValues(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelpix", "apps", "pixelgrid", "config.json")
	if err := writeConfig(path, Config{
		"pixelgrid": map[string]interface{}{
			"cell_width": 3,
			"grid_lines": false,
		},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := App("pixelgrid")
	if got := cfg.GetInt("pixelgrid", "cell_width", 0); got != 3 {
		t.Fatalf("expected user cell_width 3, got %d", got)
	}
	if cfg.GetBool("pixelgrid", "grid_lines", true) {
		t.Fatalf("expected user grid_lines false")
	}
	if got := cfg.GetInt("pixelgrid", "status_revert_ms", 0); got != 1000 {
		t.Fatalf("expected missing keys to be filled from defaults, got %d", got)
	}
}

func TestSaveAppWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetApp("pixelgrid", Config{
		"pixelgrid": map[string]interface{}{
			"default_color": "blue",
		},
	})
	if err := SaveApp("pixelgrid"); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}

	path, err := appConfigPath("pixelgrid")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read app config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal app config: %v", err)
	}
	if got := disk.GetString("pixelgrid", "default_color", ""); got != "blue" {
		t.Fatalf("expected default_color blue, got %q", got)
	}
}

func TestInvalidAppConfigFallsBackToDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelpix", "apps", "pixelgrid", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := App("pixelgrid")
	if got := cfg.GetInt("pixelgrid", "grid_rows", 0); got != 4 {
		t.Fatalf("expected defaults after parse failure, got grid_rows=%d", got)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"s": Section{
			"i":   json.Number("7"),
			"f":   "2.5",
			"b":   "true",
			"n":   0.0,
			"str": "x",
		},
	}
	if got := cfg.GetInt("s", "i", 0); got != 7 {
		t.Fatalf("GetInt json.Number: %d", got)
	}
	if got := cfg.GetFloat("s", "f", 0); got != 2.5 {
		t.Fatalf("GetFloat string: %v", got)
	}
	if !cfg.GetBool("s", "b", false) || cfg.GetBool("s", "n", true) {
		t.Fatalf("GetBool coercion failed")
	}
	if got := cfg.GetString("s", "missing", "d"); got != "d" {
		t.Fatalf("GetString default: %q", got)
	}
	if got := cfg.GetInt("missing", "i", 3); got != 3 {
		t.Fatalf("GetInt missing section default: %d", got)
	}
}
