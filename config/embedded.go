// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from embedded JSON files.
// The embedded JSON files in defaults/ are the single source of truth.

package config

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/framegrace/texelpix/defaults"
)

var (
	embeddedMu sync.Mutex
	embedded   = make(map[string]Config) // "" is the system config
)

// embeddedDefaults parses and caches the embedded JSON for app ("" for system).
// A missing file is not an error; it yields nil.
func embeddedDefaults(app string) Config {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	if cfg, ok := embedded[app]; ok {
		return cfg
	}

	var (
		data []byte
		err  error
	)
	if app == "" {
		data, err = defaults.SystemConfig()
	} else {
		data, err = defaults.AppConfig(app)
	}
	if err != nil {
		embedded[app] = nil
		return nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: Embedded defaults for %q are invalid: %v", app, err)
		cfg = nil
	}
	embedded[app] = cfg
	return cfg
}

// defaultSystemConfig returns a clone of the embedded system defaults.
func defaultSystemConfig() Config {
	return Clone(embeddedDefaults(""))
}

// defaultAppConfig returns a clone of the embedded app defaults.
func defaultAppConfig(app string) Config {
	return Clone(embeddedDefaults(app))
}
