// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store. Missing files are seeded from the
// embedded defaults and written back so users have something to edit.

package config

import "log"

func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, readErr := loadOrSeed(path, defaultSystemConfig)
	applySystemDefaults(cfg)
	system = cfg
	return readErr
}

func loadAppLocked(name string) (Config, error) {
	path, err := appConfigPath(name)
	if err != nil {
		return nil, err
	}
	cfg, readErr := loadOrSeed(path, func() Config { return defaultAppConfig(name) })
	applyAppDefaults(name, cfg)
	if readErr == nil {
		log.Printf("Config: Loaded app %q config from %s", name, path)
	}
	return cfg, readErr
}

// loadOrSeed reads path. When the file is missing or empty it is replaced by
// the seed (if any) and persisted. A read error still yields a usable empty
// config alongside the error.
func loadOrSeed(path string, seed func() Config) (Config, error) {
	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read %s: %v", path, readErr)
		return make(Config), readErr
	}
	if exists && len(cfg) > 0 {
		return cfg, nil
	}

	seeded := seed()
	if seeded == nil {
		return make(Config), nil
	}
	if err := writeConfig(path, seeded); err != nil {
		log.Printf("Config: Failed to write default config %s: %v", path, err)
		return seeded, err
	}
	return seeded, nil
}
