// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values registered on top of loaded configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultApp": "pixelgrid",
		"logFile":    "texelpix.log",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "pixelgrid":
		cfg.RegisterDefaults("pixelgrid", Section{
			"grid_cols":          21,
			"grid_rows":          4,
			"cell_width":         2,
			"cell_height":        1,
			"grid_lines":         true,
			"too_long_threshold": 255,
			"status_revert_ms":   1000,
			"default_color":      "red",
			"text_style":         "catppuccin-mocha",
		})
		cfg.RegisterDefaults("pixelgrid.palette", Section{
			"red":    "#ff0000",
			"orange": "#ffa500",
			"yellow": "#ffff00",
			"green":  "#008000",
			"blue":   "#0000ff",
			"violet": "#ee82ee",
			"white":  "#ffffff",
			"black":  "#000000",
		})
	}
}
