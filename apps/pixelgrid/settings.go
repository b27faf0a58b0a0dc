// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/settings.go
// Summary: Reads the pixelgrid config section into typed settings.

package pixelgrid

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/texelpix/config"
	"github.com/framegrace/texelpix/pixel"
)

const (
	appName        = "pixelgrid"
	paletteSection = "pixelgrid.palette"

	defaultThreshold = 255
	defaultRevert    = time.Second
	defaultTextStyle = "catppuccin-mocha"
)

// Fixed UI colours.
const (
	surfaceHex  = "#111827"
	invalidHex  = "#4b1b1b"
	gridLineHex = "#e5e7eb"
	glyphHex    = "#ffffff"
)

var defaultPalette = map[string]string{
	"red":    "#ff0000",
	"orange": "#ffa500",
	"yellow": "#ffff00",
	"green":  "#008000",
	"blue":   "#0000ff",
	"violet": "#ee82ee",
	"white":  "#ffffff",
	"black":  "#000000",
}

type settings struct {
	dims       pixel.Dims
	cellWidth  int
	cellHeight int
	gridLines  bool
	threshold  int
	revert     time.Duration
	color      string
	textStyle  string
	palette    map[pixel.Code]tcell.Color
}

func defaultSettings() settings {
	return loadSettings(nil)
}

func loadSettings(cfg config.Config) settings {
	s := settings{
		dims: pixel.Dims{
			Cols: atLeast(cfg.GetInt(appName, "grid_cols", pixel.DefaultDims.Cols), 1),
			Rows: atLeast(cfg.GetInt(appName, "grid_rows", pixel.DefaultDims.Rows), 1),
		},
		cellWidth:  atLeast(cfg.GetInt(appName, "cell_width", 2), 1),
		cellHeight: atLeast(cfg.GetInt(appName, "cell_height", 1), 1),
		gridLines:  cfg.GetBool(appName, "grid_lines", true),
		threshold:  atLeast(cfg.GetInt(appName, "too_long_threshold", defaultThreshold), 0),
		revert:     time.Duration(atLeast(cfg.GetInt(appName, "status_revert_ms", int(defaultRevert/time.Millisecond)), 0)) * time.Millisecond,
		color:      cfg.GetString(appName, "default_color", "red"),
		textStyle:  cfg.GetString(appName, "text_style", defaultTextStyle),
	}
	if _, ok := pixel.CodeForName(s.color); !ok {
		log.Printf("PixelGrid: Unknown default_color %q, using red", s.color)
		s.color = "red"
	}
	s.palette = resolvePalette(cfg.GetStringMap(paletteSection))
	return s
}

func resolvePalette(overrides map[string]string) map[pixel.Code]tcell.Color {
	out := make(map[pixel.Code]tcell.Color, len(defaultPalette))
	for _, name := range pixel.ColorNames() {
		code, _ := pixel.CodeForName(name)
		hex := defaultPalette[name]
		if v, ok := overrides[name]; ok {
			if _, err := colorful.Hex(v); err != nil {
				log.Printf("PixelGrid: Ignoring palette %s=%q: %v", name, v, err)
			} else {
				hex = v
			}
		}
		out[code] = hexColor(hex)
	}
	return out
}

// hexColor converts "#rrggbb" to a tcell colour. Invalid input gives black.
func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorBlack
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// contrastColor picks black or white text for a swatch filled with c.
func contrastColor(c tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return tcell.ColorWhite
	}
	l, _, _ := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
