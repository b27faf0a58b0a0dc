// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/geometry.go
// Summary: Maps screen coordinates to grid cells.

package pixelgrid

import (
	"github.com/framegrace/texelpix/pixel"
	"github.com/framegrace/texelpix/texelui/core"
)

// Geometry places a grid on screen. Each grid cell covers CellWidth x
// CellHeight terminal cells starting at the origin.
type Geometry struct {
	OriginX, OriginY      int
	CellWidth, CellHeight int
	Dims                  pixel.Dims
}

// CellAt maps a screen coordinate to a grid cell. ok is false outside the grid.
func (g Geometry) CellAt(x, y int) (col, row int, ok bool) {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return 0, 0, false
	}
	dx, dy := x-g.OriginX, y-g.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	col, row = dx/g.CellWidth, dy/g.CellHeight
	if !g.Dims.Contains(row, col) {
		return 0, 0, false
	}
	return col, row, true
}

// CellRect returns the screen rectangle covered by one grid cell.
func (g Geometry) CellRect(col, row int) core.Rect {
	return core.Rect{
		X: g.OriginX + col*g.CellWidth,
		Y: g.OriginY + row*g.CellHeight,
		W: g.CellWidth,
		H: g.CellHeight,
	}
}

// Extent returns the screen rectangle covered by the whole grid.
func (g Geometry) Extent() core.Rect {
	return core.Rect{
		X: g.OriginX,
		Y: g.OriginY,
		W: g.Dims.Cols * g.CellWidth,
		H: g.Dims.Rows * g.CellHeight,
	}
}
