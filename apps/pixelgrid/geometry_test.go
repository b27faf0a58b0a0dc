// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package pixelgrid

import (
	"testing"

	"github.com/framegrace/texelpix/pixel"
	"github.com/framegrace/texelpix/texelui/core"
)

func TestGeometryCellAt(t *testing.T) {
	g := Geometry{OriginX: 3, OriginY: 2, CellWidth: 2, CellHeight: 1, Dims: pixel.DefaultDims}
	cases := []struct {
		x, y     int
		col, row int
		ok       bool
	}{
		{3, 2, 0, 0, true},
		{4, 2, 0, 0, true},
		{5, 2, 1, 0, true},
		{44, 5, 20, 3, true},
		{45, 5, 0, 0, false},
		{2, 2, 0, 0, false},
		{3, 1, 0, 0, false},
		{3, 6, 0, 0, false},
	}
	for _, tc := range cases {
		col, row, ok := g.CellAt(tc.x, tc.y)
		if ok != tc.ok || (ok && (col != tc.col || row != tc.row)) {
			t.Errorf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.x, tc.y, col, row, ok, tc.col, tc.row, tc.ok)
		}
	}
}

func TestGeometryRects(t *testing.T) {
	g := Geometry{OriginX: 1, OriginY: 1, CellWidth: 3, CellHeight: 2, Dims: pixel.Dims{Cols: 4, Rows: 2}}
	if got, want := g.CellRect(2, 1), (core.Rect{X: 7, Y: 3, W: 3, H: 2}); got != want {
		t.Fatalf("CellRect = %+v, want %+v", got, want)
	}
	if got, want := g.Extent(), (core.Rect{X: 1, Y: 1, W: 12, H: 4}); got != want {
		t.Fatalf("Extent = %+v, want %+v", got, want)
	}
	if _, _, ok := (Geometry{Dims: pixel.DefaultDims}).CellAt(0, 0); ok {
		t.Fatalf("zero-sized cells must never hit")
	}
}
