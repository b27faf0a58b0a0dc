// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/grid.go
// Summary: Fixed-size row-major cell matrix.

package pixel

import "fmt"

// Dims is the size of a grid in cells.
type Dims struct {
	Cols int
	Rows int
}

// DefaultDims is the 21x4 grid of the reference widget.
var DefaultDims = Dims{Cols: 21, Rows: 4}

// Contains reports whether (row, col) is inside the grid.
func (d Dims) Contains(row, col int) bool {
	return row >= 0 && row < d.Rows && col >= 0 && col < d.Cols
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Cols, d.Rows)
}

// Grid is a Rows x Cols matrix of cells. Every position always holds a cell.
type Grid struct {
	dims  Dims
	cells []Cell
}

// NewGrid returns an all-black grid. Negative dimensions are clamped to zero.
func NewGrid(d Dims) *Grid {
	if d.Cols < 0 {
		d.Cols = 0
	}
	if d.Rows < 0 {
		d.Rows = 0
	}
	g := &Grid{dims: d, cells: make([]Cell, d.Cols*d.Rows)}
	g.Fill(BlackCell())
	return g
}

// Dims returns the grid size.
func (g *Grid) Dims() Dims { return g.dims }

// At returns the cell at (row, col). It panics when out of range.
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores c at (row, col). A nil cell is stored as black.
func (g *Grid) Set(row, col int, c Cell) {
	if c == nil {
		c = BlackCell()
	}
	g.cells[g.index(row, col)] = c
}

// Fill stores c in every position.
func (g *Grid) Fill(c Cell) {
	if c == nil {
		c = BlackCell()
	}
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Each visits the cells row by row, left to right.
func (g *Grid) Each(fn func(row, col int, c Cell)) {
	for r := 0; r < g.dims.Rows; r++ {
		for c := 0; c < g.dims.Cols; c++ {
			fn(r, c, g.cells[r*g.dims.Cols+c])
		}
	}
}

// Clone returns an independent copy. Cells are values so a shallow copy is enough.
func (g *Grid) Clone() *Grid {
	out := &Grid{dims: g.dims, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal compares two grids cell for cell.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.dims != other.dims {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) index(row, col int) int {
	if !g.dims.Contains(row, col) {
		panic(fmt.Sprintf("pixel: cell (%d,%d) outside %s grid", row, col, g.dims))
	}
	return row*g.dims.Cols + col
}
