// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/buffer.go
// Summary: Owns the mutable grid behind the drawing widget.

package pixel

import "fmt"

// Buffer owns the current grid. It is not safe for concurrent use; callers
// serialise access the same way they serialise input events.
type Buffer struct {
	grid *Grid
}

// NewBuffer returns an all-black buffer of size d.
func NewBuffer(d Dims) *Buffer {
	return &Buffer{grid: NewGrid(d)}
}

// Dims returns the fixed buffer size.
func (b *Buffer) Dims() Dims { return b.grid.Dims() }

// Reset replaces every cell with black.
func (b *Buffer) Reset() {
	b.grid.Fill(BlackCell())
}

// Paint stores the colour cell for colorName at (row, col) and returns it.
// Unknown names paint black. Out-of-range positions are ignored and report false.
func (b *Buffer) Paint(row, col int, colorName string) (Cell, bool) {
	if !b.grid.Dims().Contains(row, col) {
		return nil, false
	}
	cell := ColorCellNamed(colorName)
	b.grid.Set(row, col, cell)
	return cell, true
}

// ReplaceAll swaps in a copy of g. The size must match the buffer.
func (b *Buffer) ReplaceAll(g *Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrDimensionMismatch)
	}
	if g.Dims() != b.grid.Dims() {
		return fmt.Errorf("%w: got %s, want %s", ErrDimensionMismatch, g.Dims(), b.grid.Dims())
	}
	b.grid = g.Clone()
	return nil
}

// Snapshot returns a copy of the current grid.
func (b *Buffer) Snapshot() *Grid {
	return b.grid.Clone()
}

// At returns the cell at (row, col).
func (b *Buffer) At(row, col int) Cell {
	return b.grid.At(row, col)
}

// Encode returns the text form of the current grid.
func (b *Buffer) Encode() string {
	return Encode(b.grid)
}
