// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/cell.go
// Summary: Cell variants stored in a grid position.

package pixel

import "fmt"

// Cell is the content of one grid position. It is either a ColorCell or a
// CharCell; no other implementations exist outside this package.
type Cell interface {
	isCell()
}

// ColorCell is a solid palette colour.
type ColorCell struct {
	Code Code
	Name string
}

// CharCell holds a literal alphanumeric character. It renders like black but
// keeps the character in the text form.
type CharCell struct {
	Char rune
}

func (ColorCell) isCell() {}
func (CharCell) isCell()  {}

// IsBlack reports whether the cell is the empty colour.
func (c ColorCell) IsBlack() bool { return c.Code == CodeBlack }

// BlackCell returns the empty cell.
func BlackCell() ColorCell {
	return ColorCell{Code: CodeBlack, Name: "black"}
}

// ColorCellNamed returns the colour cell for name. Unknown names give black.
func ColorCellNamed(name string) ColorCell {
	code, ok := CodeForName(name)
	if !ok {
		return BlackCell()
	}
	return ColorCell{Code: code, Name: name}
}

// ColorCellFor returns the colour cell for a known code.
func ColorCellFor(code Code) (ColorCell, bool) {
	name := code.Name()
	if name == "" {
		return ColorCell{}, false
	}
	return ColorCell{Code: code, Name: name}, true
}

// NewCharCell validates r against [0-9A-Za-z].
func NewCharCell(r rune) (CharCell, error) {
	if !isPixelChar(r) {
		return CharCell{}, fmt.Errorf("%w: %q", ErrIllegalChar, r)
	}
	return CharCell{Char: r}, nil
}

func isPixelChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
