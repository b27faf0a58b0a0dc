// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/codec.go
// Summary: Converts grids to the single-line text form and back.
// Usage: Encode output is always accepted by Decode for the same dims.

package pixel

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Codec binds Encode and Decode to a fixed grid size.
type Codec struct {
	Dims Dims
}

// NewCodec returns a codec for d.
func NewCodec(d Dims) Codec { return Codec{Dims: d} }

// Encode renders g in the text form.
func (c Codec) Encode(g *Grid) string { return Encode(g) }

// Decode parses text into a grid of the codec's size.
func (c Codec) Decode(text string) (*Grid, error) { return Decode(text, c.Dims) }

// Encode renders g as space separated rows of pixel tokens:
// "." for black, "{code}" for other colours, the literal rune for char cells.
func Encode(g *Grid) string {
	d := g.Dims()
	var sb strings.Builder
	sb.Grow(d.Rows * (d.Cols + 1))
	for r := 0; r < d.Rows; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		for col := 0; col < d.Cols; col++ {
			writeToken(&sb, g.At(r, col))
		}
	}
	return sb.String()
}

func writeToken(sb *strings.Builder, c Cell) {
	switch cell := c.(type) {
	case CharCell:
		sb.WriteRune(cell.Char)
	case ColorCell:
		if cell.Code == CodeBlack {
			sb.WriteByte('.')
			return
		}
		sb.WriteByte('{')
		sb.WriteString(strconv.Itoa(int(cell.Code)))
		sb.WriteByte('}')
	default:
		sb.WriteByte('.')
	}
}

// Decode parses the text form into a grid of size d. Leading and trailing
// whitespace is ignored and an empty string gives an all-black grid. Any
// defect rejects the whole input with a *DecodeError.
func Decode(text string, d Dims) (*Grid, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NewGrid(d), nil
	}

	rows := strings.Fields(trimmed)
	if len(rows) != d.Rows {
		return nil, &DecodeError{Reason: ReasonRowCount, Row: len(rows), Column: -1}
	}

	g := NewGrid(d)
	for r, row := range rows {
		if err := decodeRow(g, r, row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func decodeRow(g *Grid, r int, row string) error {
	cols := g.Dims().Cols
	i, col := 0, 0
	for i < len(row) && col < cols {
		switch ch := row[i]; {
		case ch == '.':
			g.Set(r, col, BlackCell())
			i++
		case ch == '{':
			end := strings.IndexByte(row[i+1:], '}')
			if end < 0 {
				return &DecodeError{Reason: ReasonUnterminated, Row: r, Column: col, Offset: i, Token: row[i:]}
			}
			closeAt := i + 1 + end
			inner := row[i+1 : closeAt]
			if !allDigits(inner) {
				return &DecodeError{Reason: ReasonNonNumeric, Row: r, Column: col, Offset: i, Token: row[i : closeAt+1]}
			}
			n, err := strconv.Atoi(inner)
			cell, ok := ColorCellFor(Code(n))
			if err != nil || !ok {
				return &DecodeError{Reason: ReasonUnknownCode, Row: r, Column: col, Offset: i, Token: row[i : closeAt+1]}
			}
			g.Set(r, col, cell)
			i = closeAt + 1
		case isPixelChar(rune(ch)):
			g.Set(r, col, CharCell{Char: rune(ch)})
			i++
		default:
			bad, _ := utf8.DecodeRuneInString(row[i:])
			return &DecodeError{Reason: ReasonIllegalChar, Row: r, Column: col, Offset: i, Token: string(bad)}
		}
		col++
	}

	if col < cols {
		return &DecodeError{Reason: ReasonRowUnderfilled, Row: r, Column: col, Offset: i}
	}
	if i < len(row) {
		return &DecodeError{Reason: ReasonRowOverfilled, Row: r, Column: col, Offset: i, Token: row[i:]}
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
