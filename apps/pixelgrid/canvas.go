// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/canvas.go
// Summary: Widget that renders the pixel grid and turns mouse input into strokes.
// Usage: The controller draws through the Renderer methods; the canvas keeps
// its own copy of what is shown so rejected text edits leave it untouched.

package pixelgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/pixel"
	"github.com/framegrace/texelpix/texelui/core"
)

const gridLineRune = '▏'

// PointerSink receives grid-level pointer events.
type PointerSink interface {
	PointerDown(col, row int, inside bool)
	PointerMove(col, row int, inside bool)
	PointerUp()
	PointerLeave()
}

// Canvas draws one block per grid cell.
type Canvas struct {
	core.BaseWidget
	Sink PointerSink

	dims       pixel.Dims
	cellWidth  int
	cellHeight int
	gridLines  bool
	palette    map[pixel.Code]tcell.Color
	gridLine   tcell.Color
	glyph      tcell.Color

	shown [][]pixel.Cell // [row][col]
	held  bool
}

func NewCanvas(x, y int, s settings) *Canvas {
	c := &Canvas{
		dims:       s.dims,
		cellWidth:  s.cellWidth,
		cellHeight: s.cellHeight,
		gridLines:  s.gridLines && s.cellWidth >= 2,
		palette:    s.palette,
		gridLine:   hexColor(gridLineHex),
		glyph:      hexColor(glyphHex),
	}
	c.shown = make([][]pixel.Cell, s.dims.Rows)
	for r := range c.shown {
		c.shown[r] = make([]pixel.Cell, s.dims.Cols)
		for col := range c.shown[r] {
			c.shown[r][col] = pixel.BlackCell()
		}
	}
	c.SetPosition(x, y)
	c.Resize(0, 0)
	c.SetFocusable(true)
	return c
}

// Resize ignores the requested size; the canvas is always as large as the grid.
func (c *Canvas) Resize(int, int) {
	c.BaseWidget.Resize(c.dims.Cols*c.cellWidth, c.dims.Rows*c.cellHeight)
}

// Geometry returns the current cell placement on screen.
func (c *Canvas) Geometry() Geometry {
	x, y := c.Position()
	return Geometry{
		OriginX:    x,
		OriginY:    y,
		CellWidth:  c.cellWidth,
		CellHeight: c.cellHeight,
		Dims:       c.dims,
	}
}

// SetGridLines toggles the cell separators. Cells one column wide never show them.
func (c *Canvas) SetGridLines(on bool) {
	on = on && c.cellWidth >= 2
	if c.gridLines == on {
		return
	}
	c.gridLines = on
	c.Invalidate()
}

// GridLines reports whether separators are drawn.
func (c *Canvas) GridLines() bool { return c.gridLines }

// CellAt returns what the canvas currently shows at (col, row).
func (c *Canvas) CellAt(col, row int) pixel.Cell {
	if !c.dims.Contains(row, col) {
		return nil
	}
	return c.shown[row][col]
}

// DrawCell implements Renderer.
func (c *Canvas) DrawCell(col, row int, cell pixel.Cell) {
	if !c.dims.Contains(row, col) {
		return
	}
	if cell == nil {
		cell = pixel.BlackCell()
	}
	c.shown[row][col] = cell
	c.InvalidateRect(c.Geometry().CellRect(col, row))
}

// Redraw implements Renderer.
func (c *Canvas) Redraw(g *pixel.Grid) {
	g.Each(func(row, col int, cell pixel.Cell) {
		if c.dims.Contains(row, col) {
			c.shown[row][col] = cell
		}
	})
	c.Invalidate()
}

func (c *Canvas) Draw(p *core.Painter) {
	geom := c.Geometry()
	for row := 0; row < c.dims.Rows; row++ {
		for col := 0; col < c.dims.Cols; col++ {
			c.drawCell(p, geom.CellRect(col, row), c.shown[row][col])
		}
	}
}

func (c *Canvas) drawCell(p *core.Painter, r core.Rect, cell pixel.Cell) {
	bg := tcell.ColorBlack
	glyph := ' '
	switch v := cell.(type) {
	case pixel.ColorCell:
		bg = c.palette[v.Code]
	case pixel.CharCell:
		glyph = v.Char
	}
	fill := tcell.StyleDefault.Background(bg).Foreground(c.glyph)
	p.Fill(r, ' ', fill)
	if glyph != ' ' {
		p.SetCell(r.X+r.W/2, r.Y+(r.H-1)/2, glyph, fill.Bold(true))
	}
	if c.gridLines {
		line := fill.Foreground(c.gridLine)
		for y := r.Y; y < r.Y+r.H; y++ {
			p.SetCell(r.X, y, gridLineRune, line)
		}
	}
}

// HandleMouse maps button-1 activity to strokes. A press starts a stroke,
// motion while held paints, leaving the grid ends it.
func (c *Canvas) HandleMouse(ev *tcell.EventMouse) bool {
	if c.Sink == nil {
		return false
	}
	x, y := ev.Position()
	col, row, inside := c.Geometry().CellAt(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !c.held:
		c.held = true
		c.Sink.PointerDown(col, row, inside)
	case down && inside:
		c.Sink.PointerMove(col, row, inside)
	case down:
		c.Sink.PointerLeave()
	case c.held:
		c.held = false
		c.Sink.PointerUp()
	default:
		if !inside {
			c.Sink.PointerLeave()
		}
		return false
	}
	return true
}
