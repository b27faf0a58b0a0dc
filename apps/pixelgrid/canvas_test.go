// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package pixelgrid

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/pixel"
	"github.com/framegrace/texelpix/texel"
	"github.com/framegrace/texelpix/texelui/core"
)

type sinkLog []string

func (s *sinkLog) PointerDown(col, row int, inside bool) {
	*s = append(*s, fmt.Sprintf("down %d,%d %v", col, row, inside))
}
func (s *sinkLog) PointerMove(col, row int, inside bool) {
	*s = append(*s, fmt.Sprintf("move %d,%d %v", col, row, inside))
}
func (s *sinkLog) PointerUp()    { *s = append(*s, "up") }
func (s *sinkLog) PointerLeave() { *s = append(*s, "leave") }

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func blankFrame(w, h int) [][]texel.Cell {
	buf := make([][]texel.Cell, h)
	for y := range buf {
		buf[y] = make([]texel.Cell, w)
	}
	return buf
}

func TestCanvasSizeFollowsGrid(t *testing.T) {
	c := NewCanvas(2, 5, defaultSettings())
	c.Resize(1, 1)
	if w, h := c.Size(); w != 42 || h != 4 {
		t.Fatalf("canvas size %dx%d, want 42x4", w, h)
	}
}

func TestCanvasMouseStroke(t *testing.T) {
	c := NewCanvas(2, 5, defaultSettings())
	var log sinkLog
	c.Sink = &log

	c.HandleMouse(mouse(2, 5, tcell.Button1))
	c.HandleMouse(mouse(5, 5, tcell.Button1))
	c.HandleMouse(mouse(0, 0, tcell.Button1))
	c.HandleMouse(mouse(0, 0, tcell.ButtonNone))
	if handled := c.HandleMouse(mouse(0, 0, tcell.ButtonNone)); handled {
		t.Fatalf("hover outside should not be consumed")
	}

	want := []string{"down 0,0 true", "move 1,0 true", "leave", "up", "leave"}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Fatalf("sink got %v, want %v", log, want)
	}
}

func TestCanvasDrawsCells(t *testing.T) {
	s := defaultSettings()
	c := NewCanvas(0, 0, s)
	var dirty []core.Rect
	c.SetInvalidator(func(r core.Rect) { dirty = append(dirty, r) })

	c.DrawCell(1, 0, pixel.ColorCellNamed("red"))
	c.DrawCell(2, 1, pixel.CharCell{Char: 'Q'})
	if len(dirty) != 2 || dirty[0] != (core.Rect{X: 2, Y: 0, W: 2, H: 1}) {
		t.Fatalf("unexpected invalidations %v", dirty)
	}

	buf := blankFrame(42, 4)
	c.Draw(core.NewPainter(buf, core.Rect{W: 42, H: 4}))

	red := s.palette[pixel.CodeRed]
	line := buf[0][2]
	if line.Ch != gridLineRune {
		t.Fatalf("expected grid line at cell start, got %q", line.Ch)
	}
	if _, bg, _ := line.Style.Decompose(); bg != red {
		t.Fatalf("grid line should sit on the cell colour")
	}
	if _, bg, _ := buf[0][3].Style.Decompose(); bg != red {
		t.Fatalf("expected red fill")
	}
	if buf[1][5].Ch != 'Q' {
		t.Fatalf("expected glyph in second column of the cell, got %q", buf[1][5].Ch)
	}
	if _, bg, _ := buf[1][5].Style.Decompose(); bg != tcell.ColorBlack {
		t.Fatalf("char cells render on black")
	}
	if c.CellAt(2, 1) != pixel.Cell(pixel.CharCell{Char: 'Q'}) {
		t.Fatalf("mirror not updated")
	}
}

func TestCanvasRedrawReplacesMirror(t *testing.T) {
	c := NewCanvas(0, 0, defaultSettings())
	c.DrawCell(0, 0, pixel.ColorCellNamed("blue"))
	c.Redraw(pixel.NewGrid(pixel.DefaultDims))
	if cell, ok := c.CellAt(0, 0).(pixel.ColorCell); !ok || !cell.IsBlack() {
		t.Fatalf("expected black after redraw, got %#v", c.CellAt(0, 0))
	}
	if c.CellAt(21, 0) != nil {
		t.Fatalf("out of range lookups return nil")
	}
}

func TestPaletteSelection(t *testing.T) {
	s := defaultSettings()
	p := NewPalette(1, 2, s.palette, "red")
	var picked []string
	p.OnSelect = func(name string) { picked = append(picked, name) }

	p.HandleMouse(mouse(1+4*swatchWidth+1, 2, tcell.Button1))
	p.HandleMouse(mouse(1+5*swatchWidth+1, 2, tcell.Button1))
	p.HandleMouse(mouse(1+5*swatchWidth+1, 2, tcell.ButtonNone))
	p.HandleKey(tcell.NewEventKey(tcell.KeyRune, '8', tcell.ModNone))
	p.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	want := []string{"blue", "black", "red"}
	if fmt.Sprint(picked) != fmt.Sprint(want) {
		t.Fatalf("picked %v, want %v", picked, want)
	}
	if p.Active() != "red" {
		t.Fatalf("active = %q", p.Active())
	}
	if _, ok := p.NameForKey('9'); ok {
		t.Fatalf("9 is not a palette key")
	}
}
