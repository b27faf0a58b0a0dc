package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpix/texel"
)

// Painter writes into a framebuffer, discarding anything outside its clip.
type Painter struct {
	buf  [][]texel.Cell
	clip Rect
}

// NewPainter constructs a painter over buf restricted to clip.
func NewPainter(buf [][]texel.Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// Clip returns the active clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// SetCell writes one cell if it falls inside the clip and the buffer.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = texel.Cell{Ch: ch, Style: style}
}

// Fill paints r with ch.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes s starting at (x, y), no wider than maxW columns when
// maxW > 0. Wide runes take two columns; the trailing column is blanked.
// Returns the number of columns written.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style, maxW int) int {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if maxW > 0 && col+w > maxW {
			break
		}
		p.SetCell(x+col, y, r, style)
		if w == 2 {
			p.SetCell(x+col+1, y, ' ', style)
		}
		col += w
	}
	return col
}

// DrawBorder strokes r using charset (h, v, tl, tr, bl, br).
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, charset[0], style)
		p.SetCell(x, y1, charset[0], style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, charset[1], style)
		p.SetCell(x1, y, charset[1], style)
	}
	p.SetCell(r.X, r.Y, charset[2], style)
	p.SetCell(x1, r.Y, charset[3], style)
	p.SetCell(r.X, y1, charset[4], style)
	p.SetCell(x1, y1, charset[5], style)
}
