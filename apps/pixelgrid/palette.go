// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/palette.go
// Summary: Row of colour swatches for picking the drawing colour.

package pixelgrid

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/pixel"
	"github.com/framegrace/texelpix/texelui/core"
)

const swatchWidth = 5

// Palette shows one swatch per colour, numbered 1-8. The active swatch is
// bracketed.
type Palette struct {
	core.BaseWidget
	OnSelect func(name string)

	names   []string
	colors  map[pixel.Code]tcell.Color
	active  string
	pressed bool
}

func NewPalette(x, y int, colors map[pixel.Code]tcell.Color, active string) *Palette {
	p := &Palette{
		names:  pixel.ColorNames(),
		colors: colors,
		active: active,
	}
	p.SetPosition(x, y)
	p.Resize(0, 0)
	p.SetFocusable(true)
	return p
}

// Resize ignores the requested size.
func (p *Palette) Resize(int, int) {
	p.BaseWidget.Resize(len(p.names)*swatchWidth, 1)
}

// Active returns the highlighted colour name.
func (p *Palette) Active() string { return p.active }

// SetActive highlights name without notifying OnSelect.
func (p *Palette) SetActive(name string) {
	if p.active == name {
		return
	}
	p.active = name
	p.Invalidate()
}

// NameForKey maps the digit keys 1-8 to colour names.
func (p *Palette) NameForKey(r rune) (string, bool) {
	i := int(r - '1')
	if i < 0 || i >= len(p.names) {
		return "", false
	}
	return p.names[i], true
}

func (p *Palette) Draw(painter *core.Painter) {
	for i, name := range p.names {
		code, _ := pixel.CodeForName(name)
		bg := p.colors[code]
		style := tcell.StyleDefault.Background(bg).Foreground(contrastColor(bg))
		label := "  " + strconv.Itoa(i+1) + "  "
		if name == p.active {
			label = " [" + strconv.Itoa(i+1) + "] "
			style = style.Bold(true).Underline(p.IsFocused())
		}
		painter.DrawText(p.Rect.X+i*swatchWidth, p.Rect.Y, label, style, swatchWidth)
	}
}

// HandleKey moves the selection with Left/Right or picks a digit.
func (p *Palette) HandleKey(ev *tcell.EventKey) bool {
	idx := p.index()
	switch ev.Key() {
	case tcell.KeyLeft:
		p.choose((idx + len(p.names) - 1) % len(p.names))
		return true
	case tcell.KeyRight:
		p.choose((idx + 1) % len(p.names))
		return true
	case tcell.KeyRune:
		if name, ok := p.NameForKey(ev.Rune()); ok {
			p.choose(p.indexOf(name))
			return true
		}
	}
	return false
}

// HandleMouse selects the swatch under the press.
func (p *Palette) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		p.pressed = false
		return false
	}
	if p.pressed {
		return true
	}
	p.pressed = true
	x, y := ev.Position()
	if !p.HitTest(x, y) {
		return false
	}
	p.choose((x - p.Rect.X) / swatchWidth)
	return true
}

func (p *Palette) choose(i int) {
	if i < 0 || i >= len(p.names) {
		return
	}
	p.SetActive(p.names[i])
	if p.OnSelect != nil {
		p.OnSelect(p.names[i])
	}
}

func (p *Palette) index() int { return p.indexOf(p.active) }

func (p *Palette) indexOf(name string) int {
	for i, n := range p.names {
		if n == name {
			return i
		}
	}
	return 0
}
