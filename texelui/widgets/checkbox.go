package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpix/texelui/core"
)

// Checkbox is a toggle drawn as "[x] Label". A leading '>' marks focus.
type Checkbox struct {
	core.BaseWidget
	Label    string
	Checked  bool
	Style    tcell.Style
	OnChange func(checked bool)

	pressed bool
}

// NewCheckbox creates a checkbox sized to its label.
func NewCheckbox(x, y int, label string) *Checkbox {
	c := &Checkbox{
		Label: label,
		Style: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	c.SetPosition(x, y)
	c.Resize(6+runewidth.StringWidth(label), 1)
	c.SetFocusable(true)
	return c
}

// SetChecked changes the state without firing OnChange.
func (c *Checkbox) SetChecked(v bool) {
	if c.Checked == v {
		return
	}
	c.Checked = v
	c.Invalidate()
}

func (c *Checkbox) Draw(p *core.Painter) {
	p.Fill(c.Rect, ' ', c.Style)
	cursor := "  "
	if c.IsFocused() {
		cursor = "> "
	}
	box := "[ ] "
	if c.Checked {
		box = "[x] "
	}
	p.DrawText(c.Rect.X, c.Rect.Y, cursor+box+c.Label, c.Style, c.Rect.W)
}

// HandleKey toggles on Space or Enter.
func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
		c.toggle()
		return true
	}
	return false
}

// HandleMouse toggles once per button-1 press.
func (c *Checkbox) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		c.pressed = false
		return false
	}
	if c.pressed {
		return true
	}
	c.pressed = true
	if x, y := ev.Position(); c.HitTest(x, y) {
		c.toggle()
	}
	return true
}

func (c *Checkbox) toggle() {
	c.Checked = !c.Checked
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
	c.Invalidate()
}
