package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpix/texelui/core"
)

// Button is a clickable label drawn as "[ Text ]".
// Enter or Space activates it while focused.
type Button struct {
	core.BaseWidget
	Text       string
	Style      tcell.Style
	FocusStyle tcell.Style
	OnClick    func()

	pressed bool
}

// NewButton creates a button sized to fit its text.
func NewButton(x, y int, text string) *Button {
	b := &Button{
		Text:       text,
		Style:      tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		FocusStyle: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
	}
	b.SetPosition(x, y)
	b.Resize(runewidth.StringWidth(text)+4, 1)
	b.SetFocusable(true)
	return b
}

// SetText changes the caption without resizing the button.
func (b *Button) SetText(text string) {
	if b.Text == text {
		return
	}
	b.Text = text
	b.Invalidate()
}

func (b *Button) Draw(p *core.Painter) {
	style := b.Style
	if b.IsFocused() {
		style = b.FocusStyle
	}
	p.Fill(b.Rect, ' ', style)
	caption := "[ " + b.Text + " ]"
	// Centre the caption when the button is wider than the text.
	x := b.Rect.X + (b.Rect.W-runewidth.StringWidth(caption))/2
	if x < b.Rect.X {
		x = b.Rect.X
	}
	p.DrawText(x, b.Rect.Y, caption, style, b.Rect.X+b.Rect.W-x)
}

func (b *Button) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
		b.activate()
		return true
	}
	return false
}

// HandleMouse activates on the press edge only; held drags do not repeat.
func (b *Button) HandleMouse(ev *tcell.EventMouse) bool {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down {
		b.pressed = false
		return false
	}
	if b.pressed {
		return true
	}
	b.pressed = true
	if x, y := ev.Position(); b.HitTest(x, y) {
		b.activate()
	}
	return true
}

func (b *Button) activate() {
	if b.OnClick != nil {
		b.OnClick()
	}
	b.Invalidate()
}
