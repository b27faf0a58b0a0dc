package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpix/texelui/core"
)

// Label is a single line of static text. Text wider than the rect is
// truncated with an ellipsis.
type Label struct {
	core.BaseWidget
	Text   string
	Style  tcell.Style
	Hidden bool
}

func NewLabel(x, y, w, h int, text string) *Label {
	l := &Label{
		Text:  text,
		Style: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	l.SetPosition(x, y)
	l.Resize(w, h)
	return l
}

// SetText replaces the text and invalidates the label.
func (l *Label) SetText(text string) {
	if l.Text == text {
		return
	}
	l.Text = text
	l.Invalidate()
}

// SetHidden toggles visibility.
func (l *Label) SetHidden(hidden bool) {
	if l.Hidden == hidden {
		return
	}
	l.Hidden = hidden
	l.Invalidate()
}

func (l *Label) Draw(p *core.Painter) {
	if l.Hidden || l.Rect.W <= 0 || l.Rect.H <= 0 {
		return
	}
	text := l.Text
	if runewidth.StringWidth(text) > l.Rect.W {
		text = runewidth.Truncate(text, l.Rect.W, "…")
	}
	p.DrawText(l.Rect.X, l.Rect.Y, text, l.Style, l.Rect.W)
}
