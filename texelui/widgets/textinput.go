package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpix/texelui/core"
)

// TextInput is a single-line editor with a horizontally scrolling viewport.
//
// OnChange fires only for edits made by the user (keys, paste). SetText is the
// programmatic path and never fires OnChange, so owners can write normalised
// text back without re-entering their own change handler.
type TextInput struct {
	core.BaseWidget
	Style    tcell.Style
	OnChange func(text string)
	// Colorize optionally returns one style per rune of text.
	Colorize func(text string) []tcell.Style

	text  []rune
	caret int
	offX  int

	mouseDown bool
}

func NewTextInput(x, y, w int) *TextInput {
	ti := &TextInput{
		Style: tcell.StyleDefault.Background(tcell.NewRGBColor(0x11, 0x18, 0x27)).Foreground(tcell.ColorWhite),
	}
	ti.SetPosition(x, y)
	ti.Resize(w, 1)
	ti.SetFocusable(true)
	return ti
}

// Text returns the current contents.
func (t *TextInput) Text() string { return string(t.text) }

// Caret returns the caret position in runes.
func (t *TextInput) Caret() int { return t.caret }

// SetText replaces the contents without notifying OnChange. The caret keeps
// its rune offset, clamped to the new length.
func (t *TextInput) SetText(s string) {
	t.text = []rune(s)
	t.clampCaret()
	t.ensureVisible()
	t.Invalidate()
}

// SetStyle changes the base style, e.g. to tint the field.
func (t *TextInput) SetStyle(style tcell.Style) {
	if t.Style == style {
		return
	}
	t.Style = style
	t.Invalidate()
}

func (t *TextInput) clampCaret() {
	if t.caret < 0 {
		t.caret = 0
	}
	if t.caret > len(t.text) {
		t.caret = len(t.text)
	}
}

func (t *TextInput) ensureVisible() {
	if t.caret < t.offX {
		t.offX = t.caret
	}
	if t.Rect.W <= 0 {
		return
	}
	// Leave one column for the caret past the last rune.
	for t.offX < t.caret && runewidth.StringWidth(string(t.text[t.offX:t.caret])) >= t.Rect.W {
		t.offX++
	}
	if t.offX > len(t.text) {
		t.offX = len(t.text)
	}
}

func (t *TextInput) Draw(p *core.Painter) {
	p.Fill(t.Rect, ' ', t.Style)
	var styles []tcell.Style
	if t.Colorize != nil {
		styles = t.Colorize(string(t.text))
	}
	_, bg, _ := t.Style.Decompose()

	col := 0
	caretCol := -1
	for i := t.offX; i <= len(t.text); i++ {
		if i == t.caret {
			caretCol = col
		}
		if i == len(t.text) {
			break
		}
		r := t.text[i]
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > t.Rect.W {
			break
		}
		style := t.Style
		if i < len(styles) {
			style = styles[i].Background(bg)
		}
		p.SetCell(t.Rect.X+col, t.Rect.Y, r, style)
		col += w
	}

	if t.IsFocused() && caretCol >= 0 && caretCol < t.Rect.W {
		ch := ' '
		if t.caret < len(t.text) {
			ch = t.text[t.caret]
		}
		p.SetCell(t.Rect.X+caretCol, t.Rect.Y, ch, t.Style.Reverse(true))
	}
}

func (t *TextInput) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		t.caret--
	case tcell.KeyRight:
		t.caret++
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.caret = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.caret = len(t.text)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.caret == 0 {
			return true
		}
		t.text = append(t.text[:t.caret-1], t.text[t.caret:]...)
		t.caret--
		t.changed()
		return true
	case tcell.KeyDelete:
		if t.caret >= len(t.text) {
			return true
		}
		t.text = append(t.text[:t.caret], t.text[t.caret+1:]...)
		t.changed()
		return true
	case tcell.KeyCtrlU:
		t.text = t.text[:0]
		t.caret = 0
		t.changed()
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		t.insert([]rune{ev.Rune()})
		return true
	default:
		return false
	}
	t.clampCaret()
	t.ensureVisible()
	t.Invalidate()
	return true
}

// HandlePaste inserts data at the caret. Line breaks and tabs become spaces.
func (t *TextInput) HandlePaste(data []byte) bool {
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, string(data))
	if s == "" {
		return false
	}
	t.insert([]rune(s))
	return true
}

func (t *TextInput) HandleMouse(ev *tcell.EventMouse) bool {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down {
		t.mouseDown = false
		return false
	}
	x, y := ev.Position()
	if !t.mouseDown && !t.HitTest(x, y) {
		return false
	}
	t.mouseDown = true
	t.caret = t.runeAtColumn(x - t.Rect.X)
	t.clampCaret()
	t.ensureVisible()
	t.Invalidate()
	return true
}

func (t *TextInput) runeAtColumn(col int) int {
	if col <= 0 {
		return t.offX
	}
	acc := 0
	for i := t.offX; i < len(t.text); i++ {
		acc += runewidth.RuneWidth(t.text[i])
		if acc > col {
			return i
		}
	}
	return len(t.text)
}

func (t *TextInput) insert(rs []rune) {
	out := make([]rune, 0, len(t.text)+len(rs))
	out = append(out, t.text[:t.caret]...)
	out = append(out, rs...)
	out = append(out, t.text[t.caret:]...)
	t.text = out
	t.caret += len(rs)
	t.changed()
}

func (t *TextInput) changed() {
	t.clampCaret()
	t.ensureVisible()
	t.Invalidate()
	if t.OnChange != nil {
		t.OnChange(string(t.text))
	}
}
