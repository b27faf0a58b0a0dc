// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/app.go
// Summary: Pixel grid drawing app: canvas, palette, text form and clipboard copy.
// Usage: Registered as "pixelgrid" with the dev runner.

package pixelgrid

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpix/config"
	"github.com/framegrace/texelpix/texel"
	"github.com/framegrace/texelpix/texelui/adapter"
	"github.com/framegrace/texelpix/texelui/core"
	"github.com/framegrace/texelpix/texelui/widgets"
)

const (
	copyCaption   = "Copy"
	copiedCaption = "Copied!"
	errorCaption  = "Error"
	hintText      = "Tab focus  1-8 colour  Ctrl-L clear  Ctrl-Y copy  Ctrl-C quit"
)

var errNoClipboard = errors.New("pixelgrid: no clipboard available")

// App wires the controller to its widgets.
type App struct {
	*adapter.UIApp

	mu       sync.Mutex
	settings settings
	ctrl     *Controller

	backdrop   *widgets.Pane
	title      *widgets.Label
	hint       *widgets.Label
	palette    *Palette
	colorLabel *widgets.Label
	frame      *widgets.Border
	canvas     *Canvas
	clearBtn   *widgets.Button
	copyBtn    *widgets.Button
	lines      *widgets.Checkbox
	inputBox   *widgets.Border
	input      *widgets.TextInput
	invalid    *widgets.Label
	tooLong    *widgets.Label

	clipboard func([]byte) error
	revert    *time.Timer
}

var (
	_ texel.App             = (*App)(nil)
	_ texel.MouseHandler    = (*App)(nil)
	_ texel.PasteHandler    = (*App)(nil)
	_ texel.ClipboardSetter = (*App)(nil)
)

// New creates the app using the stored pixelgrid configuration.
func New(title string) texel.App {
	return NewWithConfig(title, config.App(appName))
}

// NewWithConfig creates the app from cfg. A nil cfg uses built-in defaults.
func NewWithConfig(title string, cfg config.Config) *App {
	if title == "" {
		title = "Pixel Grid"
	}
	s := loadSettings(cfg)
	ui := core.NewUIManager()
	a := &App{UIApp: adapter.NewUIApp(title, ui), settings: s}

	bg := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	ui.SetBackground(bg)

	a.backdrop = widgets.NewPane(0, 0, 0, 0, bg)
	a.title = widgets.NewLabel(0, 0, 0, 1, title)
	a.title.Style = bg.Bold(true)
	a.hint = widgets.NewLabel(0, 0, 0, 1, hintText)
	a.hint.Style = bg.Foreground(tcell.ColorGray)

	a.palette = NewPalette(0, 0, s.palette, s.color)
	a.palette.OnSelect = a.selectColor
	a.colorLabel = widgets.NewLabel(0, 0, 0, 1, "")

	a.frame = widgets.NewBorder(0, 0, 0, 0, bg)
	a.frame.Title = s.dims.String()
	a.canvas = NewCanvas(0, 0, s)

	a.clearBtn = widgets.NewButton(0, 0, "Clear")
	a.clearBtn.OnClick = a.clear
	a.copyBtn = widgets.NewButton(0, 0, copyCaption)
	a.copyBtn.Resize(maxCaptionWidth(copyCaption, copiedCaption, errorCaption)+4, 1)
	a.copyBtn.OnClick = a.copyText
	a.lines = widgets.NewCheckbox(0, 0, "Grid lines")
	a.lines.Checked = a.canvas.GridLines()
	a.lines.OnChange = a.canvas.SetGridLines

	a.input = widgets.NewTextInput(0, 0, 0)
	a.input.Style = a.input.Style.Background(hexColor(surfaceHex))
	a.input.Colorize = newHighlighter(s.textStyle, s.palette).Styles
	a.inputBox = widgets.NewBorder(0, 0, 0, 0, bg)
	a.inputBox.Title = "Text"
	a.inputBox.SetChild(a.input)

	a.invalid = widgets.NewLabel(0, 0, 0, 1, "Invalid buffer string")
	a.invalid.Style = bg.Foreground(tcell.NewRGBColor(0xf8, 0x71, 0x71))
	a.invalid.Hidden = true
	a.tooLong = widgets.NewLabel(0, 0, 0, 1, fmt.Sprintf("String is longer than %d characters", s.threshold))
	a.tooLong.Style = bg.Foreground(tcell.NewRGBColor(0xfb, 0xbf, 0x24))
	a.tooLong.Hidden = true

	for _, w := range []core.Widget{
		a.backdrop, a.title, a.hint, a.palette, a.colorLabel, a.frame, a.canvas,
		a.clearBtn, a.copyBtn, a.lines, a.inputBox, a.invalid, a.tooLong,
	} {
		ui.AddWidget(w)
	}

	a.ctrl = NewController(Options{
		Dims:             s.dims,
		TooLongThreshold: s.threshold,
		Color:            s.color,
	}, a.canvas, a.input, newStatusIndicator(a.input, a.invalid, a.tooLong))
	a.canvas.Sink = a.ctrl
	a.input.OnChange = a.ctrl.TextChanged

	a.selectColor(s.color)
	a.ctrl.Sync()
	ui.Focus(a.input)

	a.OnResize(a.layout)
	a.layout(0, 0)
	return a
}

func maxCaptionWidth(captions ...string) int {
	w := 0
	for _, c := range captions {
		w = max(w, runewidth.StringWidth(c))
	}
	return w
}

// layout positions every widget for a surface of w x h cells.
func (a *App) layout(w, h int) {
	const x0 = 1
	inner := max(w-2*x0, 0)

	a.backdrop.SetPosition(0, 0)
	a.backdrop.Resize(w, h)

	a.title.SetPosition(x0, 0)
	a.title.Resize(min(runewidth.StringWidth(a.title.Text), inner), 1)
	hx := x0 + a.title.Rect.W + 2
	a.hint.SetPosition(hx, 0)
	a.hint.Resize(max(w-hx-x0, 0), 1)

	a.palette.SetPosition(x0, 2)
	cx := x0 + a.palette.Rect.W + 2
	a.colorLabel.SetPosition(cx, 2)
	a.colorLabel.Resize(max(w-cx-x0, 0), 1)

	cw, ch := a.canvas.Size()
	a.frame.SetPosition(x0, 4)
	a.frame.Resize(cw+2, ch+2)
	a.canvas.SetPosition(x0+1, 5)

	by := 4 + ch + 3
	a.clearBtn.SetPosition(x0, by)
	a.copyBtn.SetPosition(x0+a.clearBtn.Rect.W+2, by)
	a.lines.SetPosition(a.copyBtn.Rect.X+a.copyBtn.Rect.W+2, by)

	a.inputBox.SetPosition(x0, by+2)
	a.inputBox.Resize(max(inner, 12), 3)

	a.invalid.SetPosition(x0, by+5)
	a.invalid.Resize(inner, 1)
	a.tooLong.SetPosition(x0, by+6)
	a.tooLong.Resize(inner, 1)

	a.UI().InvalidateAll()
}

// Controller exposes the edit controller.
func (a *App) Controller() *Controller { return a.ctrl }

// Stop cancels a pending copy-status revert and ends Run.
func (a *App) Stop() {
	a.mu.Lock()
	if a.revert != nil {
		a.revert.Stop()
		a.revert = nil
	}
	a.mu.Unlock()
	a.UIApp.Stop()
}

func (a *App) Resize(cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.UIApp.Resize(cols, rows)
}

func (a *App) Render() [][]texel.Cell {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.UIApp.Render()
}

func (a *App) HandleKey(ev *tcell.EventKey) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyCtrlL:
		a.clear()
		return
	case tcell.KeyCtrlY:
		a.copyText()
		return
	}
	if a.UI().HandleKey(ev) {
		return
	}
	// Digits pick a colour whenever the text field does not own them.
	if ev.Key() == tcell.KeyRune {
		if name, ok := a.palette.NameForKey(ev.Rune()); ok {
			a.palette.SetActive(name)
			a.selectColor(name)
		}
	}
}

func (a *App) HandleMouse(ev *tcell.EventMouse) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.UI().HandleMouse(ev)
}

// HandlePaste inserts pasted text into the text field, focusing it first.
func (a *App) HandlePaste(data []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.UI().HandlePaste(data) {
		return
	}
	a.UI().Focus(a.input)
	a.UI().HandlePaste(data)
}

// SetClipboardSink implements texel.ClipboardSetter.
func (a *App) SetClipboardSink(sink func(data []byte) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clipboard = sink
}

// selectColor runs with a.mu held.
func (a *App) selectColor(name string) {
	a.ctrl.SelectColor(name)
	a.colorLabel.SetText("Colour: " + name)
}

func (a *App) clear() {
	a.ctrl.Clear()
}

// copyText writes the text field's contents to the clipboard and flashes the
// result on the Copy button. Runs with a.mu held.
func (a *App) copyText() {
	err := errNoClipboard
	if a.clipboard != nil {
		err = a.clipboard([]byte(a.input.Text()))
	}
	if err != nil {
		log.Printf("PixelGrid: Copy failed: %v", err)
		a.copyBtn.SetText(errorCaption)
	} else {
		a.copyBtn.SetText(copiedCaption)
	}

	if a.revert != nil {
		a.revert.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(a.settings.revert, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.revert != t {
			return
		}
		a.revert = nil
		a.copyBtn.SetText(copyCaption)
	})
	a.revert = t
}
