package adapter

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/texel"
	"github.com/framegrace/texelpix/texelui/core"
)

// UIApp adapts a TexelUI UIManager to the texel.App interface.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	stopOnce sync.Once
	onResize func(w, h int)
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager()
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

// Run blocks until Stop is called.
func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() { a.stopOnce.Do(func() { close(a.stopCh) }) }

// Done is closed once the app has been stopped.
func (a *UIApp) Done() <-chan struct{} { return a.stopCh }

// OnResize registers a layout callback run after the UI has been resized.
func (a *UIApp) OnResize(fn func(w, h int)) { a.onResize = fn }

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.onResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]texel.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "TexelUI"
	}
	return a.title
}

func (a *UIApp) HandleKey(ev *tcell.EventKey) { a.ui.HandleKey(ev) }

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) { a.ui.HandleMouse(ev) }

func (a *UIApp) HandlePaste(data []byte) { a.ui.HandlePaste(data) }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.ui.SetRefreshNotifier(ch) }

// UI exposes the manager for composition.
func (a *UIApp) UI() *core.UIManager { return a.ui }
