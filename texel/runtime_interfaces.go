package texel

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the rendering surface used by the runner. It mirrors the
// subset of tcell.Screen functionality required today so tests can swap in a
// simulation screen.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	Clear()
	Show()
	Sync()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	EnableMouse()
	DisableMouse()
	EnablePaste()
	SetClipboard(data []byte)
}

// BufferStore tracks the last rendered buffer for a drawable region so we can
// compute diffs.
type BufferStore interface {
	Snapshot() [][]Cell
	Save(buf [][]Cell)
	Clear()
}
