// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Contract between apps and the screen runner.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character cell of a rendered frame.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is a self-contained program that renders into a cell buffer.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
}

// MouseHandler is implemented by apps that consume mouse events.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}

// PasteHandler is implemented by apps that accept bracketed paste payloads.
type PasteHandler interface {
	HandlePaste(data []byte)
}

// ClipboardSetter is implemented by apps that write to the system clipboard.
// The runner supplies a sink that forwards to the terminal.
type ClipboardSetter interface {
	SetClipboardSink(sink func(data []byte) error)
}
