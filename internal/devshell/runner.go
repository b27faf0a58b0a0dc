// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a single app full-screen on a local terminal.
// Usage: cmd/texelpix resolves an app name through RunApp.

package devshell

import (
	"fmt"
	"log"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/apps/pixelgrid"
	"github.com/framegrace/texelpix/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var registry = map[string]Builder{
	"pixelgrid": func(args []string) (texel.App, error) {
		title := "Pixel Grid"
		if len(args) > 0 {
			title = args[0]
		}
		return pixelgrid.New(title), nil
	},
}

// Apps lists the registered app names.
func Apps() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	var driver texel.ScreenDriver = texel.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer driver.Fini()
	driver.Clear()
	driver.EnableMouse()
	defer driver.DisableMouse()
	driver.EnablePaste()

	if cs, ok := app.(texel.ClipboardSetter); ok {
		cs.SetClipboardSink(func(data []byte) error {
			driver.SetClipboard(data)
			return nil
		})
	}

	width, height := driver.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	store := texel.NewInMemoryBufferStore()
	draw := func() {
		prev := store.Snapshot()
		if prev == nil {
			driver.Clear()
		}
		buffer := app.Render()
		for y, row := range buffer {
			for x, cell := range row {
				if texel.Changed(prev, x, y, cell) {
					driver.SetContent(x, y, cell.Ch, nil, cell.Style)
				}
			}
		}
		store.Save(buffer)
		driver.Show()
	}

	draw()

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
	}()
	defer app.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				if err := driver.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
					log.Printf("DevShell: Dropped refresh: %v", err)
				}
			case <-done:
				return
			}
		}
	}()

	var pasteBuffer []byte
	var inPaste bool

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := driver.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			store.Clear()
			driver.Sync()
			draw()
		case *tcell.EventPaste:
			if tev.Start() {
				inPaste = true
				pasteBuffer = nil
			} else if tev.End() {
				inPaste = false
				if ph, ok := app.(texel.PasteHandler); ok && len(pasteBuffer) > 0 {
					ph.HandlePaste(pasteBuffer)
					draw()
				}
				pasteBuffer = nil
			}
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if inPaste {
				pasteBuffer = appendPasteKey(pasteBuffer, tev)
				continue
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			if mh, ok := app.(texel.MouseHandler); ok {
				mh.HandleMouse(tev)
				draw()
			}
		}
	}
}

// appendPasteKey adds the text a key event carries while a paste is open.
func appendPasteKey(buf []byte, ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		return append(buf, string(ev.Rune())...)
	case tcell.KeyEnter, tcell.KeyLF:
		return append(buf, '\n')
	case tcell.KeyTab:
		return append(buf, '\t')
	}
	return buf
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	log.Printf("DevShell: Starting %s", name)
	return Run(buildApp, args)
}
