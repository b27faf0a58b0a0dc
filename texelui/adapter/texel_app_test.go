package adapter_test

import (
	"testing"
	"time"

	"github.com/framegrace/texelpix/texel"
	"github.com/framegrace/texelpix/texelui/adapter"
)

var _ texel.App = (*adapter.UIApp)(nil)
var _ texel.MouseHandler = (*adapter.UIApp)(nil)
var _ texel.PasteHandler = (*adapter.UIApp)(nil)

func TestUIAppResizeRunsLayout(t *testing.T) {
	app := adapter.NewUIApp("", nil)
	var gotW, gotH int
	app.OnResize(func(w, h int) { gotW, gotH = w, h })
	app.Resize(12, 3)
	if gotW != 12 || gotH != 3 {
		t.Fatalf("layout callback got %dx%d", gotW, gotH)
	}
	buf := app.Render()
	if len(buf) != 3 || len(buf[0]) != 12 {
		t.Fatalf("unexpected render size %dx%d", len(buf[0]), len(buf))
	}
	if app.GetTitle() != "TexelUI" {
		t.Fatalf("unexpected default title %q", app.GetTitle())
	}
}

func TestUIAppStopUnblocksRun(t *testing.T) {
	app := adapter.NewUIApp("x", nil)
	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	app.Stop()
	app.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
