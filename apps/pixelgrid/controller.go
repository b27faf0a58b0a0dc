// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/controller.go
// Summary: Reconciles pointer painting and text edits against one buffer.
// Usage: The canvas feeds pointer events, the text field feeds user edits;
// both end in a single publish step that rewrites the canonical text.

package pixelgrid

import (
	"log"

	"github.com/framegrace/texelpix/pixel"
)

// State is the pointer drawing state.
type State int

const (
	StateIdle State = iota
	StateDrawing
)

func (s State) String() string {
	if s == StateDrawing {
		return "drawing"
	}
	return "idle"
}

// Renderer draws grid cells.
type Renderer interface {
	DrawCell(col, row int, cell pixel.Cell)
	Redraw(g *pixel.Grid)
}

// TextSurface holds the editable text form. SetText is a programmatic write.
type TextSurface interface {
	Text() string
	SetText(text string)
}

// Indicator surfaces the advisory flags to the user.
type Indicator interface {
	SetInvalid(invalid bool)
	SetTooLong(tooLong bool)
}

// Options configures a Controller.
type Options struct {
	Dims pixel.Dims
	// TooLongThreshold is the text length above which the too-long flag is raised.
	TooLongThreshold int
	// Color is the initial drawing colour.
	Color string
}

// Controller owns the buffer and arbitrates between the pointer and the text
// surface. It is not safe for concurrent use.
type Controller struct {
	buf       *pixel.Buffer
	codec     pixel.Codec
	renderer  Renderer
	surface   TextSurface
	indicator Indicator

	color     string
	state     State
	threshold int

	// writing is set while the controller itself updates the text surface;
	// change notifications arriving then are echoes, not user edits.
	writing bool

	text    string
	invalid bool
	tooLong bool
}

// NewController builds a controller over a fresh black buffer. Any collaborator
// may be nil.
func NewController(opts Options, r Renderer, s TextSurface, ind Indicator) *Controller {
	if opts.Dims.Cols <= 0 || opts.Dims.Rows <= 0 {
		opts.Dims = pixel.DefaultDims
	}
	if opts.TooLongThreshold <= 0 {
		opts.TooLongThreshold = defaultThreshold
	}
	if opts.Color == "" {
		opts.Color = "red"
	}
	if r == nil {
		r = nopRenderer{}
	}
	if s == nil {
		s = &memSurface{}
	}
	if ind == nil {
		ind = nopIndicator{}
	}
	return &Controller{
		buf:       pixel.NewBuffer(opts.Dims),
		codec:     pixel.NewCodec(opts.Dims),
		renderer:  r,
		surface:   s,
		indicator: ind,
		color:     opts.Color,
		threshold: opts.TooLongThreshold,
	}
}

// Sync redraws the whole grid and publishes the text form. Call once after
// the collaborators are ready.
func (c *Controller) Sync() {
	c.renderer.Redraw(c.buf.Snapshot())
	c.publish()
}

// SelectColor sets the drawing colour. Unknown names later paint black.
func (c *Controller) SelectColor(name string) { c.color = name }

// Color returns the drawing colour.
func (c *Controller) Color() string { return c.color }

// State returns the pointer drawing state.
func (c *Controller) State() State { return c.state }

// PointerDown starts a stroke when the pointer is over the grid.
func (c *Controller) PointerDown(col, row int, inside bool) {
	if !inside {
		return
	}
	c.state = StateDrawing
	c.paint(col, row)
}

// PointerMove continues a stroke.
func (c *Controller) PointerMove(col, row int, inside bool) {
	if c.state != StateDrawing || !inside {
		return
	}
	c.paint(col, row)
}

// PointerUp ends a stroke.
func (c *Controller) PointerUp() { c.state = StateIdle }

// PointerLeave ends a stroke when the pointer leaves the grid.
func (c *Controller) PointerLeave() { c.state = StateIdle }

// TextChanged applies a user edit of the text form. Invalid text raises the
// invalid flag and leaves the buffer and the rendered grid as they were.
func (c *Controller) TextChanged(text string) {
	if c.writing {
		return
	}
	g, err := c.codec.Decode(text)
	if err == nil {
		err = c.buf.ReplaceAll(g)
	}
	if err != nil {
		log.Printf("PixelGrid: Rejected text edit: %v", err)
		c.setInvalid(true)
		return
	}
	c.renderer.Redraw(c.buf.Snapshot())
	c.publish()
}

// Clear resets every cell to black.
func (c *Controller) Clear() {
	c.buf.Reset()
	c.renderer.Redraw(c.buf.Snapshot())
	c.publish()
}

// Text returns the last published canonical text.
func (c *Controller) Text() string { return c.text }

// Invalid reports whether the last user edit was rejected.
func (c *Controller) Invalid() bool { return c.invalid }

// TooLong reports whether the published text exceeds the threshold.
func (c *Controller) TooLong() bool { return c.tooLong }

// Snapshot returns a copy of the buffer.
func (c *Controller) Snapshot() *pixel.Grid { return c.buf.Snapshot() }

func (c *Controller) paint(col, row int) {
	cell, ok := c.buf.Paint(row, col, c.color)
	if !ok {
		return
	}
	c.renderer.DrawCell(col, row, cell)
	c.publish()
}

// publish writes the canonical text back to the surface. Text produced from
// the buffer is always valid, so the invalid flag is cleared.
func (c *Controller) publish() {
	text := c.buf.Encode()
	c.writeSurface(text)
	c.text = text
	c.setTooLong(len(text) > c.threshold)
	c.setInvalid(false)
}

func (c *Controller) writeSurface(text string) {
	c.writing = true
	defer func() { c.writing = false }()
	c.surface.SetText(text)
}

func (c *Controller) setInvalid(v bool) {
	c.invalid = v
	c.indicator.SetInvalid(v)
}

func (c *Controller) setTooLong(v bool) {
	c.tooLong = v
	c.indicator.SetTooLong(v)
}

type nopRenderer struct{}

func (nopRenderer) DrawCell(int, int, pixel.Cell) {}
func (nopRenderer) Redraw(*pixel.Grid)            {}

type nopIndicator struct{}

func (nopIndicator) SetInvalid(bool) {}
func (nopIndicator) SetTooLong(bool) {}

type memSurface struct{ text string }

func (m *memSurface) Text() string        { return m.text }
func (m *memSurface) SetText(text string) { m.text = text }
