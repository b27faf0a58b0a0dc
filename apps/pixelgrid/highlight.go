// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pixelgrid/highlight.go
// Summary: Chroma lexer and colouriser for the text form of the grid.

package pixelgrid

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/pixel"
)

// pixelLexer tokenises the grid text: '.' is black, {NN} a colour code,
// alphanumerics are glyphs. Anything else is an error token.
var pixelLexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "PixelGrid",
		Aliases:   []string{"pixelgrid", "pxg"},
		Filenames: []string{"*.pxg"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `\s+`, Type: chroma.TextWhitespace},
				{Pattern: `\.`, Type: chroma.Comment},
				{Pattern: `\{0*(6[3-9]|70)\}`, Type: chroma.LiteralNumberInteger},
				{Pattern: `\{[^}\s]*\}?`, Type: chroma.Error},
				{Pattern: `[0-9A-Za-z]`, Type: chroma.NameVariable},
				{Pattern: `.`, Type: chroma.Error},
			},
		}
	},
)

type highlighter struct {
	style   *chroma.Style
	palette map[pixel.Code]tcell.Color
	base    tcell.Style
}

func newHighlighter(styleName string, palette map[pixel.Code]tcell.Color) *highlighter {
	if styleName == "" {
		styleName = defaultTextStyle
	}
	style := styles.Get(styleName)
	h := &highlighter{style: style, palette: palette, base: tcell.StyleDefault.Foreground(tcell.ColorWhite)}
	if c := style.Get(chroma.Text).Colour; c.IsSet() {
		h.base = h.base.Foreground(chromaColor(c))
	}
	return h
}

// Styles returns one style per rune of text.
func (h *highlighter) Styles(text string) []tcell.Style {
	n := len([]rune(text))
	out := make([]tcell.Style, 0, n)
	tokens, err := chroma.Tokenise(pixelLexer, nil, text)
	if err == nil {
		for _, tok := range tokens {
			if tok.Type == chroma.EOFType {
				break
			}
			st := h.tokenStyle(tok)
			for range tok.Value {
				out = append(out, st)
			}
		}
	}
	for len(out) < n {
		out = append(out, h.base)
	}
	return out[:n]
}

func (h *highlighter) tokenStyle(tok chroma.Token) tcell.Style {
	st := h.base
	entry := h.style.Get(tok.Type)
	if entry.Colour.IsSet() {
		st = st.Foreground(chromaColor(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	switch tok.Type {
	case chroma.LiteralNumberInteger:
		if code, ok := codeOfToken(tok.Value); ok && code != pixel.CodeBlack {
			st = st.Foreground(h.palette[code])
		}
	case chroma.Error:
		st = st.Underline(true)
	}
	return st
}

// codeOfToken parses "{NN}".
func codeOfToken(v string) (pixel.Code, bool) {
	v = strings.TrimSuffix(strings.TrimPrefix(v, "{"), "}")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	code := pixel.Code(n)
	return code, code.Valid()
}

func chromaColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
