// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package pixelgrid

import (
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/framegrace/texelpix/pixel"
)

func tokenTypes(t *testing.T, text string) []chroma.TokenType {
	t.Helper()
	tokens, err := chroma.Tokenise(pixelLexer, nil, text)
	if err != nil {
		t.Fatalf("tokenise %q: %v", text, err)
	}
	var out []chroma.TokenType
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		out = append(out, tok.Type)
	}
	return out
}

func TestPixelLexerTokens(t *testing.T) {
	got := tokenTypes(t, ".{63}a {99} #")
	want := []chroma.TokenType{
		chroma.Comment,
		chroma.LiteralNumberInteger,
		chroma.NameVariable,
		chroma.TextWhitespace,
		chroma.Error,
		chroma.TextWhitespace,
		chroma.Error,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v (all %v)", i, got[i], want[i], got)
		}
	}
}

func TestHighlighterStylesCoverEveryRune(t *testing.T) {
	s := defaultSettings()
	h := newHighlighter(s.textStyle, s.palette)
	for _, text := range []string{"", ".", "{6", "{64}é.", "ab cd\t{70}"} {
		if got, want := len(h.Styles(text)), len([]rune(text)); got != want {
			t.Errorf("Styles(%q) returned %d styles, want %d", text, got, want)
		}
	}
}

func TestHighlighterColoursCodesWithPalette(t *testing.T) {
	s := defaultSettings()
	h := newHighlighter(s.textStyle, s.palette)
	st := h.Styles("{64}")
	fg, _, _ := st[1].Decompose()
	if fg != s.palette[pixel.CodeOrange] {
		t.Fatalf("expected orange foreground, got %v", fg)
	}
	bad := h.Styles("#")
	if bad[0] == h.base {
		t.Fatalf("expected error tokens to stand out from plain text")
	}
}
