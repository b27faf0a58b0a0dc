// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/color.go
// Summary: Closed colour enumeration shared by the codec, buffer and palette.

package pixel

import "strconv"

// Code is the numeric identifier of a palette colour in the text form.
type Code int

const (
	CodeRed    Code = 63
	CodeOrange Code = 64
	CodeYellow Code = 65
	CodeGreen  Code = 66
	CodeBlue   Code = 67
	CodeViolet Code = 68
	CodeWhite  Code = 69
	// CodeBlack is the empty cell. It encodes as "." rather than "{70}".
	CodeBlack Code = 70
)

// Palette order, as shown to the user.
var colorNames = []string{"red", "orange", "yellow", "green", "blue", "violet", "white", "black"}

var nameToCode = map[string]Code{
	"red":    CodeRed,
	"orange": CodeOrange,
	"yellow": CodeYellow,
	"green":  CodeGreen,
	"blue":   CodeBlue,
	"violet": CodeViolet,
	"white":  CodeWhite,
	"black":  CodeBlack,
}

var codeToName = func() map[Code]string {
	m := make(map[Code]string, len(nameToCode))
	for name, code := range nameToCode {
		m[code] = name
	}
	return m
}()

// CodeForName looks up the code of a colour name.
func CodeForName(name string) (Code, bool) {
	code, ok := nameToCode[name]
	return code, ok
}

// Valid reports whether c is one of the eight known codes.
func (c Code) Valid() bool {
	_, ok := codeToName[c]
	return ok
}

// Name returns the colour name, or "" for an unknown code.
func (c Code) Name() string {
	return codeToName[c]
}

func (c Code) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Codes returns every known code in ascending order.
func Codes() []Code {
	return []Code{CodeRed, CodeOrange, CodeYellow, CodeGreen, CodeBlue, CodeViolet, CodeWhite, CodeBlack}
}

// ColorNames returns the colour names in palette order.
func ColorNames() []string {
	out := make([]string, len(colorNames))
	copy(out, colorNames)
	return out
}
