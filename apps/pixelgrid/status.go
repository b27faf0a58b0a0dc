// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package pixelgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpix/texelui/widgets"
)

// statusIndicator shows the advisory flags as labels and tints the text field
// while its contents are rejected.
type statusIndicator struct {
	input   *widgets.TextInput
	invalid *widgets.Label
	tooLong *widgets.Label
	normal  tcell.Style
	tinted  tcell.Style
}

func newStatusIndicator(input *widgets.TextInput, invalid, tooLong *widgets.Label) *statusIndicator {
	normal := input.Style.Background(hexColor(surfaceHex))
	return &statusIndicator{
		input:   input,
		invalid: invalid,
		tooLong: tooLong,
		normal:  normal,
		tinted:  normal.Background(hexColor(invalidHex)),
	}
}

func (s *statusIndicator) SetInvalid(v bool) {
	s.invalid.SetHidden(!v)
	if v {
		s.input.SetStyle(s.tinted)
	} else {
		s.input.SetStyle(s.normal)
	}
}

func (s *statusIndicator) SetTooLong(v bool) {
	s.tooLong.SetHidden(!v)
}
