// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/errors.go
// Summary: Error values returned by the codec and buffer.

package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedText matches every decode rejection.
	ErrMalformedText = errors.New("pixel: malformed text")
	// ErrDimensionMismatch is returned when a grid of the wrong size is offered.
	ErrDimensionMismatch = errors.New("pixel: grid dimensions mismatch")
	// ErrIllegalChar is returned for characters outside [0-9A-Za-z].
	ErrIllegalChar = errors.New("pixel: illegal character")
)

// Reason classifies a decode rejection.
type Reason int

const (
	ReasonRowCount Reason = iota
	ReasonUnterminated
	ReasonNonNumeric
	ReasonUnknownCode
	ReasonIllegalChar
	ReasonRowUnderfilled
	ReasonRowOverfilled
)

func (r Reason) String() string {
	switch r {
	case ReasonRowCount:
		return "row count mismatch"
	case ReasonUnterminated:
		return "unterminated brace"
	case ReasonNonNumeric:
		return "non-numeric colour code"
	case ReasonUnknownCode:
		return "unknown colour code"
	case ReasonIllegalChar:
		return "illegal character"
	case ReasonRowUnderfilled:
		return "row too short"
	case ReasonRowOverfilled:
		return "row too long"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// DecodeError describes why a text form was rejected. Row and Column are
// zero-based; Offset is the byte offset within the row string. For
// ReasonRowCount, Row holds the number of rows found and Column is -1.
type DecodeError struct {
	Reason Reason
	Row    int
	Column int
	Offset int
	Token  string
}

func (e *DecodeError) Error() string {
	if e.Reason == ReasonRowCount {
		return fmt.Sprintf("%v: %s (got %d rows)", ErrMalformedText, e.Reason, e.Row)
	}
	if e.Token != "" {
		return fmt.Sprintf("%v: %s %q at row %d column %d", ErrMalformedText, e.Reason, e.Token, e.Row, e.Column)
	}
	return fmt.Sprintf("%v: %s at row %d column %d", ErrMalformedText, e.Reason, e.Row, e.Column)
}

// Is makes errors.Is(err, ErrMalformedText) hold for every DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformedText
}
