// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the engine. Errors returned by the package
// wrap these values; test for them with errors.Is.
var (
	// ErrNotFound is reported by strict object lookups for a missing key.
	ErrNotFound = errors.New("member not found")

	// ErrOutOfRange is reported by bounds-checked array operations for a
	// position outside the valid range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrTooDeep is reported by Read and Write when a tree nests more than
	// MaxDepth levels.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// A LexError reports malformed lexical input and the byte offset at which
// scanning failed.
type LexError struct {
	Offset int    // byte offset into the input
	Msg    string // description of the problem
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset)
}

// A ParseError reports a malformed token sequence and the byte offset of
// the offending token, or the end of input when the tokens ran out.
type ParseError struct {
	Offset int    // byte offset into the input
	Msg    string // description of the problem
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset)
}

// A TypeError reports a typed access applied to a value of a different
// kind.
type TypeError struct {
	Want, Got Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("value is %v, not %v", e.Got, e.Want)
}
