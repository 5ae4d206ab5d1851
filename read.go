// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

// MaxDepth is the maximum container nesting depth Read accepts and Write
// emits. Deeper trees fail with ErrTooDeep rather than growing the call
// stack without bound.
const MaxDepth = 300

// Read parses text as a single JSON document and returns its value tree.
// The input is tokenized in full before parsing begins. The top-level
// value may be of any kind, bare scalars included; input remaining after
// it is an error.
//
// Read fails with a *LexError for malformed lexical input, a *ParseError
// for a malformed token sequence, and ErrTooDeep for over-deep nesting. It
// never returns a partial tree.
func Read(text string) (*Value, error) {
	toks, err := scan(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, end: len(text)}
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if t, ok := p.cur(); ok {
		return nil, p.failf(t, "extra input after value")
	}
	return v, nil
}

// ReadBytes is Read for byte-slice input.
func ReadBytes(data []byte) (*Value, error) { return Read(string(data)) }
