// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

// Package escape implements the quoted-string encoding of the engine's
// dialect. The dialect admits a closed table of eight escape sequences;
// the writer applies the table in one direction and the scanner applies
// it in the other. There is no \uXXXX form on either side.
package escape

import "go4.org/mem"

// escTable maps a byte to the letter of its escape sequence, or 0 for a
// byte that is emitted verbatim.
var escTable = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// Decode maps the letter of an escape sequence to the byte it denotes.
// It reports false for a letter outside the table.
func Decode(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// Quote encodes src as a quoted string value: the contents are escaped per
// the table and double quotation marks are added. Bytes outside the table
// are copied through untouched, control bytes included; Decode reverses
// every sequence Quote emits.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if int(b) < len(escTable) && escTable[b] != 0 {
			buf = append(buf, '\\', escTable[b])
			continue
		}
		buf = append(buf, b)
	}
	return append(buf, '"')
}
