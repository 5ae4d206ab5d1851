// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package escape_test

import (
	"testing"

	"go4.org/mem"

	"github.com/tivenwang/wbjson/internal/escape"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"plain text", `"plain text"`},
		{"a\t\nb", `"a\t\nb"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"a/b", `"a\/b"`},
		{"\b\f\r", `"\b\f\r"`},

		// Bytes without a table entry pass through verbatim.
		{"\x00\x01\x02", "\"\x00\x01\x02\""},
		{"\xe2\x80\xa8 \xe2\x80\xa9", "\"\xe2\x80\xa8 \xe2\x80\xa9\""}, // U+2028, U+2029
		{"héllo", `"héllo"`},
	}
	for _, test := range tests {
		got := string(escape.Quote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input byte
		want  byte
		ok    bool
	}{
		{'"', '"', true},
		{'\\', '\\', true},
		{'/', '/', true},
		{'b', '\b', true},
		{'f', '\f', true},
		{'n', '\n', true},
		{'r', '\r', true},
		{'t', '\t', true},

		{'u', 0, false}, // no Unicode escapes in this dialect
		{'q', 0, false},
		{'0', 0, false},
		{' ', 0, false},
	}
	for _, test := range tests {
		got, ok := escape.Decode(test.input)
		if got != test.want || ok != test.ok {
			t.Errorf("Decode(%q): got %q, %v; want %q, %v",
				test.input, got, ok, test.want, test.ok)
		}
	}
}
