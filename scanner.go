// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import (
	"fmt"
	"strings"

	"go4.org/mem"

	"github.com/tivenwang/wbjson/internal/escape"
)

// tokenKind is the type of a lexical token in the engine's grammar.
type tokenKind byte

// Constants defining the valid tokenKind values.
const (
	tokenInvalid     tokenKind = iota // invalid token
	tokenObjectStart                  // left brace "{"
	tokenObjectEnd                    // right brace "}"
	tokenArrayStart                   // left square bracket "["
	tokenArrayEnd                     // right square bracket "]"
	tokenNext                         // comma ","
	tokenAssign                       // colon ":"
	tokenString                       // quoted string, stored decoded
	tokenNumber                       // numeric lexeme, validated during parsing
	tokenBoolean                      // constant: true or false
	tokenNull                         // constant: null
)

// A token is one classified lexical unit of the input. For strings, text
// holds the decoded contents; for everything else it holds the raw lexeme.
type token struct {
	kind tokenKind
	text string
	pos  int // byte offset of the token's first character
}

// A scanner is a single forward pass over an input buffer that is already
// resident in memory.
type scanner struct {
	src string
	pos int
}

// scan tokenizes the whole input before any parsing happens, returning the
// ordered token list. Reaching the end of the input between tokens ends the
// scan cleanly; a malformed lexical element stops it with a LexError.
func scan(src string) ([]token, error) {
	s := &scanner{src: src}
	var toks []token
	for {
		s.skipSpace()
		if s.eos() {
			return toks, nil
		}
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

func (s *scanner) next() (token, error) {
	start := s.pos
	c := s.src[start]

	// Punctuation.
	if t, ok := selfDelim(c); ok {
		s.pos++
		return token{kind: t, text: s.src[start:s.pos], pos: start}, nil
	}

	// Numbers: a maximal run over the numeric alphabet, no validation yet.
	if isNumStart(c) {
		return token{kind: tokenNumber, text: s.scanNumber(), pos: start}, nil
	}

	// Strings, decoded as they are read.
	if c == '"' {
		text, err := s.scanString()
		if err != nil {
			return token{}, err
		}
		return token{kind: tokenString, text: text, pos: start}, nil
	}

	// Constants: true, false, null.
	switch c {
	case 't', 'f':
		want, n := litTrue, 4
		if c == 'f' {
			want, n = litFalse, 5
		}
		text := s.scanFixed(n)
		if !mem.S(text).Equal(want) {
			return token{}, s.failf(start, "unexpected token %q", text)
		}
		return token{kind: tokenBoolean, text: text, pos: start}, nil
	case 'n':
		text := s.scanName(4)
		if !mem.S(text).Equal(litNull) {
			return token{}, s.failf(start, "unexpected token %q", text)
		}
		return token{kind: tokenNull, text: text, pos: start}, nil
	}
	return token{}, s.failf(start, "unexpected start sequence %q", c)
}

// scanString consumes a quoted string and returns its decoded contents.
// Escape sequences are replaced as they are read; a letter outside the
// escape table or an input that ends before the closing quote is an error.
func (s *scanner) scanString() (string, error) {
	s.pos++ // opening quote
	var sb strings.Builder
	for !s.eos() && s.src[s.pos] != '"' {
		c := s.src[s.pos]
		s.pos++
		if c == '\\' && !s.eos() {
			e := s.src[s.pos]
			dec, ok := escape.Decode(e)
			if !ok {
				return "", s.failf(s.pos, `unrecognized escape sequence "\%c"`, e)
			}
			s.pos++
			sb.WriteByte(dec)
		} else {
			sb.WriteByte(c)
		}
	}
	if s.eos() {
		return "", s.failf(s.pos, "unterminated string")
	}
	s.pos++ // closing quote
	return sb.String(), nil
}

// scanNumber consumes the maximal run of bytes from the numeric alphabet.
// Lexemes such as "1.2.3" pass here and fail during numeric conversion.
func (s *scanner) scanNumber() string {
	start := s.pos
	for !s.eos() && isNumByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// scanFixed consumes up to n bytes without regard to their class.
func (s *scanner) scanFixed(n int) string {
	start := s.pos
	s.pos = min(s.pos+n, len(s.src))
	return s.src[start:s.pos]
}

// scanName consumes up to n bytes, stopping early at whitespace.
func (s *scanner) scanName(n int) string {
	start := s.pos
	for s.pos-start < n && !s.eos() && !isSpace(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eos() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *scanner) eos() bool { return s.pos == len(s.src) }

func (s *scanner) failf(pos int, msg string, args ...any) error {
	return &LexError{Offset: pos, Msg: fmt.Sprintf(msg, args...)}
}

func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isNumStart(c byte) bool { return c == '-' || isDigit(c) }

func isNumByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '-' || c == '+'
}

var selfToks = [...]tokenKind{
	tokenObjectStart, tokenObjectEnd, tokenArrayStart, tokenArrayEnd, tokenNext, tokenAssign,
}

func selfDelim(c byte) (tokenKind, bool) {
	if i := strings.IndexByte("{}[],:", c); i >= 0 {
		return selfToks[i], true
	}
	return tokenInvalid, false
}
