// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import (
	"fmt"
	"math"
	"strconv"

	"github.com/valyala/fastjson/fastfloat"
)

// A parser is a cursor over the pre-built token list. It never consults the
// raw text again; every production works on tokens alone.
type parser struct {
	toks []token
	pos  int
	end  int // byte length of the input, for errors past the last token
}

// cur returns the current token, reporting false when the list is
// exhausted.
func (p *parser) cur() (token, bool) {
	if p.pos < len(p.toks) {
		return p.toks[p.pos], true
	}
	return token{}, false
}

// expect consumes and returns the current token if it has kind k, and
// fails otherwise.
func (p *parser) expect(k tokenKind) (token, error) {
	t, ok := p.cur()
	if !ok {
		return token{}, p.failEnd()
	}
	if t.kind != k {
		return token{}, p.failf(t, "unexpected token %q", t.text)
	}
	p.pos++
	return t, nil
}

// skip consumes the current token if it has kind k, reporting whether it
// did.
func (p *parser) skip(k tokenKind) bool {
	if t, ok := p.cur(); ok && t.kind == k {
		p.pos++
		return true
	}
	return false
}

// parseValue parses one value of any kind, recursing for containers. depth
// counts the containers already open around this value.
func (p *parser) parseValue(depth int) (*Value, error) {
	t, ok := p.cur()
	if !ok {
		return nil, p.failEnd()
	}
	switch t.kind {
	case tokenString:
		return p.parseString(t), nil
	case tokenNumber:
		return p.parseNumber(t)
	case tokenBoolean:
		return p.parseBoolean(t), nil
	case tokenNull:
		return p.parseNull(), nil
	case tokenObjectStart:
		return p.parseObject(depth)
	case tokenArrayStart:
		return p.parseArray(depth)
	}
	return nil, p.failf(t, "unexpected token %q", t.text)
}

func (p *parser) parseString(t token) *Value {
	p.pos++
	return NewStringValue(t.text)
}

func (p *parser) parseBoolean(t token) *Value {
	p.pos++
	return NewBoolValue(t.text == "true")
}

func (p *parser) parseNull() *Value {
	p.pos++
	return NewNullValue()
}

// parseNumber converts a numeric lexeme, rejecting anything that does not
// parse in full as well as non-finite results. fastfloat.Parse vets the
// lexeme and surfaces overflow as an infinity, but its exponent path is
// not always correctly rounded, so the value itself is taken from
// strconv.ParseFloat once the lexeme is accepted. Integral values that
// fit an int classify as KindInt; everything else is KindDouble. The text
// grammar never yields KindInt64 or KindUint64.
func (p *parser) parseNumber(t token) (*Value, error) {
	v, err := fastfloat.Parse(t.text)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, p.failf(t, "invalid number %q", t.text)
	}
	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return nil, p.failf(t, "invalid number %q", t.text)
	}
	p.pos++
	if n, ok := intValue(f); ok {
		return NewIntValue(n), nil
	}
	return NewDoubleValue(f), nil
}

// intValue converts f to an int when f is integral and exactly
// representable.
func intValue(f float64) (int, bool) {
	if math.Trunc(f) != f {
		return 0, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	n := int64(f)
	if int64(int(n)) != n {
		return 0, false
	}
	return int(n), true
}

// parseObject parses an object. An ObjectEnd directly after the opening
// brace closes an empty object; otherwise members repeat separated by Next
// tokens, and reusing a member name is an error.
func (p *parser) parseObject(depth int) (*Value, error) {
	if depth >= MaxDepth {
		return nil, ErrTooDeep
	}
	if _, err := p.expect(tokenObjectStart); err != nil {
		return nil, err
	}
	obj := NewObject()
	if p.skip(tokenObjectEnd) {
		return NewObjectValue(obj), nil
	}
	for {
		name, err := p.expect(tokenString)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenAssign); err != nil {
			return nil, err
		}
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if obj.Find(name.text) != nil {
			return nil, p.failf(name, "duplicate member %q", name.text)
		}
		obj.Insert(name.text, v)
		if !p.skip(tokenNext) {
			break
		}
	}
	if _, err := p.expect(tokenObjectEnd); err != nil {
		return nil, err
	}
	return NewObjectValue(obj), nil
}

// parseArray parses an array; symmetric to parseObject without member
// names.
func (p *parser) parseArray(depth int) (*Value, error) {
	if depth >= MaxDepth {
		return nil, ErrTooDeep
	}
	if _, err := p.expect(tokenArrayStart); err != nil {
		return nil, err
	}
	arr := NewArray()
	if p.skip(tokenArrayEnd) {
		return NewArrayValue(arr), nil
	}
	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		if !p.skip(tokenNext) {
			break
		}
	}
	if _, err := p.expect(tokenArrayEnd); err != nil {
		return nil, err
	}
	return NewArrayValue(arr), nil
}

func (p *parser) failf(t token, msg string, args ...any) error {
	return &ParseError{Offset: t.pos, Msg: fmt.Sprintf(msg, args...)}
}

func (p *parser) failEnd() error {
	return &ParseError{Offset: p.end, Msg: "incomplete data"}
}
