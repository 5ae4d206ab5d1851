// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import (
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/tivenwang/wbjson/internal/escape"
)

// Write renders v as indented JSON text: one tab per nesting level, a
// newline after every container opener and member, and object members in
// ascending key order. Numeric kinds render in locale-independent exact
// form; doubles use the shortest representation that reparses to the same
// value. A nil v renders as null.
//
// Write fails only with ErrTooDeep, for a programmatically built tree
// nested beyond MaxDepth; trees produced by Read always render.
func Write(v *Value) (string, error) {
	if v == nil {
		v = NewNullValue()
	}
	w := &writer{}
	if err := w.writeValue(v); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}

// A writer walks a value tree appending its textual form to a buffer. It
// never validates or re-parses what it emits.
type writer struct {
	sb    strings.Builder
	depth int
}

func (w *writer) writeValue(v *Value) error {
	switch v.kind {
	case KindBool:
		if v.data.(bool) {
			w.sb.WriteString("true")
		} else {
			w.sb.WriteString("false")
		}
	case KindInt:
		w.sb.WriteString(strconv.Itoa(v.data.(int)))
	case KindInt64:
		w.sb.WriteString(strconv.FormatInt(v.data.(int64), 10))
	case KindUint64:
		w.sb.WriteString(strconv.FormatUint(v.data.(uint64), 10))
	case KindDouble:
		w.sb.WriteString(strconv.FormatFloat(v.data.(float64), 'g', -1, 64))
	case KindString:
		w.writeString(v.data.(string))
	case KindObject:
		return w.writeObject(v.data.(*Object))
	case KindArray:
		return w.writeArray(v.data.(*Array))
	default:
		w.sb.WriteString("null")
	}
	return nil
}

// writeObject renders o between braces, one member per line. The closing
// indentation is written even for an empty object, so an empty object at
// the top level renders as {} and a nested one as { + tabs + }.
func (w *writer) writeObject(o *Object) error {
	if w.depth >= MaxDepth {
		return ErrTooDeep
	}
	w.sb.WriteByte('{')
	w.depth++
	if !o.IsEmpty() {
		w.sb.WriteByte('\n')
	}
	last := o.Len() - 1
	for i, m := range o.members {
		w.indent()
		w.writeString(m.key)
		w.sb.WriteString(" : ")
		if err := w.writeValue(m.value); err != nil {
			return err
		}
		if i < last {
			w.sb.WriteByte(',')
		}
		w.sb.WriteByte('\n')
	}
	w.depth--
	w.indent()
	w.sb.WriteByte('}')
	return nil
}

func (w *writer) writeArray(a *Array) error {
	if w.depth >= MaxDepth {
		return ErrTooDeep
	}
	w.sb.WriteByte('[')
	w.depth++
	if !a.IsEmpty() {
		w.sb.WriteByte('\n')
	}
	last := a.Len() - 1
	for i, v := range a.values {
		w.indent()
		if err := w.writeValue(v); err != nil {
			return err
		}
		if i < last {
			w.sb.WriteByte(',')
		}
		w.sb.WriteByte('\n')
	}
	w.depth--
	w.indent()
	w.sb.WriteByte(']')
	return nil
}

func (w *writer) writeString(s string) {
	w.sb.Write(escape.Quote(mem.S(s)))
}

func (w *writer) indent() {
	for range w.depth {
		w.sb.WriteByte('\t')
	}
}
