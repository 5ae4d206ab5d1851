// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import "fmt"

// Path descends from v along steps and returns the value it reaches. A
// string step selects an object member by key (a missing key is
// ErrNotFound); an int step selects an array element by position, with
// negative positions counting back from the end (out of bounds is
// ErrOutOfRange). Stepping into a value of the wrong kind fails with a
// *TypeError.
//
// The result is the live node of the tree, not a copy, so mutating it
// mutates the tree.
func Path(v *Value, steps ...any) (*Value, error) {
	if v == nil {
		v = NewNullValue()
	}
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			o, err := v.Object()
			if err != nil {
				return nil, err
			}
			v, err = o.Get(s)
			if err != nil {
				return nil, err
			}
		case int:
			a, err := v.Array()
			if err != nil {
				return nil, err
			}
			if s < 0 {
				s += a.Len()
			}
			v, err = a.At(s)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("invalid path step of type %T", step)
		}
	}
	return v, nil
}
