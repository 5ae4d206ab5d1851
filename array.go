// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import (
	"fmt"
	"iter"
	"slices"
)

// An Array is an ordered, resizable sequence of values, random-accessible
// by zero-based position. Elements of equal value may repeat.
type Array struct {
	values []*Value
}

// NewArray returns a new empty Array.
func NewArray() *Array { return &Array{} }

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.values) }

// IsEmpty reports whether a has no elements.
func (a *Array) IsEmpty() bool { return len(a.values) == 0 }

// At returns the element at position i. It reports ErrOutOfRange unless
// 0 <= i < Len; in particular At(Len()) fails.
func (a *Array) At(i int) (*Value, error) {
	if i < 0 || i >= len(a.values) {
		return nil, a.rangeErr(i)
	}
	return a.values[i], nil
}

// MustAt returns the element at position i without a bounds check. The
// caller must guarantee 0 <= i < Len; MustAt panics otherwise. Use At for
// indices that are not known to be valid.
func (a *Array) MustAt(i int) *Value { return a.values[i] }

// Insert inserts v at position i, shifting later elements up; i == Len
// appends. A nil v is stored as the null value. It reports ErrOutOfRange
// unless 0 <= i <= Len.
func (a *Array) Insert(i int, v *Value) error {
	if i < 0 || i > len(a.values) {
		return a.rangeErr(i)
	}
	if v == nil {
		v = NewNullValue()
	}
	a.values = slices.Insert(a.values, i, v)
	return nil
}

// Delete removes the element at position i, shifting later elements down.
// It reports ErrOutOfRange unless 0 <= i < Len.
func (a *Array) Delete(i int) error {
	if i < 0 || i >= len(a.values) {
		return a.rangeErr(i)
	}
	a.values = slices.Delete(a.values, i, i+1)
	return nil
}

// DeleteRange removes the elements in the half-open interval [i, j). It
// reports ErrOutOfRange unless 0 <= i <= j <= Len.
func (a *Array) DeleteRange(i, j int) error {
	if i < 0 || j < i || j > len(a.values) {
		return fmt.Errorf("range [%d, %d) out of range for length %d: %w",
			i, j, len(a.values), ErrOutOfRange)
	}
	a.values = slices.Delete(a.values, i, j)
	return nil
}

// Append appends the given values to a. Nil values are stored as null
// values.
func (a *Array) Append(vs ...*Value) {
	for _, v := range vs {
		if v == nil {
			v = NewNullValue()
		}
		a.values = append(a.values, v)
	}
}

// Clear removes all elements of a.
func (a *Array) Clear() { a.values = nil }

// All ranges over the elements of a in order with their positions.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of a sharing no structure with the original.
func (a *Array) Clone() *Array {
	cp := &Array{values: make([]*Value, len(a.values))}
	for i, v := range a.values {
		cp.values[i] = v.Clone()
	}
	return cp
}

func (a *Array) equal(b *Array) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for i, v := range a.values {
		if !v.Equal(b.values[i]) {
			return false
		}
	}
	return true
}

func (a *Array) rangeErr(i int) error {
	return fmt.Errorf("index %d out of range for length %d: %w",
		i, len(a.values), ErrOutOfRange)
}
