// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// An Object is an associative container from string keys to values. Keys
// are unique. Members are kept in ascending key order, and iteration
// follows that order regardless of insertion order.
//
// Find and Get look an existing key up; GetOrCreate materializes a missing
// key as a null member. Plain lookups never mutate the object.
type Object struct {
	members []member
}

type member struct {
	key   string
	value *Value
}

// NewObject returns a new empty Object.
func NewObject() *Object { return &Object{} }

func (o *Object) search(key string) (int, bool) {
	return slices.BinarySearchFunc(o.members, key, func(m member, k string) int {
		return strings.Compare(m.key, k)
	})
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.members) }

// IsEmpty reports whether o has no members.
func (o *Object) IsEmpty() bool { return len(o.members) == 0 }

// Find returns the value for key, or nil if the key is absent.
func (o *Object) Find(key string) *Value {
	if i, ok := o.search(key); ok {
		return o.members[i].value
	}
	return nil
}

// Get returns the value for key. It reports ErrNotFound if the key is
// absent.
func (o *Object) Get(key string) (*Value, error) {
	if i, ok := o.search(key); ok {
		return o.members[i].value, nil
	}
	return nil, fmt.Errorf("no member %q in object: %w", key, ErrNotFound)
}

// GetOrCreate returns the value for key, first inserting a fresh null
// member if the key is absent.
func (o *Object) GetOrCreate(key string) *Value {
	i, ok := o.search(key)
	if !ok {
		o.members = slices.Insert(o.members, i, member{key: key, value: NewNullValue()})
	}
	return o.members[i].value
}

// Insert sets the value for key, silently replacing any existing value.
// A nil v is stored as the null value.
func (o *Object) Insert(key string, v *Value) {
	if v == nil {
		v = NewNullValue()
	}
	if i, ok := o.search(key); ok {
		o.members[i].value = v
	} else {
		o.members = slices.Insert(o.members, i, member{key: key, value: v})
	}
}

// Delete removes the member for key, reporting whether a member was
// removed.
func (o *Object) Delete(key string) bool {
	if i, ok := o.search(key); ok {
		o.members = slices.Delete(o.members, i, i+1)
		return true
	}
	return false
}

// DeleteRange removes every member whose key lies in the half-open key
// interval [lo, hi), returning the number of members removed.
func (o *Object) DeleteRange(lo, hi string) int {
	i, _ := o.search(lo)
	j, _ := o.search(hi)
	if j <= i {
		return 0
	}
	o.members = slices.Delete(o.members, i, j)
	return j - i
}

// Clear removes all members of o.
func (o *Object) Clear() { o.members = nil }

// Keys returns the member keys of o in ascending order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// All ranges over the members of o in ascending key order.
func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, m := range o.members {
			if !yield(m.key, m.value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of o sharing no structure with the original.
func (o *Object) Clone() *Object {
	cp := &Object{members: make([]member, len(o.members))}
	for i, m := range o.members {
		cp.members[i] = member{key: m.key, value: m.value.Clone()}
	}
	return cp
}

func (o *Object) equal(p *Object) bool {
	if len(o.members) != len(p.members) {
		return false
	}
	for i, m := range o.members {
		if m.key != p.members[i].key || !m.value.Equal(p.members[i].value) {
			return false
		}
	}
	return true
}
