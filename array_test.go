// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/tivenwang/wbjson"
)

func intArray(ns ...int) *wbjson.Array {
	a := wbjson.NewArray()
	for _, n := range ns {
		a.Append(wbjson.NewIntValue(n))
	}
	return a
}

func intElems(t *testing.T, a *wbjson.Array) []int {
	t.Helper()
	var out []int
	for i, v := range a.All() {
		n, err := v.Int()
		if err != nil {
			t.Fatalf("Element %d: %v", i, err)
		}
		out = append(out, n)
	}
	return out
}

func TestArrayAt(t *testing.T) {
	a := intArray(10, 20, 30)

	for i, want := range []int{10, 20, 30} {
		v, err := a.At(i)
		if err != nil {
			t.Fatalf("At(%d): unexpected error: %v", i, err)
		}
		if got, _ := v.Int(); got != want {
			t.Errorf("At(%d): got %d, want %d", i, got, want)
		}
	}

	// One past the end is out of range, not a sentinel.
	for _, i := range []int{-1, a.Len(), 100} {
		_, err := a.At(i)
		if !errors.Is(err, wbjson.ErrOutOfRange) {
			t.Errorf("At(%d): got %v, want ErrOutOfRange", i, err)
		}
	}
}

func TestArrayMustAt(t *testing.T) {
	a := intArray(7)
	if got, _ := a.MustAt(0).Int(); got != 7 {
		t.Errorf("MustAt(0): got %d, want 7", got)
	}
	mtest.MustPanic(t, func() { a.MustAt(1) })
	mtest.MustPanic(t, func() { a.MustAt(-1) })
}

func TestArrayInsert(t *testing.T) {
	a := intArray(2, 4)

	if err := a.Insert(0, wbjson.NewIntValue(1)); err != nil {
		t.Fatalf("Insert(0): %v", err)
	}
	if err := a.Insert(2, wbjson.NewIntValue(3)); err != nil {
		t.Fatalf("Insert(2): %v", err)
	}
	if err := a.Insert(a.Len(), wbjson.NewIntValue(5)); err != nil {
		t.Fatalf("Insert(Len): %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, intElems(t, a)); diff != "" {
		t.Errorf("Elements: (-want, +got)\n%s", diff)
	}

	for _, i := range []int{-1, a.Len() + 1} {
		if err := a.Insert(i, nil); !errors.Is(err, wbjson.ErrOutOfRange) {
			t.Errorf("Insert(%d): got %v, want ErrOutOfRange", i, err)
		}
	}

	// nil becomes a null element.
	if err := a.Insert(0, nil); err != nil {
		t.Fatalf("Insert(0, nil): %v", err)
	}
	if v, _ := a.At(0); v.Kind() != wbjson.KindNull {
		t.Errorf("Inserted nil: kind is %v, want %v", v.Kind(), wbjson.KindNull)
	}
}

func TestArrayDelete(t *testing.T) {
	a := intArray(1, 2, 3, 4, 5)

	if err := a.Delete(2); err != nil {
		t.Fatalf("Delete(2): %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 4, 5}, intElems(t, a)); diff != "" {
		t.Errorf("Elements after Delete: (-want, +got)\n%s", diff)
	}
	if err := a.Delete(a.Len()); !errors.Is(err, wbjson.ErrOutOfRange) {
		t.Errorf("Delete(Len): got %v, want ErrOutOfRange", err)
	}

	if err := a.DeleteRange(1, 3); err != nil {
		t.Fatalf("DeleteRange(1, 3): %v", err)
	}
	if diff := cmp.Diff([]int{1, 5}, intElems(t, a)); diff != "" {
		t.Errorf("Elements after DeleteRange: (-want, +got)\n%s", diff)
	}

	// Empty interval is fine, inverted or overlong is not.
	if err := a.DeleteRange(1, 1); err != nil {
		t.Errorf("DeleteRange(1, 1): unexpected error: %v", err)
	}
	if err := a.DeleteRange(1, 0); !errors.Is(err, wbjson.ErrOutOfRange) {
		t.Errorf("DeleteRange(1, 0): got %v, want ErrOutOfRange", err)
	}
	if err := a.DeleteRange(0, 3); !errors.Is(err, wbjson.ErrOutOfRange) {
		t.Errorf("DeleteRange(0, 3): got %v, want ErrOutOfRange", err)
	}

	a.Clear()
	if !a.IsEmpty() {
		t.Errorf("After Clear: %d elements remain", a.Len())
	}
}

func TestArrayAppend(t *testing.T) {
	a := wbjson.NewArray()
	a.Append(wbjson.NewIntValue(1), nil, wbjson.NewIntValue(3))

	if a.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", a.Len())
	}
	if v, _ := a.At(1); v.Kind() != wbjson.KindNull {
		t.Errorf("Appended nil: kind is %v, want %v", v.Kind(), wbjson.KindNull)
	}
}

func TestArrayClone(t *testing.T) {
	inner := intArray(1)
	a := wbjson.NewArray()
	a.Append(wbjson.NewArrayValue(inner), wbjson.NewStringValue("s"))

	cp := a.Clone()
	if ia, err := cp.MustAt(0).Array(); err == nil {
		ia.Append(wbjson.NewIntValue(2))
	}
	cp.MustAt(1).SetString("changed")

	if inner.Len() != 1 {
		t.Errorf("Original nested array has %d elements, want 1", inner.Len())
	}
	if got, _ := a.MustAt(1).Text(); got != "s" {
		t.Errorf("Original element changed to %q after mutating the clone", got)
	}
}
