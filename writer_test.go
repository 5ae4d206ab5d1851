// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tivenwang/wbjson"
)

func TestWriteScalars(t *testing.T) {
	tests := []struct {
		value *wbjson.Value
		want  string
	}{
		{nil, "null"},
		{wbjson.NewNullValue(), "null"},
		{wbjson.NewBoolValue(true), "true"},
		{wbjson.NewBoolValue(false), "false"},

		{wbjson.NewIntValue(0), "0"},
		{wbjson.NewIntValue(-17), "-17"},

		// Wide integers print exactly, with every digit.
		{wbjson.NewInt64Value(math.MinInt64), "-9223372036854775808"},
		{wbjson.NewInt64Value(math.MaxInt64), "9223372036854775807"},
		{wbjson.NewUint64Value(math.MaxUint64), "18446744073709551615"},

		// Doubles print in the shortest form that reparses exactly.
		{wbjson.NewDoubleValue(0.5), "0.5"},
		{wbjson.NewDoubleValue(-0.00239), "-0.00239"},
		{wbjson.NewDoubleValue(3.14), "3.14"},
		{wbjson.NewDoubleValue(150), "150"},
		{wbjson.NewDoubleValue(1e300), "1e+300"},
		{wbjson.NewDoubleValue(2.5e-5), "2.5e-05"},

		{wbjson.NewStringValue(""), `""`},
		{wbjson.NewStringValue("plain"), `"plain"`},
	}
	for _, test := range tests {
		got, err := wbjson.Write(test.value)
		if err != nil {
			t.Errorf("Write: unexpected error: %v", err)
			continue
		}
		if got != test.want {
			t.Errorf("Write: got %#q, want %#q", got, test.want)
		}
	}
}

func TestWriteStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`a"b`, `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"sl/ash", `"sl\/ash"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},

		// Bytes outside the escape table pass through untouched, control
		// bytes and multibyte runes alike.
		{"raw \x01 byte", "\"raw \x01 byte\""},
		{"héllo", `"héllo"`},
	}
	for _, test := range tests {
		got, err := wbjson.Write(wbjson.NewStringValue(test.input))
		if err != nil {
			t.Errorf("Write(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Write(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestWriteTrees(t *testing.T) {
	pair := func(key string, v *wbjson.Value) *wbjson.Value {
		o := wbjson.NewObject()
		o.Insert(key, v)
		return wbjson.NewObjectValue(o)
	}

	tests := []struct {
		name  string
		value *wbjson.Value
		want  string
	}{
		{"EmptyObject", wbjson.NewObjectValue(nil), "{}"},
		{"EmptyArray", wbjson.NewArrayValue(nil), "[]"},

		// The closing indentation is written even for an empty container,
		// so a nested empty object keeps a tab before its brace.
		{"NestedEmptyObject", newArr(wbjson.NewObjectValue(nil)), "[\n\t{\t}\n]"},
		{"NestedEmptyArray", pair("a", wbjson.NewArrayValue(nil)), "{\n\t\"a\" : [\t]\n}"},

		{"FlatArray", newArr(wbjson.NewIntValue(1), wbjson.NewIntValue(2)),
			"[\n\t1,\n\t2\n]"},
		{"NestedObject", pair("b", pair("c", wbjson.NewIntValue(1))),
			"{\n\t\"b\" : {\n\t\t\"c\" : 1\n\t}\n}"},
		{"ArrayOfStrings", newArr(
			wbjson.NewStringValue("free"),
			wbjson.NewStringValue("your"),
			wbjson.NewStringValue("mind"),
		), "[\n\t\"free\",\n\t\"your\",\n\t\"mind\"\n]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := wbjson.Write(test.value)
			if err != nil {
				t.Fatalf("Write: unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("Write:\ngot:  %#q\nwant: %#q", got, test.want)
			}
		})
	}
}

func TestWriteGolden(t *testing.T) {
	v, err := wbjson.Read(`{"b" : [true, null, "x"], "a" : 1}`)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, err := wbjson.Write(v)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Members render in ascending key order regardless of input order.
	want := "{\n\t\"a\" : 1,\n\t\"b\" : [\n\t\ttrue,\n\t\tnull,\n\t\t\"x\"\n\t]\n}"
	if got != want {
		t.Errorf("Write:\ngot:  %#q\nwant: %#q", got, want)
	}
}

// deepArray returns an array tree nested n levels.
func deepArray(n int) *wbjson.Value {
	v := wbjson.NewArrayValue(nil)
	for i := 1; i < n; i++ {
		a := wbjson.NewArray()
		a.Append(v)
		v = wbjson.NewArrayValue(a)
	}
	return v
}

func TestWriteDepth(t *testing.T) {
	if _, err := wbjson.Write(deepArray(wbjson.MaxDepth)); err != nil {
		t.Errorf("Write at the depth limit: unexpected error: %v", err)
	}
	_, err := wbjson.Write(deepArray(wbjson.MaxDepth + 1))
	if !errors.Is(err, wbjson.ErrTooDeep) {
		t.Errorf("Write past the depth limit: got %v, want ErrTooDeep", err)
	}
}
