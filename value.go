// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

package wbjson

// Kind is the type tag of a Value in the JSON data model.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindNull   Kind = iota // the null value
	KindBool               // boolean: true or false
	KindInt                // number with integral value
	KindInt64              // wide signed integer, never produced by Read
	KindUint64             // wide unsigned integer, never produced by Read
	KindDouble             // floating-point number
	KindString             // string
	KindObject             // object: members keyed by unique strings
	KindArray              // array: ordered sequence of values
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindInt64:  "int64",
	KindUint64: "uint64",
	KindDouble: "double",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is a single node of a JSON document tree: a tagged union holding
// exactly one payload of the kind named by its tag. The zero Value is the
// null value.
//
// Values are mutable. Every mutator replaces tag and payload together, so
// the two can never disagree; the typed accessors are defined only for the
// matching kind and report a TypeError otherwise.
type Value struct {
	kind Kind
	data any // nil, bool, int, int64, uint64, float64, string, *Object or *Array
}

// NewNullValue returns a fresh null Value.
func NewNullValue() *Value { return &Value{} }

// NewBoolValue returns a Value holding the boolean b.
func NewBoolValue(b bool) *Value { return &Value{kind: KindBool, data: b} }

// NewIntValue returns a Value holding the integer n.
func NewIntValue(n int) *Value { return &Value{kind: KindInt, data: n} }

// NewInt64Value returns a Value holding the wide signed integer n.
func NewInt64Value(n int64) *Value { return &Value{kind: KindInt64, data: n} }

// NewUint64Value returns a Value holding the wide unsigned integer n.
func NewUint64Value(n uint64) *Value { return &Value{kind: KindUint64, data: n} }

// NewDoubleValue returns a Value holding the floating-point number f.
func NewDoubleValue(f float64) *Value { return &Value{kind: KindDouble, data: f} }

// NewStringValue returns a Value holding the string s.
func NewStringValue(s string) *Value { return &Value{kind: KindString, data: s} }

// NewObjectValue returns a Value holding o. A nil o denotes an empty object.
func NewObjectValue(o *Object) *Value {
	if o == nil {
		o = NewObject()
	}
	return &Value{kind: KindObject, data: o}
}

// NewArrayValue returns a Value holding a. A nil a denotes an empty array.
func NewArrayValue(a *Array) *Value {
	if a == nil {
		a = NewArray()
	}
	return &Value{kind: KindArray, data: a}
}

// Kind reports the kind of v.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the payload of a KindBool value.
func (v *Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeError{Want: KindBool, Got: v.kind}
	}
	return v.data.(bool), nil
}

// Int returns the payload of a KindInt value.
func (v *Value) Int() (int, error) {
	if v.kind != KindInt {
		return 0, &TypeError{Want: KindInt, Got: v.kind}
	}
	return v.data.(int), nil
}

// Int64 returns the payload of a KindInt64 value.
func (v *Value) Int64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, &TypeError{Want: KindInt64, Got: v.kind}
	}
	return v.data.(int64), nil
}

// Uint64 returns the payload of a KindUint64 value.
func (v *Value) Uint64() (uint64, error) {
	if v.kind != KindUint64 {
		return 0, &TypeError{Want: KindUint64, Got: v.kind}
	}
	return v.data.(uint64), nil
}

// Double returns the payload of a KindDouble value.
func (v *Value) Double() (float64, error) {
	if v.kind != KindDouble {
		return 0, &TypeError{Want: KindDouble, Got: v.kind}
	}
	return v.data.(float64), nil
}

// Text returns the payload of a KindString value.
func (v *Value) Text() (string, error) {
	if v.kind != KindString {
		return "", &TypeError{Want: KindString, Got: v.kind}
	}
	return v.data.(string), nil
}

// Object returns the payload of a KindObject value. The result is the live
// container, not a copy.
func (v *Value) Object() (*Object, error) {
	if v.kind != KindObject {
		return nil, &TypeError{Want: KindObject, Got: v.kind}
	}
	return v.data.(*Object), nil
}

// Array returns the payload of a KindArray value. The result is the live
// container, not a copy.
func (v *Value) Array() (*Array, error) {
	if v.kind != KindArray {
		return nil, &TypeError{Want: KindArray, Got: v.kind}
	}
	return v.data.(*Array), nil
}

// SetNull resets v to the null value.
func (v *Value) SetNull() { v.kind, v.data = KindNull, nil }

// SetBool sets v to a boolean holding b.
func (v *Value) SetBool(b bool) { v.kind, v.data = KindBool, b }

// SetInt sets v to an integer holding n.
func (v *Value) SetInt(n int) { v.kind, v.data = KindInt, n }

// SetInt64 sets v to a wide signed integer holding n.
func (v *Value) SetInt64(n int64) { v.kind, v.data = KindInt64, n }

// SetUint64 sets v to a wide unsigned integer holding n.
func (v *Value) SetUint64(n uint64) { v.kind, v.data = KindUint64, n }

// SetDouble sets v to a floating-point number holding f.
func (v *Value) SetDouble(f float64) { v.kind, v.data = KindDouble, f }

// SetString sets v to a string holding s.
func (v *Value) SetString(s string) { v.kind, v.data = KindString, s }

// SetObject sets v to an object holding o. A nil o denotes an empty object.
func (v *Value) SetObject(o *Object) {
	if o == nil {
		o = NewObject()
	}
	v.kind, v.data = KindObject, o
}

// SetArray sets v to an array holding a. A nil a denotes an empty array.
func (v *Value) SetArray(a *Array) {
	if a == nil {
		a = NewArray()
	}
	v.kind, v.data = KindArray, a
}

// SetKind re-tags v as kind k and resets its payload to the zero payload
// of that kind: false, zero, the empty string, or an empty container.
func (v *Value) SetKind(k Kind) {
	switch k {
	case KindBool:
		v.SetBool(false)
	case KindInt:
		v.SetInt(0)
	case KindInt64:
		v.SetInt64(0)
	case KindUint64:
		v.SetUint64(0)
	case KindDouble:
		v.SetDouble(0)
	case KindString:
		v.SetString("")
	case KindObject:
		v.SetObject(nil)
	case KindArray:
		v.SetArray(nil)
	default:
		v.SetNull()
	}
}

// Clone returns a deep copy of v sharing no structure with the original.
// Mutating the copy never affects v.
func (v *Value) Clone() *Value {
	switch v.kind {
	case KindObject:
		return &Value{kind: KindObject, data: v.data.(*Object).Clone()}
	case KindArray:
		return &Value{kind: KindArray, data: v.data.(*Array).Clone()}
	default:
		return &Value{kind: v.kind, data: v.data}
	}
}

// Equal reports whether v and w are structurally equal: the same kind with
// equal payloads, recursively for containers. Values of different numeric
// kinds are never equal, and doubles compare with ==, so NaN is unequal to
// everything including itself.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindObject:
		return v.data.(*Object).equal(w.data.(*Object))
	case KindArray:
		return v.data.(*Array).equal(w.data.(*Array))
	default:
		return v.data == w.data
	}
}
