// Copyright (C) 2026 Tiven Wang. All Rights Reserved.

// Package wbjson implements an in-memory JSON document model with a
// strict reader and a tab-indented writer.
//
// # Values
//
// The Value type represents a single JSON datum. Each Value carries a
// Kind reporting which variant it holds, and a payload of that variant.
// The scalar kinds are null, boolean, int, int64, uint64, double, and
// string; the container kinds are object and array. Kind and payload
// always change together: the Set methods replace both at once, so a
// Value can never report one kind while holding another's data.
//
// Construct values with the New functions and read them back with the
// typed accessors. An accessor fails with a *TypeError when the Value
// holds a different kind:
//
//	v := wbjson.NewIntValue(25)
//	n, err := v.Int()    // n == 25
//	s, err := v.Text()   // err: value is int, not string
//
// Objects hold members in ascending order of key, with each key unique.
// Arrays are index-addressed; At reports an error for any index outside
// the occupied range, and MustAt skips the check entirely.
//
// # Reading
//
// Call Read to convert JSON text into a Value tree:
//
//	v, err := wbjson.Read(`{"name": "quartz", "hard": true}`)
//	if err != nil {
//	   log.Fatalf("Read failed: %v", err)
//	}
//
// The reader first scans the whole input into tokens, then parses the
// token list by recursive descent. Lexical problems are reported as
// *LexError and grammatical ones as *ParseError, each carrying the byte
// offset where the problem begins. Numbers with a zero fractional part
// that fit in an int produce int values; all other numbers produce
// doubles. An object whose text repeats a member key does not parse.
//
// Nesting is bounded by MaxDepth. Input that nests containers beyond
// the bound fails with ErrTooDeep rather than exhausting the stack.
//
// # Writing
//
// Write renders a Value tree back to text:
//
//	text, err := wbjson.Write(v)
//
// The output is indented with one tab per nesting level. Object members
// appear in ascending key order separated by " : ", and every element
// except the last is followed by a comma. Strings are quoted with the
// escapes \" \\ \/ \b \f \n \r \t; int, int64, and uint64 values print
// exactly, and doubles print the shortest form that reparses to the
// same number.
//
// # Errors
//
// Failures are reported by error return, never by logging. The
// taxonomy:
//
//	Error         | Reported by             | Meaning
//	------------- | ----------------------- | -------------------------------
//	*LexError     | Read                    | malformed token in the input
//	*ParseError   | Read                    | tokens violate the grammar
//	*TypeError    | accessors, Path         | value holds a different kind
//	ErrNotFound   | Object.Get, Path        | no member with the given key
//	ErrOutOfRange | Array.At, Insert, Path  | index outside the valid range
//	ErrTooDeep    | Read, Write             | nesting exceeds MaxDepth
//
// The sentinel errors are wrapped with context and match with
// errors.Is; the struct errors match with errors.As.
package wbjson
