// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Value, the literal assigned to an attribute.
//
// Parsers hand literals over already typed: a whole number is an integer and
// a number written with a fraction or exponent is a float, even when its value
// happens to be whole. Value keeps that distinction so the type check can be
// exact.
package model

import (
	"strconv"
	"strings"
)

// Value is a typed literal: a string, integer, float, boolean, or a list of
// values. The zero Value is invalid and matches no attribute type.
type Value struct {
	kind  Kind
	list  bool
	str   string
	num   int64
	float float64
	flag  bool
	items []Value
}

// StringVal returns a string literal.
func StringVal(s string) Value { return Value{kind: KindString, str: s} }

// IntVal returns an integer literal.
func IntVal(n int64) Value { return Value{kind: KindInteger, num: n} }

// FloatVal returns a float literal.
func FloatVal(f float64) Value { return Value{kind: KindFloat, float: f} }

// BoolVal returns a boolean literal.
func BoolVal(b bool) Value { return Value{kind: KindBoolean, flag: b} }

// ListVal returns a list literal holding a copy of items. Elements may be of
// different kinds; whether that is acceptable is decided by AttrType.Accepts.
func ListVal(items ...Value) Value {
	return Value{list: true, items: append([]Value{}, items...)}
}

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool {
	return v.list || v.kind != KindInvalid
}

// IsList reports whether v is a list literal.
func (v Value) IsList() bool { return v.list }

// Kind returns the scalar kind of v, or KindInvalid for lists.
func (v Value) Kind() Kind {
	if v.list {
		return KindInvalid
	}
	return v.kind
}

// Items returns a copy of the list elements, or nil for scalars.
func (v Value) Items() []Value {
	if !v.list {
		return nil
	}
	return append([]Value{}, v.items...)
}

// Len returns the number of list elements, or 0 for scalars.
func (v Value) Len() int { return len(v.items) }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.Kind() == KindString }

// AsInt returns the integer payload and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.num, v.Kind() == KindInteger }

// AsFloat returns the float payload and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return v.float, v.Kind() == KindFloat }

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.flag, v.Kind() == KindBoolean }

// Interface converts v into plain Go values: string, int64, float64, bool or
// []any. Invalid values become nil.
func (v Value) Interface() any {
	if v.list {
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return v.num
	case KindFloat:
		return v.float
	case KindBoolean:
		return v.flag
	default:
		return nil
	}
}

// Equal reports whether both values have the same shape and payload.
func (v Value) Equal(other Value) bool {
	if v.list != other.list || v.kind != other.kind {
		return false
	}
	if v.list {
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInteger:
		return v.num == other.num
	case KindFloat:
		return v.float == other.float
	case KindBoolean:
		return v.flag == other.flag
	default:
		return true
	}
}

// TypeName describes the runtime type of v for error messages. Homogeneous
// lists read like attribute types ("string[]"); mixed lists enumerate their
// element kinds in order of first appearance.
func (v Value) TypeName() string {
	if !v.list {
		return v.kind.String()
	}
	if len(v.items) == 0 {
		return "[]"
	}

	var names []string
	seen := make(map[string]struct{})
	for _, item := range v.items {
		name := item.TypeName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 1 && !v.items[0].list {
		return names[0] + "[]"
	}
	return "list(" + strings.Join(names, "|") + ")"
}

// String renders v as a literal.
func (v Value) String() string {
	if v.list {
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return "<invalid>"
	}
}
