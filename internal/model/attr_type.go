// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines AttrType, the declared type of an attribute.
//
// An attribute type is decided once, when the field type is declared, and is
// either a scalar of one Kind or a list whose elements are all of one Kind.
// Keeping it a closed variant turns the value type check into a structural
// comparison instead of string inspection at validation time.
package model

import (
	"fmt"
	"strings"
)

// Kind is the scalar kind of an attribute or a literal value.
type Kind uint8

const (
	// KindInvalid is the zero Kind and never matches anything.
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindInteger: "integer",
	KindFloat:   "float",
	KindBoolean: "boolean",
}

// String returns the keyword used for the kind in source documents.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// ParseKind maps a kind keyword to its Kind.
func ParseKind(s string) (Kind, bool) {
	for kind, name := range kindNames {
		if name == s {
			return kind, true
		}
	}
	return KindInvalid, false
}

// AttrType is the declared type of an attribute: Scalar(kind) or List(kind).
type AttrType struct {
	Kind Kind
	List bool
}

// Scalar returns the scalar attribute type of the given kind.
func Scalar(kind Kind) AttrType {
	return AttrType{Kind: kind}
}

// ListOf returns the list attribute type whose elements have the given kind.
func ListOf(kind Kind) AttrType {
	return AttrType{Kind: kind, List: true}
}

// IsValid reports whether the type names a known kind.
func (t AttrType) IsValid() bool {
	_, ok := kindNames[t.Kind]
	return ok
}

// String renders the type the way authors write it: "integer" or "string[]".
func (t AttrType) String() string {
	if t.List {
		return t.Kind.String() + "[]"
	}
	return t.Kind.String()
}

// ParseAttrType parses a type name. Scalars are spelled by their kind keyword;
// lists accept both the "kind[]" and the "list(kind)" spelling.
func ParseAttrType(s string) (AttrType, error) {
	name := strings.TrimSpace(s)
	list := false
	switch {
	case strings.HasSuffix(name, "[]"):
		name = strings.TrimSpace(strings.TrimSuffix(name, "[]"))
		list = true
	case strings.HasPrefix(name, "list(") && strings.HasSuffix(name, ")"):
		name = strings.TrimSpace(name[len("list(") : len(name)-1])
		list = true
	}

	kind, ok := ParseKind(name)
	if !ok {
		return AttrType{}, fmt.Errorf("unknown attribute type %q: expected string, integer, float or boolean, optionally as a list", s)
	}
	return AttrType{Kind: kind, List: list}, nil
}

// Accepts reports whether the value's runtime shape matches the type exactly.
// A list type requires a list whose every element is a scalar of the element
// kind; a scalar type requires a scalar of the same kind. Integers are not
// promoted to floats.
func (t AttrType) Accepts(v Value) bool {
	if !t.IsValid() {
		return false
	}
	if !t.List {
		return !v.IsList() && v.Kind() == t.Kind
	}
	if !v.IsList() {
		return false
	}
	for _, item := range v.Items() {
		if item.IsList() || item.Kind() != t.Kind {
			return false
		}
	}
	return true
}
