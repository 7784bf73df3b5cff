// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FieldType and Attribute.
//
// A FieldType is the contract every field of that type must satisfy, much like
// a function signature: it declares which attributes exist, which of them are
// required, and what type each value must have. Fields only reference their
// type; they never modify it, so one FieldType is shared by every field that
// uses it.
package model

// Attribute is a named, typed configuration slot declared on a FieldType.
type Attribute struct {
	Name     string
	Required bool
	Type     AttrType

	// Default is the value used when a field does not assign the attribute.
	// Nil means no default is declared.
	Default *Value

	Source SourceInfo
}

// String returns the attribute name.
func (a *Attribute) String() string { return a.Name }

// HasDefault reports whether a default value is declared.
func (a *Attribute) HasDefault() bool { return a.Default != nil }

// FieldType is a reusable kind of form input with an ordered attribute schema.
type FieldType struct {
	Name string

	// TemplatePath references the rendering resource of a user-defined type.
	// It is opaque to the model and empty for built-in types.
	TemplatePath string

	Attributes []*Attribute
	Builtin    bool
	Source     SourceInfo
}

// String returns the field type name.
func (ft *FieldType) String() string { return ft.Name }

// Attribute returns the first attribute declared with the given name.
func (ft *FieldType) Attribute(name string) (*Attribute, bool) {
	if ft == nil {
		return nil, false
	}
	for _, attr := range ft.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return nil, false
}

// RequiredAttributes returns the required attributes in declaration order.
func (ft *FieldType) RequiredAttributes() []*Attribute {
	var out []*Attribute
	for _, attr := range ft.Attributes {
		if attr.Required {
			out = append(out, attr)
		}
	}
	return out
}
