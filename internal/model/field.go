// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the two shapes of a field.
//
// An UnvalidatedField is what the builder instantiates from the syntax tree:
// the author's assignments in document order, each already resolved to an
// Attribute of the field's type. A Field only comes out of the field rule in
// the validator. At that point the assignments are known to be complete and
// unique and are collapsed into a mapping from attribute name to value. The
// list form is gone after that step; there is no way back.
package model

// AttributeValue binds a literal to one Attribute of the owning field's type.
// Attribute is a non-owning reference into that FieldType.
type AttributeValue struct {
	Attribute *Attribute
	Value     Value
	Source    SourceInfo
}

// UnvalidatedField is a field instance before the field rule has run.
type UnvalidatedField struct {
	Name        string
	Type        *FieldType
	Assignments []AttributeValue
	Source      SourceInfo
}

// Field is a validated field instance. Attributes holds exactly the values the
// author assigned, keyed by attribute name.
type Field struct {
	Name       string
	Type       *FieldType
	Attributes map[string]Value
	Source     SourceInfo
}

// Lookup returns the assigned value of an attribute, falling back to the
// attribute's declared default. The boolean is false when the attribute is
// neither assigned nor defaulted, or is not declared on the field's type.
func (f *Field) Lookup(name string) (Value, bool) {
	if v, ok := f.Attributes[name]; ok {
		return v, true
	}
	attr, ok := f.Type.Attribute(name)
	if !ok || !attr.HasDefault() {
		return Value{}, false
	}
	return *attr.Default, true
}

// TemplatePath returns the rendering resource of the field's type.
func (f *Field) TemplatePath() string {
	if f.Type == nil {
		return ""
	}
	return f.Type.TemplatePath
}
