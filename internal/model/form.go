// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Section and Form, the containers of a form document.
//
// A Form is produced once per source document by the builder and is only ever
// handed out after every rule has passed. Nothing mutates it afterwards.
package model

// Section is an ordered group of fields.
type Section struct {
	Name   string
	Fields []*Field
	Source SourceInfo
}

// Form is the top-level content of a form document.
type Form struct {
	Name     string
	Sections []*Section
	Source   SourceInfo
}

// Fields returns every field of the form in document order.
func (f *Form) Fields() []*Field {
	var out []*Field
	for _, section := range f.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// Field returns the field with the given name.
func (f *Form) Field(name string) (*Field, bool) {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field.Name == name {
				return field, true
			}
		}
	}
	return nil, false
}
